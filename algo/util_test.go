package algo

import "testing"

import "github.com/bnclabs/goseq/api"
import "github.com/bnclabs/goseq/list"
import "github.com/bnclabs/goseq/vector"

func cmpint(a, b *int) int {
	return *a - *b
}

func mkvec(t *testing.T, xs []int) *vector.Vector[int] {
	t.Helper()
	vec := vector.NewVector[int]("algotest", nil)
	for _, x := range xs {
		if err := vec.Pushback(x); err != nil {
			t.Fatal(err)
		}
	}
	return vec
}

func mklist(t *testing.T, xs []int) *list.List[int] {
	t.Helper()
	lst := list.NewList[int]("algotest", nil)
	for _, x := range xs {
		if err := lst.Pushback(x); err != nil {
			t.Fatal(err)
		}
	}
	return lst
}

func tovalues(begin, end api.Iterator[int]) []int {
	values := []int{}
	iter := begin.Clone()
	for iter.Equal(end) == false {
		x, _ := iter.Get()
		values = append(values, *x)
		iter.Next()
	}
	iter.Close()
	return values
}

func eqvalues(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestDistanceAdvance(t *testing.T) {
	vec := mkvec(t, []int{1, 2, 3, 4, 5})
	defer vec.Destroy()
	begin, end := vec.Begin(), vec.End()
	defer begin.Close()
	defer end.Close()

	if n, err := Distance(begin, end); err != nil {
		t.Error(err)
	} else if n != 5 {
		t.Errorf("expected 5, got %v", n)
	}
	if n, err := Distance(end, end); err != nil {
		t.Error(err)
	} else if n != 0 {
		t.Errorf("expected 0, got %v", n)
	}
	if _, err := Distance[int](nil, end); err != api.ErrorNilArgument {
		t.Errorf("expected %v, got %v", api.ErrorNilArgument, err)
	}

	iter := begin.Clone()
	if err := Advance[int](iter, 3); err != nil {
		t.Error(err)
	} else if x, _ := iter.Get(); *x != 4 {
		t.Errorf("expected 4, got %v", *x)
	}
	if err := Advance[int](iter, -2); err != nil {
		t.Error(err)
	} else if x, _ := iter.Get(); *x != 2 {
		t.Errorf("expected 2, got %v", *x)
	}
	if err := Advance[int](iter, 100); err != api.ErrorIteratorEnd {
		t.Errorf("expected %v, got %v", api.ErrorIteratorEnd, err)
	}
	iter.Close()
}
