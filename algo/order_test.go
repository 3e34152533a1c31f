package algo

import "testing"

import "github.com/stretchr/testify/require"

import "github.com/bnclabs/goseq/api"

func TestMinMaxelement(t *testing.T) {
	lst := mklist(t, []int{3, 1, 4, 1, 5})
	begin, end := lst.Begin(), lst.End()

	miniter, err := Minelement[int](begin, end, cmpint)
	if err != nil {
		t.Fatal(err)
	}
	if x, _ := miniter.Get(); *x != 1 {
		t.Errorf("expected 1, got %v", *x)
	}
	// first occurrence wins the tie
	probe := begin.Clone()
	Advance[int](probe, 1)
	if miniter.Equal(probe) == false {
		t.Errorf("expected the first occurrence of the minimum")
	}
	probe.Close()
	miniter.Close()

	maxiter, err := Maxelement[int](begin, end, cmpint)
	if err != nil {
		t.Fatal(err)
	}
	if x, _ := maxiter.Get(); *x != 5 {
		t.Errorf("expected 5, got %v", *x)
	}
	maxiter.Close()

	miniter, maxiter, err = Minmaxelement[int](begin, end, cmpint)
	if err != nil {
		t.Fatal(err)
	}
	if x, _ := miniter.Get(); *x != 1 {
		t.Errorf("expected 1, got %v", *x)
	}
	if x, _ := maxiter.Get(); *x != 5 {
		t.Errorf("expected 5, got %v", *x)
	}
	miniter.Close()
	maxiter.Close()

	if _, err := Minelement[int](end, end, cmpint); err != api.ErrorNotFound {
		t.Errorf("expected %v, got %v", api.ErrorNotFound, err)
	}
	if _, _, err := Minmaxelement[int](end, end, cmpint); err != api.ErrorNotFound {
		t.Errorf("expected %v, got %v", api.ErrorNotFound, err)
	}
	begin.Close()
	end.Close()
	lst.Destroy()
}

func TestMinmaxTiebreak(t *testing.T) {
	// duplicated extremes, the earlier position wins on both sides
	vec := mkvec(t, []int{5, 1, 5, 1})
	begin, end := vec.Begin(), vec.End()

	miniter, maxiter, err := Minmaxelement(begin, end, cmpint)
	if err != nil {
		t.Fatal(err)
	}
	probe := begin.Clone()
	Advance[int](probe, 1)
	if miniter.Equal(probe) == false {
		t.Errorf("expected the first occurrence of the minimum")
	}
	if maxiter.Equal(begin) == false {
		t.Errorf("expected the first occurrence of the maximum")
	}
	probe.Close()
	miniter.Close()
	maxiter.Close()
	begin.Close()
	end.Close()
	vec.Destroy()
}

func TestLexicographicalcompare(t *testing.T) {
	cases := []struct {
		a, b []int
		less bool
	}{
		{[]int{1, 2, 3}, []int{1, 2, 4}, true},
		{[]int{1, 2, 4}, []int{1, 2, 3}, false},
		{[]int{1, 2}, []int{1, 2, 3}, true},
		{[]int{1, 2, 3}, []int{1, 2}, false},
		{[]int{1, 2, 3}, []int{1, 2, 3}, false},
		{[]int{}, []int{1}, true},
		{[]int{}, []int{}, false},
	}
	for _, tc := range cases {
		veca, vecb := mkvec(t, tc.a), mkvec(t, tc.b)
		ab, ae := veca.Begin(), veca.End()
		bb, be := vecb.Begin(), vecb.End()
		if less, err := Lexicographicalcompare(ab, ae, bb, be, cmpint); err != nil {
			t.Error(err)
		} else if less != tc.less {
			t.Errorf("%v < %v expected %v, got %v", tc.a, tc.b, tc.less, less)
		}
		ab.Close()
		ae.Close()
		bb.Close()
		be.Close()
		veca.Destroy()
		vecb.Destroy()
	}
}

func TestIspermutation(t *testing.T) {
	veca := mkvec(t, []int{1, 2, 2, 3})
	vecb := mkvec(t, []int{3, 2, 1, 2})
	vecc := mkvec(t, []int{1, 2, 3, 3})
	vecd := mkvec(t, []int{1, 2, 3})
	ab, ae := veca.Begin(), veca.End()
	bb, be := vecb.Begin(), vecb.End()
	cb, ce := vecc.Begin(), vecc.End()
	db, de := vecd.Begin(), vecd.End()

	if ok, err := Ispermutation(ab, ae, bb, be, cmpint); err != nil || ok == false {
		t.Errorf("expected a permutation, got %v %v", ok, err)
	}
	if ok, _ := Ispermutation(ab, ae, cb, ce, cmpint); ok { // multiplicity differs
		t.Errorf("expected no permutation")
	}
	if ok, _ := Ispermutation(ab, ae, db, de, cmpint); ok { // length differs
		t.Errorf("expected no permutation")
	}
	if ok, err := Ispermutation(ae, ae, de, de, cmpint); err != nil || ok == false {
		t.Errorf("expected empty ranges to match, got %v %v", ok, err)
	}
	ab.Close()
	ae.Close()
	bb.Close()
	be.Close()
	cb.Close()
	ce.Close()
	db.Close()
	de.Close()
	veca.Destroy()
	vecb.Destroy()
	vecc.Destroy()
	vecd.Destroy()
}

func TestPermutationCycle(t *testing.T) {
	// 4! steps from the smallest arrangement lands back on it, with
	// the wraparound step reporting false
	input := []int{1, 2, 3, 4}
	vec := mkvec(t, input)
	begin, end := vec.Begin(), vec.End()

	factorial := 24
	for i := 0; i < factorial-1; i++ {
		ok, err := Nextpermutation(begin, end, cmpint)
		require.NoError(t, err)
		require.True(t, ok, "step %d", i)
	}
	ok, err := Nextpermutation(begin, end, cmpint)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, input, tovalues(begin, end))

	begin.Close()
	end.Close()
	vec.Destroy()
}

func TestPrevpermutationInverse(t *testing.T) {
	vec := mkvec(t, []int{1, 2, 3, 4})
	begin, end := vec.Begin(), vec.End()

	// walk forward a few steps recording each arrangement, then walk
	// back and compare step for step
	trail := [][]int{tovalues(begin, end)}
	for i := 0; i < 10; i++ {
		ok, err := Nextpermutation(begin, end, cmpint)
		require.NoError(t, err)
		require.True(t, ok)
		trail = append(trail, tovalues(begin, end))
	}
	for i := len(trail) - 2; i >= 0; i-- {
		ok, err := Prevpermutation(begin, end, cmpint)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, trail[i], tovalues(begin, end))
	}
	// back at the smallest arrangement, stepping back wraps around
	ok, err := Prevpermutation(begin, end, cmpint)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, []int{4, 3, 2, 1}, tovalues(begin, end))

	begin.Close()
	end.Close()
	vec.Destroy()
}

func TestPermutationEdge(t *testing.T) {
	vec := mkvec(t, []int{7})
	begin, end := vec.Begin(), vec.End()
	if ok, err := Nextpermutation(begin, end, cmpint); err != nil || ok {
		t.Errorf("expected no successor for a singleton, got %v %v", ok, err)
	}
	if ok, err := Prevpermutation(begin, end, cmpint); err != nil || ok {
		t.Errorf("expected no predecessor for a singleton, got %v %v", ok, err)
	}
	if ok, err := Nextpermutation(end, end, cmpint); err != nil || ok {
		t.Errorf("expected no successor for an empty range, got %v %v", ok, err)
	}
	begin.Close()
	end.Close()
	vec.Destroy()
}
