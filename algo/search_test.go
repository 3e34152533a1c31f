package algo

import "testing"

import "github.com/bnclabs/goseq/api"

func TestFind(t *testing.T) {
	vec := mkvec(t, []int{10, 20, 30, 20})
	begin, end := vec.Begin(), vec.End()
	defer begin.Close()
	defer end.Close()
	defer vec.Destroy()

	if iter, err := Find(begin, end, 20, cmpint); err != nil {
		t.Error(err)
	} else {
		// first match wins
		probe := begin.Clone()
		probe.Next()
		if iter.Equal(probe) == false {
			t.Errorf("expected the match at position 1")
		}
		probe.Close()
		iter.Close()
	}
	if _, err := Find(begin, end, 99, cmpint); err != api.ErrorNotFound {
		t.Errorf("expected %v, got %v", api.ErrorNotFound, err)
	}
	if _, err := Find(begin, end, 10, nil); err != api.ErrorNilArgument {
		t.Errorf("expected %v, got %v", api.ErrorNilArgument, err)
	}
	if _, err := Find(end, end, 10, cmpint); err != api.ErrorNotFound {
		t.Errorf("expected %v, got %v", api.ErrorNotFound, err)
	}
}

func TestFindif(t *testing.T) {
	lst := mklist(t, []int{1, 3, 4, 6})
	begin, end := lst.Begin(), lst.End()
	even := func(x *int) bool { return *x%2 == 0 }

	if iter, err := Findif[int](begin, end, even); err != nil {
		t.Error(err)
	} else {
		if x, _ := iter.Get(); *x != 4 {
			t.Errorf("expected 4, got %v", *x)
		}
		iter.Close()
	}
	if iter, err := Findifnot[int](begin, end, even); err != nil {
		t.Error(err)
	} else {
		if x, _ := iter.Get(); *x != 1 {
			t.Errorf("expected 1, got %v", *x)
		}
		iter.Close()
	}
	begin.Close()
	end.Close()
	lst.Destroy()
}

func TestCount(t *testing.T) {
	vec := mkvec(t, []int{1, 2, 2, 3, 2})
	begin, end := vec.Begin(), vec.End()
	defer begin.Close()
	defer end.Close()
	defer vec.Destroy()

	if n, err := Count(begin, end, 2, cmpint); err != nil {
		t.Error(err)
	} else if n != 3 {
		t.Errorf("expected 3, got %v", n)
	}
	odd := func(x *int) bool { return *x%2 == 1 }
	if n, err := Countif(begin, end, odd); err != nil {
		t.Error(err)
	} else if n != 2 {
		t.Errorf("expected 2, got %v", n)
	}
	if n, err := Count(end, end, 2, cmpint); err != nil {
		t.Error(err)
	} else if n != 0 {
		t.Errorf("expected 0, got %v", n)
	}
}

func TestOfPredicates(t *testing.T) {
	vec := mkvec(t, []int{2, 4, 6})
	begin, end := vec.Begin(), vec.End()
	defer begin.Close()
	defer end.Close()
	defer vec.Destroy()

	even := func(x *int) bool { return *x%2 == 0 }
	odd := func(x *int) bool { return *x%2 == 1 }

	if ok, err := Allof(begin, end, even); err != nil || ok == false {
		t.Errorf("expected all even, got %v %v", ok, err)
	}
	if ok, err := Anyof(begin, end, odd); err != nil || ok {
		t.Errorf("expected no odd, got %v %v", ok, err)
	}
	if ok, err := Noneof(begin, end, odd); err != nil || ok == false {
		t.Errorf("expected none odd, got %v %v", ok, err)
	}
	// empty range conventions
	if ok, _ := Allof(end, end, even); ok == false {
		t.Errorf("expected vacuous all")
	}
	if ok, _ := Anyof(end, end, even); ok {
		t.Errorf("expected vacuous no any")
	}
	if ok, _ := Noneof(end, end, even); ok == false {
		t.Errorf("expected vacuous none")
	}
}

func TestForeach(t *testing.T) {
	lst := mklist(t, []int{1, 2, 3})
	begin, end := lst.Begin(), lst.End()
	sum := 0
	if err := Foreach[int](begin, end, func(x *int) { sum += *x }); err != nil {
		t.Error(err)
	}
	if sum != 6 {
		t.Errorf("expected 6, got %v", sum)
	}
	if err := Foreach[int](begin, end, nil); err != api.ErrorNilArgument {
		t.Errorf("expected %v, got %v", api.ErrorNilArgument, err)
	}
	begin.Close()
	end.Close()
	lst.Destroy()
}

func TestAdjacentfind(t *testing.T) {
	vec := mkvec(t, []int{1, 2, 3, 3, 4})
	begin, end := vec.Begin(), vec.End()
	if iter, err := Adjacentfind(begin, end, cmpint); err != nil {
		t.Error(err)
	} else {
		if x, _ := iter.Get(); *x != 3 {
			t.Errorf("expected 3, got %v", *x)
		}
		iter.Close()
	}
	begin.Close()
	end.Close()
	vec.Destroy()

	vec = mkvec(t, []int{1, 2, 3})
	begin, end = vec.Begin(), vec.End()
	if _, err := Adjacentfind(begin, end, cmpint); err != api.ErrorNotFound {
		t.Errorf("expected %v, got %v", api.ErrorNotFound, err)
	}
	if _, err := Adjacentfind(end, end, cmpint); err != api.ErrorNotFound {
		t.Errorf("expected %v, got %v", api.ErrorNotFound, err)
	}
	begin.Close()
	end.Close()
	vec.Destroy()
}

func TestFindfirstof(t *testing.T) {
	vec := mkvec(t, []int{1, 5, 3, 7})
	set := mkvec(t, []int{3, 7})
	begin, end := vec.Begin(), vec.End()
	sbegin, send := set.Begin(), set.End()

	if iter, err := Findfirstof(begin, end, sbegin, send, cmpint); err != nil {
		t.Error(err)
	} else {
		if x, _ := iter.Get(); *x != 3 {
			t.Errorf("expected 3, got %v", *x)
		}
		iter.Close()
	}
	if iter, err := Findfirstnotof(begin, end, sbegin, send, cmpint); err != nil {
		t.Error(err)
	} else {
		if x, _ := iter.Get(); *x != 1 {
			t.Errorf("expected 1, got %v", *x)
		}
		iter.Close()
	}
	begin.Close()
	end.Close()
	sbegin.Close()
	send.Close()
	vec.Destroy()
	set.Destroy()
}

func TestEqualRanges(t *testing.T) {
	vec1 := mkvec(t, []int{1, 2, 3})
	vec2 := mkvec(t, []int{1, 2, 3})
	vec3 := mkvec(t, []int{1, 2, 4})
	lst := mklist(t, []int{1, 2, 3})

	b1, e1 := vec1.Begin(), vec1.End()
	b2 := vec2.Begin()
	b3 := vec3.Begin()
	lb := lst.Begin()

	if ok, err := Equal(b1, e1, b2, cmpint); err != nil || ok == false {
		t.Errorf("expected equal ranges, got %v %v", ok, err)
	}
	if ok, _ := Equal(b1, e1, b3, cmpint); ok {
		t.Errorf("expected inequal ranges")
	}
	// array backed and list backed ranges compare fine
	if ok, err := Equal[int](b1, e1, lb, cmpint); err != nil || ok == false {
		t.Errorf("expected equal ranges, got %v %v", ok, err)
	}
	b1.Close()
	e1.Close()
	b2.Close()
	b3.Close()
	lb.Close()
	vec1.Destroy()
	vec2.Destroy()
	vec3.Destroy()
	lst.Destroy()
}

func TestStartsEndswith(t *testing.T) {
	vec := mkvec(t, []int{1, 2, 3, 4, 5})
	prefix := mkvec(t, []int{1, 2})
	suffix := mkvec(t, []int{4, 5})
	begin, end := vec.Begin(), vec.End()
	pb, pe := prefix.Begin(), prefix.End()
	sb, se := suffix.Begin(), suffix.End()

	if ok, err := Startswith(begin, end, pb, pe, cmpint); err != nil || ok == false {
		t.Errorf("expected prefix match, got %v %v", ok, err)
	}
	if ok, _ := Startswith(begin, end, sb, se, cmpint); ok {
		t.Errorf("expected no prefix match")
	}
	if ok, err := Endswith(begin, end, sb, se, cmpint); err != nil || ok == false {
		t.Errorf("expected suffix match, got %v %v", ok, err)
	}
	if ok, _ := Endswith(begin, end, pb, pe, cmpint); ok {
		t.Errorf("expected no suffix match")
	}
	// empty pattern matches everything
	if ok, _ := Startswith(begin, end, pe, pe, cmpint); ok == false {
		t.Errorf("expected empty pattern to match")
	}
	if ok, _ := Endswith(begin, end, pe, pe, cmpint); ok == false {
		t.Errorf("expected empty pattern to match")
	}
	// pattern longer than the range
	if ok, _ := Startswith(pb, pe, begin, end, cmpint); ok {
		t.Errorf("expected no match for longer pattern")
	}
	begin.Close()
	end.Close()
	pb.Close()
	pe.Close()
	sb.Close()
	se.Close()
	vec.Destroy()
	prefix.Destroy()
	suffix.Destroy()
}

func TestSearchFindend(t *testing.T) {
	vec := mkvec(t, []int{1, 2, 1, 2, 1, 2})
	sub := mkvec(t, []int{1, 2})
	begin, end := vec.Begin(), vec.End()
	sb, se := sub.Begin(), sub.End()

	if iter, err := Search(begin, end, sb, se, cmpint); err != nil {
		t.Error(err)
	} else {
		if iter.Equal(begin) == false {
			t.Errorf("expected the first occurrence at begin")
		}
		iter.Close()
	}
	if iter, err := Findend(begin, end, sb, se, cmpint); err != nil {
		t.Error(err)
	} else {
		probe := begin.Clone()
		Advance[int](probe, 4)
		if iter.Equal(probe) == false {
			t.Errorf("expected the last occurrence at position 4")
		}
		probe.Close()
		iter.Close()
	}

	missing := mkvec(t, []int{7, 8})
	mb, me := missing.Begin(), missing.End()
	if _, err := Search(begin, end, mb, me, cmpint); err != api.ErrorNotFound {
		t.Errorf("expected %v, got %v", api.ErrorNotFound, err)
	}
	if _, err := Findend(begin, end, mb, me, cmpint); err != api.ErrorNotFound {
		t.Errorf("expected %v, got %v", api.ErrorNotFound, err)
	}
	// empty needle matches at begin
	if iter, err := Search(begin, end, se, se, cmpint); err != nil {
		t.Error(err)
	} else {
		if iter.Equal(begin) == false {
			t.Errorf("expected the match at begin")
		}
		iter.Close()
	}
	if _, err := Findend(begin, end, se, se, cmpint); err != api.ErrorNotFound {
		t.Errorf("expected %v, got %v", api.ErrorNotFound, err)
	}
	mb.Close()
	me.Close()
	begin.Close()
	end.Close()
	sb.Close()
	se.Close()
	vec.Destroy()
	sub.Destroy()
	missing.Destroy()
}
