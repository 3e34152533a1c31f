package algo

import "github.com/bnclabs/goseq/api"

// Find the first element in [begin, end) comparing equal to value.
// Returns an iterator at the match, the caller closes it. Not finding
// anything is a first-class outcome reported as ErrorNotFound, so
// finding the default value and finding nothing stay distinguishable.
func Find[T any](
	begin, end api.Iterator[T], value T,
	cmp api.Comparefn[T]) (api.Iterator[T], error) {

	if cmp == nil {
		return nil, api.ErrorNilArgument
	}
	return Findif(begin, end, func(x *T) bool { return cmp(x, &value) == 0 })
}

// Findif the first element satisfying the predicate.
func Findif[T any](
	begin, end api.Iterator[T],
	pred api.Predicatefn[T]) (api.Iterator[T], error) {

	if err := checkrange(begin, end); err != nil {
		return nil, err
	} else if pred == nil {
		return nil, api.ErrorNilArgument
	}
	iter := begin.Clone()
	for iter.Equal(end) == false {
		x, _ := iter.Get()
		if pred(x) {
			return iter, nil
		}
		iter.Next()
	}
	iter.Close()
	return nil, api.ErrorNotFound
}

// Findifnot the first element violating the predicate.
func Findifnot[T any](
	begin, end api.Iterator[T],
	pred api.Predicatefn[T]) (api.Iterator[T], error) {

	if pred == nil {
		return nil, api.ErrorNilArgument
	}
	return Findif(begin, end, func(x *T) bool { return pred(x) == false })
}

// Count the elements comparing equal to value.
func Count[T any](
	begin, end api.Iterator[T], value T,
	cmp api.Comparefn[T]) (int64, error) {

	if cmp == nil {
		return 0, api.ErrorNilArgument
	}
	return Countif(begin, end, func(x *T) bool { return cmp(x, &value) == 0 })
}

// Countif the elements satisfying the predicate.
func Countif[T any](
	begin, end api.Iterator[T], pred api.Predicatefn[T]) (int64, error) {

	if err := checkrange(begin, end); err != nil {
		return 0, err
	} else if pred == nil {
		return 0, api.ErrorNilArgument
	}
	count, iter := int64(0), begin.Clone()
	for iter.Equal(end) == false {
		x, _ := iter.Get()
		if pred(x) {
			count++
		}
		iter.Next()
	}
	iter.Close()
	return count, nil
}

// Allof is true when every element satisfies the predicate, true on
// an empty range.
func Allof[T any](
	begin, end api.Iterator[T], pred api.Predicatefn[T]) (bool, error) {

	if pred == nil {
		return false, api.ErrorNilArgument
	}
	iter, err := Findifnot(begin, end, pred)
	if err == api.ErrorNotFound {
		return true, nil
	} else if err != nil {
		return false, err
	}
	iter.Close()
	return false, nil
}

// Anyof is true when at least one element satisfies the predicate,
// false on an empty range.
func Anyof[T any](
	begin, end api.Iterator[T], pred api.Predicatefn[T]) (bool, error) {

	iter, err := Findif(begin, end, pred)
	if err == api.ErrorNotFound {
		return false, nil
	} else if err != nil {
		return false, err
	}
	iter.Close()
	return true, nil
}

// Noneof is true when no element satisfies the predicate, true on an
// empty range.
func Noneof[T any](
	begin, end api.Iterator[T], pred api.Predicatefn[T]) (bool, error) {

	ok, err := Anyof(begin, end, pred)
	return ok == false && err == nil, err
}

// Foreach apply the visitor to every element in order.
func Foreach[T any](begin, end api.Iterator[T], visit api.Visitfn[T]) error {
	if err := checkrange(begin, end); err != nil {
		return err
	} else if visit == nil {
		return api.ErrorNilArgument
	}
	iter := begin.Clone()
	for iter.Equal(end) == false {
		x, _ := iter.Get()
		visit(x)
		iter.Next()
	}
	iter.Close()
	return nil
}

// Adjacentfind the first position whose element compares equal to its
// successor. Returns an iterator at the first of the pair.
func Adjacentfind[T any](
	begin, end api.Iterator[T],
	cmp api.Comparefn[T]) (api.Iterator[T], error) {

	if err := checkrange(begin, end); err != nil {
		return nil, err
	} else if cmp == nil {
		return nil, api.ErrorNilArgument
	}
	iter := begin.Clone()
	if iter.Equal(end) {
		iter.Close()
		return nil, api.ErrorNotFound
	}
	next := iter.Clone()
	next.Next()
	for next.Equal(end) == false {
		a, _ := iter.Get()
		b, _ := next.Get()
		if cmp(a, b) == 0 {
			next.Close()
			return iter, nil
		}
		iter.Next()
		next.Next()
	}
	iter.Close()
	next.Close()
	return nil, api.ErrorNotFound
}

// Findfirstof the first element in [begin, end) equal to any element
// of [sbegin, send).
func Findfirstof[T any](
	begin, end, sbegin, send api.Iterator[T],
	cmp api.Comparefn[T]) (api.Iterator[T], error) {

	if err := checkrange(sbegin, send); err != nil {
		return nil, err
	} else if cmp == nil {
		return nil, api.ErrorNilArgument
	}
	return Findif(begin, end, func(x *T) bool {
		return contains(sbegin, send, x, cmp)
	})
}

// Findfirstnotof the first element in [begin, end) equal to no
// element of [sbegin, send).
func Findfirstnotof[T any](
	begin, end, sbegin, send api.Iterator[T],
	cmp api.Comparefn[T]) (api.Iterator[T], error) {

	if err := checkrange(sbegin, send); err != nil {
		return nil, err
	} else if cmp == nil {
		return nil, api.ErrorNilArgument
	}
	return Findif(begin, end, func(x *T) bool {
		return contains(sbegin, send, x, cmp) == false
	})
}

// Equal is true when [begin, end) and the range of the same length
// starting at begin2 hold pairwise equal elements.
func Equal[T any](
	begin, end, begin2 api.Iterator[T], cmp api.Comparefn[T]) (bool, error) {

	if err := checkrange(begin, end); err != nil {
		return false, err
	} else if begin2 == nil || cmp == nil {
		return false, api.ErrorNilArgument
	}
	iter, iter2 := begin.Clone(), begin2.Clone()
	defer iter.Close()
	defer iter2.Close()
	for iter.Equal(end) == false {
		a, _ := iter.Get()
		b, err := iter2.Get()
		if err != nil { // second range exhausted early
			return false, nil
		} else if cmp(a, b) != 0 {
			return false, nil
		}
		iter.Next()
		iter2.Next()
	}
	return true, nil
}

// Startswith is true when [begin, end) begins with the pattern
// [pbegin, pend). An empty pattern matches everything.
func Startswith[T any](
	begin, end, pbegin, pend api.Iterator[T],
	cmp api.Comparefn[T]) (bool, error) {

	if err := checkrange(begin, end); err != nil {
		return false, err
	} else if err := checkrange(pbegin, pend); err != nil {
		return false, err
	} else if cmp == nil {
		return false, api.ErrorNilArgument
	}
	iter, piter := begin.Clone(), pbegin.Clone()
	defer iter.Close()
	defer piter.Close()
	for piter.Equal(pend) == false {
		if iter.Equal(end) { // pattern longer than the range
			return false, nil
		}
		a, _ := iter.Get()
		b, _ := piter.Get()
		if cmp(a, b) != 0 {
			return false, nil
		}
		iter.Next()
		piter.Next()
	}
	return true, nil
}

// Endswith is true when [begin, end) ends with the pattern
// [pbegin, pend). An empty pattern matches everything.
func Endswith[T any](
	begin, end, pbegin, pend api.Iterator[T],
	cmp api.Comparefn[T]) (bool, error) {

	n, err := Distance(begin, end)
	if err != nil {
		return false, err
	}
	m, err := Distance(pbegin, pend)
	if err != nil {
		return false, err
	} else if cmp == nil {
		return false, api.ErrorNilArgument
	} else if m > n {
		return false, nil
	}
	iter := begin.Clone()
	defer iter.Close()
	if err := Advance[T](iter, n-m); err != nil {
		return false, err
	}
	return Startswith(iter, end, pbegin, pend, cmp)
}

// Search the first occurrence of the sub-range [sbegin, send) inside
// [begin, end). Returns an iterator at the start of the match. An
// empty sub-range matches at begin.
func Search[T any](
	begin, end, sbegin, send api.Iterator[T],
	cmp api.Comparefn[T]) (api.Iterator[T], error) {

	if err := checkrange(begin, end); err != nil {
		return nil, err
	} else if err := checkrange(sbegin, send); err != nil {
		return nil, err
	} else if cmp == nil {
		return nil, api.ErrorNilArgument
	}
	iter := begin.Clone()
	for {
		ok, err := Startswith(iter, end, sbegin, send, cmp)
		if err != nil {
			iter.Close()
			return nil, err
		} else if ok {
			return iter, nil
		} else if iter.Equal(end) {
			iter.Close()
			return nil, api.ErrorNotFound
		}
		iter.Next()
	}
}

// Findend the last occurrence of the sub-range [sbegin, send) inside
// [begin, end). Returns an iterator at the start of the match.
func Findend[T any](
	begin, end, sbegin, send api.Iterator[T],
	cmp api.Comparefn[T]) (api.Iterator[T], error) {

	if sbegin != nil && send != nil && sbegin.Equal(send) {
		return nil, api.ErrorNotFound
	}
	match, err := Search(begin, end, sbegin, send, cmp)
	if err != nil {
		return nil, err
	}
	for {
		probe := match.Clone()
		probe.Next()
		next, err := Search(probe, end, sbegin, send, cmp)
		probe.Close()
		if err == api.ErrorNotFound {
			return match, nil
		} else if err != nil {
			match.Close()
			return nil, err
		}
		match.Close()
		match = next
	}
}

//---- local functions

func contains[T any](
	sbegin, send api.Iterator[T], x *T, cmp api.Comparefn[T]) bool {

	iter := sbegin.Clone()
	defer iter.Close()
	for iter.Equal(send) == false {
		s, _ := iter.Get()
		if cmp(x, s) == 0 {
			return true
		}
		iter.Next()
	}
	return false
}
