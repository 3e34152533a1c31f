package algo

import "github.com/bnclabs/goseq/api"

// Minelement the first smallest element under cmp, single pass, ties
// broken towards the earlier position. Returns an iterator at the
// element, ErrorNotFound on an empty range.
func Minelement[T any](
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
	best := iter.Clone()
	for iter.Next(); iter.Equal(end) == false; iter.Next() {
		x, _ := iter.Get()
		b, _ := best.Get()
		if cmp(x, b) < 0 {
			best.Close()
			best = iter.Clone()
		}
	}
	iter.Close()
	return best, nil
}

// Maxelement the first largest element under cmp, single pass, ties
// broken towards the earlier position.
func Maxelement[T any](
	begin, end api.Iterator[T],
	cmp api.Comparefn[T]) (api.Iterator[T], error) {

	if cmp == nil {
		return nil, api.ErrorNilArgument
	}
	flipped := func(a, b *T) int { return cmp(b, a) }
	return Minelement(begin, end, flipped)
}

// Minmaxelement the first smallest and first largest element in one
// pass, ties broken towards the earlier position for both.
func Minmaxelement[T any](
	begin, end api.Iterator[T],
	cmp api.Comparefn[T]) (api.Iterator[T], api.Iterator[T], error) {

	if err := checkrange(begin, end); err != nil {
		return nil, nil, err
	} else if cmp == nil {
		return nil, nil, api.ErrorNilArgument
	}
	iter := begin.Clone()
	if iter.Equal(end) {
		iter.Close()
		return nil, nil, api.ErrorNotFound
	}
	miniter, maxiter := iter.Clone(), iter.Clone()
	for iter.Next(); iter.Equal(end) == false; iter.Next() {
		x, _ := iter.Get()
		if mn, _ := miniter.Get(); cmp(x, mn) < 0 {
			miniter.Close()
			miniter = iter.Clone()
		}
		if mx, _ := maxiter.Get(); cmp(x, mx) > 0 {
			maxiter.Close()
			maxiter = iter.Clone()
		}
	}
	iter.Close()
	return miniter, maxiter, nil
}

// Lexicographicalcompare is true when [begin, end) orders strictly
// before [begin2, end2) element by element, a shorter prefix ordering
// before its extensions.
func Lexicographicalcompare[T any](
	begin, end, begin2, end2 api.Iterator[T],
	cmp api.Comparefn[T]) (bool, error) {

	if err := checkrange(begin, end); err != nil {
		return false, err
	} else if err := checkrange(begin2, end2); err != nil {
		return false, err
	} else if cmp == nil {
		return false, api.ErrorNilArgument
	}
	iter, iter2 := begin.Clone(), begin2.Clone()
	defer iter.Close()
	defer iter2.Close()
	for {
		if iter2.Equal(end2) {
			return false, nil
		} else if iter.Equal(end) {
			return true, nil
		}
		x, _ := iter.Get()
		y, _ := iter2.Get()
		if c := cmp(x, y); c < 0 {
			return true, nil
		} else if c > 0 {
			return false, nil
		}
		iter.Next()
		iter2.Next()
	}
}

// Ispermutation is true when both ranges hold the same elements with
// the same multiplicity in any order. Quadratic multiplicity count,
// elements are opaque to the engine so no hashing is possible.
func Ispermutation[T any](
	begin, end, begin2, end2 api.Iterator[T],
	cmp api.Comparefn[T]) (bool, error) {

	n, err := Distance(begin, end)
	if err != nil {
		return false, err
	}
	m, err := Distance(begin2, end2)
	if err != nil {
		return false, err
	} else if cmp == nil {
		return false, api.ErrorNilArgument
	} else if n != m {
		return false, nil
	}
	iter := begin.Clone()
	defer iter.Close()
	for iter.Equal(end) == false {
		x, _ := iter.Get()
		c1, err := Count(begin, end, *x, cmp)
		if err != nil {
			return false, err
		}
		c2, err := Count(begin2, end2, *x, cmp)
		if err != nil {
			return false, err
		} else if c1 != c2 {
			return false, nil
		}
		iter.Next()
	}
	return true, nil
}

// Nextpermutation rearrange the range into its lexicographic
// successor under cmp. On the last permutation the range wraps around
// to the first one and the call reports false.
func Nextpermutation[T any](
	begin, end api.Iterator[T], cmp api.Comparefn[T]) (bool, error) {

	if err := checkrange(begin, end); err != nil {
		return false, err
	} else if cmp == nil {
		return false, api.ErrorNilArgument
	}
	refs := gather(begin, end)
	n := len(refs)
	if n < 2 {
		return false, nil
	}
	// longest non-increasing suffix
	i := n - 2
	for i >= 0 && cmp(refs[i], refs[i+1]) >= 0 {
		i--
	}
	if i < 0 {
		reverserefs(refs)
		return false, nil
	}
	j := n - 1
	for cmp(refs[j], refs[i]) <= 0 {
		j--
	}
	*refs[i], *refs[j] = *refs[j], *refs[i]
	reverserefs(refs[i+1:])
	return true, nil
}

// Prevpermutation rearrange the range into its lexicographic
// predecessor under cmp. On the first permutation the range wraps
// around to the last one and the call reports false.
func Prevpermutation[T any](
	begin, end api.Iterator[T], cmp api.Comparefn[T]) (bool, error) {

	if err := checkrange(begin, end); err != nil {
		return false, err
	} else if cmp == nil {
		return false, api.ErrorNilArgument
	}
	refs := gather(begin, end)
	n := len(refs)
	if n < 2 {
		return false, nil
	}
	// longest non-decreasing suffix
	i := n - 2
	for i >= 0 && cmp(refs[i], refs[i+1]) <= 0 {
		i--
	}
	if i < 0 {
		reverserefs(refs)
		return false, nil
	}
	j := n - 1
	for cmp(refs[j], refs[i]) >= 0 {
		j--
	}
	*refs[i], *refs[j] = *refs[j], *refs[i]
	reverserefs(refs[i+1:])
	return true, nil
}

//---- local functions

func reverserefs[T any](refs []*T) {
	for i, j := 0, len(refs)-1; i < j; i, j = i+1, j-1 {
		*refs[i], *refs[j] = *refs[j], *refs[i]
	}
}
