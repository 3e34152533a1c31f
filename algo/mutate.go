package algo

import "github.com/bnclabs/goseq/api"

// Copy the elements of [begin, end) into the range starting at dest,
// in order. Returns the number of elements copied. The destination
// running out before the source is an error, elements copied until
// then stay copied.
func Copy[T any](begin, end, dest api.Iterator[T]) (int64, error) {
	if err := checkrange(begin, end); err != nil {
		return 0, err
	} else if dest == nil {
		return 0, api.ErrorNilArgument
	}
	count, iter, diter := int64(0), begin.Clone(), dest.Clone()
	defer iter.Close()
	defer diter.Close()
	for iter.Equal(end) == false {
		x, _ := iter.Get()
		d, err := diter.Get()
		if err != nil {
			return count, api.ErrorIteratorEnd
		}
		*d = *x
		count++
		iter.Next()
		diter.Next()
	}
	return count, nil
}

// Copybackward copy [begin, end) into the range ending at dend,
// walking both ranges from the back. Lets a range shift right within
// itself without clobbering unread elements.
func Copybackward[T any](begin, end, dend api.Iterator[T]) (int64, error) {
	if err := checkrange(begin, end); err != nil {
		return 0, err
	} else if dend == nil {
		return 0, api.ErrorNilArgument
	}
	count, iter, diter := int64(0), end.Clone(), dend.Clone()
	defer iter.Close()
	defer diter.Close()
	for iter.Equal(begin) == false {
		if err := iter.Prev(); err != nil {
			return count, err
		}
		if err := diter.Prev(); err != nil {
			return count, api.ErrorIteratorEnd
		}
		x, _ := iter.Get()
		d, _ := diter.Get()
		*d = *x
		count++
	}
	return count, nil
}

// Copyif copy the elements satisfying the predicate into the range
// starting at dest. Returns the number of elements copied.
func Copyif[T any](
	begin, end, dest api.Iterator[T], pred api.Predicatefn[T]) (int64, error) {

	if err := checkrange(begin, end); err != nil {
		return 0, err
	} else if dest == nil || pred == nil {
		return 0, api.ErrorNilArgument
	}
	count, iter, diter := int64(0), begin.Clone(), dest.Clone()
	defer iter.Close()
	defer diter.Close()
	for iter.Equal(end) == false {
		x, _ := iter.Get()
		if pred(x) {
			d, err := diter.Get()
			if err != nil {
				return count, api.ErrorIteratorEnd
			}
			*d = *x
			count++
			diter.Next()
		}
		iter.Next()
	}
	return count, nil
}

// Swap the elements under two iterators.
func Swap[T any](a, b api.Iterator[T]) error {
	if a == nil || b == nil {
		return api.ErrorNilArgument
	}
	x, err := a.Get()
	if err != nil {
		return err
	}
	y, err := b.Get()
	if err != nil {
		return err
	}
	*x, *y = *y, *x
	return nil
}

// Swapranges swap [begin, end) pairwise with the range of the same
// length starting at begin2.
func Swapranges[T any](begin, end, begin2 api.Iterator[T]) error {
	if err := checkrange(begin, end); err != nil {
		return err
	} else if begin2 == nil {
		return api.ErrorNilArgument
	}
	iter, iter2 := begin.Clone(), begin2.Clone()
	defer iter.Close()
	defer iter2.Close()
	for iter.Equal(end) == false {
		x, _ := iter.Get()
		y, err := iter2.Get()
		if err != nil {
			return api.ErrorIteratorEnd
		}
		*x, *y = *y, *x
		iter.Next()
		iter2.Next()
	}
	return nil
}

// Transform write op(x) for every x in [begin, end) into the range
// starting at dest. dest may alias begin for an in-place transform.
func Transform[T any](
	begin, end, dest api.Iterator[T], op api.Unaryopfn[T]) error {

	if err := checkrange(begin, end); err != nil {
		return err
	} else if dest == nil || op == nil {
		return api.ErrorNilArgument
	}
	iter, diter := begin.Clone(), dest.Clone()
	defer iter.Close()
	defer diter.Close()
	for iter.Equal(end) == false {
		x, _ := iter.Get()
		d, err := diter.Get()
		if err != nil {
			return api.ErrorIteratorEnd
		}
		*d = op(x)
		iter.Next()
		diter.Next()
	}
	return nil
}

// Transformbinary write op(x, y) pairwise over [begin, end) and the
// range starting at begin2 into the range starting at dest.
func Transformbinary[T any](
	begin, end, begin2, dest api.Iterator[T], op api.Binaryopfn[T]) error {

	if err := checkrange(begin, end); err != nil {
		return err
	} else if begin2 == nil || dest == nil || op == nil {
		return api.ErrorNilArgument
	}
	iter, iter2, diter := begin.Clone(), begin2.Clone(), dest.Clone()
	defer iter.Close()
	defer iter2.Close()
	defer diter.Close()
	for iter.Equal(end) == false {
		x, _ := iter.Get()
		y, err := iter2.Get()
		if err != nil {
			return api.ErrorIteratorEnd
		}
		d, err := diter.Get()
		if err != nil {
			return api.ErrorIteratorEnd
		}
		*d = op(x, y)
		iter.Next()
		iter2.Next()
		diter.Next()
	}
	return nil
}

// Replace every element comparing equal to oldvalue with newvalue.
func Replace[T any](
	begin, end api.Iterator[T], oldvalue, newvalue T,
	cmp api.Comparefn[T]) error {

	if cmp == nil {
		return api.ErrorNilArgument
	}
	pred := func(x *T) bool { return cmp(x, &oldvalue) == 0 }
	return Replaceif(begin, end, pred, newvalue)
}

// Replaceif replace every element satisfying the predicate with
// newvalue.
func Replaceif[T any](
	begin, end api.Iterator[T], pred api.Predicatefn[T], newvalue T) error {

	if err := checkrange(begin, end); err != nil {
		return err
	} else if pred == nil {
		return api.ErrorNilArgument
	}
	iter := begin.Clone()
	defer iter.Close()
	for iter.Equal(end) == false {
		x, _ := iter.Get()
		if pred(x) {
			*x = newvalue
		}
		iter.Next()
	}
	return nil
}

// Removecopyif copy the elements violating the predicate into the
// range starting at dest, the source stays untouched. Returns the
// number of elements copied.
func Removecopyif[T any](
	begin, end, dest api.Iterator[T], pred api.Predicatefn[T]) (int64, error) {

	if pred == nil {
		return 0, api.ErrorNilArgument
	}
	return Copyif(begin, end, dest, func(x *T) bool { return pred(x) == false })
}

// Fill overwrite every element of [begin, end) with value.
func Fill[T any](begin, end api.Iterator[T], value T) error {
	if err := checkrange(begin, end); err != nil {
		return err
	}
	iter := begin.Clone()
	defer iter.Close()
	for iter.Equal(end) == false {
		x, _ := iter.Get()
		*x = value
		iter.Next()
	}
	return nil
}

// Filln overwrite n elements starting at begin with value. Fails with
// ErrorIteratorEnd if the container ends early.
func Filln[T any](begin api.Iterator[T], n int64, value T) error {
	if begin == nil {
		return api.ErrorNilArgument
	} else if n < 0 {
		return api.ErrorInvalidArgument
	}
	iter := begin.Clone()
	defer iter.Close()
	for i := int64(0); i < n; i++ {
		x, err := iter.Get()
		if err != nil {
			return api.ErrorIteratorEnd
		}
		*x = value
		iter.Next()
	}
	return nil
}

// Generate overwrite every element of [begin, end) with gen().
func Generate[T any](begin, end api.Iterator[T], gen api.Generatefn[T]) error {
	if err := checkrange(begin, end); err != nil {
		return err
	} else if gen == nil {
		return api.ErrorNilArgument
	}
	iter := begin.Clone()
	defer iter.Close()
	for iter.Equal(end) == false {
		x, _ := iter.Get()
		*x = gen()
		iter.Next()
	}
	return nil
}

// Generaten overwrite n elements starting at begin with gen(). Fails
// with ErrorIteratorEnd if the container ends early.
func Generaten[T any](begin api.Iterator[T], n int64, gen api.Generatefn[T]) error {
	if begin == nil || gen == nil {
		return api.ErrorNilArgument
	} else if n < 0 {
		return api.ErrorInvalidArgument
	}
	iter := begin.Clone()
	defer iter.Close()
	for i := int64(0); i < n; i++ {
		x, err := iter.Get()
		if err != nil {
			return api.ErrorIteratorEnd
		}
		*x = gen()
		iter.Next()
	}
	return nil
}

// Unique drop consecutive duplicates by shifting the survivors left.
// Elements past the new logical end keep stale values, the container's
// size does not change. Returns an iterator at the new logical end and
// the number of duplicates dropped.
func Unique[T any](
	begin, end api.Iterator[T],
	cmp api.Comparefn[T]) (api.Iterator[T], int64, error) {

	if err := checkrange(begin, end); err != nil {
		return nil, 0, err
	} else if cmp == nil {
		return nil, 0, api.ErrorNilArgument
	}
	refs := gather(begin, end)
	kept := 0
	for i := 0; i < len(refs); i++ {
		if kept > 0 && cmp(refs[kept-1], refs[i]) == 0 {
			continue
		}
		if kept != i {
			*refs[kept] = *refs[i]
		}
		kept++
	}
	newend := begin.Clone()
	if err := Advance[T](newend, int64(kept)); err != nil {
		newend.Close()
		return nil, 0, err
	}
	return newend, int64(len(refs) - kept), nil
}

// Reverse the range with two cursors converging from both ends.
func Reverse[T any](begin, end api.Iterator[T]) error {
	if err := checkrange(begin, end); err != nil {
		return err
	}
	front, back := begin.Clone(), end.Clone()
	defer front.Close()
	defer back.Close()
	if front.Equal(back) {
		return nil
	}
	back.Prev()
	for front.Equal(back) == false {
		x, _ := front.Get()
		y, _ := back.Get()
		*x, *y = *y, *x
		front.Next()
		if front.Equal(back) {
			break
		}
		back.Prev()
	}
	return nil
}

// Rotate the range left so that middle becomes the first element,
// with three reversals.
func Rotate[T any](begin, middle, end api.Iterator[T]) error {
	if err := checkrange(begin, end); err != nil {
		return err
	} else if middle == nil {
		return api.ErrorNilArgument
	}
	if err := Reverse(begin, middle); err != nil {
		return err
	} else if err := Reverse(middle, end); err != nil {
		return err
	}
	return Reverse(begin, end)
}

// Shuffle the range with a Fisher-Yates walk over the lcg generator.
// Seed makes the permutation reproducible.
func Shuffle[T any](begin, end api.Iterator[T]) error {
	if err := checkrange(begin, end); err != nil {
		return err
	}
	refs := gather(begin, end)
	for i := len(refs) - 1; i > 0; i-- {
		j := shufflerng.intn(int64(i + 1))
		*refs[i], *refs[j] = *refs[j], *refs[i]
	}
	return nil
}

// Partition move every element satisfying the predicate before every
// element violating it, two cursors converging and swapping misplaced
// pairs. Not stable. Returns an iterator at the partition point, the
// first element of the false half.
func Partition[T any](
	begin, end api.Iterator[T],
	pred api.Predicatefn[T]) (api.Iterator[T], error) {

	if err := checkrange(begin, end); err != nil {
		return nil, err
	} else if pred == nil {
		return nil, api.ErrorNilArgument
	}
	refs := gather(begin, end)
	lo, hi := 0, len(refs)-1
	for lo < hi {
		for lo <= hi && pred(refs[lo]) {
			lo++
		}
		for hi > lo && pred(refs[hi]) == false {
			hi--
		}
		if lo < hi {
			*refs[lo], *refs[hi] = *refs[hi], *refs[lo]
		}
	}
	point := begin.Clone()
	if err := Advance[T](point, int64(lo)); err != nil {
		point.Close()
		return nil, err
	}
	return point, nil
}

// Ispartitioned report whether every element satisfying the predicate
// comes before every element violating it. True on an empty range.
func Ispartitioned[T any](
	begin, end api.Iterator[T], pred api.Predicatefn[T]) (bool, error) {

	if err := checkrange(begin, end); err != nil {
		return false, err
	} else if pred == nil {
		return false, api.ErrorNilArgument
	}
	iter, seenfalse := begin.Clone(), false
	defer iter.Close()
	for iter.Equal(end) == false {
		x, _ := iter.Get()
		if pred(x) {
			if seenfalse {
				return false, nil
			}
		} else {
			seenfalse = true
		}
		iter.Next()
	}
	return true, nil
}
