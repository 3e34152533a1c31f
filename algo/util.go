package algo

import "github.com/bnclabs/goseq/api"

// walk [begin, end) and collect a mutable reference per position.
// Random access over the collected slice lets index based algorithms
// run over list backed ranges as well.
func gather[T any](begin, end api.Iterator[T]) []*T {
	refs := []*T{}
	iter := begin.Clone()
	for iter.Equal(end) == false {
		x, err := iter.Get()
		if err != nil {
			break
		}
		refs = append(refs, x)
		iter.Next()
	}
	iter.Close()
	return refs
}

// Distance count the number of positions in [begin, end).
func Distance[T any](begin, end api.Iterator[T]) (int64, error) {
	if begin == nil || end == nil {
		return 0, api.ErrorNilArgument
	}
	count, iter := int64(0), begin.Clone()
	for iter.Equal(end) == false {
		if err := iter.Next(); err != nil {
			iter.Close()
			return 0, api.ErrorInvalidArgument
		}
		count++
	}
	iter.Close()
	return count, nil
}

// Advance step the iterator n positions forward, or backward when n
// is negative.
func Advance[T any](iter api.Iterator[T], n int64) error {
	if iter == nil {
		return api.ErrorNilArgument
	}
	for ; n > 0; n-- {
		if err := iter.Next(); err != nil {
			return err
		}
	}
	for ; n < 0; n++ {
		if err := iter.Prev(); err != nil {
			return err
		}
	}
	return nil
}

func checkrange[T any](begin, end api.Iterator[T]) error {
	if begin == nil || end == nil {
		return api.ErrorNilArgument
	}
	return nil
}
