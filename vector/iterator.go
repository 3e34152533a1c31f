package vector

import "sync/atomic"

import "github.com/bnclabs/goseq/api"

// Iterator over a vector, the cursor is a logical index. index ==
// size is the end position, never dereferenceable. Iterators do not
// acquire the container lock and dangle once the array is structurally
// grown or destroyed.
type Iterator[T any] struct {
	vec       *Vector[T]
	index     int64
	direction api.Direction
	closed    bool
}

// NewIterator create an iterator bound to this vector. Forward
// direction starts at the first element, Backward at the last.
// Returns nil only if the vector handle is nil.
func (vec *Vector[T]) NewIterator(direction api.Direction) api.Iterator[T] {
	if vec == nil {
		return nil
	}
	iter := vec.getiterator()
	iter.direction = direction
	if direction == api.Forward || vec.size == 0 {
		iter.index = 0
	} else {
		iter.index = vec.size - 1
	}
	return iter
}

// Begin return an iterator at the first element.
func (vec *Vector[T]) Begin() api.Iterator[T] {
	return vec.NewIterator(api.Forward)
}

// End return the one-past-the-last iterator, structurally valid to
// hold but never dereferenceable.
func (vec *Vector[T]) End() api.Iterator[T] {
	if vec == nil {
		return nil
	}
	iter := vec.getiterator()
	iter.direction = api.Forward
	iter.index = vec.size
	return iter
}

// Next implement api.Iterator{} interface.
func (iter *Iterator[T]) Next() error {
	if iter.closed {
		panic("cannot iterate over a closed iterator")
	} else if iter.index >= iter.vec.size {
		return api.ErrorIteratorEnd
	}
	iter.index++
	return nil
}

// Prev implement api.Iterator{} interface.
func (iter *Iterator[T]) Prev() error {
	if iter.closed {
		panic("cannot iterate over a closed iterator")
	} else if iter.index <= 0 {
		return api.ErrorIteratorEnd
	}
	iter.index--
	return nil
}

// Get implement api.Iterator{} interface.
func (iter *Iterator[T]) Get() (*T, error) {
	if iter.closed {
		panic("cannot iterate over a closed iterator")
	} else if iter.index >= iter.vec.size {
		return nil, api.ErrorIteratorEnd
	}
	return &iter.vec.data[iter.index], nil
}

// Valid implement api.Iterator{} interface.
func (iter *Iterator[T]) Valid() bool {
	return iter.closed == false && iter.index < iter.vec.size
}

// Clone implement api.Iterator{} interface.
func (iter *Iterator[T]) Clone() api.Iterator[T] {
	if iter.closed {
		panic("cannot iterate over a closed iterator")
	}
	newiter := iter.vec.getiterator()
	newiter.index, newiter.direction = iter.index, iter.direction
	return newiter
}

// Close implement api.Iterator{} interface.
func (iter *Iterator[T]) Close() {
	if iter.closed == false {
		iter.closed = true
		iter.vec.putiterator(iter)
	}
}

// Equal implement api.Iterator{} interface.
func (iter *Iterator[T]) Equal(other api.Iterator[T]) bool {
	oth, ok := other.(*Iterator[T])
	if ok == false {
		return false
	}
	return iter.vec == oth.vec && iter.index == oth.index
}

//---- iterator pool

func (vec *Vector[T]) getiterator() (iter *Iterator[T]) {
	select {
	case iter = <-vec.iterpool:
	default:
		iter = &Iterator[T]{}
	}
	iter.vec, iter.closed = vec, false
	atomic.AddInt64(&vec.n_activeiter, 1)
	return iter
}

func (vec *Vector[T]) putiterator(iter *Iterator[T]) {
	atomic.AddInt64(&vec.n_activeiter, -1)
	select {
	case vec.iterpool <- iter:
	default: // overflowing, let it go.
	}
}
