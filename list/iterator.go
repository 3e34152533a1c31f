package list

import "sync/atomic"

import "github.com/bnclabs/goseq/api"

// Iterator over a list, a cursor on a node. A nil node is the end
// position, one past the tail. Iterators never acquire the container
// lock, concurrent mutation of the container is the caller's problem.
type Iterator[T any] struct {
	lst       *List[T]
	node      *Node[T]
	direction api.Direction
	closed    bool
}

// NewIterator create an iterator positioned at the first element in
// iteration order, head for Forward, tail for Backward.
func (lst *List[T]) NewIterator(direction api.Direction) *Iterator[T] {
	if lst == nil {
		return nil
	}
	iter := lst.getiterator()
	iter.direction = direction
	if direction == api.Backward {
		iter.node = lst.tail
	} else {
		iter.node = lst.head
	}
	return iter
}

// Begin return an iterator at the head.
func (lst *List[T]) Begin() *Iterator[T] {
	if lst == nil {
		return nil
	}
	iter := lst.getiterator()
	iter.direction, iter.node = api.Forward, lst.head
	return iter
}

// End return an iterator at the end position, one past the tail.
func (lst *List[T]) End() *Iterator[T] {
	if lst == nil {
		return nil
	}
	iter := lst.getiterator()
	iter.direction, iter.node = api.Forward, nil
	return iter
}

// Next implement api.Iterator{} interface. Stepping past the end
// returns ErrorIteratorEnd without moving.
func (iter *Iterator[T]) Next() error {
	if iter.closed {
		panic("cannot iterate over a closed iterator")
	} else if iter.node == nil {
		return api.ErrorIteratorEnd
	}
	iter.node = iter.node.next
	return nil
}

// Prev implement api.Iterator{} interface. Stepping before the head
// returns ErrorIteratorEnd without moving, stepping back from the end
// position lands on the tail.
func (iter *Iterator[T]) Prev() error {
	if iter.closed {
		panic("cannot iterate over a closed iterator")
	} else if iter.node == nil {
		if iter.lst.tail == nil {
			return api.ErrorIteratorEnd
		}
		iter.node = iter.lst.tail
		return nil
	} else if iter.node.prev == nil {
		return api.ErrorIteratorEnd
	}
	iter.node = iter.node.prev
	return nil
}

// Get implement api.Iterator{} interface, returns a reference to the
// element under the cursor.
func (iter *Iterator[T]) Get() (*T, error) {
	if iter.closed {
		panic("cannot iterate over a closed iterator")
	} else if iter.node == nil {
		return nil, api.ErrorIteratorEnd
	}
	return &iter.node.value, nil
}

// Valid implement api.Iterator{} interface, false at the end position.
func (iter *Iterator[T]) Valid() bool {
	return iter.closed == false && iter.node != nil
}

// Clone implement api.Iterator{} interface, an independent cursor at
// the same position.
func (iter *Iterator[T]) Clone() api.Iterator[T] {
	if iter.closed {
		panic("cannot iterate over a closed iterator")
	}
	newiter := iter.lst.getiterator()
	newiter.direction, newiter.node = iter.direction, iter.node
	return newiter
}

// Close implement api.Iterator{} interface, returns the iterator to
// the container's free pool.
func (iter *Iterator[T]) Close() {
	if iter.closed == false {
		iter.closed = true
		iter.lst.putiterator(iter)
	}
}

// Equal is true when other iterates the same container and sits on
// the same position.
func (iter *Iterator[T]) Equal(other api.Iterator[T]) bool {
	it, ok := other.(*Iterator[T])
	if ok == false {
		return false
	}
	return iter.lst == it.lst && iter.node == it.node
}

//---- iterator pool

func (lst *List[T]) getiterator() (iter *Iterator[T]) {
	select {
	case iter = <-lst.iterpool:
	default:
		iter = &Iterator[T]{}
	}
	iter.lst, iter.node, iter.closed = lst, nil, false
	atomic.AddInt64(&lst.n_activeiter, 1)
	return iter
}

func (lst *List[T]) putiterator(iter *Iterator[T]) {
	atomic.AddInt64(&lst.n_activeiter, -1)
	select {
	case lst.iterpool <- iter:
	default: // pool is full, drop the iterator on the floor
	}
}
