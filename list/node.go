package list

// Node carry one element of a list. Nodes are linked both ways and
// can be pooled via malloc.Objpool[Node[T]] shared across lists.
type Node[T any] struct {
	value T
	next  *Node[T]
	prev  *Node[T]
}

// Value return a mutable reference to the element carried by this
// node.
func (nd *Node[T]) Value() *T {
	return &nd.value
}

func (nd *Node[T]) reset(value T) *Node[T] {
	nd.value, nd.next, nd.prev = value, nil, nil
	return nd
}
