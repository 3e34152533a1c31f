package list

import "fmt"
import "sync"

import "github.com/bnclabs/goseq/api"
import "github.com/bnclabs/goseq/malloc"
import s "github.com/bnclabs/gosettings"

// List is a doubly-linked list of elements of type T. All sizes and
// indices are int64, indexed operations walk the links and cost O(k).
type List[T any] struct {
	// 64-bit aligned stats
	n_pushes     int64
	n_inserts    int64
	n_erases     int64
	n_dtors      int64
	n_activeiter int64

	name     string
	head     *Node[T]
	tail     *Node[T]
	size     int64
	dtor     api.Dtorfn[T]
	nodepool *malloc.Objpool[Node[T]]
	rw       sync.Mutex
	iterpool chan *Iterator[T]
	dead     bool

	// settings
	threadsafe   bool
	iterpoolsize int64
	setts        s.Settings
	logprefix    string
}

// NewList create a new list instance. Returns nil if settings are
// outside their legal domain.
func NewList[T any](name string, setts s.Settings) *List[T] {
	lst := &List[T]{name: name}
	lst.logprefix = fmt.Sprintf("LIST [%s]", name)
	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	lst.threadsafe = setts.Bool("threadsafe")
	lst.iterpoolsize = setts.Int64("iterpool.size")
	lst.setts = setts
	if lst.iterpoolsize < 0 {
		errorf("%v invalid iterpool.size %v\n", lst.logprefix, lst.iterpoolsize)
		return nil
	}
	lst.iterpool = make(chan *Iterator[T], lst.iterpoolsize)
	infof("%v started ...\n", lst.logprefix)
	return lst
}

// Setdestructor configure an element destructor, invoked on every
// element removal, clear and destroy. Destructors shall be idempotent.
func (lst *List[T]) Setdestructor(dtor api.Dtorfn[T]) *List[T] {
	lst.dtor = dtor
	return lst
}

//---- container operations

// Pushfront prepend an element at the head.
func (lst *List[T]) Pushfront(value T) error {
	lst.lock()
	nd := lst.newnode(value)
	nd.next = lst.head
	if lst.head != nil {
		lst.head.prev = nd
	} else {
		lst.tail = nd
	}
	lst.head = nd
	lst.size++
	lst.n_pushes++
	lst.unlock()
	return nil
}

// Pushback append an element at the tail.
func (lst *List[T]) Pushback(value T) error {
	lst.lock()
	nd := lst.newnode(value)
	nd.prev = lst.tail
	if lst.tail != nil {
		lst.tail.next = nd
	} else {
		lst.head = nd
	}
	lst.tail = nd
	lst.size++
	lst.n_pushes++
	lst.unlock()
	return nil
}

// Popfront remove the head element, running the destructor over it.
func (lst *List[T]) Popfront() error {
	lst.lock()
	if lst.head == nil {
		lst.unlock()
		return api.ErrorEmpty
	}
	nd := lst.head
	lst.head = nd.next
	if lst.head != nil {
		lst.head.prev = nil
	} else {
		lst.tail = nil
	}
	lst.size--
	lst.n_erases++
	lst.freenode(nd)
	lst.unlock()
	return nil
}

// Popback remove the tail element, running the destructor over it.
func (lst *List[T]) Popback() error {
	lst.lock()
	if lst.tail == nil {
		lst.unlock()
		return api.ErrorEmpty
	}
	nd := lst.tail
	lst.tail = nd.prev
	if lst.tail != nil {
		lst.tail.next = nil
	} else {
		lst.head = nil
	}
	lst.size--
	lst.n_erases++
	lst.freenode(nd)
	lst.unlock()
	return nil
}

// Front return a copy of the head element.
func (lst *List[T]) Front() (value T, err error) {
	lst.lock()
	if lst.head == nil {
		lst.unlock()
		return value, api.ErrorEmpty
	}
	value = lst.head.value
	lst.unlock()
	return value, nil
}

// Back return a copy of the tail element.
func (lst *List[T]) Back() (value T, err error) {
	lst.lock()
	if lst.tail == nil {
		lst.unlock()
		return value, api.ErrorEmpty
	}
	value = lst.tail.value
	lst.unlock()
	return value, nil
}

// Insert an element before position index, index == Size() appends.
// Walks the links, O(k).
func (lst *List[T]) Insert(index int64, value T) error {
	lst.lock()
	if index < 0 || index > lst.size {
		lst.unlock()
		return api.ErrorInvalidIndex
	} else if index == lst.size {
		lst.unlock()
		return lst.Pushback(value)
	} else if index == 0 {
		lst.unlock()
		return lst.Pushfront(value)
	}
	at := lst.nodeat(index)
	nd := lst.newnode(value)
	nd.prev, nd.next = at.prev, at
	at.prev.next, at.prev = nd, nd
	lst.size++
	lst.n_inserts++
	lst.unlock()
	return nil
}

// Insertbefore insert an element before the iterator position,
// inserting before the end position appends.
func (lst *List[T]) Insertbefore(iter api.Iterator[T], value T) error {
	it, ok := iter.(*Iterator[T])
	if ok == false || it.lst != lst {
		return api.ErrorInvalidArgument
	}
	lst.lock()
	if it.node == nil { // end position
		lst.unlock()
		return lst.Pushback(value)
	} else if it.node == lst.head {
		lst.unlock()
		return lst.Pushfront(value)
	}
	nd := lst.newnode(value)
	nd.prev, nd.next = it.node.prev, it.node
	it.node.prev.next, it.node.prev = nd, nd
	lst.size++
	lst.n_inserts++
	lst.unlock()
	return nil
}

// Insertafter insert an element after the iterator position.
func (lst *List[T]) Insertafter(iter api.Iterator[T], value T) error {
	it, ok := iter.(*Iterator[T])
	if ok == false || it.lst != lst {
		return api.ErrorInvalidArgument
	}
	lst.lock()
	if it.node == nil {
		lst.unlock()
		return api.ErrorIteratorEnd
	} else if it.node == lst.tail {
		lst.unlock()
		return lst.Pushback(value)
	}
	nd := lst.newnode(value)
	nd.prev, nd.next = it.node, it.node.next
	it.node.next.prev, it.node.next = nd, nd
	lst.size++
	lst.n_inserts++
	lst.unlock()
	return nil
}

// Erase the element under the iterator, running the destructor over
// it. The iterator dangles afterwards, clones made before the erase
// stay usable.
func (lst *List[T]) Erase(iter api.Iterator[T]) error {
	it, ok := iter.(*Iterator[T])
	if ok == false || it.lst != lst {
		return api.ErrorInvalidArgument
	}
	lst.lock()
	if it.node == nil {
		lst.unlock()
		return api.ErrorIteratorEnd
	}
	lst.unlinknode(it.node)
	lst.freenode(it.node)
	lst.unlock()
	return nil
}

// Remove every element comparing equal to value, running the
// destructor over each.
func (lst *List[T]) Remove(value T, cmp api.Comparefn[T]) error {
	if cmp == nil {
		return api.ErrorNilArgument
	}
	lst.lock()
	nd := lst.head
	for nd != nil {
		next := nd.next
		if cmp(&nd.value, &value) == 0 {
			lst.unlinknode(nd)
			lst.freenode(nd)
		}
		nd = next
	}
	lst.unlock()
	return nil
}

// Find the first element comparing equal to value, returns an
// iterator at the match, or ErrorNotFound.
func (lst *List[T]) Find(value T, cmp api.Comparefn[T]) (api.Iterator[T], error) {
	if cmp == nil {
		return nil, api.ErrorNilArgument
	}
	lst.lock()
	for nd := lst.head; nd != nil; nd = nd.next {
		if cmp(&nd.value, &value) == 0 {
			iter := lst.getiterator()
			iter.direction, iter.node = api.Forward, nd
			lst.unlock()
			return iter, nil
		}
	}
	lst.unlock()
	return nil, api.ErrorNotFound
}

// At return a copy of the element at index. Walks the links, O(k).
func (lst *List[T]) At(index int64) (value T, err error) {
	lst.lock()
	if index < 0 || index >= lst.size {
		lst.unlock()
		return value, api.ErrorInvalidIndex
	}
	value = lst.nodeat(index).value
	lst.unlock()
	return value, nil
}

// Set overwrite the element at index, running the destructor over the
// old element. Walks the links, O(k).
func (lst *List[T]) Set(index int64, value T) error {
	lst.lock()
	if index < 0 || index >= lst.size {
		lst.unlock()
		return api.ErrorInvalidIndex
	}
	nd := lst.nodeat(index)
	lst.rundtor(&nd.value)
	nd.value = value
	lst.unlock()
	return nil
}

// Reverse the list in place by relinking nodes.
func (lst *List[T]) Reverse() error {
	lst.lock()
	var prev *Node[T]
	nd := lst.head
	lst.head, lst.tail = lst.tail, lst.head
	for nd != nil {
		next := nd.next
		nd.next, nd.prev = prev, next
		prev, nd = nd, next
	}
	lst.unlock()
	return nil
}

// Merge splice the other list onto this list's tail, leaving other
// empty. Elements keep their nodes, no values are copied.
func (lst *List[T]) Merge(other *List[T]) error {
	if other == nil {
		return api.ErrorNilArgument
	}
	lst.lock()
	other.lock()
	if other.head != nil {
		if lst.head == nil {
			lst.head, lst.tail = other.head, other.tail
		} else {
			lst.tail.next, other.head.prev = other.head, lst.tail
			lst.tail = other.tail
		}
		lst.size += other.size
		other.head, other.tail, other.size = nil, nil, 0
	}
	other.unlock()
	lst.unlock()
	return nil
}

// Sort the list with a node-level merge sort, relinking nodes instead
// of copying values. Stable, O(n log n) with O(log n) recursion and no
// extra element storage.
func (lst *List[T]) Sort(cmp api.Comparefn[T]) error {
	if cmp == nil {
		return api.ErrorNilArgument
	}
	lst.lock()
	if lst.head != nil {
		lst.head = mergesort(lst.head, cmp)
		nd := lst.head
		for nd.next != nil {
			nd = nd.next
		}
		lst.tail = nd
	}
	lst.unlock()
	return nil
}

// Clear remove all elements, running the destructor over each.
func (lst *List[T]) Clear() {
	lst.lock()
	nd := lst.head
	for nd != nil {
		next := nd.next
		lst.size--
		lst.n_erases++
		lst.freenode(nd)
		nd = next
	}
	lst.head, lst.tail, lst.size = nil, nil, 0
	lst.unlock()
}

// Size return the number of live elements.
func (lst *List[T]) Size() int64 {
	lst.lock()
	size := lst.size
	lst.unlock()
	return size
}

// Empty is true when the list has no live elements.
func (lst *List[T]) Empty() bool {
	return lst.Size() == 0
}

// Destroy the list, running the destructor over every live element.
// Outstanding iterators dangle afterwards.
func (lst *List[T]) Destroy() error {
	lst.Clear()
	lst.lock()
	lst.dead = true
	lst.unlock()
	infof("%v destroyed\n", lst.logprefix)
	return nil
}

//---- concurrency toggle

// Enablethreadsafety make every container operation acquire the
// container lock. The lock covers one operation at a time, iterators
// and algorithms never acquire it.
func (lst *List[T]) Enablethreadsafety() error {
	lst.threadsafe = true
	return nil
}

// Disablethreadsafety stop acquiring the container lock. Unsafe while
// other threads still operate on this container.
func (lst *List[T]) Disablethreadsafety() error {
	lst.threadsafe = false
	return nil
}

func (lst *List[T]) lock() {
	if lst.threadsafe {
		lst.rw.Lock()
	}
}

func (lst *List[T]) unlock() {
	if lst.threadsafe {
		lst.rw.Unlock()
	}
}

//---- node pool plumbing

// Setnodepool draw future nodes from an object pool. The pool can be
// shared by any number of lists of the same element type.
func (lst *List[T]) Setnodepool(pool *malloc.Objpool[Node[T]]) error {
	if pool == nil {
		return api.ErrorNilArgument
	}
	lst.lock()
	lst.nodepool = pool
	lst.unlock()
	return nil
}

// Removenodepool detach the pool. Nodes drawn earlier are abandoned
// to the collector as they are erased, the pool keeps counting them
// as allocated.
func (lst *List[T]) Removenodepool() error {
	lst.lock()
	lst.nodepool = nil
	lst.unlock()
	return nil
}

//---- local functions

func (lst *List[T]) newnode(value T) *Node[T] {
	if lst.nodepool != nil {
		return lst.nodepool.Alloc().reset(value)
	}
	return &Node[T]{value: value}
}

// run the element destructor and release the node.
func (lst *List[T]) freenode(nd *Node[T]) {
	lst.rundtor(&nd.value)
	nd.next, nd.prev = nil, nil
	if lst.nodepool != nil {
		lst.nodepool.Free(nd)
	}
}

func (lst *List[T]) unlinknode(nd *Node[T]) {
	if nd.prev != nil {
		nd.prev.next = nd.next
	} else {
		lst.head = nd.next
	}
	if nd.next != nil {
		nd.next.prev = nd.prev
	} else {
		lst.tail = nd.prev
	}
	lst.size--
	lst.n_erases++
}

func (lst *List[T]) rundtor(x *T) {
	if lst.dtor != nil {
		lst.dtor(x)
		lst.n_dtors++
	}
}

func (lst *List[T]) nodeat(index int64) *Node[T] {
	nd := lst.head
	for i := int64(0); i < index; i++ {
		nd = nd.next
	}
	return nd
}

// split with slow/fast walkers, sort both halves, relink.
func mergesort[T any](head *Node[T], cmp api.Comparefn[T]) *Node[T] {
	if head == nil || head.next == nil {
		return head
	}

	slow, fast := head, head.next
	for fast != nil && fast.next != nil {
		slow, fast = slow.next, fast.next.next
	}
	right := slow.next
	slow.next, right.prev = nil, nil

	left := mergesort(head, cmp)
	right = mergesort(right, cmp)

	var dummy Node[T]
	tail := &dummy
	for left != nil && right != nil {
		if cmp(&left.value, &right.value) <= 0 {
			tail.next, left.prev = left, tail
			left = left.next
		} else {
			tail.next, right.prev = right, tail
			right = right.next
		}
		tail = tail.next
	}
	if left != nil {
		tail.next, left.prev = left, tail
	} else if right != nil {
		tail.next, right.prev = right, tail
	}

	result := dummy.next
	result.prev = nil
	return result
}
