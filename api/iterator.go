package api

// Direction with which an iterator starts scanning its container,
// Forward binds the cursor to the first element, Backward to the last.
// Direction only picks the starting position, Next and Prev always
// mean logical forward and logical backward movement.
type Direction byte

const (
	// Forward direction, iterate from the first element.
	Forward Direction = iota

	// Backward direction, iterate from the last element.
	Backward
)

// Iterator is a movable position bound to exactly one container
// instance. Containers implement this interface once for their storage
// layout, algorithms are written once against it and never learn the
// layout. An iterator holds a non-owning reference to its container:
// closing the iterator never affects the container, while destroying
// the container, or structurally growing an array-backed container,
// leaves outstanding iterators dangling. That is a caller error and is
// not detected.
type Iterator[T any] interface {
	// Next advance the cursor one logical position. Returns
	// ErrorIteratorEnd, without moving, if the cursor is already at
	// the end position.
	Next() error

	// Prev retreat the cursor one logical position. Returns
	// ErrorIteratorEnd, without moving, if the cursor is already at
	// the first element.
	Prev() error

	// Get return a mutable reference to the element under the cursor.
	// Returns ErrorIteratorEnd if the cursor is at the end position.
	Get() (*T, error)

	// Valid report whether the cursor denotes a dereferenceable
	// element, false exactly at the end position and on an empty
	// container.
	Valid() bool

	// Clone return an independent iterator with identical cursor
	// state, sharing the container reference. Advancing the clone
	// never moves the source.
	Clone() Iterator[T]

	// Close release the iterator object back to its container's
	// iterator pool. The iterator must not be used after Close.
	Close()

	// Equal is true iff other is bound to the same container instance
	// and denotes the same logical cursor.
	Equal(other Iterator[T]) bool
}
