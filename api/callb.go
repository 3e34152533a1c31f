package api

// Comparefn strict-weak-order comparator supplied by callers, returns
// a value <0,==0,>0 when a sorts before, same-as, after b.
type Comparefn[T any] func(a, b *T) int

// Predicatefn caller supplied predicate over one element.
type Predicatefn[T any] func(x *T) bool

// Visitfn caller supplied operation applied to one element in place.
type Visitfn[T any] func(x *T)

// Unaryopfn caller supplied transformation of one element.
type Unaryopfn[T any] func(x *T) T

// Binaryopfn caller supplied transformation combining two elements.
type Binaryopfn[T any] func(a, b *T) T

// Generatefn caller supplied element generator.
type Generatefn[T any] func() T

// Dtorfn caller supplied destructor invoked on an element before it is
// removed from its container, meant to release nested resources owned
// by the element. Destructors shall be idempotent, teardown guarantees
// every live element is visited but never that an element is visited
// exactly once.
type Dtorfn[T any] func(x *T)
