// Package algo implement generic sequence algorithms over iterator
// ranges. Every entry point takes a half-open range [begin, end) of
// api.Iterator values bound to the same container, plus a caller
// supplied strategy function, a comparator, predicate or operation.
// Algorithms mutate elements in place through iterator references and
// never touch the container directly, so a single implementation works
// over array backed and list backed storage alike.
//
// An empty range is a no-op success. Strategy functions are never
// evaluated on an end position. Algorithms do not acquire the
// container lock, running one concurrently with container mutation is
// unsafe regardless of the container's thread-safety flag.
package algo
