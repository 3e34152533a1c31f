// Package vector implement a growable array container.
//
//   * Elements are stored contiguously, index access is O(1).
//   * Growth follows a staged policy, small arrays grow by a fixed
//     stride, mid-sized arrays multiply by the growth factor, large
//     arrays grow by fixed pages.
//   * Backing storage can optionally be drawn from a fixed-block pool,
//     in which case the array cannot grow past the pool's slab length.
//   * An optional element destructor runs on every removal, clear and
//     destroy.
//   * Thread safety is optional and coarse, when enabled a single lock
//     covers one container operation at a time. Iterators and the
//     generic algorithms never take this lock, running them
//     concurrently with mutation is unsafe regardless of the flag.
//
// Structural growth relocates storage and invalidates outstanding
// iterators, using such an iterator is undefined behaviour and is not
// detected.
package vector
