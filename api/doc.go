// Package api define interfaces and common artifacts used by sequence
// containers, pooled allocators and the generic algorithms:
//
//   * Iterator interface, implemented once per container kind.
//   * Strategy function types supplied by callers to algorithms.
//   * Closed set of error values returned by fallible operations.
//
// Containers and algorithms from this module never communicate through
// anything other than these types.
package api
