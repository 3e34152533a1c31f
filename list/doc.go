// Package list implement a doubly-linked list container.
//
//   * Elements live in nodes linked both ways, index access is an
//     O(k) walk while pushes and pops at either end are O(1).
//   * Nodes can optionally be drawn from an object pool shared across
//     any number of lists, avoiding a runtime allocation per element.
//   * An optional element destructor runs on every removal, clear
//     and destroy.
//   * Thread safety is optional and coarse, when enabled a single
//     lock covers one container operation at a time. Iterators and
//     the generic algorithms never take this lock, running them
//     concurrently with mutation is unsafe regardless of the flag.
//
// Sort is a node-level merge sort, it relinks nodes instead of moving
// element values and is stable. Merge splices a second list onto the
// tail, leaving the second list empty.
package list
