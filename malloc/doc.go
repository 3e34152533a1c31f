// Package malloc supply pooled memory management for sequence
// containers, with a limited scope:
//
//   * Two pool flavours, a fixed-block pool handing out slabs of
//     uniform length and an object pool handing out pre-constructed
//     objects of one type.
//   * Pools maintain their own free-list, guarded by the pool's own
//     lock. Any number of containers may share one pool and call
//     Alloc/Free concurrently.
//   * Usage counters are advisory statistics maintained atomically,
//     they are read without the pool lock and are only eventually
//     consistent with the free-list under heavy contention.
//   * A block or object returned to a pool must have been handed out
//     by that same pool. Cross-pool frees are detected only when the
//     slab length differs.
//
// Blocks are never handed back to the runtime until the pool is
// released, the object pool being the one exception: when its free
// array is not allowed to grow any further, freed objects are
// destroyed and dropped instead of pooled.
package malloc
