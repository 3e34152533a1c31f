package vector

import "sync/atomic"
import "unsafe"

import humanize "github.com/dustin/go-humanize"

// Stats return a map of vector counters and dimensions.
//
//   "size"        number of live elements,
//   "capacity"    number of element slots reserved,
//   "memory"      bytes held by the backing storage,
//   "n_pushes"    elements appended so far,
//   "n_inserts"   elements inserted so far,
//   "n_erases"    elements removed so far,
//   "n_grows"     number of storage relocations,
//   "n_dtors"     destructor invocations,
//   "n_activeiter" iterators currently open.
func (vec *Vector[T]) Stats() map[string]interface{} {
	var zero T
	elemsz := int64(unsafe.Sizeof(zero))
	vec.lock()
	stats := map[string]interface{}{
		"size":         vec.size,
		"capacity":     vec.capacity,
		"memory":       vec.capacity * elemsz,
		"n_pushes":     vec.n_pushes,
		"n_inserts":    vec.n_inserts,
		"n_erases":     vec.n_erases,
		"n_grows":      vec.n_grows,
		"n_dtors":      vec.n_dtors,
		"n_activeiter": atomic.LoadInt64(&vec.n_activeiter),
	}
	vec.unlock()
	return stats
}

// Log vector statistics via the configured logger.
func (vec *Vector[T]) Log() {
	stats := vec.Stats()
	memory := humanize.Bytes(uint64(stats["memory"].(int64)))
	fmsg := "%v size:%v capacity:%v memory:%v grows:%v\n"
	infof(
		fmsg, vec.logprefix, stats["size"], stats["capacity"], memory,
		stats["n_grows"])
	fmsg = "%v pushes:%v inserts:%v erases:%v dtors:%v activeiter:%v\n"
	infof(
		fmsg, vec.logprefix, stats["n_pushes"], stats["n_inserts"],
		stats["n_erases"], stats["n_dtors"], stats["n_activeiter"])
}

// Validate vector invariants. Panics on a broken invariant.
func (vec *Vector[T]) Validate() {
	vec.lock()
	defer vec.unlock()

	if vec.size < 0 || vec.size > vec.capacity {
		panicerr("%v size:%v capacity:%v", vec.logprefix, vec.size, vec.capacity)
	} else if int64(len(vec.data)) != vec.capacity {
		panicerr("%v data:%v capacity:%v", vec.logprefix, len(vec.data), vec.capacity)
	} else if vec.dead && vec.data != nil {
		panicerr("%v destroyed but holding storage", vec.logprefix)
	}
}
