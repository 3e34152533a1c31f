package list

import "sync/atomic"
import "unsafe"

import humanize "github.com/dustin/go-humanize"

// Stats return a map of list counters and dimensions.
//
//   "size"        number of live elements,
//   "memory"      bytes held by live nodes,
//   "n_pushes"    elements pushed so far,
//   "n_inserts"   elements inserted so far,
//   "n_erases"    elements removed so far,
//   "n_dtors"     destructor invocations,
//   "n_activeiter" iterators currently open.
func (lst *List[T]) Stats() map[string]interface{} {
	var zero Node[T]
	nodesz := int64(unsafe.Sizeof(zero))
	lst.lock()
	stats := map[string]interface{}{
		"size":         lst.size,
		"memory":       lst.size * nodesz,
		"n_pushes":     lst.n_pushes,
		"n_inserts":    lst.n_inserts,
		"n_erases":     lst.n_erases,
		"n_dtors":      lst.n_dtors,
		"n_activeiter": atomic.LoadInt64(&lst.n_activeiter),
	}
	lst.unlock()
	return stats
}

// Log list statistics via the configured logger.
func (lst *List[T]) Log() {
	stats := lst.Stats()
	memory := humanize.Bytes(uint64(stats["memory"].(int64)))
	fmsg := "%v size:%v memory:%v pushes:%v inserts:%v erases:%v dtors:%v\n"
	infof(
		fmsg, lst.logprefix, stats["size"], memory, stats["n_pushes"],
		stats["n_inserts"], stats["n_erases"], stats["n_dtors"])
}

// Validate list invariants. Panics on a broken invariant.
func (lst *List[T]) Validate() {
	lst.lock()
	defer lst.unlock()

	count, prev := int64(0), (*Node[T])(nil)
	for nd := lst.head; nd != nil; nd = nd.next {
		if nd.prev != prev {
			panicerr("%v broken prev link at node %v", lst.logprefix, count)
		}
		count++
		prev = nd
	}
	if count != lst.size {
		panicerr("%v walked:%v size:%v", lst.logprefix, count, lst.size)
	} else if prev != lst.tail {
		panicerr("%v tail link does not close the chain", lst.logprefix)
	} else if lst.dead && lst.head != nil {
		panicerr("%v destroyed but holding nodes", lst.logprefix)
	}
}
