package malloc

import "fmt"
import "sync"
import "sync/atomic"
import "unsafe"

import "github.com/bnclabs/goseq/api"
import humanize "github.com/dustin/go-humanize"
import s "github.com/bnclabs/gosettings"

// Objpool is a growable object pool, it manages reusable pointers to
// pre-constructed objects of one type. Alloc pops from the free array,
// on exhaustion `grow` new objects are eagerly constructed. Free
// appends the pointer back to the free array; when the free array has
// reached its "maxfree" ceiling the object is destroyed and dropped
// instead of pooled, graceful degradation rather than failure. The
// optional destructor runs on pool teardown and on dropped objects,
// never on a plain Free.
type Objpool[T any] struct {
	// 64-bit aligned counters, maintained atomically, advisory.
	nallocated int64 // objects currently with callers
	nfree      int64 // objects parked in the free array
	ncreated   int64 // objects ever constructed by this pool
	ndropped   int64 // freed objects destroyed because of the ceiling

	name      string
	grow      int64
	maxfree   int64
	freeobjs  []*T
	construct func() *T
	dtor      api.Dtorfn[T]
	rw        sync.Mutex
	logprefix string
}

// NewObjpool create a new object pool. `construct` can be nil, in
// which case objects are zero-valued. `dtor` can be nil. Returns nil
// if "initial", "grow" or "maxfree" settings are outside their legal
// domain.
func NewObjpool[T any](
	name string, setts s.Settings,
	construct func() *T, dtor api.Dtorfn[T]) *Objpool[T] {

	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	initial, grow := setts.Int64("initial"), setts.Int64("grow")
	maxfree := setts.Int64("maxfree")
	if initial < 0 || grow <= 0 || maxfree <= 0 {
		errorf(
			"objpool %q invalid initial:%v grow:%v maxfree:%v",
			name, initial, grow, maxfree)
		return nil
	}
	if construct == nil {
		construct = func() *T { return new(T) }
	}
	pool := &Objpool[T]{
		name:      name,
		grow:      grow,
		maxfree:   maxfree,
		freeobjs:  make([]*T, 0, initial),
		construct: construct,
		dtor:      dtor,
	}
	pool.logprefix = fmt.Sprintf("OBJP [%s]", name)
	for i := int64(0); i < initial; i++ {
		pool.freeobjs = append(pool.freeobjs, pool.construct())
		pool.ncreated++
		pool.nfree++
	}
	infof(
		"%v initial:%v grow:%v maxfree:%v started ...\n",
		pool.logprefix, initial, grow, maxfree)
	return pool
}

// Alloc an object from the pool. Contents are whatever the previous
// user, or the constructor, left in it.
func (pool *Objpool[T]) Alloc() *T {
	pool.rw.Lock()
	if len(pool.freeobjs) == 0 {
		for i := int64(0); i < pool.grow; i++ {
			pool.freeobjs = append(pool.freeobjs, pool.construct())
			atomic.AddInt64(&pool.ncreated, 1)
			atomic.AddInt64(&pool.nfree, 1)
		}
	}
	n := len(pool.freeobjs)
	obj := pool.freeobjs[n-1]
	pool.freeobjs[n-1] = nil
	pool.freeobjs = pool.freeobjs[:n-1]
	atomic.AddInt64(&pool.nfree, -1)
	atomic.AddInt64(&pool.nallocated, 1)
	pool.rw.Unlock()
	return obj
}

// Free an object back to the pool. The object must have been handed
// out by this pool, the destructor is not invoked unless the free
// array refuses to grow beyond its ceiling.
func (pool *Objpool[T]) Free(obj *T) error {
	if obj == nil {
		return api.ErrorNilArgument
	}
	pool.rw.Lock()
	if int64(len(pool.freeobjs)) >= pool.maxfree {
		// free array cannot be grown, fall back to the collector.
		if pool.dtor != nil {
			pool.dtor(obj)
		}
		atomic.AddInt64(&pool.ndropped, 1)
		atomic.AddInt64(&pool.ncreated, -1)
		atomic.AddInt64(&pool.nallocated, -1)
		pool.rw.Unlock()
		return nil
	}
	pool.freeobjs = append(pool.freeobjs, obj)
	atomic.AddInt64(&pool.nfree, 1)
	atomic.AddInt64(&pool.nallocated, -1)
	pool.rw.Unlock()
	return nil
}

// Destroy the pool, running the destructor over every pooled object.
// Outstanding objects are the caller's problem.
func (pool *Objpool[T]) Destroy() {
	pool.rw.Lock()
	if pool.dtor != nil {
		for _, obj := range pool.freeobjs {
			pool.dtor(obj)
		}
	}
	pool.freeobjs = nil
	pool.rw.Unlock()
	infof("%v destroyed\n", pool.logprefix)
}

// Stats return pool counters. Read without the pool lock, eventually
// consistent with the free array:
//
//   "allocated" objects currently with callers,
//   "free"      objects parked in the free array,
//   "created"   objects ever constructed and still pooled or out,
//   "dropped"   freed objects destroyed because of the ceiling,
//   "capacity"  bytes managed by this pool.
func (pool *Objpool[T]) Stats() map[string]interface{} {
	var zero T
	elemsz := int64(unsafe.Sizeof(zero))
	created := atomic.LoadInt64(&pool.ncreated)
	return map[string]interface{}{
		"allocated": atomic.LoadInt64(&pool.nallocated),
		"free":      atomic.LoadInt64(&pool.nfree),
		"created":   created,
		"dropped":   atomic.LoadInt64(&pool.ndropped),
		"capacity":  created * elemsz,
	}
}

// Log pool statistics via the configured logger.
func (pool *Objpool[T]) Log() {
	stats := pool.Stats()
	capacity := humanize.Bytes(uint64(stats["capacity"].(int64)))
	fmsg := "%v allocated:%v free:%v created:%v dropped:%v capacity:%v\n"
	infof(
		fmsg, pool.logprefix, stats["allocated"], stats["free"],
		stats["created"], stats["dropped"], capacity)
}

// Validate pool invariants, mainly counter conservation. Panics on
// a broken invariant.
func (pool *Objpool[T]) Validate() {
	pool.rw.Lock()
	defer pool.rw.Unlock()

	allocated := atomic.LoadInt64(&pool.nallocated)
	free, created := atomic.LoadInt64(&pool.nfree), atomic.LoadInt64(&pool.ncreated)
	if allocated < 0 || free < 0 {
		panicerr("%v negative counters %v,%v", pool.logprefix, allocated, free)
	} else if (allocated + free) != created {
		fmsg := "%v allocated:%v + free:%v != created:%v"
		panicerr(fmsg, pool.logprefix, allocated, free, created)
	} else if int64(len(pool.freeobjs)) != free {
		fmsg := "%v freeobjs:%v != free:%v"
		panicerr(fmsg, pool.logprefix, len(pool.freeobjs), free)
	}
}
