package malloc

import "fmt"
import "sync"
import "sync/atomic"
import "unsafe"

import "github.com/bnclabs/goseq/api"
import "github.com/bnclabs/goseq/lib"
import humanize "github.com/dustin/go-humanize"
import s "github.com/bnclabs/gosettings"

// Mempool is a fixed-block pool, it manages reusable slabs of
// `slablen` elements each. Alloc pops a slab from the free-list, when
// the free-list is empty one slab is produced for immediate use and
// `grow-1` extra slabs are eagerly produced onto the free-list to
// amortize future calls. Free pushes a slab back without inspecting
// its contents, callers shall run any per-element destructor before
// returning a slab.
type Mempool[T any] struct {
	// 64-bit aligned counters, maintained atomically, advisory.
	nallocated int64 // slabs currently with callers
	nfree      int64 // slabs parked on the free-list
	ncreated   int64 // slabs ever produced by this pool

	name      string
	slablen   int64
	grow      int64
	freelist  [][]T
	rw        sync.Mutex
	h_reuse   lib.AverageInt64 // free-list length sampled at Alloc
	logprefix string
}

// NewMempool create a new fixed-block pool. Returns nil if "slablen"
// or "grow" settings are outside their legal domain.
func NewMempool[T any](name string, setts s.Settings) *Mempool[T] {
	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	slablen, grow := setts.Int64("slablen"), setts.Int64("grow")
	if slablen <= 0 || slablen > Maxslablen {
		errorf("mempool %q invalid slablen %v", name, slablen)
		return nil
	} else if grow <= 0 {
		errorf("mempool %q invalid grow %v", name, grow)
		return nil
	}
	pool := &Mempool[T]{
		name:     name,
		slablen:  slablen,
		grow:     grow,
		freelist: make([][]T, 0, grow),
	}
	pool.logprefix = fmt.Sprintf("MEMP [%s]", name)
	infof("%v slablen:%v grow:%v started ...\n", pool.logprefix, slablen, grow)
	return pool
}

// Slablen is the number of elements in each slab handed out by
// this pool.
func (pool *Mempool[T]) Slablen() int64 {
	return pool.slablen
}

// Alloc a slab from the pool.
func (pool *Mempool[T]) Alloc() []T {
	pool.rw.Lock()
	pool.h_reuse.Add(int64(len(pool.freelist)))
	var block []T
	if n := len(pool.freelist); n > 0 {
		block = pool.freelist[n-1]
		pool.freelist[n-1] = nil
		pool.freelist = pool.freelist[:n-1]
		atomic.AddInt64(&pool.nfree, -1)

	} else {
		block = make([]T, pool.slablen)
		atomic.AddInt64(&pool.ncreated, 1)
		// eagerly produce grow-1 extra slabs onto the free-list.
		for i := int64(1); i < pool.grow; i++ {
			pool.freelist = append(pool.freelist, make([]T, pool.slablen))
			atomic.AddInt64(&pool.ncreated, 1)
			atomic.AddInt64(&pool.nfree, 1)
		}
	}
	atomic.AddInt64(&pool.nallocated, 1)
	pool.rw.Unlock()
	return block
}

// Free a slab back to the pool. The slab must have been handed out by
// this pool. Contents are not inspected and not zeroed.
func (pool *Mempool[T]) Free(block []T) error {
	if block == nil {
		return api.ErrorNilArgument
	} else if int64(len(block)) != pool.slablen {
		return api.ErrorInvalidArgument
	}
	pool.rw.Lock()
	pool.freelist = append(pool.freelist, block)
	atomic.AddInt64(&pool.nfree, 1)
	atomic.AddInt64(&pool.nallocated, -1)
	pool.rw.Unlock()
	return nil
}

// Release the pool and all its resources. Outstanding slabs simply
// fall back to the garbage collector.
func (pool *Mempool[T]) Release() {
	pool.rw.Lock()
	pool.freelist = nil
	pool.rw.Unlock()
	infof("%v released\n", pool.logprefix)
}

// Stats return pool counters. Read without the pool lock, eventually
// consistent with the free-list:
//
//   "allocated" slabs currently with callers,
//   "free"      slabs parked on the free-list,
//   "created"   slabs ever produced,
//   "slablen"   elements per slab,
//   "capacity"  bytes managed by this pool.
func (pool *Mempool[T]) Stats() map[string]interface{} {
	var zero T
	elemsz := int64(unsafe.Sizeof(zero))
	created := atomic.LoadInt64(&pool.ncreated)
	return map[string]interface{}{
		"allocated": atomic.LoadInt64(&pool.nallocated),
		"free":      atomic.LoadInt64(&pool.nfree),
		"created":   created,
		"slablen":   pool.slablen,
		"capacity":  created * pool.slablen * elemsz,
	}
}

// Log pool statistics via the configured logger.
func (pool *Mempool[T]) Log() {
	stats := pool.Stats()
	capacity := humanize.Bytes(uint64(stats["capacity"].(int64)))
	fmsg := "%v allocated:%v free:%v created:%v capacity:%v\n"
	infof(
		fmsg, pool.logprefix, stats["allocated"], stats["free"],
		stats["created"], capacity)
	pool.rw.Lock()
	reuse := pool.h_reuse.Stats()
	pool.rw.Unlock()
	debugf("%v freelist at alloc %v\n", pool.logprefix, reuse)
}

// Validate pool invariants, mainly counter conservation. Panics on
// a broken invariant.
func (pool *Mempool[T]) Validate() {
	pool.rw.Lock()
	defer pool.rw.Unlock()

	allocated := atomic.LoadInt64(&pool.nallocated)
	free, created := atomic.LoadInt64(&pool.nfree), atomic.LoadInt64(&pool.ncreated)
	if allocated < 0 || free < 0 {
		panicerr("%v negative counters %v,%v", pool.logprefix, allocated, free)
	} else if (allocated + free) != created {
		fmsg := "%v allocated:%v + free:%v != created:%v"
		panicerr(fmsg, pool.logprefix, allocated, free, created)
	} else if int64(len(pool.freelist)) != free {
		fmsg := "%v freelist:%v != free:%v"
		panicerr(fmsg, pool.logprefix, len(pool.freelist), free)
	}
}
