package vector

import "fmt"
import "sync"

import "github.com/bnclabs/goseq/api"
import "github.com/bnclabs/goseq/malloc"
import s "github.com/bnclabs/gosettings"

// Vector is a growable array of elements of type T. Copy semantics,
// elements are stored by value, an element handed out by At/Front/Back
// is a copy while Getref hands out a mutable reference. All sizes and
// indices are int64.
type Vector[T any] struct {
	// 64-bit aligned stats
	n_pushes     int64
	n_inserts    int64
	n_erases     int64
	n_grows      int64
	n_dtors      int64
	n_activeiter int64

	name     string
	data     []T // len(data) == capacity
	size     int64
	dtor     api.Dtorfn[T]
	mempool  *malloc.Mempool[T]
	pooled   bool // current backing slab came from mempool
	rw       sync.Mutex
	iterpool chan *Iterator[T]
	dead     bool

	// settings
	capacity     int64
	maxcapacity  int64
	growthfactor float64
	threadsafe   bool
	iterpoolsize int64
	setts        s.Settings
	logprefix    string
}

// NewVector create a new vector instance. Returns nil if settings are
// outside their legal domain.
func NewVector[T any](name string, setts s.Settings) *Vector[T] {
	vec := &Vector[T]{name: name}
	vec.logprefix = fmt.Sprintf("VEC [%s]", name)
	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	if vec.readsettings(setts) == false {
		return nil
	}
	vec.data = make([]T, vec.capacity)
	vec.iterpool = make(chan *Iterator[T], vec.iterpoolsize)
	infof("%v started ...\n", vec.logprefix)
	return vec
}

func (vec *Vector[T]) readsettings(setts s.Settings) bool {
	vec.capacity = setts.Int64("capacity")
	vec.maxcapacity = setts.Int64("maxcapacity")
	vec.growthfactor = setts.Float64("growthfactor")
	vec.threadsafe = setts.Bool("threadsafe")
	vec.iterpoolsize = setts.Int64("iterpool.size")
	vec.setts = setts
	if vec.capacity < 0 || vec.maxcapacity < vec.capacity {
		errorf("%v invalid capacity %v\n", vec.logprefix, vec.capacity)
		return false
	} else if vec.growthfactor <= 1.0 {
		errorf("%v invalid growthfactor %v\n", vec.logprefix, vec.growthfactor)
		return false
	} else if vec.iterpoolsize < 0 {
		errorf("%v invalid iterpool.size %v\n", vec.logprefix, vec.iterpoolsize)
		return false
	}
	return true
}

// Setdestructor configure an element destructor, invoked on every
// element removal, clear and destroy. Destructors shall be idempotent.
func (vec *Vector[T]) Setdestructor(dtor api.Dtorfn[T]) *Vector[T] {
	vec.dtor = dtor
	return vec
}

//---- container operations

// Pushback append an element at the end of the array.
func (vec *Vector[T]) Pushback(value T) error {
	vec.lock()
	if err := vec.ensurecapacity(vec.size + 1); err != nil {
		vec.unlock()
		return err
	}
	vec.data[vec.size] = value
	vec.size++
	vec.n_pushes++
	vec.unlock()
	return nil
}

// Popback remove the last element, running the destructor over it.
func (vec *Vector[T]) Popback() error {
	vec.lock()
	if vec.size == 0 {
		vec.unlock()
		return api.ErrorEmpty
	}
	vec.rundtor(&vec.data[vec.size-1])
	var zero T
	vec.data[vec.size-1] = zero
	vec.size--
	vec.n_erases++
	vec.unlock()
	return nil
}

// Insert an element before position index, index == Size() appends.
func (vec *Vector[T]) Insert(index int64, value T) error {
	vec.lock()
	if index < 0 || index > vec.size {
		vec.unlock()
		return api.ErrorInvalidIndex
	}
	if err := vec.ensurecapacity(vec.size + 1); err != nil {
		vec.unlock()
		return err
	}
	copy(vec.data[index+1:vec.size+1], vec.data[index:vec.size])
	vec.data[index] = value
	vec.size++
	vec.n_inserts++
	vec.unlock()
	return nil
}

// Erase the element at index, running the destructor over it, and
// shift subsequent elements left.
func (vec *Vector[T]) Erase(index int64) error {
	vec.lock()
	if index < 0 || index >= vec.size {
		vec.unlock()
		return api.ErrorInvalidIndex
	}
	vec.rundtor(&vec.data[index])
	copy(vec.data[index:vec.size-1], vec.data[index+1:vec.size])
	var zero T
	vec.data[vec.size-1] = zero
	vec.size--
	vec.n_erases++
	vec.unlock()
	return nil
}

// At return a copy of the element at index.
func (vec *Vector[T]) At(index int64) (value T, err error) {
	vec.lock()
	if index < 0 || index >= vec.size {
		vec.unlock()
		return value, api.ErrorInvalidIndex
	}
	value = vec.data[index]
	vec.unlock()
	return value, nil
}

// Getref return a mutable reference to the element at index, nil if
// index is out of range. The reference dangles once the array grows.
func (vec *Vector[T]) Getref(index int64) *T {
	if index < 0 || index >= vec.size {
		return nil
	}
	return &vec.data[index]
}

// Set overwrite the element at index, running the destructor over the
// old element.
func (vec *Vector[T]) Set(index int64, value T) error {
	vec.lock()
	if index < 0 || index >= vec.size {
		vec.unlock()
		return api.ErrorInvalidIndex
	}
	vec.rundtor(&vec.data[index])
	vec.data[index] = value
	vec.unlock()
	return nil
}

// Front return a copy of the first element.
func (vec *Vector[T]) Front() (value T, err error) {
	vec.lock()
	if vec.size == 0 {
		vec.unlock()
		return value, api.ErrorEmpty
	}
	value = vec.data[0]
	vec.unlock()
	return value, nil
}

// Back return a copy of the last element.
func (vec *Vector[T]) Back() (value T, err error) {
	vec.lock()
	if vec.size == 0 {
		vec.unlock()
		return value, api.ErrorEmpty
	}
	value = vec.data[vec.size-1]
	vec.unlock()
	return value, nil
}

// Reserve grow the backing storage to hold at least mincapacity
// elements. Outstanding iterators and references dangle afterwards.
func (vec *Vector[T]) Reserve(mincapacity int64) error {
	vec.lock()
	err := vec.ensurecapacity(mincapacity)
	vec.unlock()
	return err
}

// Resize the array to newsize elements. Shrinking runs the destructor
// over truncated elements, growing fills with the zero value.
func (vec *Vector[T]) Resize(newsize int64) error {
	vec.lock()
	if newsize < 0 {
		vec.unlock()
		return api.ErrorInvalidArgument
	}
	if err := vec.ensurecapacity(newsize); err != nil {
		vec.unlock()
		return err
	}
	if newsize < vec.size {
		var zero T
		for i := newsize; i < vec.size; i++ {
			vec.rundtor(&vec.data[i])
			vec.data[i] = zero
		}
	} else {
		var zero T
		for i := vec.size; i < newsize; i++ {
			vec.data[i] = zero
		}
	}
	vec.size = newsize
	vec.unlock()
	return nil
}

// Clear remove all elements, running the destructor over each. The
// backing storage is retained.
func (vec *Vector[T]) Clear() {
	vec.lock()
	var zero T
	for i := int64(0); i < vec.size; i++ {
		vec.rundtor(&vec.data[i])
		vec.data[i] = zero
	}
	vec.size = 0
	vec.unlock()
}

// Size return the number of live elements.
func (vec *Vector[T]) Size() int64 {
	vec.lock()
	size := vec.size
	vec.unlock()
	return size
}

// Capacity return the number of element slots reserved.
func (vec *Vector[T]) Capacity() int64 {
	vec.lock()
	capacity := vec.capacity
	vec.unlock()
	return capacity
}

// Empty is true when the vector has no live elements.
func (vec *Vector[T]) Empty() bool {
	return vec.Size() == 0
}

// Setgrowthfactor override the growth multiplier, must be greater
// than 1.0.
func (vec *Vector[T]) Setgrowthfactor(factor float64) error {
	if factor <= 1.0 {
		return api.ErrorInvalidArgument
	}
	vec.lock()
	vec.growthfactor = factor
	vec.unlock()
	return nil
}

// Destroy the vector, running the destructor over every live element.
// Outstanding iterators dangle afterwards.
func (vec *Vector[T]) Destroy() error {
	vec.lock()
	for i := int64(0); i < vec.size; i++ {
		vec.rundtor(&vec.data[i])
	}
	vec.releaseblock(vec.data)
	vec.data, vec.size, vec.capacity = nil, 0, 0
	vec.dead = true
	vec.unlock()
	infof("%v destroyed\n", vec.logprefix)
	return nil
}

//---- concurrency toggle

// Enablethreadsafety make every container operation acquire the
// container lock. The lock covers one operation at a time, iterators
// and algorithms never acquire it.
func (vec *Vector[T]) Enablethreadsafety() error {
	vec.threadsafe = true
	return nil
}

// Disablethreadsafety stop acquiring the container lock. Unsafe while
// other threads still operate on this container.
func (vec *Vector[T]) Disablethreadsafety() error {
	vec.threadsafe = false
	return nil
}

func (vec *Vector[T]) lock() {
	if vec.threadsafe {
		vec.rw.Lock()
	}
}

func (vec *Vector[T]) unlock() {
	if vec.threadsafe {
		vec.rw.Unlock()
	}
}

//---- memory pool plumbing

// Setmempool draw future backing storage from a fixed-block pool. The
// array can then never grow past the pool's slab length, growth beyond
// it fails with ErrorFull. Fails if current capacity already exceeds
// the slab length.
func (vec *Vector[T]) Setmempool(pool *malloc.Mempool[T]) error {
	if pool == nil {
		return api.ErrorNilArgument
	}
	vec.lock()
	if vec.capacity > pool.Slablen() {
		vec.unlock()
		return api.ErrorInvalidArgument
	}
	vec.mempool = pool
	vec.unlock()
	return nil
}

// Removemempool detach the pool. Storage already drawn from the pool
// stays with the vector until the next growth or Destroy.
func (vec *Vector[T]) Removemempool() error {
	vec.lock()
	vec.mempool = nil
	vec.unlock()
	return nil
}

//---- local functions

func (vec *Vector[T]) rundtor(x *T) {
	if vec.dtor != nil {
		vec.dtor(x)
		vec.n_dtors++
	}
}

func (vec *Vector[T]) nextcapacity(mincapacity int64) int64 {
	capacity := vec.capacity
	for capacity < mincapacity {
		switch {
		case capacity <= 128:
			capacity += 32
		case capacity <= 8*1024:
			capacity = int64(float64(capacity) * vec.growthfactor)
		case capacity <= 128*1024:
			capacity += 4 * 1024
		default:
			capacity += 64 * 1024
		}
	}
	return capacity
}

// grow the backing storage, relocating elements. Outstanding
// iterators dangle after this, undefined behaviour by contract.
func (vec *Vector[T]) ensurecapacity(mincapacity int64) error {
	if mincapacity <= vec.capacity {
		return nil
	} else if mincapacity > vec.maxcapacity {
		return api.ErrorFull
	}

	var newdata []T
	newcapacity := vec.nextcapacity(mincapacity)
	if vec.mempool != nil {
		if mincapacity > vec.mempool.Slablen() {
			return api.ErrorFull
		}
		newdata = vec.mempool.Alloc()
		newcapacity = vec.mempool.Slablen()
	} else {
		newdata = make([]T, newcapacity)
	}
	copy(newdata, vec.data[:vec.size])
	vec.releaseblock(vec.data)
	vec.data, vec.capacity = newdata, newcapacity
	vec.pooled = vec.mempool != nil
	vec.n_grows++
	return nil
}

func (vec *Vector[T]) releaseblock(block []T) {
	if vec.pooled && vec.mempool != nil && block != nil {
		vec.mempool.Free(block)
		vec.pooled = false
	}
}
