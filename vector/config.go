package vector

import sigar "github.com/cloudfoundry/gosigar"
import s "github.com/bnclabs/gosettings"

// Defaultsettings for vector instances.
//
// "capacity" (int64, default: 32)
//		Initial number of element slots reserved at creation.
//
// "maxcapacity" (int64, default: derived from free system memory)
//		Advisory ceiling on the number of element slots. Operations
//		that would grow the array past this ceiling fail with
//		ErrorFull.
//
// "growthfactor" (float64, default: 2.0)
//		Multiplier applied to mid-sized arrays when they run out of
//		capacity, must be greater than 1.0.
//
// "threadsafe" (bool, default: false)
//		Acquire the container lock around every container operation.
//		Iterators and algorithms never acquire this lock.
//
// "iterpool.size" (int64, default: 8)
//		Maximum number of iterator objects parked for reuse.
func Defaultsettings() s.Settings {
	_, _, free := getsysmem()
	// an advisory ceiling, an eighth of free memory worth of slots
	// assuming eight byte elements.
	maxcapacity := int64(free) / 8 / 8
	return s.Settings{
		"capacity":      int64(32),
		"maxcapacity":   maxcapacity,
		"growthfactor":  float64(2.0),
		"threadsafe":    false,
		"iterpool.size": int64(8),
	}
}

func getsysmem() (total, used, free uint64) {
	mem := sigar.Mem{}
	mem.Get()
	return mem.Total, mem.Used, mem.Free
}
