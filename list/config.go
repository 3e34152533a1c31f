package list

import s "github.com/bnclabs/gosettings"

// Defaultsettings for list instances.
//
// "threadsafe" (bool, default: false)
//		Acquire the container lock around every container operation.
//		Iterators and algorithms never acquire this lock.
//
// "iterpool.size" (int64, default: 8)
//		Maximum number of iterator objects parked for reuse.
func Defaultsettings() s.Settings {
	return s.Settings{
		"threadsafe":    false,
		"iterpool.size": int64(8),
	}
}
