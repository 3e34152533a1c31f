package malloc

import s "github.com/bnclabs/gosettings"

// Maxslablen maximum number of elements allowed in a single
// fixed-block slab.
const Maxslablen = int64(65536)

// Maxfreelist maximum number of reusable blocks or objects a pool
// will hold on to, can be used as default for the "maxfree"
// configuration parameter.
const Maxfreelist = int64(65536)

// Defaultsettings for pools.
//
// "slablen" (int64, default: 1024)
//		Number of elements in each fixed-block slab.
//
// "grow" (int64, default: 8)
//		Number of blocks/objects eagerly produced when the free-list
//		is found empty.
//
// "initial" (int64, default: 64)
//		Number of objects pre-constructed when an object pool is
//		created.
//
// "maxfree" (int64, default: <Maxfreelist>)
//		Ceiling on the free-list length of an object pool. Objects
//		freed beyond this ceiling are destroyed and dropped.
func Defaultsettings() s.Settings {
	return s.Settings{
		"slablen": int64(1024),
		"grow":    int64(8),
		"initial": int64(64),
		"maxfree": Maxfreelist,
	}
}
