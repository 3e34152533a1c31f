package algo

import "sync"
import "time"

// linear congruential generator used by Shuffle, glibc constants.
// Not cryptographically strong, reproducible under Seed.
type lcg struct {
	mu     sync.Mutex
	seed   int64
	seeded bool
}

var shufflerng lcg

// Seed fix the shuffle generator's seed, making subsequent Shuffle
// calls reproducible. Without Seed the generator is lazily seeded
// from the wall clock on first use.
func Seed(seed int64) {
	shufflerng.mu.Lock()
	shufflerng.seed, shufflerng.seeded = seed&0x7fffffff, true
	shufflerng.mu.Unlock()
}

func (rng *lcg) intn(n int64) int64 {
	rng.mu.Lock()
	if rng.seeded == false {
		rng.seed, rng.seeded = time.Now().UnixNano()&0x7fffffff, true
		debugf("algo: shuffle rng seeded from clock %v\n", rng.seed)
	}
	rng.seed = (rng.seed*1103515245 + 12345) & 0x7fffffff
	value := rng.seed % n
	rng.mu.Unlock()
	return value
}
