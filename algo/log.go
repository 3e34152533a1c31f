package algo

import "sync/atomic"

import "github.com/bnclabs/golog"

var logok = int64(0)

// LogComponents enable logging. By default logging is disabled, if
// applications want log information from the algorithm engine call
// this function with "self" or "all" or "algo" as argument.
func LogComponents(components ...string) {
	for _, comp := range components {
		switch comp {
		case "algo", "self", "all":
			atomic.StoreInt64(&logok, 1)
		}
	}
}

func debugf(format string, v ...interface{}) {
	if atomic.LoadInt64(&logok) > 0 {
		log.Debugf(format, v...)
	}
}
