// Package id generates unique IDs for events.
package id

import (
	"strconv"
	"sync/atomic"
)

var nextID uint64

// Generate returns a process-wide unique ID.
func Generate() string {
	n := atomic.AddUint64(&nextID, 1)
	return strconv.FormatUint(n, 10)
}
