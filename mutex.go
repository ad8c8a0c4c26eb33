//go:build !singleton_nolock

package singleton

import "sync"

// ThreadSafe is true when slot operations are serialized by a mutex.
// Build with -tags=singleton_nolock to strip all locking.
const ThreadSafe = true

type slotMutex struct {
	sync.Mutex
}
