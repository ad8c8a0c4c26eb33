//go:build singleton_nolock

package singleton

// ThreadSafe is true when slot operations are serialized by a mutex.
// Build with -tags=singleton_nolock to strip all locking.
const ThreadSafe = false

// slotMutex with locking stripped. Get and Unlock keep their call
// contract so code is portable between both build flavors; concurrent
// access safety is entirely on the caller.
type slotMutex struct{}

func (*slotMutex) Lock() {}

func (*slotMutex) Unlock() {}
