package singleton

// The process-wide slot behind the package-level operations. It starts
// empty, is first populated by Create and torn down by Destroy. There
// is no teardown at process exit; a slot never destroyed is simply
// leaked.
var defaultHandle = NewHandle()

// Create populates the process-wide slot. See Handle.Create.
func Create(create CreateFunc, destroy DestroyFunc, args ...any) error {
	return defaultHandle.Create(create, destroy, args...)
}

// Get returns the process-wide payload with the lock held.
// See Handle.Get.
func Get() any {
	return defaultHandle.Get()
}

// Unlock releases the lock acquired by Get. See Handle.Unlock.
func Unlock() {
	defaultHandle.Unlock()
}

// Reset rebuilds the process-wide payload. See Handle.Reset.
func Reset(args ...any) error {
	return defaultHandle.Reset(args...)
}

// Destroy tears the process-wide slot down. See Handle.Destroy.
func Destroy() {
	defaultHandle.Destroy()
}
