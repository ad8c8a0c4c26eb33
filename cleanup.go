package singleton

import "fmt"

// Cleanup releases whatever the destroyed instance held.
type Cleanup func()

// CallWithRecovery shields slot transitions from panicking cleanups:
// the slot must end up empty (or rebuilt, for Reset) even if the user
// cleanup panics. Recovered panics are reported through the error
// logger, see SetDefaultErrorLogger.
func (fn Cleanup) CallWithRecovery(typeName string) {
	defer func() {
		if rp := recover(); rp != nil {
			logger().Error(
				"recovered from panic during cleanup",
				"instance", typeName,
				"error", fmt.Errorf("%v", rp),
			)
		}
	}()

	fn()
}
