/*
This package provides a small, explicit implementation of the singleton pattern:
one instance per slot, created on demand, handed out under a lock and explicitly destroyed.
It was created for code that needs a process-wide instance with a strict lifecycle,
not for dependency injection. There is no container and no named registry here.

To install singleton:

	go get -u github.com/andriiyaremenko/singleton

How to use:

	type Config struct {
		Port int
	}

	var cfg = singleton.New[Config](
		singleton.WithCleanup(func(c Config) {
			// release whatever Config held
		}),
	)

	func main() {
		if err := cfg.Create(func() (Config, error) {
			return Config{Port: 8080}, nil
		}); err != nil {
			// handle construction failure
		}

		c := cfg.Get()
		port := c.Port
		cfg.Unlock()

		// ...

		cfg.Destroy()
	}

Get returns with the slot lock held so the instance can be used across several
statements without re-acquiring it; every caller must pair Get with Unlock.
The lock is not re-entrant: a second Get from the same goroutine without an
intervening Unlock deadlocks.

The same slot can be reached process-wide by type instead of by variable:

	s := singleton.For[Config]()

For callers that cannot name the concrete type there is an opaque binding built
on a create/destroy callback pair and an untyped argument bundle:

	err := singleton.Create(
		func(args ...any) any { return newPool(args[0].(int)) },
		func(data any) { data.(*pool).close() },
		10,
	)

Calling any operation in a state that forbids it (Create on an occupied slot,
Get/Unlock/Reset/Destroy on an empty one) is a programming error and panics with
*ContractViolationError. The only recoverable failure is construction: Create and
Reset return *ConstructionError and leave the slot empty.

Thread safety is on by default; build with -tags=singleton_nolock to strip all
locking for single-threaded use. The call contract stays the same in both flavors.

Functions:
  - singleton.New
  - singleton.For
  - singleton.NewHandle
  - singleton.Create
  - singleton.Get
  - singleton.Unlock
  - singleton.Reset
  - singleton.Destroy
  - singleton.SetDefaultErrorLogger
*/
package singleton
