package singleton

import "reflect"

const (
	opCreate  = "Create"
	opGet     = "Get"
	opUnlock  = "Unlock"
	opReset   = "Reset"
	opDestroy = "Destroy"
)

type config[T any] struct {
	cleanup func(T)
}

type Option[T any] func(*config[T])

// WithCleanup registers fn to run on every instance discarded by Reset
// or Destroy. It stands in for the wrapped type's destructor.
func WithCleanup[T any](fn func(T)) Option[T] {
	return func(conf *config[T]) { conf.cleanup = fn }
}

// Singleton owns at most one instance of T behind a single lock.
// The zero state is empty; Create populates the slot, Destroy empties
// it again. All access to the instance goes through Get and Unlock.
//
// A Singleton must not be copied after first use.
type Singleton[T any] struct {
	instance *T
	cleanup  func(T)
	typeName string
	mu       slotMutex
}

// New returns an empty slot for T. Hold it in a package-level variable
// to make the instance process-wide.
func New[T any](opts ...Option[T]) *Singleton[T] {
	var conf config[T]
	for _, opt := range opts {
		opt(&conf)
	}

	return &Singleton[T]{
		cleanup:  conf.cleanup,
		typeName: reflect.TypeOf(new(T)).Elem().String(),
	}
}

// Create builds the instance by calling constructor exactly once.
// It panics with *ContractViolationError if the slot is already
// occupied. A constructor error leaves the slot empty and is returned
// wrapped in *ConstructionError.
func (s *Singleton[T]) Create(constructor func() (T, error)) error {
	if constructor == nil {
		panic(newContractViolationError(opCreate, s.typeName, ErrNilConstructor))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.instance != nil {
		panic(newContractViolationError(opCreate, s.typeName, ErrAlreadyCreated))
	}

	instance, err := constructor()
	if err != nil {
		return newConstructionError(err, s.typeName)
	}

	s.instance = &instance

	return nil
}

// Get returns the instance with the slot lock held; call Unlock once
// done using it. Until then every other slot operation blocks. The
// lock is not re-entrant: calling Get again without Unlock deadlocks.
// Get panics with *ContractViolationError if the slot is empty.
func (s *Singleton[T]) Get() *T {
	s.mu.Lock()

	if s.instance == nil {
		s.mu.Unlock()
		panic(newContractViolationError(opGet, s.typeName, ErrNotCreated))
	}

	return s.instance
}

// Unlock releases the lock acquired by Get. It panics with
// *ContractViolationError if the slot is empty.
func (s *Singleton[T]) Unlock() {
	if s.instance == nil {
		panic(newContractViolationError(opUnlock, s.typeName, ErrNotCreated))
	}

	s.mu.Unlock()
}

// Reset discards the current instance and builds a fresh one with
// constructor, all under the slot lock. It panics with
// *ContractViolationError if the slot is empty. A constructor error
// leaves the slot empty, since the old instance is already gone by the
// time the constructor runs.
func (s *Singleton[T]) Reset(constructor func() (T, error)) error {
	if constructor == nil {
		panic(newContractViolationError(opReset, s.typeName, ErrNilConstructor))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.instance == nil {
		panic(newContractViolationError(opReset, s.typeName, ErrNotCreated))
	}

	s.discard()

	instance, err := constructor()
	if err != nil {
		return newConstructionError(err, s.typeName)
	}

	s.instance = &instance

	return nil
}

// Destroy discards the instance and empties the slot, making a
// subsequent Create valid again. It panics with
// *ContractViolationError if the slot is empty.
func (s *Singleton[T]) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.instance == nil {
		panic(newContractViolationError(opDestroy, s.typeName, ErrNotCreated))
	}

	s.discard()
}

// caller must hold the slot lock
func (s *Singleton[T]) discard() {
	if old := s.instance; s.cleanup != nil {
		Cleanup(func() { s.cleanup(*old) }).CallWithRecovery(s.typeName)
	}

	s.instance = nil
}
