package singleton

import "fmt"

var (
	ErrAlreadyCreated     = fmt.Errorf("instance is already created, use Reset to replace it")
	ErrNotCreated         = fmt.Errorf("instance is not created yet")
	ErrNilConstructor     = fmt.Errorf("got nil constructor")
	ErrNilCreateFunc      = fmt.Errorf("got nil create function")
	ErrConstructionFailed = fmt.Errorf("create function returned no instance")
)

func newContractViolationError(op, typeName string, cause error) *ContractViolationError {
	return &ContractViolationError{
		cause:    cause,
		Op:       op,
		TypeName: typeName,
	}
}

// ContractViolationError is the panic value raised when an operation is
// called in a state that forbids it.
type ContractViolationError struct {
	cause    error
	Op       string
	TypeName string
}

func (err *ContractViolationError) Error() string {
	return fmt.Sprintf("cannot %s %s: %s", err.Op, err.TypeName, err.cause)
}

func (err *ContractViolationError) Unwrap() error {
	return err.cause
}

func newConstructionError(cause error, typeName string) *ConstructionError {
	return &ConstructionError{
		cause:    cause,
		TypeName: typeName,
	}
}

// ConstructionError reports the single recoverable failure: the
// constructor did not produce an instance. The slot is rolled back to
// its empty state before this error is returned.
type ConstructionError struct {
	cause    error
	TypeName string
}

func (err *ConstructionError) Error() string {
	return fmt.Sprintf("cannot construct %s: %s", err.TypeName, err.cause)
}

func (err *ConstructionError) Unwrap() error {
	return err.cause
}
