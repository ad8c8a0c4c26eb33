package singleton

// CreateFunc builds the opaque payload from a caller-assembled argument
// bundle. Returning nil signals construction failure; the slot is then
// rolled back to its empty state.
type CreateFunc func(args ...any) any

// DestroyFunc releases the opaque payload.
type DestroyFunc func(data any)

const handleTypeName = "opaque instance"

type slotRecord struct {
	data    any
	create  CreateFunc
	destroy DestroyFunc
}

// caller must hold the handle lock
func (rec *slotRecord) discard() {
	if old := rec.data; rec.destroy != nil {
		Cleanup(func() { rec.destroy(old) }).CallWithRecovery(handleTypeName)
	}

	rec.data = nil
}

// Handle exposes the same lifecycle as Singleton over an untyped
// payload plus a create/destroy callback pair registered at Create
// time. It exists for wiring code that cannot name the concrete type:
// plugin hosts, code generated bindings and the like. The callback
// pair is read-only after registration.
//
// A Handle must not be copied after first use.
type Handle struct {
	slot *slotRecord
	mu   slotMutex
}

// NewHandle returns an empty opaque slot.
func NewHandle() *Handle {
	return &Handle{}
}

// Create stores the callback pair and builds the payload by calling
// create with args exactly once. It panics with
// *ContractViolationError if the slot is occupied or create is nil.
// If create returns nil the slot record is discarded, the slot stays
// empty and a *ConstructionError is returned.
//
// args is passed through as-is; it is on the caller to agree with
// create on types and arity, nothing here can check that.
func (h *Handle) Create(create CreateFunc, destroy DestroyFunc, args ...any) error {
	if create == nil {
		panic(newContractViolationError(opCreate, handleTypeName, ErrNilCreateFunc))
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.slot != nil {
		panic(newContractViolationError(opCreate, handleTypeName, ErrAlreadyCreated))
	}

	rec := &slotRecord{create: create, destroy: destroy}
	rec.data = rec.create(args...)

	if rec.data == nil {
		return newConstructionError(ErrConstructionFailed, handleTypeName)
	}

	h.slot = rec

	return nil
}

// Get returns the payload with the slot lock held; call Unlock once
// done using it. Get panics with *ContractViolationError if the slot
// is empty. See Singleton.Get for the locking discipline.
func (h *Handle) Get() any {
	h.mu.Lock()

	if h.slot == nil {
		h.mu.Unlock()
		panic(newContractViolationError(opGet, handleTypeName, ErrNotCreated))
	}

	return h.slot.data
}

// Unlock releases the lock acquired by Get. It panics with
// *ContractViolationError if the slot is empty.
func (h *Handle) Unlock() {
	if h.slot == nil {
		panic(newContractViolationError(opUnlock, handleTypeName, ErrNotCreated))
	}

	h.mu.Unlock()
}

// Reset destroys the payload and rebuilds it with the callback pair
// registered by Create, passing args to the create function. It panics
// with *ContractViolationError if the slot is empty. If the create
// function returns nil the slot is left empty and a *ConstructionError
// is returned.
func (h *Handle) Reset(args ...any) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.slot == nil {
		panic(newContractViolationError(opReset, handleTypeName, ErrNotCreated))
	}

	rec := h.slot
	h.slot = nil
	rec.discard()

	rec.data = rec.create(args...)
	if rec.data == nil {
		return newConstructionError(ErrConstructionFailed, handleTypeName)
	}

	h.slot = rec

	return nil
}

// Destroy invokes the registered destroy function on the payload and
// releases the slot record, making a subsequent Create valid again.
// It panics with *ContractViolationError if the slot is empty.
func (h *Handle) Destroy() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.slot == nil {
		panic(newContractViolationError(opDestroy, handleTypeName, ErrNotCreated))
	}

	h.slot.discard()
	h.slot = nil
}
