package singleton

import (
	"reflect"
	"sync"
)

// one slot per type, process-wide
var slots sync.Map

// For returns the process-wide slot for T, creating it on first use.
// Every call with the same T yields the same slot, which is what makes
// the instance a true singleton without the caller declaring a
// package-level variable. Options are applied only by the call that
// creates the slot; later calls return it unchanged.
func For[T any](opts ...Option[T]) *Singleton[T] {
	key := reflect.TypeOf(new(T)).Elem()

	if slot, ok := slots.Load(key); ok {
		return slot.(*Singleton[T])
	}

	slot, _ := slots.LoadOrStore(key, New[T](opts...))

	return slot.(*Singleton[T])
}
