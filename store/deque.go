package store

import (
	"github.com/gammazero/deque"
)

// Deque is a double-ended queue backed by github.com/gammazero/deque.
// The zero value is ready to use.
type Deque[T any] struct {
	deque.Deque[T]
}

// NewDeque returns a Deque that never shrinks below 2^minCapacityExp slots.
func NewDeque[T any](minCapacityExp uint) *Deque[T] {
	d := &Deque[T]{}
	d.SetMinCapacity(minCapacityExp)
	return d
}
