package store

import "fmt"

const minRingCapacity = 16

// Ring is a circular buffer whose capacity is always a power of two. It
// doubles when full and halves when a quarter full, but never drops below
// its minimum capacity. The zero value is ready to use.
type Ring[T any] struct {
	buf   []T
	head  int
	count int
	min   int
}

// NewRing returns a Ring with room for at least capacity elements, which is
// also its minimum capacity.
func NewRing[T any](capacity int) *Ring[T] {
	c := minRingCapacity
	for c < capacity {
		c <<= 1
	}
	return &Ring[T]{buf: make([]T, c), min: c}
}

// Len returns the number of elements.
func (r *Ring[T]) Len() int {
	return r.count
}

// Cap returns the number of slots currently allocated.
func (r *Ring[T]) Cap() int {
	return len(r.buf)
}

// At returns the i-th element from the front.
func (r *Ring[T]) At(i int) T {
	r.checkIndex(i)
	return r.buf[r.slot(i)]
}

// Set replaces the i-th element from the front.
func (r *Ring[T]) Set(i int, t T) {
	r.checkIndex(i)
	r.buf[r.slot(i)] = t
}

// PushFront inserts t before the first element.
func (r *Ring[T]) PushFront(t T) {
	r.growIfFull()
	r.head = (r.head - 1) & (len(r.buf) - 1)
	r.buf[r.head] = t
	r.count++
}

// PushBack inserts t after the last element.
func (r *Ring[T]) PushBack(t T) {
	r.growIfFull()
	r.buf[r.slot(r.count)] = t
	r.count++
}

// PopFront removes and returns the first element.
func (r *Ring[T]) PopFront() T {
	if r.count == 0 {
		panic("store: PopFront on empty Ring")
	}
	var zero T
	t := r.buf[r.head]
	r.buf[r.head] = zero
	r.head = (r.head + 1) & (len(r.buf) - 1)
	r.count--
	r.shrinkIfSparse()
	return t
}

// PopBack removes and returns the last element.
func (r *Ring[T]) PopBack() T {
	if r.count == 0 {
		panic("store: PopBack on empty Ring")
	}
	var zero T
	i := r.slot(r.count - 1)
	t := r.buf[i]
	r.buf[i] = zero
	r.count--
	r.shrinkIfSparse()
	return t
}

// Clear removes all elements and returns to the minimum capacity.
func (r *Ring[T]) Clear() {
	if len(r.buf) > r.minCap() {
		r.buf = make([]T, r.minCap())
	} else {
		clear(r.buf)
	}
	r.head = 0
	r.count = 0
}

func (r *Ring[T]) slot(i int) int {
	return (r.head + i) & (len(r.buf) - 1)
}

func (r *Ring[T]) minCap() int {
	if r.min == 0 {
		return minRingCapacity
	}
	return r.min
}

func (r *Ring[T]) checkIndex(i int) {
	if i < 0 || i >= r.count {
		panic(fmt.Sprintf("store: Ring index %d out of range [0, %d)", i, r.count))
	}
}

func (r *Ring[T]) growIfFull() {
	if r.buf == nil {
		r.buf = make([]T, r.minCap())
		return
	}
	if r.count == len(r.buf) {
		r.resize(len(r.buf) << 1)
	}
}

func (r *Ring[T]) shrinkIfSparse() {
	if len(r.buf) > r.minCap() && r.count <= len(r.buf)/4 {
		r.resize(len(r.buf) >> 1)
	}
}

// resize moves the elements to a new buffer of the given size, starting at
// slot 0.
func (r *Ring[T]) resize(size int) {
	buf := make([]T, size)
	if r.head+r.count <= len(r.buf) {
		copy(buf, r.buf[r.head:r.head+r.count])
	} else {
		n := copy(buf, r.buf[r.head:])
		copy(buf[n:], r.buf[:r.count-n])
	}
	r.buf = buf
	r.head = 0
}
