package store

import "fmt"

const minSliceCapacity = 8

// Slice keeps its elements contiguous in one backing array, with free slots
// on both sides so pushes at either end are amortised O(1). When one side
// runs out the elements are recentred, or the array doubles if it is at
// least half full. Capacity is never released. The zero value is ready to
// use.
type Slice[T any] struct {
	buf  []T
	head int // first element
	tail int // one past the last element
}

// NewSlice returns a Slice with capacity slots preallocated.
func NewSlice[T any](capacity int) *Slice[T] {
	capacity = max(capacity, minSliceCapacity)
	return &Slice[T]{
		buf:  make([]T, capacity),
		head: capacity / 2,
		tail: capacity / 2,
	}
}

// Len returns the number of elements.
func (s *Slice[T]) Len() int {
	return s.tail - s.head
}

// Cap returns the length of the backing array.
func (s *Slice[T]) Cap() int {
	return len(s.buf)
}

// At returns the i-th element from the front.
func (s *Slice[T]) At(i int) T {
	s.checkIndex(i)
	return s.buf[s.head+i]
}

// Set replaces the i-th element from the front.
func (s *Slice[T]) Set(i int, t T) {
	s.checkIndex(i)
	s.buf[s.head+i] = t
}

// PushFront inserts t before the first element.
func (s *Slice[T]) PushFront(t T) {
	if s.head == 0 {
		s.makeRoom()
	}
	s.head--
	s.buf[s.head] = t
}

// PushBack inserts t after the last element.
func (s *Slice[T]) PushBack(t T) {
	if s.tail == len(s.buf) {
		s.makeRoom()
	}
	s.buf[s.tail] = t
	s.tail++
}

// PopFront removes and returns the first element.
func (s *Slice[T]) PopFront() T {
	if s.head == s.tail {
		panic("store: PopFront on empty Slice")
	}
	var zero T
	t := s.buf[s.head]
	s.buf[s.head] = zero
	s.head++
	s.recentreIfEmpty()
	return t
}

// PopBack removes and returns the last element.
func (s *Slice[T]) PopBack() T {
	if s.head == s.tail {
		panic("store: PopBack on empty Slice")
	}
	var zero T
	s.tail--
	t := s.buf[s.tail]
	s.buf[s.tail] = zero
	s.recentreIfEmpty()
	return t
}

// Clear removes all elements. The backing array is kept.
func (s *Slice[T]) Clear() {
	clear(s.buf[s.head:s.tail])
	s.head = len(s.buf) / 2
	s.tail = s.head
}

func (s *Slice[T]) checkIndex(i int) {
	if i < 0 || i >= s.Len() {
		panic(fmt.Sprintf("store: Slice index %d out of range [0, %d)", i, s.Len()))
	}
}

func (s *Slice[T]) recentreIfEmpty() {
	if s.head == s.tail {
		s.head = len(s.buf) / 2
		s.tail = s.head
	}
}

// makeRoom leaves free slots on both sides of the elements.
func (s *Slice[T]) makeRoom() {
	n := s.Len()
	size := len(s.buf)
	if size == 0 {
		size = minSliceCapacity
	} else if n >= size/2 {
		size *= 2
	}
	offset := (size - n) / 2

	if size == len(s.buf) {
		copy(s.buf[offset:], s.buf[s.head:s.tail])
		clear(s.buf[:offset])
		clear(s.buf[offset+n:])
	} else {
		buf := make([]T, size)
		copy(buf[offset:], s.buf[s.head:s.tail])
		s.buf = buf
	}
	s.head = offset
	s.tail = offset + n
}
