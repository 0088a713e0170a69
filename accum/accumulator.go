package accum

import (
	"fmt"
	"iter"
)

// noCopy makes `go vet` flag accidental copies of an Accumulator value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Accumulator holds an ordered sequence of byte chunks of type T in a backing
// store of type S, plus the total number of bytes across all chunks.
//
// Chunks handed to PushFront/PushBack become owned by the accumulator.
// Chunks returned by Front/Back (and their sized variants) stay owned by it
// and are only valid until the next mutating call. Chunks returned by the pop
// operations belong to the caller.
//
// Use it through a pointer; Clone makes an explicit deep copy.
type Accumulator[T Chunk, S Store[T]] struct {
	noCopy noCopy

	size int    // sum of len() over all chunks in list
	list S      // chunk sequence
	gen  uint64 // bumped on every mutation, invalidates cursors
}

// New returns an accumulator keeping its chunks in list. Chunks already in
// list are adopted.
func New[T Chunk, S Store[T]](list S) *Accumulator[T, S] {
	a := &Accumulator[T, S]{list: list}
	for i := 0; i < list.Len(); i++ {
		a.size += len(list.At(i))
	}
	return a
}

// Len returns the number of bytes held across all chunks.
func (a *Accumulator[T, S]) Len() int {
	return a.size
}

// Empty reports whether no bytes are held. Zero-length chunks pushed by the
// caller may still be present, see NumChunks.
func (a *Accumulator[T, S]) Empty() bool {
	return a.size == 0
}

// NumChunks returns the number of chunks held.
func (a *Accumulator[T, S]) NumChunks() int {
	return a.list.Len()
}

// Clear releases all chunks.
func (a *Accumulator[T, S]) Clear() {
	a.list.Clear()
	a.size = 0
	a.gen++
}

// Front returns the first chunk as it is. It fails with ErrEmpty whenever no
// bytes are held, even if zero-length chunks are queued.
func (a *Accumulator[T, S]) Front() (T, error) {
	if a.size == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return a.list.At(0), nil
}

// Back returns the last chunk as it is.
func (a *Accumulator[T, S]) Back() (T, error) {
	if a.size == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return a.list.At(a.list.Len() - 1), nil
}

// FrontN returns the first chunk after making it at least n bytes long.
// Missing bytes are moved in from the following chunks, which are removed when
// fully consumed or split otherwise. Nothing changes when an error is
// returned.
func (a *Accumulator[T, S]) FrontN(n int) (T, error) {
	if err := a.checkSized(n); err != nil {
		var zero T
		return zero, err
	}
	a.resizeFront(n)
	a.gen++
	return a.list.At(0), nil
}

// BackN is the mirror image of FrontN: the last chunk is made at least n
// bytes long with bytes moved in from the preceding chunks.
func (a *Accumulator[T, S]) BackN(n int) (T, error) {
	if err := a.checkSized(n); err != nil {
		var zero T
		return zero, err
	}
	a.resizeBack(n)
	a.gen++
	return a.list.At(a.list.Len() - 1), nil
}

// PopFront removes and returns the first chunk as it is.
func (a *Accumulator[T, S]) PopFront() (T, error) {
	if a.size == 0 {
		a.dropEmpty()
		var zero T
		return zero, ErrEmpty
	}
	head := a.list.PopFront()
	a.size -= len(head)
	a.gen++
	return head, nil
}

// PopBack removes and returns the last chunk as it is.
func (a *Accumulator[T, S]) PopBack() (T, error) {
	if a.size == 0 {
		a.dropEmpty()
		var zero T
		return zero, ErrEmpty
	}
	tail := a.list.PopBack()
	a.size -= len(tail)
	a.gen++
	return tail, nil
}

// PopFrontN removes and returns exactly the first n bytes as one chunk.
func (a *Accumulator[T, S]) PopFrontN(n int) (T, error) {
	head, err := a.FrontN(n)
	if err != nil {
		return head, err
	}
	a.size -= n
	if len(head) == n {
		a.list.PopFront()
		return head, nil
	}
	a.list.Set(0, head[n:])
	return head[:n:n], nil
}

// PopBackN removes and returns exactly the last n bytes as one chunk.
func (a *Accumulator[T, S]) PopBackN(n int) (T, error) {
	tail, err := a.BackN(n)
	if err != nil {
		return tail, err
	}
	a.size -= n
	if len(tail) == n {
		a.list.PopBack()
		return tail, nil
	}
	rest := len(tail) - n
	a.list.Set(a.list.Len()-1, tail[:rest:rest])
	return tail[rest:len(tail):len(tail)], nil
}

// PushFront inserts t as the new first chunk. The accumulator takes ownership
// of t.
func (a *Accumulator[T, S]) PushFront(t T) {
	a.list.PushFront(t)
	a.size += len(t)
	a.gen++
}

// PushBack inserts t as the new last chunk. The accumulator takes ownership
// of t.
func (a *Accumulator[T, S]) PushBack(t T) {
	a.list.PushBack(t)
	a.size += len(t)
	a.gen++
}

// PushFrontCopy inserts a copy of b as the new first chunk.
func (a *Accumulator[T, S]) PushFrontCopy(b []byte) {
	a.PushFront(clone[T](b))
}

// PushBackCopy inserts a copy of b as the new last chunk.
func (a *Accumulator[T, S]) PushBackCopy(b []byte) {
	a.PushBack(clone[T](b))
}

// At returns the byte at flat index n. Chunk boundaries are scanned from
// whichever end is closer; nothing is cached between calls.
func (a *Accumulator[T, S]) At(n int) (byte, error) {
	if n < 0 || n >= a.size {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrIndex, n, a.size)
	}
	if n < a.size/2 {
		for i := 0; ; i++ {
			c := a.list.At(i)
			if n < len(c) {
				return c[n], nil
			}
			n -= len(c)
		}
	}
	back := a.size - 1 - n
	for i := a.list.Len() - 1; ; i-- {
		c := a.list.At(i)
		if back < len(c) {
			return c[len(c)-1-back], nil
		}
		back -= len(c)
	}
}

// Index returns the flat index of the first occurrence of needle, or -1.
func (a *Accumulator[T, S]) Index(needle []byte) int {
	if len(needle) == 0 {
		return 0
	}
	c := a.CBegin()
	for pos := 0; pos+len(needle) <= a.size; pos++ {
		if hasPrefix(c, needle) {
			return pos
		}
		c.Next()
	}
	return -1
}

// Bytes returns a copy of the flat byte sequence.
func (a *Accumulator[T, S]) Bytes() []byte {
	out := make([]byte, 0, a.size)
	for i := 0; i < a.list.Len(); i++ {
		out = append(out, a.list.At(i)...)
	}
	return out
}

// Chunks yields the chunks front to back. The accumulator must not be
// mutated during iteration.
func (a *Accumulator[T, S]) Chunks() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < a.list.Len(); i++ {
			if !yield(a.list.At(i)) {
				return
			}
		}
	}
}

// All yields every byte with its flat index.
func (a *Accumulator[T, S]) All() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		pos := 0
		for i := 0; i < a.list.Len(); i++ {
			for _, b := range a.list.At(i) {
				if !yield(pos, b) {
					return
				}
				pos++
			}
		}
	}
}

// Clone copies every chunk into dst, which is cleared first, and returns a
// new accumulator over it. The two accumulators share no memory.
func (a *Accumulator[T, S]) Clone(dst S) *Accumulator[T, S] {
	dst.Clear()
	for c := range a.Chunks() {
		dst.PushBack(clone[T](c))
	}
	return New[T, S](dst)
}

// dropEmpty releases zero-length chunks left over once no bytes are held.
func (a *Accumulator[T, S]) dropEmpty() {
	if a.list.Len() != 0 {
		a.list.Clear()
		a.gen++
	}
}

func (a *Accumulator[T, S]) checkSized(n int) error {
	switch {
	case n == 0:
		return ErrZeroLength
	case n < 0:
		return fmt.Errorf("%w: negative length %d", ErrOutOfRange, n)
	case n > a.size:
		return fmt.Errorf("%w: want %d bytes, have %d", ErrInsufficient, n, a.size)
	}
	return nil
}

// resizeFront grows the first chunk to n bytes. Requires 0 < n <= a.size.
func (a *Accumulator[T, S]) resizeFront(n int) {
	head := a.list.At(0)
	if len(head) >= n {
		return
	}
	a.list.PopFront()

	grown := make(T, n)
	pos := copy(grown, head)
	for pos < n {
		next := a.list.PopFront()
		c := copy(grown[pos:], next)
		pos += c
		if c < len(next) {
			a.list.PushFront(next[c:])
		}
	}
	a.list.PushFront(grown)
}

// resizeBack grows the last chunk to n bytes. Requires 0 < n <= a.size.
func (a *Accumulator[T, S]) resizeBack(n int) {
	tail := a.list.At(a.list.Len() - 1)
	if len(tail) >= n {
		return
	}
	a.list.PopBack()

	grown := make(T, n)
	pos := n - copy(grown[n-len(tail):], tail)
	for pos > 0 {
		prev := a.list.PopBack()
		take := min(pos, len(prev))
		rest := len(prev) - take
		copy(grown[pos-take:pos], prev[rest:])
		pos -= take
		if rest > 0 {
			a.list.PushBack(prev[:rest:rest])
		}
	}
	a.list.PushBack(grown)
}

func clone[T Chunk](b []byte) T {
	c := make(T, len(b))
	copy(c, b)
	return c
}

func hasPrefix[T Chunk, S Store[T]](c Cursor[T, S], needle []byte) bool {
	for _, b := range needle {
		if c.Byte() != b {
			return false
		}
		c.Next()
	}
	return true
}
