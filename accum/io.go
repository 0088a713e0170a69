package accum

import (
	"fmt"
	"io"
)

// Write appends a copy of p as a new last chunk. Empty writes push nothing.
// It never returns an error.
func (a *Accumulator[T, S]) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	a.PushBackCopy(p)
	return len(p), nil
}

// Read consumes up to len(p) bytes from the front. It returns io.EOF when no
// bytes are held.
func (a *Accumulator[T, S]) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if a.size == 0 {
		return 0, io.EOF
	}
	n := 0
	for n < len(p) && a.list.Len() > 0 {
		head := a.list.At(0)
		c := copy(p[n:], head)
		n += c
		if c == len(head) {
			a.list.PopFront()
		} else {
			a.list.Set(0, head[c:])
		}
	}
	a.size -= n
	a.gen++
	return n, nil
}

// ReadByte consumes one byte from the front.
func (a *Accumulator[T, S]) ReadByte() (byte, error) {
	if a.size == 0 {
		return 0, io.EOF
	}
	head := a.list.At(0)
	for len(head) == 0 {
		a.list.PopFront()
		head = a.list.At(0)
	}
	b := head[0]
	if len(head) == 1 {
		a.list.PopFront()
	} else {
		a.list.Set(0, head[1:])
	}
	a.size--
	a.gen++
	return b, nil
}

// Peek returns the first n bytes without consuming them. The result aliases
// the first chunk and is valid until the next mutation.
func (a *Accumulator[T, S]) Peek(n int) (T, error) {
	head, err := a.FrontN(n)
	if err != nil {
		return head, err
	}
	return head[:n:n], nil
}

// Discard drops up to n bytes from the front without copying them. When fewer
// than n bytes are held, all of them are dropped and ErrInsufficient is
// returned with the count actually discarded.
func (a *Accumulator[T, S]) Discard(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: negative discard %d", ErrOutOfRange, n)
	}
	done := 0
	for done < n && a.list.Len() > 0 {
		head := a.list.At(0)
		if len(head) <= n-done {
			a.list.PopFront()
			done += len(head)
			continue
		}
		a.list.Set(0, head[n-done:])
		done = n
	}
	a.size -= done
	a.gen++
	if done < n {
		return done, fmt.Errorf("%w: discarded %d of %d bytes", ErrInsufficient, done, n)
	}
	return done, nil
}
