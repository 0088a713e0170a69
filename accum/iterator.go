package accum

// position is a (chunk index, offset in chunk) pair. The end sentinel is
// {chunk: number of chunks, off: 0}.
type position struct {
	chunk int
	off   int
}

// Cursor is a read-only bidirectional position in the flat byte sequence of
// an Accumulator. Any mutation of the accumulator invalidates it; using an
// invalidated cursor panics.
//
// Compare cursors with Equal. Cursors over the same accumulator are equal
// when they point at the same byte, or when both are at the end.
type Cursor[T Chunk, S Store[T]] struct {
	a   *Accumulator[T, S]
	pos position
	gen uint64
}

// Iterator is a Cursor that can also overwrite the byte it points at.
type Iterator[T Chunk, S Store[T]] struct {
	Cursor[T, S]
}

// CBegin returns a cursor at the first byte, or the end cursor when there are
// no bytes.
func (a *Accumulator[T, S]) CBegin() Cursor[T, S] {
	return Cursor[T, S]{a: a, pos: a.first(), gen: a.gen}
}

// CEnd returns the cursor one past the last byte.
func (a *Accumulator[T, S]) CEnd() Cursor[T, S] {
	return Cursor[T, S]{a: a, pos: a.end(), gen: a.gen}
}

// Begin is CBegin for the mutable form.
func (a *Accumulator[T, S]) Begin() Iterator[T, S] {
	return Iterator[T, S]{a.CBegin()}
}

// End is CEnd for the mutable form.
func (a *Accumulator[T, S]) End() Iterator[T, S] {
	return Iterator[T, S]{a.CEnd()}
}

// Valid reports whether the accumulator has not been mutated since the cursor
// was created.
func (c Cursor[T, S]) Valid() bool {
	return c.a != nil && c.gen == c.a.gen
}

// AtEnd reports whether the cursor is the end sentinel.
func (c Cursor[T, S]) AtEnd() bool {
	c.check()
	return c.pos.chunk >= c.a.list.Len()
}

// Byte returns the byte under the cursor. It panics at the end.
func (c Cursor[T, S]) Byte() byte {
	if c.AtEnd() {
		panic("accum: dereference of end cursor")
	}
	return c.a.list.At(c.pos.chunk)[c.pos.off]
}

// Equal reports whether c and o point at the same position of the same
// accumulator.
func (c Cursor[T, S]) Equal(o Cursor[T, S]) bool {
	return c.a == o.a && c.pos == o.pos
}

// Next moves one byte forward. Moving past the last byte yields the end
// cursor; calling Next at the end panics.
func (c *Cursor[T, S]) Next() {
	c.check()
	c.a.increment(&c.pos)
}

// Prev moves one byte backward. From the end it lands on the last byte;
// calling Prev on the first byte panics.
func (c *Cursor[T, S]) Prev() {
	c.check()
	c.a.decrement(&c.pos)
}

// Advance moves n bytes, backward when n is negative, one step at a time.
func (c *Cursor[T, S]) Advance(n int) {
	for ; n > 0; n-- {
		c.Next()
	}
	for ; n < 0; n++ {
		c.Prev()
	}
}

func (c Cursor[T, S]) check() {
	if !c.Valid() {
		panic("accum: use of invalidated cursor")
	}
}

// Set overwrites the byte under the iterator. It is not a structural change,
// so other cursors stay valid.
func (it Iterator[T, S]) Set(b byte) {
	if it.AtEnd() {
		panic("accum: write through end iterator")
	}
	it.a.list.At(it.pos.chunk)[it.pos.off] = b
}

// Equal reports whether it and o point at the same position.
func (it Iterator[T, S]) Equal(o Iterator[T, S]) bool {
	return it.Cursor.Equal(o.Cursor)
}

// Traversal helpers used only by cursors.

func (a *Accumulator[T, S]) first() position {
	for i := 0; i < a.list.Len(); i++ {
		if len(a.list.At(i)) > 0 {
			return position{chunk: i}
		}
	}
	return a.end()
}

func (a *Accumulator[T, S]) end() position {
	return position{chunk: a.list.Len()}
}

func (a *Accumulator[T, S]) increment(p *position) {
	n := a.list.Len()
	if p.chunk >= n {
		panic("accum: increment past end")
	}
	p.off++
	for p.chunk < n && p.off >= len(a.list.At(p.chunk)) {
		p.chunk++
		p.off = 0
	}
}

func (a *Accumulator[T, S]) decrement(p *position) {
	if p.off > 0 {
		p.off--
		return
	}
	for i := p.chunk - 1; i >= 0; i-- {
		if l := len(a.list.At(i)); l > 0 {
			p.chunk, p.off = i, l-1
			return
		}
	}
	panic("accum: decrement before begin")
}
