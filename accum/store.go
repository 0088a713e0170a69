package accum

// Chunk is any byte slice type. The element type is fixed to byte by the
// constraint itself, so a chunk of wider elements does not compile.
type Chunk interface {
	~[]byte
}

// Store is the ordered, indexable, double-ended sequence of chunks an
// Accumulator keeps its data in.
//
// The accumulator never calls At, Set, PopFront or PopBack with an index or
// on a length the store cannot satisfy, so implementations may panic on
// misuse.
type Store[T any] interface {
	Len() int
	At(i int) T
	Set(i int, t T)
	PushFront(t T)
	PushBack(t T)
	PopFront() T
	PopBack() T
	Clear()
}
