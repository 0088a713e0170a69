// Package accum implements a chunk accumulator: a double-ended byte buffer
// made of variable-sized chunks, typically the results of successive reads
// from an inbound stream.
//
// Producers push whole chunks at either end. Consumers pop whole chunks, or an
// exact number of bytes (PopFrontN / PopBackN). When the requested count
// straddles several chunks, neighbouring chunks are split or merged so the
// chunk at that end holds at least the requested bytes.
//
// The accumulated bytes can also be treated as one flat sequence: At returns
// the byte at a flat index, and Cursor / Iterator walk the sequence in both
// directions across chunk boundaries.
//
// The chunk sequence lives in a backing store chosen with a type parameter.
// Any type satisfying Store works; package store provides a deque, a ring
// buffer and a contiguous slice, each with different memory behaviour.
//
// An Accumulator is not safe for concurrent use.
package accum
