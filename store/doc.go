// Package store provides double-ended, indexable sequences used as backing
// stores for accum.Accumulator.
//
// The implementations trade memory against speed differently:
//
//   - Deque wraps github.com/gammazero/deque. Capacity grows and shrinks with
//     the contents. This is the general purpose choice.
//   - Ring is a power-of-two circular buffer with a configurable minimum
//     capacity. Like Deque it releases memory when it drains.
//   - Slice keeps elements contiguous with headroom at both ends. It is the
//     cheapest to index but never gives capacity back: a burst, or sustained
//     pushes at one end without pops, keeps the peak allocation alive for the
//     lifetime of the store.
//
// None of them is safe for concurrent use. At, Set, PopFront and PopBack
// panic when called with an index out of range or on an empty store.
package store
