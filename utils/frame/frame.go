// Package frame implements length-prefixed framing on top of an accumulator.
//
// A frame is a 4-byte big-endian payload length followed by the payload.
// Bytes arrive in arbitrary chunks (whatever a read returned), are pushed into
// the accumulator, and whole frames are popped once enough bytes are buffered.
package frame

import (
	"errors"
	"fmt"
	"math"

	"github.com/Fantom-foundation/lachesis-base/common/bigendian"

	"github.com/rony4d/go-accumulator/accum"
)

// HeaderSize is the size of the length prefix.
const HeaderSize = 4

var (
	// ErrNeedMore means the buffered bytes do not hold a whole frame yet.
	ErrNeedMore = errors.New("frame: need more data")
	// ErrFrameTooLarge means a header announced a payload above the limit.
	ErrFrameTooLarge = errors.New("frame: frame too large")
)

// Encode returns payload prefixed with its length. Payloads whose length does
// not fit the header are rejected with ErrFrameTooLarge.
func Encode(payload []byte) ([]byte, error) {
	hdr, err := header(len(payload))
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, HeaderSize+len(payload))
	out = append(out, hdr...)
	return append(out, payload...), nil
}

func header(size int) ([]byte, error) {
	if uint64(size) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d bytes, header limit %d", ErrFrameTooLarge, size, uint64(math.MaxUint32))
	}
	return bigendian.Uint32ToBytes(uint32(size)), nil
}

// Decoder pops frames out of an accumulator of byte slices.
type Decoder[S accum.Store[[]byte]] struct {
	acc     *accum.Accumulator[[]byte, S]
	maxSize int
}

// NewDecoder returns a decoder reading from acc. Payloads larger than maxSize
// are rejected; maxSize <= 0 disables the limit.
func NewDecoder[S accum.Store[[]byte]](acc *accum.Accumulator[[]byte, S], maxSize int) *Decoder[S] {
	return &Decoder[S]{acc: acc, maxSize: maxSize}
}

// Push buffers one chunk of the incoming stream. The decoder takes ownership
// of chunk.
func (d *Decoder[S]) Push(chunk []byte) {
	d.acc.PushBack(chunk)
}

// Buffered returns the number of bytes waiting to be decoded.
func (d *Decoder[S]) Buffered() int {
	return d.acc.Len()
}

// Next pops the next whole frame and returns its payload. It returns
// ErrNeedMore, leaving the buffered bytes untouched, when the frame is not
// complete yet.
func (d *Decoder[S]) Next() ([]byte, error) {
	if d.acc.Len() < HeaderSize {
		return nil, ErrNeedMore
	}
	hdr, err := d.acc.Peek(HeaderSize)
	if err != nil {
		return nil, err
	}
	size := int(bigendian.BytesToUint32(hdr))
	if d.maxSize > 0 && size > d.maxSize {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", ErrFrameTooLarge, size, d.maxSize)
	}
	if d.acc.Len() < HeaderSize+size {
		return nil, ErrNeedMore
	}
	if _, err := d.acc.Discard(HeaderSize); err != nil {
		return nil, err
	}
	if size == 0 {
		return []byte{}, nil
	}
	return d.acc.PopFrontN(size)
}
