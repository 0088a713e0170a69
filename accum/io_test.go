package accum

import (
	"bytes"
	"io"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIO_WriteThenReadAll(t *testing.T) {
	forEachStore(t, func(t *testing.T, newStore func() Store[[]byte]) {
		rnd := rand.New(rand.NewSource(11))
		src := make([]byte, 4096)
		rnd.Read(src)

		a := New[[]byte](newStore())
		for rest := src; len(rest) > 0; {
			n := min(len(rest), 1+rnd.Intn(100))
			w, err := a.Write(rest[:n])
			require.NoError(t, err)
			require.Equal(t, n, w)
			rest = rest[n:]
		}
		require.Equal(t, len(src), a.Len())

		got, err := io.ReadAll(a)
		require.NoError(t, err)
		require.Equal(t, src, got)
		require.True(t, a.Empty())
		require.Zero(t, a.NumChunks())
	})
}

func TestIO_WriteCopies(t *testing.T) {
	a := New[[]byte](testStores[0].make())
	p := []byte{1, 2, 3}
	_, _ = a.Write(p)
	p[0] = 7

	n, err := a.Write(nil)
	require.NoError(t, err)
	require.Zero(t, n)
	require.Equal(t, 1, a.NumChunks())
	require.Equal(t, []byte{1, 2, 3}, a.Bytes())
}

func TestIO_Read(t *testing.T) {
	forEachStore(t, func(t *testing.T, newStore func() Store[[]byte]) {
		require := require.New(t)

		a := New[[]byte](newStore())
		a.PushBack([]byte{1, 2, 3})
		a.PushBack([]byte{})
		a.PushBack([]byte{4, 5})

		n, err := a.Read(nil)
		require.NoError(err)
		require.Zero(n)

		buf := make([]byte, 2)
		n, err = a.Read(buf)
		require.NoError(err)
		require.Equal(2, n)
		require.Equal([]byte{1, 2}, buf)

		buf = make([]byte, 10)
		n, err = a.Read(buf)
		require.NoError(err)
		require.Equal([]byte{3, 4, 5}, buf[:n])
		requireConsistent(t, a)

		_, err = a.Read(buf)
		require.Equal(io.EOF, err)
	})
}

func TestIO_ReadByte(t *testing.T) {
	forEachStore(t, func(t *testing.T, newStore func() Store[[]byte]) {
		a := New[[]byte](newStore())
		a.PushBack([]byte{})
		a.PushBack([]byte{1})
		a.PushBack(nil)
		a.PushBack([]byte{2, 3})

		for _, want := range []byte{1, 2, 3} {
			b, err := a.ReadByte()
			require.NoError(t, err)
			require.Equal(t, want, b)
		}
		_, err := a.ReadByte()
		require.Equal(t, io.EOF, err)
		requireConsistent(t, a)
	})
}

func TestIO_Peek(t *testing.T) {
	a := New[[]byte](testStores[1].make())
	a.PushBack([]byte{1, 2})
	a.PushBack([]byte{3, 4, 5})

	p, err := a.Peek(3)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, p)
	require.Equal(t, 5, a.Len())

	_, err = a.Peek(6)
	require.ErrorIs(t, err, ErrInsufficient)
	_, err = a.Peek(0)
	require.ErrorIs(t, err, ErrZeroLength)
}

func TestIO_Discard(t *testing.T) {
	forEachStore(t, func(t *testing.T, newStore func() Store[[]byte]) {
		a := New[[]byte](newStore())
		a.PushBack([]byte{1, 2, 3})
		a.PushBack([]byte{4, 5})

		n, err := a.Discard(4)
		require.NoError(t, err)
		require.Equal(t, 4, n)
		require.Equal(t, []byte{5}, a.Bytes())

		n, err = a.Discard(0)
		require.NoError(t, err)
		require.Zero(t, n)

		_, err = a.Discard(-1)
		require.ErrorIs(t, err, ErrOutOfRange)

		n, err = a.Discard(3)
		require.ErrorIs(t, err, ErrInsufficient)
		require.Equal(t, 1, n)
		require.True(t, a.Empty())
		requireConsistent(t, a)
	})
}

func TestIO_CopyFromReader(t *testing.T) {
	src := bytes.Repeat([]byte("chunk"), 1000)
	a := New[[]byte](testStores[2].make())

	n, err := io.Copy(a, bytes.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, int64(len(src)), n)
	require.Equal(t, src, a.Bytes())
}
