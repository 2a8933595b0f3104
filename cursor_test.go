package astipsi

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorReadUint(t *testing.T) {
	c := NewCursor([]byte{0b10110011, 0b01011100, 0xff})

	v, err := c.ReadUint(3)
	require.NoError(t, err)
	assert.Equal(t, uint64(0b101), v)

	// Across a byte boundary
	v, err = c.ReadUint(9)
	require.NoError(t, err)
	assert.Equal(t, uint64(0b100110101), v)
	assert.Equal(t, int64(12), c.Position())

	v, err = c.ReadUint(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), v)

	b, err := c.ReadBool()
	require.NoError(t, err)
	assert.True(t, b)
	assert.Equal(t, int64(11), c.BitsLeft())

	v, err = c.ReadUint(11)
	require.NoError(t, err)
	assert.Equal(t, uint64(0b10011111111), v)
	assert.Equal(t, int64(0), c.BitsLeft())
}

func TestCursorReadUint64(t *testing.T) {
	c := NewCursor([]byte{0xf0, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08})
	_, err := c.ReadUint(4)
	require.NoError(t, err)
	v, err := c.ReadUint(64)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x0010203040506070), v)

	_, err = c.ReadUint(65)
	assert.ErrorIs(t, err, ErrInvalidReadWidth)
	_, err = c.ReadUint(-1)
	assert.ErrorIs(t, err, ErrInvalidReadWidth)
}

func TestCursorPeekUint(t *testing.T) {
	c := NewCursor([]byte{0x52, 0x01})
	v, err := c.PeekUint(8)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x52), v)
	assert.Equal(t, int64(0), c.Position())

	id, err := peekUint[uint8](c, 8)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x52), id)
}

func TestCursorOutOfData(t *testing.T) {
	c := NewCursor([]byte{0xff})
	_, err := c.ReadUint(5)
	require.NoError(t, err)

	_, err = c.ReadUint(4)
	assert.ErrorIs(t, err, ErrOutOfData)
	var e *OutOfDataError
	require.True(t, errors.As(err, &e))
	assert.Equal(t, OutOfDataError{Available: 3, Position: 5, Requested: 4}, *e)

	// Failed reads don't move the cursor
	assert.Equal(t, int64(5), c.Position())
	assert.ErrorIs(t, c.Skip(4), ErrOutOfData)
	assert.NoError(t, c.Skip(3))
	assert.ErrorIs(t, c.Skip(-1), ErrInvalidReadWidth)
	_, err = c.ReadBytes(1)
	assert.ErrorIs(t, err, ErrOutOfData)
}

func TestCursorReadBytes(t *testing.T) {
	bs := []byte{0x01, 0x23, 0x45, 0x67}

	// Aligned
	c := NewCursor(bs)
	_, err := c.ReadUint(8)
	require.NoError(t, err)
	got, err := c.ReadBytes(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x23, 0x45}, got)
	assert.Equal(t, int64(24), c.Position())

	// Unaligned
	c = NewCursor(bs)
	_, err = c.ReadUint(4)
	require.NoError(t, err)
	got, err = c.ReadBytes(3)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x12, 0x34, 0x56}, got)

	got, err = c.ReadBytes(0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCursorChild(t *testing.T) {
	c := NewCursor([]byte{0xab, 0xcd, 0xef})
	_, err := c.ReadUint(4)
	require.NoError(t, err)

	ch := c.Child()
	assert.Equal(t, int64(0), ch.Position())
	assert.Equal(t, int64(4), ch.AbsolutePosition())
	v, err := ch.ReadUint(8)
	require.NoError(t, err)
	assert.Equal(t, uint64(0xbc), v)

	// Grandchild
	gch := ch.Child()
	v, err = gch.ReadUint(4)
	require.NoError(t, err)
	assert.Equal(t, uint64(0xd), v)
	require.NoError(t, ch.Adopt(gch))
	assert.Equal(t, int64(12), ch.Position())

	// The parent only moves on adoption
	assert.Equal(t, int64(4), c.Position())
	require.NoError(t, c.Adopt(ch))
	assert.Equal(t, int64(16), c.Position())

	// Adopting twice
	assert.ErrorIs(t, c.Adopt(ch), ErrScopeMismatch)

	// Adopting someone else's child
	assert.ErrorIs(t, c.Adopt(NewCursor(nil).Child()), ErrScopeMismatch)

	// Parent moved while the child was active
	ch = c.Child()
	_, err = c.ReadUint(1)
	require.NoError(t, err)
	assert.ErrorIs(t, c.Adopt(ch), ErrScopeMismatch)
}

func BenchmarkCursorReadUint(b *testing.B) {
	b.ReportAllocs()
	bs := make([]byte, 188)
	for i := 0; i < b.N; i++ {
		c := NewCursor(bs)
		for c.BitsLeft() >= 13 {
			c.ReadUint(13) //nolint:errcheck
		}
	}
}
