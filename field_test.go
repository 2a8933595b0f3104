package astipsi

import (
	"bytes"
	"errors"
	"testing"

	"github.com/asticode/go-astikit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordFixedAndFlag(t *testing.T) {
	buf := &bytes.Buffer{}
	w := astikit.NewBitsWriter(astikit.BitsWriterOptions{Writer: buf})
	w.Write("1")              // Flag
	w.Write("0")              // Flag
	w.WriteN(uint16(300), 14) // Fixed
	w.Write(uint8(0x2a))      // Fixed

	r := NewRecord("test",
		Flag("a", 1),
		Flag("b", 1),
		Fixed("c", 14),
		Fixed("d", 8),
	)
	c := NewCursor(buf.Bytes())
	b, err := r.Decode(c)
	require.NoError(t, err)
	assert.True(t, b.Bool("a"))
	assert.False(t, b.Bool("b"))
	assert.Equal(t, uint64(300), b.Uint("c"))
	assert.Equal(t, uint64(0x2a), b.Uint("d"))
	assert.Equal(t, []string{"a", "b", "c", "d"}, b.Names())
	assert.Equal(t, int64(24), c.Position())
}

func TestRecordExpect(t *testing.T) {
	r := NewRecord("test", Fixed("a", 4), Expect(8, 0x47))

	_, err := r.Decode(NewCursor([]byte{0xf4, 0x7f}))
	assert.NoError(t, err)

	_, err = r.Decode(NewCursor([]byte{0xf4, 0x8f}))
	assert.ErrorIs(t, err, ErrUnexpectedValue)
	var e *UnexpectedValueError
	require.True(t, errors.As(err, &e))
	assert.Equal(t, UnexpectedValueError{Expected: 0x47, Got: 0x48, Position: 4, Width: 8}, *e)

	// One of
	r = NewRecord("test", ExpectOneOf("id", 8, 0x40, 0x41))
	b, err := r.Decode(NewCursor([]byte{0x41}))
	require.NoError(t, err)
	assert.Equal(t, uint64(0x41), b.Uint("id"))
	_, err = r.Decode(NewCursor([]byte{0x42}))
	assert.ErrorIs(t, err, ErrUnexpectedValue)
}

func TestRecordReserved(t *testing.T) {
	r := NewRecord("test", Fixed("a", 3), Reserved(3), Fixed("b", 2))

	b, err := r.Decode(NewCursor([]byte{0b01011110}))
	require.NoError(t, err)
	assert.Equal(t, uint64(0b010), b.Uint("a"))
	assert.Equal(t, uint64(0b10), b.Uint("b"))

	// The error points at the reserved field, not at the record
	c := NewCursor([]byte{0xff, 0b01011010})
	_, err = c.ReadUint(8)
	require.NoError(t, err)
	_, err = r.Decode(c)
	var e *UnexpectedValueError
	require.True(t, errors.As(err, &e))
	assert.Equal(t, UnexpectedValueError{Expected: 0b111, Got: 0b110, Position: 11, Width: 3}, *e)

	// Failed records don't move the cursor
	assert.Equal(t, int64(8), c.Position())
}

func TestRecordRepeated(t *testing.T) {
	byteItem := func(c *Cursor) (uint8, error) { return readUint[uint8](c, 8) }

	// For length
	r := NewRecord("test",
		Fixed("length", 8),
		Repeated("items", byteItem, ForLength("length")),
		Fixed("after", 8),
	)
	b, err := r.Decode(NewCursor([]byte{0x02, 0x0a, 0x0b, 0x0c}))
	require.NoError(t, err)
	assert.Equal(t, []uint8{0x0a, 0x0b}, Bound[[]uint8](b, "items"))
	assert.Equal(t, uint64(0x0c), b.Uint("after"))

	// Empty
	b, err = r.Decode(NewCursor([]byte{0x00, 0x0c}))
	require.NoError(t, err)
	assert.Empty(t, Bound[[]uint8](b, "items"))
	assert.Equal(t, uint64(0x0c), b.Uint("after"))

	// Element going past the budget
	wordItem := func(c *Cursor) (uint16, error) { return readUint[uint16](c, 16) }
	r = NewRecord("test",
		Fixed("length", 8),
		Repeated("items", wordItem, ForLength("length")),
	)
	_, err = r.Decode(NewCursor([]byte{0x03, 0x00, 0x01, 0x00, 0x02}))
	assert.ErrorIs(t, err, ErrReadTooMuch)
	var e *ReadTooMuchError
	require.True(t, errors.As(err, &e))
	assert.Equal(t, ReadTooMuchError{MaxPosition: 32, Position: 40}, *e)

	// Fixed size elements stop when there's no room left for a whole one
	r = NewRecord("test",
		Fixed("length", 8),
		RepeatedFixed("items", 16, wordItem, ForLength("length")),
	)
	c := NewCursor([]byte{0x03, 0x00, 0x01, 0x00, 0x02})
	b, err = r.Decode(c)
	require.NoError(t, err)
	assert.Equal(t, []uint16{0x0001}, Bound[[]uint16](b, "items"))
	assert.Equal(t, int64(24), c.Position())

	// Elements consuming nothing
	r = NewRecord("test",
		Fixed("length", 8),
		Repeated("items", func(c *Cursor) (uint8, error) { return 0, nil }, ForLength("length")),
	)
	_, err = r.Decode(NewCursor([]byte{0x01, 0x00}))
	assert.ErrorIs(t, err, ErrEmptyElement)
}

func TestRecordOptionalAndDerived(t *testing.T) {
	byteItem := func(c *Cursor) (uint8, error) { return readUint[uint8](c, 8) }
	r := NewRecord("test",
		Flag("present", 1),
		Reserved(7),
		Optional("value", func(b *Bindings) bool { return b.Bool("present") }, byteItem),
		Value("double", func(b *Bindings) interface{} { return uint64(Bound[uint8](b, "value")) * 2 }),
	)

	c := NewCursor([]byte{0xff, 0x15})
	b, err := r.Decode(c)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x15), Bound[uint8](b, "value"))
	assert.Equal(t, uint64(0x2a), b.Uint("double"))
	assert.Equal(t, int64(16), c.Position())

	c = NewCursor([]byte{0x7f, 0x15})
	b, err = r.Decode(c)
	require.NoError(t, err)
	assert.True(t, b.Has("value"))
	assert.Equal(t, uint8(0), Bound[uint8](b, "value"))
	assert.Equal(t, int64(8), c.Position())
}

func TestRecordSkipToEnd(t *testing.T) {
	r := NewRecord("test",
		Fixed("descriptor_tag", 8),
		Fixed("descriptor_length", 8),
		Fixed("a", 8),
		SkipToEnd(DescriptorFraming),
	)

	// Unparsed trailing bytes are skipped
	c := NewCursor([]byte{0x01, 0x03, 0x0a, 0x0b, 0x0c, 0x0d})
	b, err := r.Decode(c)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x0a), b.Uint("a"))
	assert.Equal(t, int64(40), c.Position())

	// Fields went past the declared length
	_, err = r.Decode(NewCursor([]byte{0x01, 0x00, 0x0a}))
	assert.ErrorIs(t, err, ErrReadTooMuch)

	// Declared length goes past the buffer
	_, err = r.Decode(NewCursor([]byte{0x01, 0x05, 0x0a}))
	assert.ErrorIs(t, err, ErrOutOfData)
}

func TestRecordBytesAndText(t *testing.T) {
	r := NewRecord("test",
		Fixed("descriptor_tag", 8),
		Fixed("descriptor_length", 8),
		LanguageCode("language"),
		Fixed("length", 8),
		Bytes("bytes", "length"),
		TextToEnd("text", DescriptorFraming),
		SkipToEnd(DescriptorFraming),
	)
	b, err := r.Decode(NewCursor([]byte{0x01, 0x09, 'f', 'r', 'a', 0x02, 0xde, 0xad, 't', 'x', 't'}))
	require.NoError(t, err)
	assert.Equal(t, "fra", b.String("language"))
	assert.Equal(t, []byte{0xde, 0xad}, b.Bytes("bytes"))
	assert.Equal(t, "txt", b.String("text"))
}

func TestRecordNested(t *testing.T) {
	inner := NewRecord("inner", Fixed("a", 4), Fixed("b", 4))
	r := NewRecord("outer",
		Nested("inner", func(c *Cursor) (*Bindings, error) { return inner.Decode(c) }),
		Fixed("c", 8),
	)
	c := NewCursor([]byte{0x12, 0x34})
	b, err := r.Decode(c)
	require.NoError(t, err)
	ib := Bound[*Bindings](b, "inner")
	require.NotNil(t, ib)
	assert.Equal(t, uint64(1), ib.Uint("a"))
	assert.Equal(t, uint64(2), ib.Uint("b"))
	assert.Equal(t, uint64(0x34), b.Uint("c"))
	assert.Equal(t, int64(16), c.Position())
}

func TestFraming(t *testing.T) {
	// section_length 13 means 13 bytes after the 3 bytes header, the last 4 of them being the CRC32
	assert.Equal(t, int64(96), SectionFraming.End(13))
	assert.Equal(t, int64(128), SectionFraming.Size(13))
	assert.Equal(t, int64(32), SectionFraming.BitsRemaining(13, 64))
	assert.Equal(t, int64(-8), SectionFraming.BitsRemaining(13, 104))
	assert.Equal(t, int64(128), SectionNoCRCFraming.End(13))
	assert.Equal(t, int64(24), DescriptorFraming.End(1))
	assert.Equal(t, int64(16), DescriptorFraming.BitsRemaining(2, 16))
}
