package astipsi

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Cursor reads bits MSB-first from a byte slice it doesn't own.
// Its position only moves forward. Scoped reads are done with a child cursor spawned by Child and reconciled with
// Adopt once the scoped read is over.
type Cursor struct {
	adopted bool
	anchor  int64 // Parent position when the child was spawned
	bs      []byte
	offset  int64 // Bits consumed since creation
	origin  int64 // Absolute bit offset of relative position 0
	parent  *Cursor
}

// NewCursor creates a new cursor positioned on the first bit of bs
func NewCursor(bs []byte) *Cursor {
	return &Cursor{bs: bs}
}

// Position returns the number of bits consumed since the cursor was created
func (c *Cursor) Position() int64 {
	return c.offset
}

// AbsolutePosition returns the bit offset of the cursor in the underlying buffer
func (c *Cursor) AbsolutePosition() int64 {
	return c.origin + c.offset
}

// BitsLeft returns the number of bits left in the underlying buffer
func (c *Cursor) BitsLeft() int64 {
	if l := int64(len(c.bs))*8 - c.AbsolutePosition(); l > 0 {
		return l
	}
	return 0
}

func (c *Cursor) checkAvailable(n int64) error {
	if l := c.BitsLeft(); n > l {
		return &OutOfDataError{
			Available: l,
			Position:  c.AbsolutePosition(),
			Requested: n,
		}
	}
	return nil
}

// PeekUint returns the next n bits as an unsigned integer without moving the cursor
func (c *Cursor) PeekUint(n int) (uint64, error) {
	if n < 0 || n > 64 {
		return 0, fmt.Errorf("astipsi: peeking %d bits failed: %w", n, ErrInvalidReadWidth)
	}
	if err := c.checkAvailable(int64(n)); err != nil {
		return 0, err
	}
	return c.peek(n), nil
}

func (c *Cursor) peek(n int) (v uint64) {
	pos := c.AbsolutePosition()
	for n > 0 {
		// Bits still unread in the current byte
		avail := 8 - int(pos&0x7)
		take := avail
		if take > n {
			take = n
		}
		v = v<<uint(take) | uint64(c.bs[pos>>3])>>uint(avail-take)&(1<<uint(take)-1)
		n -= take
		pos += int64(take)
	}
	return
}

// ReadUint reads the next n bits as a big endian unsigned integer. n must be within [0, 64].
func (c *Cursor) ReadUint(n int) (v uint64, err error) {
	if v, err = c.PeekUint(n); err != nil {
		return
	}
	c.offset += int64(n)
	return
}

// ReadBool reads the next bit
func (c *Cursor) ReadBool() (bool, error) {
	v, err := c.ReadUint(1)
	return v == 1, err
}

// ReadBytes reads the next n bytes. The returned slice points to the underlying buffer when the cursor is byte
// aligned and must not be modified.
func (c *Cursor) ReadBytes(n int) (bs []byte, err error) {
	if n < 0 {
		return nil, fmt.Errorf("astipsi: reading %d bytes failed: %w", n, ErrInvalidReadWidth)
	}
	if err = c.checkAvailable(int64(n) * 8); err != nil {
		return
	}

	// Aligned
	if pos := c.AbsolutePosition(); pos&0x7 == 0 {
		start := int(pos >> 3)
		bs = c.bs[start : start+n]
		c.offset += int64(n) * 8
		return
	}

	// Unaligned
	bs = make([]byte, n)
	for idx := range bs {
		bs[idx] = byte(c.peek(8))
		c.offset += 8
	}
	return
}

// Skip moves the cursor n bits forward
func (c *Cursor) Skip(n int64) error {
	if n < 0 {
		return fmt.Errorf("astipsi: skipping %d bits failed: %w", n, ErrInvalidReadWidth)
	}
	if err := c.checkAvailable(n); err != nil {
		return err
	}
	c.offset += n
	return nil
}

// Child returns a cursor reading the same bytes starting at the current position, with its own position starting
// at 0. The child is not truncated: callers bound it with their own bit budget.
// The parent must not be read until the child has been adopted.
func (c *Cursor) Child() *Cursor {
	return &Cursor{
		anchor: c.offset,
		bs:     c.bs,
		origin: c.AbsolutePosition(),
		parent: c,
	}
}

// Adopt moves the cursor forward by the number of bits the child consumed. It must be called once per child.
func (c *Cursor) Adopt(child *Cursor) error {
	switch {
	case child.parent != c:
		return fmt.Errorf("astipsi: child was not spawned by this cursor: %w", ErrScopeMismatch)
	case child.adopted:
		return fmt.Errorf("astipsi: child has already been adopted: %w", ErrScopeMismatch)
	case child.anchor != c.offset:
		return fmt.Errorf("astipsi: cursor moved from %d to %d while child was active: %w", child.anchor, c.offset, ErrScopeMismatch)
	}
	child.adopted = true
	c.offset += child.offset
	return nil
}

func readUint[T constraints.Unsigned](c *Cursor, n int) (T, error) {
	v, err := c.ReadUint(n)
	return T(v), err
}

func peekUint[T constraints.Unsigned](c *Cursor, n int) (T, error) {
	v, err := c.PeekUint(n)
	return T(v), err
}
