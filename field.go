package astipsi

import (
	"errors"
	"fmt"
)

// ErrEmptyElement is returned when a repeated element doesn't consume any bit
var ErrEmptyElement = errors.New("astipsi: repeated element consumed no bits")

// Field is one operation of a record's field list
type Field interface {
	decode(c *Cursor, b *Bindings) error
}

type fieldFunc func(c *Cursor, b *Bindings) error

func (f fieldFunc) decode(c *Cursor, b *Bindings) error { return f(c, b) }

// Budget returns the position that a repetition started at position start must not go past
type Budget func(start int64, b *Bindings) int64

// UntilEnd bounds a repetition to what's left of the record before its trailer
func UntilEnd(f Framing) Budget {
	return func(_ int64, b *Bindings) int64 { return f.End(b.Uint(f.LengthField)) }
}

// ForLength bounds a repetition to the number of bytes held by lengthField, counted from where the repetition
// starts
func ForLength(lengthField string) Budget {
	return func(start int64, b *Bindings) int64 { return start + int64(b.Uint(lengthField))*8 }
}

// Fixed reads width bits as an unsigned integer
func Fixed(name string, width int) Field {
	return fieldFunc(func(c *Cursor, b *Bindings) error {
		v, err := c.ReadUint(width)
		if err != nil {
			return fmt.Errorf("astipsi: reading %s failed: %w", name, err)
		}
		b.set(name, v)
		return nil
	})
}

// Flag reads width bits and binds whether they equal 1
func Flag(name string, width int) Field {
	return fieldFunc(func(c *Cursor, b *Bindings) error {
		v, err := c.ReadUint(width)
		if err != nil {
			return fmt.Errorf("astipsi: reading %s failed: %w", name, err)
		}
		b.set(name, v == 1)
		return nil
	})
}

func expect(c *Cursor, width int, expected uint64, valid func(v uint64) bool) (v uint64, err error) {
	pos := c.AbsolutePosition()
	if v, err = c.ReadUint(width); err != nil {
		return
	}
	if !valid(v) {
		err = &UnexpectedValueError{
			Expected: expected,
			Got:      v,
			Position: pos,
			Width:    width,
		}
	}
	return
}

// Expect reads width bits and fails unless they equal constant
func Expect(width int, constant uint64) Field {
	return fieldFunc(func(c *Cursor, _ *Bindings) (err error) {
		_, err = expect(c, width, constant, func(v uint64) bool { return v == constant })
		return
	})
}

// ExpectOneOf reads width bits, fails unless they equal one of values and binds them
func ExpectOneOf(name string, width int, values ...uint64) Field {
	return fieldFunc(func(c *Cursor, b *Bindings) error {
		v, err := expect(c, width, values[0], func(v uint64) bool {
			for _, value := range values {
				if v == value {
					return true
				}
			}
			return false
		})
		if err != nil {
			return err
		}
		b.set(name, v)
		return nil
	})
}

// Reserved reads width bits and fails unless they're all set to 1
func Reserved(width int) Field {
	ones := ^uint64(0)
	if width < 64 {
		ones = 1<<uint(width) - 1
	}
	return fieldFunc(func(c *Cursor, _ *Bindings) (err error) {
		_, err = expect(c, width, ones, func(v uint64) bool { return v == ones })
		return
	})
}

// Derived binds the value computed by fn, which may read from the record's cursor
func Derived(name string, fn func(c *Cursor, b *Bindings) (interface{}, error)) Field {
	return fieldFunc(func(c *Cursor, b *Bindings) error {
		v, err := fn(c, b)
		if err != nil {
			return fmt.Errorf("astipsi: deriving %s failed: %w", name, err)
		}
		b.set(name, v)
		return nil
	})
}

// Value binds the value computed by fn from already bound fields
func Value(name string, fn func(b *Bindings) interface{}) Field {
	return Derived(name, func(_ *Cursor, b *Bindings) (interface{}, error) { return fn(b), nil })
}

// Nested decodes a nested record
func Nested[T any](name string, decode func(c *Cursor) (T, error)) Field {
	return Derived(name, func(c *Cursor, _ *Bindings) (interface{}, error) { return decode(c) })
}

// Optional decodes a nested record when present returns true, and binds T's zero value otherwise
func Optional[T any](name string, present func(b *Bindings) bool, decode func(c *Cursor) (T, error)) Field {
	return Derived(name, func(c *Cursor, b *Bindings) (interface{}, error) {
		if !present(b) {
			var t T
			return t, nil
		}
		return decode(c)
	})
}

// Bytes reads as many bytes as held by lengthField
func Bytes(name, lengthField string) Field {
	return Derived(name, func(c *Cursor, b *Bindings) (interface{}, error) {
		return c.ReadBytes(int(b.Uint(lengthField)))
	})
}

func bytesToEnd(c *Cursor, b *Bindings, f Framing) ([]byte, error) {
	var n int
	if l := f.BitsRemaining(b.Uint(f.LengthField), c.Position()); l > 0 {
		n = int(l / 8)
	}
	return c.ReadBytes(n)
}

// BytesToEnd reads all the whole bytes left in the record
func BytesToEnd(name string, f Framing) Field {
	return Derived(name, func(c *Cursor, b *Bindings) (interface{}, error) { return bytesToEnd(c, b, f) })
}

// Text reads as many bytes as held by lengthField and decodes them as DVB text
func Text(name, lengthField string) Field {
	return Derived(name, func(c *Cursor, b *Bindings) (interface{}, error) {
		bs, err := c.ReadBytes(int(b.Uint(lengthField)))
		if err != nil {
			return nil, err
		}
		return DecodeText(bs), nil
	})
}

// TextToEnd decodes all the whole bytes left in the record as DVB text
func TextToEnd(name string, f Framing) Field {
	return Derived(name, func(c *Cursor, b *Bindings) (interface{}, error) {
		bs, err := bytesToEnd(c, b, f)
		if err != nil {
			return nil, err
		}
		return DecodeText(bs), nil
	})
}

// LanguageCode reads a 3 letters ISO 639-2 code
func LanguageCode(name string) Field {
	return Derived(name, func(c *Cursor, _ *Bindings) (interface{}, error) {
		bs, err := c.ReadBytes(3)
		if err != nil {
			return nil, err
		}
		return string(bs), nil
	})
}

func repeated[T any](name string, minBits int64, decode func(c *Cursor) (T, error), budget Budget) Field {
	if minBits < 1 {
		minBits = 1
	}
	return fieldFunc(func(c *Cursor, b *Bindings) error {
		end := budget(c.Position(), b)
		var items []T
		for end-c.Position() >= minBits {
			start := c.Position()
			item, err := decode(c)
			if err != nil {
				return fmt.Errorf("astipsi: decoding %s #%d failed: %w", name, len(items), err)
			}
			if c.Position() > end {
				return &ReadTooMuchError{
					MaxPosition: c.origin + end,
					Position:    c.AbsolutePosition(),
				}
			}
			if c.Position() == start {
				return fmt.Errorf("astipsi: decoding %s #%d failed: %w", name, len(items), ErrEmptyElement)
			}
			items = append(items, item)
		}
		b.set(name, items)
		return nil
	})
}

// Repeated decodes elements while the budget has bits left
func Repeated[T any](name string, decode func(c *Cursor) (T, error), budget Budget) Field {
	return repeated(name, 1, decode, budget)
}

// RepeatedFixed decodes elements of elementBits bits while the budget has room for one more of them
func RepeatedFixed[T any](name string, elementBits int64, decode func(c *Cursor) (T, error), budget Budget) Field {
	return repeated(name, elementBits, decode, budget)
}

// SkipToEnd moves the cursor to the end of the record, or to its trailer when it has one
func SkipToEnd(f Framing) Field {
	return fieldFunc(func(c *Cursor, b *Bindings) error {
		length := b.Uint(f.LengthField)
		n := f.BitsRemaining(length, c.Position())
		if n < 0 {
			return &ReadTooMuchError{
				MaxPosition: c.origin + f.End(length),
				Position:    c.AbsolutePosition(),
			}
		}
		if err := c.Skip(n); err != nil {
			return fmt.Errorf("astipsi: skipping to end failed: %w", err)
		}
		return nil
	})
}
