package astipsi

import (
	"errors"
	"fmt"
)

// Errors
var (
	ErrInvalidCRC32     = errors.New("astipsi: invalid CRC32")
	ErrOutOfData        = errors.New("astipsi: out of data")
	ErrReadTooMuch      = errors.New("astipsi: read too much")
	ErrScopeMismatch    = errors.New("astipsi: scope mismatch")
	ErrUnexpectedValue  = errors.New("astipsi: unexpected value")
	ErrInvalidReadWidth = errors.New("astipsi: invalid read width")
)

// OutOfDataError is returned when a read or a skip would go past the end of the buffer
type OutOfDataError struct {
	Available int64 // Bits left in the buffer when the read was attempted
	Position  int64 // Absolute bit position at which the read was attempted
	Requested int64
}

func (e *OutOfDataError) Error() string {
	return fmt.Sprintf("astipsi: out of data at bit %d: %d bits requested, %d available", e.Position, e.Requested, e.Available)
}

func (e *OutOfDataError) Is(target error) bool { return target == ErrOutOfData }

// UnexpectedValueError is returned when a constant or a reserved field doesn't hold the value the format requires
type UnexpectedValueError struct {
	Expected uint64
	Got      uint64
	Position int64 // Absolute bit position of the field's first bit
	Width    int
}

func (e *UnexpectedValueError) Error() string {
	return fmt.Sprintf("astipsi: expected %#x on %d bits at bit %d, got %#x", e.Expected, e.Width, e.Position, e.Got)
}

func (e *UnexpectedValueError) Is(target error) bool { return target == ErrUnexpectedValue }

// ReadTooMuchError is returned when a bounded decode moved past the position it was allowed to reach
type ReadTooMuchError struct {
	MaxPosition int64
	Position    int64
}

func (e *ReadTooMuchError) Error() string {
	return fmt.Sprintf("astipsi: read too much: position %d is past max position %d", e.Position, e.MaxPosition)
}

func (e *ReadTooMuchError) Is(target error) bool { return target == ErrReadTooMuch }
