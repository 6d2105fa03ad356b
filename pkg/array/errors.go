package array

import (
	"math"

	"github.com/joomcode/errorx"
)

// Errors is the error namespace of the array package.
var Errors = errorx.NewNamespace("array")

var (
	// ErrOutOfBounds is returned when an offset, index or range falls
	// outside of the valid window.
	ErrOutOfBounds = Errors.NewType("out_of_bounds")
	// ErrTypeMismatch is returned when a foreign value does not have the
	// expected binary representation.
	ErrTypeMismatch = Errors.NewType("type_mismatch")
	// ErrLengthMismatch is returned by two-array operations given operands
	// of differing length and by FromList given a short sequence.
	ErrLengthMismatch = Errors.NewType("length_mismatch")
	// ErrInvalidSize is returned for negative lengths and counts.
	ErrInvalidSize = Errors.NewType("invalid_size")
)

// MaxByteLength is the largest byte length of a buffer.
const MaxByteLength = math.MaxInt32

// checkSize validates a count of n elements of width bytes.
func checkSize(n, width int) error {
	if n < 0 {
		return ErrInvalidSize.New("invalid size %d", n)
	}
	if n > MaxByteLength/width {
		return ErrInvalidSize.New("%d elements of %d bytes exceed %d bytes", n, width, MaxByteLength)
	}
	return nil
}

// checkRange validates 0 <= begin <= end <= length.
func checkRange(begin, end, length int) error {
	if begin < 0 || end < begin || end > length {
		return ErrOutOfBounds.New("range [%d, %d) is outside of [0, %d)", begin, end, length)
	}
	return nil
}

func checkIndex(i, length int) error {
	if i < 0 || i >= length {
		return ErrOutOfBounds.New("index %d is outside of [0, %d)", i, length)
	}
	return nil
}

func checkSameLength(a, b int) error {
	if a != b {
		return ErrLengthMismatch.New("lengths differ: %d != %d", a, b)
	}
	return nil
}
