package array

import (
	"encoding/binary"
	"math"

	"github.com/chewxy/math32"
)

// DataView reads and writes big-endian numeric encodings at byte offsets
// inside a window of an ArrayBuffer.
type DataView struct {
	buf        *ArrayBuffer
	byteOffset int
	byteLength int
}

// NewDataView creates a view over byteLength bytes of buf starting at byteOffset.
func NewDataView(buf *ArrayBuffer, byteOffset, byteLength int) (*DataView, error) {
	if byteOffset < 0 || byteLength < 0 || byteOffset > buf.Len()-byteLength {
		return nil, ErrOutOfBounds.New(
			"view [%d, %d+%d) exceeds buffer of %d bytes", byteOffset, byteOffset, byteLength, buf.Len(),
		)
	}
	return &DataView{
		buf:        buf,
		byteOffset: byteOffset,
		byteLength: byteLength,
	}, nil
}

// EmptyDataView returns a view over a new empty buffer.
func EmptyDataView() *DataView {
	return &DataView{buf: &ArrayBuffer{data: alloc(0)}}
}

// Buffer returns the viewed ArrayBuffer.
func (v *DataView) Buffer() *ArrayBuffer {
	return v.buf
}

// ByteLength returns the length of the view in bytes.
func (v *DataView) ByteLength() int {
	return v.byteLength
}

// ByteOffset returns the offset of the view from the start of its buffer.
func (v *DataView) ByteOffset() int {
	return v.byteOffset
}

// bytes returns the size bytes at off relative to the view start.
func (v *DataView) bytes(off, size int) ([]byte, error) {
	if off < 0 || off > v.byteLength-size {
		return nil, ErrOutOfBounds.New("offset %d is out of bounds for %d-byte read in view of %d bytes", off, size, v.byteLength)
	}
	start := v.byteOffset + off
	return v.buf.data[start : start+size], nil
}

// GetInt8 reads a signed byte.
func (v *DataView) GetInt8(off int) (int8, error) {
	b, err := v.bytes(off, 1)
	if err != nil {
		return 0, err
	}
	return int8(b[0]), nil
}

// GetUint8 reads an unsigned byte.
func (v *DataView) GetUint8(off int) (uint8, error) {
	b, err := v.bytes(off, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// GetInt16 reads a big-endian int16.
func (v *DataView) GetInt16(off int) (int16, error) {
	u, err := v.GetUint16(off)
	return int16(u), err
}

// GetUint16 reads a big-endian uint16.
func (v *DataView) GetUint16(off int) (uint16, error) {
	b, err := v.bytes(off, 2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// GetInt32 reads a big-endian int32.
func (v *DataView) GetInt32(off int) (int32, error) {
	u, err := v.GetUint32(off)
	return int32(u), err
}

// GetUint32 reads a big-endian uint32.
func (v *DataView) GetUint32(off int) (uint32, error) {
	b, err := v.bytes(off, 4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// GetBigInt64 reads a big-endian int64.
func (v *DataView) GetBigInt64(off int) (int64, error) {
	u, err := v.GetBigUint64(off)
	return int64(u), err
}

// GetBigUint64 reads a big-endian uint64.
func (v *DataView) GetBigUint64(off int) (uint64, error) {
	b, err := v.bytes(off, 8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

// GetFloat32 reads a big-endian IEEE-754 binary32.
func (v *DataView) GetFloat32(off int) (float32, error) {
	u, err := v.GetUint32(off)
	return math32.Float32frombits(u), err
}

// GetFloat64 reads a big-endian IEEE-754 binary64.
func (v *DataView) GetFloat64(off int) (float64, error) {
	u, err := v.GetBigUint64(off)
	return math.Float64frombits(u), err
}

// SetInt8 writes a signed byte.
func (v *DataView) SetInt8(off int, value int8) (*DataView, error) {
	return v.SetUint8(off, uint8(value))
}

// SetUint8 writes an unsigned byte.
func (v *DataView) SetUint8(off int, value uint8) (*DataView, error) {
	b, err := v.bytes(off, 1)
	if err != nil {
		return v, err
	}
	b[0] = value
	return v, nil
}

// SetInt16 writes a big-endian int16.
func (v *DataView) SetInt16(off int, value int16) (*DataView, error) {
	return v.SetUint16(off, uint16(value))
}

// SetUint16 writes a big-endian uint16.
func (v *DataView) SetUint16(off int, value uint16) (*DataView, error) {
	b, err := v.bytes(off, 2)
	if err != nil {
		return v, err
	}
	binary.BigEndian.PutUint16(b, value)
	return v, nil
}

// SetInt32 writes a big-endian int32.
func (v *DataView) SetInt32(off int, value int32) (*DataView, error) {
	return v.SetUint32(off, uint32(value))
}

// SetUint32 writes a big-endian uint32.
func (v *DataView) SetUint32(off int, value uint32) (*DataView, error) {
	b, err := v.bytes(off, 4)
	if err != nil {
		return v, err
	}
	binary.BigEndian.PutUint32(b, value)
	return v, nil
}

// SetBigInt64 writes a big-endian int64.
func (v *DataView) SetBigInt64(off int, value int64) (*DataView, error) {
	return v.SetBigUint64(off, uint64(value))
}

// SetBigUint64 writes a big-endian uint64.
func (v *DataView) SetBigUint64(off int, value uint64) (*DataView, error) {
	b, err := v.bytes(off, 8)
	if err != nil {
		return v, err
	}
	binary.BigEndian.PutUint64(b, value)
	return v, nil
}

// SetFloat32 writes a big-endian IEEE-754 binary32.
func (v *DataView) SetFloat32(off int, value float32) (*DataView, error) {
	return v.SetUint32(off, math32.Float32bits(value))
}

// SetFloat64 writes a big-endian IEEE-754 binary64.
func (v *DataView) SetFloat64(off int, value float64) (*DataView, error) {
	return v.SetBigUint64(off, math.Float64bits(value))
}
