package array

import "bytes"

// ArrayBuffer is a fixed-length, zero-initialized byte region.
//
// Views and typed arrays created over an ArrayBuffer share its memory.
type ArrayBuffer struct {
	data []byte
}

// NewArrayBuffer allocates a zero-filled ArrayBuffer of size bytes.
func NewArrayBuffer(size int) (*ArrayBuffer, error) {
	if err := checkSize(size, 1); err != nil {
		return nil, err
	}
	return &ArrayBuffer{data: alloc(size)}, nil
}

// NewArrayBufferFromSlice creates a new ArrayBuffer holding a copy of the
// slice's bytes in host byte order.
func NewArrayBufferFromSlice[E Element](s []E) *ArrayBuffer {
	b := Encode(s)
	buf := &ArrayBuffer{data: alloc(len(b))}
	copy(buf.data, b)
	return buf
}

// ArrayBufferFromValue returns x if it is an ArrayBuffer.
func ArrayBufferFromValue(x any) (*ArrayBuffer, error) {
	buf, ok := x.(*ArrayBuffer)
	if !ok || buf == nil {
		return nil, ErrTypeMismatch.New("value of type %T is not an ArrayBuffer", x)
	}
	return buf, nil
}

// Len returns the byte length of the buffer.
func (a *ArrayBuffer) Len() int {
	return len(a.data)
}

// Bytes returns a copy of the buffer bytes.
func (a *ArrayBuffer) Bytes() []byte {
	b := make([]byte, len(a.data))
	copy(b, a.data)
	return b
}

// Slice returns a new ArrayBuffer holding a copy of bytes [begin, end).
func (a *ArrayBuffer) Slice(begin, end int) (*ArrayBuffer, error) {
	if err := checkRange(begin, end, len(a.data)); err != nil {
		return nil, err
	}
	buf := &ArrayBuffer{data: alloc(end - begin)}
	copy(buf.data, a.data[begin:end])
	return buf, nil
}

// Equal reports whether a and b hold the same bytes.
func (a *ArrayBuffer) Equal(b *ArrayBuffer) bool {
	if a == nil || b == nil {
		return a == b
	}
	return bytes.Equal(a.data, b.data)
}
