package array

import (
	"unsafe"
)

// Encode reinterprets a numeric slice as its bytes in host byte order.
// The returned slice shares memory with s.
func Encode[E Element](s []E) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*BytesPerElement[E]())
}

// Decode reinterprets bytes as a numeric slice in host byte order.
// The returned slice shares memory with b. The byte length must be a
// multiple of the element width and b must be aligned to it.
func Decode[E Element](b []byte) ([]E, error) {
	size := BytesPerElement[E]()
	if len(b)%size != 0 {
		return nil, ErrOutOfBounds.New("byte length %d is not a multiple of %d", len(b), size)
	}
	if len(b) == 0 {
		return nil, nil
	}
	p := unsafe.Pointer(unsafe.SliceData(b))
	if uintptr(p)%uintptr(size) != 0 {
		return nil, ErrOutOfBounds.New("%s data must be aligned to %d bytes", TypeOf[E](), size)
	}
	return unsafe.Slice((*E)(p), len(b)/size), nil
}

// alloc returns n zeroed bytes aligned for every element kind.
func alloc(n int) []byte {
	if n == 0 {
		return []byte{}
	}
	words := make([]uint64, (n-1)/8+1)
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(words))), n)
}
