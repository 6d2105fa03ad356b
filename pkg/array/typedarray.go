package array

// TypedArray is a homogeneous window of elements of type E over an
// ArrayBuffer.
//
// Arrays returned by constructors and transforms own a freshly allocated
// buffer. Arrays reached through a Window share the buffer of their source
// and observe every write to the overlapping bytes.
type TypedArray[E Element] struct {
	buf        *ArrayBuffer
	byteOffset int
	data       []E
	owned      bool
}

// Window is a TypedArray that aliases memory held by someone else.
// Writes through a Window are visible through every other view of the same
// bytes, and vice versa.
type Window[E Element] struct {
	*TypedArray[E]
}

func newTypedArray[E Element](n int) *TypedArray[E] {
	buf := &ArrayBuffer{data: alloc(n * BytesPerElement[E]())}
	// alloc is aligned for every kind so this cannot fail.
	data, _ := Decode[E](buf.data)
	return &TypedArray[E]{
		buf:   buf,
		data:  data,
		owned: true,
	}
}

// Zeros creates a new array of n zero elements.
func Zeros[E Element](n int) (*TypedArray[E], error) {
	if err := checkSize(n, BytesPerElement[E]()); err != nil {
		return nil, err
	}
	return newTypedArray[E](n), nil
}

// Repeat creates a new array of n elements set to constant.
func Repeat[E Element](n int, constant E) (*TypedArray[E], error) {
	if err := checkSize(n, BytesPerElement[E]()); err != nil {
		return nil, err
	}
	a := newTypedArray[E](n)
	for i := range a.data {
		a.data[i] = constant
	}
	return a, nil
}

// Initialize creates a new array of n elements where element i is f(i).
func Initialize[E Element](n int, f func(int) E) (*TypedArray[E], error) {
	if err := checkSize(n, BytesPerElement[E]()); err != nil {
		return nil, err
	}
	a := newTypedArray[E](n)
	for i := range a.data {
		a.data[i] = f(i)
	}
	return a, nil
}

// FromBuffer creates a window of n elements over buf starting at byteOffset.
// The offset must be a multiple of the element width.
func FromBuffer[E Element](buf *ArrayBuffer, byteOffset, n int) (Window[E], error) {
	if err := checkSize(n, BytesPerElement[E]()); err != nil {
		return Window[E]{}, err
	}
	size := BytesPerElement[E]()
	if byteOffset < 0 || byteOffset > buf.Len() {
		return Window[E]{}, ErrOutOfBounds.New("byte offset %d is outside of buffer of %d bytes", byteOffset, buf.Len())
	}
	if byteOffset%size != 0 {
		return Window[E]{}, ErrOutOfBounds.New("start offset of %s should be a multiple of %d", TypeOf[E](), size)
	}
	if n > (buf.Len()-byteOffset)/size {
		return Window[E]{}, ErrOutOfBounds.New(
			"%d elements of %s at byte offset %d exceed buffer of %d bytes", n, TypeOf[E](), byteOffset, buf.Len(),
		)
	}
	data, err := Decode[E](buf.data[byteOffset : byteOffset+n*size])
	if err != nil {
		return Window[E]{}, err
	}
	return Window[E]{&TypedArray[E]{
		buf:        buf,
		byteOffset: byteOffset,
		data:       data,
	}}, nil
}

// FromList creates a new array from the first n elements of seq.
func FromList[E Element](n int, seq []E) (*TypedArray[E], error) {
	if err := checkSize(n, BytesPerElement[E]()); err != nil {
		return nil, err
	}
	if len(seq) < n {
		return nil, ErrLengthMismatch.New("sequence of %d elements is shorter than %d", len(seq), n)
	}
	a := newTypedArray[E](n)
	copy(a.data, seq)
	return a, nil
}

// FromSlice creates a new array holding a copy of s.
func FromSlice[E Element](s []E) *TypedArray[E] {
	a := newTypedArray[E](len(s))
	copy(a.data, s)
	return a
}

// FromTypedArray creates a deep copy of src.
func FromTypedArray[E Element](src *TypedArray[E]) *TypedArray[E] {
	return FromSlice(src.data)
}

// Convert creates a new array of kind E holding src's elements converted
// with Go's numeric conversion rules.
func Convert[E, F Element](src *TypedArray[F]) *TypedArray[E] {
	a := newTypedArray[E](len(src.data))
	for i, v := range src.data {
		a.data[i] = E(v)
	}
	return a
}

// FromValue returns x as a TypedArray if it is a *TypedArray[E],
// a Window[E] or a *Window[E].
func FromValue[E Element](x any) (*TypedArray[E], error) {
	switch v := x.(type) {
	case *TypedArray[E]:
		if v != nil {
			return v, nil
		}
	case Window[E]:
		if v.TypedArray != nil {
			return v.TypedArray, nil
		}
	case *Window[E]:
		if v != nil && v.TypedArray != nil {
			return v.TypedArray, nil
		}
	}
	return nil, ErrTypeMismatch.New("value of type %T is not a %s", x, TypeOf[E]())
}

// Len returns the number of elements.
func (a *TypedArray[E]) Len() int {
	return len(a.data)
}

// ByteLength returns the length of the array in bytes.
func (a *TypedArray[E]) ByteLength() int {
	return len(a.data) * BytesPerElement[E]()
}

// ByteOffset returns the offset of the first element from the start of the
// buffer.
func (a *TypedArray[E]) ByteOffset() int {
	return a.byteOffset
}

// Buffer returns the underlying ArrayBuffer.
func (a *TypedArray[E]) Buffer() *ArrayBuffer {
	return a.buf
}

// Type returns the kind of the array.
func (a *TypedArray[E]) Type() Type {
	return TypeOf[E]()
}

// Owns reports whether the array was allocated with its own buffer rather
// than created as a window over an existing one.
func (a *TypedArray[E]) Owns() bool {
	return a.owned
}

// At returns the element at index i.
func (a *TypedArray[E]) At(i int) (E, error) {
	if err := checkIndex(i, len(a.data)); err != nil {
		return 0, err
	}
	return a.data[i], nil
}

// Slice copies the elements into a new slice.
func (a *TypedArray[E]) Slice() []E {
	s := make([]E, len(a.data))
	copy(s, a.data)
	return s
}

// Bytes copies the bytes of the array's window in host byte order.
func (a *TypedArray[E]) Bytes() []byte {
	b := make([]byte, a.ByteLength())
	copy(b, Encode(a.data))
	return b
}
