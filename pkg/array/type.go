package array

// Element is the set of numeric types a TypedArray can hold.
type Element interface {
	int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 | float32 | float64
}

// Type is the name of a TypedArray kind.
type Type string

// TypedArray kinds.
const (
	Int8Array      Type = "Int8Array"
	Int16Array     Type = "Int16Array"
	Int32Array     Type = "Int32Array"
	BigInt64Array  Type = "BigInt64Array"
	Uint8Array     Type = "Uint8Array"
	Uint16Array    Type = "Uint16Array"
	Uint32Array    Type = "Uint32Array"
	BigUint64Array Type = "BigUint64Array"
	Float32Array   Type = "Float32Array"
	Float64Array   Type = "Float64Array"
)

// Size returns the byte width of an element of this kind.
func (t Type) Size() int {
	switch t {
	case Int8Array, Uint8Array:
		return 1
	case Int16Array, Uint16Array:
		return 2
	case Int32Array, Uint32Array, Float32Array:
		return 4
	case BigInt64Array, BigUint64Array, Float64Array:
		return 8
	default:
		return 0
	}
}

// IsFloat reports whether elements of this kind are IEEE-754 floats.
func (t Type) IsFloat() bool {
	return t == Float32Array || t == Float64Array
}

// IsSigned reports whether elements of this kind are signed.
func (t Type) IsSigned() bool {
	switch t {
	case Int8Array, Int16Array, Int32Array, BigInt64Array, Float32Array, Float64Array:
		return true
	default:
		return false
	}
}

// TypeOf returns the kind of arrays holding E.
func TypeOf[E Element]() Type {
	switch any(*new(E)).(type) {
	case int8:
		return Int8Array
	case int16:
		return Int16Array
	case int32:
		return Int32Array
	case int64:
		return BigInt64Array
	case uint8:
		return Uint8Array
	case uint16:
		return Uint16Array
	case uint32:
		return Uint32Array
	case uint64:
		return BigUint64Array
	case float32:
		return Float32Array
	default:
		return Float64Array
	}
}

// BytesPerElement returns the byte width of E.
func BytesPerElement[E Element]() int {
	return TypeOf[E]().Size()
}
