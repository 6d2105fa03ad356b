package array

import (
	"strings"

	"golang.org/x/exp/slices"
)

// All reports whether f holds for every element. It stops at the first
// element for which f returns false.
func (a *TypedArray[E]) All(f func(E) bool) bool {
	for _, v := range a.data {
		if !f(v) {
			return false
		}
	}
	return true
}

// IndexedAll is All with the element index passed to f.
func (a *TypedArray[E]) IndexedAll(f func(int, E) bool) bool {
	for i, v := range a.data {
		if !f(i, v) {
			return false
		}
	}
	return true
}

// Any reports whether f holds for some element. It stops at the first
// element for which f returns true.
func (a *TypedArray[E]) Any(f func(E) bool) bool {
	for _, v := range a.data {
		if f(v) {
			return true
		}
	}
	return false
}

// IndexedAny is Any with the element index passed to f.
func (a *TypedArray[E]) IndexedAny(f func(int, E) bool) bool {
	for i, v := range a.data {
		if f(i, v) {
			return true
		}
	}
	return false
}

// FindIndex returns the lowest index whose element satisfies f.
// It returns -1 and false if there is none.
func (a *TypedArray[E]) FindIndex(f func(E) bool) (int, bool) {
	if i := slices.IndexFunc(a.data, f); i >= 0 {
		return i, true
	}
	return -1, false
}

// IndexedFindIndex is FindIndex with the element index passed to f.
func (a *TypedArray[E]) IndexedFindIndex(f func(int, E) bool) (int, bool) {
	for i, v := range a.data {
		if f(i, v) {
			return i, true
		}
	}
	return -1, false
}

// Equal reports whether a and b have the same length and pairwise equal
// elements. NaN is not equal to itself.
func Equal[E Element](a, b *TypedArray[E]) bool {
	return slices.Equal(a.data, b.data)
}

// Filter returns a new array with the elements satisfying f, in order.
func (a *TypedArray[E]) Filter(f func(E) bool) *TypedArray[E] {
	var kept []E
	for _, v := range a.data {
		if f(v) {
			kept = append(kept, v)
		}
	}
	return FromSlice(kept)
}

// IndexedFilter is Filter with the element index passed to f.
func (a *TypedArray[E]) IndexedFilter(f func(int, E) bool) *TypedArray[E] {
	var kept []E
	for i, v := range a.data {
		if f(i, v) {
			kept = append(kept, v)
		}
	}
	return FromSlice(kept)
}

// Map returns a new array with f applied to every element.
func (a *TypedArray[E]) Map(f func(E) E) *TypedArray[E] {
	res := newTypedArray[E](len(a.data))
	for i, v := range a.data {
		res.data[i] = f(v)
	}
	return res
}

// IndexedMap is Map with the element index passed to f.
func (a *TypedArray[E]) IndexedMap(f func(int, E) E) *TypedArray[E] {
	res := newTypedArray[E](len(a.data))
	for i, v := range a.data {
		res.data[i] = f(i, v)
	}
	return res
}

// Map2 returns a new array with f applied to pairs of elements of a and b.
// Both arrays must have the same length.
func (a *TypedArray[E]) Map2(b *TypedArray[E], f func(E, E) E) (*TypedArray[E], error) {
	if err := checkSameLength(len(a.data), len(b.data)); err != nil {
		return nil, err
	}
	res := newTypedArray[E](len(a.data))
	for i := range a.data {
		res.data[i] = f(a.data[i], b.data[i])
	}
	return res, nil
}

// IndexedMap2 is Map2 with the element index passed to f.
func (a *TypedArray[E]) IndexedMap2(b *TypedArray[E], f func(int, E, E) E) (*TypedArray[E], error) {
	if err := checkSameLength(len(a.data), len(b.data)); err != nil {
		return nil, err
	}
	res := newTypedArray[E](len(a.data))
	for i := range a.data {
		res.data[i] = f(i, a.data[i], b.data[i])
	}
	return res, nil
}

// Reverse returns a new array with the elements in reverse order.
func (a *TypedArray[E]) Reverse() *TypedArray[E] {
	res := FromTypedArray(a)
	slices.Reverse(res.data)
	return res
}

// Sort returns a new array with the elements in ascending numeric order.
// -0 sorts before +0 and NaN sorts last.
func (a *TypedArray[E]) Sort() *TypedArray[E] {
	res := FromTypedArray(a)
	slices.SortFunc(res.data, compare[E])
	return res
}

// ReverseSort returns a new array with the elements in descending numeric
// order. NaN sorts last.
func (a *TypedArray[E]) ReverseSort() *TypedArray[E] {
	res := FromTypedArray(a)
	slices.SortFunc(res.data, func(x, y E) int {
		if isNaN(x) || isNaN(y) {
			return compare(x, y)
		}
		return compare(y, x)
	})
	return res
}

// Extract returns a window over elements [start, end) that shares memory
// with a.
func (a *TypedArray[E]) Extract(start, end int) (Window[E], error) {
	if err := checkRange(start, end, len(a.data)); err != nil {
		return Window[E]{}, err
	}
	return Window[E]{&TypedArray[E]{
		buf:        a.buf,
		byteOffset: a.byteOffset + start*BytesPerElement[E](),
		data:       a.data[start:end:end],
	}}, nil
}

// Append returns a new array of a's kind holding a's elements followed by
// b's elements converted to a's kind.
func Append[E, F Element](a *TypedArray[E], b *TypedArray[F]) *TypedArray[E] {
	res := newTypedArray[E](len(a.data) + len(b.data))
	n := copy(res.data, a.data)
	for i, v := range b.data {
		res.data[n+i] = E(v)
	}
	return res
}

// ReplaceWithConstant returns a copy of a with elements [start, end) set
// to constant.
func (a *TypedArray[E]) ReplaceWithConstant(start, end int, constant E) (*TypedArray[E], error) {
	if err := checkRange(start, end, len(a.data)); err != nil {
		return nil, err
	}
	res := FromTypedArray(a)
	for i := start; i < end; i++ {
		res.data[i] = constant
	}
	return res, nil
}

// Join renders the elements as decimal text separated by sep.
func (a *TypedArray[E]) Join(sep string) string {
	var sb strings.Builder
	for i, v := range a.data {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(formatElement(v))
	}
	return sb.String()
}

// isNaN is only true for float NaN.
func isNaN[E Element](v E) bool {
	return v != v
}

func compare[E Element](x, y E) int {
	switch xNaN, yNaN := isNaN(x), isNaN(y); {
	case xNaN && yNaN:
		return 0
	case xNaN:
		return 1
	case yNaN:
		return -1
	case x < y:
		return -1
	case x > y:
		return 1
	case x == 0:
		// Order -0 before +0.
		xNeg, yNeg := 1/float64(x) < 0, 1/float64(y) < 0
		switch {
		case xNeg && !yNeg:
			return -1
		case !xNeg && yNeg:
			return 1
		}
	}
	return 0
}
