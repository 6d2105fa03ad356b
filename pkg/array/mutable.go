package array

// UnsafeSetAt sets the element at index i in place and returns a.
//
// The write is visible through every window sharing a's memory.
func (a *TypedArray[E]) UnsafeSetAt(i int, value E) (*TypedArray[E], error) {
	if err := checkIndex(i, len(a.data)); err != nil {
		return a, err
	}
	a.data[i] = value
	return a, nil
}

// UnsafeSet sets every element i to f(i) in place and returns a.
//
// The writes are visible through every window sharing a's memory.
func (a *TypedArray[E]) UnsafeSet(f func(int) E) *TypedArray[E] {
	for i := range a.data {
		a.data[i] = f(i)
	}
	return a
}
