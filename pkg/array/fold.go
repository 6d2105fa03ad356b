package array

// Foldl reduces the array from index 0 to Len()-1.
func Foldl[E Element, A any](arr *TypedArray[E], initial A, f func(E, A) A) A {
	acc := initial
	for _, v := range arr.data {
		acc = f(v, acc)
	}
	return acc
}

// IndexedFoldl is Foldl with the element index passed to f.
func IndexedFoldl[E Element, A any](arr *TypedArray[E], initial A, f func(int, E, A) A) A {
	acc := initial
	for i, v := range arr.data {
		acc = f(i, v, acc)
	}
	return acc
}

// Foldr reduces the array from index Len()-1 to 0.
func Foldr[E Element, A any](arr *TypedArray[E], initial A, f func(E, A) A) A {
	acc := initial
	for i := len(arr.data) - 1; i >= 0; i-- {
		acc = f(arr.data[i], acc)
	}
	return acc
}

// IndexedFoldr is Foldr with the element index passed to f.
func IndexedFoldr[E Element, A any](arr *TypedArray[E], initial A, f func(int, E, A) A) A {
	acc := initial
	for i := len(arr.data) - 1; i >= 0; i-- {
		acc = f(i, arr.data[i], acc)
	}
	return acc
}

// Foldl2 reduces pairs of elements of a and b from the first index to the
// last. Both arrays must have the same length.
func Foldl2[E, F Element, A any](a *TypedArray[E], b *TypedArray[F], initial A, f func(E, F, A) A) (A, error) {
	if err := checkSameLength(len(a.data), len(b.data)); err != nil {
		return initial, err
	}
	acc := initial
	for i := range a.data {
		acc = f(a.data[i], b.data[i], acc)
	}
	return acc, nil
}

// IndexedFoldl2 is Foldl2 with the element index passed to f.
func IndexedFoldl2[E, F Element, A any](a *TypedArray[E], b *TypedArray[F], initial A, f func(int, E, F, A) A) (A, error) {
	if err := checkSameLength(len(a.data), len(b.data)); err != nil {
		return initial, err
	}
	acc := initial
	for i := range a.data {
		acc = f(i, a.data[i], b.data[i], acc)
	}
	return acc, nil
}

// Foldr2 reduces pairs of elements of a and b from the last index to the
// first. Both arrays must have the same length.
func Foldr2[E, F Element, A any](a *TypedArray[E], b *TypedArray[F], initial A, f func(E, F, A) A) (A, error) {
	if err := checkSameLength(len(a.data), len(b.data)); err != nil {
		return initial, err
	}
	acc := initial
	for i := len(a.data) - 1; i >= 0; i-- {
		acc = f(a.data[i], b.data[i], acc)
	}
	return acc, nil
}

// IndexedFoldr2 is Foldr2 with the element index passed to f.
func IndexedFoldr2[E, F Element, A any](a *TypedArray[E], b *TypedArray[F], initial A, f func(int, E, F, A) A) (A, error) {
	if err := checkSameLength(len(a.data), len(b.data)); err != nil {
		return initial, err
	}
	acc := initial
	for i := len(a.data) - 1; i >= 0; i-- {
		acc = f(i, a.data[i], b.data[i], acc)
	}
	return acc, nil
}

// Foldlr reduces a from left to right while walking b from right to left:
// a[i] is combined with b[Len()-1-i]. Both arrays must have the same length.
func Foldlr[E, F Element, A any](a *TypedArray[E], b *TypedArray[F], initial A, f func(E, F, A) A) (A, error) {
	if err := checkSameLength(len(a.data), len(b.data)); err != nil {
		return initial, err
	}
	n := len(a.data)
	acc := initial
	for i := 0; i < n; i++ {
		acc = f(a.data[i], b.data[n-1-i], acc)
	}
	return acc, nil
}
