package gfx

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/mgnsk/go-typedarray/pkg/array"
)

const mat4Len = 16

// Mat4Array packs the column-major matrices into a new float32 array,
// ready to be uploaded as uniform data.
func Mat4Array(ms ...mgl32.Mat4) *array.TypedArray[float32] {
	res, _ := array.Zeros[float32](len(ms) * mat4Len)
	for i, m := range ms {
		w, _ := res.Extract(i*mat4Len, (i+1)*mat4Len)
		w.UnsafeSet(func(j int) float32 {
			return m[j]
		})
	}
	return res
}

// Mat4At returns the i-th packed matrix of arr.
func Mat4At(arr *array.TypedArray[float32], i int) (mgl32.Mat4, error) {
	w, err := arr.Extract(i*mat4Len, (i+1)*mat4Len)
	if err != nil {
		return mgl32.Mat4{}, err
	}
	var m mgl32.Mat4
	copy(m[:], w.Slice())
	return m, nil
}
