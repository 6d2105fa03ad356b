package gfx

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/mgnsk/go-typedarray/pkg/array"
)

// Vec3At returns the i-th packed xyz triple of arr.
func Vec3At(arr *array.TypedArray[float32], i int) (mgl32.Vec3, error) {
	w, err := arr.Extract(i*3, i*3+3)
	if err != nil {
		return mgl32.Vec3{}, err
	}
	var v mgl32.Vec3
	copy(v[:], w.Slice())
	return v, nil
}

// SetVec3At overwrites the i-th packed xyz triple of arr in place.
func SetVec3At(arr *array.TypedArray[float32], i int, v mgl32.Vec3) error {
	w, err := arr.Extract(i*3, i*3+3)
	if err != nil {
		return err
	}
	w.UnsafeSet(func(j int) float32 {
		return v[j]
	})
	return nil
}

// RotateVertices returns a new array with every packed xyz vertex
// rotated around the unit axis by angle radians.
func RotateVertices(vertices *array.TypedArray[float32], axis mgl32.Vec3, angle float32) (*array.TypedArray[float32], error) {
	return transformVertices(vertices, func(v mgl32.Vec3) mgl32.Vec3 {
		return rotateAroundAxis(v, axis, angle)
	})
}

// RotateVerticesAround returns a new array with every packed xyz vertex
// rotated around the line through middle with the unit direction axis.
func RotateVerticesAround(vertices *array.TypedArray[float32], middle, axis mgl32.Vec3, angle float32) (*array.TypedArray[float32], error) {
	return transformVertices(vertices, func(v mgl32.Vec3) mgl32.Vec3 {
		return rotateAroundPoint(v, middle, axis, angle)
	})
}

func transformVertices(vertices *array.TypedArray[float32], f func(mgl32.Vec3) mgl32.Vec3) (*array.TypedArray[float32], error) {
	if vertices.Len()%3 != 0 {
		return nil, array.ErrLengthMismatch.New("%d floats do not form xyz vertices", vertices.Len())
	}

	res := array.FromTypedArray(vertices)
	for i := 0; i < res.Len()/3; i++ {
		v, err := Vec3At(res, i)
		if err != nil {
			return nil, err
		}
		if err := SetVec3At(res, i, f(v)); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// rotateAroundAxis uses Rodrigues' rotation formula: https://en.wikipedia.org/wiki/Rodrigues%27_rotation_formula
func rotateAroundAxis(v, axis mgl32.Vec3, angle float32) mgl32.Vec3 {
	sin, cos := math32.Sincos(angle)
	add1 := v.Mul(cos)
	add2 := axis.Cross(v).Mul(sin)
	add3 := axis.Mul(v.Dot(axis) * (1 - cos))
	return add1.Add(add2).Add(add3)
}

// rotateAroundPoint rotates p around the line through middle with the unit direction axis.
// Formula from here: https://sites.google.com/site/glennmurray/Home/rotation-matrices-and-formulas
func rotateAroundPoint(p, middle, axis mgl32.Vec3, angle float32) mgl32.Vec3 {
	a, b, c := middle.Elem()
	u, v, w := axis.Elem()
	x, y, z := p.Elem()

	sin, cos := math32.Sincos(angle)
	dot := u*x + v*y + w*z

	return mgl32.Vec3{
		(a*(v*v+w*w)-u*(b*v+c*w-dot))*(1-cos) + x*cos + (-c*v+b*w-w*y+v*z)*sin,
		(b*(u*u+w*w)-v*(a*u+c*w-dot))*(1-cos) + y*cos + (c*u-a*w+w*x-u*z)*sin,
		(c*(u*u+v*v)-w*(a*u+b*v-dot))*(1-cos) + z*cos + (-b*u+a*v-v*x+u*y)*sin,
	}
}
