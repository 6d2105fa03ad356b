package gfx

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/mgnsk/go-typedarray/pkg/array"
)

// MoveDirection specifies camera move direction.
type MoveDirection int

// Move constants.
const (
	MoveForward MoveDirection = iota
	MoveBack
	MoveLeft
	MoveRight
)

// RotateDirection specifies camera rotation direction.
type RotateDirection int

// Rotate constants.
const (
	RotateUp RotateDirection = iota
	RotateDown
	RotateLeft
	RotateRight
)

// RollDirection specifies camera roll direction.
type RollDirection int

// Roll constants.
const (
	RollLeft RollDirection = iota
	RollRight
)

// Packed camera vectors.
const (
	eyeVec = iota
	targetVec
	upVec
)

// PerspectiveCamera is a camera that uses perspective projection.
// Its eye, target and up vectors are kept packed in a float32 array.
type PerspectiveCamera struct {
	state      *array.TypedArray[float32]
	fovRadians float32
	zoom       float32
	ratio      float32
}

// NewPerspectiveCamera creates a new camera.
func NewPerspectiveCamera(eye, target, up mgl32.Vec3, fov, zoom, ratio float32) *PerspectiveCamera {
	state := array.FromSlice([]float32{
		eye[0], eye[1], eye[2],
		target[0], target[1], target[2],
		up[0], up[1], up[2],
	})
	return &PerspectiveCamera{
		state:      state,
		fovRadians: fov,
		zoom:       zoom,
		ratio:      ratio,
	}
}

// State returns the packed eye, target and up vectors.
// Writes to the returned array move the camera.
func (c *PerspectiveCamera) State() array.Window[float32] {
	w, _ := c.state.Extract(0, c.state.Len())
	return w
}

// Eye returns the eye position.
func (c *PerspectiveCamera) Eye() mgl32.Vec3 { return c.vec(eyeVec) }

// Target returns the target position.
func (c *PerspectiveCamera) Target() mgl32.Vec3 { return c.vec(targetVec) }

// Up returns the up vector.
func (c *PerspectiveCamera) Up() mgl32.Vec3 { return c.vec(upVec) }

func (c *PerspectiveCamera) vec(i int) mgl32.Vec3 {
	v, _ := Vec3At(c.state, i)
	return v
}

func (c *PerspectiveCamera) setVec(i int, v mgl32.Vec3) {
	_ = SetVec3At(c.state, i, v)
}

// Projection returns the projection matrix.
func (c *PerspectiveCamera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(c.fovRadians*c.zoom, c.ratio, 1, 1000)
}

// View returns the view matrix.
func (c *PerspectiveCamera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye(), c.Target(), c.Up())
}

// Uniforms returns the projection and view matrices packed in that order.
func (c *PerspectiveCamera) Uniforms() *array.TypedArray[float32] {
	return Mat4Array(c.Projection(), c.View())
}

// Move the camera in the specified direction.
func (c *PerspectiveCamera) Move(direction MoveDirection, amount float32) {
	var dir mgl32.Vec3

	switch direction {
	case MoveForward:
		dir = c.DirAxis().Mul(amount)
	case MoveBack:
		dir = c.DirAxis().Mul(-amount)
	case MoveRight:
		dir = c.PitchAxis().Mul(amount)
	case MoveLeft:
		dir = c.PitchAxis().Mul(-amount)
	}

	// eye and target are adjacent triples
	w, _ := c.state.Extract(eyeVec*3, (targetVec+1)*3)
	w.UnsafeSet(func(i int) float32 {
		v, _ := w.At(i)
		return v + dir[i%3]
	})
}

// Rotate the camera in the specified direction.
func (c *PerspectiveCamera) Rotate(direction RotateDirection, amount float32) {
	var axis mgl32.Vec3

	switch direction {
	case RotateUp:
		axis = c.PitchAxis()
	case RotateDown:
		axis, amount = c.PitchAxis(), -amount
	case RotateLeft:
		axis = c.Up()
	case RotateRight:
		axis, amount = c.Up(), -amount
	default:
		return
	}

	c.setVec(targetVec, rotateAroundPoint(c.Target(), c.Eye(), axis, amount))
}

// Roll camera left or right.
func (c *PerspectiveCamera) Roll(direction RollDirection, amount float32) {
	switch direction {
	case RollLeft:
		c.setVec(upVec, rotateAroundAxis(c.Up(), c.DirAxis(), -amount))
	case RollRight:
		c.setVec(upVec, rotateAroundAxis(c.Up(), c.DirAxis(), amount))
	}
}

// DirAxis returns the direction axis.
func (c *PerspectiveCamera) DirAxis() mgl32.Vec3 {
	return c.Target().Sub(c.Eye()).Normalize()
}

// PitchAxis returns the pitch axis.
func (c *PerspectiveCamera) PitchAxis() mgl32.Vec3 {
	return c.Target().Sub(c.Eye()).Cross(c.Up()).Normalize()
}
