package scene

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	FieldOfView float32 = math.Pi / 4
	ZNear       float32 = 0.1
	ZFar        float32 = 100.0

	// CameraDistance is how far the cube sits in front of the eye.
	CameraDistance float32 = 2.0
)

// Projection describes the perspective frustum.
type Projection struct {
	FOV    float32 // vertical, radians
	Aspect float32
	Near   float32
	Far    float32
}

// DefaultProjection returns the fixed frustum for the given aspect ratio.
func DefaultProjection(aspect float32) Projection {
	return Projection{
		FOV:    FieldOfView,
		Aspect: aspect,
		Near:   ZNear,
		Far:    ZFar,
	}
}

func (p Projection) Matrix() rl.Matrix {
	return rl.MatrixPerspective(p.FOV, p.Aspect, p.Near, p.Far)
}

// ModelView places the cube CameraDistance in front of the eye and spins it
// by rotation radians about Y.
func ModelView(rotation float64) rl.Matrix {
	// raymath composes left to right: rotate first, then translate.
	rotY := rl.MatrixRotateY(float32(rotation))
	trans := rl.MatrixTranslate(0, 0, -CameraDistance)
	return rl.MatrixMultiply(rotY, trans)
}

// Transform returns projection * modelView for the given rotation, the single
// matrix uploaded to the vertex stage.
func Transform(rotation float64, proj Projection) rl.Matrix {
	return rl.MatrixMultiply(ModelView(rotation), proj.Matrix())
}

func aspectOf(width, height int) float32 {
	if width <= 0 || height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}
