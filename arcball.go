package molviz

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	defaultSphereRadius = 0.5

	// below this the rotation axis is treated as undefined
	axisEpsilon = 1e-6
)

// ArcballControl turns pointer drags into rotations using Shoemake's virtual
// trackball. The in-progress drag is kept apart from the committed history so
// a drag can be folded in (MouseUp) or thrown away (Reset).
//
// The sphere radius controls sensitivity: a smaller sphere rotates faster for
// the same pixel delta.
type ArcballControl struct {
	lastRotation    mgl32.Quat
	currentRotation mgl32.Quat

	dragStart *mgl32.Vec2

	width  float32
	height float32
	radius float32
}

func NewArcballControl(width, height float32) *ArcballControl {
	return &ArcballControl{
		lastRotation:    mgl32.QuatIdent(),
		currentRotation: mgl32.QuatIdent(),
		width:           width,
		height:          height,
		radius:          defaultSphereRadius,
	}
}

func (a *ArcballControl) Reset() {
	a.lastRotation = mgl32.QuatIdent()
	a.currentRotation = mgl32.QuatIdent()
	a.dragStart = nil
}

// MouseDown starts a drag at (x, y) in window pixels, origin top-left, y down.
// A second call while dragging just moves the start point.
func (a *ArcballControl) MouseDown(x, y float32) {
	a.dragStart = &mgl32.Vec2{x, y}
}

func (a *ArcballControl) MouseMove(x, y float32) {
	if a.dragStart == nil {
		return
	}

	from := a.project(a.dragStart.X(), a.dragStart.Y())
	to := a.project(x, y)
	a.currentRotation = rotationBetween(from, to)
}

func (a *ArcballControl) MouseUp() {
	if a.dragStart == nil {
		return
	}

	a.lastRotation = a.currentRotation.Mul(a.lastRotation).Normalize()
	a.currentRotation = mgl32.QuatIdent()
	a.dragStart = nil
}

// Rotation returns the full orientation, in-progress drag included.
func (a *ArcballControl) Rotation() mgl32.Quat {
	return a.currentRotation.Mul(a.lastRotation).Normalize()
}

func (a *ArcballControl) RotationMatrix() mgl32.Mat4 {
	return a.Rotation().Mat4()
}

func (a *ArcballControl) Resize(width, height float32) {
	a.width = width
	a.height = height
}

func (a *ArcballControl) Dragging() bool {
	return a.dragStart != nil
}

func (a *ArcballControl) LastRotation() mgl32.Quat {
	return a.lastRotation
}

func (a *ArcballControl) CurrentRotation() mgl32.Quat {
	return a.currentRotation
}

func (a *ArcballControl) SphereRadius() float32 {
	return a.radius
}

// SetSphereRadius ignores non-positive radii.
func (a *ArcballControl) SetSphereRadius(r float32) {
	if r <= 0 || math.IsNaN(float64(r)) {
		return
	}
	a.radius = r
}

// project maps window coordinates into a [-1, 1] square and lifts the point
// onto the trackball. Inside the silhouette it lands on the sphere, outside it
// lands on the hyperbolic sheet z = r²/(2·|p|), which keeps far drags bounded.
func (a *ArcballControl) project(x, y float32) mgl32.Vec3 {
	res := float32(math.Max(1, float64(min(a.width, a.height)-1)))
	nx := (2*x - a.width - 1) / res
	ny := -(2*y - a.height - 1) / res

	d := nx*nx + ny*ny
	r2 := a.radius * a.radius

	var z float32
	if 2*d <= r2 {
		z = float32(math.Sqrt(float64(r2 - d)))
	} else {
		z = r2 / (2 * float32(math.Sqrt(float64(d))))
	}

	return mgl32.Vec3{nx, ny, z}
}

// rotationBetween returns the shortest arc rotation taking from onto to. When
// no axis exists (zero length input, parallel or opposite vectors) the result
// is the identity.
func rotationBetween(from, to mgl32.Vec3) mgl32.Quat {
	fl, tl := from.Len(), to.Len()
	if fl < axisEpsilon || tl < axisEpsilon {
		return mgl32.QuatIdent()
	}

	f := from.Mul(1 / fl)
	t := to.Mul(1 / tl)

	axis := f.Cross(t)
	if axis.Len() < axisEpsilon {
		return mgl32.QuatIdent()
	}

	cos := mgl32.Clamp(f.Dot(t), -1, 1)
	angle := float32(math.Acos(float64(cos)))

	return mgl32.QuatRotate(angle, axis.Normalize()).Normalize()
}
