package molviz

import (
	"github.com/go-gl/mathgl/mgl32"
)

// The perspective camera is a small type-state machine. Each readiness stage
// is its own type and only ReadyCamera can produce matrices, so asking for a
// view before the camera has both a position and a target does not compile:
//
//	VirtualCamera --Place--> PlacedCamera  --Point--> ReadyCamera
//	VirtualCamera --Point--> PointedCamera --Place--> ReadyCamera
//
// Intrinsics ride along unchanged through every transition.

// Intrinsics are the lens parameters. Angles are in radians.
type Intrinsics struct {
	Fov             float32
	FovMin          float32
	FovMax          float32
	ZoomSensitivity float32
	ZNear           float32
	ZFar            float32
}

func DefaultIntrinsics() Intrinsics {
	return Intrinsics{
		Fov:             mgl32.DegToRad(90),
		FovMin:          mgl32.DegToRad(20),
		FovMax:          mgl32.DegToRad(120),
		ZoomSensitivity: 0.01,
		ZNear:           0.1,
		ZFar:            1024,
	}
}

// VirtualCamera has neither a position nor a target.
type VirtualCamera struct {
	Intrinsics
}

// PlacedCamera has a position only.
type PlacedCamera struct {
	Intrinsics
	position mgl32.Vec3
}

// PointedCamera has a target and up vector only.
type PointedCamera struct {
	Intrinsics
	target mgl32.Vec3
	up     mgl32.Vec3
}

// ReadyCamera has position, target and up. It is the terminal state.
type ReadyCamera struct {
	Intrinsics
	position mgl32.Vec3
	target   mgl32.Vec3
	up       mgl32.Vec3
}

func NewPerspectiveCamera() VirtualCamera {
	return VirtualCamera{Intrinsics: DefaultIntrinsics()}
}

func NewPerspectiveCameraWith(in Intrinsics) VirtualCamera {
	return VirtualCamera{Intrinsics: in}
}

func (c VirtualCamera) Place(position mgl32.Vec3) PlacedCamera {
	return PlacedCamera{Intrinsics: c.Intrinsics, position: position}
}

func (c VirtualCamera) Point(target, up mgl32.Vec3) PointedCamera {
	return PointedCamera{Intrinsics: c.Intrinsics, target: target, up: up}
}

func (c PlacedCamera) Point(target, up mgl32.Vec3) ReadyCamera {
	return ReadyCamera{
		Intrinsics: c.Intrinsics,
		position:   c.position,
		target:     target,
		up:         up,
	}
}

func (c PointedCamera) Place(position mgl32.Vec3) ReadyCamera {
	return ReadyCamera{
		Intrinsics: c.Intrinsics,
		position:   position,
		target:     c.target,
		up:         c.up,
	}
}

// Zoom narrows the field of view for positive amounts and widens it for
// negative ones, always staying inside [FovMin, FovMax].
func (c *ReadyCamera) Zoom(amount float32) {
	c.Fov = mgl32.Clamp(c.Fov-amount*c.ZoomSensitivity, c.FovMin, c.FovMax)
}

// ViewMatrix is a right handed look-at; the camera looks down -Z.
func (c ReadyCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.target, c.up)
}

// ProjectionMatrix takes the aspect ratio per call; it is never stored.
func (c ReadyCamera) ProjectionMatrix(aspectRatio float32) mgl32.Mat4 {
	return mgl32.Perspective(c.Fov, aspectRatio, c.ZNear, c.ZFar)
}

func (c ReadyCamera) Position() mgl32.Vec3 {
	return c.position
}

func (c ReadyCamera) Target() mgl32.Vec3 {
	return c.target
}

func (c ReadyCamera) Up() mgl32.Vec3 {
	return c.up
}
