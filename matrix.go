package molviz

import (
	"github.com/go-gl/mathgl/mgl32"
)

// clipEpsilon keeps points at or behind the eye out of the perspective divide.
const clipEpsilon = 1e-5

// TransformPoint applies m to p as a position (w = 1) and drops w.
func TransformPoint(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}

// ProjectToScreen runs p through the combined projection-view-model matrix and
// maps the result to window pixels, origin top-left and y down. The clip w is
// returned for size attenuation; ok is false when p is behind the eye.
func ProjectToScreen(mvp mgl32.Mat4, p mgl32.Vec3, width, height float32) (screen mgl32.Vec2, w float32, ok bool) {
	clip := mvp.Mul4x1(p.Vec4(1))
	w = clip.W()
	if w <= clipEpsilon {
		return mgl32.Vec2{}, w, false
	}

	ndcX := clip.X() / w
	ndcY := clip.Y() / w

	screen = mgl32.Vec2{
		(ndcX + 1) * 0.5 * width,
		(1 - ndcY) * 0.5 * height,
	}
	return screen, w, true
}

// ProjectedRadius is the on-screen radius in pixels of a sphere of the given
// world radius whose center has clip coordinate w.
func ProjectedRadius(projection mgl32.Mat4, radius, w, height float32) float32 {
	if w <= clipEpsilon {
		return 0
	}
	// [1][1] of a perspective matrix is cot(fov/2)
	return radius * projection.At(1, 1) / w * 0.5 * height
}

// ModelScale returns the uniform scale baked into a rotation-scale matrix.
func ModelScale(m mgl32.Mat4) float32 {
	return m.Col(0).Vec3().Len()
}
