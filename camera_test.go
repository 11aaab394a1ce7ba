package molviz

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func readyCamera() ReadyCamera {
	return NewPerspectiveCamera().
		Place(mgl32.Vec3{0, 0, 4}).
		Point(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
}

func TestCameraDefaults(t *testing.T) {
	c := NewPerspectiveCamera()

	testCases := []struct {
		name string
		got  float32
		want float32
	}{
		{"fov", c.Fov, float32(math.Pi / 2)},
		{"fov min", c.FovMin, mgl32.DegToRad(20)},
		{"fov max", c.FovMax, mgl32.DegToRad(120)},
		{"zoom sensitivity", c.ZoomSensitivity, 0.01},
		{"znear", c.ZNear, 0.1},
		{"zfar", c.ZFar, 1024},
	}
	for _, tc := range testCases {
		if !almostEqual(tc.got, tc.want) {
			t.Errorf("%s = %v, want %v", tc.name, tc.got, tc.want)
		}
	}
}

func TestCameraTransitionOrderIndependent(t *testing.T) {
	testCases := []struct {
		name            string
		pos, target, up mgl32.Vec3
	}{
		{"on z axis", mgl32.Vec3{0, 0, 4}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}},
		{"oblique", mgl32.Vec3{3, -2, 5}, mgl32.Vec3{1, 1, 1}, mgl32.Vec3{0, 0, 1}},
		{"far away", mgl32.Vec3{100, 50, -20}, mgl32.Vec3{-1, 0, 2}, mgl32.Vec3{0, 1, 0}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := NewPerspectiveCamera().Place(tc.pos).Point(tc.target, tc.up)
			b := NewPerspectiveCamera().Point(tc.target, tc.up).Place(tc.pos)

			if a.ViewMatrix() != b.ViewMatrix() {
				t.Errorf("view matrices differ:\n%v\n%v", a.ViewMatrix(), b.ViewMatrix())
			}
			if a.Position() != tc.pos || b.Position() != tc.pos {
				t.Errorf("positions = %v, %v; want %v", a.Position(), b.Position(), tc.pos)
			}
			if a.Target() != b.Target() || a.Up() != b.Up() {
				t.Error("target or up differ between transition orders")
			}
		})
	}
}

func TestCameraTransitionsKeepIntrinsics(t *testing.T) {
	in := Intrinsics{
		Fov:             mgl32.DegToRad(45),
		FovMin:          mgl32.DegToRad(10),
		FovMax:          mgl32.DegToRad(80),
		ZoomSensitivity: 0.5,
		ZNear:           0.5,
		ZFar:            50,
	}

	c := NewPerspectiveCameraWith(in).Point(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}).Place(mgl32.Vec3{1, 2, 3})
	if c.Intrinsics != in {
		t.Errorf("intrinsics = %+v, want %+v", c.Intrinsics, in)
	}
}

func TestCameraViewMatrixLooksDownNegativeZ(t *testing.T) {
	c := readyCamera()

	// the target sits straight ahead, 4 units down -Z in camera space
	got := TransformPoint(c.ViewMatrix(), mgl32.Vec3{})
	if !got.ApproxEqualThreshold(mgl32.Vec3{0, 0, -4}, float32EqualityThreshold) {
		t.Errorf("target in camera space = %v, want (0, 0, -4)", got)
	}
}

func TestCameraZoomSaturates(t *testing.T) {
	testCases := []struct {
		name   string
		amount float32
		want   float32
	}{
		{"zoom out to max", -1000, mgl32.DegToRad(120)},
		{"zoom in to min", 1000, mgl32.DegToRad(20)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := readyCamera()
			for i := 0; i < 50; i++ {
				c.Zoom(tc.amount)
				if c.Fov < c.FovMin || c.Fov > c.FovMax {
					t.Fatalf("fov %v left [%v, %v]", c.Fov, c.FovMin, c.FovMax)
				}
			}
			if !almostEqual(c.Fov, tc.want) {
				t.Errorf("fov = %v, want %v", c.Fov, tc.want)
			}
		})
	}
}

func TestCameraZoomStep(t *testing.T) {
	c := readyCamera()
	before := c.Fov

	c.Zoom(10)
	if !almostEqual(c.Fov, before-0.1) {
		t.Errorf("fov = %v, want %v", c.Fov, before-0.1)
	}

	c.Zoom(-10)
	if !almostEqual(c.Fov, before) {
		t.Errorf("fov = %v, want %v", c.Fov, before)
	}
}

func TestCameraProjectionClosedForm(t *testing.T) {
	in := DefaultIntrinsics()
	in.Fov = mgl32.DegToRad(60)
	in.ZNear = 0.1
	in.ZFar = 100
	c := NewPerspectiveCameraWith(in).Place(mgl32.Vec3{0, 0, 4}).Point(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})

	testCases := []struct {
		name   string
		aspect float32
	}{
		{"square", 1},
		{"wide", 16.0 / 9.0},
		{"tall", 0.5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			n, f := float64(in.ZNear), float64(in.ZFar)
			cot := 1 / math.Tan(float64(in.Fov)/2)

			// column major
			want := mgl32.Mat4{
				float32(cot / float64(tc.aspect)), 0, 0, 0,
				0, float32(cot), 0, 0,
				0, 0, float32((f + n) / (n - f)), -1,
				0, 0, float32(2 * f * n / (n - f)), 0,
			}

			got := c.ProjectionMatrix(tc.aspect)
			if !matAlmostEqual(got, want) {
				t.Errorf("projection =\n%v\nwant\n%v", got, want)
			}
		})
	}
}

func TestCameraProjectionFollowsAspect(t *testing.T) {
	c := readyCamera()

	narrow := c.ProjectionMatrix(1)
	wide := c.ProjectionMatrix(2)
	if !almostEqual(wide.At(0, 0), narrow.At(0, 0)/2) {
		t.Errorf("x scale at aspect 2 = %v, want %v", wide.At(0, 0), narrow.At(0, 0)/2)
	}
}
