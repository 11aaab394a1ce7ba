package molviz

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// minimum brightness for any surface
	ambientLight = 0.65
	// higher values focus the spotlight around the view axis
	spotlightConePower = 10.0
	// light left over for the directional term
	spotlightLightAmount = 1.0 - ambientLight

	minChannel = 7
)

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// brightness combines ambient light with a diffuse term from the light and a
// spotlight cone centered on the camera's view axis. eyePos is the surface
// point in camera space.
func brightness(normal, toLight, eyePos mgl32.Vec3) float32 {
	diffuse := max(normal.Dot(toLight), 0)

	var spotlight float32 = 1
	if l := eyePos.Len(); l > 0 {
		// the camera looks down -Z
		cosAngle := max(-eyePos.Z()/l, 0)
		spotlight = float32(math.Pow(float64(cosAngle), spotlightConePower))
	}

	return ambientLight + diffuse*spotlight*spotlightLightAmount
}

// shadeColor darkens base for brightness below 1. A brightness of 1 leaves the
// color untouched.
func shadeColor(base color.RGBA, brightness float32) color.RGBA {
	c := 240 - int(brightness*240)
	return color.RGBA{
		R: uint8(clamp(int(base.R)-c, minChannel, 255)),
		G: uint8(clamp(int(base.G)-c, minChannel, 255)),
		B: uint8(clamp(int(base.B)-c, minChannel, 255)),
		A: base.A,
	}
}

// tint moves base toward target by t in [0, 1].
func tint(base, target color.RGBA, t float32) color.RGBA {
	t = mgl32.Clamp(t, 0, 1)
	mix := func(a, b uint8) uint8 {
		return uint8(float32(a) + (float32(b)-float32(a))*t + 0.5)
	}
	return color.RGBA{
		R: mix(base.R, target.R),
		G: mix(base.G, target.G),
		B: mix(base.B, target.B),
		A: mix(base.A, target.A),
	}
}

// outlineColor is a darker rim of base used for silhouettes.
func outlineColor(base color.RGBA) color.RGBA {
	return tint(base, color.RGBA{A: 255}, 0.75)
}
