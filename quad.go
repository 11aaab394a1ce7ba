package molviz

import "github.com/go-gl/mathgl/mgl32"

// QuadVertex is one corner of the unit billboard, centered on the origin.
type QuadVertex struct {
	Pos mgl32.Vec3
	UV  mgl32.Vec2
}

var quadVertices = [4]QuadVertex{
	{Pos: mgl32.Vec3{-0.5, -0.5, 0}, UV: mgl32.Vec2{0, 0}},
	{Pos: mgl32.Vec3{0.5, -0.5, 0}, UV: mgl32.Vec2{1, 0}},
	{Pos: mgl32.Vec3{-0.5, 0.5, 0}, UV: mgl32.Vec2{0, 1}},
	{Pos: mgl32.Vec3{0.5, 0.5, 0}, UV: mgl32.Vec2{1, 1}},
}

// two triangles sharing the 1-2 diagonal
var quadIndices = [6]uint16{0, 1, 2, 1, 3, 2}

// perimeter walk for outlines
var quadOutline = [4]uint16{0, 1, 3, 2}

func QuadVertices() [4]QuadVertex {
	return quadVertices
}

func QuadIndices() [6]uint16 {
	return quadIndices
}
