package molviz

import (
	"image/color"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

type drawKind int

const (
	drawSphere drawKind = iota
	drawCylinder
)

// drawItem is one projected impostor waiting to be painted.
type drawItem struct {
	kind drawKind

	// distance from the eye along the view axis
	depth float32

	center  mgl32.Vec2
	radius  float32
	corners [4]mgl32.Vec2

	fill      color.RGBA
	highlight color.RGBA
	outline   color.RGBA
	// highlight disc offset from center, in pixels
	glint mgl32.Vec2
}

type drawList struct {
	items []drawItem
}

func (l *drawList) reset() {
	l.items = l.items[:0]
}

func (l *drawList) add(item drawItem) {
	l.items = append(l.items, item)
}

// sortByDepth puts the items farthest from the eye at the start of the slice.
// Ties keep insertion order so spheres stay ahead of the bonds leaving them.
func (l *drawList) sortByDepth() {
	sort.SliceStable(l.items, func(i, j int) bool {
		return l.items[i].depth > l.items[j].depth
	})
}
