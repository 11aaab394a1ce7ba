package molviz

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	defaultDiscSegments = 24

	glintScale = 0.35
	glintTint  = 0.45

	// screen length below which a bond is seen end-on
	minBondPixels = 1e-3
)

// Uniforms are the per-frame inputs shared by every instance.
type Uniforms struct {
	Model          mgl32.Mat4
	View           mgl32.Mat4
	Projection     mgl32.Mat4
	Light          mgl32.Vec3 // world space
	CameraPosition mgl32.Vec3
	ShowSilhouette bool
	Width          float32
	Height         float32
}

// Canvas receives convex polygons in window pixels. The slices are reused
// between calls and must not be retained.
type Canvas interface {
	FillPolygon(xs, ys []float32, clr color.RGBA)
	StrokePolygon(xs, ys []float32, width float32, clr color.RGBA)
}

type DrawStats struct {
	Spheres   int
	Cylinders int
	Culled    int
}

// BatchRenderer projects sphere and cylinder batches and paints them back to
// front. It is the software stand-in for an instanced impostor pipeline: one
// model matrix per frame, instance data never rewritten.
type BatchRenderer struct {
	DiscSegments    int
	SilhouetteWidth float32

	list drawList
	xs   []float32
	ys   []float32
}

func NewBatchRenderer(silhouetteWidth float32) *BatchRenderer {
	return &BatchRenderer{
		DiscSegments:    defaultDiscSegments,
		SilhouetteWidth: silhouetteWidth,
	}
}

func (r *BatchRenderer) Draw(c Canvas, u Uniforms, spheres *SphereBatch, cylinders *CylinderBatch) DrawStats {
	var stats DrawStats
	r.list.reset()

	if u.Width <= 0 || u.Height <= 0 {
		return stats
	}

	modelView := u.View.Mul4(u.Model)
	mvp := u.Projection.Mul4(modelView)
	scale := ModelScale(u.Model)
	lightEye := TransformPoint(u.View, u.Light)

	for _, s := range spheres.Instances() {
		item, ok := r.projectSphere(u, mvp, modelView, lightEye, scale, s)
		if !ok {
			stats.Culled++
			continue
		}
		r.list.add(item)
	}

	for _, cyl := range cylinders.Instances() {
		item, ok := r.projectCylinder(u, mvp, modelView, lightEye, scale, cyl)
		if !ok {
			stats.Culled++
			continue
		}
		r.list.add(item)
	}

	r.list.sortByDepth()

	for _, item := range r.list.items {
		switch item.kind {
		case drawSphere:
			r.paintSphere(c, item, u.ShowSilhouette)
			stats.Spheres++
		case drawCylinder:
			r.paintCylinder(c, item, u.ShowSilhouette)
			stats.Cylinders++
		}
	}

	return stats
}

func (r *BatchRenderer) projectSphere(u Uniforms, mvp, modelView mgl32.Mat4, lightEye mgl32.Vec3, scale float32, s SphereInstance) (drawItem, bool) {
	screen, w, ok := ProjectToScreen(mvp, s.Position, u.Width, u.Height)
	if !ok {
		return drawItem{}, false
	}
	radius := ProjectedRadius(u.Projection, s.Radius*scale, w, u.Height)
	if radius <= 0 || offScreen(screen, radius, u.Width, u.Height) {
		return drawItem{}, false
	}

	eye := TransformPoint(modelView, s.Position)
	normal := eye.Mul(-1).Normalize()
	toLight := lightEye.Sub(eye).Normalize()
	fill := shadeColor(s.Color, brightness(normal, toLight, eye))

	return drawItem{
		kind:      drawSphere,
		depth:     -eye.Z(),
		center:    screen,
		radius:    radius,
		fill:      fill,
		highlight: tint(fill, color.RGBA{R: 255, G: 255, B: 255, A: 255}, glintTint),
		outline:   outlineColor(s.Color),
		// screen y runs down
		glint: mgl32.Vec2{toLight.X(), -toLight.Y()}.Mul(radius * glintScale),
	}, true
}

func (r *BatchRenderer) projectCylinder(u Uniforms, mvp, modelView mgl32.Mat4, lightEye mgl32.Vec3, scale float32, cyl CylinderInstance) (drawItem, bool) {
	start, ws, okStart := ProjectToScreen(mvp, cyl.Start, u.Width, u.Height)
	end, we, okEnd := ProjectToScreen(mvp, cyl.End, u.Width, u.Height)
	if !okStart || !okEnd {
		return drawItem{}, false
	}

	radius := ProjectedRadius(u.Projection, cyl.Radius*scale, (ws+we)/2, u.Height)
	mid := start.Add(end).Mul(0.5)
	half := end.Sub(start).Len()/2 + radius
	if radius <= 0 || offScreen(mid, half, u.Width, u.Height) {
		return drawItem{}, false
	}

	axis := end.Sub(start)
	if axis.Len() < minBondPixels {
		axis = mgl32.Vec2{1, 0}
	}
	axis = axis.Normalize()
	across := mgl32.Vec2{-axis.Y(), axis.X()}

	var corners [4]mgl32.Vec2
	for i, v := range quadVertices {
		along := v.Pos.X() + 0.5
		side := v.Pos.Y() * 2
		corners[i] = start.Add(end.Sub(start).Mul(along)).Add(across.Mul(side * radius))
	}

	eye := TransformPoint(modelView, cyl.Midpoint())
	normal := eye.Mul(-1).Normalize()
	toLight := lightEye.Sub(eye).Normalize()

	return drawItem{
		kind:    drawCylinder,
		depth:   -eye.Z(),
		center:  mid,
		radius:  radius,
		corners: corners,
		fill:    shadeColor(cyl.Color, brightness(normal, toLight, eye)),
		outline: outlineColor(cyl.Color),
	}, true
}

func offScreen(center mgl32.Vec2, extent, width, height float32) bool {
	return center.X()+extent < 0 || center.X()-extent > width ||
		center.Y()+extent < 0 || center.Y()-extent > height
}

func (r *BatchRenderer) paintSphere(c Canvas, item drawItem, silhouette bool) {
	r.disc(item.center, item.radius)
	c.FillPolygon(r.xs, r.ys, item.fill)
	if silhouette {
		c.StrokePolygon(r.xs, r.ys, r.SilhouetteWidth, item.outline)
	}

	r.disc(item.center.Add(item.glint), item.radius*glintScale)
	c.FillPolygon(r.xs, r.ys, item.highlight)
}

func (r *BatchRenderer) paintCylinder(c Canvas, item drawItem, silhouette bool) {
	for t := 0; t < len(quadIndices); t += 3 {
		r.xs, r.ys = r.xs[:0], r.ys[:0]
		for _, idx := range quadIndices[t : t+3] {
			r.xs = append(r.xs, item.corners[idx].X())
			r.ys = append(r.ys, item.corners[idx].Y())
		}
		c.FillPolygon(r.xs, r.ys, item.fill)
	}

	if silhouette {
		r.xs, r.ys = r.xs[:0], r.ys[:0]
		for _, idx := range quadOutline {
			r.xs = append(r.xs, item.corners[idx].X())
			r.ys = append(r.ys, item.corners[idx].Y())
		}
		c.StrokePolygon(r.xs, r.ys, r.SilhouetteWidth, item.outline)
	}
}

// disc fills r.xs and r.ys with a regular polygon approximating a circle.
func (r *BatchRenderer) disc(center mgl32.Vec2, radius float32) {
	n := max(r.DiscSegments, 3)
	r.xs, r.ys = r.xs[:0], r.ys[:0]
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		r.xs = append(r.xs, center.X()+radius*float32(math.Cos(a)))
		r.ys = append(r.ys, center.Y()+radius*float32(math.Sin(a)))
	}
}
