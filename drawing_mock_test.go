package molviz

import "image/color"

type recordedPolygon struct {
	xs, ys []float32
	clr    color.RGBA
	stroke bool
	width  float32
}

// recordingCanvas is a Canvas mock that keeps a copy of every polygon.
type recordingCanvas struct {
	polygons []recordedPolygon
}

func (c *recordingCanvas) FillPolygon(xs, ys []float32, clr color.RGBA) {
	c.polygons = append(c.polygons, recordedPolygon{
		xs:  append([]float32(nil), xs...),
		ys:  append([]float32(nil), ys...),
		clr: clr,
	})
}

func (c *recordingCanvas) StrokePolygon(xs, ys []float32, width float32, clr color.RGBA) {
	c.polygons = append(c.polygons, recordedPolygon{
		xs:     append([]float32(nil), xs...),
		ys:     append([]float32(nil), ys...),
		clr:    clr,
		stroke: true,
		width:  width,
	})
}

func (c *recordingCanvas) fills() int {
	n := 0
	for _, p := range c.polygons {
		if !p.stroke {
			n++
		}
	}
	return n
}

func (c *recordingCanvas) strokes() int {
	return len(c.polygons) - c.fills()
}
