package viewer

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage = ebiten.NewImage(3, 3)
	whiteSub   *ebiten.Image
)

func init() {
	whiteImage.Fill(color.White)
	whiteSub = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// Canvas paints molviz polygons onto an ebiten image with DrawTriangles.
type Canvas struct {
	target *ebiten.Image

	vertices []ebiten.Vertex
	indices  []uint16
}

func (c *Canvas) setTarget(target *ebiten.Image) {
	c.target = target
}

func (c *Canvas) FillPolygon(xs, ys []float32, clr color.RGBA) {
	if c.target == nil || len(xs) < 3 {
		return
	}

	c.indices = c.indices[:0]
	for i := 2; i < len(xs); i++ {
		c.indices = append(c.indices, 0, uint16(i-1), uint16(i))
	}

	cr, cg, cb, ca := vertexColor(clr)
	c.vertices = c.vertices[:0]
	for i := range xs {
		c.vertices = append(c.vertices, ebiten.Vertex{
			DstX:   xs[i],
			DstY:   ys[i],
			SrcX:   1,
			SrcY:   1,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	c.target.DrawTriangles(c.vertices, c.indices, whiteSub, op)
}

// StrokePolygon draws the closed outline through the given points.
func (c *Canvas) StrokePolygon(xs, ys []float32, width float32, clr color.RGBA) {
	if c.target == nil || len(xs) < 2 {
		return
	}

	var path vector.Path
	path.MoveTo(xs[0], ys[0])
	for i := 1; i < len(xs); i++ {
		path.LineTo(xs[i], ys[i])
	}
	path.Close()

	strokeOp := &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinRound,
	}
	c.vertices, c.indices = path.AppendVerticesAndIndicesForStroke(c.vertices[:0], c.indices[:0], strokeOp)

	cr, cg, cb, ca := vertexColor(clr)
	for i := range c.vertices {
		c.vertices[i].ColorR = cr
		c.vertices[i].ColorG = cg
		c.vertices[i].ColorB = cb
		c.vertices[i].ColorA = ca
		c.vertices[i].SrcX = 1
		c.vertices[i].SrcY = 1
	}

	c.target.DrawTriangles(c.vertices, c.indices, whiteSub, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func vertexColor(clr color.RGBA) (r, g, b, a float32) {
	return float32(clr.R) / 255.0,
		float32(clr.G) / 255.0,
		float32(clr.B) / 255.0,
		float32(clr.A) / 255.0
}
