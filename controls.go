package molviz

import "github.com/go-gl/mathgl/mgl32"

type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// trackpads report pixels, wheels report lines
const pixelScrollFactor = 0.1

// Controls routes window input to the arcball, the camera and the molecule.
// Every method runs on the event loop goroutine.
type Controls struct {
	arcball  *ArcballControl
	camera   *ReadyCamera
	molecule *Molecule

	cursor           *mgl32.Vec2
	commitDragOnBlur bool
}

func NewControls(arcball *ArcballControl, camera *ReadyCamera, molecule *Molecule, commitDragOnBlur bool) *Controls {
	return &Controls{
		arcball:          arcball,
		camera:           camera,
		molecule:         molecule,
		commitDragOnBlur: commitDragOnBlur,
	}
}

func (c *Controls) PointerMoved(x, y float32) {
	c.cursor = &mgl32.Vec2{x, y}
	c.arcball.MouseMove(x, y)
}

// ButtonPressed starts a drag from the last cursor position seen. Without
// one there is nothing to anchor the drag to and the press is dropped.
func (c *Controls) ButtonPressed(b Button) {
	switch b {
	case ButtonLeft:
		if c.cursor != nil {
			c.arcball.MouseDown(c.cursor.X(), c.cursor.Y())
		}
	case ButtonRight:
		c.molecule.ToggleSilhouette()
	}
}

func (c *Controls) ButtonReleased(b Button) {
	if b == ButtonLeft {
		c.arcball.MouseUp()
	}
}

// Scrolled zooms by a wheel delta in lines. Positive values zoom in.
func (c *Controls) Scrolled(dy float32) {
	c.camera.Zoom(dy)
}

// ScrolledPixels is for hosts that report wheel motion in pixels. The ebiten
// viewer only sees line deltas and goes through Scrolled.
func (c *Controls) ScrolledPixels(dy float32) {
	c.camera.Zoom(dy * pixelScrollFactor)
}

func (c *Controls) Resized(width, height float32) {
	c.arcball.Resize(width, height)
}

// FocusLost ends an active drag when configured to, since the matching
// release will go to another window.
func (c *Controls) FocusLost() {
	if c.commitDragOnBlur {
		c.arcball.MouseUp()
	}
}

func (c *Controls) ResetView() {
	c.arcball.Reset()
}

// Cursor reports the last pointer position, if any.
func (c *Controls) Cursor() (mgl32.Vec2, bool) {
	if c.cursor == nil {
		return mgl32.Vec2{}, false
	}
	return *c.cursor, true
}
