// Package viewer hosts a molviz Application in an ebiten window.
package viewer

import (
	"fmt"
	"image"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"

	"github.com/smasonuk/molviz"
)

// Game polls ebiten input once per tick and forwards it to the application.
type Game struct {
	app    *molviz.Application
	canvas *Canvas

	width, height int
	cursor        image.Point
	cursorSeen    bool
	focused       bool

	stats molviz.DrawStats
}

func New(app *molviz.Application) *Game {
	return &Game{
		app:     app,
		canvas:  &Canvas{},
		focused: true,
	}
}

func (g *Game) Update() error {
	controls := g.app.Controls()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		controls.ResetView()
	}

	focused := ebiten.IsFocused()
	if g.focused && !focused {
		controls.FocusLost()
	}
	g.focused = focused

	x, y := ebiten.CursorPosition()
	if p := image.Pt(x, y); !g.cursorSeen || p != g.cursor {
		g.cursor = p
		g.cursorSeen = true
		controls.PointerMoved(float32(x), float32(y))
	}

	for _, b := range []struct {
		key    ebiten.MouseButton
		button molviz.Button
	}{
		{ebiten.MouseButtonLeft, molviz.ButtonLeft},
		{ebiten.MouseButtonRight, molviz.ButtonRight},
		{ebiten.MouseButtonMiddle, molviz.ButtonMiddle},
	} {
		if inpututil.IsMouseButtonJustPressed(b.key) {
			controls.ButtonPressed(b.button)
		}
		if inpututil.IsMouseButtonJustReleased(b.key) {
			controls.ButtonReleased(b.button)
		}
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		controls.Scrolled(float32(dy))
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.app.Background())

	g.canvas.setTarget(screen)
	g.stats = g.app.Render(g.canvas, float32(g.width), float32(g.height))
	g.canvas.setTarget(nil)

	m := g.app.Molecule()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %0.2f  atoms: %d  bonds: %d  fov: %.1f  drawn: %d/%d",
		ebiten.ActualFPS(),
		m.Spheres().Len(),
		len(m.Bonds()),
		mgl32.RadToDeg(g.app.Camera().Fov),
		g.stats.Spheres+g.stats.Cylinders,
		g.stats.Spheres+g.stats.Cylinders+g.stats.Culled,
	))
}

// Layout keeps the logical screen the same size as the window so the
// trackball works in real pixels.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.app.Controls().Resized(float32(outsideWidth), float32(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed or Escape is pressed.
func Run(app *molviz.Application, cfg *molviz.Config) error {
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(New(app)); err != nil {
		return errors.Wrap(err, "viewer")
	}
	return nil
}
