package molviz

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Application owns the viewer state for one window: the camera, the
// trackball, the molecule and the renderer. It is not safe for concurrent use.
type Application struct {
	camera   ReadyCamera
	arcball  *ArcballControl
	molecule *Molecule
	renderer *BatchRenderer
	controls *Controls

	light      mgl32.Vec3
	background color.RGBA
}

func NewApplication(cfg *Config, s *Structure) *Application {
	a := &Application{
		camera:     cfg.Camera.Build(),
		arcball:    NewArcballControl(float32(cfg.Window.Width), float32(cfg.Window.Height)),
		molecule:   NewMolecule(s, cfg.Scene),
		renderer:   NewBatchRenderer(cfg.Scene.SilhouetteWidth),
		light:      cfg.Scene.Light,
		background: cfg.Scene.BackgroundColor(),
	}
	a.arcball.SetSphereRadius(cfg.Arcball.SphereRadius)
	a.controls = NewControls(a.arcball, &a.camera, a.molecule, cfg.Arcball.CommitDragOnBlur)
	return a
}

// Uniforms rebuilds the model matrix from the fit scale and the current
// trackball rotation and returns everything a frame needs. The aspect ratio
// comes from the size passed in, never from a cached value.
func (a *Application) Uniforms(width, height float32) Uniforms {
	sf := a.molecule.ScaleFactor()
	a.molecule.ResetModelMatrix()
	a.molecule.Scale(mgl32.Scale3D(sf, sf, sf))
	a.molecule.Rotate(a.arcball.RotationMatrix())

	aspect := float32(1)
	if height > 0 {
		aspect = width / height
	}

	return Uniforms{
		Model:          a.molecule.ModelMatrix(),
		View:           a.camera.ViewMatrix(),
		Projection:     a.camera.ProjectionMatrix(aspect),
		Light:          a.light,
		CameraPosition: a.camera.Position(),
		ShowSilhouette: a.molecule.ShowSilhouette(),
		Width:          width,
		Height:         height,
	}
}

// Render draws one frame of the given size onto c. The trackball keeps the size
// it was last given through Controls.Resized.
func (a *Application) Render(c Canvas, width, height float32) DrawStats {
	u := a.Uniforms(width, height)
	return a.renderer.Draw(c, u, a.molecule.Spheres(), a.molecule.Cylinders())
}

func (a *Application) Controls() *Controls {
	return a.controls
}

func (a *Application) Camera() *ReadyCamera {
	return &a.camera
}

func (a *Application) Arcball() *ArcballControl {
	return a.arcball
}

func (a *Application) Molecule() *Molecule {
	return a.molecule
}

func (a *Application) Background() color.RGBA {
	return a.background
}
