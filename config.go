package molviz

import (
	"image/color"
	"math"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is everything the viewer needs to start. It is built once from
// defaults, an optional YAML file and the command line, then handed to the
// loader and the application.
type Config struct {
	File    string        `yaml:"file"`
	Window  WindowConfig  `yaml:"window"`
	Camera  CameraConfig  `yaml:"camera"`
	Arcball ArcballConfig `yaml:"arcball"`
	Scene   SceneConfig   `yaml:"scene"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// CameraConfig takes angles in degrees.
type CameraConfig struct {
	Position        mgl32.Vec3 `yaml:"position"`
	Target          mgl32.Vec3 `yaml:"target"`
	Up              mgl32.Vec3 `yaml:"up"`
	FovDegrees      float32    `yaml:"fov"`
	FovMinDegrees   float32    `yaml:"fov_min"`
	FovMaxDegrees   float32    `yaml:"fov_max"`
	ZoomSensitivity float32    `yaml:"zoom_sensitivity"`
	ZNear           float32    `yaml:"znear"`
	ZFar            float32    `yaml:"zfar"`
}

type ArcballConfig struct {
	SphereRadius float32 `yaml:"sphere_radius"`
	// CommitDragOnBlur folds an active drag into the rotation when the window
	// loses focus. When false the drag keeps going until the next release.
	CommitDragOnBlur bool `yaml:"commit_drag_on_blur"`
}

type SceneConfig struct {
	Light           mgl32.Vec3 `yaml:"light"`
	Background      [3]float32 `yaml:"background"`
	AtomScale       float32    `yaml:"atom_scale"`
	BondRadius      float32    `yaml:"bond_radius"`
	FitRadius       float32    `yaml:"fit_radius"`
	BondTolerance   float32    `yaml:"bond_tolerance"`
	ShowSilhouette  bool       `yaml:"show_silhouette"`
	SilhouetteWidth float32    `yaml:"silhouette_width"`
}

const upEpsilon = 1e-4

func DefaultConfig() *Config {
	in := DefaultIntrinsics()
	return &Config{
		Window: WindowConfig{
			Title:  "molviz",
			Width:  1024,
			Height: 768,
		},
		Camera: CameraConfig{
			Position:        mgl32.Vec3{0, 0, 4},
			Target:          mgl32.Vec3{0, 0, 0},
			Up:              mgl32.Vec3{0, 1, 0},
			FovDegrees:      mgl32.RadToDeg(in.Fov),
			FovMinDegrees:   mgl32.RadToDeg(in.FovMin),
			FovMaxDegrees:   mgl32.RadToDeg(in.FovMax),
			ZoomSensitivity: in.ZoomSensitivity,
			ZNear:           in.ZNear,
			ZFar:            in.ZFar,
		},
		Arcball: ArcballConfig{
			SphereRadius:     defaultSphereRadius,
			CommitDragOnBlur: true,
		},
		Scene: SceneConfig{
			Light:           mgl32.Vec3{0, 2, 1},
			Background:      [3]float32{0.1294, 0.1294, 0.1294},
			AtomScale:       0.25,
			BondRadius:      0.15,
			FitRadius:       1.5,
			BondTolerance:   DefaultBondTolerance,
			SilhouetteWidth: 2,
		},
	}
}

// LoadConfig overlays the YAML file at path on the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read config %s", path)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "bad yaml")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}

	cam := c.Camera
	if cam.FovMinDegrees <= 0 || cam.FovMaxDegrees >= 180 || cam.FovMinDegrees > cam.FovMaxDegrees {
		return errors.Errorf("fov bounds [%v, %v] must satisfy 0 < min <= max < 180", cam.FovMinDegrees, cam.FovMaxDegrees)
	}
	if cam.FovDegrees < cam.FovMinDegrees || cam.FovDegrees > cam.FovMaxDegrees {
		return errors.Errorf("fov %v outside [%v, %v]", cam.FovDegrees, cam.FovMinDegrees, cam.FovMaxDegrees)
	}
	if cam.ZNear <= 0 || cam.ZFar <= cam.ZNear {
		return errors.Errorf("clip planes near %v far %v must satisfy 0 < near < far", cam.ZNear, cam.ZFar)
	}
	forward := cam.Position.Sub(cam.Target)
	if forward.Len() == 0 {
		return errors.Errorf("camera position and target coincide at %v", cam.Position)
	}
	if cam.Up.Len() == 0 {
		return errors.Errorf("camera up vector is zero")
	}
	// LookAt has no defined roll when up runs along the view direction
	if cam.Up.Normalize().Cross(forward.Normalize()).Len() < upEpsilon {
		return errors.Errorf("camera up vector %v is parallel to the view direction", cam.Up)
	}

	if c.Arcball.SphereRadius <= 0 {
		return errors.Errorf("arcball sphere radius %v must be positive", c.Arcball.SphereRadius)
	}

	s := c.Scene
	for _, f := range []struct {
		name  string
		value float32
	}{
		{"atom_scale", s.AtomScale},
		{"bond_radius", s.BondRadius},
		{"fit_radius", s.FitRadius},
	} {
		if f.value <= 0 || math.IsNaN(float64(f.value)) {
			return errors.Errorf("scene %s %v must be positive", f.name, f.value)
		}
	}
	if s.BondTolerance < 0 {
		return errors.Errorf("scene bond_tolerance %v must not be negative", s.BondTolerance)
	}
	return nil
}

func (c CameraConfig) Intrinsics() Intrinsics {
	return Intrinsics{
		Fov:             mgl32.DegToRad(c.FovDegrees),
		FovMin:          mgl32.DegToRad(c.FovMinDegrees),
		FovMax:          mgl32.DegToRad(c.FovMaxDegrees),
		ZoomSensitivity: c.ZoomSensitivity,
		ZNear:           c.ZNear,
		ZFar:            c.ZFar,
	}
}

// Build runs the camera through its placement states.
func (c CameraConfig) Build() ReadyCamera {
	return NewPerspectiveCameraWith(c.Intrinsics()).
		Place(c.Position).
		Point(c.Target, c.Up)
}

func (s SceneConfig) BackgroundColor() color.RGBA {
	return color.RGBA{
		R: unitToByte(s.Background[0]),
		G: unitToByte(s.Background[1]),
		B: unitToByte(s.Background[2]),
		A: 255,
	}
}

func unitToByte(v float32) uint8 {
	return uint8(mgl32.Clamp(v, 0, 1)*255 + 0.5)
}
