package molviz

import (
	"log"

	"github.com/go-gl/mathgl/mgl32"
)

// Molecule is the drawable form of a Structure. Instances live in a frame
// centered on the structure's bounding box, in Å. Fitting and rotation happen
// through a single model matrix rebuilt every frame, so instance data is only
// written once.
type Molecule struct {
	structure *Structure
	bonds     []Bond

	spheres   SphereBatch
	cylinders CylinderBatch

	center      mgl32.Vec3
	scaleFactor float32

	model          mgl32.Mat4
	showSilhouette bool
}

func NewMolecule(s *Structure, cfg SceneConfig) *Molecule {
	m := &Molecule{
		structure:      s,
		center:         s.Center(),
		scaleFactor:    1,
		model:          mgl32.Ident4(),
		showSilhouette: cfg.ShowSilhouette,
	}

	log.Println("Inferring bonds...")
	m.bonds = MergeBonds(s.Bonds, InferBonds(s.Atoms, cfg.BondTolerance))

	log.Println("Building instances...")
	m.buildSpheres(cfg.AtomScale)
	m.buildCylinders(cfg.BondRadius)
	m.fit(cfg.FitRadius)

	log.Printf("Molecule ready: %d atoms, %d bonds, scale %.4f", m.spheres.Len(), len(m.bonds), m.scaleFactor)
	return m
}

func (m *Molecule) buildSpheres(atomScale float32) {
	instances := make([]SphereInstance, len(m.structure.Atoms))
	for i, a := range m.structure.Atoms {
		e := LookupElement(a.Element)
		instances[i] = SphereInstance{
			Position: a.Position.Sub(m.center),
			Color:    e.Color,
			Radius:   e.VdwRadius * atomScale,
		}
	}
	m.spheres.UpdateInstances(instances)
}

// buildCylinders splits every bond at its midpoint so each half takes the
// color of the atom it touches.
func (m *Molecule) buildCylinders(radius float32) {
	instances := make([]CylinderInstance, 0, 2*len(m.bonds))
	for _, b := range m.bonds {
		from, _ := m.spheres.Instance(b.A)
		to, _ := m.spheres.Instance(b.B)
		mid := from.Position.Add(to.Position).Mul(0.5)

		instances = append(instances,
			CylinderInstance{Start: from.Position, End: mid, Color: from.Color, Radius: radius},
			CylinderInstance{Start: mid, End: to.Position, Color: to.Color, Radius: radius},
		)
	}
	m.cylinders.UpdateInstances(instances)
}

// fit picks the scale that puts the farthest atom surface at fitRadius.
func (m *Molecule) fit(fitRadius float32) {
	var extent float32
	for _, s := range m.spheres.Instances() {
		extent = max(extent, s.Position.Len()+s.Radius)
	}
	if extent > 0 {
		m.scaleFactor = fitRadius / extent
	}
}

func (m *Molecule) ResetModelMatrix() {
	m.model = mgl32.Ident4()
}

// Scale and Rotate both apply after whatever the model matrix already holds.
func (m *Molecule) Scale(s mgl32.Mat4) {
	m.model = s.Mul4(m.model)
}

func (m *Molecule) Rotate(r mgl32.Mat4) {
	m.model = r.Mul4(m.model)
}

func (m *Molecule) ModelMatrix() mgl32.Mat4 {
	return m.model
}

func (m *Molecule) ScaleFactor() float32 {
	return m.scaleFactor
}

func (m *Molecule) ToggleSilhouette() {
	m.showSilhouette = !m.showSilhouette
}

func (m *Molecule) ShowSilhouette() bool {
	return m.showSilhouette
}

func (m *Molecule) Spheres() *SphereBatch {
	return &m.spheres
}

func (m *Molecule) Cylinders() *CylinderBatch {
	return &m.cylinders
}

func (m *Molecule) Bonds() []Bond {
	return m.bonds
}

func (m *Molecule) Structure() *Structure {
	return m.structure
}
