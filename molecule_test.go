package molviz

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func waterStructure(t *testing.T) *Structure {
	t.Helper()
	s, err := ReadPDB(strings.NewReader(waterPDB()))
	if err != nil {
		t.Fatalf("ReadPDB: %v", err)
	}
	return s
}

func TestNewMolecule(t *testing.T) {
	cfg := DefaultConfig().Scene
	m := NewMolecule(waterStructure(t), cfg)

	if m.Spheres().Len() != 3 {
		t.Fatalf("got %d spheres, want 3", m.Spheres().Len())
	}
	if len(m.Bonds()) != 2 {
		t.Fatalf("got %d bonds, want 2", len(m.Bonds()))
	}
	if m.Cylinders().Len() != 4 {
		t.Fatalf("got %d half bonds, want 4", m.Cylinders().Len())
	}

	// centered on the bounding box
	var lo, hi mgl32.Vec3
	for i, s := range m.Spheres().Instances() {
		if i == 0 {
			lo, hi = s.Position, s.Position
		}
		for k := 0; k < 3; k++ {
			lo[k] = min(lo[k], s.Position[k])
			hi[k] = max(hi[k], s.Position[k])
		}
	}
	if c := lo.Add(hi).Mul(0.5); !c.ApproxEqualThreshold(mgl32.Vec3{}, 1e-5) {
		t.Errorf("instances centered at %v, want origin", c)
	}

	o, _ := m.Spheres().Instance(0)
	if o.Color != LookupElement("O").Color {
		t.Errorf("oxygen color = %v", o.Color)
	}
	if !almostEqual(o.Radius, LookupElement("O").VdwRadius*cfg.AtomScale) {
		t.Errorf("oxygen radius = %v", o.Radius)
	}
}

func TestMoleculeHalfBonds(t *testing.T) {
	m := NewMolecule(waterStructure(t), DefaultConfig().Scene)

	o, _ := m.Spheres().Instance(0)
	h, _ := m.Spheres().Instance(1)
	first, _ := m.Cylinders().Instance(0)
	second, _ := m.Cylinders().Instance(1)

	mid := o.Position.Add(h.Position).Mul(0.5)
	if first.Start != o.Position || !first.End.ApproxEqual(mid) {
		t.Errorf("first half runs %v -> %v, want %v -> %v", first.Start, first.End, o.Position, mid)
	}
	if !second.Start.ApproxEqual(mid) || second.End != h.Position {
		t.Errorf("second half runs %v -> %v, want %v -> %v", second.Start, second.End, mid, h.Position)
	}
	if first.Color != o.Color || second.Color != h.Color {
		t.Error("half bonds should take the color of the atom they touch")
	}
}

func TestMoleculeFitsRadius(t *testing.T) {
	cfg := DefaultConfig().Scene
	m := NewMolecule(waterStructure(t), cfg)

	var extent float32
	for _, s := range m.Spheres().Instances() {
		extent = max(extent, s.Position.Mul(m.ScaleFactor()).Len()+s.Radius*m.ScaleFactor())
	}
	if !almostEqual(extent, cfg.FitRadius) {
		t.Errorf("fitted extent = %v, want %v", extent, cfg.FitRadius)
	}
}

func TestMoleculeEmptyStructure(t *testing.T) {
	m := NewMolecule(&Structure{}, DefaultConfig().Scene)

	if m.Spheres().Len() != 0 || m.Cylinders().Len() != 0 {
		t.Error("empty structure produced instances")
	}
	if m.ScaleFactor() != 1 {
		t.Errorf("ScaleFactor = %v, want 1", m.ScaleFactor())
	}
}

func TestMoleculeModelMatrix(t *testing.T) {
	m := NewMolecule(waterStructure(t), DefaultConfig().Scene)
	before := append([]SphereInstance(nil), m.Spheres().Instances()...)

	rot := mgl32.HomogRotate3DY(0.5)
	m.ResetModelMatrix()
	m.Scale(mgl32.Scale3D(2, 2, 2))
	m.Rotate(rot)

	want := rot.Mul4(mgl32.Scale3D(2, 2, 2))
	if !matAlmostEqual(m.ModelMatrix(), want) {
		t.Errorf("ModelMatrix = %v, want %v", m.ModelMatrix(), want)
	}

	m.ResetModelMatrix()
	if m.ModelMatrix() != mgl32.Ident4() {
		t.Errorf("ModelMatrix after reset = %v", m.ModelMatrix())
	}

	for i, s := range m.Spheres().Instances() {
		if s != before[i] {
			t.Fatalf("instance %d rewritten by model transforms", i)
		}
	}
}

func TestMoleculeToggleSilhouette(t *testing.T) {
	m := NewMolecule(waterStructure(t), DefaultConfig().Scene)

	if m.ShowSilhouette() {
		t.Fatal("silhouette on by default")
	}
	m.ToggleSilhouette()
	if !m.ShowSilhouette() {
		t.Error("toggle did not enable the silhouette")
	}
	m.ToggleSilhouette()
	if m.ShowSilhouette() {
		t.Error("second toggle did not disable the silhouette")
	}
}

func TestBatch(t *testing.T) {
	var b SphereBatch
	src := []SphereInstance{{Radius: 1}, {Radius: 2}}
	b.UpdateInstances(src)
	src[0].Radius = 9

	if b.Len() != 2 {
		t.Fatalf("Len = %d, want 2", b.Len())
	}
	if got, _ := b.Instance(0); got.Radius != 1 {
		t.Error("UpdateInstances did not copy its input")
	}
	if _, ok := b.Instance(2); ok {
		t.Error("Instance(2) reported ok")
	}
	if _, ok := b.Instance(-1); ok {
		t.Error("Instance(-1) reported ok")
	}
	if !b.SetInstance(1, SphereInstance{Radius: 5}) {
		t.Error("SetInstance(1) failed")
	}
	if got, _ := b.Instance(1); got.Radius != 5 {
		t.Errorf("instance 1 radius = %v, want 5", got.Radius)
	}
	if b.SetInstance(3, SphereInstance{}) {
		t.Error("SetInstance out of range reported ok")
	}
}

func TestQuad(t *testing.T) {
	if got := QuadIndices(); got != [6]uint16{0, 1, 2, 1, 3, 2} {
		t.Errorf("QuadIndices = %v", got)
	}
	for _, v := range QuadVertices() {
		if v.Pos.Z() != 0 || v.UV.X() != v.Pos.X()+0.5 || v.UV.Y() != v.Pos.Y()+0.5 {
			t.Errorf("vertex %+v does not match its uv", v)
		}
	}
}
