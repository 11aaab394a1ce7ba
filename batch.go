package molviz

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// SphereInstance is one atom impostor.
type SphereInstance struct {
	Position mgl32.Vec3
	Color    color.RGBA
	Radius   float32
}

// CylinderInstance is one half bond impostor running from Start to End.
type CylinderInstance struct {
	Start  mgl32.Vec3
	End    mgl32.Vec3
	Color  color.RGBA
	Radius float32
}

func (c CylinderInstance) Midpoint() mgl32.Vec3 {
	return c.Start.Add(c.End).Mul(0.5)
}

// Batch holds the per-instance data drawn with a single billboard quad.
type Batch[T any] struct {
	instances []T
}

type SphereBatch = Batch[SphereInstance]

type CylinderBatch = Batch[CylinderInstance]

// UpdateInstances replaces the contents of the batch with a copy of instances.
func (b *Batch[T]) UpdateInstances(instances []T) {
	b.instances = append(b.instances[:0], instances...)
}

func (b *Batch[T]) Instance(i int) (T, bool) {
	if i < 0 || i >= len(b.instances) {
		var zero T
		return zero, false
	}
	return b.instances[i], true
}

// SetInstance reports false when i is out of range.
func (b *Batch[T]) SetInstance(i int, v T) bool {
	if i < 0 || i >= len(b.instances) {
		return false
	}
	b.instances[i] = v
	return true
}

func (b *Batch[T]) Len() int {
	return len(b.instances)
}

// Instances exposes the backing slice; callers must not keep it across
// UpdateInstances.
func (b *Batch[T]) Instances() []T {
	return b.instances
}
