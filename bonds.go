package molviz

import (
	"math"
	"sort"
)

const (
	DefaultBondTolerance = 0.45 // Å

	// closer than this is overlapping coordinates, not a bond
	minBondDistance = 0.4
)

type gridCell [3]int

// atomGrid buckets atom indices by position so neighbour lookups only visit
// the 27 cells around an atom.
type atomGrid struct {
	cellSize float32
	cells    map[gridCell][]int
}

func newAtomGrid(atoms []Atom, cellSize float32) *atomGrid {
	g := &atomGrid{
		cellSize: cellSize,
		cells:    make(map[gridCell][]int),
	}
	for i, a := range atoms {
		key := g.cellOf(a)
		g.cells[key] = append(g.cells[key], i)
	}
	return g
}

func (g *atomGrid) cellOf(a Atom) gridCell {
	return gridCell{
		int(math.Floor(float64(a.Position.X() / g.cellSize))),
		int(math.Floor(float64(a.Position.Y() / g.cellSize))),
		int(math.Floor(float64(a.Position.Z() / g.cellSize))),
	}
}

func (g *atomGrid) neighbours(c gridCell, fn func(j int)) {
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				for _, j := range g.cells[gridCell{c[0] + dx, c[1] + dy, c[2] + dz}] {
					fn(j)
				}
			}
		}
	}
}

// InferBonds connects every pair of atoms closer than the sum of their
// covalent radii plus tolerance. Pairs closer than minBondDistance are left
// alone. The result is sorted and free of duplicates.
func InferBonds(atoms []Atom, tolerance float32) []Bond {
	if len(atoms) < 2 {
		return nil
	}

	radii := make([]float32, len(atoms))
	var maxRadius float32
	for i, a := range atoms {
		radii[i] = LookupElement(a.Element).CovalentRadius
		maxRadius = max(maxRadius, radii[i])
	}

	grid := newAtomGrid(atoms, 2*maxRadius+tolerance)

	var bonds []Bond
	for i, a := range atoms {
		grid.neighbours(grid.cellOf(a), func(j int) {
			if j <= i {
				return
			}
			limit := radii[i] + radii[j] + tolerance
			d := a.Position.Sub(atoms[j].Position).Len()
			if d < minBondDistance || d > limit {
				return
			}
			bonds = append(bonds, Bond{A: i, B: j})
		})
	}

	sortBonds(bonds)
	return bonds
}

// MergeBonds returns the union of the given bond lists with each pair once.
func MergeBonds(lists ...[]Bond) []Bond {
	seen := make(map[Bond]bool)
	var merged []Bond
	for _, list := range lists {
		for _, b := range list {
			b = orderedBond(b.A, b.B)
			if b.A == b.B || seen[b] {
				continue
			}
			seen[b] = true
			merged = append(merged, b)
		}
	}
	sortBonds(merged)
	return merged
}

func sortBonds(bonds []Bond) {
	sort.Slice(bonds, func(i, j int) bool {
		if bonds[i].A != bonds[j].A {
			return bonds[i].A < bonds[j].A
		}
		return bonds[i].B < bonds[j].B
	})
}
