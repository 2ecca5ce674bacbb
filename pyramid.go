// Package pyramid generates self-similar, gap-free space-filling curves on a
// square lattice, and stacks per-layer copies of them into a continuous
// toolpath that approximates a pyramid.
package pyramid

import (
	"slices"

	"seehuhn.de/go/geom/vec"
)

// DefaultBaseLayers is the number of printed slices in the smallest pyramid.
const DefaultBaseLayers = 6

// Point is a lattice point in quarter-grid-step units.
type Point struct {
	X, Y int
}

// Layer is one printed slice of a pyramid.
type Layer struct {
	// Points is the closed toolpath loop for this slice, in the same
	// physical units as the generator's grid step.
	Points []vec.Vec2

	// Entry is the index of the canonical seam point. Printing a layer
	// starts and ends here, so that consecutive layers join on the
	// pyramid's north face.
	Entry int
}

// Pyramid is the layer stack for one pyramid level.
type Pyramid struct {
	// Level is the recursion level the stack was generated for.
	Level int

	// SideLength is the edge length of the bounding square,
	// 2^Level grid steps in physical units.
	SideLength float64

	// Layers holds the slices from base (index 0) to apex.
	Layers []Layer
}

// Generator builds lattice curves and pyramid layer stacks. Results are
// memoized level by level: each memo table grows monotonically from the
// lowest level to the highest level ever requested and existing entries
// are never recomputed. Create one instance and reuse it for multiple
// requests.
//
// A Generator is not safe for concurrent use.
type Generator struct {
	gridStep   float64
	baseLayers int

	// Memo tables. curves[n] is the level-n lattice curve; levels[e-1]
	// holds pyramid level e (level 0 is reserved and has no geometry).
	curves [][]Point
	levels []pyramidLevel
}

// pyramidLevel is one entry of the pyramid memo table.
type pyramidLevel struct {
	layers  [][]vec.Vec2
	entries []int
}

// NewGenerator returns a Generator with empty memo tables. The gridStep is
// the physical length of one lattice step; baseLayers is the number of
// slices in the smallest pyramid (usually DefaultBaseLayers).
func NewGenerator(gridStep float64, baseLayers int) *Generator {
	return &Generator{
		gridStep:   gridStep,
		baseLayers: baseLayers,
	}
}

// GridStep returns the physical length of one lattice step.
func (g *Generator) GridStep() float64 {
	return g.gridStep
}

// Curve returns the level-n lattice curve, in quarter-grid-step units.
//
// Level -1 is the single point (0,0) and levels below -1 are empty; both
// are defined degenerate results, not errors. Levels above MaxLevel
// return ErrCapacity. The returned slice is a copy; callers may modify it
// freely.
func (g *Generator) Curve(n int) ([]Point, error) {
	switch {
	case n < -1:
		return nil, nil
	case n == -1:
		return []Point{{0, 0}}, nil
	case n > MaxLevel:
		return nil, ErrCapacity
	}
	g.extendCurves(n)
	return slices.Clone(g.curves[n]), nil
}

// Pyramid returns the layer stack for pyramid level e. A level-e pyramid
// has baseLayers·2^(e-1) layers and a bounding square of 2^e grid steps.
//
// Levels below 1 return an empty stack with side length 0 (level 0 is
// reserved). Levels above MaxLevel return ErrCapacity. The returned
// layers are copies; callers may modify them freely.
func (g *Generator) Pyramid(e int) (*Pyramid, error) {
	if e < 1 {
		return &Pyramid{Level: e}, nil
	}
	if e > MaxLevel {
		return nil, ErrCapacity
	}

	// The curve table must cover levels up to e before any pyramid level
	// is assembled, and pyramid levels are filled strictly bottom-up.
	g.extendCurves(e)
	g.extendLevels(e)

	lvl := &g.levels[e-1]
	out := &Pyramid{
		Level:      e,
		SideLength: float64(int(1)<<e) * g.gridStep,
		Layers:     make([]Layer, len(lvl.layers)),
	}
	for i := range lvl.layers {
		out.Layers[i] = Layer{
			Points: slices.Clone(lvl.layers[i]),
			Entry:  lvl.entries[i],
		}
	}
	return out, nil
}
