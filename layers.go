// seehuhn.de/go/pyramid - fractal pyramid toolpath generation
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pyramid

import (
	"slices"

	"seehuhn.de/go/geom/vec"
)

// extendLevels grows the pyramid table bottom-up to level e. The curve
// table must already cover levels up to e.
func (g *Generator) extendLevels(e int) {
	for level := len(g.levels) + 1; level <= e; level++ {
		if level == 1 {
			g.levels = append(g.levels, g.buildBaseLevel())
			continue
		}
		g.levels = append(g.levels, g.stitchLevel(level))
	}
}

// buildBaseLevel constructs pyramid level 1: baseLayers slices with a
// linear taper from base to apex, drawn from progressively simpler
// curves toward the top.
func (g *Generator) buildBaseLevel() pyramidLevel {
	L := g.baseLayers
	lvl := pyramidLevel{
		layers:  make([][]vec.Vec2, 0, L),
		entries: make([]int, 0, L),
	}
	for i := 0; i < L; i++ {
		// Partition the height into thirds. The clamp keeps the top
		// third on the level-0 diamond.
		curveIndex := 3*(L-1-i)/L - 1
		if curveIndex < 0 {
			curveIndex = 0
		}
		src := g.curves[curveIndex]

		// Level 0 is in coarser units than level 1; doubling makes the
		// two overlay consistently.
		mult := 1
		if curveIndex == 0 {
			mult = 2
		}

		// The 0.25 converts quarter-step lattice units to whole steps.
		scale := float64(L-i) / float64(L)
		s := 0.25 * scale * g.gridStep * float64(mult)
		pts := make([]vec.Vec2, len(src))
		for j, p := range src {
			pts[j] = vec.Vec2{X: float64(p.X) * s, Y: float64(p.Y) * s}
		}

		lvl.layers = append(lvl.layers, pts)
		lvl.entries = append(lvl.entries, entryIndex(len(src)))
	}
	return lvl
}

// stitchLevel builds pyramid level e (e >= 2) from level e-1. Each
// bottom-half layer interleaves four rotated copies of its reanchored
// smaller-pyramid layer with segments of the complementary upside-down
// layer; the top half is the previous level unchanged.
func (g *Generator) stitchLevel(e int) pyramidLevel {
	prev := &g.levels[e-2]
	half := len(prev.layers)
	lvl := pyramidLevel{
		layers:  make([][]vec.Vec2, 0, 2*half),
		entries: make([]int, 0, 2*half),
	}
	off := float64(int(1)<<e) * 0.25 * g.gridStep

	for i := 0; i < half; i++ {
		// The inverted layer supplies the seams between the quadrant
		// copies. It is used unshifted: its own start point already
		// sits on the seam.
		var inv []vec.Vec2
		if i == 0 {
			// There is no layer below the base; a plain half-step
			// diamond closes the seams instead.
			h := 0.5 * g.gridStep
			inv = []vec.Vec2{{X: -h}, {Y: -h}, {X: h}, {Y: h}}
		} else {
			inv = prev.layers[half-1-i]
		}
		base := cycleFrom(prev.layers[i], prev.entries[i])

		n := len(inv)
		eighth, quarter := n/8, n/4

		// Fixed cyclic order: an eighth of the inverted layer, then the
		// four quadrant copies separated by quarters, then the
		// remaining eighth.
		out := make([]vec.Vec2, 0, n+4*len(base))
		out = append(out, inv[:eighth]...)
		out = appendPlacedVec(out, base, 0, -off, -off)
		out = append(out, inv[eighth:eighth+quarter]...)
		out = appendPlacedVec(out, base, 1, off, -off)
		out = append(out, inv[eighth+quarter:eighth+2*quarter]...)

		// The seam point is the midpoint of the upper-right copy: entry
		// is always through the north face.
		entry := len(out) + len(base)/2

		out = appendPlacedVec(out, base, 2, off, off)
		out = append(out, inv[eighth+2*quarter:eighth+3*quarter]...)
		out = appendPlacedVec(out, base, 3, -off, off)
		out = append(out, inv[eighth+3*quarter:]...)

		lvl.layers = append(lvl.layers, out)
		lvl.entries = append(lvl.entries, entry)
	}

	// The upper half of any level is geometrically the whole previous
	// level.
	for i := 0; i < half; i++ {
		lvl.layers = append(lvl.layers, slices.Clone(prev.layers[i]))
		lvl.entries = append(lvl.entries, prev.entries[i])
	}
	return lvl
}
