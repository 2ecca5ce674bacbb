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

import "errors"

// MaxLevel is the highest supported recursion level. Curve lengths follow
// the recurrence len(n) = 4·(len(n-1)+1), which exceeds the range of a
// 64-bit int at level 31. Practical memory limits bind much earlier, but
// this is the arithmetic bound.
const MaxLevel = 30

// ErrCapacity is returned when a requested level exceeds MaxLevel.
var ErrCapacity = errors.New("pyramid: level exceeds supported capacity")

// baseCurve is the level-0 curve: the west, south, east and north vertex
// of the unit diamond, in quarter-grid-step units.
func baseCurve() []Point {
	return []Point{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}
}

// extendCurves grows the curve table one level at a time up to level n.
// Levels cannot be skipped: each level consumes the reanchored previous
// level. Existing entries are never recomputed.
func (g *Generator) extendCurves(n int) {
	for level := len(g.curves); level <= n; level++ {
		if level == 0 {
			g.curves = append(g.curves, baseCurve())
			continue
		}

		// Reanchor the previous level so that its first point is its
		// canonical entry; the four quadrant copies then join up.
		prev := g.curves[level-1]
		small := cycleFrom(prev, entryIndex(len(prev)))
		side := 1 << level

		// One connector vertex before each quadrant copy. The copies
		// visit the quadrants in cyclic order: lower-left unrotated,
		// then one extra quarter turn per quadrant.
		out := make([]Point, 0, 4*(len(small)+1))
		out = append(out, Point{-2, 0})
		out = appendPlaced(out, small, 0, -side, -side)
		out = append(out, Point{0, -2})
		out = appendPlaced(out, small, 1, side, -side)
		out = append(out, Point{2, 0})
		out = appendPlaced(out, small, 2, side, side)
		out = append(out, Point{0, 2})
		out = appendPlaced(out, small, 3, -side, side)

		g.curves = append(g.curves, out)
	}
}
