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

import "seehuhn.de/go/geom/vec"

// Exact quarter-turn cosines and sines, indexed by quarter turns mod 4.
// Integer tables avoid any floating point error in the lattice case.
var (
	quarterCos = [4]int{1, 0, -1, 0}
	quarterSin = [4]int{0, 1, 0, -1}
)

// cycleFrom returns a copy of pts reordered so that the element at start
// becomes element 0, with cyclic order preserved. start is taken modulo
// len(pts), so the function is total for any index.
func cycleFrom[T any](pts []T, start int) []T {
	n := len(pts)
	if n == 0 {
		return nil
	}
	start %= n
	if start < 0 {
		start += n
	}
	out := make([]T, 0, n)
	out = append(out, pts[start:]...)
	return append(out, pts[:start]...)
}

// rotateQuarter rotates p counterclockwise by k quarter turns about the
// origin. k may be any integer; only k mod 4 matters.
func rotateQuarter(p Point, k int) Point {
	c, s := quarterCos[k&3], quarterSin[k&3]
	return Point{X: p.X*c - p.Y*s, Y: p.X*s + p.Y*c}
}

// rotateQuarterVec is rotateQuarter for physical points.
func rotateQuarterVec(v vec.Vec2, k int) vec.Vec2 {
	c, s := float64(quarterCos[k&3]), float64(quarterSin[k&3])
	return vec.Vec2{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c}
}

// appendPlaced appends src to dst, each point rotated by k quarter turns
// and then translated by (dx, dy). src is never modified.
func appendPlaced(dst, src []Point, k, dx, dy int) []Point {
	for _, p := range src {
		q := rotateQuarter(p, k)
		dst = append(dst, Point{X: q.X + dx, Y: q.Y + dy})
	}
	return dst
}

// appendPlacedVec is appendPlaced for physical points.
func appendPlacedVec(dst, src []vec.Vec2, k int, dx, dy float64) []vec.Vec2 {
	for _, v := range src {
		q := rotateQuarterVec(v, k)
		dst = append(dst, vec.Vec2{X: q.X + dx, Y: q.Y + dy})
	}
	return dst
}

// entryIndex is the canonical seam position for a closed loop of n
// points: halfway around, advanced by half of a quarter (rounded up).
// This lands on the north face, inside the upper-right quadrant copy.
func entryIndex(n int) int {
	return n/2 + (n/4+1)/2
}
