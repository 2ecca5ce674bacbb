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
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurveBase(t *testing.T) {
	g := NewGenerator(1, DefaultBaseLayers)
	c, err := g.Curve(0)
	require.NoError(t, err)
	assert.Equal(t, []Point{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}, c)
}

func TestCurveDegenerate(t *testing.T) {
	g := NewGenerator(1, DefaultBaseLayers)

	c, err := g.Curve(-1)
	require.NoError(t, err)
	assert.Equal(t, []Point{{0, 0}}, c)

	c, err = g.Curve(-2)
	require.NoError(t, err)
	assert.Empty(t, c)
}

// TestCurveLevel1 pins down the exact level-1 curve: the reanchored,
// rotated level-0 diamonds in the four quadrants, joined by the four
// connector vertices.
func TestCurveLevel1(t *testing.T) {
	g := NewGenerator(1, DefaultBaseLayers)
	c, err := g.Curve(1)
	require.NoError(t, err)

	want := []Point{
		{-2, 0},
		{-2, -1}, {-3, -2}, {-2, -3}, {-1, -2},
		{0, -2},
		{1, -2}, {2, -3}, {3, -2}, {2, -1},
		{2, 0},
		{2, 1}, {3, 2}, {2, 3}, {1, 2},
		{0, 2},
		{-1, 2}, {-2, 3}, {-3, 2}, {-2, 1},
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("level-1 curve mismatch (-want +got):\n%s", diff)
	}
}

// TestCurveLengthRecurrence checks len(n) = 4·(len(n-1)+1) for levels
// 1 through 8, with len(0) = 4.
func TestCurveLengthRecurrence(t *testing.T) {
	g := NewGenerator(1, DefaultBaseLayers)
	prevLen := 0
	for n := 0; n <= 8; n++ {
		c, err := g.Curve(n)
		require.NoError(t, err)
		if n == 0 {
			require.Len(t, c, 4)
		} else {
			require.Len(t, c, 4*(prevLen+1), "level %d", n)
		}
		prevLen = len(c)
	}
}

// TestCurveGapFree checks the path guarantees: consecutive points
// (including the wrap-around from last to first) are lattice neighbours,
// and no point is visited twice.
func TestCurveGapFree(t *testing.T) {
	g := NewGenerator(1, DefaultBaseLayers)
	for n := 1; n <= 6; n++ {
		t.Run(fmt.Sprintf("level%d", n), func(t *testing.T) {
			c, err := g.Curve(n)
			require.NoError(t, err)

			seen := make(map[Point]bool, len(c))
			for i, p := range c {
				if seen[p] {
					t.Fatalf("point %v visited twice (index %d)", p, i)
				}
				seen[p] = true

				q := c[(i+1)%len(c)]
				dx, dy := q.X-p.X, q.Y-p.Y
				if dx < -1 || dx > 1 || dy < -1 || dy > 1 {
					t.Fatalf("gap between %v and %v", p, q)
				}
			}
		})
	}
}

func TestCurveCapacity(t *testing.T) {
	g := NewGenerator(1, DefaultBaseLayers)

	_, err := g.Curve(MaxLevel + 1)
	assert.ErrorIs(t, err, ErrCapacity)

	_, err = g.Pyramid(MaxLevel + 1)
	assert.ErrorIs(t, err, ErrCapacity)
}

// TestCurveCopyOut checks that callers receive copies, so mutating a
// result cannot corrupt the memo table.
func TestCurveCopyOut(t *testing.T) {
	g := NewGenerator(1, DefaultBaseLayers)

	first, err := g.Curve(2)
	require.NoError(t, err)
	first[0] = Point{99, 99}

	second, err := g.Curve(2)
	require.NoError(t, err)
	assert.Equal(t, Point{-2, 0}, second[0])
}

func BenchmarkCurve(b *testing.B) {
	for _, level := range []int{4, 6, 8} {
		b.Run(fmt.Sprintf("level%d", level), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				g := NewGenerator(1, DefaultBaseLayers)
				if _, err := g.Curve(level); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
