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

package gcode

import (
	"time"

	"seehuhn.de/go/pyramid"
)

// Estimate summarizes the moves a Write call would produce.
type Estimate struct {
	// PrintDistance is the total length of extruding moves, in mm.
	PrintDistance float64

	// TravelDistance is the total length of non-extruding moves
	// between layers, in mm.
	TravelDistance float64

	// Filament is the length of filament consumed, in mm.
	Filament float64

	// PrintTime and TravelTime are the durations of the corresponding
	// moves at the configured speeds.
	PrintTime  time.Duration
	TravelTime time.Duration
}

// Total returns the estimated duration of the whole print.
func (e Estimate) Total() time.Duration {
	return e.PrintTime + e.TravelTime
}

// Estimate computes print statistics for p without emitting any output.
// It traverses the layers in the same order as Write.
func (s Settings) Estimate(p *pyramid.Pyramid) Estimate {
	var est Estimate

	havePos := false
	pos := s.Center
	for i, layer := range p.Layers {
		loop := printOrder(layer)
		if len(loop) == 0 {
			continue
		}

		h := s.LayerHeight
		if i == 0 {
			h = s.FirstLayerHeight
		}

		start := loop[0].Add(s.Center)
		if havePos {
			est.TravelDistance += start.Sub(pos).Length()
		}
		havePos = true

		var perim float64
		for j := 1; j < len(loop); j++ {
			perim += loop[j].Sub(loop[j-1]).Length()
		}
		est.PrintDistance += perim
		est.Filament += perim * s.filamentPerMM(h)
		pos = loop[0].Add(s.Center)
	}

	est.PrintTime = time.Duration(est.PrintDistance / s.PrintSpeed * float64(time.Second))
	est.TravelTime = time.Duration(est.TravelDistance / s.TravelSpeed * float64(time.Second))
	return est
}
