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

// Package gcode turns pyramid layer stacks into RepRap-flavour G-code.
//
// Each layer is printed as a single closed loop, entered at its canonical
// seam point so that consecutive layers join on the pyramid's north face.
package gcode

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pyramid"
)

// Settings control how a layer stack is converted into machine moves.
// All lengths are in millimeters, all speeds in millimeters per second.
type Settings struct {
	// LayerHeight is the Z step between printed slices.
	LayerHeight float64

	// FirstLayerHeight is the Z position of the first slice.
	FirstLayerHeight float64

	// ExtrusionWidth is the width of the extruded track.
	ExtrusionWidth float64

	// FilamentDiameter is the diameter of the raw filament.
	FilamentDiameter float64

	// ExtrusionFactor scales the computed extrusion amounts (1 = 100%).
	ExtrusionFactor float64

	// PrintSpeed is the feed rate for extruding moves.
	PrintSpeed float64

	// TravelSpeed is the feed rate for non-extruding moves.
	TravelSpeed float64

	// Center is the bed position of the pyramid's vertical axis.
	// Generated coordinates are centred on the origin and translated
	// here on output.
	Center vec.Vec2
}

// DefaultSettings returns settings for a 0.4mm nozzle and 1.75mm
// filament.
func DefaultSettings() Settings {
	return Settings{
		LayerHeight:      0.2,
		FirstLayerHeight: 0.25,
		ExtrusionWidth:   0.45,
		FilamentDiameter: 1.75,
		ExtrusionFactor:  1.0,
		PrintSpeed:       40,
		TravelSpeed:      120,
		Center:           vec.Vec2{X: 110, Y: 110},
	}
}

// Validate reports the first invalid field, or nil.
func (s Settings) Validate() error {
	checks := []struct {
		name string
		val  float64
	}{
		{"LayerHeight", s.LayerHeight},
		{"FirstLayerHeight", s.FirstLayerHeight},
		{"ExtrusionWidth", s.ExtrusionWidth},
		{"FilamentDiameter", s.FilamentDiameter},
		{"ExtrusionFactor", s.ExtrusionFactor},
		{"PrintSpeed", s.PrintSpeed},
		{"TravelSpeed", s.TravelSpeed},
	}
	for _, c := range checks {
		if c.val <= 0 {
			return fmt.Errorf("gcode: %s must be positive", c.name)
		}
	}
	return nil
}

// filamentPerMM returns millimeters of filament per millimeter of path
// for a slice of the given height.
func (s Settings) filamentPerMM(layerHeight float64) float64 {
	filamentArea := math.Pi * s.FilamentDiameter * s.FilamentDiameter / 4
	return s.ExtrusionFactor * layerHeight * s.ExtrusionWidth / filamentArea
}

// layerZ returns the Z position of slice i.
func (s Settings) layerZ(i int) float64 {
	return s.FirstLayerHeight + float64(i)*s.LayerHeight
}

// printOrder returns the points of a layer in print order: starting at
// the entry index, once around the loop, and back to the entry point.
func printOrder(l pyramid.Layer) []vec.Vec2 {
	n := len(l.Points)
	if n == 0 {
		return nil
	}
	out := make([]vec.Vec2, 0, n+1)
	out = append(out, l.Points[l.Entry:]...)
	out = append(out, l.Points[:l.Entry]...)
	return append(out, l.Points[l.Entry])
}

// LayerLength returns the toolpath length of a layer, including the
// closing segment back to the entry point.
func LayerLength(l pyramid.Layer) float64 {
	loop := printOrder(l)
	var total float64
	for i := 1; i < len(loop); i++ {
		total += loop[i].Sub(loop[i-1]).Length()
	}
	return total
}

// Write emits the complete G-code program for p. Output uses absolute XY
// positioning and relative extrusion, with an M73 progress mark after
// each layer.
func Write(w io.Writer, p *pyramid.Pyramid, s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "; seehuhn.de/go/pyramid level %d, %d layers, side %.1fmm\n",
		p.Level, len(p.Layers), p.SideLength)
	fmt.Fprintln(bw, "G21 ; millimeter units")
	fmt.Fprintln(bw, "G90 ; absolute positioning")
	fmt.Fprintln(bw, "M83 ; relative extrusion")
	fmt.Fprintln(bw, "M73 P0")

	for i, layer := range p.Layers {
		loop := printOrder(layer)
		if len(loop) == 0 {
			continue
		}

		h := s.LayerHeight
		if i == 0 {
			h = s.FirstLayerHeight
		}
		ePerMM := s.filamentPerMM(h)
		z := s.layerZ(i)

		start := loop[0].Add(s.Center)
		fmt.Fprintf(bw, ";LAYER:%d\n", i)
		fmt.Fprintf(bw, "G0 X%.4f Y%.4f Z%.4f F%.0f\n",
			start.X, start.Y, z, s.TravelSpeed*60)
		fmt.Fprintf(bw, "G1 F%.0f\n", s.PrintSpeed*60)

		prev := loop[0]
		for _, q := range loop[1:] {
			d := q.Sub(prev).Length()
			pos := q.Add(s.Center)
			fmt.Fprintf(bw, "G1 X%.4f Y%.4f E%.5f\n", pos.X, pos.Y, d*ePerMM)
			prev = q
		}

		fmt.Fprintf(bw, "M73 P%d\n", (i+1)*100/len(p.Layers))
	}

	fmt.Fprintln(bw, "M107 ; fan off")
	fmt.Fprintln(bw, "M104 S0 ; hotend off")
	fmt.Fprintln(bw, "M140 S0 ; bed off")
	fmt.Fprintln(bw, "M84 ; motors off")
	return bw.Flush()
}
