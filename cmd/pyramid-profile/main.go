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

// Command pyramid-profile charts per-layer toolpath length and the
// cumulative estimated print time for one pyramid level.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"seehuhn.de/go/pyramid"
	"seehuhn.de/go/pyramid/gcode"
)

func main() {
	level := flag.Int("level", 3, "pyramid level (>= 1)")
	gridStep := flag.Float64("grid", 40, "lattice step length in mm")
	baseLayers := flag.Int("base-layers", pyramid.DefaultBaseLayers,
		"layers in the smallest pyramid")
	outDir := flag.String("dir", ".", "output directory")
	speed := flag.Float64("speed", 40, "print speed in mm/s")
	flag.Parse()

	gen := pyramid.NewGenerator(*gridStep, *baseLayers)
	p, err := gen.Pyramid(*level)
	if err != nil {
		panic(err)
	}

	lengths := make(plotter.XYs, 0, len(p.Layers))
	cumTime := make(plotter.XYs, 0, len(p.Layers))
	var total float64
	for i, l := range p.Layers {
		d := gcode.LayerLength(l)
		total += d / *speed
		lengths = append(lengths, plotter.XY{X: float64(i), Y: d})
		cumTime = append(cumTime, plotter.XY{X: float64(i), Y: total / 60})
	}

	if err := savePlot(
		filepath.Join(*outDir, fmt.Sprintf("lengths_level%d.png", *level)),
		fmt.Sprintf("Toolpath length per layer (level %d)", *level),
		"layer", "length [mm]", lengths,
	); err != nil {
		panic(err)
	}
	if err := savePlot(
		filepath.Join(*outDir, fmt.Sprintf("time_level%d.png", *level)),
		fmt.Sprintf("Cumulative print time (level %d)", *level),
		"layer", "time [min]", cumTime,
	); err != nil {
		panic(err)
	}
}

func savePlot(path, title, xLabel, yLabel string, pts plotter.XYs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	pl := plot.New()
	pl.Title.Text = title
	pl.X.Label.Text = xLabel
	pl.Y.Label.Text = yLabel

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.Width = vg.Points(1)
	pl.Add(line)

	return pl.Save(8*vg.Inch, 4*vg.Inch, path)
}
