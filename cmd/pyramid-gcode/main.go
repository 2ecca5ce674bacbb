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

// Command pyramid-gcode writes the G-code program for one pyramid level.
package main

import (
	"flag"
	"os"

	"go.uber.org/zap"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pyramid"
	"seehuhn.de/go/pyramid/gcode"
)

func main() {
	level := flag.Int("level", 3, "pyramid level (>= 1)")
	gridStep := flag.Float64("grid", 40, "lattice step length in mm")
	baseLayers := flag.Int("base-layers", pyramid.DefaultBaseLayers,
		"layers in the smallest pyramid")
	out := flag.String("o", "pyramid.gcode", "output file")
	layerHeight := flag.Float64("layer-height", 0.2, "layer height in mm")
	printSpeed := flag.Float64("speed", 40, "print speed in mm/s")
	travelSpeed := flag.Float64("travel", 120, "travel speed in mm/s")
	centerX := flag.Float64("center-x", 110, "bed X of the pyramid axis in mm")
	centerY := flag.Float64("center-y", 110, "bed Y of the pyramid axis in mm")
	flag.Parse()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	gen := pyramid.NewGenerator(*gridStep, *baseLayers)
	p, err := gen.Pyramid(*level)
	if err != nil {
		logger.Fatal("generating pyramid", zap.Int("level", *level), zap.Error(err))
	}

	settings := gcode.DefaultSettings()
	settings.LayerHeight = *layerHeight
	settings.PrintSpeed = *printSpeed
	settings.TravelSpeed = *travelSpeed
	settings.Center = vec.Vec2{X: *centerX, Y: *centerY}

	f, err := os.Create(*out)
	if err != nil {
		logger.Fatal("creating output file", zap.Error(err))
	}
	err = gcode.Write(f, p, settings)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		logger.Fatal("writing gcode", zap.String("file", *out), zap.Error(err))
	}

	est := settings.Estimate(p)
	logger.Info("wrote toolpath",
		zap.String("file", *out),
		zap.Int("layers", len(p.Layers)),
		zap.Float64("side_mm", p.SideLength),
		zap.Float64("path_mm", est.PrintDistance),
		zap.Float64("filament_mm", est.Filament),
		zap.Duration("print_time", est.Total()),
	)
}
