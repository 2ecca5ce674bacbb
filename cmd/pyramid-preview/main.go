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

// Command pyramid-preview renders the layers of a pyramid level to PNG
// silhouettes and PDF line drawings, one file per layer.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/pyramid"
)

func main() {
	level := flag.Int("level", 3, "pyramid level (>= 1)")
	gridStep := flag.Float64("grid", 40, "lattice step length in mm")
	baseLayers := flag.Int("base-layers", pyramid.DefaultBaseLayers,
		"layers in the smallest pyramid")
	outDir := flag.String("dir", "preview", "output directory")
	size := flag.Int("size", 512, "PNG canvas size in pixels")
	writePNG := flag.Bool("png", true, "write PNG silhouettes")
	writePDF := flag.Bool("pdf", false, "write PDF line drawings")
	flag.Parse()

	gen := pyramid.NewGenerator(*gridStep, *baseLayers)
	p, err := gen.Pyramid(*level)
	if err != nil {
		panic(err)
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		panic(err)
	}

	// One shared view box keeps all layers to the same scale.
	box := boundsOf(p)

	for i, layer := range p.Layers {
		name := fmt.Sprintf("layer_%03d", i)
		if *writePNG {
			path := filepath.Join(*outDir, name+".png")
			if err := renderPNG(path, layer, box, *size); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
		if *writePDF {
			path := filepath.Join(*outDir, name+".pdf")
			if err := renderPDF(path, layer, box); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

// viewBox is a square region of the physical plane, centred on the
// pyramid axis.
type viewBox struct {
	min, max float64
}

// boundsOf returns the smallest centred square covering every layer,
// with a 5% margin.
func boundsOf(p *pyramid.Pyramid) viewBox {
	var r float64
	for _, l := range p.Layers {
		for _, q := range l.Points {
			r = max(r, max(abs(q.X), abs(q.Y)))
		}
	}
	if r == 0 {
		r = 1
	}
	r *= 1.05
	return viewBox{min: -r, max: r}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// renderPNG fills the closed layer loop into an alpha mask. World Y
// points up, device Y points down, so the Y axis is flipped.
func renderPNG(path string, l pyramid.Layer, box viewBox, size int) (err error) {
	scale := float64(size) / (box.max - box.min)
	toDev := func(q vec.Vec2) (float32, float32) {
		x := (q.X - box.min) * scale
		y := float64(size) - (q.Y-box.min)*scale
		return float32(x), float32(y)
	}

	r := vector.NewRasterizer(size, size)
	x, y := toDev(l.Points[0])
	r.MoveTo(x, y)
	for _, q := range l.Points[1:] {
		x, y = toDev(q)
		r.LineTo(x, y)
	}
	r.ClosePath()

	dst := image.NewAlpha(image.Rect(0, 0, size, size))
	src := image.NewUniform(color.Alpha{A: 255})
	r.Draw(dst, dst.Bounds(), src, image.Point{})

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = png.Encode(f, dst)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// renderPDF strokes the layer loop on a single page. PDF origin is
// bottom-left with Y up, matching the generator's coordinates, so only
// scale and translation are needed.
func renderPDF(path string, l pyramid.Layer, box viewBox) error {
	const pageSize = 400.0 // points

	paper := &pdf.Rectangle{URx: pageSize, URy: pageSize}
	page, err := document.CreateSinglePage(path, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	scale := pageSize / (box.max - box.min)
	page.Transform(matrix.Matrix{scale, 0, 0, scale, -box.min * scale, -box.min * scale})

	page.SetStrokeColor(pdfcolor.DeviceGray(0))
	page.SetLineWidth(1 / scale)

	page.MoveTo(l.Points[0].X, l.Points[0].Y)
	for _, q := range l.Points[1:] {
		page.LineTo(q.X, q.Y)
	}
	page.ClosePath()
	page.Stroke()

	return page.Close()
}
