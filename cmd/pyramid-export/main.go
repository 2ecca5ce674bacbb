// Command pyramid-export writes the generated layer geometry to JSON for
// external visualizers.
package main

import (
	"encoding/json"
	"flag"
	"os"

	"seehuhn.de/go/pyramid"
)

func main() {
	level := flag.Int("level", 3, "pyramid level (>= 1)")
	gridStep := flag.Float64("grid", 40, "lattice step length in mm")
	baseLayers := flag.Int("base-layers", pyramid.DefaultBaseLayers,
		"layers in the smallest pyramid")
	out := flag.String("o", "", "output file (default stdout)")
	flag.Parse()

	gen := pyramid.NewGenerator(*gridStep, *baseLayers)
	p, err := gen.Pyramid(*level)
	if err != nil {
		panic(err)
	}

	f := os.Stdout
	if *out != "" {
		f, err = os.Create(*out)
		if err != nil {
			panic(err)
		}
		defer f.Close()
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toJSON(p, *gridStep)); err != nil {
		panic(err)
	}
}

type jsonPyramid struct {
	Level      int         `json:"level"`
	GridStep   float64     `json:"grid_step"`
	SideLength float64     `json:"side_length"`
	Layers     []jsonLayer `json:"layers"`
}

type jsonLayer struct {
	Entry  int          `json:"entry"`
	Points [][2]float64 `json:"points"`
}

func toJSON(p *pyramid.Pyramid, gridStep float64) jsonPyramid {
	jp := jsonPyramid{
		Level:      p.Level,
		GridStep:   gridStep,
		SideLength: p.SideLength,
		Layers:     make([]jsonLayer, 0, len(p.Layers)),
	}
	for _, l := range p.Layers {
		jl := jsonLayer{
			Entry:  l.Entry,
			Points: make([][2]float64, len(l.Points)),
		}
		for i, q := range l.Points {
			jl.Points[i] = [2]float64{q.X, q.Y}
		}
		jp.Layers = append(jp.Layers, jl)
	}
	return jp
}
