// Command export writes the test cases and the pixels the rasterizer
// produces for them to JSON.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"maps"
	"math"
	"os"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"github.com/vring1/computer-graphics/raster"
	"github.com/vring1/computer-graphics/testcases"
)

func main() {
	out := flag.String("o", "testdata/testcases.json", "output file")
	flag.Parse()

	if err := run(*out); err != nil {
		log.Fatal(err)
	}
}

type jsonTestCase struct {
	Name     string     `json:"name"`
	Width    int        `json:"width"`
	Height   int        `json:"height"`
	Polygons [][][2]int `json:"polygons"`
	CTM      [6]float64 `json:"ctm,omitzero"`
	Pixels   [][2]int   `json:"pixels"`
	Spans    []jsonSpan `json:"spans"`
}

type jsonSpan struct {
	Y    int `json:"y"`
	XMin int `json:"x_min"`
	XMax int `json:"x_max"`
}

func run(fname string) (err error) {
	var doc struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				return fmt.Errorf("%s_%s: %w", category, tc.Name, err)
			}
			doc.TestCases = append(doc.TestCases, jtc)
		}
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	jtc := jsonTestCase{
		Name:     category + "_" + tc.Name,
		Width:    tc.Width,
		Height:   tc.Height,
		Polygons: pathToJSON(tc.Path),
		CTM:      tc.CTM,
		Pixels:   [][2]int{},
		Spans:    []jsonSpan{},
	}

	m, err := raster.MeshFromPath(tc.Path, tc.CTM)
	if err != nil {
		return jtc, err
	}
	for p := range m.Pixels() {
		jtc.Pixels = append(jtc.Pixels, [2]int{p.X, p.Y})
	}
	m.Spans(func(y, xMin, xMax int) {
		jtc.Spans = append(jtc.Spans, jsonSpan{Y: y, XMin: xMin, XMax: xMax})
	})
	return jtc, nil
}

// pathToJSON lists the user space vertices of every subpath, rounded to
// integers.
func pathToJSON(p *path.Data) [][][2]int {
	var polys [][][2]int
	var cur [][2]int
	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if len(cur) > 0 {
				polys = append(polys, cur)
			}
			c := p.Coords[coordIdx]
			cur = [][2]int{round(c)}
			coordIdx++
		case path.CmdLineTo:
			c := p.Coords[coordIdx]
			cur = append(cur, round(c))
			coordIdx++
		case path.CmdQuadTo:
			coordIdx += 2
		case path.CmdCubeTo:
			coordIdx += 3
		}
	}
	if len(cur) > 0 {
		polys = append(polys, cur)
	}
	return polys
}

func round(c vec.Vec2) [2]int {
	return [2]int{int(math.Round(c.X)), int(math.Round(c.Y))}
}
