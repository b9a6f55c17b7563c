// github.com/vring1/computer-graphics - integer triangle rasterization
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

// Command genpdf draws the test cases into PDF files for visual inspection.
// Every emitted pixel is shown as a white square centred on its integer
// coordinates, the outlines of the mesh triangles are drawn in grey.
package main

import (
	"flag"
	"fmt"
	"log"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"github.com/vring1/computer-graphics/raster"
	"github.com/vring1/computer-graphics/testcases"
)

func main() {
	refDir := flag.String("dir", "testdata/reference", "output directory")
	scale := flag.Float64("scale", 8, "size of one pixel in PDF points")
	flag.Parse()

	if err := os.MkdirAll(*refDir, 0755); err != nil {
		log.Fatal(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(*refDir, name+".pdf")
			if err := generatePDF(tc, pdfPath, *scale); err != nil {
				log.Fatal(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string, scale float64) error {
	m, err := raster.MeshFromPath(tc.Path, tc.CTM)
	if err != nil {
		return err
	}

	paper := &pdf.Rectangle{
		URx: float64(tc.Width) * scale,
		URy: float64(tc.Height) * scale,
	}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left, which matches the scan order of the
	// rasterizer: y grows from the lower left to the upper left vertex.
	page.Transform(matrix.Matrix{scale, 0, 0, scale, 0, 0})

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	page.SetFillColor(color.DeviceGray(1))
	n := 0
	for p := range m.Pixels() {
		page.Rectangle(float64(p.X)-0.5, float64(p.Y)-0.5, 1, 1)
		n++
	}
	if n > 0 {
		page.Fill()
	}

	page.SetStrokeColor(color.DeviceGray(0.5))
	page.SetLineWidth(1 / scale)
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)
	for _, idx := range m.Triangles {
		a, b, c := m.Vertices[idx[0]], m.Vertices[idx[1]], m.Vertices[idx[2]]
		page.MoveTo(float64(a.X), float64(a.Y))
		page.LineTo(float64(b.X), float64(b.Y))
		page.LineTo(float64(c.X), float64(c.Y))
		page.ClosePath()
	}
	if len(m.Triangles) > 0 {
		page.Stroke()
	}

	return page.Close()
}
