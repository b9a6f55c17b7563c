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

package raster

import (
	"errors"
	"fmt"
	"image"
	"iter"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ErrCurve is returned by MeshFromPath for paths which contain curve
// segments. Only polygons can be converted into a mesh.
var ErrCurve = errors.New("path contains curve segments")

// Mesh is a set of triangles sharing a common vertex list.
//
// When the triangles tile a region edge-to-edge, every pixel in the region
// is visited by exactly one triangle.
type Mesh struct {
	Vertices  []image.Point
	Triangles [][3]int // indices into Vertices
}

// MeshFromPath converts the polygons of a path into a triangle mesh.
//
// Each subpath is read as a polygon, transformed by ctm, rounded to integer
// device coordinates and split into a fan of triangles around its first
// vertex. The fan only tiles the polygon if the polygon is convex.
// A zero ctm is treated as the identity.
//
// Subpaths with fewer than three distinct vertices are skipped. If the path
// contains curves, an error wrapping ErrCurve is returned.
func MeshFromPath(p *path.Data, ctm matrix.Matrix) (*Mesh, error) {
	if ctm == (matrix.Matrix{}) {
		ctm = matrix.Identity
	}
	m := &Mesh{}

	var poly []image.Point
	var subpath vec.Vec2 // subpath start (user space)

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			m.addPolygon(poly)
			subpath = p.Coords[coordIdx]
			poly = append(poly[:0], toDevice(ctm, subpath))
			coordIdx++

		case path.CmdLineTo:
			if len(poly) == 0 {
				// drawing continues after a close
				poly = append(poly, toDevice(ctm, subpath))
			}
			poly = append(poly, toDevice(ctm, p.Coords[coordIdx]))
			coordIdx++

		case path.CmdQuadTo, path.CmdCubeTo:
			return nil, fmt.Errorf("mesh from path: %w", ErrCurve)

		case path.CmdClose:
			m.addPolygon(poly)
			poly = poly[:0]
		}
	}
	m.addPolygon(poly)

	return m, nil
}

// toDevice maps a user space point to the nearest integer device point.
func toDevice(ctm matrix.Matrix, p vec.Vec2) image.Point {
	x := ctm[0]*p.X + ctm[2]*p.Y + ctm[4]
	y := ctm[1]*p.X + ctm[3]*p.Y + ctm[5]
	return image.Point{X: int(math.Round(x)), Y: int(math.Round(y))}
}

// addPolygon appends a triangle fan for the given polygon.
func (m *Mesh) addPolygon(poly []image.Point) {
	var pts []image.Point
	for _, q := range poly {
		if len(pts) > 0 && pts[len(pts)-1] == q {
			continue
		}
		pts = append(pts, q)
	}
	if len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	if len(pts) < 3 {
		if len(pts) > 0 {
			Logger().Debug("skipping short subpath", "vertices", len(pts))
		}
		return
	}

	base := len(m.Vertices)
	m.Vertices = append(m.Vertices, pts...)
	for i := 1; i+1 < len(pts); i++ {
		m.Triangles = append(m.Triangles, [3]int{base, base + i, base + i + 1})
	}
}

// Triangle returns a new scan converter for triangle i of the mesh.
func (m *Mesh) Triangle(i int) *Triangle {
	idx := m.Triangles[i]
	return NewTriangleFromPoints(m.Vertices[idx[0]], m.Vertices[idx[1]], m.Vertices[idx[2]])
}

// Spans visits the pixels of all triangles, one scanline span at a time.
// Spans of different triangles are not merged.
func (m *Mesh) Spans(emit func(y, xMin, xMax int)) {
	for i := range m.Triangles {
		m.Triangle(i).Spans(emit)
	}
}

// Pixels returns an iterator over the pixels of all triangles, in triangle
// order. Unlike Triangle.Pixels, the iterator can be used more than once.
func (m *Mesh) Pixels() iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		for i := range m.Triangles {
			for p := range m.Triangle(i).Pixels() {
				if !yield(p) {
					return
				}
			}
		}
	}
}

// Bounds returns the bounding box of the mesh vertices.
func (m *Mesh) Bounds() rect.Rect {
	return boundsOf(m.Vertices)
}
