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

	"seehuhn.de/go/geom/rect"
)

// ErrInvalidState is returned by the position accessors of a Triangle which
// has no current pixel, either because the triangle covers no pixels or
// because all pixels have been visited.
var ErrInvalidState = errors.New("invalid state: no current pixel")

// Pixel is a pixel position embedded in 3D space. Z is always 0.
type Pixel struct {
	X, Y, Z int
}

// Orientation describes on which side of the edge from the lower left to
// the upper left vertex the remaining vertex lies.
type Orientation int

const (
	// Degenerate means that the three vertices are collinear.
	Degenerate Orientation = iota

	// OtherLeft means that the remaining vertex lies to the left, so that
	// the two-segment chain forms the left boundary.
	OtherLeft

	// OtherRight means that the remaining vertex lies to the right, so that
	// the two-segment chain forms the right boundary.
	OtherRight
)

func (o Orientation) String() string {
	switch o {
	case Degenerate:
		return "degenerate"
	case OtherLeft:
		return "other-left"
	case OtherRight:
		return "other-right"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// Triangle enumerates the pixels inside a triangle with integer vertices.
//
// A pixel (x, y) is inside if the point (x, y) lies in the interior of the
// triangle, on a left boundary edge, or on a horizontal bottom edge. Points
// on right boundary edges and on the top scanline are excluded. With this
// rule, triangles which share edges cover every pixel exactly once.
//
// A Triangle is a one-shot cursor: once all pixels have been visited, a new
// Triangle must be created to scan the same vertices again.
// A Triangle is not safe for concurrent use.
type Triangle struct {
	vertex [3]image.Point

	lowerLeft, upperLeft, other int
	orientation                 Orientation

	left, right Walker

	xStart, xStop int // span of the current scanline, inclusive
	xCurrent      int
	yCurrent      int
	valid         bool
}

// NewTriangle returns a Triangle positioned on the first pixel inside the
// triangle with vertices (x1, y1), (x2, y2) and (x3, y3).
func NewTriangle(x1, y1, x2, y2, x3, y3 int) *Triangle {
	t := &Triangle{}
	t.init(image.Point{X: x1, Y: y1}, image.Point{X: x2, Y: y2}, image.Point{X: x3, Y: y3})
	return t
}

// NewTriangleFromPoints is like NewTriangle, but takes the vertices as points.
func NewTriangleFromPoints(a, b, c image.Point) *Triangle {
	t := &Triangle{}
	t.init(a, b, c)
	return t
}

func (t *Triangle) init(a, b, c image.Point) {
	t.vertex = [3]image.Point{a, b, c}
	t.lowerLeft = t.findLowerLeft()
	t.upperLeft = t.findUpperLeft(t.lowerLeft)
	t.other = 3 - t.lowerLeft - t.upperLeft

	ll := t.vertex[t.lowerLeft]
	ul := t.vertex[t.upperLeft]
	ot := t.vertex[t.other]

	// The sign of the cross product e1 x e2 tells on which side of e1 the
	// remaining vertex lies.
	e1 := ul.Sub(ll)
	e2 := ot.Sub(ll)
	z := e1.X*e2.Y - e1.Y*e2.X

	switch {
	case z > 0:
		t.orientation = OtherLeft
		t.left = NewChain(ll.X, ll.Y, ot.X, ot.Y, ul.X, ul.Y)
		t.right = NewSegment(ll.X, ll.Y, ul.X, ul.Y)
	case z < 0:
		t.orientation = OtherRight
		t.left = NewSegment(ll.X, ll.Y, ul.X, ul.Y)
		t.right = NewChain(ll.X, ll.Y, ot.X, ot.Y, ul.X, ul.Y)
	default:
		t.orientation = Degenerate
		Logger().Debug("degenerate triangle", "a", a, "b", b, "c", c)
		return
	}

	if !t.left.More() {
		return
	}
	t.xStart = t.left.X()
	t.xCurrent = t.xStart
	t.xStop = t.right.X() - 1
	t.yCurrent = t.left.Y()
	t.valid = t.xStart <= t.xStop
	if !t.valid {
		t.nextScanline()
	}
}

// findLowerLeft returns the index of the vertex with the smallest y,
// ties broken by smallest x.
func (t *Triangle) findLowerLeft() int {
	ll := 0
	for i := 1; i < 3; i++ {
		v, w := t.vertex[i], t.vertex[ll]
		if v.Y < w.Y || v.Y == w.Y && v.X < w.X {
			ll = i
		}
	}
	return ll
}

// findUpperLeft returns the index of the vertex with the largest y,
// ties broken by smallest x. The lower left vertex is never chosen, so that
// the roles stay distinct when all vertices lie on one scanline.
func (t *Triangle) findUpperLeft(ll int) int {
	ul := -1
	for i := range 3 {
		if i == ll {
			continue
		}
		if ul < 0 {
			ul = i
			continue
		}
		v, w := t.vertex[i], t.vertex[ul]
		if v.Y > w.Y || v.Y == w.Y && v.X < w.X {
			ul = i
		}
	}
	return ul
}

// More reports whether the Triangle is positioned on a pixel.
func (t *Triangle) More() bool {
	return t.valid
}

// Next moves to the next pixel, left to right within a scanline and then
// upwards. Once More reports false, Next has no effect.
func (t *Triangle) Next() {
	if !t.valid {
		return
	}
	if t.xCurrent < t.xStop {
		t.xCurrent++
		return
	}
	t.nextScanline()
}

// nextScanline advances both edges in lockstep until a scanline with a
// non-empty span is found, or the left edge is used up.
func (t *Triangle) nextScanline() {
	t.left.Next()
	t.right.Next()
	for t.left.More() && t.left.X() >= t.right.X() {
		t.left.Next()
		t.right.Next()
	}
	t.valid = t.left.More()
	if !t.valid {
		return
	}
	t.xStart = t.left.X()
	t.xCurrent = t.xStart
	t.xStop = t.right.X() - 1
	t.yCurrent = t.left.Y()
}

// X returns the x-coordinate of the current pixel.
// If More reports false, an error wrapping ErrInvalidState is returned.
func (t *Triangle) X() (int, error) {
	if !t.valid {
		return 0, fmt.Errorf("triangle x: %w", ErrInvalidState)
	}
	return t.xCurrent, nil
}

// Y returns the y-coordinate of the current pixel.
// If More reports false, an error wrapping ErrInvalidState is returned.
func (t *Triangle) Y() (int, error) {
	if !t.valid {
		return 0, fmt.Errorf("triangle y: %w", ErrInvalidState)
	}
	return t.yCurrent, nil
}

// AllPixels visits all remaining pixels and returns them in scan order.
func (t *Triangle) AllPixels() []Pixel {
	var pixels []Pixel
	for t.valid {
		pixels = append(pixels, Pixel{X: t.xCurrent, Y: t.yCurrent})
		t.Next()
	}
	return pixels
}

// Pixels returns an iterator over the remaining pixels in scan order.
// Every pixel handed to the caller is consumed, also when the caller stops
// the iteration early.
func (t *Triangle) Pixels() iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		for t.valid {
			p := image.Point{X: t.xCurrent, Y: t.yCurrent}
			t.Next()
			if !yield(p) {
				return
			}
		}
	}
}

// Spans visits the remaining pixels one scanline at a time. The emit
// callback receives the scanline and the inclusive range of x-coordinates.
func (t *Triangle) Spans(emit func(y, xMin, xMax int)) {
	for t.valid {
		y, xMin, xMax := t.yCurrent, t.xCurrent, t.xStop
		t.xCurrent = t.xStop
		t.nextScanline()
		emit(y, xMin, xMax)
	}
}

// Orientation returns the shape class of the triangle.
func (t *Triangle) Orientation() Orientation {
	return t.orientation
}

// Roles returns the vertices in their roles for the scan: the lowest
// vertex, the highest vertex and the remaining one. Ties in y are broken
// by choosing the vertex with the smaller x.
func (t *Triangle) Roles() (lowerLeft, upperLeft, other image.Point) {
	return t.vertex[t.lowerLeft], t.vertex[t.upperLeft], t.vertex[t.other]
}

// Bounds returns the bounding box of the three vertices.
func (t *Triangle) Bounds() rect.Rect {
	return boundsOf(t.vertex[:])
}

func boundsOf(pts []image.Point) rect.Rect {
	if len(pts) == 0 {
		return rect.Rect{}
	}
	xMin, xMax := pts[0].X, pts[0].X
	yMin, yMax := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		xMin = min(xMin, p.X)
		xMax = max(xMax, p.X)
		yMin = min(yMin, p.Y)
		yMax = max(yMax, p.Y)
	}
	return rect.Rect{
		LLx: float64(xMin),
		LLy: float64(yMin),
		URx: float64(xMax),
		URy: float64(yMax),
	}
}
