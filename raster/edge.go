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

// Walker steps along the boundary of a polygon, one scanline at a time.
// Each call to Next moves to the next integer y; X reports the first pixel
// column at or to the right of the boundary on the current scanline.
//
// X and Y are meaningful only while More reports true.
type Walker interface {
	More() bool
	Next()
	X() int
	Y() int
}

// Segment walks a single line segment in increasing y.
//
// The scanline of the lower endpoint is the first sample, the scanline of
// the upper endpoint is never sampled. This makes segments which share an
// endpoint produce disjoint scanline ranges. A horizontal segment has no
// samples at all.
type Segment struct {
	x, y  int // current sample
	yStop int // first scanline past the end

	// The x-coordinate advances by xStep per scanline, plus one whenever the
	// accumulated remainder becomes positive.
	dy    int
	xStep int
	rem   int // in [0, dy)
	acc   int // (y-y0)*dx - (x-x0)*dy, in (-dy, 0]
}

// NewSegment returns a walker for the segment from (x1, y1) to (x2, y2).
// The endpoints may be given in either order.
func NewSegment(x1, y1, x2, y2 int) *Segment {
	s := &Segment{}
	s.init(x1, y1, x2, y2)
	return s
}

func (s *Segment) init(x1, y1, x2, y2 int) {
	if y1 > y2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}
	*s = Segment{
		x:     x1,
		y:     y1,
		yStop: y2,
		dy:    y2 - y1,
	}
	if s.dy > 0 {
		dx := x2 - x1
		s.xStep = floorDiv(dx, s.dy)
		s.rem = dx - s.xStep*s.dy
	}
}

// More reports whether the walker is positioned on a scanline.
func (s *Segment) More() bool {
	return s.y < s.yStop
}

// Next advances to the next scanline.
func (s *Segment) Next() {
	if s.y >= s.yStop {
		return
	}
	s.y++
	if s.y == s.yStop {
		return
	}
	s.x += s.xStep
	s.acc += s.rem
	if s.acc > 0 {
		s.x++
		s.acc -= s.dy
	}
}

// X returns the smallest integer x on or to the right of the segment.
func (s *Segment) X() int { return s.x }

// Y returns the current scanline.
func (s *Segment) Y() int { return s.y }

// Chain walks two connected segments, (x1, y1)-(x2, y2) followed by
// (x2, y2)-(x3, y3). The vertices must satisfy y1 <= y2 <= y3.
//
// The shared vertex belongs to the second segment, so every scanline in
// [y1, y3) is sampled exactly once.
type Chain struct {
	seg    Segment
	x2, y2 int
	x3, y3 int
	second bool
}

// NewChain returns a walker for the polyline through the three given points.
func NewChain(x1, y1, x2, y2, x3, y3 int) *Chain {
	c := &Chain{x2: x2, y2: y2, x3: x3, y3: y3}
	c.seg.init(x1, y1, x2, y2)
	if !c.seg.More() {
		c.startSecond()
	}
	return c
}

func (c *Chain) startSecond() {
	c.seg.init(c.x2, c.y2, c.x3, c.y3)
	c.second = true
}

// More reports whether the walker is positioned on a scanline.
func (c *Chain) More() bool {
	return c.seg.More()
}

// Next advances to the next scanline, switching to the second segment when
// the first one is used up.
func (c *Chain) Next() {
	c.seg.Next()
	if !c.seg.More() && !c.second {
		c.startSecond()
	}
}

// X returns the smallest integer x on or to the right of the polyline.
func (c *Chain) X() int { return c.seg.X() }

// Y returns the current scanline.
func (c *Chain) Y() int { return c.seg.Y() }

// floorDiv returns a/b rounded towards negative infinity. b must be positive.
func floorDiv(a, b int) int {
	q := a / b
	if a%b < 0 {
		q--
	}
	return q
}
