package testcases

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var meshCases = []TestCase{
	{
		Name:   "square",
		Path:   polygon(pt(8, 8), pt(56, 8), pt(56, 56), pt(8, 56)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "quad_skewed",
		Path:   polygon(pt(10, 4), pt(50, 12), pt(58, 60), pt(4, 40)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "hexagon",
		Path:   regularPolygon(32, 32, 28, 6),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "disc",
		Path:   regularPolygon(32, 32, 30, 40),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "two_subpaths",
		Path:   twoSquares(),
		Width:  64,
		Height: 64,
	},
}

var transformCases = []TestCase{
	{
		Name:   "scaled",
		Path:   triangle(2, 2, 14, 4, 6, 15),
		Width:  64,
		Height: 64,
		CTM:    matrix.Matrix{4, 0, 0, 4, 0, 0},
	},
	{
		Name:   "rotated",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		CTM:    matrix.Matrix{0, 1, -1, 0, 64, 0},
	},
	{
		Name:   "translated_square",
		Path:   polygon(pt(0, 0), pt(20, 0), pt(20, 20), pt(0, 20)),
		Width:  64,
		Height: 64,
		CTM:    matrix.Matrix{1, 0, 0, 1, 22.4, 21.6},
	},
}

// regularPolygon builds a convex polygon with n corners on a circle.
func regularPolygon(cx, cy, r float64, n int) *path.Data {
	pts := make([]vec.Vec2, n)
	for i := range n {
		angle := float64(i) * 2 * math.Pi / float64(n)
		pts[i] = vec.Vec2{
			X: cx + r*math.Cos(angle),
			Y: cy + r*math.Sin(angle),
		}
	}
	return polygon(pts...)
}

// twoSquares builds a path with two disjoint square subpaths.
func twoSquares() *path.Data {
	return (&path.Data{}).
		MoveTo(pt(4, 4)).
		LineTo(pt(28, 4)).
		LineTo(pt(28, 28)).
		LineTo(pt(4, 28)).
		Close().
		MoveTo(pt(36, 36)).
		LineTo(pt(60, 36)).
		LineTo(pt(60, 60)).
		LineTo(pt(36, 60)).
		Close()
}
