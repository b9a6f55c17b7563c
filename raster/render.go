// Package raster enumerates the pixels covered by triangles with integer
// vertices.
//
// The pixel (x, y) is identified with the integer point (x, y). Triangles
// are scanned bottom to top, one scanline at a time. A point on a left edge
// or a horizontal bottom edge belongs to the triangle, a point on a right
// edge or on the top scanline does not. This way, a mesh of triangles
// sharing edges covers every pixel exactly once.
package raster

//go:generate go run ../testcases/export -o ../testdata/testcases.json

import "github.com/vring1/computer-graphics/testcases"

// RenderExample renders a test case into a grayscale buffer.
// The buffer is pre-initialized with zeros, in row-major order.
// Every pixel covered by the test case polygon is set to 255; pixels
// outside the buffer are ignored.
func RenderExample(tc testcases.TestCase, buf []byte, width, height, stride int) error {
	m, err := MeshFromPath(tc.Path, tc.CTM)
	if err != nil {
		return err
	}
	m.Spans(func(y, xMin, xMax int) {
		if y < 0 || y >= height {
			return
		}
		row := buf[y*stride:]
		for x := max(xMin, 0); x <= min(xMax, width-1); x++ {
			row[x] = 255
		}
	})
	return nil
}
