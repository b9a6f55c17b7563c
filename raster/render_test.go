package raster

import (
	"image"
	"image/color"
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/vector"

	"github.com/vring1/computer-graphics/testcases"
)

// coverageOracle renders the mesh with x/image/vector, shifted by half a
// pixel so that pixel (x, y) of the output is the unit square centred on
// the integer point (x, y).
func coverageOracle(m *Mesh, w, h int) *image.Alpha {
	z := vector.NewRasterizer(w, h)
	for _, idx := range m.Triangles {
		a, b, c := m.Vertices[idx[0]], m.Vertices[idx[1]], m.Vertices[idx[2]]
		// use a common orientation so that coverage adds up across the fan
		if cross(b.Sub(a), c.Sub(a)) < 0 {
			b, c = c, b
		}
		z.MoveTo(float32(a.X)+0.5, float32(a.Y)+0.5)
		z.LineTo(float32(b.X)+0.5, float32(b.Y)+0.5)
		z.LineTo(float32(c.X)+0.5, float32(c.Y)+0.5)
		z.ClosePath()
	}
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(dst, dst.Bounds(), image.NewUniform(color.Alpha{255}), image.Point{})
	return dst
}

// TestAgainstCoverage compares the rendered test cases with the area
// coverage computed by x/image/vector. A pixel whose centre lies outside the
// polygon is at most half covered, so every pixel with more coverage must be
// set. Every pixel which is set must be touched by the polygon.
func TestAgainstCoverage(t *testing.T) {
	for _, category := range []string{"basic", "mesh", "transform"} {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				w, h := tc.Width, tc.Height
				actual := make([]byte, w*h)
				require.NoError(t, RenderExample(tc, actual, w, h, w))

				m, err := MeshFromPath(tc.Path, tc.CTM)
				require.NoError(t, err)
				oracle := coverageOracle(m, w, h)

				for y := range h {
					for x := range w {
						a := oracle.AlphaAt(x, y).A
						set := actual[y*w+x] == 255
						if a > 160 {
							assert.True(t, set, "pixel (%d, %d) with coverage %d not set", x, y, a)
						}
						if set {
							assert.NotZero(t, a, "pixel (%d, %d) set without coverage", x, y)
						}
					}
				}
			})
		}
	}
}

func TestDegenerateCases(t *testing.T) {
	for _, tc := range testcases.All["degenerate"] {
		t.Run(tc.Name, func(t *testing.T) {
			m, err := MeshFromPath(tc.Path, tc.CTM)
			require.NoError(t, err)
			for i := range m.Triangles {
				tri := m.Triangle(i)
				assert.False(t, tri.More())
				assert.Equal(t, Degenerate, tri.Orientation())
			}
			buf := make([]byte, tc.Width*tc.Height)
			require.NoError(t, RenderExample(tc, buf, tc.Width, tc.Height, tc.Width))
			assert.NotContains(t, buf, byte(255))
		})
	}
}

// TestAllCasesAgainstReference checks every triangle of every test case
// against the edge equation reference.
func TestAllCasesAgainstReference(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			m, err := MeshFromPath(tc.Path, tc.CTM)
			require.NoError(t, err)
			for i, idx := range m.Triangles {
				a, b, c := m.Vertices[idx[0]], m.Vertices[idx[1]], m.Vertices[idx[2]]
				want := referencePixels(a, b, c)
				got := collect(m.Triangle(i))
				assert.Equal(t, want, got, "%s_%s triangle %d", category, tc.Name, i)
			}
		}
	}
}

func TestRenderExampleClipsToBuffer(t *testing.T) {
	tc := testcases.TestCase{
		Name:   "partly_outside",
		Path:   mustTrianglePath(-10, -10, 30, -10, -10, 30),
		Width:  8,
		Height: 8,
	}
	buf := make([]byte, 8*8)
	require.NoError(t, RenderExample(tc, buf, 8, 8, 8))

	// the hypotenuse x+y=20 lies outside the buffer
	for i, v := range buf {
		assert.Equal(t, byte(255), v, "pixel %d", i)
	}
}
