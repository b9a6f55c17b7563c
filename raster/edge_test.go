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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ceilX computes the expected sample directly from the line equation.
func ceilX(x1, y1, x2, y2, y int) int {
	num := (y - y1) * (x2 - x1)
	den := y2 - y1
	return x1 - floorDiv(-num, den)
}

type sample struct{ x, y int }

func walk(w Walker) []sample {
	var res []sample
	for w.More() {
		res = append(res, sample{w.X(), w.Y()})
		w.Next()
	}
	return res
}

func TestSegment(t *testing.T) {
	tests := []struct {
		x1, y1, x2, y2 int
	}{
		{0, 0, 2, 4},
		{4, 0, 2, 4},
		{0, 0, 0, 7},
		{3, -2, -5, 9},
		{-7, -7, 13, 1},
		{10, 20, -30, 21},
		{0, 0, 1, 100},
		{2, 4, 0, 0}, // reversed
	}
	for _, tt := range tests {
		name := fmt.Sprintf("%d_%d_%d_%d", tt.x1, tt.y1, tt.x2, tt.y2)
		t.Run(name, func(t *testing.T) {
			x1, y1, x2, y2 := tt.x1, tt.y1, tt.x2, tt.y2
			if y1 > y2 {
				x1, y1, x2, y2 = x2, y2, x1, y1
			}

			got := walk(NewSegment(tt.x1, tt.y1, tt.x2, tt.y2))
			require.Len(t, got, y2-y1)
			for i, s := range got {
				y := y1 + i
				assert.Equal(t, y, s.y)
				assert.Equal(t, ceilX(x1, y1, x2, y2, y), s.x, "y=%d", y)
			}
		})
	}
}

func TestSegmentHorizontal(t *testing.T) {
	s := NewSegment(0, 5, 10, 5)
	assert.False(t, s.More())

	// Next on an exhausted walker has no effect
	s.Next()
	assert.False(t, s.More())
	assert.Equal(t, 5, s.Y())
}

func TestChain(t *testing.T) {
	tests := []struct {
		name                   string
		x1, y1, x2, y2, x3, y3 int
	}{
		{"regular", 0, 0, -3, 5, 2, 9},
		{"flat_first", 0, 0, 4, 0, 2, 4},
		{"flat_second", 0, 0, 3, 6, -2, 6},
		{"steep", 5, -3, 6, 20, 5, 40},
		{"straight", 0, 0, 2, 2, 4, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := walk(NewChain(tt.x1, tt.y1, tt.x2, tt.y2, tt.x3, tt.y3))
			require.Len(t, got, tt.y3-tt.y1)
			for i, s := range got {
				y := tt.y1 + i
				assert.Equal(t, y, s.y)

				var want int
				if y < tt.y2 {
					want = ceilX(tt.x1, tt.y1, tt.x2, tt.y2, y)
				} else {
					want = ceilX(tt.x2, tt.y2, tt.x3, tt.y3, y)
				}
				assert.Equal(t, want, s.x, "y=%d", y)
			}
		})
	}
}

func TestChainEmpty(t *testing.T) {
	c := NewChain(0, 3, 5, 3, 9, 3)
	assert.False(t, c.More())
}

// TestChainMatchesSegment checks that a chain through a point on the line
// samples the same positions as the undivided segment.
func TestChainMatchesSegment(t *testing.T) {
	seg := walk(NewSegment(1, 0, 7, 12))
	chain := walk(NewChain(1, 0, 4, 6, 7, 12))
	assert.Equal(t, seg, chain)
}

func TestFloorDiv(t *testing.T) {
	tests := []struct{ a, b, want int }{
		{7, 2, 3},
		{-7, 2, -4},
		{6, 3, 2},
		{-6, 3, -2},
		{0, 5, 0},
		{-1, 5, -1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, floorDiv(tt.a, tt.b), "floorDiv(%d, %d)", tt.a, tt.b)
	}
}
