// Copyright (C) 2020 Markus L. Noga
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

package sobel

import (
	"fmt"

	"github.com/mlnoga/goldenedge/internal/grid"
)

// Correlates the grid with a 3x3 kernel: out(x,y) = sum k[dy+1][dx+1]*g(x+dx,y+dy).
// Samples are exact signed sums without clipping. The outermost ring, where the
// neighborhood leaves the grid, is computed with the given edge policy (Reflect101 if nil).
func Convolve(g *grid.Grid[uint8], k Kernel, policy EdgePolicy) (*grid.Grid[int32], error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	out, err := grid.New[int32](g.Width, g.Height)
	if err != nil {
		return nil, err
	}
	if err := ConvolveInto(out, g, k, policy); err != nil {
		return nil, err
	}
	return out, nil
}

// Like Convolve, but writes into a caller-provided grid of the same size.
// Every sample of dst is overwritten.
func ConvolveInto(dst *grid.Grid[int32], g *grid.Grid[uint8], k Kernel, policy EdgePolicy) error {
	if err := g.Validate(); err != nil {
		return err
	}
	if err := dst.Validate(); err != nil {
		return err
	}
	if dst.Width != g.Width || dst.Height != g.Height {
		return fmt.Errorf("%w: output %s for input %s", grid.ErrDimensions, dst.DimensionsToString(), g.DimensionsToString())
	}
	if policy == nil {
		policy = Reflect101
	}
	width, height := g.Width, g.Height

	// interior, full neighborhood available
	for y := 1; y < height-1; y++ {
		above, line, below := g.Row(y-1), g.Row(y), g.Row(y+1)
		out := dst.Row(y)
		for x := 1; x < width-1; x++ {
			out[x] = k[0][0]*int32(above[x-1]) + k[0][1]*int32(above[x]) + k[0][2]*int32(above[x+1]) +
				k[1][0]*int32(line[x-1]) + k[1][1]*int32(line[x]) + k[1][2]*int32(line[x+1]) +
				k[2][0]*int32(below[x-1]) + k[2][1]*int32(below[x]) + k[2][2]*int32(below[x+1])
		}
	}

	// outermost ring
	for y := 0; y < height; y++ {
		if y == 0 || y == height-1 {
			for x := 0; x < width; x++ {
				dst.Set(x, y, convolveAt(g, k, policy, x, y))
			}
		} else {
			dst.Set(0, y, convolveAt(g, k, policy, 0, y))
			if width > 1 {
				dst.Set(width-1, y, convolveAt(g, k, policy, width-1, y))
			}
		}
	}
	return nil
}

// Computes a single output sample, resolving out of range coordinates with the policy
func convolveAt(g *grid.Grid[uint8], k Kernel, policy EdgePolicy, x, y int) int32 {
	sum := int32(0)
	for dy := -1; dy <= 1; dy++ {
		sy := policy.Index(y+dy, g.Height)
		if sy < 0 {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			sx := policy.Index(x+dx, g.Width)
			if sx < 0 {
				continue
			}
			sum += k[dy+1][dx+1] * int32(g.At(sx, sy))
		}
	}
	return sum
}
