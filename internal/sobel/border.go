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

// Extends the grid by border samples on all four sides by replicating edge samples outward.
// Corner blocks are filled with the nearest corner sample. Returns a new grid of size
// (width+2*border)x(height+2*border); the input is not modified.
func Pad(g *grid.Grid[uint8], border int) (*grid.Grid[uint8], error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if border < 0 {
		return nil, fmt.Errorf("%w: negative border %d", grid.ErrDimensions, border)
	}
	width, height := g.Width, g.Height
	pw, ph := width+2*border, height+2*border
	padded, err := grid.New[uint8](pw, ph)
	if err != nil {
		return nil, err
	}

	// center, left and right margins
	for y := 0; y < height; y++ {
		src := g.Row(y)
		dst := padded.Row(y + border)
		copy(dst[border:border+width], src)
		left, right := src[0], src[width-1]
		for x := 0; x < border; x++ {
			dst[x] = left
			dst[width+border+x] = right
		}
	}

	// top and bottom margins over the center columns
	top, bottom := g.Row(0), g.Row(height-1)
	for y := 0; y < border; y++ {
		copy(padded.Row(y)[border:border+width], top)
		copy(padded.Row(height+border+y)[border:border+width], bottom)
	}

	// corners
	tl, tr := g.At(0, 0), g.At(width-1, 0)
	bl, br := g.At(0, height-1), g.At(width-1, height-1)
	for y := 0; y < border; y++ {
		for x := 0; x < border; x++ {
			padded.Set(x, y, tl)
			padded.Set(width+border+x, y, tr)
			padded.Set(x, height+border+y, bl)
			padded.Set(width+border+x, height+border+y, br)
		}
	}
	return padded, nil
}
