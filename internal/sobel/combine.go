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

// Combines two directional gradients into the L1 magnitude |gx|+|gy| over the padded extent,
// then crops the border off, returning a grid of origWidth x origHeight.
func Combine(gx, gy *grid.Grid[int32], border, origWidth, origHeight int) (*grid.Grid[int32], error) {
	if err := gx.Validate(); err != nil {
		return nil, err
	}
	if err := gy.Validate(); err != nil {
		return nil, err
	}
	pw, ph := origWidth+2*border, origHeight+2*border
	if border < 0 || gx.Width != pw || gx.Height != ph || gy.Width != pw || gy.Height != ph {
		return nil, fmt.Errorf("%w: gradients %s and %s for %dx%d with border %d",
			grid.ErrDimensions, gx.DimensionsToString(), gy.DimensionsToString(), origWidth, origHeight, border)
	}

	magnitude, err := grid.New[int32](pw, ph)
	if err != nil {
		return nil, err
	}
	for i, x := range gx.Data {
		magnitude.Data[i] = abs32(x) + abs32(gy.Data[i])
	}
	return magnitude.Crop(border, border, origWidth, origHeight)
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
