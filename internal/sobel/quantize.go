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
	"github.com/mlnoga/goldenedge/internal/grid"
)

// Converts wide samples to 8 bits. Values are truncated toward zero and saturated to [0,255]
func Quantize[T grid.Sample](g *grid.Grid[T]) (*grid.Grid[uint8], error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	out, err := grid.New[uint8](g.Width, g.Height)
	if err != nil {
		return nil, err
	}
	for i, v := range g.Data {
		out.Data[i] = saturateUint8(float64(v))
	}
	return out, nil
}

func saturateUint8(v float64) uint8 {
	switch {
	case v != v: // NaN
		return 0
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}
