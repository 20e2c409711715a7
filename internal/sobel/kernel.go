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

// A 3x3 integer convolution kernel, indexed [row][column]
type Kernel [3][3]int32

// Size of the gradient kernels
const KernelSize = 3

// The gradient kernels are only handed out by value through GxKernel and GyKernel
var gx = Kernel{
	{-1, 0, 1},
	{-2, 0, 2},
	{-1, 0, 1},
}

var gy = Kernel{
	{1, 2, 1},
	{0, 0, 0},
	{-1, -2, -1},
}

// Returns a copy of the horizontal gradient kernel
func GxKernel() Kernel { return gx }

// Returns a copy of the vertical gradient kernel. Positive for intensity decreasing downwards
func GyKernel() Kernel { return gy }

// Returns the border needed on each side for a square kernel of odd size ksize
func Margin(ksize int) int {
	if ksize < 1 {
		return 0
	}
	return (ksize - 1) / 2
}

// Border width used by the gradient pipeline, Margin(KernelSize)
const Border = (KernelSize - 1) / 2

// Sum of absolute coefficients, the largest factor an input sample range can be scaled by
func (k Kernel) AbsSum() int32 {
	sum := int32(0)
	for _, row := range k {
		for _, c := range row {
			if c < 0 {
				sum -= c
			} else {
				sum += c
			}
		}
	}
	return sum
}
