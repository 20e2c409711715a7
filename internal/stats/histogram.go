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

package stats

import (
	"math"
)

// Number of bins for 8-bit histograms
const Bins8 = 256

// Calculate histogram of 8-bit data into 256 bins, one per value
func Histogram8(data []uint8, bins *[Bins8]int32) {
	for i := range bins {
		bins[i] = 0
	}
	for _, d := range data {
		bins[d]++
	}
}

// Returns the index and the count of the histogram peak. Ties go to the lowest index
func GetPeak(bins []int32) (index int, count int32) {
	index, count = -1, int32(math.MinInt32)
	for i, v := range bins {
		if v > count {
			index, count = i, v
		}
	}
	return index, count
}
