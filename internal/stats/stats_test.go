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
	"testing"

	"github.com/mlnoga/goldenedge/internal/grid"
	"github.com/valyala/fastrand"
)

func TestStatsOf(t *testing.T) {
	g, _ := grid.FromRows([][]uint8{{0, 2, 2}, {4, 2, 8}})
	s, err := Of(g)
	if err != nil {
		t.Fatal(err)
	}
	if s.Min != 0 || s.Max != 8 {
		t.Errorf("min=%f max=%f; want 0 8", s.Min, s.Max)
	}
	if math.Abs(s.Mean-3) > 1e-9 {
		t.Errorf("mean=%f; want 3", s.Mean)
	}
	// sample variance of {0,2,2,4,2,8} is (9+1+1+1+1+25)/5=7.6
	if math.Abs(s.StdDev-math.Sqrt(7.6)) > 1e-9 {
		t.Errorf("stddev=%f; want %f", s.StdDev, math.Sqrt(7.6))
	}
	if s.Peak != 2 || s.PeakCount != 3 || s.Nonzero != 5 {
		t.Errorf("peak=%d count=%d nonzero=%d; want 2 3 5", s.Peak, s.PeakCount, s.Nonzero)
	}
}

func TestStatsSinglePixel(t *testing.T) {
	g, _ := grid.FromRows([][]uint8{{42}})
	s, err := Of(g)
	if err != nil {
		t.Fatal(err)
	}
	if s.Mean != 42 || s.StdDev != 0 || s.Peak != 42 {
		t.Errorf("stats=%v; want mean 42 stddev 0 peak 42", s)
	}
}

func TestHistogram8Sums(t *testing.T) {
	rng := fastrand.RNG{}
	data := make([]uint8, 1000)
	for i := range data {
		data[i] = uint8(rng.Uint32n(256))
	}
	var bins [Bins8]int32
	Histogram8(data, &bins)
	sum := int32(0)
	for _, b := range bins {
		sum += b
	}
	if sum != int32(len(data)) {
		t.Errorf("sum=%d; want %d", sum, len(data))
	}
}

func TestGetPeakTies(t *testing.T) {
	if i, c := GetPeak([]int32{1, 3, 3, 0}); i != 1 || c != 3 {
		t.Errorf("GetPeak=%d,%d; want 1,3", i, c)
	}
	var bins [Bins8]int32
	Histogram8([]uint8{7, 7, 200}, &bins)
	if i, c := GetPeak(bins[:]); i != 7 || c != 2 {
		t.Errorf("GetPeak=%d,%d; want 7,2", i, c)
	}
}
