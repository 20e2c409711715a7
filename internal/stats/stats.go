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
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/mlnoga/goldenedge/internal/grid"
)

// Basic statistics of an 8-bit image
type Stats struct {
	Width, Height int
	Min, Max      float64
	Mean, StdDev  float64
	Peak          uint8 // most frequent value
	PeakCount     int32
	Nonzero       int // number of samples above zero
}

// Calculates statistics for the given grid
func Of(g *grid.Grid[uint8]) (*Stats, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	data := make([]float64, len(g.Data))
	nonzero := 0
	for i, v := range g.Data {
		data[i] = float64(v)
		if v != 0 {
			nonzero++
		}
	}
	var bins [Bins8]int32
	Histogram8(g.Data, &bins)
	peak, peakCount := GetPeak(bins[:])

	s := &Stats{
		Width:     g.Width,
		Height:    g.Height,
		Min:       floats.Min(data),
		Max:       floats.Max(data),
		Peak:      uint8(peak),
		PeakCount: peakCount,
		Nonzero:   nonzero,
	}
	if len(data) > 1 {
		s.Mean, s.StdDev = stat.MeanStdDev(data, nil)
	} else {
		s.Mean = data[0]
	}
	return s, nil
}

func (s *Stats) String() string {
	return fmt.Sprintf("min %.0f max %.0f mean %.3f stddev %.3f peak %d (%d) nonzero %d",
		s.Min, s.Max, s.Mean, s.StdDev, s.Peak, s.PeakCount, s.Nonzero)
}
