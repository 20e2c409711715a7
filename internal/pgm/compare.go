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

package pgm

import (
	"fmt"

	"github.com/mlnoga/goldenedge/internal/grid"
)

// A differing sample between two images
type Mismatch struct {
	Index int // row-major sample index
	Line  int // 1-based line of the sample in a file with one sample per line
	X, Y  int
	A, B  uint8
}

// Result of comparing the pixel data of two images
type Comparison struct {
	Mismatches []Mismatch // the first mismatches, up to the requested limit
	Total      int        // total number of differing samples
}

func (m Mismatch) String() string {
	return fmt.Sprintf("line %d, sample %d at (%d,%d): %d vs %d", m.Line, m.Index, m.X, m.Y, m.A, m.B)
}

// Compares pixel data sample by sample, ignoring headers. Keeps at most limit mismatches,
// all of them if limit<=0. Images of different size are an error. Line numbers
// assume the headers written by Write.
func Compare(a, b *grid.Grid[uint8], limit int) (*Comparison, error) {
	return compare(a, b, limit, HeaderLines)
}

func compare(a, b *grid.Grid[uint8], limit, headerLines int) (*Comparison, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if a.Width != b.Width || a.Height != b.Height {
		return nil, fmt.Errorf("%w: comparing %s with %s", grid.ErrDimensions, a.DimensionsToString(), b.DimensionsToString())
	}
	c := &Comparison{}
	for i, va := range a.Data {
		vb := b.Data[i]
		if va == vb {
			continue
		}
		c.Total++
		if limit <= 0 || len(c.Mismatches) < limit {
			c.Mismatches = append(c.Mismatches, Mismatch{Index: i, Line: headerLines + i + 1, X: i % a.Width, Y: i / a.Width, A: va, B: vb})
		}
	}
	return c, nil
}

// Reads and compares two PGM files
func CompareFiles(fileA, fileB string, limit int) (*Comparison, error) {
	a, ha, err := ReadFile(fileA)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fileA, err)
	}
	b, _, err := ReadFile(fileB)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fileB, err)
	}
	return compare(a, b, limit, ha.Lines)
}
