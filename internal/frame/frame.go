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

package frame

import (
	"path/filepath"
	"strings"

	"github.com/mlnoga/goldenedge/internal/grid"
	"github.com/mlnoga/goldenedge/internal/stats"
)

// One image flowing through the operators
type Frame struct {
	ID       int    // sequence number, used as a log prefix
	FileName string // source file, empty for synthetic frames

	Gray   *grid.Grid[uint8] // 8-bit input
	Padded *grid.Grid[uint8] // input after border replication, set by edge detection
	Edges  *grid.Grid[uint8] // quantized gradient magnitude, same size as Gray

	Stats *stats.Stats // statistics of Gray, or of Edges once detected
}

// Creates a frame from a gray grid and calculates its statistics
func New(id int, fileName string, gray *grid.Grid[uint8]) (*Frame, error) {
	s, err := stats.Of(gray)
	if err != nil {
		return nil, err
	}
	return &Frame{ID: id, FileName: fileName, Gray: gray, Stats: s}, nil
}

// Returns the base name of the source file without directory and extension.
// Frames without a source file are named "frame".
func (f *Frame) Stem() string {
	if f.FileName == "" {
		return "frame"
	}
	base := filepath.Base(f.FileName)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Returns the image that downstream operators should see: the edges once
// detected, else the input
func (f *Frame) Current() *grid.Grid[uint8] {
	if f.Edges != nil {
		return f.Edges
	}
	return f.Gray
}

func (f *Frame) DimensionsToString() string {
	return f.Current().DimensionsToString()
}
