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
	"testing"

	"github.com/mlnoga/goldenedge/internal/grid"
)

func TestStem(t *testing.T) {
	tcs := []struct {
		fileName, want string
	}{
		{"", "frame"},
		{"lena.png", "lena"},
		{"dir/sub/image.test.pgm", "image.test"},
		{"noext", "noext"},
	}
	for _, tc := range tcs {
		f := &Frame{FileName: tc.fileName}
		if got := f.Stem(); got != tc.want {
			t.Errorf("Stem(%q)=%q; want %q", tc.fileName, got, tc.want)
		}
	}
}

func TestNewAndCurrent(t *testing.T) {
	g, _ := grid.FromRows([][]uint8{{1, 2}, {3, 4}})
	f, err := New(3, "x.pgm", g)
	if err != nil {
		t.Fatal(err)
	}
	if f.Stats == nil || f.Stats.Max != 4 {
		t.Errorf("stats=%v; want max 4", f.Stats)
	}
	if f.Current() != g {
		t.Errorf("Current() is not the input before detection")
	}
	edges, _ := grid.New[uint8](2, 2)
	f.Edges = edges
	if f.Current() != edges {
		t.Errorf("Current() is not the edges after detection")
	}
	if f.DimensionsToString() != "2x2" {
		t.Errorf("dims=%s; want 2x2", f.DimensionsToString())
	}
	if _, err := New(0, "", &grid.Grid[uint8]{}); err == nil {
		t.Errorf("New accepted an empty grid")
	}
}
