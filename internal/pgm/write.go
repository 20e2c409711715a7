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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mlnoga/goldenedge/internal/grid"
)

// Header style of a plain-text (P2) PGM file
type Style int

const (
	Final  Style = iota // comment "# Created by golden model", max-value line 255
	Padded              // comment "# Created by golden model (padded)", blank line instead of a max-value
)

const (
	commentFinal  = "# Created by golden model"
	commentPadded = "# Created by golden model (padded)"
	MaxValue      = 255
	HeaderLines   = 4 // lines before the first sample, for both styles
)

func (s Style) String() string {
	switch s {
	case Final:
		return "final"
	case Padded:
		return "padded"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// Writes an 8-bit grid as plain-text PGM, one decimal sample per line in row-major order
func Write(w io.Writer, g *grid.Grid[uint8], style Style) error {
	if err := g.Validate(); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	switch style {
	case Final:
		fmt.Fprintf(bw, "P2\n%s\n%d %d\n%d\n", commentFinal, g.Width, g.Height, MaxValue)
	case Padded:
		fmt.Fprintf(bw, "P2\n%s\n%d %d\n\n", commentPadded, g.Width, g.Height)
	default:
		return fmt.Errorf("unknown PGM header style %d", int(style))
	}

	buf := make([]byte, 0, 4)
	for _, v := range g.Data {
		buf = strconv.AppendUint(buf[:0], uint64(v), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Creates or truncates the named file and writes the grid to it. The file is closed on all paths
func WriteFile(fileName string, g *grid.Grid[uint8], style Style) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Write(f, g, style)
}
