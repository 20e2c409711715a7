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

package edge

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mlnoga/goldenedge/internal/frame"
	"github.com/mlnoga/goldenedge/internal/grid"
	"github.com/mlnoga/goldenedge/internal/ops"
	"github.com/mlnoga/goldenedge/internal/pgm"
)

// File name suffixes of the two golden dumps
const (
	PaddedSuffix = "_padded.pgm"
	SobelSuffix  = "_sobel.pgm"
)

// Writes the padded input and the final edge map of a frame as plain-text PGM files
// <stem>_padded.pgm and <stem>_sobel.pgm. Write failures are reported in the log
// and never stop the frame
type OpSaveGolden struct {
	ops.OpUnaryBase
	Dir string `json:"dir"` // output directory. Empty means beside the running binary
}

func init() { ops.SetOperatorFactory(func() ops.Operator { return NewOpSaveGoldenDefault() }) } // register the operator for JSON decoding

func NewOpSaveGoldenDefault() *OpSaveGolden { return NewOpSaveGolden("") }

func NewOpSaveGolden(dir string) *OpSaveGolden {
	op := OpSaveGolden{
		OpUnaryBase: ops.OpUnaryBase{OpBase: ops.OpBase{Type: "saveGolden", Active: true}},
		Dir:         dir,
	}
	op.OpUnaryBase.Apply = op.Apply // assign class method to superclass abstract method
	return &op
}

// Unmarshal the type from JSON with default values for missing entries
func (op *OpSaveGolden) UnmarshalJSON(data []byte) error {
	type defaults OpSaveGolden
	def := defaults(*NewOpSaveGoldenDefault())
	if err := json.Unmarshal(data, &def); err != nil {
		return err
	}
	*op = OpSaveGolden(def)
	op.OpUnaryBase.Apply = op.Apply // make method receiver point to op, not def
	return nil
}

func (op *OpSaveGolden) Apply(f *frame.Frame, c *ops.Context) (result *frame.Frame, err error) {
	if !op.Active {
		return f, nil
	}
	if err := SaveGolden(f, op.Dir, c.Log); err != nil {
		fmt.Fprintf(c.Log, "%d: Error: %s\n", f.ID, err.Error())
	}
	return f, nil
}

// Writes both golden dumps of an edge-detected frame into dir, or beside the running
// binary if dir is empty. Returns all failures joined. If the directory cannot be
// resolved, neither file is attempted
func SaveGolden(f *frame.Frame, dir string, log io.Writer) error {
	if f.Padded == nil || f.Edges == nil {
		return fmt.Errorf("%w: %d: no edges detected yet", ops.ErrInvalidInput, f.ID)
	}
	dir, err := OutputDir(dir)
	if err != nil {
		return err
	}

	stem := filepath.Join(dir, f.Stem())
	var errs []error
	for _, out := range []struct {
		fileName string
		g        *grid.Grid[uint8]
		style    pgm.Style
	}{
		{stem + PaddedSuffix, f.Padded, pgm.Padded},
		{stem + SobelSuffix, f.Edges, pgm.Final},
	} {
		fmt.Fprintf(log, "%d: Writing %s %s PGM to %s\n", f.ID, out.g.DimensionsToString(), out.style, out.fileName)
		if err := pgm.WriteFile(out.fileName, out.g, out.style); err != nil {
			errs = append(errs, fmt.Errorf("%w: writing %s: %s", ops.ErrIO, out.fileName, err.Error()))
		}
	}
	return errors.Join(errs...)
}

// Returns dir if set, else the directory of the running binary as invoked, without resolving symlinks
func OutputDir(dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}
	exe, err := executable()
	if err != nil {
		return "", fmt.Errorf("%w: %s", ops.ErrPathResolution, err.Error())
	}
	return filepath.Dir(exe), nil
}

// Replaced in tests
var executable = os.Executable
