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
	"fmt"

	"github.com/mlnoga/goldenedge/internal/frame"
	"github.com/mlnoga/goldenedge/internal/ops"
	"github.com/mlnoga/goldenedge/internal/stats"
)

// Logs statistics of the current image of a frame
type OpStats struct {
	ops.OpUnaryBase
}

func init() { ops.SetOperatorFactory(func() ops.Operator { return NewOpStats() }) } // register the operator for JSON decoding

func NewOpStats() *OpStats {
	op := OpStats{
		OpUnaryBase: ops.OpUnaryBase{OpBase: ops.OpBase{Type: "stats", Active: true}},
	}
	op.OpUnaryBase.Apply = op.Apply // assign class method to superclass abstract method
	return &op
}

// Unmarshal the type from JSON, keeping the method receiver
func (op *OpStats) UnmarshalJSON(data []byte) error {
	op.OpBase = ops.OpBase{Type: "stats", Active: true}
	if err := json.Unmarshal(data, &op.OpBase); err != nil {
		return err
	}
	op.OpUnaryBase.Apply = op.Apply
	return nil
}

func (op *OpStats) Apply(f *frame.Frame, c *ops.Context) (result *frame.Frame, err error) {
	if !op.Active {
		return f, nil
	}
	if f.Stats, err = stats.Of(f.Current()); err != nil {
		return nil, fmt.Errorf("%w: %d: %s", ops.ErrInvalidInput, f.ID, err.Error())
	}
	fmt.Fprintf(c.Log, "%d: %s %s: %v\n", f.ID, f.FileName, f.DimensionsToString(), f.Stats)
	return f, nil
}
