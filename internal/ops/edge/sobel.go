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

	"github.com/mlnoga/goldenedge/internal/frame"
	"github.com/mlnoga/goldenedge/internal/ops"
	"github.com/mlnoga/goldenedge/internal/sobel"
	"github.com/mlnoga/goldenedge/internal/stats"
)

// Detects edges in a frame. Replaces the frame statistics with those of the edge map
type OpSobel struct {
	ops.OpUnaryBase
	EdgePolicy string `json:"edgePolicy"` // reflect101, reflect, replicate, wrap or zero
	Parallel   bool   `json:"parallel"`   // run both gradient convolutions concurrently
}

func init() { ops.SetOperatorFactory(func() ops.Operator { return NewOpSobelDefault() }) } // register the operator for JSON decoding

func NewOpSobelDefault() *OpSobel { return NewOpSobel(sobel.Reflect101.Name(), false) }

func NewOpSobel(edgePolicy string, parallel bool) *OpSobel {
	op := OpSobel{
		OpUnaryBase: ops.OpUnaryBase{OpBase: ops.OpBase{Type: "sobel", Active: true}},
		EdgePolicy:  edgePolicy,
		Parallel:    parallel,
	}
	op.OpUnaryBase.Apply = op.Apply // assign class method to superclass abstract method
	return &op
}

// Unmarshal the type from JSON with default values for missing entries
func (op *OpSobel) UnmarshalJSON(data []byte) error {
	type defaults OpSobel
	def := defaults(*NewOpSobelDefault())
	if err := json.Unmarshal(data, &def); err != nil {
		return err
	}
	*op = OpSobel(def)
	op.OpUnaryBase.Apply = op.Apply // make method receiver point to op, not def
	_, err := op.Policy()
	return err
}

// Resolves the configured edge extension policy
func (op *OpSobel) Policy() (sobel.EdgePolicy, error) {
	return sobel.EdgePolicyByName(op.EdgePolicy)
}

func (op *OpSobel) Apply(f *frame.Frame, c *ops.Context) (result *frame.Frame, err error) {
	if !op.Active {
		return f, nil
	}
	policy, err := op.Policy()
	if err != nil {
		return nil, err
	}
	p := sobel.Pipeline{Policy: policy, Parallel: op.Parallel}
	res, err := p.Run(f.Gray)
	if err != nil {
		if errors.Is(err, sobel.ErrInvalidInput) {
			return nil, fmt.Errorf("%w: %d: %s", ops.ErrInvalidInput, f.ID, err.Error())
		}
		return nil, fmt.Errorf("%d: %w", f.ID, err)
	}
	f.Padded, f.Edges = res.Padded, res.Edges
	if f.Stats, err = stats.Of(f.Edges); err != nil {
		return nil, err
	}
	fmt.Fprintf(c.Log, "%d: Detected edges on %s padded grid with %s ring, edge map %v\n",
		f.ID, f.Padded.DimensionsToString(), policy.Name(), f.Stats)
	return f, nil
}
