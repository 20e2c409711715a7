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

package sobel

import (
	"errors"
	"fmt"
	"sync"

	"github.com/mlnoga/goldenedge/internal"
	"github.com/mlnoga/goldenedge/internal/grid"
)

// ErrInvalidInput is returned for empty or malformed input images
var ErrInvalidInput = errors.New("invalid input image")

// Edge detection pipeline: replicate border, convolve with Gx and Gy,
// combine to L1 magnitude, crop and quantize to 8 bits.
type Pipeline struct {
	Policy        EdgePolicy // edge extension for the outermost ring of the padded grid. Nil means Reflect101
	Parallel      bool       // run the two convolutions concurrently
	KeepGradients bool       // keep Gx and Gy in the result, else their buffers are recycled
}

// Intermediate and final grids of one pipeline run
type Result struct {
	Padded    *grid.Grid[uint8] // input with replicated border
	Gx, Gy    *grid.Grid[int32] // directional gradients over the padded extent, if kept
	Magnitude *grid.Grid[int32] // |Gx|+|Gy| cropped to the input size
	Edges     *grid.Grid[uint8] // quantized magnitude
}

// Runs the pipeline with default settings
func Detect(g *grid.Grid[uint8]) (*Result, error) {
	return (&Pipeline{}).Run(g)
}

func (p *Pipeline) Run(g *grid.Grid[uint8]) (res *Result, err error) {
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}
	policy := p.Policy
	if policy == nil {
		policy = Reflect101
	}

	res = &Result{}
	if res.Padded, err = Pad(g, Border); err != nil {
		return nil, err
	}

	size := len(res.Padded.Data)
	dx, err := p.gradientGrid(res.Padded, size)
	if err != nil {
		return nil, err
	}
	dy, err := p.gradientGrid(res.Padded, size)
	if err != nil {
		return nil, err
	}
	if !p.KeepGradients {
		defer internal.PoolInt32.Put(dx.Data)
		defer internal.PoolInt32.Put(dy.Data)
	}

	var errX, errY error
	if p.Parallel {
		var wg sync.WaitGroup
		wg.Add(2)
		go func() { defer wg.Done(); errX = ConvolveInto(dx, res.Padded, gx, policy) }()
		go func() { defer wg.Done(); errY = ConvolveInto(dy, res.Padded, gy, policy) }()
		wg.Wait()
	} else {
		errX = ConvolveInto(dx, res.Padded, gx, policy)
		errY = ConvolveInto(dy, res.Padded, gy, policy)
	}
	if errX != nil {
		return nil, errX
	}
	if errY != nil {
		return nil, errY
	}

	if res.Magnitude, err = Combine(dx, dy, Border, g.Width, g.Height); err != nil {
		return nil, err
	}
	if res.Edges, err = Quantize(res.Magnitude); err != nil {
		return nil, err
	}
	if p.KeepGradients {
		res.Gx, res.Gy = dx, dy
	}
	return res, nil
}

// Allocates a gradient grid matching the padded input, from the pool unless it is kept
func (p *Pipeline) gradientGrid(padded *grid.Grid[uint8], size int) (*grid.Grid[int32], error) {
	var data []int32
	if p.KeepGradients {
		data = make([]int32, size)
	} else {
		data = internal.PoolInt32.Get(size)
	}
	return grid.FromData(padded.Width, padded.Height, data[:size])
}
