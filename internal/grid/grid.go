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

package grid

import (
	"errors"
	"fmt"
)

// ErrDimensions is returned for empty, negative or inconsistent grid shapes.
var ErrDimensions = errors.New("invalid grid dimensions")

// Sample is the set of pixel and accumulator types a grid can hold.
type Sample interface {
	~uint8 | ~int32 | ~int64 | ~float32 | ~float64
}

// A rectangular 2D array of samples, stored row-major.
// Invariant: Width*Height == len(Data).
type Grid[T Sample] struct {
	Width  int
	Height int
	Data   []T
}

// Creates a zero-filled grid of the given size
func New[T Sample](width, height int) (*Grid[T], error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimensions, width, height)
	}
	return &Grid[T]{Width: width, Height: height, Data: make([]T, width*height)}, nil
}

// Wraps existing row-major data. Data is not copied
func FromData[T Sample](width, height int, data []T) (*Grid[T], error) {
	if width <= 0 || height <= 0 || len(data) != width*height {
		return nil, fmt.Errorf("%w: %dx%d with %d samples", ErrDimensions, width, height, len(data))
	}
	return &Grid[T]{Width: width, Height: height, Data: data}, nil
}

// Copies a slice of rows into a new grid. Jagged input is rejected
func FromRows[T Sample](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrDimensions)
	}
	width := len(rows[0])
	g := &Grid[T]{Width: width, Height: len(rows), Data: make([]T, 0, width*len(rows))}
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d samples, want %d", ErrDimensions, y, len(row), width)
		}
		g.Data = append(g.Data, row...)
	}
	return g, nil
}

// Returns nil if the grid is non-empty and its backing storage matches its size
func (g *Grid[T]) Validate() error {
	if g == nil {
		return fmt.Errorf("%w: nil grid", ErrDimensions)
	}
	if g.Width <= 0 || g.Height <= 0 || len(g.Data) != g.Width*g.Height {
		return fmt.Errorf("%w: %dx%d with %d samples", ErrDimensions, g.Width, g.Height, len(g.Data))
	}
	return nil
}

func (g *Grid[T]) At(x, y int) T     { return g.Data[y*g.Width+x] }
func (g *Grid[T]) Set(x, y int, v T) { g.Data[y*g.Width+x] = v }

// Returns row y as a subslice of the backing storage
func (g *Grid[T]) Row(y int) []T {
	return g.Data[y*g.Width : (y+1)*g.Width]
}

func (g *Grid[T]) DimensionsToString() string {
	return fmt.Sprintf("%dx%d", g.Width, g.Height)
}

// Returns a deep copy
func (g *Grid[T]) Clone() *Grid[T] {
	return &Grid[T]{Width: g.Width, Height: g.Height, Data: append([]T(nil), g.Data...)}
}

// Copies the rectangle [x0,x0+width) x [y0,y0+height) into a new grid
func (g *Grid[T]) Crop(x0, y0, width, height int) (*Grid[T], error) {
	if x0 < 0 || y0 < 0 || width <= 0 || height <= 0 || x0+width > g.Width || y0+height > g.Height {
		return nil, fmt.Errorf("%w: crop %dx%d+%d+%d from %s", ErrDimensions, width, height, x0, y0, g.DimensionsToString())
	}
	res := &Grid[T]{Width: width, Height: height, Data: make([]T, width*height)}
	for y := 0; y < height; y++ {
		src := y0 + y
		copy(res.Data[y*width:(y+1)*width], g.Data[src*g.Width+x0:src*g.Width+x0+width])
	}
	return res, nil
}

// Tells whether a and b have the same shape and samples
func Equal[T Sample](a, b *Grid[T]) bool {
	if a.Width != b.Width || a.Height != b.Height || len(a.Data) != len(b.Data) {
		return false
	}
	for i, v := range a.Data {
		if v != b.Data[i] {
			return false
		}
	}
	return true
}

// Fills every sample with v
func (g *Grid[T]) Fill(v T) {
	for i := range g.Data {
		g.Data[i] = v
	}
}
