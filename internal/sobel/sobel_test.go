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
	"testing"

	"github.com/mlnoga/goldenedge/internal/grid"
	"github.com/valyala/fastrand"
)

func TestCombineL1AndCrop(t *testing.T) {
	gx, _ := grid.FromRows([][]int32{
		{9, 9, 9, 9},
		{9, 3, -4, 9},
		{9, 9, 9, 9},
	})
	gy, _ := grid.FromRows([][]int32{
		{9, 9, 9, 9},
		{9, -4, 0, 9},
		{9, 9, 9, 9},
	})
	m, err := Combine(gx, gy, 1, 2, 1)
	if err != nil {
		t.Fatal(err)
	}
	if m.Width != 2 || m.Height != 1 {
		t.Fatalf("size=%s; want 2x1", m.DimensionsToString())
	}
	// L1, not Euclidean: |3|+|-4|=7 where sqrt would give 5
	if m.At(0, 0) != 7 || m.At(1, 0) != 4 {
		t.Errorf("m=%v; want [7 4]", m.Data)
	}

	if _, err := Combine(gx, gy, 1, 3, 1); !errors.Is(err, grid.ErrDimensions) {
		t.Errorf("mismatched extent err=%v; want ErrDimensions", err)
	}
}

func TestCombineNonNegative(t *testing.T) {
	rng := fastrand.RNG{}
	gx, _ := grid.New[int32](8, 6)
	gy, _ := grid.New[int32](8, 6)
	for i := range gx.Data {
		gx.Data[i] = int32(rng.Uint32n(2041)) - 1020
		gy.Data[i] = int32(rng.Uint32n(2041)) - 1020
	}
	m, err := Combine(gx, gy, 1, 6, 4)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			want := abs32(gx.At(x+1, y+1)) + abs32(gy.At(x+1, y+1))
			if m.At(x, y) < 0 || m.At(x, y) != want {
				t.Errorf("m(%d,%d)=%d; want %d", x, y, m.At(x, y), want)
			}
		}
	}
}

func TestQuantizeSaturates(t *testing.T) {
	in, _ := grid.FromRows([][]float64{{-3, 0, 12.9, 255, 255.7, 1020}})
	q, err := Quantize(in)
	if err != nil {
		t.Fatal(err)
	}
	want := []uint8{0, 0, 12, 255, 255, 255}
	for i, v := range q.Data {
		if v != want[i] {
			t.Errorf("q[%d]=%d; want %d", i, v, want[i])
		}
	}

	wide, _ := grid.FromRows([][]int32{{-1, 128, 256, 1020}})
	qi, _ := Quantize(wide)
	wantI := []uint8{0, 128, 255, 255}
	for i, v := range qi.Data {
		if v != wantI[i] {
			t.Errorf("qi[%d]=%d; want %d", i, v, wantI[i])
		}
	}
}

func TestUniformImageHasNoEdges(t *testing.T) {
	g, _ := grid.New[uint8](5, 5)
	g.Fill(100)
	res, err := Detect(g)
	if err != nil {
		t.Fatal(err)
	}
	if res.Padded.Width != 7 || res.Padded.Height != 7 {
		t.Fatalf("padded size=%s; want 7x7", res.Padded.DimensionsToString())
	}
	for i, v := range res.Padded.Data {
		if v != 100 {
			t.Errorf("padded[%d]=%d; want 100", i, v)
		}
	}
	if res.Edges.Width != 5 || res.Edges.Height != 5 {
		t.Fatalf("edges size=%s; want 5x5", res.Edges.DimensionsToString())
	}
	for i, v := range res.Edges.Data {
		if v != 0 || res.Magnitude.Data[i] != 0 {
			t.Errorf("edges[%d]=%d magnitude=%d; want 0", i, v, res.Magnitude.Data[i])
		}
	}
}

func TestHorizontalEdge(t *testing.T) {
	g, _ := grid.FromRows([][]uint8{
		{0, 0, 0},
		{0, 0, 0},
		{255, 255, 255},
	})
	res, err := (&Pipeline{KeepGradients: true}).Run(g)
	if err != nil {
		t.Fatal(err)
	}
	// center of the input is (2,2) in padded coordinates
	if gy := res.Gy.At(2, 2); gy != -1020 {
		t.Errorf("Gy(center)=%d; want -1020", gy)
	}
	if gx := res.Gx.At(2, 2); gx != 0 {
		t.Errorf("Gx(center)=%d; want 0", gx)
	}
	if m := res.Magnitude.At(1, 1); m != 1020 {
		t.Errorf("magnitude(center)=%d; want 1020", m)
	}
	if e := res.Edges.At(1, 1); e != 255 {
		t.Errorf("edges(center)=%d; want 255", e)
	}
	// top row has only zeros in its neighborhood
	for x := 0; x < 3; x++ {
		if res.Edges.At(x, 0) != 0 {
			t.Errorf("edges(%d,0)=%d; want 0", x, res.Edges.At(x, 0))
		}
	}
}

func TestOutputIndependentOfEdgePolicy(t *testing.T) {
	rng := fastrand.RNG{}
	for iter := 0; iter < 20; iter++ {
		g := randomGrid(&rng, 1+int(rng.Uint32n(12)), 1+int(rng.Uint32n(12)))
		ref, err := (&Pipeline{Policy: Reflect101}).Run(g)
		if err != nil {
			t.Fatal(err)
		}
		for _, policy := range edgePolicies {
			for _, parallel := range []bool{false, true} {
				res, err := (&Pipeline{Policy: policy, Parallel: parallel}).Run(g)
				if err != nil {
					t.Fatal(err)
				}
				if !grid.Equal(ref.Edges, res.Edges) || !grid.Equal(ref.Magnitude, res.Magnitude) {
					t.Errorf("%s parallel=%v %s: output differs from reflect101", policy.Name(), parallel, g.DimensionsToString())
				}
			}
		}
	}
}

func TestQuantizedOutputBounded(t *testing.T) {
	rng := fastrand.RNG{}
	g := randomGrid(&rng, 31, 17)
	res, err := Detect(g)
	if err != nil {
		t.Fatal(err)
	}
	if res.Gx != nil || res.Gy != nil {
		t.Errorf("gradients kept without KeepGradients")
	}
	for i, m := range res.Magnitude.Data {
		want := m
		if want > 255 {
			want = 255
		}
		if int32(res.Edges.Data[i]) != want {
			t.Errorf("edges[%d]=%d for magnitude %d; want %d", i, res.Edges.Data[i], m, want)
		}
	}
}

func TestRunRejectsEmpty(t *testing.T) {
	if _, err := Detect(&grid.Grid[uint8]{}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("err=%v; want ErrInvalidInput", err)
	}
	if _, err := Detect(nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("nil err=%v; want ErrInvalidInput", err)
	}
}

func TestEdgePolicyIndex(t *testing.T) {
	tcs := []struct {
		policy EdgePolicy
		n      int
		in     []int
		want   []int
	}{
		{Reflect101, 5, []int{-2, -1, 0, 4, 5, 6}, []int{2, 1, 0, 4, 3, 2}},
		{Reflect, 5, []int{-2, -1, 0, 4, 5, 6}, []int{1, 0, 0, 4, 4, 3}},
		{Replicate, 5, []int{-2, -1, 0, 4, 5, 6}, []int{0, 0, 0, 4, 4, 4}},
		{Wrap, 5, []int{-2, -1, 0, 4, 5, 6}, []int{3, 4, 0, 4, 0, 1}},
		{Zero, 5, []int{-2, -1, 0, 4, 5, 6}, []int{-1, -1, 0, 4, -1, -1}},
		{Reflect101, 1, []int{-1, 1}, []int{0, 0}},
	}
	for _, tc := range tcs {
		for i, in := range tc.in {
			if got := tc.policy.Index(in, tc.n); got != tc.want[i] {
				t.Errorf("%s.Index(%d,%d)=%d; want %d", tc.policy.Name(), in, tc.n, got, tc.want[i])
			}
		}
	}
}

func TestEdgePolicyByName(t *testing.T) {
	for _, p := range edgePolicies {
		got, err := EdgePolicyByName(p.Name())
		if err != nil || got != p {
			t.Errorf("EdgePolicyByName(%s)=%v,%v; want %v", p.Name(), got, err, p)
		}
	}
	if p, _ := EdgePolicyByName(""); p != Reflect101 {
		t.Errorf("default policy=%s; want reflect101", p.Name())
	}
	if _, err := EdgePolicyByName("mirror"); err == nil {
		t.Errorf("unknown policy accepted")
	}
}
