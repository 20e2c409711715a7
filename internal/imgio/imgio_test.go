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

package imgio

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/tiff"

	"github.com/mlnoga/goldenedge/internal/grid"
)

func testGrid() *grid.Grid[uint8] {
	g, _ := grid.FromRows([][]uint8{
		{0, 64, 128},
		{192, 255, 7},
	})
	return g
}

func TestLumaWeights(t *testing.T) {
	tcs := []struct {
		c    color.Color
		want uint8
	}{
		{color.RGBA{255, 255, 255, 255}, 255},
		{color.RGBA{0, 0, 0, 255}, 0},
		{color.RGBA{255, 0, 0, 255}, 76},
		{color.RGBA{0, 255, 0, 255}, 150},
		{color.RGBA{0, 0, 255, 255}, 29},
		{color.RGBA{0, 27, 225, 255}, 42}, // 41.499 in floating point
		{color.RGBA{10, 10, 10, 255}, 10},
		{color.NRGBA{0, 27, 225, 128}, 42},
		{color.NRGBA{255, 255, 255, 0}, 0},
		{color.Gray16{0xffff}, 255},
	}
	for _, tc := range tcs {
		if got := luma(tc.c); got != tc.want {
			t.Errorf("luma(%v)=%d; want %d", tc.c, got, tc.want)
		}
	}
}

func TestGrayFromSubImage(t *testing.T) {
	src := ToImage(testGrid())
	sub := src.SubImage(image.Rect(1, 0, 3, 2)).(*image.Gray)
	g, err := GrayFromImage(sub)
	if err != nil {
		t.Fatal(err)
	}
	want := []uint8{64, 128, 255, 7}
	for i, v := range g.Data {
		if v != want[i] {
			t.Errorf("g[%d]=%d; want %d", i, v, want[i])
		}
	}
}

func TestSaveAndLoadLossless(t *testing.T) {
	dir := t.TempDir()
	src := testGrid()
	for _, name := range []string{"a.png", "a.tif", "a.pgm"} {
		fileName := filepath.Join(dir, name)
		if err := SavePreview(fileName, src); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		got, err := LoadGray(fileName)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if !grid.Equal(src, got) {
			t.Errorf("%s: data=%v; want %v", name, got.Data, src.Data)
		}
	}
}

func TestLoadColorTIFF(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})
	img.SetRGBA(1, 0, color.RGBA{10, 10, 10, 255})
	fileName := filepath.Join(t.TempDir(), "color.tiff")
	f, err := os.Create(fileName)
	if err != nil {
		t.Fatal(err)
	}
	if err := tiff.Encode(f, img, nil); err != nil {
		t.Fatal(err)
	}
	f.Close()

	g, err := LoadGray(fileName)
	if err != nil {
		t.Fatal(err)
	}
	if g.At(0, 0) != 76 || g.At(1, 0) != 10 {
		t.Errorf("data=%v; want [76 10]", g.Data)
	}
}

func TestLoadColorPNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, color.NRGBA{0, 0, 255, 255})
	fileName := filepath.Join(t.TempDir(), "blue.png")
	f, _ := os.Create(fileName)
	png.Encode(f, img)
	f.Close()

	g, err := LoadGray(fileName)
	if err != nil {
		t.Fatal(err)
	}
	if g.At(0, 0) != 29 {
		t.Errorf("blue luma=%d; want 29", g.At(0, 0))
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadGray(filepath.Join(dir, "missing.png")); err == nil {
		t.Errorf("loading missing file succeeded")
	}
	junk := filepath.Join(dir, "junk.png")
	os.WriteFile(junk, []byte("not an image"), 0666)
	if _, err := LoadGray(junk); err == nil {
		t.Errorf("loading junk succeeded")
	}
	if err := SavePreview(filepath.Join(dir, "x.webp"), testGrid()); !errors.Is(err, ErrUnsupported) {
		t.Errorf("SavePreview(.webp) err=%v; want ErrUnsupported", err)
	}
}
