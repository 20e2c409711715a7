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
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	_ "golang.org/x/image/bmp" // register BMP decoder
	"golang.org/x/image/tiff"

	"github.com/mlnoga/goldenedge/internal/grid"
	"github.com/mlnoga/goldenedge/internal/pgm"
)

// ErrUnsupported is returned for file suffixes with no known encoder
var ErrUnsupported = errors.New("unsupported image format")

// Loads an image file as 8-bit grayscale. PGM files are read directly,
// PNG, JPEG, GIF, BMP and TIFF are decoded and converted to luma.
func LoadGray(fileName string) (*grid.Grid[uint8], error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	if ext == ".pgm" || ext == ".pnm" {
		g, _, err := pgm.ReadFile(fileName)
		return g, err
	}

	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(bufio.NewReader(f))
	if err != nil {
		return nil, err
	}
	return GrayFromImage(img)
}

// Converts a decoded image to an 8-bit gray grid. Color pixels are mapped to
// Y = 0.299 R + 0.587 G + 0.114 B in 14-bit fixed point, matching OpenCV's
// grayscale decoding bit for bit.
func GrayFromImage(img image.Image) (*grid.Grid[uint8], error) {
	b := img.Bounds()
	g, err := grid.New[uint8](b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}

	if gray, ok := img.(*image.Gray); ok {
		for y := 0; y < g.Height; y++ {
			start := gray.PixOffset(b.Min.X, b.Min.Y+y)
			copy(g.Row(y), gray.Pix[start:start+g.Width])
		}
		return g, nil
	}

	for y := 0; y < g.Height; y++ {
		row := g.Row(y)
		for x := 0; x < g.Width; x++ {
			row[x] = luma(img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return g, nil
}

func luma(c color.Color) uint8 {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return 0 // fully transparent
	}
	r, g, b := cf.RGB255()
	return uint8((lumaR*uint32(r) + lumaG*uint32(g) + lumaB*uint32(b) + lumaRound) >> lumaShift)
}

// Fixed point luma weights, scaled by 1<<lumaShift
const (
	lumaShift = 14
	lumaRound = 1 << (lumaShift - 1)
	lumaR     = 4899
	lumaG     = 9617
	lumaB     = 1868
)

// Converts a gray grid into a Go image sharing no memory with it
func ToImage(g *grid.Grid[uint8]) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.Width, g.Height))
	copy(img.Pix, g.Data)
	return img
}

// Writes an 8-bit preview of the grid. The suffix selects PGM, PNG, JPEG or TIFF
func SavePreview(fileName string, g *grid.Grid[uint8]) (err error) {
	if err := g.Validate(); err != nil {
		return err
	}
	ext := strings.ToLower(filepath.Ext(fileName))
	switch ext {
	case ".pgm":
		return pgm.WriteFile(fileName, g, pgm.Final)
	case ".png", ".jpg", ".jpeg", ".tif", ".tiff":
	default:
		return fmt.Errorf("%w: suffix '%s'", ErrUnsupported, ext)
	}

	file, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	writer := bufio.NewWriter(file)

	img := ToImage(g)
	switch ext {
	case ".png":
		err = png.Encode(writer, img)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(writer, img, &jpeg.Options{Quality: 95})
	default:
		err = tiff.Encode(writer, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	}
	if err != nil {
		return err
	}
	return writer.Flush()
}
