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

package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mlnoga/goldenedge/internal/grid"
	"github.com/mlnoga/goldenedge/internal/pgm"
)

func TestCmdCompare(t *testing.T) {
	dir := t.TempDir()
	a, _ := grid.FromRows([][]uint8{{1, 2, 3}, {4, 5, 6}})
	b, _ := grid.FromRows([][]uint8{{1, 0, 3}, {4, 5, 0}})
	fa, fb := filepath.Join(dir, "a.pgm"), filepath.Join(dir, "b.pgm")
	if err := pgm.WriteFile(fa, a, pgm.Final); err != nil {
		t.Fatal(err)
	}
	if err := pgm.WriteFile(fb, b, pgm.Padded); err != nil {
		t.Fatal(err)
	}

	var log bytes.Buffer
	if err := cmdCompare([]string{fa, fa}, &log); err != nil {
		t.Errorf("identical files: %v", err)
	}
	if !strings.Contains(log.String(), "No mismatches found.") {
		t.Errorf("log=%q; want no mismatches", log.String())
	}

	log.Reset()
	if err := cmdCompare([]string{fa, fb}, &log); err == nil {
		t.Errorf("differing files compared equal")
	}
	if !strings.Contains(log.String(), "Mismatch 1 at line 6,") || !strings.Contains(log.String(), "Mismatch 2 at line 10,") ||
		!strings.Contains(log.String(), "Found 2 mismatches") {
		t.Errorf("log=%q; want two mismatches", log.String())
	}

	if err := cmdCompare([]string{fa}, &log); err == nil {
		t.Errorf("odd argument count accepted")
	}
}

func TestCmdSobelOutsideWorkingDirectory(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	g, _ := grid.FromRows([][]uint8{{0, 0, 0}, {0, 0, 0}, {255, 255, 255}})
	abs := filepath.Join(in, "edge.pgm")
	if err := pgm.WriteFile(abs, g, pgm.Final); err != nil {
		t.Fatal(err)
	}
	sub := filepath.Join(in, "sub")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatal(err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(sub); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	savedDir := *dir
	*dir = out
	defer func() { *dir = savedDir }()

	for _, arg := range []string{abs, filepath.Join("..", "edge.pgm")} {
		os.Remove(filepath.Join(out, "edge_sobel.pgm"))
		if err := cmdSobel([]string{arg}, io.Discard); err != nil {
			t.Fatalf("%s: %v", arg, err)
		}
		got, _, err := pgm.ReadFile(filepath.Join(out, "edge_sobel.pgm"))
		if err != nil {
			t.Fatalf("%s: %v", arg, err)
		}
		if got.At(1, 1) != 255 || got.At(1, 0) != 0 {
			t.Errorf("%s: edges=%v; want horizontal edge", arg, got.Data)
		}
	}
}
