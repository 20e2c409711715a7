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
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mlnoga/goldenedge/internal/grid"
)

// ErrFormat is returned for malformed or unsupported PGM data
var ErrFormat = errors.New("invalid PGM data")

// Metadata of a parsed PGM file
type Header struct {
	Magic    string   // P2 or P5
	Comments []string // comment lines without the leading '#'
	Width    int
	Height   int
	MaxValue int  // 255 if the file omits it
	HasMax   bool // false for the padded dump variant
	Lines    int  // number of header lines, including the max-value or blank line
}

// Reads the named PGM file
func ReadFile(fileName string) (*grid.Grid[uint8], *Header, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return Read(f)
}

// Reads a P2 (ASCII) or P5 (binary) PGM with up to 8 bits per sample.
// A blank line in place of the max-value, as in padded dumps, implies 255.
func Read(r io.Reader) (*grid.Grid[uint8], *Header, error) {
	br := bufio.NewReader(r)
	h := &Header{MaxValue: MaxValue}

	line, err := readLine(br)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: missing magic number: %s", ErrFormat, err.Error())
	}
	h.Magic = strings.TrimSpace(line)
	h.Lines = 1
	if h.Magic != "P2" && h.Magic != "P5" {
		return nil, nil, fmt.Errorf("%w: unsupported magic '%s', want P2 or P5", ErrFormat, h.Magic)
	}

	// comments, then dimensions
	for {
		if line, err = readLine(br); err != nil {
			return nil, nil, fmt.Errorf("%w: missing dimensions: %s", ErrFormat, err.Error())
		}
		h.Lines++
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") {
			h.Comments = append(h.Comments, strings.TrimSpace(trimmed[1:]))
			continue
		}
		if trimmed != "" {
			break
		}
	}
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return nil, nil, fmt.Errorf("%w: dimensions line '%s'", ErrFormat, strings.TrimSpace(line))
	}
	if h.Width, err = strconv.Atoi(fields[0]); err != nil || h.Width <= 0 {
		return nil, nil, fmt.Errorf("%w: width '%s'", ErrFormat, fields[0])
	}
	if h.Height, err = strconv.Atoi(fields[1]); err != nil || h.Height <= 0 {
		return nil, nil, fmt.Errorf("%w: height '%s'", ErrFormat, fields[1])
	}

	// max-value, or a blank line for the padded variant
	if line, err = readLine(br); err != nil {
		return nil, nil, fmt.Errorf("%w: missing max-value: %s", ErrFormat, err.Error())
	}
	h.Lines++
	if trimmed := strings.TrimSpace(line); trimmed != "" {
		if h.MaxValue, err = strconv.Atoi(trimmed); err != nil || h.MaxValue <= 0 || h.MaxValue > MaxValue {
			return nil, nil, fmt.Errorf("%w: max-value '%s', want 1..%d", ErrFormat, trimmed, MaxValue)
		}
		h.HasMax = true
	} else if h.Magic == "P5" {
		return nil, nil, fmt.Errorf("%w: binary PGM without max-value", ErrFormat)
	}

	g, err := grid.New[uint8](h.Width, h.Height)
	if err != nil {
		return nil, nil, err
	}
	if h.Magic == "P5" {
		if _, err := io.ReadFull(br, g.Data); err != nil {
			return nil, nil, fmt.Errorf("%w: truncated pixel data: %s", ErrFormat, err.Error())
		}
	} else if err := readASCII(br, g.Data); err != nil {
		return nil, nil, err
	}
	for i, v := range g.Data {
		if int(v) > h.MaxValue {
			return nil, nil, fmt.Errorf("%w: sample %d value %d above max-value %d", ErrFormat, i, v, h.MaxValue)
		}
	}
	return g, h, nil
}

// Reads whitespace separated decimal samples until data is full
func readASCII(br *bufio.Reader, data []uint8) error {
	sc := bufio.NewScanner(br)
	sc.Split(bufio.ScanWords)
	i := 0
	for i < len(data) && sc.Scan() {
		v, err := strconv.Atoi(sc.Text())
		if err != nil || v < 0 || v > MaxValue {
			return fmt.Errorf("%w: sample %d '%s'", ErrFormat, i, sc.Text())
		}
		data[i] = uint8(v)
		i++
	}
	if err := sc.Err(); err != nil {
		return err
	}
	if i < len(data) {
		return fmt.Errorf("%w: %d samples, want %d", ErrFormat, i, len(data))
	}
	return nil
}

// Reads one line without the line terminator. Fails with io.ErrUnexpectedEOF at end of input
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
