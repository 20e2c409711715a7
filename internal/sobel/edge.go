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
	"fmt"
	"strings"
)

// Maps a coordinate outside [0,n) back into range during convolution.
// Index returns -1 if the sample is to be treated as zero.
type EdgePolicy interface {
	Name() string
	Index(i, n int) int
}

type edgeReflect101 struct{}
type edgeReflect struct{}
type edgeReplicate struct{}
type edgeWrap struct{}
type edgeZero struct{}

var (
	Reflect101 EdgePolicy = edgeReflect101{} // gfedcb|abcdefgh|gfedcba, the usual filtering default
	Reflect    EdgePolicy = edgeReflect{}    // fedcba|abcdefgh|hgfedcb
	Replicate  EdgePolicy = edgeReplicate{}  // aaaaaa|abcdefgh|hhhhhhh
	Wrap       EdgePolicy = edgeWrap{}       // cdefgh|abcdefgh|abcdefg
	Zero       EdgePolicy = edgeZero{}       // 000000|abcdefgh|0000000
)

var edgePolicies = []EdgePolicy{Reflect101, Reflect, Replicate, Wrap, Zero}

// Looks up an edge policy by name. The empty name selects Reflect101
func EdgePolicyByName(name string) (EdgePolicy, error) {
	if name == "" {
		return Reflect101, nil
	}
	for _, p := range edgePolicies {
		if strings.EqualFold(p.Name(), name) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("unknown edge policy '%s'", name)
}

func (edgeReflect101) Name() string { return "reflect101" }
func (edgeReflect101) Index(i, n int) int {
	if n == 1 {
		return 0
	}
	for i < 0 || i >= n {
		if i < 0 {
			i = -i
		} else {
			i = 2*n - 2 - i
		}
	}
	return i
}

func (edgeReflect) Name() string { return "reflect" }
func (edgeReflect) Index(i, n int) int {
	for i < 0 || i >= n {
		if i < 0 {
			i = -i - 1
		} else {
			i = 2*n - 1 - i
		}
	}
	return i
}

func (edgeReplicate) Name() string { return "replicate" }
func (edgeReplicate) Index(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func (edgeWrap) Name() string { return "wrap" }
func (edgeWrap) Index(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

func (edgeZero) Name() string { return "zero" }
func (edgeZero) Index(i, n int) int {
	if i < 0 || i >= n {
		return -1
	}
	return i
}
