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

package ops

import "errors"

// Error kinds reported by operators. Match with errors.Is
var (
	ErrInvalidInput   = errors.New("invalid input")   // image missing, empty or undecodable; fatal for that image
	ErrIO             = errors.New("i/o error")       // an output file could not be written; the run continues
	ErrPathResolution = errors.New("cannot resolve output directory")
)
