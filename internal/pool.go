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

package internal

import (
	"runtime"
	"sync"
)

// Pool of constant sized arrays of given type, to reduce memory allocation overhead.
// One sync.Pool is kept per requested size.
type SlicePool[T any] struct {
	mu sync.RWMutex
	m  map[int]*sync.Pool
}

func NewSlicePool[T any]() *SlicePool[T] {
	return &SlicePool[T]{m: make(map[int]*sync.Pool)}
}

// Pool for the gradient accumulators of the edge detection pipeline
var PoolInt32 = NewSlicePool[int32]()

// Clears all memory pools and triggers garbage collection
func ClearPools() {
	PoolInt32.clear()
	runtime.GC()
}

func (p *SlicePool[T]) clear() {
	p.mu.Lock()
	p.m = make(map[int]*sync.Pool)
	p.mu.Unlock()
}

// Returns a pool for arrays of the given size
func (p *SlicePool[T]) sized(size int) *sync.Pool {
	p.mu.RLock()
	pool := p.m[size]
	p.mu.RUnlock()
	if pool != nil {
		return pool
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if pool = p.m[size]; pool == nil {
		pool = &sync.Pool{
			New: func() interface{} {
				return make([]T, size)
			},
		}
		p.m[size] = pool
	}
	return pool
}

// Retrieves an array of given size from the pool. Contents are undefined
func (p *SlicePool[T]) Get(size int) []T {
	return p.sized(size).Get().([]T)
}

// Returns an array to the pool. The caller must not use it afterwards
func (p *SlicePool[T]) Put(arr []T) {
	if cap(arr) == 0 {
		return
	}
	p.sized(cap(arr)).Put(arr[:cap(arr)])
}
