// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package pool

import "sync"

// Pool is a typed [sync.Pool].
type Pool[T any] struct {
	pool  sync.Pool
	reset func(T)
}

// New returns a pool of *T that allocates with new(T).
func New[T any]() *Pool[*T] {
	return NewWithReset[T](nil)
}

// NewWithReset returns a pool of *T that calls reset on each value as it is
// returned to the pool.
func NewWithReset[T any](reset func(*T)) *Pool[*T] {
	p := &Pool[*T]{reset: reset}
	p.pool.New = func() any { return new(T) }
	return p
}

func (p *Pool[T]) Get() T {
	return p.pool.Get().(T)
}

func (p *Pool[T]) Put(v T) {
	if p.reset != nil {
		p.reset(v)
	}
	p.pool.Put(v)
}
