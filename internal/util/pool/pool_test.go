// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetAllocates(t *testing.T) {
	p := New[[]byte]()
	v := p.Get()
	require.NotNil(t, v)
	require.Empty(t, *v)
}

func TestPutResets(t *testing.T) {
	var reset int
	p := NewWithReset(func(v *[]int) {
		reset++
		*v = (*v)[:0]
	})

	v := p.Get()
	*v = append(*v, 1, 2, 3)
	p.Put(v)
	require.Equal(t, 1, reset)
	require.Empty(t, *v)
}
