// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package buflist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChunkSliceSharesStorage(t *testing.T) {
	b := []byte("abcdef")
	c := NewChunk(b)
	s := c.Slice(2, 4)
	require.Equal(t, "cd", s.String())
	require.True(t, &b[2] == &s.Bytes()[0])
}

func TestChunkAppendDoesNotClobber(t *testing.T) {
	b := make([]byte, 3, 8)
	copy(b, "abc")
	c := NewChunk(b)

	// Appending to the chunk's bytes must not write into b's spare capacity.
	_ = append(c.Slice(0, 1).Bytes(), 'x')
	require.Equal(t, "abc", c.String())
	require.Equal(t, 3, cap(c.Bytes()))
}

func TestCopyChunk(t *testing.T) {
	b := []byte("abc")
	c := CopyChunk(b)
	b[0] = 'x'
	require.Equal(t, "abc", c.String())
	require.True(t, CopyChunk(nil).IsEmpty())
}
