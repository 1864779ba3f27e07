// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package buflist

// Chunk is an immutable view over a range of bytes. Chunks share their backing
// array, so slicing a chunk never copies.
type Chunk struct {
	b []byte
}

// NewChunk returns a chunk over b without copying. The caller must not modify
// b afterwards.
func NewChunk(b []byte) Chunk {
	return Chunk{b: b[:len(b):len(b)]}
}

// CopyChunk returns a chunk over a copy of b.
func CopyChunk(b []byte) Chunk {
	if len(b) == 0 {
		return Chunk{}
	}
	c := make([]byte, len(b))
	copy(c, b)
	return Chunk{b: c}
}

// Len returns the number of bytes in the chunk.
func (c Chunk) Len() int { return len(c.b) }

// IsEmpty returns true if the chunk has no bytes.
func (c Chunk) IsEmpty() bool { return len(c.b) == 0 }

// Bytes returns the chunk's bytes. The returned slice must not be modified.
// Its capacity is clipped, so appending to it always reallocates.
func (c Chunk) Bytes() []byte { return c.b }

// String returns the chunk's bytes as a string.
func (c Chunk) String() string { return string(c.b) }

// Slice returns the sub-range [i, j) of the chunk, sharing its storage.
func (c Chunk) Slice(i, j int) Chunk {
	return Chunk{b: c.b[i:j:j]}
}
