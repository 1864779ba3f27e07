// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package buflist

import (
	"fmt"
	"io"
	"math"
	"slices"
)

// Cursor provides non-destructive random access to the chunks of a [BufList].
// It behaves like a [bytes.Reader] over the concatenation of the chunks.
//
// The cursor takes a snapshot of the list's chunks when it is created. Pushing
// to or consuming from the list afterwards does not change what the cursor
// reads.
type Cursor struct {
	chunks []Chunk

	// start[i] is the position of the first byte of chunks[i]. There is one
	// more entry than there are chunks: the last is the total size.
	start []uint64

	// The chunk the cursor points to, kept in sync with pos. It is
	// len(chunks) iff pos is at or past the end.
	chunk int

	// The position in the stream, kept in sync with chunk.
	pos uint64
}

var _ io.ReadSeeker = (*Cursor)(nil)
var _ io.ReaderAt = (*Cursor)(nil)
var _ io.ByteScanner = (*Cursor)(nil)
var _ io.WriterTo = (*Cursor)(nil)

// NewCursor returns a cursor positioned at the start of l.
func NewCursor(l *BufList) *Cursor {
	chunks := l.Chunks()
	start := make([]uint64, 0, len(chunks)+1)
	var next uint64
	for _, c := range chunks {
		start = append(start, next)
		next += uint64(c.Len())
	}
	start = append(start, next)

	return &Cursor{chunks: chunks, start: start}
}

// List returns a list of the chunks the cursor reads from.
func (c *Cursor) List() *BufList {
	return &BufList{bufs: slices.Clone(c.chunks), size: int(c.size())}
}

// Clone returns an independent cursor at the same position.
func (c *Cursor) Clone() *Cursor {
	d := *c
	return &d
}

// Position returns the current position.
func (c *Cursor) Position() uint64 { return c.pos }

// SetPosition moves the cursor to pos. Positions past the end are allowed. A
// position above [math.MaxInt64] cannot be reported by Seek, so Seek with
// [io.SeekCurrent] fails with [ErrInvalidSeek] until the cursor is moved back.
func (c *Cursor) SetPosition(pos uint64) { c.setPos(pos) }

// Reset moves the cursor back to the start.
func (c *Cursor) Reset() {
	c.chunk, c.pos = 0, 0
}

// Size returns the total number of bytes.
func (c *Cursor) Size() int64 { return int64(c.size()) }

// Len returns the number of bytes between the position and the end.
func (c *Cursor) Len() int {
	if c.pos >= c.size() {
		return 0
	}
	return int(c.size() - c.pos)
}

// Seek implements [io.Seeker]. Seeking past the end is allowed; seeking to a
// negative position or one that does not fit in an int64 fails with
// [ErrInvalidSeek].
func (c *Cursor) Seek(offset int64, whence int) (int64, error) {
	var base uint64
	switch whence {
	case io.SeekStart:
		base = 0
	case io.SeekCurrent:
		base = c.pos
	case io.SeekEnd:
		base = c.size()
	default:
		return 0, ErrInvalidWhence
	}

	var pos uint64
	if offset >= 0 {
		pos = base + uint64(offset)
		if pos < base {
			return 0, ErrInvalidSeek
		}
	} else {
		// -(offset+1) cannot overflow, unlike -offset
		d := uint64(-(offset + 1)) + 1
		if d > base {
			return 0, ErrInvalidSeek
		}
		pos = base - d
	}
	if pos > math.MaxInt64 {
		return 0, ErrInvalidSeek
	}

	c.setPos(pos)
	return int64(pos), nil
}

// Read implements [io.Reader]. A single call copies across as many chunks as
// needed to fill p. At or past the end it returns 0, [io.EOF].
func (c *Cursor) Read(p []byte) (int, error) {
	if c.pos >= c.size() {
		return 0, io.EOF
	}
	return c.read(p), nil
}

// ReadVectored reads into each of bufs in turn, stopping after the first one
// that is not filled completely. At or past the end it returns 0, [io.EOF].
func (c *Cursor) ReadVectored(bufs [][]byte) (int, error) {
	if c.pos >= c.size() {
		return 0, io.EOF
	}

	var n int
	for _, b := range bufs {
		m := c.read(b)
		n += m
		if m < len(b) {
			break
		}
	}
	return n, nil
}

// ReadExact fills p completely or, if fewer than len(p) bytes remain, returns
// a [*ReadExactError] and leaves the position unchanged.
func (c *Cursor) ReadExact(p []byte) error {
	var remaining uint64
	if c.pos < c.size() {
		remaining = c.size() - c.pos
	}
	if remaining < uint64(len(p)) {
		return &ReadExactError{Remaining: remaining, Requested: len(p)}
	}

	c.read(p)
	return nil
}

// ReadAt implements [io.ReaderAt]. It neither uses nor changes the position.
func (c *Cursor) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, ErrInvalidOffset
	}
	if uint64(off) >= c.size() {
		return 0, io.EOF
	}

	d := Cursor{chunks: c.chunks, start: c.start}
	d.setPos(uint64(off))
	n := d.read(p)
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// ReadByte implements [io.ByteReader].
func (c *Cursor) ReadByte() (byte, error) {
	chunk, off, ok := c.current()
	if !ok {
		return 0, io.EOF
	}
	b := chunk.b[off]
	c.step(1, chunk.Len()-off)
	return b, nil
}

// UnreadByte implements [io.ByteScanner] by moving the position back one byte.
func (c *Cursor) UnreadByte() error {
	if c.pos == 0 {
		return ErrUnreadAtStart
	}
	c.setPos(c.pos - 1)
	return nil
}

// WriteTo implements [io.WriterTo]. Each chunk is written directly, without
// copying.
func (c *Cursor) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for {
		chunk, off, ok := c.current()
		if !ok {
			return n, nil
		}

		b := chunk.b[off:]
		m, err := w.Write(b)
		if m > len(b) {
			panic("buflist: invalid Write count")
		}
		c.step(m, len(b))
		n += int64(m)
		if err != nil {
			return n, err
		}
		if m != len(b) {
			return n, io.ErrShortWrite
		}
	}
}

// FillBuf returns the rest of the current chunk from the position on, without
// consuming it. The result is empty iff the position is at or past the end.
func (c *Cursor) FillBuf() []byte {
	chunk, off, ok := c.current()
	if !ok {
		return nil
	}
	return chunk.b[off:]
}

// Consume moves the position forward by n bytes. It panics if n is negative
// or if the position would overflow.
func (c *Cursor) Consume(n int) {
	if n < 0 {
		panic("buflist: cannot consume a negative count")
	}
	pos := c.pos + uint64(n)
	if pos < c.pos {
		panic(fmt.Sprintf("buflist: cannot consume %d bytes at position %d", n, c.pos))
	}
	c.setPos(pos)
}

func (c *Cursor) size() uint64 {
	return c.start[len(c.start)-1]
}

// startOf returns the start of chunk i, or the end marker if i is past the
// last entry of the index.
func (c *Cursor) startOf(i int) offset {
	if i < len(c.start) {
		return at(c.start[i])
	}
	return endOffset
}

// current returns the chunk the cursor points to and the position within it.
func (c *Cursor) current() (Chunk, int, bool) {
	if c.chunk >= len(c.chunks) {
		return Chunk{}, 0, false
	}
	return c.chunks[c.chunk], int(c.pos - c.start[c.chunk]), true
}

// read copies from the position into p until p is full or the data runs out.
func (c *Cursor) read(p []byte) int {
	var n int
	for n < len(p) {
		chunk, off, ok := c.current()
		if !ok {
			break
		}

		m := copy(p[n:], chunk.b[off:])
		c.step(m, chunk.Len()-off)
		n += m
	}
	return n
}

// step moves forward n bytes within the current chunk, which has rem bytes
// left after the position.
func (c *Cursor) step(n, rem int) {
	c.pos += uint64(n)
	if n == rem {
		c.chunk++
	}
}

// setPos moves to pos and updates the chunk. Moves within the current chunk
// are constant time; anything else is a binary search of the part of the index
// on the side of the move.
func (c *Cursor) setPos(pos uint64) {
	switch {
	case pos > c.pos:
		if at(pos).less(c.startOf(c.chunk + 1)) {
			break
		}

		// The check above rules out the last entry, since the end marker is
		// greater than any position.
		i, found := slices.BinarySearch(c.start[c.chunk+1:], pos)
		if found {
			c.chunk += 1 + i
		} else {
			c.chunk += i
		}

	case pos < c.pos:
		if c.start[c.chunk] <= pos {
			break
		}

		// start[0] is 0 so i is at least 1 when not found.
		i, found := slices.BinarySearch(c.start[:c.chunk], pos)
		if found {
			c.chunk = i
		} else {
			c.chunk = i - 1
		}
	}
	c.pos = pos
}
