// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package buflist

import (
	"errors"
	"fmt"
	"io"
	"net"

	"gitlab.com/accumulatenetwork/buflist/internal/util/pool"
)

// DefaultChunkSize is the size of each read made by [BufList.ReadFrom].
const DefaultChunkSize = 32 << 10

// BufList is a list of [Chunk]s forming one logical byte stream. Chunks are
// appended at the back and consumed from the front.
//
// The zero value is an empty list ready to use.
type BufList struct {
	// Invariant: none of the chunks are zero-length.
	bufs []Chunk

	// Sum of the lengths of bufs.
	size int
}

var _ io.Reader = (*BufList)(nil)
var _ io.Writer = (*BufList)(nil)
var _ io.ReaderFrom = (*BufList)(nil)
var _ io.WriterTo = (*BufList)(nil)

// Scratch for WriteTo. Entries are cleared so the pool does not keep chunks
// alive.
var buffersPool = pool.NewWithReset(func(b *net.Buffers) {
	clear(*b)
	*b = (*b)[:0]
})

// New returns a list of the given chunks. The chunks are not copied; empty
// chunks are skipped.
func New(chunks ...[]byte) *BufList {
	l := new(BufList)
	for _, b := range chunks {
		l.PushChunk(NewChunk(b))
	}
	return l
}

// FromChunks returns a list of the given chunks, skipping empty ones.
func FromChunks(chunks ...Chunk) *BufList {
	l := new(BufList)
	for _, c := range chunks {
		l.PushChunk(c)
	}
	return l
}

// NumChunks returns the number of chunks in the list.
func (l *BufList) NumChunks() int { return len(l.bufs) }

// NumBytes returns the total number of bytes across all chunks.
func (l *BufList) NumBytes() int { return l.size }

// Remaining returns the number of bytes left to consume. It is the same as
// NumBytes.
func (l *BufList) Remaining() int { return l.size }

// Chunk returns the i'th chunk.
func (l *BufList) Chunk(i int) (Chunk, bool) {
	if i < 0 || i >= len(l.bufs) {
		return Chunk{}, false
	}
	return l.bufs[i], true
}

// Chunks returns a copy of the list of chunks.
func (l *BufList) Chunks() []Chunk {
	if len(l.bufs) == 0 {
		return nil
	}
	c := make([]Chunk, len(l.bufs))
	copy(c, l.bufs)
	return c
}

// Clone returns a list holding the same chunks. Consuming either list does not
// affect the other.
func (l *BufList) Clone() *BufList {
	return &BufList{bufs: l.Chunks(), size: l.size}
}

// Bytes returns a copy of the contents of the list in one contiguous slice.
func (l *BufList) Bytes() []byte {
	b := make([]byte, 0, l.size)
	for _, c := range l.bufs {
		b = append(b, c.b...)
	}
	return b
}

// NewCursor returns a cursor over the list's current chunks.
func (l *BufList) NewCursor() *Cursor {
	return NewCursor(l)
}

// PushChunk appends c to the list, unless it is empty, and returns it.
func (l *BufList) PushChunk(c Chunk) Chunk {
	if c.Len() > 0 {
		l.bufs = append(l.bufs, c)
		l.size += c.Len()
	}
	return c
}

// Push copies b into a new chunk, appends it to the list unless it is empty,
// and returns it.
func (l *BufList) Push(b []byte) Chunk {
	return l.PushChunk(CopyChunk(b))
}

// PushString is Push for a string.
func (l *BufList) PushString(s string) Chunk {
	return l.PushChunk(Chunk{b: []byte(s)})
}

// Write appends a copy of p to the list. It never fails.
func (l *BufList) Write(p []byte) (int, error) {
	l.Push(p)
	return len(p), nil
}

// ReadFrom appends everything read from r, one chunk per read of up to
// [DefaultChunkSize] bytes.
func (l *BufList) ReadFrom(r io.Reader) (int64, error) {
	return l.ReadChunksFrom(r, DefaultChunkSize)
}

// ReadChunksFrom appends everything read from r, one chunk per read of up to
// size bytes. It returns the number of bytes read and any error other than
// [io.EOF].
func (l *BufList) ReadChunksFrom(r io.Reader, size int) (int64, error) {
	if size <= 0 {
		size = DefaultChunkSize
	}

	var total int64
	var buf []byte
	for {
		if buf == nil {
			buf = make([]byte, size)
		}
		n, err := r.Read(buf)
		if n > 0 {
			l.PushChunk(NewChunk(buf[:n]))
			total += int64(n)
			buf = nil
		}
		switch {
		case errors.Is(err, io.EOF):
			return total, nil
		case err != nil:
			return total, err
		}
	}
}

// Front returns the bytes of the first chunk, or nil if the list is empty.
func (l *BufList) Front() []byte {
	if len(l.bufs) == 0 {
		return nil
	}
	return l.bufs[0].b
}

// Vectored fills dst with the bytes of successive chunks, one chunk per slot,
// until either runs out. It returns the number of slots filled.
func (l *BufList) Vectored(dst [][]byte) int {
	var filled int
	for _, c := range l.bufs {
		if filled == len(dst) {
			break
		}
		dst[filled] = c.b
		filled++
	}
	return filled
}

// Advance consumes n bytes from the front of the list. It panics if n is
// negative or greater than Remaining.
func (l *BufList) Advance(n int) {
	if n < 0 || n > l.size {
		panic(fmt.Sprintf("buflist: cannot advance by %d, %d bytes remaining", n, l.size))
	}

	for n > 0 {
		front := l.bufs[0]
		if front.Len() > n {
			l.bufs[0] = front.Slice(n, front.Len())
			l.size -= n
			return
		}

		n -= front.Len()
		l.popFront()
	}
}

// CopyOut consumes n bytes from the front of the list and returns them. If the
// bytes are all in the first chunk the result shares its storage, otherwise
// they are copied into a new allocation of exactly n bytes. CopyOut panics if
// n is negative or greater than Remaining.
func (l *BufList) CopyOut(n int) Chunk {
	if n < 0 {
		panic(fmt.Sprintf("buflist: cannot copy out %d bytes", n))
	}

	if len(l.bufs) > 0 && n <= l.bufs[0].Len() {
		front := l.bufs[0]
		out := front.Slice(0, n)
		if n == front.Len() {
			l.popFront()
		} else {
			l.bufs[0] = front.Slice(n, front.Len())
			l.size -= n
		}
		return out
	}

	if n > l.size {
		panic(fmt.Sprintf("buflist: cannot copy out %d bytes, %d bytes remaining", n, l.size))
	}

	b := make([]byte, n)
	var copied int
	for copied < n {
		m := copy(b[copied:], l.bufs[0].b)
		copied += m
		l.Advance(m)
	}
	return Chunk{b: b}
}

// Read consumes bytes from the front of the list into p. It returns [io.EOF]
// once the list is empty.
func (l *BufList) Read(p []byte) (int, error) {
	if l.size == 0 {
		if len(p) == 0 {
			return 0, nil
		}
		return 0, io.EOF
	}

	var n int
	for n < len(p) && len(l.bufs) > 0 {
		m := copy(p[n:], l.bufs[0].b)
		n += m
		l.Advance(m)
	}
	return n, nil
}

// WriteTo drains the list into w. Chunks are handed to w together, so a w that
// supports vectored writes (such as a [net.Conn]) receives them in one call.
// Bytes that were written are consumed even if an error occurs.
func (l *BufList) WriteTo(w io.Writer) (int64, error) {
	if l.size == 0 {
		return 0, nil
	}

	bufs := buffersPool.Get()
	for _, c := range l.bufs {
		*bufs = append(*bufs, c.b)
	}

	// net.Buffers.WriteTo consumes the slice as it writes
	all := *bufs
	n, err := bufs.WriteTo(w)
	*bufs = all
	buffersPool.Put(bufs)

	l.Advance(int(n))
	return n, err
}

func (l *BufList) popFront() {
	l.size -= l.bufs[0].Len()
	l.bufs[0] = Chunk{}
	l.bufs = l.bufs[1:]
	if len(l.bufs) == 0 {
		l.bufs = nil
	}
}
