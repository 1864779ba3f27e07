// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package buflist stores a logical byte stream as a list of immutable chunks.
//
// A [BufList] is a FIFO of [Chunk]s, typically the successive reads from a
// socket or file, that is never flattened into one allocation. It can be
// drained from the front ([BufList.Advance], [BufList.CopyOut], [BufList.Read],
// [BufList.WriteTo]) or wrapped in a [Cursor] for repeatable random access.
//
// A [Cursor] behaves like a [bytes.Reader] over the concatenation of the
// chunks: it implements [io.ReadSeeker], [io.ReaderAt], [io.ByteScanner] and
// [io.WriterTo], and its results, positions and errors match those of a
// bytes.Reader reading the same bytes. Sequential and local seeks resolve in
// constant time; arbitrary jumps cost O(log n) in the number of chunks.
//
// A cursor works on a snapshot of the list's chunks taken when it is created,
// so appending to or draining the list afterwards does not affect it.
package buflist
