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
)

var (
	// ErrInvalidSeek is returned when a seek would move the cursor to a
	// negative position or to one that does not fit in an int64.
	ErrInvalidSeek = errors.New("buflist: invalid seek to a negative or overflowing position")

	// ErrInvalidWhence is returned by Seek for an unknown whence.
	ErrInvalidWhence = errors.New("buflist: invalid whence")

	// ErrInvalidOffset is returned by ReadAt for a negative offset.
	ErrInvalidOffset = errors.New("buflist: negative offset")

	// ErrUnreadAtStart is returned by UnreadByte at position zero.
	ErrUnreadAtStart = errors.New("buflist: unread at beginning of list")
)

// ReadExactError is returned by [Cursor.ReadExact] when fewer bytes remain
// than were requested. It matches [io.ErrUnexpectedEOF] with [errors.Is].
type ReadExactError struct {
	Remaining uint64
	Requested int
}

func (e *ReadExactError) Error() string {
	return fmt.Sprintf("buflist: unexpected end of data: %d bytes remaining, %d requested", e.Remaining, e.Requested)
}

func (e *ReadExactError) Unwrap() error { return io.ErrUnexpectedEOF }
