// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"
)

// sizeFlag is a byte count that accepts human-readable sizes such as 4KiB.
type sizeFlag uint64

var _ pflag.Value = (*sizeFlag)(nil)

func (s *sizeFlag) String() string { return humanize.IBytes(uint64(*s)) }
func (s *sizeFlag) Type() string   { return "size" }

func (s *sizeFlag) Set(v string) error {
	n, err := humanize.ParseBytes(v)
	if err != nil {
		return err
	}
	*s = sizeFlag(n)
	return nil
}

var whences = map[string]int{
	"start":   io.SeekStart,
	"current": io.SeekCurrent,
	"end":     io.SeekEnd,
}

type seekArg struct {
	whence int
	offset int64
}

// parseSeek parses "whence:offset", or a bare offset from the start.
func parseSeek(s string) (seekArg, error) {
	name, off, ok := strings.Cut(s, ":")
	if !ok {
		name, off = "start", s
	}

	whence, ok := whences[strings.ToLower(name)]
	if !ok {
		return seekArg{}, fmt.Errorf("invalid whence %q", name)
	}

	v, err := strconv.ParseInt(off, 10, 64)
	if err != nil {
		return seekArg{}, fmt.Errorf("invalid offset %q: %w", off, err)
	}
	return seekArg{whence, v}, nil
}
