// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"gitlab.com/accumulatenetwork/buflist/pkg/buflist"
	"golang.org/x/sync/errgroup"
)

// load reads the named file, or stdin for "-", into a list with one chunk per
// read.
func (c *cli) load(name string) *buflist.BufList {
	l, err := c.loadFile(name)
	check(err)
	return l
}

// loadAll loads each of the named files concurrently.
func (c *cli) loadAll(names []string) []*buflist.BufList {
	lists := make([]*buflist.BufList, len(names))
	errg := new(errgroup.Group)
	for i, name := range names {
		i, name := i, name
		errg.Go(func() error {
			var err error
			lists[i], err = c.loadFile(name)
			return err
		})
	}
	check(errg.Wait())
	return lists
}

func (c *cli) loadFile(name string) (*buflist.BufList, error) {
	var r io.Reader
	if name == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", name, err)
		}
		defer f.Close()
		r = f
	}

	start := time.Now()
	l := new(buflist.BufList)
	n, err := l.ReadChunksFrom(r, c.chunkSize)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	c.log("load").Debug().
		Str("file", name).
		Int64("bytes", n).
		Int("chunks", l.NumChunks()).
		Dur("took", time.Since(start)).
		Msg("Loaded input")

	if n == 0 {
		warnf("%s is empty", name)
	}
	return l, nil
}
