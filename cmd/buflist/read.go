// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"encoding/hex"
	"io"

	"github.com/spf13/cobra"
)

type readFlags struct {
	seek   []string
	length int
	exact  bool
	raw    bool
}

func (c *cli) readCmd() *cobra.Command {
	var flag readFlags
	cmd := &cobra.Command{
		Use:   "read <file>",
		Short: "Seek within a file and read from it through a cursor",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			c.read(cmd.OutOrStdout(), args[0], &flag)
		},
	}

	cmd.Flags().StringSliceVar(&flag.seek, "seek", nil, "Seek before reading, as whence:offset where whence is start, current, or end (repeatable)")
	cmd.Flags().IntVarP(&flag.length, "length", "n", -1, "Number of bytes to read, or -1 to read to the end")
	cmd.Flags().BoolVar(&flag.exact, "exact", false, "Fail unless exactly --length bytes are available")
	cmd.Flags().BoolVar(&flag.raw, "raw", false, "Write the bytes as is instead of as a hex dump")
	return cmd
}

func (c *cli) read(out io.Writer, file string, flag *readFlags) {
	l := c.load(file)
	cur := l.NewCursor()
	log := c.log("read")

	for _, s := range flag.seek {
		arg, err := parseSeek(s)
		checkf(err, "--seek %s", s)

		pos, err := cur.Seek(arg.offset, arg.whence)
		checkf(err, "seek %s", s)
		log.Debug().Str("seek", s).Int64("position", pos).Msg("Seek")
	}

	if !flag.raw {
		d := hex.Dumper(out)
		defer d.Close()
		out = d
	}

	switch {
	case flag.length < 0:
		if flag.exact {
			fatalf("--exact requires --length")
		}
		_, err := cur.WriteTo(out)
		check(err)

	case flag.exact:
		b := make([]byte, flag.length)
		checkf(cur.ReadExact(b), "read %d bytes at %d", flag.length, cur.Position())
		_, err := out.Write(b)
		check(err)

	default:
		b := make([]byte, flag.length)
		n, err := io.ReadFull(cur, b)
		if err != nil {
			log.Debug().Int("requested", flag.length).Int("read", n).Msg("Short read")
		}
		_, err = out.Write(b[:n])
		check(err)
	}

	log.Debug().Uint64("position", cur.Position()).Int("remaining", cur.Len()).Msg("Done")
}
