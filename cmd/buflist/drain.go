// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type drainFlags struct {
	take []int
	rest bool
}

func (c *cli) drainCmd() *cobra.Command {
	var flag drainFlags
	cmd := &cobra.Command{
		Use:   "drain <file>",
		Short: "Take bytes from the front of a file's buffer list",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			c.drain(cmd.OutOrStdout(), args[0], &flag)
		},
	}

	cmd.Flags().IntSliceVar(&flag.take, "take", nil, "Number of bytes to take (repeatable)")
	cmd.Flags().BoolVar(&flag.rest, "rest", false, "Write whatever remains after the last take")
	return cmd
}

func (c *cli) drain(out io.Writer, file string, flag *drainFlags) {
	l := c.load(file)
	log := c.log("drain")

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TAKE\tZERO-COPY\tREMAINING\tBYTES")
	for _, n := range flag.take {
		if n < 0 || n > l.Remaining() {
			warnf("cannot take %d bytes, %d remaining", n, l.Remaining())
			break
		}

		zeroCopy := n <= len(l.Front())
		b := l.CopyOut(n)
		fmt.Fprintf(tw, "%d\t%v\t%d\t%x\n", n, zeroCopy, l.Remaining(), b.Bytes())
		log.Debug().Int("take", n).Bool("zero-copy", zeroCopy).Int("chunks", l.NumChunks()).Msg("Took")
	}
	check(tw.Flush())

	if flag.rest {
		_, err := l.WriteTo(out)
		check(err)
	}
}
