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

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"gitlab.com/accumulatenetwork/buflist/pkg/buflist"
)

func (c *cli) chunksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chunks <file>...",
		Short: "List the chunks each file is loaded as",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for i, l := range c.loadAll(args) {
				if len(args) > 1 {
					if i > 0 {
						fmt.Fprintln(out)
					}
					fmt.Fprintf(out, "%s:\n", args[i])
				}
				printChunks(out, l)
			}
		},
	}
}

func printChunks(out io.Writer, l *buflist.BufList) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "INDEX\tSTART\tLENGTH")
	var start int
	for i, ch := range l.Chunks() {
		fmt.Fprintf(tw, "%d\t%d\t%s\n", i, start, humanize.IBytes(uint64(ch.Len())))
		start += ch.Len()
	}
	check(tw.Flush())

	fmt.Fprintf(out, "%d chunk(s), %s\n", l.NumChunks(), humanize.IBytes(uint64(l.NumBytes())))
}
