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
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gitlab.com/accumulatenetwork/buflist/internal/logging"
	"gitlab.com/accumulatenetwork/buflist/pkg/buflist"
	"golang.org/x/term"
)

func main() {
	if newRootCmd().Execute() != nil {
		os.Exit(1)
	}
}

// cli is the state shared by the commands.
type cli struct {
	cfg        *viper.Viper
	logOut     io.Writer
	logger     zerolog.Logger
	configFile string
	chunkSize  int
}

func newRootCmd() *cobra.Command {
	c := &cli{cfg: viper.New(), logOut: os.Stderr}
	return c.rootCmd()
}

func (c *cli) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buflist",
		Short: "Load files into a segmented buffer and read them back",
		PersistentPreRun: func(*cobra.Command, []string) {
			c.setup()
		},
	}

	chunkSize := sizeFlag(buflist.DefaultChunkSize)
	f := cmd.PersistentFlags()
	f.StringVar(&c.configFile, "config", "", "Configuration file (toml, yaml, or json)")
	f.String("log-level", "error", "Log level, or a list of module=level pairs such as 'load=debug;*=error'")
	f.String("log-format", logging.LogFormatPlain, "Log format (plain or json)")
	f.Var(&chunkSize, "chunk-size", "Size of each read when loading input, such as 4KiB")
	check(c.cfg.BindPFlags(f))

	c.cfg.SetEnvPrefix("BUFLIST")
	c.cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.cfg.AutomaticEnv()

	cmd.AddCommand(
		c.chunksCmd(),
		c.readCmd(),
		c.drainCmd(),
	)
	return cmd
}

func (c *cli) setup() {
	if c.configFile != "" {
		c.cfg.SetConfigFile(c.configFile)
		checkf(c.cfg.ReadInConfig(), "read config %s", c.configFile)
	}

	var err error
	c.logger, err = logging.NewLogger(c.logOut, c.cfg.GetString("log-format"), c.cfg.GetString("log-level"))
	checkf(err, "configure logging")

	size, err := humanize.ParseBytes(c.cfg.GetString("chunk-size"))
	checkf(err, "parse chunk size")
	if size == 0 {
		fatalf("chunk size must be positive")
	}
	c.chunkSize = int(size)

	c.log("config").Debug().Str("chunk-size", humanize.IBytes(size)).Str("config", c.cfg.ConfigFileUsed()).Msg("Configured")
}

// log returns a logger for the given module.
func (c *cli) log(module string) *zerolog.Logger {
	l := c.logger.With().Str("module", module).Logger()
	return &l
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func check(err error) {
	if err != nil {
		fatalf("%v", err)
	}
}

func checkf(err error, format string, otherArgs ...interface{}) {
	if err != nil {
		fatalf(format+": %v", append(otherArgs, err)...)
	}
}

func warnf(format string, args ...interface{}) {
	format = "WARNING: " + format + "\n"
	if term.IsTerminal(int(os.Stderr.Fd())) {
		fmt.Fprint(os.Stderr, color.RedString(format, args...))
	} else {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
