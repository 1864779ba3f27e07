// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"gitlab.com/accumulatenetwork/buflist/internal/logging"
)

func writeInput(t *testing.T, data string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "input")
	require.NoError(t, os.WriteFile(name, []byte(data), 0600))
	return name
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	buf := new(bytes.Buffer)
	c := &cli{cfg: viper.New(), logOut: &logging.TestWriter{Test: t}}
	cmd := c.rootCmd()
	cmd.SetOut(buf)
	cmd.SetArgs(append(args, "--log-level", "debug"))
	require.NoError(t, cmd.Execute())
	return buf.String()
}

func TestParseSeek(t *testing.T) {
	cases := []struct {
		In     string
		Whence int
		Offset int64
	}{
		{"5", io.SeekStart, 5},
		{"start:0", io.SeekStart, 0},
		{"current:-3", io.SeekCurrent, -3},
		{"END:-1", io.SeekEnd, -1},
	}
	for _, c := range cases {
		t.Run(c.In, func(t *testing.T) {
			arg, err := parseSeek(c.In)
			require.NoError(t, err)
			require.Equal(t, c.Whence, arg.whence)
			require.Equal(t, c.Offset, arg.offset)
		})
	}

	_, err := parseSeek("middle:1")
	require.ErrorContains(t, err, "invalid whence")
	_, err = parseSeek("end:x")
	require.ErrorContains(t, err, "invalid offset")
}

func TestSizeFlag(t *testing.T) {
	var s sizeFlag
	require.NoError(t, s.Set("4KiB"))
	require.Equal(t, sizeFlag(4096), s)
	require.Equal(t, "4.0 KiB", s.String())
	require.Error(t, s.Set("lots"))
}

func TestChunksCommand(t *testing.T) {
	file := writeInput(t, "hello world")
	out := run(t, "chunks", "--chunk-size", "4", file)
	require.Contains(t, out, "INDEX")
	require.Contains(t, out, "3 chunk(s), 11 B")
}

func TestChunksCommandMultipleFiles(t *testing.T) {
	a := writeInput(t, "hello world")
	b := writeInput(t, "abc")
	out := run(t, "chunks", "--chunk-size", "4", a, b)
	require.Contains(t, out, a+":\n")
	require.Contains(t, out, b+":\n")
	require.Contains(t, out, "3 chunk(s), 11 B")
	require.Contains(t, out, "1 chunk(s), 3 B")
}

func TestReadCommand(t *testing.T) {
	file := writeInput(t, "hello world")

	out := run(t, "read", "--chunk-size", "4", "--raw", "--seek", "end:-5", "-n", "3", file)
	require.Equal(t, "wor", out)

	out = run(t, "read", "--chunk-size", "4", "--raw", "--seek", "2", "--seek", "current:4", file)
	require.Equal(t, "world", out)

	out = run(t, "read", "--chunk-size", "4", "--raw", "--exact", "-n", "5", file)
	require.Equal(t, "hello", out)

	// Short reads write what is available
	out = run(t, "read", "--chunk-size", "4", "--raw", "--seek", "9", "-n", "5", file)
	require.Equal(t, "ld", out)

	out = run(t, "read", "--chunk-size", "4", "-n", "5", file)
	require.Contains(t, out, "68 65 6c 6c 6f")
}

func TestConfigFile(t *testing.T) {
	file := writeInput(t, "hello world")
	config := filepath.Join(t.TempDir(), "buflist.toml")
	require.NoError(t, os.WriteFile(config, []byte("chunk-size = \"2B\"\n"), 0600))

	out := run(t, "chunks", "--config", config, file)
	require.Contains(t, out, "6 chunk(s), 11 B")
}

func TestDrainCommand(t *testing.T) {
	file := writeInput(t, "hello world")
	out := run(t, "drain", "--chunk-size", "4", "--take", "2", "--take", "4", "--rest", file)

	lines := bytes.Split([]byte(out), []byte("\n"))
	require.GreaterOrEqual(t, len(lines), 3)
	require.Regexp(t, `^2\s+true\s+9\s+6865\s*$`, string(lines[1]))
	require.Regexp(t, `^4\s+false\s+5\s+6c6c6f20\s*$`, string(lines[2]))
	require.Contains(t, out, "world")
}
