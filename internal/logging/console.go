// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	LogFormatPlain = "plain"
	LogFormatText  = "text"
	LogFormatJSON  = "json"
)

// NewConsoleWriter parses the log format and creates an appropriate writer
// to stderr.
func NewConsoleWriter(format string) (io.Writer, error) {
	return NewConsoleWriterWith(os.Stderr, format)
}

// NewConsoleWriterWith parses the log format and creates an appropriate
// writer to w.
func NewConsoleWriterWith(w io.Writer, format string) (io.Writer, error) {
	switch strings.ToLower(format) {
	case LogFormatPlain, LogFormatText:
		return newConsoleWriter(w), nil

	case LogFormatJSON:
		return w, nil

	default:
		return nil, fmt.Errorf("unsupported log format: %s", format)
	}
}

// newConsoleWriter creates a zerolog console writer that formats log messages
// as plain text.
func newConsoleWriter(w io.Writer) *zerolog.ConsoleWriter {
	return &zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.RFC3339,
		FormatLevel: func(i interface{}) string {
			if ll, ok := i.(string); ok {
				return strings.ToUpper(ll)
			}
			return "????"
		},
	}
}

// NewLogger returns a logger that writes to w in the given format. The level
// is either a single level or a list of per-module levels, as accepted by
// [ParseLogLevel].
func NewLogger(w io.Writer, format, level string) (zerolog.Logger, error) {
	w, err := NewConsoleWriterWith(w, format)
	if err != nil {
		return zerolog.Nop(), err
	}

	level, w, err = ParseLogLevel(level, w)
	if err != nil {
		return zerolog.Nop(), err
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("failed to parse log level: %v", err)
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}
