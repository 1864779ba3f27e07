// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// ModuleLevels is a default level plus a level for each named module.
type ModuleLevels struct {
	Default zerolog.Level
	Modules map[string]zerolog.Level
}

// ParseModuleLevels parses a semicolon-separated list of module=level pairs,
// such as "load=debug;*=error". A bare level or the module * sets the default,
// which is error if not given.
func ParseModuleLevels(s string) (*ModuleLevels, error) {
	m := &ModuleLevels{
		Default: zerolog.ErrorLevel,
		Modules: map[string]zerolog.Level{},
	}

	for _, entry := range strings.Split(s, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		module, level, ok := strings.Cut(entry, "=")
		if !ok {
			module, level = "*", module
		}
		module = strings.TrimSpace(module)
		if module == "" {
			return nil, fmt.Errorf("missing module name in %q", entry)
		}

		lvl, err := zerolog.ParseLevel(strings.TrimSpace(level))
		if err != nil {
			return nil, fmt.Errorf("invalid level for %s: %w", module, err)
		}

		if module == "*" {
			m.Default = lvl
		} else {
			m.Modules[module] = lvl
		}
	}
	return m, nil
}

// Lowest returns the most verbose level of any module, which is the level the
// logger itself must be set to.
func (m *ModuleLevels) Lowest() zerolog.Level {
	lowest := m.Default
	for _, l := range m.Modules {
		if l < lowest {
			lowest = l
		}
	}
	return lowest
}

// Enabled returns true if an event at the given level from the given module
// should be written.
func (m *ModuleLevels) Enabled(module string, level zerolog.Level) bool {
	l, ok := m.Modules[module]
	if !ok {
		l = m.Default
	}
	return level >= l
}

// ParseLogLevel parses a log level. If s is a single level, it is returned as
// is along with w. Otherwise s is parsed with [ParseModuleLevels] and w is
// wrapped in a [FilterWriter].
func ParseLogLevel(s string, w io.Writer) (string, io.Writer, error) {
	if !strings.Contains(s, "=") {
		return s, w, nil
	}

	levels, err := ParseModuleLevels(s)
	if err != nil {
		return "", nil, err
	}
	return levels.Lowest().String(), FilterWriter{Out: w, Levels: levels}, nil
}

// FilterWriter forwards JSON log events to Out if their module's level allows
// them.
type FilterWriter struct {
	Out    io.Writer
	Levels *ModuleLevels
}

var _ zerolog.LevelWriter = FilterWriter{}

// event is the part of a log event the filter looks at.
type event struct {
	Level  string `json:"level"`
	Module string `json:"module"`
}

func (w FilterWriter) Write(p []byte) (n int, err error) {
	return w.WriteLevel(zerolog.NoLevel, p)
}

func (w FilterWriter) WriteLevel(level zerolog.Level, p []byte) (n int, err error) {
	// WARNING If zerolog is compiled with binary_log, this will not work
	var evt event
	err = json.Unmarshal(p, &evt)
	if err != nil {
		return 0, fmt.Errorf("cannot decode event: %w", err)
	}

	if level == zerolog.NoLevel && evt.Level != "" {
		level, _ = zerolog.ParseLevel(evt.Level)
	}

	if w.Levels != nil && !w.Levels.Enabled(evt.Module, level) {
		return len(p), nil
	}
	return w.Out.Write(p)
}
