// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package logging

import (
	"io"
	"strings"
	"testing"
)

// TestWriter sends each log line to the test log.
type TestWriter struct {
	Test testing.TB
}

var _ io.Writer = (*TestWriter)(nil)

func (l *TestWriter) Write(b []byte) (int, error) {
	l.Test.Helper()
	l.Test.Log(strings.TrimSuffix(string(b), "\n"))
	return len(b), nil
}
