// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package buflist

import "fmt"

// offset is either a finite position or the end marker. The end marker orders
// after every finite position, so "past the last chunk" is an ordinary
// comparison.
type offset struct {
	v   uint64
	end bool
}

var endOffset = offset{end: true}

func at(v uint64) offset { return offset{v: v} }

func (o offset) compare(p offset) int {
	switch {
	case o.end && p.end:
		return 0
	case o.end:
		return +1
	case p.end:
		return -1
	case o.v < p.v:
		return -1
	case o.v > p.v:
		return +1
	default:
		return 0
	}
}

func (o offset) less(p offset) bool { return o.compare(p) < 0 }

func (o offset) String() string {
	if o.end {
		return "end"
	}
	return fmt.Sprint(o.v)
}
