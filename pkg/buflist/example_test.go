// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package buflist_test

import (
	"fmt"
	"io"
	"os"

	"gitlab.com/accumulatenetwork/buflist/pkg/buflist"
)

func ExampleCursor() {
	l := new(buflist.BufList)
	l.PushString("hello ")
	l.PushString("segmented ")
	l.PushString("world\n")

	c := l.NewCursor()
	_, _ = c.Seek(6, io.SeekStart)
	word := make([]byte, 9)
	_ = c.ReadExact(word)
	fmt.Printf("%s\n", word)

	_, _ = c.Seek(-6, io.SeekEnd)
	_, _ = io.Copy(os.Stdout, c)

	// Output:
	// segmented
	// world
}

func ExampleBufList_CopyOut() {
	l := buflist.New([]byte("ab"), []byte("cde"))
	fmt.Println(l.CopyOut(4), l.NumChunks(), string(l.Front()))

	// Output:
	// abcd 1 e
}
