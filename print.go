// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package skiplist

import (
	"fmt"
	"io"
)

// Print - write a text representation of the level structure
//
// one line per level from the highest active level down to level
// zero, values in ascending order; returns the active height
func (list *List) Print(w io.Writer) int {
	if !list.isUsable() {
		fmt.Fprintln(w, "destroyed list")
		return 0
	}

	for level := list.height - 1; level >= 0; level -= 1 {
		fmt.Fprintf(w, "%2d:", level)
		for p := list.header.next[level]; nil != p; p = p.next[level] {
			fmt.Fprintf(w, " %v", p.value)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "height: %d  count: %d\n", list.height, list.count)
	return list.height
}
