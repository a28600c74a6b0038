// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package skiplist

import (
	"fmt"

	"github.com/bitmark-inc/skiplist/fault"
)

// CheckStructure - verify the structural invariants of the list
//
// intended for tests: checks key ordering on every level, the subset
// relation between levels, the back links, the active height and the
// stored count; returns nil when all hold
func (list *List) CheckStructure() error {
	if !list.isUsable() {
		return fault.ErrInvalidList
	}

	// level zero: ordering, back links and count
	position := make(map[*Node]int)
	n := 0
	back := list.header
	for p := list.header.next[0]; nil != p; p = p.next[0] {
		if p.prev != back {
			return fmt.Errorf("broken back link at %v", p.value)
		}
		if list.header != back && list.compare(back.value, p.value) >= 0 {
			return fmt.Errorf("out of order at level 0: %v before %v", back.value, p.value)
		}
		position[p] = n
		n += 1
		back = p
	}
	if n != list.count {
		return fmt.Errorf("count: actual: %d  expected: %d", list.count, n)
	}

	// higher levels must be ordered subsequences of level zero
	for level := 1; level < list.height; level += 1 {
		last := -1
		for p := list.header.next[level]; nil != p; p = p.next[level] {
			if len(p.next) <= level {
				return fmt.Errorf("node %v linked above its height at level %d", p.value, level)
			}
			i, ok := position[p]
			if !ok {
				return fmt.Errorf("node %v at level %d is not on level 0", p.value, level)
			}
			if i <= last {
				return fmt.Errorf("out of order at level %d: %v", level, p.value)
			}
			last = i
		}
	}

	// active height must be tight
	if list.height < 1 || list.height > MaxHeight {
		return fmt.Errorf("height out of range: %d", list.height)
	}
	if list.height > 1 && nil == list.header.next[list.height-1] {
		return fmt.Errorf("height %d has an empty top level", list.height)
	}
	for level := list.height; level < MaxHeight; level += 1 {
		if nil != list.header.next[level] {
			return fmt.Errorf("link above the active height at level %d", level)
		}
	}

	return nil
}
