// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package skiplist

import (
	"github.com/bitmark-inc/skiplist/fault"
)

// First - return the node with the lowest key value
func (list *List) First() *Node {
	if !list.isUsable() {
		return nil
	}
	return list.header.next[0]
}

// Last - return the node with the highest key value
//
// walks the level zero chain, there is no tail pointer
func (list *List) Last() *Node {
	if !list.isUsable() || 0 == list.count {
		return nil
	}
	p := list.header.next[0]
	for nil != p.next[0] {
		p = p.next[0]
	}
	return p
}

// Traverse - visit every value in ascending key order
//
// the visitor must not modify the list; returning false from the
// visitor stops the walk early
func (list *List) Traverse(visitor VisitorFunc) error {
	if !list.isUsable() {
		return fault.ErrInvalidList
	}
	if nil == visitor {
		return fault.ErrInvalidVisitorFunction
	}
	for p := list.header.next[0]; nil != p; p = p.next[0] {
		if !visitor(p.value) {
			break
		}
	}
	return nil
}
