// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package skiplist

import (
	"github.com/bitmark-inc/skiplist/fault"
)

// Search - find the value matching key
// returns nil when absent, never modifies the list
func (list *List) Search(key interface{}) interface{} {
	p := list.SearchNode(key)
	if nil == p {
		return nil
	}
	return p.value
}

// SearchNode - find the node holding the value matching key
// returns nil when absent
func (list *List) SearchNode(key interface{}) *Node {
	if !list.isUsable() || nil == key {
		return nil
	}

	p := list.header
	for level := list.height - 1; level >= 0; level -= 1 {
		for nil != p.next[level] && list.compare(p.next[level].value, key) < 0 {
			p = p.next[level]
		}
	}

	q := p.next[0]
	if nil != q && 0 == list.compare(q.value, key) {
		return q
	}
	return nil
}

// Find - collect values matching a template under a separate predicate
//
// the whole level zero chain is scanned in ascending order and up to
// len(out) matching values are written into out; the match relation
// is independent of the list ordering so equal-key shortcuts do not
// apply; returns the number written, zero matches is a not found
// error
func (list *List) Find(template interface{}, match MatchFunc, out []interface{}) (int, error) {
	if !list.isUsable() {
		return 0, fault.ErrInvalidList
	}
	if nil == match {
		return 0, fault.ErrInvalidMatchFunction
	}
	if 0 == len(out) {
		return 0, fault.ErrInvalidCapacity
	}

	n := 0
	for p := list.header.next[0]; nil != p && n < len(out); p = p.next[0] {
		if match(p.value, template) {
			out[n] = p.value
			n += 1
		}
	}
	if 0 == n {
		return 0, fault.ErrNotFound
	}
	return n, nil
}
