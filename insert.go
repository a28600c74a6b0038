// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package skiplist

import (
	"github.com/bitmark-inc/skiplist/fault"
)

// Insert - add a value to the list
//
// the list takes ownership of the value until it is removed, popped,
// cleared or the list is destroyed; a value with an equal key is
// rejected and the list is left unchanged
func (list *List) Insert(value interface{}) error {
	if !list.isUsable() {
		return fault.ErrInvalidList
	}
	if nil == value {
		return fault.ErrInvalidKey
	}

	// record the rightmost node visited on each level, these are
	// the predecessors that need relinking
	var update [MaxHeight]*Node

	p := list.header
	for level := list.height - 1; level >= 0; level -= 1 {
		for nil != p.next[level] && list.compare(p.next[level].value, value) < 0 {
			p = p.next[level]
		}
		update[level] = p
	}

	q := update[0].next[0]
	if nil != q && 0 == list.compare(q.value, value) {
		return fault.ErrAlreadyExists
	}

	height := list.randomHeight()
	if height > list.height {
		for level := list.height; level < height; level += 1 {
			update[level] = list.header
		}
	}

	// no relinking may happen before this point, so an allocation
	// failure leaves the list untouched
	q, err := list.pool.NewNode(height)
	if nil != err {
		return err
	}
	q.value = value

	for level := 0; level < height; level += 1 {
		q.next[level] = update[level].next[level]
		update[level].next[level] = q
	}

	q.prev = update[0]
	if nil != q.next[0] {
		q.next[0].prev = q
	}

	if height > list.height {
		list.height = height
	}
	list.count += 1
	return nil
}
