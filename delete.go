// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package skiplist

import (
	"github.com/bitmark-inc/skiplist/fault"
)

// Remove - unlink the value matching key and release it through the
// destroy callback
func (list *List) Remove(key interface{}) error {
	value, err := list.Take(key)
	if nil != err {
		return err
	}
	list.destroy(value)
	return nil
}

// Take - unlink the value matching key and return it without calling
// the destroy callback, ownership passes back to the caller
func (list *List) Take(key interface{}) (interface{}, error) {
	if !list.isUsable() {
		return nil, fault.ErrInvalidList
	}
	if nil == key {
		return nil, fault.ErrInvalidKey
	}

	var update [MaxHeight]*Node

	p := list.header
	for level := list.height - 1; level >= 0; level -= 1 {
		for nil != p.next[level] && list.compare(p.next[level].value, key) < 0 {
			p = p.next[level]
		}
		update[level] = p
	}

	q := update[0].next[0]
	if nil == q || 0 != list.compare(q.value, key) {
		return nil, fault.ErrNotFound
	}

	return list.unlink(q, &update), nil
}

// PopFront - unlink and return the lowest value, nil when empty
// the destroy callback is not invoked
func (list *List) PopFront() interface{} {
	if !list.isUsable() || 0 == list.count {
		return nil
	}

	q := list.header.next[0]

	// the first node is first on every level it participates in
	for level := 0; level < len(q.next); level += 1 {
		list.header.next[level] = q.next[level]
	}
	if nil != q.next[0] {
		q.next[0].prev = list.header
	}

	for list.height > 1 && nil == list.header.next[list.height-1] {
		list.height -= 1
	}
	list.count -= 1

	value := q.value
	list.pool.FreeNode(q)
	return value
}

// PopBack - unlink and return the highest value, nil when empty
// the destroy callback is not invoked
//
// there is no tail pointer so this walks the whole level zero chain
func (list *List) PopBack() interface{} {
	if !list.isUsable() || 0 == list.count {
		return nil
	}

	p := list.header.next[0]
	for nil != p.next[0] {
		p = p.next[0]
	}

	value, err := list.Take(p.value)
	if nil != err {
		return nil
	}
	return value
}

// Clear - remove every value, releasing each through the destroy callback
func (list *List) Clear() error {
	return list.removeAll(true)
}

// Reset - remove every value without invoking the destroy callback
func (list *List) Reset() error {
	return list.removeAll(false)
}

// Destroy - clear the list and release the header
// the list must not be used afterwards
func (list *List) Destroy() error {
	if err := list.removeAll(true); nil != err {
		return err
	}
	list.pool.FreeNode(list.header)
	list.header = nil
	return nil
}

// internal: unlink a node located by a filled update path
func (list *List) unlink(q *Node, update *[MaxHeight]*Node) interface{} {
	for level := 0; level < len(q.next); level += 1 {
		if update[level].next[level] == q {
			update[level].next[level] = q.next[level]
		}
	}
	if nil != q.next[0] {
		q.next[0].prev = q.prev
	}

	for list.height > 1 && nil == list.header.next[list.height-1] {
		list.height -= 1
	}
	list.count -= 1

	value := q.value
	list.pool.FreeNode(q)
	return value
}

// internal: drop every node, optionally destroying the values
func (list *List) removeAll(destroy bool) error {
	if !list.isUsable() {
		return fault.ErrInvalidList
	}

	p := list.header.next[0]
	for nil != p {
		next := p.next[0]
		if destroy {
			list.destroy(p.value)
		}
		list.pool.FreeNode(p)
		p = next
	}

	for level := 0; level < MaxHeight; level += 1 {
		list.header.next[level] = nil
	}
	list.height = 1
	list.count = 0
	return nil
}
