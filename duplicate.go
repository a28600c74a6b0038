// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package skiplist

import (
	"github.com/bitmark-inc/skiplist/fault"
)

// Duplicate - create an independent copy of the list
//
// every value is passed through the clone callback and inserted into
// a fresh list sharing the same callbacks and allocator; since each
// insert draws its own heights the copy is equivalent in order but
// not necessarily in level structure
func (list *List) Duplicate(clone CloneFunc) (*List, error) {
	if !list.isUsable() {
		return nil, fault.ErrInvalidList
	}
	if nil == clone {
		return nil, fault.ErrInvalidCloneFunction
	}

	dup, err := NewWithAllocator(list.compare, list.destroy, list.rnd.Int63(), list.pool)
	if nil != err {
		return nil, err
	}

	for p := list.header.next[0]; nil != p; p = p.next[0] {
		v := clone(p.value)
		if err := dup.Insert(v); nil != err {
			// the failed clone was never owned by the copy
			list.destroy(v)
			dup.Destroy()
			return nil, err
		}
	}
	return dup, nil
}
