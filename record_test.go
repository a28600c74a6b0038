// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package skiplist_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/skiplist"
	"github.com/bitmark-inc/skiplist/fault"
)

// a struct value ordered by name, matched by size
type record struct {
	name string
	size int
}

func recordCompare(a interface{}, b interface{}) int {
	return strings.Compare(a.(*record).name, b.(*record).name)
}

func sizeMatch(value interface{}, template interface{}) bool {
	return value.(*record).size == template.(int)
}

func newRecordList(t *testing.T) *skiplist.List {
	list, err := skiplist.NewSeeded(recordCompare, func(interface{}) {}, 1720)
	assert.NoError(t, err, "create failed")

	for _, r := range []*record{
		{name: "delta", size: 4},
		{name: "alpha", size: 2},
		{name: "echo", size: 2},
		{name: "bravo", size: 7},
		{name: "charlie", size: 2},
	} {
		assert.NoError(t, list.Insert(r), "insert failed")
	}
	return list
}

func TestFind(t *testing.T) {
	list := newRecordList(t)

	out := make([]interface{}, 10)
	n, err := list.Find(2, sizeMatch, out)
	assert.NoError(t, err, "find failed")
	assert.Equal(t, 3, n, "wrong match count")

	// matches arrive in key order
	assert.Equal(t, "alpha", out[0].(*record).name, "wrong first match")
	assert.Equal(t, "charlie", out[1].(*record).name, "wrong second match")
	assert.Equal(t, "echo", out[2].(*record).name, "wrong third match")

	// capacity truncates the scan
	short := make([]interface{}, 2)
	n, err = list.Find(2, sizeMatch, short)
	assert.NoError(t, err, "find failed")
	assert.Equal(t, 2, n, "capacity not honoured")

	// no matches is a not found error
	n, err = list.Find(99, sizeMatch, out)
	assert.Equal(t, fault.ErrNotFound, err, "expected not found")
	assert.Equal(t, 0, n, "count on no matches")

	// argument validation
	_, err = list.Find(2, nil, out)
	assert.Equal(t, fault.ErrInvalidMatchFunction, err, "expected invalid match function")
	_, err = list.Find(2, sizeMatch, nil)
	assert.Equal(t, fault.ErrInvalidCapacity, err, "expected invalid capacity")
}

func TestDuplicateList(t *testing.T) {
	list := newRecordList(t)

	clone := func(value interface{}) interface{} {
		r := *value.(*record)
		return &r
	}

	dup, err := list.Duplicate(clone)
	assert.NoError(t, err, "duplicate failed")
	assert.Equal(t, list.Count(), dup.Count(), "copy count differs")
	assert.NoError(t, dup.CheckStructure(), "copy is inconsistent")

	// element-wise equal in ascending order
	p := list.First()
	q := dup.First()
	for nil != p {
		assert.NotNil(t, q, "copy is shorter")
		assert.Equal(t, p.Value().(*record).name, q.Value().(*record).name, "copy order differs")
		assert.Equal(t, p.Value().(*record).size, q.Value().(*record).size, "copy value differs")
		assert.True(t, p.Value() != q.Value(), "copy shares a value with the original")
		p = p.Next()
		q = q.Next()
	}
	assert.Nil(t, q, "copy is longer")

	// mutating the copy must not affect the original
	assert.NoError(t, dup.Remove(&record{name: "alpha"}), "remove from copy failed")
	assert.NoError(t, dup.Insert(&record{name: "foxtrot", size: 9}), "insert into copy failed")
	assert.NotNil(t, list.Search(&record{name: "alpha"}), "original lost a value")
	assert.Nil(t, list.Search(&record{name: "foxtrot"}), "original gained a value")

	_, err = list.Duplicate(nil)
	assert.Equal(t, fault.ErrInvalidCloneFunction, err, "expected invalid clone function")
}

func TestInsertNil(t *testing.T) {
	list := newRecordList(t)
	assert.Equal(t, fault.ErrInvalidKey, list.Insert(nil), "expected invalid key")
}
