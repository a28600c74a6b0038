// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package skiplist

import (
	"math/rand"

	"github.com/bitmark-inc/skiplist/fault"
)

// MaxHeight - hard limit for the height of any node
//
// together with the one in four level promotion this keeps the
// expected search cost logarithmic well beyond any practical element
// count; changing it would alter the balance guarantees
const MaxHeight = 32

// CompareFunc - total order over stored values
// returns negative, zero or positive in the manner of bytes.Compare
type CompareFunc func(a interface{}, b interface{}) int

// DestroyFunc - called exactly once for each value the list still
// owns when that value is removed, cleared or destroyed
type DestroyFunc func(value interface{})

// CloneFunc - produce an independent copy of a value, only used by Duplicate
type CloneFunc func(value interface{}) interface{}

// MatchFunc - predicate used by Find, need not agree with the ordering
type MatchFunc func(value interface{}, template interface{}) bool

// VisitorFunc - called per value by Traverse, return false to stop early
type VisitorFunc func(value interface{}) bool

// List - type to hold the header node and the per list state
type List struct {
	header  *Node       // sentinel, nil marks a destroyed list
	height  int         // highest level currently in use
	count   int         // number of stored values
	compare CompareFunc // key ordering
	destroy DestroyFunc // value release
	rnd     *rand.Rand  // per list height source
	pool    Allocator   // node supplier
}

// New - create an initially empty list
//
// the random height source is seeded from the system entropy source,
// use NewSeeded when a reproducible structure is needed
func New(compare CompareFunc, destroy DestroyFunc) (*List, error) {
	return NewSeeded(compare, destroy, randomSeed())
}

// NewSeeded - create an initially empty list with a fixed random seed
func NewSeeded(compare CompareFunc, destroy DestroyFunc, seed int64) (*List, error) {
	return NewWithAllocator(compare, destroy, seed, NewPool())
}

// NewWithAllocator - create an initially empty list drawing its nodes
// from a caller supplied allocator
func NewWithAllocator(compare CompareFunc, destroy DestroyFunc, seed int64, pool Allocator) (*List, error) {
	if nil == compare {
		return nil, fault.ErrInvalidCompareFunction
	}
	if nil == destroy {
		return nil, fault.ErrInvalidDestroyFunction
	}
	if nil == pool {
		return nil, fault.ErrAllocationFailed
	}
	header, err := pool.NewNode(MaxHeight)
	if nil != err {
		return nil, err
	}
	return &List{
		header:  header,
		height:  1,
		count:   0,
		compare: compare,
		destroy: destroy,
		rnd:     rand.New(rand.NewSource(seed)),
		pool:    pool,
	}, nil
}

// IsEmpty - true if the list contains no values
func (list *List) IsEmpty() bool {
	return nil == list || nil == list.header || 0 == list.count
}

// Count - number of values currently in the list
func (list *List) Count() int {
	if nil == list || nil == list.header {
		return 0
	}
	return list.count
}

// Height - highest level currently in use
func (list *List) Height() int {
	if nil == list || nil == list.header {
		return 0
	}
	return list.height
}

// internal: guard for mutating and reading entry points
func (list *List) isUsable() bool {
	return nil != list && nil != list.header
}
