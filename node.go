// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package skiplist

import (
	"sync"

	"github.com/bitmark-inc/skiplist/counter"
	"github.com/bitmark-inc/skiplist/fault"
)

// a node in the list
//
// the length of the next slice is the node's height, fixed when the
// node is created and never changed; prev is the level zero back
// link: it refers to the immediate level zero predecessor, or to the
// list header when the node is first
type Node struct {
	value interface{} // value part for data storage
	prev  *Node       // level zero back link
	next  []*Node     // per level forward links
}

// Value - read the value stored in a node
func (p *Node) Value() interface{} {
	return p.value
}

// Height - number of levels this node participates in
func (p *Node) Height() int {
	return len(p.next)
}

// Next - step forward along level zero
// returns nil at the end of the list
func (p *Node) Next() *Node {
	return p.next[0]
}

// Prev - step backward along level zero
// returns nil at the start of the list
func (p *Node) Prev() *Node {
	q := p.prev
	if nil == q || nil == q.value {
		// the header is the only node without a value
		return nil
	}
	return q
}

// Allocator - supplier of node records for a list
//
// NewNode must return a node with a forward link slice of exactly the
// requested height and no links set; an error return means the insert
// is abandoned before any relinking starts.  FreeNode receives nodes
// the list no longer references.
type Allocator interface {
	NewNode(height int) (*Node, error)
	FreeNode(node *Node)
}

// Pool - the default allocator
//
// reclaimed nodes are kept on per height free lists for reuse; the
// counters allow tests to verify that every allocated node is
// eventually returned
type Pool struct {
	sync.Mutex
	free  [MaxHeight + 1]*Node // free list heads indexed by height
	total counter.Counter      // nodes ever created
	live  counter.Counter      // nodes currently held by lists
}

// NewPool - create an empty node pool
func NewPool() *Pool {
	return new(Pool)
}

// NewNode - allocate a node, reusing a reclaimed one if any are available
func (pool *Pool) NewNode(height int) (*Node, error) {
	if height < 1 || height > MaxHeight {
		return nil, fault.ErrAllocationFailed
	}
	pool.Lock()
	p := pool.free[height]
	if nil == p {
		pool.Unlock()
		pool.total.Increment()
		pool.live.Increment()
		return &Node{
			next: make([]*Node, height),
		}, nil
	}
	pool.free[height] = p.prev
	p.prev = nil // ensure free list pointer is cleared
	pool.Unlock()
	pool.live.Increment()
	return p, nil
}

// FreeNode - reclaim a node and keep it in the pool
func (pool *Pool) FreeNode(p *Node) {
	if nil == p {
		return
	}
	p.value = nil
	for i := range p.next {
		p.next[i] = nil
	}
	height := len(p.next)
	pool.Lock()
	p.prev = pool.free[height] // use as free list pointer
	pool.free[height] = p
	pool.Unlock()
	pool.live.Decrement()
}

// Live - number of nodes currently held by lists
func (pool *Pool) Live() uint64 {
	return pool.live.Uint64()
}

// Total - number of nodes ever created by this pool
func (pool *Pool) Total() uint64 {
	return pool.total.Uint64()
}
