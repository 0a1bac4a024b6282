// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"github.com/bitmark-inc/redblack/fault"
)

// per-tree node allocator, nodes released by delete are kept on a
// free list linked through the up pointer
type allocator struct {
	limit      int   // maximum live nodes, zero for no limit
	pool       *Node // linked list of reclaimed nodes
	totalNodes int   // total nodes ever created
	freeNodes  int   // number of nodes in the pool
	liveNodes  int   // nodes handed out and not yet reclaimed
}

// AllocatorStats - node allocation figures of a tree
type AllocatorStats struct {
	Limit int `json:"limit"`
	Total int `json:"total"`
	Free  int `json:"free"`
	Live  int `json:"live"`
}

func newAllocator(limit int) *allocator {
	if limit < 0 {
		limit = 0
	}
	return &allocator{
		limit: limit,
	}
}

// allocate a new red node, reuses reclaimed nodes if any are available
//
// fails without side effects once the live node limit is reached
func (a *allocator) newNode(key Item) (*Node, error) {
	if 0 != a.limit && a.liveNodes >= a.limit {
		return nil, fault.ErrAllocationFailure
	}
	a.liveNodes += 1

	if nil == a.pool {
		if 0 != a.freeNodes {
			fault.Panic("rbtree: node pool corrupt")
		}
		a.totalNodes += 1
		return &Node{
			key:    key,
			colour: red,
		}, nil
	}
	p := a.pool
	a.pool = p.up
	p.key = key
	p.colour = red
	p.up = nil // ensure freelist pointer is cleared
	a.freeNodes -= 1
	return p, nil
}

// reclaim a node and keep it in the pool
func (a *allocator) freeNode(node *Node) {
	node.link[left] = nil
	node.link[right] = nil
	node.key = nil
	node.colour = black

	node.up = a.pool // use as free list pointer
	a.pool = node
	a.freeNodes += 1
	a.liveNodes -= 1
}

// Stats - current allocator figures
func (tree *Tree) Stats() AllocatorStats {
	return AllocatorStats{
		Limit: tree.pool.limit,
		Total: tree.pool.totalNodes,
		Free:  tree.pool.freeNodes,
		Live:  tree.pool.liveNodes,
	}
}
