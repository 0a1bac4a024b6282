// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

// Insert - insert a new key into the tree
//
// returns the node holding the key; if the key was already present
// that node is returned and the tree is not changed.  The only error
// is fault.ErrAllocationFailure, in which case the tree is untouched.
func (tree *Tree) Insert(key Item) (*Node, error) {

	// find the empty slot, nothing is modified until a node exists
	parent := (*Node)(nil)
	dir := left
	for p := tree.root; nil != p; {
		switch p.key.Compare(key) {
		case +1: // p.key > key
			dir = left
		case -1: // p.key < key
			dir = right
		default:
			return p, nil
		}
		parent = p
		p = p.link[dir]
	}

	n, err := tree.pool.newNode(key)
	if nil != err {
		return nil, err
	}
	tree.count += 1

	if nil == parent {
		n.colour = black
		tree.root = n
		return n, nil
	}

	n.up = parent
	parent.link[dir] = n

	tree.balanceInsert(n)
	tree.root.colour = black

	return n, nil
}

// walk up from a red node repairing red-red edges
func (tree *Tree) balanceInsert(n *Node) {
	for {
		p := n.up
		if !isRed(p) {
			return // also covers n being the root
		}

		// p is red, so it is not the root and g exists
		g := p.up
		pDir := g.side(p)
		uncle := g.link[pDir.flip()]

		if isRed(uncle) {
			// colour flip, the red moves up to g
			g.colour = red
			p.colour = black
			uncle.colour = black
			n = g
			continue
		}

		// black or absent uncle: one rotation at g finishes
		var top *Node
		if p.side(n) == pDir {
			top = singleRotate(g, pDir.flip())
		} else {
			top = doubleRotate(g, pDir.flip())
		}
		tree.replace(g, top)
		top.colour = black
		g.colour = red
		return
	}
}
