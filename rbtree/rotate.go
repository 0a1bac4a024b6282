// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

// rotate the sub-tree at p in direction dir and return the new local
// root, colours are left to the caller
//
// e.g. for dir == right:
//
//	      p              c
//	     / \            / \
//	    c   C    →     A   p
//	   / \                / \
//	  A   B              B   C
//
// the returned node's up pointer is p's old parent, the caller must
// put it in the parent's slot that held p (see replace)
func singleRotate(p *Node, dir direction) *Node {
	c := p.link[dir.flip()]
	b := c.link[dir]

	p.link[dir.flip()] = b
	if nil != b {
		b.up = p
	}
	c.link[dir] = p
	c.up = p.up
	p.up = c
	return c
}

// rotate the inner grandchild up two levels: first turn p's child on
// the opposite side of dir away from dir, then rotate p in dir
func doubleRotate(p *Node, dir direction) *Node {
	p.link[dir.flip()] = singleRotate(p.link[dir.flip()], dir.flip())
	return singleRotate(p, dir)
}

// after a rotation at old, splice the new local root into old's former
// parent slot or make it the tree root
func (tree *Tree) replace(old *Node, top *Node) {
	parent := top.up
	if nil == parent {
		tree.root = top
		return
	}
	if parent.link[left] == old {
		parent.link[left] = top
	} else {
		parent.link[right] = top
	}
}
