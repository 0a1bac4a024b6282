// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

// Delete - removes a specific item from the tree
//
// deleting a key that is not present, or deleting from an empty
// tree, leaves the tree unchanged
func (tree *Tree) Delete(key Item) {
	q := tree.Find(key)
	if nil == q {
		return
	}

	// two children: the in-order predecessor takes over the key and
	// is unlinked instead, it has no right child
	if nil != q.link[left] && nil != q.link[right] {
		r := q.link[left]
		for nil != r.link[right] {
			r = r.link[right]
		}
		q.key = r.key
		q = r
	}

	tree.unlink(q)
	tree.pool.freeNode(q)
	tree.count -= 1

	if nil != tree.root {
		tree.root.colour = black
	}
}

// remove a node with at most one child from the tree
func (tree *Tree) unlink(q *Node) {
	child := q.link[left]
	if nil == child {
		child = q.link[right]
	}

	parent := q.up
	if nil != child {
		child.up = parent
	}

	if nil == parent {
		tree.root = child
		return
	}

	dir := parent.side(q)
	parent.link[dir] = child

	switch {
	case red == q.colour:
		// black heights are unaffected
	case isRed(child):
		child.colour = black
	default:
		tree.balanceDelete(parent, dir)
	}
}

// the sub-tree parent.link[dir] is one black short of its sibling,
// walk up until the deficit is absorbed
func (tree *Tree) balanceDelete(parent *Node, dir direction) {
	for nil != parent {

		// a deficit below a node means the other side has at least
		// one black node, so the sibling always exists
		s := parent.link[dir.flip()]

		// red sibling: rotate it above parent so the new sibling is
		// black, then carry on at the same level
		if isRed(s) {
			top := singleRotate(parent, dir)
			tree.replace(parent, top)
			top.colour = black
			parent.colour = red
			s = parent.link[dir.flip()]
		}

		if !isRed(s.link[left]) && !isRed(s.link[right]) {
			s.colour = red
			if red == parent.colour {
				parent.colour = black
				return
			}

			// parent's whole sub-tree is now short, move up
			n := parent
			parent = n.up
			if nil != parent {
				dir = parent.side(n)
			}
			continue
		}

		// at least one red nephew: one rotation resolves everything
		saved := parent.colour
		var top *Node
		if isRed(s.link[dir.flip()]) {
			top = singleRotate(parent, dir)
		} else {
			top = doubleRotate(parent, dir)
		}
		tree.replace(parent, top)
		top.colour = saved
		top.link[left].colour = black
		top.link[right].colour = black
		return
	}
}
