// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

// Item - a key item must implement the Compare function
//
// Compare returns -1, 0, +1 as the receiver is less than, equal to or
// greater than the argument
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// colour of a node
type colour bool

const (
	black colour = false
	red   colour = true
)

// a child slot, also the direction of a rotation
type direction int

const (
	left  direction = 0
	right direction = 1
)

// opposite side
func (d direction) flip() direction {
	return 1 - d
}

// Node - a node in the tree
type Node struct {
	link   [2]*Node // left and right sub-trees
	up     *Node    // points to parent node, not an owner
	key    Item     // key part for ordering
	colour colour
}

// Tree - type to hold the root node of a tree
type Tree struct {
	root  *Node
	count int
	pool  *allocator
}

// New - create an initially empty tree
func New() *Tree {
	return NewWithLimit(0)
}

// NewWithLimit - create an empty tree that refuses to hold more than
// maxNodes nodes, zero or negative means unlimited
func NewWithLimit(maxNodes int) *Tree {
	return &Tree{
		root:  nil,
		count: 0,
		pool:  newAllocator(maxNodes),
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Key - read the key from a node item
func (p *Node) Key() Item {
	return p.key
}

// Parent - return parent node of a node
func (p *Node) Parent() *Node {
	return p.up
}

// Left - return the left child of a node
func (p *Node) Left() *Node {
	return p.link[left]
}

// Right - return the right child of a node
func (p *Node) Right() *Node {
	return p.link[right]
}

// IsRed - true for a red node, false for black
func (p *Node) IsRed() bool {
	return isRed(p)
}

// nil nodes are the black leaves
func isRed(p *Node) bool {
	return nil != p && red == p.colour
}

// which child slot of p holds c
func (p *Node) side(c *Node) direction {
	if p.link[right] == c {
		return right
	}
	return left
}

// Depth - get the depth of a node, the root is at depth zero
func (p *Node) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}
