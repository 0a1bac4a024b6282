// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

// Find - find a specific item, nil if it is not in the tree
func (tree *Tree) Find(key Item) *Node {
	p := tree.root
	for nil != p {
		switch p.key.Compare(key) {
		case +1: // p.key > key
			p = p.link[left]
		case -1: // p.key < key
			p = p.link[right]
		default:
			return p
		}
	}
	return nil
}
