// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"github.com/bitmark-inc/redblack/fault"
)

// IsValid - true if all red-black invariants hold
func (tree *Tree) IsValid() bool {
	return nil == tree.Validate()
}

// Validate - check the whole tree and return the first violation found
//
// Not used by Insert or Delete, this is a diagnostic scan of every node
func (tree *Tree) Validate() error {
	if nil == tree.root {
		return nil
	}
	if nil != tree.root.up {
		return fault.ErrParentLink
	}
	if red == tree.root.colour {
		return fault.ErrRootNotBlack
	}
	_, err := validate(tree.root, nil, nil)
	return err
}

// internal: check the sub-tree at p whose keys must lie strictly
// between low and high (nil for unbounded), returns its black height
func validate(p *Node, low Item, high Item) (int, error) {
	if nil == p {
		return 0, nil
	}

	if nil != low && low.Compare(p.key) >= 0 {
		return 0, fault.ErrOrderViolation
	}
	if nil != high && high.Compare(p.key) <= 0 {
		return 0, fault.ErrOrderViolation
	}

	for _, c := range p.link {
		if nil == c {
			continue
		}
		if c.up != p {
			return 0, fault.ErrParentLink
		}
		if red == p.colour && red == c.colour {
			return 0, fault.ErrRedViolation
		}
	}

	lh, err := validate(p.link[left], low, p.key)
	if nil != err {
		return 0, err
	}
	rh, err := validate(p.link[right], p.key, high)
	if nil != err {
		return 0, err
	}
	if lh != rh {
		return 0, fault.ErrBlackHeightMismatch
	}

	if black == p.colour {
		lh += 1
	}
	return lh, nil
}

// Height - number of nodes on the longest root to leaf path
func (tree *Tree) Height() int {
	return height(tree.root)
}

func height(p *Node) int {
	if nil == p {
		return 0
	}
	lh := height(p.link[left])
	rh := height(p.link[right])
	if rh > lh {
		return 1 + rh
	}
	return 1 + lh
}
