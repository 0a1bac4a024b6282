// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	rootBranch  branch = iota
	leftBranch  branch = iota
	rightBranch branch = iota
)

// Print - display an ASCII graphic representation of the tree
//
// right sub-trees are above and left sub-trees below their parent,
// returns the maximum depth of the tree
func (tree *Tree) Print(w io.Writer) int {
	return printTree(w, tree.root, "", rootBranch)
}

// internal print - returns the maximum depth of the tree
func printTree(w io.Writer, tree *Node, prefix string, br branch) int {
	if nil == tree {
		return 0
	}
	rd := 0
	ld := 0
	if nil != tree.link[right] {
		t := "       "
		if leftBranch == br {
			t = "|      "
		}
		rd = printTree(w, tree.link[right], prefix+t, rightBranch)
	}
	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	up := interface{}(nil)
	if nil != tree.up {
		up = tree.up.key
	}
	fmt.Fprintf(w, "%v %s ^%v\n", tree.key, tree.colour, up)
	if nil != tree.link[left] {
		t := "       "
		if rightBranch == br {
			t = "|      "
		}
		ld = printTree(w, tree.link[left], prefix+t, leftBranch)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}

// String - colour name for printing
func (c colour) String() string {
	if red == c {
		return "red"
	}
	return "black"
}
