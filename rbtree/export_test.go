// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"fmt"
	"strings"
)

// InOrder - keys of the tree in ascending order
func InOrder(tree *Tree) []Item {
	keys := make([]Item, 0, tree.count)
	stack := []*Node{}
	p := tree.root
	for nil != p || len(stack) > 0 {
		for nil != p {
			stack = append(stack, p)
			p = p.link[left]
		}
		p = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		keys = append(keys, p.key)
		p = p.link[right]
	}
	return keys
}

// Shape - a string that is equal for two trees only if they have the
// same structure, keys, colours and parent links
func Shape(tree *Tree) string {
	b := &strings.Builder{}
	shape(b, tree.root)
	return b.String()
}

func shape(b *strings.Builder, p *Node) {
	if nil == p {
		b.WriteString(".")
		return
	}
	up := interface{}(nil)
	if nil != p.up {
		up = p.up.key
	}
	fmt.Fprintf(b, "(")
	shape(b, p.link[left])
	fmt.Fprintf(b, " %v:%s^%v ", p.key, p.colour, up)
	shape(b, p.link[right])
	fmt.Fprintf(b, ")")
}
