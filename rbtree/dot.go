// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"bufio"
	"fmt"
	"io"
)

// WriteDot - write the tree as a Graphviz digraph called name
//
// nodes are filled with their colour, edges carry the child's colour
func (tree *Tree) WriteDot(w io.Writer, name string) error {
	b := bufio.NewWriter(w)

	fmt.Fprintf(b, "digraph %q {\n", name)
	fmt.Fprintf(b, "  node [shape=circle,style=filled,fontcolor=white];\n")

	ids := make(map[*Node]int, tree.count)
	dotNodes(b, tree.root, ids)
	dotEdges(b, tree.root, ids)

	fmt.Fprintf(b, "}\n")
	return b.Flush()
}

// pre-order so node ids follow the tree shape
func dotNodes(w io.Writer, p *Node, ids map[*Node]int) {
	if nil == p {
		return
	}
	id := len(ids)
	ids[p] = id
	fmt.Fprintf(w, "  n%d [label=\"%v\",fillcolor=%s];\n", id, p.key, p.colour)
	dotNodes(w, p.link[left], ids)
	dotNodes(w, p.link[right], ids)
}

func dotEdges(w io.Writer, p *Node, ids map[*Node]int) {
	if nil == p {
		return
	}
	for _, c := range p.link {
		if nil != c {
			fmt.Fprintf(w, "  n%d -> n%d [color=%s];\n", ids[p], ids[c], c.colour)
		}
	}
	dotEdges(w, p.link[left], ids)
	dotEdges(w, p.link[right], ids)
}
