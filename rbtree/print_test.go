// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/redblack/rbtree"
)

func TestPrint(t *testing.T) {
	tree := buildIntTree(t, 10, 20, 30)

	b := &bytes.Buffer{}
	depth := tree.Print(b)

	assert.Equal(t, 2, depth)
	expected := "       /------+ 30 red ^20\n" +
		"|------+ 20 black ^<nil>\n" +
		"       \\------+ 10 red ^20\n"
	assert.Equal(t, expected, b.String())
}

func TestPrintEmpty(t *testing.T) {
	b := &bytes.Buffer{}
	assert.Equal(t, 0, rbtree.New().Print(b))
	assert.Equal(t, "", b.String())
}

func TestWriteDot(t *testing.T) {
	tree := buildIntTree(t, 10, 20, 30)

	b := &bytes.Buffer{}
	err := tree.WriteDot(b, "sample")
	assert.NoError(t, err)

	s := b.String()
	assert.True(t, strings.HasPrefix(s, "digraph \"sample\" {\n"))
	assert.Contains(t, s, "n0 [label=\"20\",fillcolor=black];")
	assert.Contains(t, s, "n1 [label=\"10\",fillcolor=red];")
	assert.Contains(t, s, "n2 [label=\"30\",fillcolor=red];")
	assert.Contains(t, s, "n0 -> n1 [color=red];")
	assert.Contains(t, s, "n0 -> n2 [color=red];")
	assert.True(t, strings.HasSuffix(s, "}\n"))
}
