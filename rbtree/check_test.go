// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/redblack/fault"
)

func TestValidateDetectsViolations(t *testing.T) {
	tests := []struct {
		name string
		root func() *Node
		err  error
	}{
		{
			name: "valid",
			root: func() *Node {
				return makeNode(20, black, makeNode(10, red, nil, nil), makeNode(30, red, nil, nil))
			},
			err: nil,
		},
		{
			name: "red root",
			root: func() *Node {
				return makeNode(20, red, nil, nil)
			},
			err: fault.ErrRootNotBlack,
		},
		{
			name: "red red",
			root: func() *Node {
				return makeNode(20, black, makeNode(10, red, makeNode(5, red, nil, nil), nil), makeNode(30, black, nil, nil))
			},
			err: fault.ErrRedViolation,
		},
		{
			name: "black height",
			root: func() *Node {
				return makeNode(20, black, makeNode(10, black, nil, nil), nil)
			},
			err: fault.ErrBlackHeightMismatch,
		},
		{
			name: "order",
			root: func() *Node {
				return makeNode(20, black, makeNode(10, red, nil, makeNode(25, black, nil, nil)), makeNode(30, red, nil, nil))
			},
			err: fault.ErrOrderViolation,
		},
		{
			name: "duplicate",
			root: func() *Node {
				return makeNode(20, black, makeNode(20, red, nil, nil), nil)
			},
			err: fault.ErrOrderViolation,
		},
		{
			name: "parent link",
			root: func() *Node {
				p := makeNode(20, black, makeNode(10, red, nil, nil), makeNode(30, red, nil, nil))
				p.link[right].up = p.link[left]
				return p
			},
			err: fault.ErrParentLink,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := &Tree{root: tt.root(), pool: newAllocator(0)}
			assert.Equal(t, tt.err, tree.Validate())
			assert.Equal(t, nil == tt.err, tree.IsValid())
		})
	}
}

func TestHeight(t *testing.T) {
	tree := &Tree{root: makeNode(20, black, makeNode(10, black, makeNode(5, red, nil, nil), nil), makeNode(30, black, nil, nil))}
	assert.Equal(t, 3, tree.Height())
}
