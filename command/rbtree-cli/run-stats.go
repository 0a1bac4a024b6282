// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/redblack/rbtree"
)

type stats struct {
	Count     int                   `json:"count"`
	Height    int                   `json:"height"`
	Valid     bool                  `json:"valid"`
	Root      interface{}           `json:"root"`
	Allocator rbtree.AllocatorStats `json:"allocator"`
}

func runStats(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	s := stats{
		Count:     m.tree.Count(),
		Height:    m.tree.Height(),
		Valid:     m.tree.IsValid(),
		Allocator: m.tree.Stats(),
	}
	if root := m.tree.Root(); nil != root {
		s.Root = root.Key()
	}

	return printJson(m.w, s)
}
