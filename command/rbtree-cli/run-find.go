// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

type findResult struct {
	Key    interface{} `json:"key"`
	Found  bool        `json:"found"`
	Depth  uint        `json:"depth"`
	Red    bool        `json:"red,omitempty"`
	Parent interface{} `json:"parent,omitempty"`
}

func runFind(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	keys, err := argumentKeys(c.Args(), m.strings)
	if nil != err {
		return err
	}

	results := make([]findResult, 0, len(keys))
	for _, key := range keys {
		r := findResult{
			Key: key,
		}
		if node := m.tree.Find(key); nil != node {
			r.Found = true
			r.Depth = node.Depth()
			r.Red = node.IsRed()
			if parent := node.Parent(); nil != parent {
				r.Parent = parent.Key()
			}
		}
		results = append(results, r)
	}

	return printJson(m.w, results)
}
