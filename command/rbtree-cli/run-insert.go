// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

type insertResult struct {
	Key      interface{} `json:"key"`
	Inserted bool        `json:"inserted"`
	Depth    uint        `json:"depth"`
	Red      bool        `json:"red"`
}

type summary struct {
	Count   int         `json:"count"`
	Height  int         `json:"height"`
	Valid   bool        `json:"valid"`
	Results interface{} `json:"results"`
}

func runInsert(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	keys, err := argumentKeys(c.Args(), m.strings)
	if nil != err {
		return err
	}

	results := make([]insertResult, 0, len(keys))
	for _, key := range keys {
		before := m.tree.Count()
		node, err := m.tree.Insert(key)
		if nil != err {
			return err
		}
		results = append(results, insertResult{
			Key:      key,
			Inserted: m.tree.Count() != before,
			Depth:    node.Depth(),
			Red:      node.IsRed(),
		})
	}

	return printJson(m.w, summary{
		Count:   m.tree.Count(),
		Height:  m.tree.Height(),
		Valid:   m.tree.IsValid(),
		Results: results,
	})
}
