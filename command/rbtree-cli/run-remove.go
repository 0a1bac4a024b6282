// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

type removeResult struct {
	Key     interface{} `json:"key"`
	Removed bool        `json:"removed"`
}

func runRemove(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	keys, err := argumentKeys(c.Args(), m.strings)
	if nil != err {
		return err
	}

	results := make([]removeResult, 0, len(keys))
	for _, key := range keys {
		before := m.tree.Count()
		m.tree.Delete(key)
		results = append(results, removeResult{
			Key:     key,
			Removed: m.tree.Count() != before,
		})
	}

	return printJson(m.w, summary{
		Count:   m.tree.Count(),
		Height:  m.tree.Height(),
		Valid:   m.tree.IsValid(),
		Results: results,
	})
}
