// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runCheck(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if err := m.tree.Validate(); nil != err {
		return fmt.Errorf("tree is invalid: %s", err)
	}

	fmt.Fprintf(m.w, "valid: %d nodes, height %d\n", m.tree.Count(), m.tree.Height())
	return nil
}
