// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/urfave/cli"
)

func runDot(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name := c.String("name")
	output := c.String("output")

	if "" == output {
		return m.tree.WriteDot(m.w, name)
	}

	if m.verbose {
		fmt.Fprintf(m.e, "writing: %q\n", output)
	}

	f, err := os.Create(output)
	if nil != err {
		return err
	}
	defer f.Close()

	if err := writeDot(f, m, name, strings.HasSuffix(output, ".gz")); nil != err {
		return err
	}
	return f.Close()
}

func writeDot(w io.Writer, m *metadata, name string, compress bool) error {
	if !compress {
		return m.tree.WriteDot(w, name)
	}

	z := gzip.NewWriter(w)
	z.Name = name + ".dot"
	if err := m.tree.WriteDot(z, name); nil != err {
		z.Close()
		return err
	}
	return z.Close()
}
