// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/redblack/rbtree"
)

type metadata struct {
	tree    *rbtree.Tree
	strings bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "rbtree-cli"
	app.Usage = "build and inspect a red-black tree"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "keys, k",
			Value: "",
			Usage: " comma separated initial `KEYS`, inserted in order",
		},
		cli.BoolFlag{
			Name:  "strings, s",
			Usage: " treat keys as strings instead of integers",
		},
		cli.IntFlag{
			Name:  "limit, l",
			Value: 0,
			Usage: " maximum number of live nodes, 0 for no limit `COUNT`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "insert",
			Usage:     "insert keys and show the outcome of each",
			ArgsUsage: "KEY...\n   (* = required)",
			Action:    runInsert,
		},
		{
			Name:      "remove",
			Usage:     "remove keys and show the outcome of each",
			ArgsUsage: "KEY...\n   (* = required)",
			Action:    runRemove,
		},
		{
			Name:      "find",
			Usage:     "look up keys",
			ArgsUsage: "KEY...\n   (* = required)",
			Action:    runFind,
		},
		{
			Name:   "check",
			Usage:  "validate all red-black invariants",
			Action: runCheck,
		},
		{
			Name:   "print",
			Usage:  "draw the tree as text",
			Action: runPrint,
		},
		{
			Name:  "dot",
			Usage: "write the tree as a Graphviz digraph",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Value: "rbtree",
					Usage: " graph `NAME`",
				},
				cli.StringFlag{
					Name:  "output, o",
					Value: "",
					Usage: " output `FILE`, gzip compressed if it ends in .gz [stdout]",
				},
			},
			Action: runDot,
		},
		{
			Name:   "stats",
			Usage:  "show tree and allocator figures as JSON",
			Action: runStats,
		},
		{
			Name:  "version",
			Usage: "display rbtree-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// build the initial tree
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		command := c.Args().Get(0)
		if "version" == command {
			return nil
		}

		limit := c.GlobalInt("limit")
		if limit < 0 {
			return ErrNegativeLimit
		}

		m := &metadata{
			tree:    rbtree.NewWithLimit(limit),
			strings: c.GlobalBool("strings"),
			verbose: verbose,
			e:       e,
			w:       w,
		}

		keys, err := parseKeyList(c.GlobalString("keys"), m.strings)
		if nil != err {
			return err
		}
		for _, key := range keys {
			if _, err := m.tree.Insert(key); nil != err {
				return fmt.Errorf("insert: %v  error: %s", key, err)
			}
		}

		if verbose {
			fmt.Fprintf(e, "initial keys: %d  tree count: %d\n", len(keys), m.tree.Count())
		}

		c.App.Metadata["config"] = m
		return nil
	}

	return app
}
