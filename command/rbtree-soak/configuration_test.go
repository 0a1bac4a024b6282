// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir string, text string) string {
	fileName := filepath.Join(dir, "test.conf")
	err := ioutil.WriteFile(fileName, []byte(text), 0600)
	require.NoError(t, err, "write config")
	return fileName
}

func TestGetConfiguration(t *testing.T) {
	dir, err := ioutil.TempDir("", "rbtree-soak")
	require.NoError(t, err, "temp dir")
	defer os.RemoveAll(dir)

	fileName := writeConfig(t, dir, `
local M = {}
M.data_directory = "."
M.pidfile = "soak.pid"
M.workload = {
    workers = 2,
    key_range = 500,
    node_limit = 100,
    check_interval = "250ms",
    run_time = "2s",
}
return M
`)

	options, err := getConfiguration(fileName)
	require.NoError(t, err, "get configuration")

	assert.Equal(t, filepath.Clean(dir), options.DataDirectory, "data directory")
	assert.Equal(t, filepath.Join(dir, "soak.pid"), options.PidFile, "pid file")
	assert.Equal(t, filepath.Join(dir, defaultLogDirectory), options.Logging.Directory, "log directory")

	info, err := os.Stat(options.Logging.Directory)
	require.NoError(t, err, "log directory exists")
	assert.True(t, info.IsDir(), "log directory is a directory")

	config, runTime, err := options.Workload.soakConfig()
	require.NoError(t, err, "soak config")
	assert.Equal(t, 2, config.Workers, "workers")
	assert.Equal(t, 500, config.KeyRange, "key range")
	assert.Equal(t, defaultInsertPercent, config.InsertPercent, "insert percent default")
	assert.Equal(t, 100, config.NodeLimit, "node limit")
	assert.Equal(t, 250*time.Millisecond, config.CheckInterval, "check interval")
	assert.Equal(t, 2*time.Second, runTime, "run time")
}

func TestGetConfigurationErrors(t *testing.T) {
	dir, err := ioutil.TempDir("", "rbtree-soak")
	require.NoError(t, err, "temp dir")
	defer os.RemoveAll(dir)

	items := []struct {
		name string
		text string
	}{
		{"no data directory", "return {}"},
		{"bad run time", `return { data_directory = ".", workload = { run_time = "soon" } }`},
		{"log file path", `return { data_directory = ".", logging = { file = "x/y.log" } }`},
	}

	for _, item := range items {
		fileName := writeConfig(t, dir, item.text)
		_, err := getConfiguration(fileName)
		assert.Error(t, err, item.name)
	}
}
