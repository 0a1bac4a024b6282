// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/redblack/configuration"
	"github.com/bitmark-inc/redblack/soak"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLogDirectory = "log"
	defaultLogFile      = "rbtree-soak.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultWorkers       = 4
	defaultKeyRange      = 10000
	defaultInsertPercent = 55
	defaultCheckInterval = "1s"
	defaultRunTime       = "1m"
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// WorkloadType - the random operation mix
type WorkloadType struct {
	Workers       int     `gluamapper:"workers" json:"workers"`
	Rate          float64 `gluamapper:"rate" json:"rate"`
	Burst         int     `gluamapper:"burst" json:"burst"`
	KeyRange      int     `gluamapper:"key_range" json:"key_range"`
	InsertPercent int     `gluamapper:"insert_percent" json:"insert_percent"`
	NodeLimit     int     `gluamapper:"node_limit" json:"node_limit"`
	Seed          int64   `gluamapper:"seed" json:"seed"`
	CheckInterval string  `gluamapper:"check_interval" json:"check_interval"`
	RunTime       string  `gluamapper:"run_time" json:"run_time"`
}

// Configuration - contents of the Lua configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string               `gluamapper:"pidfile" json:"pidfile"`
	Workload      WorkloadType         `gluamapper:"workload" json:"workload"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default

		Workload: WorkloadType{
			Workers:       defaultWorkers,
			KeyRange:      defaultKeyRange,
			InsertPercent: defaultInsertPercent,
			CheckInterval: defaultCheckInterval,
			RunTime:       defaultRunTime,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// optional absolute paths i.e. blank or an absolute path
	if "" != options.PidFile {
		options.PidFile = ensureAbsolute(options.DataDirectory, options.PidFile)
	}

	// log file must be a plain name inside the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	options.Logging.Directory = ensureAbsolute(options.DataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	if _, _, err := options.Workload.durations(); nil != err {
		return nil, err
	}

	// done
	return options, nil
}

// ensure the path is absolute, relative paths are under directory
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// check interval and total run time
func (w WorkloadType) durations() (time.Duration, time.Duration, error) {
	check, err := time.ParseDuration(w.CheckInterval)
	if nil != err {
		return 0, 0, err
	}
	run, err := time.ParseDuration(w.RunTime)
	if nil != err {
		return 0, 0, err
	}
	return check, run, nil
}

// the soak package view of the workload
func (w WorkloadType) soakConfig() (soak.Config, time.Duration, error) {
	check, run, err := w.durations()
	if nil != err {
		return soak.Config{}, 0, err
	}
	return soak.Config{
		Workers:       w.Workers,
		Rate:          w.Rate,
		Burst:         w.Burst,
		KeyRange:      w.KeyRange,
		InsertPercent: w.InsertPercent,
		NodeLimit:     w.NodeLimit,
		CheckInterval: check,
		Seed:          w.Seed,
	}, run, nil
}
