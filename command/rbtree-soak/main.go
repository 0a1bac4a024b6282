// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/redblack/background"
	"github.com/bitmark-inc/redblack/fault"
	"github.com/bitmark-inc/redblack/soak"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, _, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] --config-file=FILE", program)
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	if len(options["verbose"]) > 0 {
		masterConfiguration.Logging.Levels[logger.DefaultTag] = "debug"
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != masterConfiguration.PidFile {
		lockFile, err := os.OpenFile(masterConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, masterConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(masterConfiguration.PidFile)
	}

	soakConfig, runTime, err := masterConfiguration.Workload.soakConfig()
	fault.PanicIfError("workload configuration", err)

	s, err := soak.New(soakConfig, soak.NewLogObserver(logger.New("soak")))
	if nil != err {
		log.Criticalf("soak setup error: %s", err)
		exitwithstatus.Message("%s: soak setup error: %s", program, err)
	}

	log.Infof("workers: %d  key range: %d  insert: %d%%  node limit: %d  run time: %s",
		soakConfig.Workers, soakConfig.KeyRange, soakConfig.InsertPercent, soakConfig.NodeLimit, runTime)

	processes := background.Start(s.Processes(), nil)

	// wait for the run time, a signal or a broken tree
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	failed := false
	select {
	case sig := <-ch:
		log.Infof("received signal: %v", sig)
	case <-time.After(runTime):
		log.Info("run time expired")
	case <-s.Failed():
		failed = true
	}

	processes.Stop()

	report, err := s.Check()
	if nil != err {
		failed = true
		fault.Criticalf("final check failed: %s", err)
	}
	log.Infof("final: count: %d  height: %d  stats: %+v", report.Count, report.Height, report.Stats)
	for name, value := range report.Counters {
		log.Infof("counter: %s = %d", name, value)
	}

	if failed {
		log.Criticalf("%s", fault.ErrTreeInvariantViolated)
		log.Flush()
		exitwithstatus.Exit(1)
	}
}
