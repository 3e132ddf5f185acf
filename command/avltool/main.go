// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/workload"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// minimum time between runs in watch mode
const rerunInterval = 2 * time.Second

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]", program)
	}

	command := processSetupCommand(program, arguments)
	if "" == command {
		return
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
		masterConfiguration.Logging.Console = true
	}
	if commandCheck == command {
		masterConfiguration.Workload.Check = true
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	if err := fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	quiet := len(options["quiet"]) > 0

	if commandWatch == command {
		watch(configurationFile, masterConfiguration, quiet, log)
		log.Info("finished")
		return
	}

	if err := runWorkload(command, masterConfiguration, quiet, log); nil != err {
		exitwithstatus.Message("%s: %s failed with error: %s", program, command, err)
	}

	log.Info("finished")
}

// run one workload and display the results
func runWorkload(command string, conf *Configuration, quiet bool, log *logger.L) error {
	w, err := workload.New(&conf.Workload, logger.New("workload"))
	if nil != err {
		log.Criticalf("workload setup error: %s", err)
		return err
	}

	result, err := w.Run()
	if nil != err {
		log.Criticalf("%s failed with error: %s", command, err)
		return err
	}

	if commandPrint == command {
		w.Tree().Print(os.Stdout, true)
	}

	if !quiet {
		printResult(result, w.Statistics())
	}
	return nil
}

// rerun the workload whenever the configuration file is written
//
// logging settings are only read at startup
func watch(configurationFile string, conf *Configuration, quiet bool, log *logger.L) {
	watcher, err := newFileWatcher(configurationFile, logger.New(fileWatcherLoggerPrefix))
	if nil != err {
		log.Criticalf("file watcher setup failed with error: %s", err)
		return
	}
	defer watcher.Stop()

	if err := watcher.Start(); nil != err {
		log.Criticalf("file watcher start failed with error: %s", err)
		return
	}

	limiter := rate.NewLimiter(rate.Every(rerunInterval), 1)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	if err := runWorkload(commandWatch, conf, quiet, log); nil != err {
		log.Errorf("initial run error: %s", err)
	}

	for {
		select {
		case <-watcher.Change():
			// editors often write several times in quick succession
			if err := limiter.Wait(context.Background()); nil != err {
				log.Errorf("rate limit error: %s", err)
			}
			select {
			case <-watcher.Change():
			default:
			}

			conf, err := getConfiguration(configurationFile)
			if nil != err {
				log.Errorf("configuration: %q  error: %s", configurationFile, err)
				continue
			}
			if err := runWorkload(commandWatch, conf, quiet, log); nil != err {
				log.Errorf("run error: %s", err)
			}

		case <-watcher.Remove():
			log.Warnf("configuration: %q removed", configurationFile)
			return

		case s := <-signals:
			log.Infof("received signal: %v", s)
			return
		}
	}
}

func printResult(result *workload.Result, statistics *workload.Statistics) {
	fmt.Printf("keys:        %d\n", result.Keys)
	fmt.Printf("inserted:    %d\n", result.Inserted)
	fmt.Printf("overwrites:  %d\n", result.Overwrites)
	fmt.Printf("removed:     %d\n", result.Removed)
	fmt.Printf("missing:     %d\n", result.Missing)
	fmt.Printf("count:       %d\n", result.Count)
	fmt.Printf("height:      %d\n", result.Height)
	fmt.Printf("equal paths: %v\n", result.EqualPaths)
	for _, phase := range []avl.Phase{avl.Insertion, avl.Deletion} {
		fmt.Printf("%s rotations: %d\n", phase, statistics.Total(phase))
		for _, rotation := range []avl.Rotation{avl.RightRight, avl.LeftLeft, avl.RightLeft, avl.LeftRight} {
			fmt.Printf("  %-12s %d\n", rotation.String()+":", statistics.Rotations(rotation, phase))
		}
	}
}
