// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitmark-inc/exitwithstatus"
)

// commands that need a configuration
const (
	commandRun   = "run"
	commandPrint = "print"
	commandCheck = "check"
	commandWatch = "watch"
)

// setup command handler
//
// returns the name of a command that needs the configuration or an
// empty string if the command was fully handled here
func processSetupCommand(program string, arguments []string) string {

	command := commandRun
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case commandRun, "start":
		return commandRun

	case commandPrint, "p":
		return commandPrint

	case commandCheck, "c":
		return commandCheck

	case commandWatch, "w":
		return commandWatch

	case "version", "v":
		fmt.Printf("%s\n", version)

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %v\n", command)
		}

		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help       (h)      - display this message\n\n")
		fmt.Printf("  version    (v)      - display version sting\n\n")
		fmt.Printf("  run        (start)  - run the workload and show a summary, same as no arguments\n\n")
		fmt.Printf("  print      (p)      - run the workload then display the tree\n\n")
		fmt.Printf("  check      (c)      - run the workload verifying the tree after every operation\n\n")
		fmt.Printf("  watch      (w)      - run the workload again whenever the configuration file changes\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}
	return ""
}
