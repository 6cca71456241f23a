// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli wires the commands of the axiom binary: the interactive
// wizard, the headless calculation runner, session inspection, and the
// local stub collaborator.
package cli

import (
	"fmt"
	"os"
)

const (
	appName    = "axiom"
	appVersion = "0.1.0"
)

// Execute runs the CLI application
func Execute() error {
	command := "wizard"
	args := os.Args[1:]
	if len(args) > 0 {
		command = args[0]
		args = args[1:]
	}

	switch command {
	case "wizard":
		return wizardCommand(args)
	case "calculate":
		return calculateCommand(args)
	case "status":
		return statusCommand(args)
	case "clear":
		return clearCommand(args)
	case "stub":
		return stubCommand(args)
	case "version":
		fmt.Printf("%s version %s\n", appName, appVersion)
		return nil
	case "help", "-h", "--help":
		return printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		return printUsage()
	}
}

func printUsage() error {
	fmt.Printf(`%s - covenant compliance wizard for LMA agreements

Usage:
  %s [command] [arguments]

Commands:
  wizard         Run the interactive six-step compliance wizard (default)
  calculate      Run a compliance calculation headlessly from a scenario file
  status         Show the persisted session state
  clear          Delete the persisted session
  stub           Run a local collaborator with canned responses
  version        Print version information
  help           Show this help message

Examples:
  %s
  %s calculate --scenario quarter-end.yaml
  %s status
  %s stub --port 8000

`, appName, appName, appName, appName, appName, appName)
	return nil
}
