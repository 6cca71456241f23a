// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/anuj846k/Covenant-Logic-Compiler/internal/config"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/session"
)

func clearCommand(args []string) error {
	configPath := ""
	force := false
	fs := flag.NewFlagSet("clear", flag.ExitOnError)
	fs.StringVar(&configPath, "config", "", "Path to config file")
	fs.BoolVar(&force, "f", false, "Skip the confirmation prompt")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.NewConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store := session.NewStore(cfg.State.Path)
	store.Load()

	if !force {
		fmt.Printf("Delete session at %s? [y/N] ", store.Path())
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.TrimSpace(strings.ToLower(answer)) != "y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	store.ClearAll()
	fmt.Println("Session cleared. Financial figures are kept for the next run.")
	return nil
}
