// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"flag"
	"fmt"

	"github.com/anuj846k/Covenant-Logic-Compiler/internal/config"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/session"
)

func statusCommand(args []string) error {
	configPath := ""
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	fs.StringVar(&configPath, "config", "", "Path to config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.NewConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store := session.NewStore(cfg.State.Path)
	store.Load()
	state := store.Snapshot()

	fmt.Printf("Session file: %s\n\n", store.Path())

	if state.Agreement != nil {
		fmt.Printf("Agreement:    %s (%s, %d pages)\n", state.Agreement.AgreementID, state.Agreement.Filename, state.Agreement.PageCount)
	} else {
		fmt.Println("Agreement:    none")
	}

	if state.Extraction != nil {
		fmt.Printf("Extraction:   %d covenants\n", len(state.Extraction.Covenants))
	} else {
		fmt.Println("Extraction:   none")
	}

	if state.GeneratedCode != nil {
		fmt.Printf("Code:         %d functions\n", len(state.GeneratedCode.Functions))
	} else {
		fmt.Println("Code:         none")
	}

	if state.Calculation != nil {
		verdict := "all compliant"
		if !state.Calculation.AllCompliant {
			verdict = fmt.Sprintf("%d breached", len(state.Calculation.BreachedCovenants))
		}
		fmt.Printf("Calculation:  EBITDA %.2f, %s\n", state.Calculation.EBITDA, verdict)
	} else {
		fmt.Println("Calculation:  none")
	}

	fmt.Println("\nSteps:")
	for i, step := range session.Steps {
		marker := " "
		switch {
		case state.Completed(step):
			marker = "x"
		case state.Selectable(step):
			marker = "-"
		}
		fmt.Printf("  [%s] %d. %s\n", marker, i+1, step.Label())
	}

	return nil
}
