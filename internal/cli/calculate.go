// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/anuj846k/Covenant-Logic-Compiler/internal/api"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/config"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/logger"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/session"
)

type calculateOptions struct {
	configPath   string
	scenarioPath string
	baseURL      string
}

func calculateCommand(args []string) error {
	opts := &calculateOptions{}
	fs := flag.NewFlagSet("calculate", flag.ExitOnError)
	fs.StringVar(&opts.configPath, "config", "", "Path to config file")
	fs.StringVar(&opts.scenarioPath, "scenario", "", "Path to scenario YAML file (defaults to session figures)")
	fs.StringVar(&opts.baseURL, "base-url", "", "Override the collaborator base URL")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.NewConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.baseURL != "" {
		cfg.API.BaseURL = opts.baseURL
	}

	if err := logger.Initialize(&cfg.Log); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.CloseGlobal()

	store := session.NewStore(cfg.State.Path)
	store.Load()
	state := store.Snapshot()

	agreementID := ""
	if state.Agreement != nil {
		agreementID = state.Agreement.AgreementID
	}

	input := state.Financial
	if opts.scenarioPath != "" {
		scenario, err := LoadScenarioFile(opts.scenarioPath)
		if err != nil {
			return err
		}
		fmt.Printf("Scenario: %s\n", scenario.Name)
		input = scenario.Input(agreementID)
	} else {
		input.AgreementID = agreementID
	}

	if input.AgreementID == "" {
		return fmt.Errorf("no agreement in the session; upload one with the wizard or set agreement_id in the scenario")
	}

	client := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout)
	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
	defer cancel()

	calc, err := client.Calculate(ctx, input)
	if err != nil {
		return err
	}

	store.SetFinancial(input)
	store.SetCalculation(calc)

	printCalculation(calc)
	return nil
}

func printCalculation(calc *api.CalculationResponse) {
	fmt.Printf("\nEBITDA: %.2f\n\n", calc.EBITDA)
	fmt.Printf("%-40s %12s %12s  %s\n", "Covenant", "Value", "Limit", "Status")
	fmt.Println(strings.Repeat("-", 76))
	for _, cov := range calc.Covenants {
		status := "COMPLIANT"
		if !cov.Compliant {
			status = "BREACH"
		}
		glyph := "<="
		if cov.LimitType == api.LimitTypeMin {
			glyph = ">="
		}
		fmt.Printf("%-40s %12.2f %9s %.2f  %s\n", cov.Name, cov.Value, glyph, cov.Limit, status)
	}
	fmt.Println()
	if calc.AllCompliant {
		fmt.Println("All financial covenants complied with.")
	} else {
		fmt.Printf("Breached: %s\n", strings.Join(calc.BreachedCovenants, ", "))
	}
}
