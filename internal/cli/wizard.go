// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/anuj846k/Covenant-Logic-Compiler/internal/api"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/config"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/logger"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/pipeline"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/protocol"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/session"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/tui"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/tui/screens/certificate"
)

type wizardOptions struct {
	configPath string
	baseURL    string
}

func wizardCommand(args []string) error {
	opts := &wizardOptions{}
	fs := flag.NewFlagSet("wizard", flag.ExitOnError)
	fs.StringVar(&opts.configPath, "config", "", "Path to config file")
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

	// Log to file only so the alternate screen stays clean
	if err := logger.Initialize(&cfg.Log); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.CloseGlobal()

	store := session.NewStore(cfg.State.Path)
	store.Load()

	client := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout)

	cmdChan := make(chan protocol.Command, 10)
	eventChan := make(chan protocol.Event, 10)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	orch := pipeline.New(client, store, cfg.Certificate.OutputDir, cmdChan, eventChan)
	go orch.Run(ctx)

	defaults := certificate.Defaults{
		CompanyName:   cfg.Certificate.CompanyName,
		AgentName:     cfg.Certificate.AgentName,
		AgreementDate: cfg.Certificate.AgreementDate,
	}

	return tui.StartTUI(cmdChan, eventChan, store, defaults)
}
