// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/anuj846k/Covenant-Logic-Compiler/internal/config"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/logger"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/stub"
)

func stubCommand(args []string) error {
	configPath := ""
	host := ""
	port := 0
	fs := flag.NewFlagSet("stub", flag.ExitOnError)
	fs.StringVar(&configPath, "config", "", "Path to config file")
	fs.StringVar(&host, "host", "", "Override the listen host")
	fs.IntVar(&port, "port", 0, "Override the listen port")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.NewConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if host != "" {
		cfg.Stub.Host = host
	}
	if port != 0 {
		cfg.Stub.Port = port
	}

	if err := logger.Initialize(&cfg.Log); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.CloseGlobal()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nShutting down...")
		cancel()
	}()

	fmt.Printf("Stub collaborator listening on %s:%d\n", cfg.Stub.Host, cfg.Stub.Port)
	return stub.New(&cfg.Stub).Run(ctx)
}
