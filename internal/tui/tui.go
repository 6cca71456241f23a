// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/anuj846k/Covenant-Logic-Compiler/internal/protocol"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/session"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/tui/screens/certificate"
)

// StartTUI initializes and runs the wizard
func StartTUI(cmdChan chan<- protocol.Command, eventChan <-chan protocol.Event, store *session.Store, certDefaults certificate.Defaults) error {
	mainModel := NewMainModel(cmdChan, eventChan, store, certDefaults)

	p := tea.NewProgram(mainModel, tea.WithAltScreen())

	// Forward orchestrator events into the Bubble Tea loop
	go func() {
		for event := range eventChan {
			if criticalErr, ok := event.(protocol.CriticalErrorEvent); ok {
				handleCriticalError(criticalErr)
				return
			}
			p.Send(event)
		}
	}()

	_, err := p.Run()
	return err
}

// handleCriticalError prints a red error message and exits the application
func handleCriticalError(event protocol.CriticalErrorEvent) {
	errorStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("9")).
		Render

	// Write to stderr to avoid corrupting the alternate screen
	fmt.Fprintf(os.Stderr, "\n%s\n", errorStyle("CRITICAL ERROR: "+event.Message))
	if event.Context != "" {
		fmt.Fprintf(os.Stderr, "%s\n", errorStyle("Context: "+event.Context))
	}
	fmt.Fprintf(os.Stderr, "\n")
	os.Exit(1)
}
