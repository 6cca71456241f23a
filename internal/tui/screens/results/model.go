// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

package results

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/anuj846k/Covenant-Logic-Compiler/internal/session"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/tui/layout"
)

// Model is the model for the compliance results screen
type Model struct {
	store  *session.Store
	width  int
	height int
}

// NewModel creates a new results model
func NewModel(store *session.Store) Model {
	return Model{
		store:  store,
		width:  80,
		height: 24,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// GetLayoutInfo returns layout information for the results screen
func (m Model) GetLayoutInfo() layout.LayoutInfo {
	state := m.store.Snapshot()

	status := "No calculation yet"
	if calc := state.Calculation; calc != nil {
		if calc.AllCompliant {
			status = "All covenants compliant"
		} else {
			status = fmt.Sprintf("%d covenant(s) breached", len(calc.BreachedCovenants))
		}
	}

	return layout.LayoutInfo{
		Title:       "Compliance Results",
		Breadcrumbs: []string{"Axiom", "Results"},
		Status:      status,
		HelpItems: []layout.HelpItem{
			{Key: "tab", Description: "next step"},
			{Key: "shift+tab", Description: "back"},
			{Key: "q", Description: "quit"},
		},
	}
}

// SetSize updates the model's dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.SetSize(msg.Width, msg.Height)
	}
	return m, nil
}
