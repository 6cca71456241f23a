// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

package generate

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/anuj846k/Covenant-Logic-Compiler/internal/protocol"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/session"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/tui/layout"
)

// Model is the model for the code generation screen
type Model struct {
	store    *session.Store
	cmdChan  chan<- protocol.Command
	viewport viewport.Model
	ready    bool
	width    int
	height   int
}

// NewModel creates a new code generation model
func NewModel(cmdChan chan<- protocol.Command, store *session.Store) Model {
	return Model{
		store:   store,
		cmdChan: cmdChan,
		width:   80,
		height:  24,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// GetLayoutInfo returns layout information for the generation screen
func (m Model) GetLayoutInfo() layout.LayoutInfo {
	state := m.store.Snapshot()

	status := "No code generated yet"
	helpItems := []layout.HelpItem{
		{Key: "g", Description: "generate"},
		{Key: "q", Description: "quit"},
	}

	if state.GeneratedCode != nil {
		status = "Generated " + state.GeneratedCode.GenerationTime
		helpItems = []layout.HelpItem{
			{Key: "↑/↓", Description: "scroll"},
			{Key: "g", Description: "regenerate"},
			{Key: "tab", Description: "next step"},
		}
	}

	return layout.LayoutInfo{
		Title:       "Generated Compliance Code",
		Breadcrumbs: []string{"Axiom", "Code"},
		Status:      status,
		HelpItems:   helpItems,
	}
}

// SetSize updates the model's dimensions and resizes the code viewport
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height

	dims := layout.GetContentArea(m.GetLayoutInfo(), width, height)
	contentHeight := dims.Height - 4
	if contentHeight < 3 {
		contentHeight = 3
	}

	if !m.ready {
		m.viewport = viewport.New(width-4, contentHeight)
		m.ready = true
		m.refreshContent()
	} else {
		m.viewport.Width = width - 4
		m.viewport.Height = contentHeight
	}
}

// refreshContent reloads the viewport from the stored artifact
func (m *Model) refreshContent() {
	state := m.store.Snapshot()
	if state.GeneratedCode != nil {
		m.viewport.SetContent(state.GeneratedCode.Code)
	}
}
