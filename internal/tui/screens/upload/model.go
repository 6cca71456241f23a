// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

package upload

import (
	"os"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/anuj846k/Covenant-Logic-Compiler/internal/protocol"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/session"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/tui/layout"
)

// Stage represents the current stage of the upload screen
type Stage int

const (
	Picking Stage = iota
	Summary
)

// Model is the model for the agreement upload screen
type Model struct {
	stage      Stage
	filePicker filepicker.Model
	store      *session.Store
	cmdChan    chan<- protocol.Command
	width      int
	height     int
}

// NewModel creates a new upload model. Starts on the summary stage when a
// previous session already holds an uploaded agreement.
func NewModel(cmdChan chan<- protocol.Command, store *session.Store) Model {
	fp := filepicker.New()
	fp.AllowedTypes = []string{".pdf"}
	fp.FileAllowed = true
	fp.DirAllowed = false

	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	fp.CurrentDirectory = cwd

	stage := Picking
	if store.Snapshot().Agreement != nil {
		stage = Summary
	}

	return Model{
		stage:      stage,
		filePicker: fp,
		store:      store,
		cmdChan:    cmdChan,
		width:      80,
		height:     24,
	}
}

func (m Model) Init() tea.Cmd {
	return m.filePicker.Init()
}

// GetLayoutInfo returns layout information for the upload screen
func (m Model) GetLayoutInfo() layout.LayoutInfo {
	var status string
	var helpItems []layout.HelpItem

	switch m.stage {
	case Picking:
		status = "Select an LMA agreement PDF"
		helpItems = []layout.HelpItem{
			{Key: "↑/↓", Description: "navigate"},
			{Key: "enter", Description: "upload"},
			{Key: "tab", Description: "next step"},
			{Key: "q", Description: "quit"},
		}
	case Summary:
		status = "Agreement uploaded"
		helpItems = []layout.HelpItem{
			{Key: "u", Description: "upload another"},
			{Key: "tab", Description: "next step"},
			{Key: "q", Description: "quit"},
		}
	}

	return layout.LayoutInfo{
		Title:       "Upload Agreement",
		Breadcrumbs: []string{"Axiom", "Upload"},
		Status:      status,
		HelpItems:   helpItems,
	}
}

// SetSize updates the model's dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height

	dims := layout.GetContentArea(m.GetLayoutInfo(), width, height)
	m.filePicker.Height = dims.Height - 4
	if m.filePicker.Height < 3 {
		m.filePicker.Height = 3
	}
}
