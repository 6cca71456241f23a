// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

package stepbar

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/anuj846k/Covenant-Logic-Compiler/internal/session"
)

// StepState describes how a single wizard step renders in the bar
type StepState int

const (
	StateLocked StepState = iota
	StateAvailable
	StateCompleted
)

// Entry is a single step in the bar
type Entry struct {
	Step    session.Step
	State   StepState
	Current bool
}

// Model renders the six-step wizard progress bar
type Model struct {
	entries []Entry
	width   int
}

// New creates an empty step bar
func New() Model {
	return Model{width: 80}
}

// SetEntries replaces the step entries
func (m Model) SetEntries(entries []Entry) Model {
	m.entries = entries
	return m
}

// SetWidth sets the rendering width
func (m Model) SetWidth(w int) Model {
	m.width = w
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

// View renders: ✓ Upload › ✓ Extract › ● Code › ○ Calculate › ...
func (m Model) View() string {
	if len(m.entries) == 0 {
		return ""
	}

	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("239"))
	locked := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	available := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	current := lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true)
	done := lipgloss.NewStyle().Foreground(lipgloss.Color("35"))

	parts := make([]string, 0, len(m.entries))
	for i, e := range m.entries {
		glyph := "○"
		style := locked
		switch {
		case e.State == StateCompleted:
			glyph = "✓"
			style = done
		case e.State == StateAvailable:
			glyph = "●"
			style = available
		}
		label := fmt.Sprintf("%s %d.%s", glyph, i+1, e.Step.Label())
		if e.Current {
			label = current.Render(label)
		} else {
			label = style.Render(label)
		}
		parts = append(parts, label)
	}

	bar := strings.Join(parts, dim.Render(" › "))
	return lipgloss.NewStyle().MaxWidth(m.width).Render(bar)
}

// EntriesFor derives bar entries from the session state
func EntriesFor(state session.State, current session.Step) []Entry {
	entries := make([]Entry, 0, len(session.Steps))
	for _, step := range session.Steps {
		s := StateLocked
		if state.Completed(step) {
			s = StateCompleted
		} else if state.Selectable(step) {
			s = StateAvailable
		}
		entries = append(entries, Entry{Step: step, State: s, Current: step == current})
	}
	return entries
}
