// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

package calculate

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/anuj846k/Covenant-Logic-Compiler/internal/logger"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/protocol"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/tui/messages"
)

// Update handles messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if !m.editing {
			switch msg.String() {
			case "e":
				m.initForm()
				return m, m.form.Init()
			case "c", "enter":
				return m.sendCalculate()
			}
			return m, nil
		}

		if msg.String() == "esc" {
			m.editing = false
			m.form = nil
			m.loadFromStore()
			return m, nil
		}
	}

	if !m.editing || m.form == nil {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.editing = false
		m.form = nil
		m.store.SetFinancial(m.financialInput())
		return m.sendCalculate()
	}

	return m, cmd
}

// sendCalculate persists the figures and submits the calculation
func (m Model) sendCalculate() (tea.Model, tea.Cmd) {
	input := m.financialInput()
	if input.AgreementID == "" {
		return m, nil
	}

	m.store.SetFinancial(input)
	log := logger.GetTUILogger()
	log.Info().Str("agreement_id", input.AgreementID).Msg("Sending CalculateCommand")
	go func() {
		m.cmdChan <- protocol.CalculateCommand{
			Metadata: protocol.NewMetadata(input.AgreementID),
			Data:     input,
		}
	}()

	return m, func() tea.Msg {
		return messages.CommandSentMsg{Label: "Calculating compliance"}
	}
}
