// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

package generate

import (
	tea "github.com/charmbracelet/bubbletea"

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

	case protocol.CodeGeneratedEvent:
		m.refreshContent()
		m.viewport.GotoTop()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "g" {
			state := m.store.Snapshot()
			if state.Agreement == nil {
				return m, nil
			}
			agreementID := state.Agreement.AgreementID
			log := logger.GetTUILogger()
			log.Info().Str("agreement_id", agreementID).Msg("Sending GenerateCodeCommand")
			go func() {
				m.cmdChan <- protocol.GenerateCodeCommand{
					Metadata:    protocol.NewMetadata(agreementID),
					AgreementID: agreementID,
				}
			}()
			return m, func() tea.Msg {
				return messages.CommandSentMsg{Label: "Generating code"}
			}
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}
