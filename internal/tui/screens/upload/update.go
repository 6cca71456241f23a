// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

package upload

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/anuj846k/Covenant-Logic-Compiler/internal/logger"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/protocol"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/tui/messages"
)

// Update handles messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	log := logger.GetTUILogger().With().Str("component", "upload").Logger()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case protocol.AgreementUploadedEvent:
		m.stage = Summary
		return m, nil

	case tea.KeyMsg:
		if m.stage == Summary {
			switch msg.String() {
			case "u":
				m.stage = Picking
				return m, m.filePicker.Init()
			}
			return m, nil
		}
	}

	if m.stage != Picking {
		return m, nil
	}

	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		log.Info().Str("path", path).Msg("Sending UploadAgreementCommand")
		go func() {
			m.cmdChan <- protocol.UploadAgreementCommand{
				Metadata: protocol.NewMetadata(""),
				Path:     path,
			}
		}()
		return m, tea.Batch(cmd, func() tea.Msg {
			return messages.CommandSentMsg{Label: "Uploading agreement"}
		})
	}

	return m, cmd
}
