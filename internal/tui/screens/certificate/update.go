// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

package certificate

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

	case protocol.CertificateSavedEvent:
		m.savedPath = msg.Path
		return m, nil

	case tea.KeyMsg:
		if !m.editing {
			if msg.String() == "g" {
				m.initForm()
				return m, m.form.Init()
			}
			return m, nil
		}

		if msg.String() == "esc" {
			m.editing = false
			m.form = nil
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
		return m.sendDownload()
	}

	return m, cmd
}

// sendDownload submits the certificate request with the signatory details
func (m Model) sendDownload() (tea.Model, tea.Cmd) {
	state := m.store.Snapshot()
	agreementID := ""
	if state.Agreement != nil {
		agreementID = state.Agreement.AgreementID
	}

	signatory := protocol.SignatoryDetails{
		CompanyName:   m.companyName,
		AgentName:     m.agentName,
		AgreementDate: m.agreementDate,
		TestDate:      m.testDate,
		SignaturePath: m.signaturePath,
	}

	log := logger.GetTUILogger()
	log.Info().Str("agreement_id", agreementID).Str("company", m.companyName).Msg("Sending DownloadCertificateCommand")
	go func() {
		m.cmdChan <- protocol.DownloadCertificateCommand{
			Metadata:  protocol.NewMetadata(agreementID),
			Signatory: signatory,
		}
	}()

	return m, func() tea.Msg {
		return messages.CommandSentMsg{Label: "Generating certificate"}
	}
}
