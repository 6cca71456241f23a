// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

package extract

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/anuj846k/Covenant-Logic-Compiler/internal/api"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/logger"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/protocol"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/session"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/tui/messages"
)

// Update handles messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case protocol.CovenantsExtractedEvent:
		m.covenantCursor = 0
		m.ebitdaCursor = 0
		m.pane = PaneCovenants
		return m, nil
	}

	if m.mode == Editing {
		return m.updateEditing(msg)
	}
	return m.updateBrowsing(msg)
}

func (m Model) updateBrowsing(msg tea.Msg) (tea.Model, tea.Cmd) {
	log := logger.GetTUILogger().With().Str("component", "extract").Logger()
	state := m.store.Snapshot()

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "x":
		if state.Agreement == nil {
			return m, nil
		}
		agreementID := state.Agreement.AgreementID
		log.Info().Str("agreement_id", agreementID).Msg("Sending ExtractCovenantsCommand")
		go func() {
			m.cmdChan <- protocol.ExtractCovenantsCommand{
				Metadata:    protocol.NewMetadata(agreementID),
				AgreementID: agreementID,
			}
		}()
		return m, func() tea.Msg {
			return messages.CommandSentMsg{Label: "Extracting covenants"}
		}
	}

	if state.Extraction == nil {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.pane == PaneCovenants && m.covenantCursor > 0 {
			m.covenantCursor--
		} else if m.pane == PaneEBITDA && m.ebitdaCursor > 0 {
			m.ebitdaCursor--
		}

	case "down", "j":
		if m.pane == PaneCovenants && m.covenantCursor < len(state.Extraction.Covenants)-1 {
			m.covenantCursor++
		} else if m.pane == PaneEBITDA && m.ebitdaCursor < len(m.ebitdaRows())-1 {
			m.ebitdaCursor++
		}

	case "left", "right", "h", "l":
		if m.pane == PaneCovenants {
			m.pane = PaneEBITDA
		} else {
			m.pane = PaneCovenants
		}

	case "e", "enter":
		if m.pane == PaneCovenants {
			if m.covenantCursor < len(state.Extraction.Covenants) {
				m.openCovenantForm(m.covenantCursor, state.Extraction.Covenants[m.covenantCursor])
				return m, m.form.Init()
			}
		} else {
			rows := m.ebitdaRows()
			if m.ebitdaCursor < len(rows) {
				row := rows[m.ebitdaCursor]
				def := state.Extraction.EBITDADefinition
				if row.isCap {
					m.openCapForm(row.index, def.Caps[row.index])
				} else if row.kind == session.ComponentAddBacks {
					m.openAdjustmentForm(row.kind, row.index, def.AddBacks[row.index])
				} else {
					m.openAdjustmentForm(row.kind, row.index, def.Deductions[row.index])
				}
				return m, m.form.Init()
			}
		}

	case "a":
		if m.pane == PaneCovenants {
			if idx := m.store.AddCovenant(); idx >= 0 {
				m.covenantCursor = idx
				snapshot := m.store.Snapshot()
				m.openCovenantForm(idx, snapshot.Extraction.Covenants[idx])
				return m, m.form.Init()
			}
		}

	case "d":
		if m.pane == PaneCovenants {
			if m.store.DeleteCovenant(m.covenantCursor) {
				remaining := len(m.store.Snapshot().Extraction.Covenants)
				if m.covenantCursor >= remaining && m.covenantCursor > 0 {
					m.covenantCursor--
				}
			}
		}

	case "s":
		if state.Agreement == nil {
			return m, nil
		}
		agreementID := state.Agreement.AgreementID
		covenants := state.Extraction.Covenants
		ebitda := state.Extraction.EBITDADefinition
		log.Info().Str("agreement_id", agreementID).Int("covenants", len(covenants)).Msg("Sending SaveCovenantsCommand")
		go func() {
			m.cmdChan <- protocol.SaveCovenantsCommand{
				Metadata:         protocol.NewMetadata(agreementID),
				AgreementID:      agreementID,
				Covenants:        covenants,
				EBITDADefinition: ebitda,
			}
		}()
		return m, func() tea.Msg {
			return messages.CommandSentMsg{Label: "Saving covenants"}
		}
	}

	return m, nil
}

func (m Model) updateEditing(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.mode = Browsing
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.applyEdit()
		m.mode = Browsing
		m.form = nil
		return m, nil
	}

	return m, cmd
}

// applyEdit writes the completed form back into the session store
func (m *Model) applyEdit() {
	switch m.target {
	case targetCovenant:
		limit, _ := strconv.ParseFloat(m.editLimit, 64)
		m.store.UpdateCovenant(m.editIndex, func(c *api.CovenantDefinition) {
			c.Name = m.editName
			c.LimitValue = limit
			c.LimitType = m.editType
			c.SectionRef = m.editSection
		})

	case targetAdjustment:
		m.store.UpdateEBITDAAdjustment(m.editKind, m.editIndex, func(a *api.EBITDAAdjustment) {
			a.Name = m.editName
			a.SectionRef = m.editSection
		})

	case targetCap:
		value, _ := strconv.ParseFloat(m.editLimit, 64)
		m.store.UpdateEBITDACap(m.editIndex, func(c *api.EBITDACap) {
			c.Item = m.editName
			c.CapType = m.editCapType
			c.CapValue = value
			c.SectionRef = m.editSection
		})
	}
}
