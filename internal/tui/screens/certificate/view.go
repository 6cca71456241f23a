// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

package certificate

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/anuj846k/Covenant-Logic-Compiler/internal/tui/components/card"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/tui/layout"
)

// View renders the certificate screen
func (m Model) View() string {
	var content string
	switch {
	case m.editing && m.form != nil:
		content = lipgloss.NewStyle().Padding(1, 2).Render(m.form.View())
	default:
		content = m.renderOverview()
	}
	return layout.RenderLayout(content, m.GetLayoutInfo(), m.width, m.height)
}

func (m Model) renderOverview() string {
	state := m.store.Snapshot()

	var parts []string

	if calc := state.Calculation; calc != nil {
		var b strings.Builder
		verdict := "complied with"
		if !calc.AllCompliant {
			verdict = "NOT complied with"
		}
		fmt.Fprintf(&b, "Company:    %s\n", m.companyName)
		fmt.Fprintf(&b, "Agent:      %s\n", m.agentName)
		fmt.Fprintf(&b, "Test Date:  %s\n", m.testDate)
		fmt.Fprintf(&b, "Covenants:  %s", verdict)
		parts = append(parts, card.RenderSimple("Certificate Details", b.String()))
	}

	if m.savedPath != "" {
		saved := layout.CompliantStyle.Render("✓ Saved to " + m.savedPath)
		parts = append(parts, saved)
	} else {
		parts = append(parts, lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Render("Press G to enter signatory details and download the signed PDF"))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, parts...),
	)
}
