// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

package generate

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/anuj846k/Covenant-Logic-Compiler/internal/tui/layout"
)

// View renders the code generation screen
func (m Model) View() string {
	state := m.store.Snapshot()

	var content string
	if state.GeneratedCode == nil {
		msg := "Press G to generate compliance code from the extracted covenants."
		if state.Agreement == nil {
			msg = "Upload an agreement first."
		}
		content = lipgloss.NewStyle().
			Padding(2, 4).
			Foreground(lipgloss.Color("241")).
			Render(msg)
	} else {
		content = m.renderCode(state.GeneratedCode.Functions, state.GeneratedCode.ContractRefs)
	}

	return layout.RenderLayout(content, m.GetLayoutInfo(), m.width, m.height)
}

func (m Model) renderCode(functions, refs []string) string {
	header := fmt.Sprintf("Functions: %s", strings.Join(functions, ", "))
	if len(refs) > 0 {
		header += "\n" + lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Render("References: "+strings.Join(refs, ", "))
	}

	codeBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Render(m.viewport.View())

	return lipgloss.NewStyle().Padding(1, 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, header, "", codeBox),
	)
}
