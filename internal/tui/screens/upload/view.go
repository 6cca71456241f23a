// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

package upload

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/anuj846k/Covenant-Logic-Compiler/internal/tui/components/card"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/tui/layout"
)

// View renders the upload screen
func (m Model) View() string {
	var content string
	switch m.stage {
	case Picking:
		content = m.renderPicker()
	case Summary:
		content = m.renderSummary()
	}
	return layout.RenderLayout(content, m.GetLayoutInfo(), m.width, m.height)
}

func (m Model) renderPicker() string {
	style := lipgloss.NewStyle().Padding(1, 2)

	instructions := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Margin(1, 0).
		Render("Navigate to the agreement PDF and press ENTER to upload it")

	currentPath := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("75")).
		Margin(0, 0, 1, 0).
		Render(fmt.Sprintf("Current: %s", m.filePicker.CurrentDirectory))

	return style.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		instructions,
		currentPath,
		m.filePicker.View(),
	))
}

func (m Model) renderSummary() string {
	agreement := m.store.Snapshot().Agreement
	if agreement == nil {
		return lipgloss.NewStyle().Padding(1, 2).Render("No agreement uploaded yet.")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Agreement ID:  %s\n", agreement.AgreementID)
	fmt.Fprintf(&b, "Filename:      %s\n", agreement.Filename)
	fmt.Fprintf(&b, "Pages:         %d\n", agreement.PageCount)
	if agreement.DefinitionsFound {
		fmt.Fprintf(&b, "Definitions:   pages %s\n", agreement.DefinitionsPageRange)
	} else {
		b.WriteString("Definitions:   not located\n")
	}
	fmt.Fprintf(&b, "Uploaded:      %s", agreement.UploadTime)

	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Render("Press TAB to continue to covenant extraction")

	return lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(
		lipgloss.Left,
		card.RenderSimple("Uploaded Agreement", b.String()),
		hint,
	))
}
