// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

package extract

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/anuj846k/Covenant-Logic-Compiler/internal/tui/layout"
)

// View renders the extraction review screen
func (m Model) View() string {
	var content string
	switch {
	case m.mode == Editing:
		content = lipgloss.NewStyle().Padding(1, 2).Render(m.form.View())
	case m.store.Snapshot().Extraction == nil:
		content = m.renderEmpty()
	default:
		content = m.renderPanes()
	}
	return layout.RenderLayout(content, m.GetLayoutInfo(), m.width, m.height)
}

func (m Model) renderEmpty() string {
	state := m.store.Snapshot()
	msg := "Press X to extract covenant definitions from the uploaded agreement."
	if state.Agreement == nil {
		msg = "Upload an agreement first."
	}
	return lipgloss.NewStyle().
		Padding(2, 4).
		Foreground(lipgloss.Color("241")).
		Render(msg)
}

func (m Model) renderPanes() string {
	paneWidth := (m.width - 6) / 2
	if paneWidth < 30 {
		paneWidth = 30
	}

	covenants := m.renderCovenantPane(paneWidth)
	ebitda := m.renderEBITDAPane(paneWidth)

	return lipgloss.NewStyle().Padding(1, 2).Render(
		lipgloss.JoinHorizontal(lipgloss.Top, covenants, "  ", ebitda),
	)
}

func (m Model) renderCovenantPane(width int) string {
	state := m.store.Snapshot()
	var b strings.Builder

	b.WriteString(paneTitle("Covenants", m.pane == PaneCovenants))
	b.WriteString("\n\n")

	if len(state.Extraction.Covenants) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("No covenants. Press A to add one."))
	}

	for i, cov := range state.Extraction.Covenants {
		line := fmt.Sprintf("%s  %s %.2f  %s", cov.Name, limitGlyph(cov.LimitType), cov.LimitValue, cov.SectionRef)
		b.WriteString(cursorLine(line, m.pane == PaneCovenants && i == m.covenantCursor, width))
		b.WriteString("\n")
	}

	return borderedPane(b.String(), width, m.pane == PaneCovenants)
}

func (m Model) renderEBITDAPane(width int) string {
	state := m.store.Snapshot()
	var b strings.Builder

	b.WriteString(paneTitle("EBITDA Definition", m.pane == PaneEBITDA))
	b.WriteString("\n\n")

	def := state.Extraction.EBITDADefinition
	if def == nil {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("No EBITDA definition extracted."))
		return borderedPane(b.String(), width, m.pane == PaneEBITDA)
	}

	fmt.Fprintf(&b, "Base: %s (%s)\n\n", def.BaseMetric, def.SectionRef)

	lastSection := ""
	for i, row := range m.ebitdaRows() {
		if row.section != lastSection {
			lastSection = row.section
			b.WriteString(lipgloss.NewStyle().Bold(true).Render(row.section))
			b.WriteString("\n")
		}
		b.WriteString(cursorLine("  "+row.label, m.pane == PaneEBITDA && i == m.ebitdaCursor, width))
		b.WriteString("\n")
	}

	return borderedPane(b.String(), width, m.pane == PaneEBITDA)
}

func paneTitle(title string, focused bool) string {
	style := lipgloss.NewStyle().Bold(true)
	if focused {
		style = style.Foreground(lipgloss.Color("75"))
	}
	return style.Render(title)
}

func cursorLine(line string, selected bool, width int) string {
	style := lipgloss.NewStyle().MaxWidth(width - 4)
	if selected {
		return style.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Render("› " + line)
	}
	return style.Render("  " + line)
}

func borderedPane(content string, width int, focused bool) string {
	borderColor := lipgloss.Color("240")
	if focused {
		borderColor = lipgloss.Color("75")
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Width(width).
		Padding(0, 1).
		Render(content)
}

func limitGlyph(limitType string) string {
	if limitType == "min" {
		return "≥"
	}
	return "≤"
}
