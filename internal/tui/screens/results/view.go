// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

package results

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/anuj846k/Covenant-Logic-Compiler/internal/tui/components/card"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/tui/layout"
)

// View renders the compliance results screen
func (m Model) View() string {
	state := m.store.Snapshot()

	var content string
	if state.Calculation == nil {
		content = lipgloss.NewStyle().
			Padding(2, 4).
			Foreground(lipgloss.Color("241")).
			Render("Run the calculation step first.")
	} else {
		content = m.renderResults()
	}

	return layout.RenderLayout(content, m.GetLayoutInfo(), m.width, m.height)
}

func (m Model) renderResults() string {
	calc := m.store.Snapshot().Calculation

	var table strings.Builder
	fmt.Fprintf(&table, "%-38s %10s %10s  %-10s\n", "Covenant", "Value", "Limit", "Status")
	table.WriteString(strings.Repeat("─", 74))
	table.WriteString("\n")

	for _, cov := range calc.Covenants {
		status := layout.CompliantStyle.Render("COMPLIANT")
		if !cov.Compliant {
			status = layout.BreachStyle.Render("BREACH")
		}
		limit := fmt.Sprintf("%s %.2f", limitGlyph(cov.LimitType), cov.Limit)
		fmt.Fprintf(&table, "%-38s %10.2f %10s  %s\n", truncate(cov.Name, 38), cov.Value, limit, status)
	}

	var summary strings.Builder
	fmt.Fprintf(&summary, "EBITDA: %.2f\n", calc.EBITDA)
	fmt.Fprintf(&summary, "Calculated: %s", calc.CalculationTime)
	if len(calc.BreachedCovenants) > 0 {
		fmt.Fprintf(&summary, "\nBreached: %s", strings.Join(calc.BreachedCovenants, ", "))
	}

	verdict := layout.CompliantStyle.Render("✓ All financial covenants complied with")
	if !calc.AllCompliant {
		verdict = layout.BreachStyle.Render("✗ One or more financial covenants breached")
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(
		lipgloss.Left,
		card.RenderSimple("Covenant Compliance", table.String()),
		card.RenderSimple("Summary", summary.String()),
		verdict,
	))
}

func limitGlyph(limitType string) string {
	if limitType == "min" {
		return "≥"
	}
	return "≤"
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
