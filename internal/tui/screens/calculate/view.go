// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

package calculate

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/anuj846k/Covenant-Logic-Compiler/internal/tui/components/card"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/tui/layout"
)

// View renders the financial data screen
func (m Model) View() string {
	var content string
	if m.editing && m.form != nil {
		content = lipgloss.NewStyle().Padding(1, 2).Render(m.form.View())
	} else {
		content = m.renderReview()
	}
	return layout.RenderLayout(content, m.GetLayoutInfo(), m.width, m.height)
}

func (m Model) renderReview() string {
	input := m.financialInput()
	ebitda := input.ConsolidatedEBIT + input.Depreciation + input.Amortisation + input.ImpairmentCosts

	var components strings.Builder
	fmt.Fprintf(&components, "Consolidated EBIT:   %14.2f\n", input.ConsolidatedEBIT)
	fmt.Fprintf(&components, "Depreciation:        %14.2f\n", input.Depreciation)
	fmt.Fprintf(&components, "Amortisation:        %14.2f\n", input.Amortisation)
	fmt.Fprintf(&components, "Impairment Costs:    %14.2f\n", input.ImpairmentCosts)
	fmt.Fprintf(&components, "%s\n", strings.Repeat("─", 36))
	fmt.Fprintf(&components, "EBITDA:              %14.2f", ebitda)

	var debt strings.Builder
	fmt.Fprintf(&debt, "Senior Debt:         %14.2f\n", input.SeniorDebt)
	fmt.Fprintf(&debt, "Total Debt:          %14.2f\n", input.TotalDebt)
	fmt.Fprintf(&debt, "Interest Expense:    %14.2f\n", input.InterestExpense)
	fmt.Fprintf(&debt, "Principal Payments:  %14.2f", input.PrincipalPayments)

	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Render("Press E to edit figures, C to run the compliance calculation")

	return lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(
		lipgloss.Left,
		card.RenderSimple("EBITDA Components", components.String()),
		card.RenderSimple("Debt and Debt Service", debt.String()),
		hint,
	))
}
