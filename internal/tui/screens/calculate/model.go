// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

package calculate

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/anuj846k/Covenant-Logic-Compiler/internal/api"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/protocol"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/session"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/tui/layout"
)

// Model is the model for the financial data entry screen
type Model struct {
	store   *session.Store
	cmdChan chan<- protocol.Command

	form    *huh.Form
	editing bool

	ebit        string
	depr        string
	amort       string
	impairment  string
	seniorDebt  string
	totalDebt   string
	interest    string
	principal   string

	width  int
	height int
}

// NewModel creates a new financial data model prefilled from the session
func NewModel(cmdChan chan<- protocol.Command, store *session.Store) Model {
	m := Model{
		store:   store,
		cmdChan: cmdChan,
		width:   80,
		height:  24,
	}
	m.loadFromStore()
	return m
}

// loadFromStore prefills the input buffers from the persisted financials
func (m *Model) loadFromStore() {
	fin := m.store.Snapshot().Financial
	m.ebit = formatAmount(fin.ConsolidatedEBIT)
	m.depr = formatAmount(fin.Depreciation)
	m.amort = formatAmount(fin.Amortisation)
	m.impairment = formatAmount(fin.ImpairmentCosts)
	m.seniorDebt = formatAmount(fin.SeniorDebt)
	m.totalDebt = formatAmount(fin.TotalDebt)
	m.interest = formatAmount(fin.InterestExpense)
	m.principal = formatAmount(fin.PrincipalPayments)
}

// initForm builds the financial input form
func (m *Model) initForm() {
	amountField := func(key, title string, value *string) *huh.Input {
		return huh.NewInput().
			Key(key).
			Title(title).
			Value(value).
			Validate(requireAmount)
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			amountField("ebit", "Consolidated EBIT", &m.ebit),
			amountField("depreciation", "Depreciation", &m.depr),
			amountField("amortisation", "Amortisation", &m.amort),
			amountField("impairment", "Impairment Costs", &m.impairment),
		).Title("EBITDA Components"),
		huh.NewGroup(
			amountField("senior_debt", "Senior Debt", &m.seniorDebt),
			amountField("total_debt", "Total Debt", &m.totalDebt),
			amountField("interest", "Interest Expense", &m.interest),
			amountField("principal", "Principal Payments", &m.principal),
		).Title("Debt and Debt Service"),
	).WithTheme(huh.ThemeCharm())
	m.editing = true
}

func (m Model) Init() tea.Cmd {
	return nil
}

// CapturingInput reports whether the form currently owns the keyboard
func (m Model) CapturingInput() bool {
	return m.editing
}

// GetLayoutInfo returns layout information for the financial data screen
func (m Model) GetLayoutInfo() layout.LayoutInfo {
	var status string
	var helpItems []layout.HelpItem

	if m.editing {
		status = "Enter financial figures"
		helpItems = []layout.HelpItem{
			{Key: "tab", Description: "next field"},
			{Key: "enter", Description: "submit"},
			{Key: "esc", Description: "cancel"},
		}
	} else {
		status = "Review figures, then calculate"
		helpItems = []layout.HelpItem{
			{Key: "e", Description: "edit figures"},
			{Key: "c", Description: "calculate"},
			{Key: "tab", Description: "next step"},
		}
	}

	return layout.LayoutInfo{
		Title:       "Financial Data",
		Breadcrumbs: []string{"Axiom", "Calculate"},
		Status:      status,
		HelpItems:   helpItems,
	}
}

// SetSize updates the model's dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// financialInput parses the buffers into the request payload
func (m Model) financialInput() api.FinancialDataInput {
	state := m.store.Snapshot()
	agreementID := ""
	if state.Agreement != nil {
		agreementID = state.Agreement.AgreementID
	}

	return api.FinancialDataInput{
		AgreementID:       agreementID,
		ConsolidatedEBIT:  parseAmount(m.ebit),
		Depreciation:      parseAmount(m.depr),
		Amortisation:      parseAmount(m.amort),
		ImpairmentCosts:   parseAmount(m.impairment),
		SeniorDebt:        parseAmount(m.seniorDebt),
		TotalDebt:         parseAmount(m.totalDebt),
		InterestExpense:   parseAmount(m.interest),
		PrincipalPayments: parseAmount(m.principal),
	}
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseAmount(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func requireAmount(s string) error {
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return fmt.Errorf("must be a number")
	}
	return nil
}
