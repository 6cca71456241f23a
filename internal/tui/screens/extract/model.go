// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

package extract

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

// Pane identifies which list has focus
type Pane int

const (
	PaneCovenants Pane = iota
	PaneEBITDA
)

// Mode distinguishes list browsing from inline editing
type Mode int

const (
	Browsing Mode = iota
	Editing
)

// editTarget identifies what the open form is editing
type editTarget int

const (
	targetCovenant editTarget = iota
	targetAdjustment
	targetCap
)

// ebitdaRow is a flattened entry in the EBITDA definition pane
type ebitdaRow struct {
	section string
	kind    session.EBITDAComponentKind
	isCap   bool
	index   int
	label   string
}

// Model is the model for the covenant extraction and review screen
type Model struct {
	store   *session.Store
	cmdChan chan<- protocol.Command

	pane           Pane
	mode           Mode
	covenantCursor int
	ebitdaCursor   int

	form        *huh.Form
	target      editTarget
	editIndex   int
	editKind    session.EBITDAComponentKind
	editName    string
	editLimit   string
	editType    string
	editSection string
	editCapType string

	width  int
	height int
}

// NewModel creates a new extraction review model
func NewModel(cmdChan chan<- protocol.Command, store *session.Store) Model {
	return Model{
		store:   store,
		cmdChan: cmdChan,
		pane:    PaneCovenants,
		width:   80,
		height:  24,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// CapturingInput reports whether an edit form currently owns the keyboard
func (m Model) CapturingInput() bool {
	return m.mode == Editing
}

// GetLayoutInfo returns layout information for the extraction screen
func (m Model) GetLayoutInfo() layout.LayoutInfo {
	state := m.store.Snapshot()

	var status string
	var helpItems []layout.HelpItem

	switch {
	case m.mode == Editing:
		status = "Editing"
		helpItems = []layout.HelpItem{
			{Key: "tab", Description: "next field"},
			{Key: "enter", Description: "apply"},
			{Key: "esc", Description: "cancel"},
		}
	case state.Extraction == nil:
		status = "No covenants extracted yet"
		helpItems = []layout.HelpItem{
			{Key: "x", Description: "extract"},
			{Key: "q", Description: "quit"},
		}
	default:
		status = fmt.Sprintf("%d covenants extracted", len(state.Extraction.Covenants))
		helpItems = []layout.HelpItem{
			{Key: "↑/↓", Description: "navigate"},
			{Key: "←/→", Description: "switch pane"},
			{Key: "e", Description: "edit"},
			{Key: "a", Description: "add"},
			{Key: "d", Description: "delete"},
			{Key: "s", Description: "save"},
			{Key: "x", Description: "re-extract"},
		}
	}

	return layout.LayoutInfo{
		Title:       "Extract Covenants",
		Breadcrumbs: []string{"Axiom", "Extract"},
		Status:      status,
		HelpItems:   helpItems,
	}
}

// SetSize updates the model's dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// ebitdaRows flattens the EBITDA definition into navigable rows
func (m Model) ebitdaRows() []ebitdaRow {
	state := m.store.Snapshot()
	if state.Extraction == nil || state.Extraction.EBITDADefinition == nil {
		return nil
	}
	def := state.Extraction.EBITDADefinition

	var rows []ebitdaRow
	for i, a := range def.AddBacks {
		rows = append(rows, ebitdaRow{
			section: "Add-backs",
			kind:    session.ComponentAddBacks,
			index:   i,
			label:   fmt.Sprintf("%s (%s)", a.Name, a.SectionRef),
		})
	}
	for i, d := range def.Deductions {
		rows = append(rows, ebitdaRow{
			section: "Deductions",
			kind:    session.ComponentDeductions,
			index:   i,
			label:   fmt.Sprintf("%s (%s)", d.Name, d.SectionRef),
		})
	}
	for i, c := range def.Caps {
		rows = append(rows, ebitdaRow{
			section: "Caps",
			isCap:   true,
			index:   i,
			label:   fmt.Sprintf("%s: %s %.2f (%s)", c.Item, c.CapType, c.CapValue, c.SectionRef),
		})
	}
	return rows
}

// openCovenantForm builds the edit form for the covenant at index
func (m *Model) openCovenantForm(index int, cov api.CovenantDefinition) {
	m.target = targetCovenant
	m.editIndex = index
	m.editName = cov.Name
	m.editLimit = strconv.FormatFloat(cov.LimitValue, 'f', -1, 64)
	m.editType = cov.LimitType
	m.editSection = cov.SectionRef

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Covenant Name").
				Value(&m.editName).
				Validate(requireNonEmpty("name")),
			huh.NewInput().
				Key("limit").
				Title("Limit Value").
				Value(&m.editLimit).
				Validate(requireFloat),
			huh.NewSelect[string]().
				Key("limit_type").
				Title("Limit Type").
				Options(
					huh.NewOption("Maximum (must not exceed)", api.LimitTypeMax),
					huh.NewOption("Minimum (must not fall below)", api.LimitTypeMin),
				).
				Value(&m.editType),
			huh.NewInput().
				Key("section_ref").
				Title("Section Reference").
				Value(&m.editSection),
		),
	).WithTheme(huh.ThemeCharm())
	m.mode = Editing
}

// openAdjustmentForm builds the edit form for an add-back or deduction
func (m *Model) openAdjustmentForm(kind session.EBITDAComponentKind, index int, adj api.EBITDAAdjustment) {
	m.target = targetAdjustment
	m.editKind = kind
	m.editIndex = index
	m.editName = adj.Name
	m.editSection = adj.SectionRef

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Adjustment").
				Value(&m.editName).
				Validate(requireNonEmpty("name")),
			huh.NewInput().
				Key("section_ref").
				Title("Section Reference").
				Value(&m.editSection),
		),
	).WithTheme(huh.ThemeCharm())
	m.mode = Editing
}

// openCapForm builds the edit form for an EBITDA cap
func (m *Model) openCapForm(index int, cap api.EBITDACap) {
	m.target = targetCap
	m.editIndex = index
	m.editName = cap.Item
	m.editCapType = cap.CapType
	m.editLimit = strconv.FormatFloat(cap.CapValue, 'f', -1, 64)
	m.editSection = cap.SectionRef

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("item").
				Title("Capped Item").
				Value(&m.editName).
				Validate(requireNonEmpty("item")),
			huh.NewInput().
				Key("cap_type").
				Title("Cap Type").
				Value(&m.editCapType),
			huh.NewInput().
				Key("cap_value").
				Title("Cap Value").
				Value(&m.editLimit).
				Validate(requireFloat),
			huh.NewInput().
				Key("section_ref").
				Title("Section Reference").
				Value(&m.editSection),
		),
	).WithTheme(huh.ThemeCharm())
	m.mode = Editing
}

func requireNonEmpty(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func requireFloat(s string) error {
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return fmt.Errorf("must be a number")
	}
	return nil
}
