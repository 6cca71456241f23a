// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

package certificate

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/anuj846k/Covenant-Logic-Compiler/internal/protocol"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/session"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/tui/layout"
)

// Defaults prefills the signatory form from configuration
type Defaults struct {
	CompanyName   string
	AgentName     string
	AgreementDate string
}

// Model is the model for the certificate download screen
type Model struct {
	store   *session.Store
	cmdChan chan<- protocol.Command

	form    *huh.Form
	editing bool

	companyName   string
	agentName     string
	agreementDate string
	testDate      string
	signaturePath string

	savedPath string

	width  int
	height int
}

// NewModel creates a new certificate model
func NewModel(cmdChan chan<- protocol.Command, store *session.Store, defaults Defaults) Model {
	return Model{
		store:         store,
		cmdChan:       cmdChan,
		companyName:   defaults.CompanyName,
		agentName:     defaults.AgentName,
		agreementDate: defaults.AgreementDate,
		testDate:      time.Now().Format("2006-01-02"),
		width:         80,
		height:        24,
	}
}

// initForm builds the signatory details form
func (m *Model) initForm() {
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("company_name").
				Title("Company Name").
				Value(&m.companyName).
				Validate(requireNonEmpty("company name")),
			huh.NewInput().
				Key("agent_name").
				Title("Agent Name").
				Value(&m.agentName).
				Validate(requireNonEmpty("agent name")),
			huh.NewInput().
				Key("agreement_date").
				Title("Agreement Date").
				Value(&m.agreementDate),
			huh.NewInput().
				Key("test_date").
				Title("Test Date").
				Value(&m.testDate),
			huh.NewInput().
				Key("signature_path").
				Title("Signature Image (optional PNG path)").
				Value(&m.signaturePath).
				Validate(optionalFile),
		),
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

// GetLayoutInfo returns layout information for the certificate screen
func (m Model) GetLayoutInfo() layout.LayoutInfo {
	var status string
	var helpItems []layout.HelpItem

	switch {
	case m.editing:
		status = "Enter signatory details"
		helpItems = []layout.HelpItem{
			{Key: "tab", Description: "next field"},
			{Key: "enter", Description: "download"},
			{Key: "esc", Description: "cancel"},
		}
	case m.savedPath != "":
		status = "Certificate saved"
		helpItems = []layout.HelpItem{
			{Key: "g", Description: "download again"},
			{Key: "q", Description: "quit"},
		}
	default:
		status = "Ready to generate the compliance certificate"
		helpItems = []layout.HelpItem{
			{Key: "g", Description: "download certificate"},
			{Key: "shift+tab", Description: "back"},
			{Key: "q", Description: "quit"},
		}
	}

	return layout.LayoutInfo{
		Title:       "Compliance Certificate",
		Breadcrumbs: []string{"Axiom", "Certificate"},
		Status:      status,
		HelpItems:   helpItems,
	}
}

// SetSize updates the model's dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func requireNonEmpty(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func optionalFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("file not found")
	}
	return nil
}
