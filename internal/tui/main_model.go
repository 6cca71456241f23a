// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/anuj846k/Covenant-Logic-Compiler/internal/logger"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/protocol"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/session"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/tui/components/stepbar"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/tui/layout"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/tui/messages"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/tui/screens/calculate"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/tui/screens/certificate"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/tui/screens/extract"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/tui/screens/generate"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/tui/screens/results"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/tui/screens/upload"
)

// chromeLines is the number of rows reserved above screen content for the
// step bar and the status line.
const chromeLines = 2

type MainModel struct {
	currentStep session.Step
	store       *session.Store

	// Individual step screen models
	upload      upload.Model
	extract     extract.Model
	generate    generate.Model
	calculate   calculate.Model
	results     results.Model
	certificate certificate.Model

	stepBar stepbar.Model
	spinner spinner.Model

	busy      bool
	busyLabel string
	errMsg    string

	width, height int
	cmdChan       chan<- protocol.Command
	eventChan     <-chan protocol.Event
}

// NewMainModel creates the wizard with the upload step active
func NewMainModel(cmdChan chan<- protocol.Command, eventChan <-chan protocol.Event, store *session.Store, certDefaults certificate.Defaults) MainModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))

	return MainModel{
		currentStep: session.StepUpload,
		store:       store,
		upload:      upload.NewModel(cmdChan, store),
		extract:     extract.NewModel(cmdChan, store),
		generate:    generate.NewModel(cmdChan, store),
		calculate:   calculate.NewModel(cmdChan, store),
		results:     results.NewModel(store),
		certificate: certificate.NewModel(cmdChan, store, certDefaults),
		stepBar:     stepbar.New(),
		spinner:     sp,
		cmdChan:     cmdChan,
		eventChan:   eventChan,
	}
}

func (m MainModel) Init() tea.Cmd {
	return m.upload.Init()
}

// setSize propagates dimensions, reserving the chrome rows for the step bar
func (m *MainModel) setSize(width, height int) {
	m.width = width
	m.height = height
	m.stepBar = m.stepBar.SetWidth(width)

	screenHeight := height - chromeLines
	if screenHeight < 1 {
		screenHeight = 1
	}
	m.upload.SetSize(width, screenHeight)
	m.extract.SetSize(width, screenHeight)
	m.generate.SetSize(width, screenHeight)
	m.calculate.SetSize(width, screenHeight)
	m.results.SetSize(width, screenHeight)
	m.certificate.SetSize(width, screenHeight)
}

// capturingInput reports whether the active screen owns the keyboard,
// which suppresses global navigation keys
func (m MainModel) capturingInput() bool {
	switch m.currentStep {
	case session.StepExtract:
		return m.extract.CapturingInput()
	case session.StepCalculate:
		return m.calculate.CapturingInput()
	case session.StepCertificate:
		return m.certificate.CapturingInput()
	}
	return false
}

// goToStep switches the active step when gating allows it
func (m *MainModel) goToStep(step session.Step) tea.Cmd {
	if step == m.currentStep {
		return nil
	}
	if !m.store.Selectable(step) {
		return nil
	}
	m.currentStep = step
	m.errMsg = ""
	return m.currentScreenInit()
}

func (m *MainModel) currentScreenInit() tea.Cmd {
	switch m.currentStep {
	case session.StepUpload:
		return m.upload.Init()
	case session.StepExtract:
		return m.extract.Init()
	case session.StepGenerate:
		return m.generate.Init()
	case session.StepCalculate:
		return m.calculate.Init()
	case session.StepResults:
		return m.results.Init()
	case session.StepCertificate:
		return m.certificate.Init()
	}
	return nil
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)

	case spinner.TickMsg:
		if m.busy {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case messages.CommandSentMsg:
		m.busy = true
		m.busyLabel = msg.Label
		m.errMsg = ""
		return m, m.spinner.Tick

	case messages.GoToStepMsg:
		return m, m.goToStep(msg.Step)

	case messages.NextStepMsg:
		if next, ok := m.currentStep.Next(); ok {
			return m, m.goToStep(next)
		}
		return m, nil

	case messages.PrevStepMsg:
		if prev, ok := m.currentStep.Prev(); ok {
			return m, m.goToStep(prev)
		}
		return m, nil

	case messages.ClearSessionRequestMsg:
		go func() {
			m.cmdChan <- protocol.ClearSessionCommand{Metadata: protocol.NewMetadata("")}
		}()
		m.busy = true
		m.busyLabel = "Clearing session"
		return m, m.spinner.Tick
	}

	// Collaborator events refresh all screens and clear the busy state
	if event, ok := msg.(protocol.Event); ok {
		m.busy = false
		m.busyLabel = ""

		switch event := event.(type) {
		case protocol.PipelineErrorEvent:
			m.errMsg = event.Message
			log := logger.GetTUILogger()
			log.Warn().Str("context", event.Context).Str("message", event.Message).Msg("Pipeline error")

		case protocol.SessionClearedEvent:
			m.currentStep = session.StepUpload
			m.errMsg = ""

		case protocol.CalculationCompletedEvent:
			// Jump straight to the results once figures come back
			m.broadcastEvent(msg, &cmds)
			if cmd := m.goToStep(session.StepResults); cmd != nil {
				cmds = append(cmds, cmd)
			}
			return m, tea.Batch(cmds...)
		}

		m.broadcastEvent(msg, &cmds)
		return m, tea.Batch(cmds...)
	}

	// Global navigation keys apply unless a form owns the keyboard
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		key := keyMsg.String()
		if key == "ctrl+c" {
			return m, tea.Quit
		}
		if !m.capturingInput() {
			switch key {
			case "q":
				return m, tea.Quit
			case "tab":
				if next, ok := m.currentStep.Next(); ok {
					return m, m.goToStep(next)
				}
				return m, nil
			case "shift+tab":
				if prev, ok := m.currentStep.Prev(); ok {
					return m, m.goToStep(prev)
				}
				return m, nil
			case "1", "2", "3", "4", "5", "6":
				idx := int(key[0] - '1')
				return m, m.goToStep(session.Steps[idx])
			case "ctrl+r":
				go func() {
					m.cmdChan <- protocol.ClearSessionCommand{Metadata: protocol.NewMetadata("")}
				}()
				m.busy = true
				m.busyLabel = "Clearing session"
				return m, m.spinner.Tick
			}
		}
	}

	// Delegate to the active screen
	var screenCmd tea.Cmd
	switch m.currentStep {
	case session.StepUpload:
		var model tea.Model
		model, screenCmd = m.upload.Update(msg)
		m.upload = model.(upload.Model)
	case session.StepExtract:
		var model tea.Model
		model, screenCmd = m.extract.Update(msg)
		m.extract = model.(extract.Model)
	case session.StepGenerate:
		var model tea.Model
		model, screenCmd = m.generate.Update(msg)
		m.generate = model.(generate.Model)
	case session.StepCalculate:
		var model tea.Model
		model, screenCmd = m.calculate.Update(msg)
		m.calculate = model.(calculate.Model)
	case session.StepResults:
		var model tea.Model
		model, screenCmd = m.results.Update(msg)
		m.results = model.(results.Model)
	case session.StepCertificate:
		var model tea.Model
		model, screenCmd = m.certificate.Update(msg)
		m.certificate = model.(certificate.Model)
	}

	if screenCmd != nil {
		cmds = append(cmds, screenCmd)
	}
	return m, tea.Batch(cmds...)
}

// broadcastEvent delivers a collaborator event to every screen so stale
// views refresh even when they are not active
func (m *MainModel) broadcastEvent(msg tea.Msg, cmds *[]tea.Cmd) {
	var model tea.Model
	var cmd tea.Cmd

	model, cmd = m.upload.Update(msg)
	m.upload = model.(upload.Model)
	appendCmd(cmds, cmd)

	model, cmd = m.extract.Update(msg)
	m.extract = model.(extract.Model)
	appendCmd(cmds, cmd)

	model, cmd = m.generate.Update(msg)
	m.generate = model.(generate.Model)
	appendCmd(cmds, cmd)

	model, cmd = m.calculate.Update(msg)
	m.calculate = model.(calculate.Model)
	appendCmd(cmds, cmd)

	model, cmd = m.results.Update(msg)
	m.results = model.(results.Model)
	appendCmd(cmds, cmd)

	model, cmd = m.certificate.Update(msg)
	m.certificate = model.(certificate.Model)
	appendCmd(cmds, cmd)
}

func appendCmd(cmds *[]tea.Cmd, cmd tea.Cmd) {
	if cmd != nil {
		*cmds = append(*cmds, cmd)
	}
}

func (m MainModel) View() string {
	bar := m.stepBar.SetEntries(stepbar.EntriesFor(m.store.Snapshot(), m.currentStep)).View()

	statusLine := ""
	switch {
	case m.busy:
		statusLine = m.spinner.View() + " " + m.busyLabel + "..."
	case m.errMsg != "":
		statusLine = layout.ErrorStyle.Render("✗ " + m.errMsg)
	}

	var screen string
	switch m.currentStep {
	case session.StepUpload:
		screen = m.upload.View()
	case session.StepExtract:
		screen = m.extract.View()
	case session.StepGenerate:
		screen = m.generate.View()
	case session.StepCalculate:
		screen = m.calculate.View()
	case session.StepResults:
		screen = m.results.View()
	case session.StepCertificate:
		screen = m.certificate.View()
	default:
		screen = "Unknown step"
	}

	return lipgloss.JoinVertical(lipgloss.Left, bar, statusLine, screen)
}
