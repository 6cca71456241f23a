// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anuj846k/Covenant-Logic-Compiler/internal/protocol"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/session"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/tui/messages"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/tui/screens/certificate"
	"github.com/anuj846k/Covenant-Logic-Compiler/test/testutil"
)

func newTestWizard(t *testing.T, store *session.Store) (MainModel, *testutil.CommandCapture) {
	t.Helper()

	capture := testutil.NewCommandCapture()
	t.Cleanup(capture.Close)

	events := make(chan protocol.Event, 10)
	m := NewMainModel(capture.Channel(), events, store, certificate.Defaults{
		CompanyName:   "Sample Corporation",
		AgentName:     "Barclays Bank PLC",
		AgreementDate: "24 December 2021",
	})

	updated, _ := m.Update(testutil.WindowSizeMsg(120, 40))
	return updated.(MainModel), capture
}

func update(t *testing.T, m MainModel, msg tea.Msg) MainModel {
	t.Helper()
	updated, _ := m.Update(msg)
	return updated.(MainModel)
}

func TestWizardStartsOnUpload(t *testing.T) {
	m, _ := newTestWizard(t, testutil.NewTempStore(t))
	assert.Equal(t, session.StepUpload, m.currentStep)
}

func TestWizardGatesLockedSteps(t *testing.T) {
	m, _ := newTestWizard(t, testutil.NewTempStore(t))

	t.Run("tab stays put without an upload", func(t *testing.T) {
		m = update(t, m, testutil.SpecialKey(tea.KeyTab))
		assert.Equal(t, session.StepUpload, m.currentStep)
	})

	t.Run("digit jump to a locked step is ignored", func(t *testing.T) {
		m = update(t, m, testutil.KeyPress("5"))
		assert.Equal(t, session.StepUpload, m.currentStep)
	})
}

func TestWizardNavigatesUnlockedSteps(t *testing.T) {
	m, _ := newTestWizard(t, testutil.PopulatedStore(t))

	m = update(t, m, testutil.SpecialKey(tea.KeyTab))
	assert.Equal(t, session.StepExtract, m.currentStep)

	m = update(t, m, testutil.SpecialKey(tea.KeyShiftTab))
	assert.Equal(t, session.StepUpload, m.currentStep)

	m = update(t, m, testutil.KeyPress("5"))
	assert.Equal(t, session.StepResults, m.currentStep)

	m = update(t, m, testutil.KeyPress("6"))
	assert.Equal(t, session.StepCertificate, m.currentStep)
}

func TestWizardBusyState(t *testing.T) {
	m, _ := newTestWizard(t, testutil.NewTempStore(t))

	m = update(t, m, messages.CommandSentMsg{Label: "Uploading agreement"})
	assert.True(t, m.busy)
	assert.Contains(t, m.View(), "Uploading agreement...")

	t.Run("an event clears the busy flag", func(t *testing.T) {
		m = update(t, m, protocol.AgreementUploadedEvent{Agreement: testutil.SampleAgreement()})
		assert.False(t, m.busy)
	})
}

func TestWizardShowsPipelineErrors(t *testing.T) {
	m, _ := newTestWizard(t, testutil.NewTempStore(t))

	m = update(t, m, protocol.PipelineErrorEvent{Message: "Extraction failed", Context: "extract"})
	assert.Equal(t, "Extraction failed", m.errMsg)
	assert.Contains(t, m.View(), "Extraction failed")

	t.Run("the next command wipes the error", func(t *testing.T) {
		m = update(t, m, messages.CommandSentMsg{Label: "Retrying"})
		assert.Empty(t, m.errMsg)
	})
}

func TestWizardAutoAdvancesToResults(t *testing.T) {
	store := testutil.PopulatedStore(t)
	m, _ := newTestWizard(t, store)

	m = update(t, m, testutil.KeyPress("4"))
	require.Equal(t, session.StepCalculate, m.currentStep)

	m = update(t, m, protocol.CalculationCompletedEvent{Calculation: store.Snapshot().Calculation})
	assert.Equal(t, session.StepResults, m.currentStep)
}

func TestWizardClearSession(t *testing.T) {
	store := testutil.PopulatedStore(t)
	m, capture := newTestWizard(t, store)

	m = update(t, m, testutil.KeyPress("5"))
	require.Equal(t, session.StepResults, m.currentStep)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.True(t, m.busy)
	require.True(t, capture.WaitForCommands(1))
	_, ok := capture.LastCommand().(protocol.ClearSessionCommand)
	assert.True(t, ok, "expected a ClearSessionCommand, got %T", capture.LastCommand())

	m = update(t, m, protocol.SessionClearedEvent{})
	assert.Equal(t, session.StepUpload, m.currentStep)
	assert.False(t, m.busy)
}

func TestWizardQuitKeys(t *testing.T) {
	m, _ := newTestWizard(t, testutil.NewTempStore(t))

	_, cmd := m.Update(testutil.KeyPress("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestWizardStepBarReflectsProgress(t *testing.T) {
	m, _ := newTestWizard(t, testutil.PopulatedStore(t))
	view := m.View()
	assert.Contains(t, view, "1.Upload")
	assert.Contains(t, view, "6.Certificate")
}
