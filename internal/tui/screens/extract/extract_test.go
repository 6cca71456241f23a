// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

package extract

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anuj846k/Covenant-Logic-Compiler/internal/protocol"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/session"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/tui/messages"
	"github.com/anuj846k/Covenant-Logic-Compiler/test/testutil"
)

func newTestModel(t *testing.T, populated bool) (Model, *testutil.CommandCapture, *session.Store) {
	t.Helper()

	capture := testutil.NewCommandCapture()
	t.Cleanup(capture.Close)

	store := testutil.NewTempStore(t)
	if populated {
		store.SetAgreement(testutil.SampleAgreement())
		store.SetExtraction(testutil.SampleExtraction())
	}

	m := NewModel(capture.Channel(), store)
	m.SetSize(120, 36)
	return m, capture, store
}

func press(t *testing.T, m Model, key string) Model {
	t.Helper()
	updated, _ := m.Update(testutil.KeyPress(key))
	return updated.(Model)
}

func TestExtractKeySendsCommand(t *testing.T) {
	m, capture, _ := newTestModel(t, true)

	updated, cmd := m.Update(testutil.KeyPress("x"))
	m = updated.(Model)

	require.NotNil(t, cmd)
	sent, ok := testutil.ExecuteCommand(cmd).(messages.CommandSentMsg)
	require.True(t, ok)
	assert.Equal(t, "Extracting covenants", sent.Label)

	require.True(t, capture.WaitForCommands(1))
	extractCmd, ok := capture.LastCommand().(protocol.ExtractCovenantsCommand)
	require.True(t, ok, "expected ExtractCovenantsCommand, got %T", capture.LastCommand())
	assert.Equal(t, "agr_1a2b3c4d5e6f", extractCmd.AgreementID)
}

func TestExtractRequiresAnAgreement(t *testing.T) {
	m, capture, _ := newTestModel(t, false)

	_, cmd := m.Update(testutil.KeyPress("x"))
	assert.Nil(t, cmd)
	assert.Equal(t, 0, capture.CommandCount())
}

func TestCursorNavigation(t *testing.T) {
	m, _, _ := newTestModel(t, true)

	t.Run("down moves within the covenant list", func(t *testing.T) {
		m = press(t, m, "j")
		assert.Equal(t, 1, m.covenantCursor)
	})

	t.Run("down clamps at the last covenant", func(t *testing.T) {
		m = press(t, m, "j")
		assert.Equal(t, 1, m.covenantCursor)
	})

	t.Run("up moves back", func(t *testing.T) {
		m = press(t, m, "k")
		assert.Equal(t, 0, m.covenantCursor)
	})

	t.Run("left and right switch panes", func(t *testing.T) {
		m = press(t, m, "l")
		assert.Equal(t, PaneEBITDA, m.pane)
		m = press(t, m, "h")
		assert.Equal(t, PaneCovenants, m.pane)
	})
}

func TestEBITDARowsFlattenDefinition(t *testing.T) {
	m, _, _ := newTestModel(t, true)

	rows := m.ebitdaRows()
	require.Len(t, rows, 3)
	assert.Equal(t, "Add-backs", rows[0].section)
	assert.Equal(t, "Deductions", rows[1].section)
	assert.Equal(t, "Caps", rows[2].section)
	assert.True(t, rows[2].isCap)
	assert.Contains(t, rows[2].label, "Projected Synergies")
}

func TestAddCovenantOpensEditForm(t *testing.T) {
	m, _, store := newTestModel(t, true)

	before := len(store.Snapshot().Extraction.Covenants)
	m = press(t, m, "a")

	covenants := store.Snapshot().Extraction.Covenants
	require.Len(t, covenants, before+1)
	assert.Equal(t, "New Covenant", covenants[before].Name)
	assert.Equal(t, before, m.covenantCursor)
	assert.Equal(t, Editing, m.mode)
	assert.True(t, m.CapturingInput())
}

func TestDeleteCovenantClampsCursor(t *testing.T) {
	m, _, store := newTestModel(t, true)

	m = press(t, m, "j")
	require.Equal(t, 1, m.covenantCursor)

	m = press(t, m, "d")
	assert.Len(t, store.Snapshot().Extraction.Covenants, 1)
	assert.Equal(t, 0, m.covenantCursor)
}

func TestSaveSendsCovenants(t *testing.T) {
	m, capture, _ := newTestModel(t, true)

	_, cmd := m.Update(testutil.KeyPress("s"))
	require.NotNil(t, cmd)

	require.True(t, capture.WaitForCommands(1))
	saveCmd, ok := capture.LastCommand().(protocol.SaveCovenantsCommand)
	require.True(t, ok, "expected SaveCovenantsCommand, got %T", capture.LastCommand())
	assert.Equal(t, "agr_1a2b3c4d5e6f", saveCmd.AgreementID)
	assert.Len(t, saveCmd.Covenants, 2)
	require.NotNil(t, saveCmd.EBITDADefinition)
}

func TestEscCancelsEditing(t *testing.T) {
	m, _, store := newTestModel(t, true)

	m = press(t, m, "e")
	require.Equal(t, Editing, m.mode)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)
	assert.Equal(t, Browsing, m.mode)
	assert.False(t, m.CapturingInput())
	// Cancelling leaves the covenant untouched.
	assert.Equal(t, "Senior Leverage Ratio", store.Snapshot().Extraction.Covenants[0].Name)
}

func TestExtractedEventResetsCursors(t *testing.T) {
	m, _, _ := newTestModel(t, true)
	m = press(t, m, "j")
	m = press(t, m, "l")

	updated, _ := m.Update(protocol.CovenantsExtractedEvent{Extraction: testutil.SampleExtraction()})
	m = updated.(Model)

	assert.Equal(t, 0, m.covenantCursor)
	assert.Equal(t, 0, m.ebitdaCursor)
	assert.Equal(t, PaneCovenants, m.pane)
}

func TestLayoutInfoStatus(t *testing.T) {
	t.Run("before extraction", func(t *testing.T) {
		m, _, _ := newTestModel(t, false)
		assert.Equal(t, "No covenants extracted yet", m.GetLayoutInfo().Status)
	})

	t.Run("after extraction", func(t *testing.T) {
		m, _, _ := newTestModel(t, true)
		assert.Equal(t, "2 covenants extracted", m.GetLayoutInfo().Status)
	})
}
