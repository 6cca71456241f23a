// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertCommandSent verifies a command of the expected type was captured
func AssertCommandSent(t *testing.T, capture *CommandCapture, expectedType interface{}) {
	require.True(t, capture.WaitForCommands(1), "Expected a command to be sent")
	assert.IsType(t, expectedType, capture.LastCommand())
}

// AssertQuitMessage verifies the command produces a quit message
func AssertQuitMessage(t *testing.T, cmd tea.Cmd) {
	require.NotNil(t, cmd)
	msg := cmd()
	assert.IsType(t, tea.QuitMsg{}, msg)
}

// AssertNoCommand verifies no command was generated
func AssertNoCommand(t *testing.T, cmd tea.Cmd) {
	assert.Nil(t, cmd)
}

// AssertViewNotEmpty verifies the model renders something
func AssertViewNotEmpty(t *testing.T, model tea.Model) {
	assert.NotEmpty(t, model.View())
}
