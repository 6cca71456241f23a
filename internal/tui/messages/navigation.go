// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

package messages

import "github.com/anuj846k/Covenant-Logic-Compiler/internal/session"

// Navigation messages for moving between wizard steps

// GoToStepMsg jumps to a specific step. The main model ignores it when
// the step's prerequisite has not been completed yet.
type GoToStepMsg struct {
	Step session.Step
}

// NextStepMsg advances to the following step if it is unlocked.
type NextStepMsg struct{}

// PrevStepMsg moves back one step.
type PrevStepMsg struct{}

// CommandSentMsg tells the main model a collaborator command is in flight
// so it can show the spinner and reject further submissions.
type CommandSentMsg struct {
	Label string
}

// ClearSessionRequestMsg asks the main model to wipe the stored session.
type ClearSessionRequestMsg struct{}
