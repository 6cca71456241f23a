// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

package logger

import (
	"github.com/rs/zerolog"
)

// Static logger getters that map directly to config.yaml log.levels
// These ensure consistent logger names across the codebase

// GetTUILogger returns a logger for TUI components
func GetTUILogger() zerolog.Logger {
	return GetLogger("tui")
}

// GetAPILogger returns a logger for collaborator API calls
func GetAPILogger() zerolog.Logger {
	return GetLogger("api")
}

// GetSessionLogger returns a logger for session persistence
func GetSessionLogger() zerolog.Logger {
	return GetLogger("session")
}

// GetPipelineLogger returns a logger for the pipeline orchestrator
func GetPipelineLogger() zerolog.Logger {
	return GetLogger("pipeline")
}

// GetStubLogger returns a logger for the dev collaborator server
func GetStubLogger() zerolog.Logger {
	return GetLogger("stub")
}
