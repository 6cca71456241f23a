// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package common provides shared types used across multiple packages.
package common

// Metadata contains common fields for all messages exchanged between the
// wizard UI and the pipeline orchestrator. This includes Commands
// (UI → orchestrator) and Events (orchestrator → UI).
type Metadata struct {
	// AgreementID correlates messages to one pipeline instance.
	// Optional - empty before the first upload succeeds.
	AgreementID string `json:"agreement_id,omitempty"`

	// CorrelationID links an event back to the command that caused it.
	CorrelationID string `json:"correlation_id,omitempty"`

	// Version indicates the protocol version for backward compatibility.
	// Format: "v{major}.{minor}.{patch}" (e.g., "v1.0.0")
	Version string `json:"version"`
}

// CurrentProtocolVersion defines the current version of the protocol.
// This should be updated when making breaking changes to the protocol.
const CurrentProtocolVersion = "v1.0.0"

// Event represents events that can be sent from the orchestrator to the TUI.
// Any type implementing this interface can be sent through the event channel.
type Event interface {
	GetMetadata() Metadata
}
