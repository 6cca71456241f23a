// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

// Here lies the definition of the data the orchestrator can send to the UI.
// All data the UI receives from the orchestrator is named: Event. Every
// command produces exactly one terminal event - the step's success event or
// a PipelineErrorEvent.
package protocol

import (
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/api"
)

// AgreementUploadedEvent is sent when an agreement upload succeeded and the
// artifact has been stored.
type AgreementUploadedEvent struct {
	Metadata
	Agreement *api.AgreementUploadResponse
}

func (e AgreementUploadedEvent) GetMetadata() Metadata {
	return e.Metadata
}

// CovenantsExtractedEvent is sent when covenant extraction completed.
type CovenantsExtractedEvent struct {
	Metadata
	Extraction *api.ExtractionResponse
}

func (e CovenantsExtractedEvent) GetMetadata() Metadata {
	return e.Metadata
}

// CodeGeneratedEvent is sent when calculation code has been generated.
type CodeGeneratedEvent struct {
	Metadata
	Code *api.GeneratedCodeResponse
}

func (e CodeGeneratedEvent) GetMetadata() Metadata {
	return e.Metadata
}

// CalculationCompletedEvent is sent when the compliance calculation
// finished. The UI advances to the results step on receipt.
type CalculationCompletedEvent struct {
	Metadata
	Calculation *api.CalculationResponse
}

func (e CalculationCompletedEvent) GetMetadata() Metadata {
	return e.Metadata
}

// CovenantsSavedEvent acknowledges a covenant review push.
type CovenantsSavedEvent struct {
	Metadata
	Message string
}

func (e CovenantsSavedEvent) GetMetadata() Metadata {
	return e.Metadata
}

// CertificateSavedEvent is sent when the signed certificate PDF has been
// written to disk.
type CertificateSavedEvent struct {
	Metadata
	Path string
}

func (e CertificateSavedEvent) GetMetadata() Metadata {
	return e.Metadata
}

// SessionClearedEvent is sent after all artifacts and the persisted file
// have been erased.
type SessionClearedEvent struct {
	Metadata
}

func (e SessionClearedEvent) GetMetadata() Metadata {
	return e.Metadata
}

// PipelineErrorEvent carries the single user-visible error string for a
// failed step. Context names the step for logging; the UI shows Message in
// one banner at a time.
type PipelineErrorEvent struct {
	Metadata
	Message string
	Context string
}

func (e PipelineErrorEvent) GetMetadata() Metadata {
	return e.Metadata
}

// CriticalErrorEvent aborts the TUI; only used for failures the wizard
// cannot continue past.
type CriticalErrorEvent struct {
	Metadata
	Message string
	Context string
}

func (e CriticalErrorEvent) GetMetadata() Metadata {
	return e.Metadata
}
