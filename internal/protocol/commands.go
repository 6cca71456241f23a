// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

// Here lies the definition of the data the pipeline orchestrator can
// receive from the UI. All data received by the orchestrator from the UI is
// named: Command.
//
// Commands are simple high-level objects telling the orchestrator which
// pipeline step to perform. The orchestrator runs at most one command at a
// time; a command arriving while another is in flight is rejected with a
// PipelineErrorEvent rather than queued.
package protocol

import (
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/api"
)

// Command represents commands that can be sent to the orchestrator
type Command interface {
	GetMetadata() Metadata
}

// UploadAgreementCommand uploads a loan agreement PDF from the local
// filesystem.
type UploadAgreementCommand struct {
	Metadata
	Path string
}

func (c UploadAgreementCommand) GetMetadata() Metadata {
	return c.Metadata
}

// ExtractCovenantsCommand requests covenant extraction for an uploaded
// agreement.
type ExtractCovenantsCommand struct {
	Metadata
	AgreementID string
}

func (c ExtractCovenantsCommand) GetMetadata() Metadata {
	return c.Metadata
}

// GenerateCodeCommand requests calculation-code generation.
type GenerateCodeCommand struct {
	Metadata
	AgreementID string
}

func (c GenerateCodeCommand) GetMetadata() Metadata {
	return c.Metadata
}

// CalculateCommand runs the compliance calculation over the given
// financial inputs.
type CalculateCommand struct {
	Metadata
	Data api.FinancialDataInput
}

func (c CalculateCommand) GetMetadata() Metadata {
	return c.Metadata
}

// SaveCovenantsCommand pushes human-reviewed covenant edits back to the
// collaborator.
type SaveCovenantsCommand struct {
	Metadata
	AgreementID      string
	Covenants        []api.CovenantDefinition
	EBITDADefinition *api.EBITDADefinition
}

func (c SaveCovenantsCommand) GetMetadata() Metadata {
	return c.Metadata
}

// SignatoryDetails are the certificate form fields. SignaturePath points at
// an optional PNG of the signatory's signature; empty means unsigned.
type SignatoryDetails struct {
	CompanyName   string
	AgentName     string
	AgreementDate string
	TestDate      string
	SignaturePath string
}

// DownloadCertificateCommand assembles the certificate payload from the
// latest calculation and the signatory details, then downloads the PDF.
type DownloadCertificateCommand struct {
	Metadata
	Signatory SignatoryDetails
}

func (c DownloadCertificateCommand) GetMetadata() Metadata {
	return c.Metadata
}

// ClearSessionCommand erases all pipeline artifacts and the persisted
// session file.
type ClearSessionCommand struct {
	Metadata
}

func (c ClearSessionCommand) GetMetadata() Metadata {
	return c.Metadata
}
