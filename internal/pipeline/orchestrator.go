// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package pipeline sequences calls to the collaborator service and feeds
// the results into the session store. It is the only component that talks
// to the collaborator: the TUI sends commands over a channel, a single
// orchestrator goroutine performs at most one call at a time, and events
// flow back. That makes the steps explicitly mutually exclusive instead of
// relying on a shared loading flag alone.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/anuj846k/Covenant-Logic-Compiler/internal/api"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/logger"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/protocol"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/session"
)

// Orchestrator owns the command loop.
type Orchestrator struct {
	client    *api.Client
	store     *session.Store
	outputDir string

	cmdChan   <-chan protocol.Command
	eventChan chan<- protocol.Event
}

// New wires the orchestrator to its channels. outputDir is where
// certificate PDFs are written.
func New(client *api.Client, store *session.Store, outputDir string, cmdChan <-chan protocol.Command, eventChan chan<- protocol.Event) *Orchestrator {
	return &Orchestrator{
		client:    client,
		store:     store,
		outputDir: outputDir,
		cmdChan:   cmdChan,
		eventChan: eventChan,
	}
}

// Run processes commands until the context is cancelled. One command is in
// flight at a time; commands arriving while busy are rejected with a
// PipelineErrorEvent so the user sees why nothing happened.
func (o *Orchestrator) Run(ctx context.Context) {
	log := logger.GetPipelineLogger()

	busy := false
	done := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("orchestrator stopping")
			return

		case <-done:
			busy = false

		case cmd, ok := <-o.cmdChan:
			if !ok {
				return
			}
			if busy {
				o.eventChan <- protocol.PipelineErrorEvent{
					Metadata: cmd.GetMetadata(),
					Message:  "Another step is still running",
					Context:  "busy",
				}
				continue
			}
			busy = true
			go func(cmd protocol.Command) {
				o.handle(ctx, cmd)
				done <- struct{}{}
			}(cmd)
		}
	}
}

// handle runs one command to completion and emits its terminal event.
func (o *Orchestrator) handle(ctx context.Context, cmd protocol.Command) {
	log := logger.GetPipelineLogger()
	md := cmd.GetMetadata()

	switch cmd := cmd.(type) {
	case protocol.UploadAgreementCommand:
		file, err := os.Open(cmd.Path)
		if err != nil {
			o.fail(md, "upload", fmt.Sprintf("Upload failed: %v", err))
			return
		}
		defer file.Close()

		agreement, err := o.client.Upload(ctx, cmd.Path, file)
		if err != nil {
			o.fail(md, "upload", err.Error())
			return
		}
		o.store.SetAgreement(agreement)
		log.Info().Str("agreement_id", agreement.AgreementID).Int("pages", agreement.PageCount).Msg("agreement uploaded")
		o.eventChan <- protocol.AgreementUploadedEvent{Metadata: md, Agreement: agreement}

	case protocol.ExtractCovenantsCommand:
		extraction, err := o.client.Extract(ctx, cmd.AgreementID)
		if err != nil {
			o.fail(md, "extract", err.Error())
			return
		}
		o.store.SetExtraction(extraction)
		log.Info().Str("agreement_id", cmd.AgreementID).Int("covenants", len(extraction.Covenants)).Msg("covenants extracted")
		o.eventChan <- protocol.CovenantsExtractedEvent{Metadata: md, Extraction: extraction}

	case protocol.GenerateCodeCommand:
		code, err := o.client.GenerateCode(ctx, cmd.AgreementID)
		if err != nil {
			o.fail(md, "generate", err.Error())
			return
		}
		o.store.SetGeneratedCode(code)
		log.Info().Str("agreement_id", cmd.AgreementID).Strs("functions", code.Functions).Msg("calculation code generated")
		o.eventChan <- protocol.CodeGeneratedEvent{Metadata: md, Code: code}

	case protocol.CalculateCommand:
		result, err := o.client.Calculate(ctx, cmd.Data)
		if err != nil {
			o.fail(md, "calculate", err.Error())
			return
		}
		o.store.SetCalculation(result)
		log.Info().
			Str("agreement_id", result.AgreementID).
			Bool("all_compliant", result.AllCompliant).
			Msg("compliance calculated")
		o.eventChan <- protocol.CalculationCompletedEvent{Metadata: md, Calculation: result}

	case protocol.SaveCovenantsCommand:
		resp, err := o.client.UpdateCovenants(ctx, cmd.AgreementID, cmd.Covenants, cmd.EBITDADefinition)
		if err != nil {
			o.fail(md, "save-covenants", err.Error())
			return
		}
		o.eventChan <- protocol.CovenantsSavedEvent{Metadata: md, Message: resp.Message}

	case protocol.DownloadCertificateCommand:
		path, err := o.downloadCertificate(ctx, cmd.Signatory)
		if err != nil {
			o.fail(md, "certificate", err.Error())
			return
		}
		log.Info().Str("path", path).Msg("certificate saved")
		o.eventChan <- protocol.CertificateSavedEvent{Metadata: md, Path: path}

	case protocol.ClearSessionCommand:
		o.store.ClearAll()
		o.eventChan <- protocol.SessionClearedEvent{Metadata: md}

	default:
		log.Warn().Type("command", cmd).Msg("unknown command")
	}
}

// fail emits the single user-visible error for a step.
func (o *Orchestrator) fail(md protocol.Metadata, step, message string) {
	log := logger.GetPipelineLogger()
	log.Error().Str("step", step).Str("error", message).Msg("pipeline step failed")
	o.eventChan <- protocol.PipelineErrorEvent{
		Metadata: md,
		Message:  message,
		Context:  step,
	}
}
