// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

package pipeline

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/anuj846k/Covenant-Logic-Compiler/internal/api"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/protocol"
)

var whitespace = regexp.MustCompile(`\s+`)

// FindLeverageCovenant returns the first calculated covenant whose name
// contains "leverage", case-insensitively. The certificate reports this one
// ratio; first match wins.
func FindLeverageCovenant(covenants []api.CovenantResult) (api.CovenantResult, bool) {
	return lo.Find(covenants, func(c api.CovenantResult) bool {
		return strings.Contains(strings.ToLower(c.Name), "leverage")
	})
}

// AssembleCertificateRequest merges the latest calculation with the
// signatory form into the certificate payload. When no leverage covenant
// exists the ratio and limit default to 0 and compliance to true - a soft
// fallback so an agreement without a leverage covenant still certifies.
func AssembleCertificateRequest(calc *api.CalculationResponse, sig protocol.SignatoryDetails, signature *string) api.CertificateRequest {
	req := api.CertificateRequest{
		CompanyName:    sig.CompanyName,
		AgentName:      sig.AgentName,
		AgreementDate:  sig.AgreementDate,
		TestDate:       sig.TestDate,
		Compliant:      true,
		SignatureImage: signature,
	}
	if calc == nil {
		return req
	}
	req.AgreementID = calc.AgreementID
	if leverage, ok := FindLeverageCovenant(calc.Covenants); ok {
		req.LeverageRatio = leverage.Value
		req.LeverageLimit = leverage.Limit
		req.Compliant = leverage.Compliant
	}
	return req
}

// CertificateFilename derives the download filename from the company name
// and a date: spaces collapse to underscores, the date is ISO formatted.
func CertificateFilename(companyName string, now time.Time) string {
	name := whitespace.ReplaceAllString(strings.TrimSpace(companyName), "_")
	return fmt.Sprintf("Compliance_Certificate_%s_%s.pdf", name, now.Format("2006-01-02"))
}

// loadSignature reads an optional signature PNG and inlines it as a data
// URL, the shape the collaborator expects from the browser's signature
// canvas. An empty path means the signatory skipped signing.
func loadSignature(path string) (*string, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read signature image: %w", err)
	}
	encoded := "data:image/png;base64," + base64.StdEncoding.EncodeToString(data)
	return &encoded, nil
}

// downloadCertificate assembles the payload, requests the PDF and writes it
// to the configured output directory. Returns the saved path.
func (o *Orchestrator) downloadCertificate(ctx context.Context, sig protocol.SignatoryDetails) (string, error) {
	signature, err := loadSignature(sig.SignaturePath)
	if err != nil {
		return "", err
	}

	state := o.store.Snapshot()
	req := AssembleCertificateRequest(state.Calculation, sig, signature)

	pdf, err := o.client.Certificate(ctx, req)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(o.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	path := filepath.Join(o.outputDir, CertificateFilename(sig.CompanyName, time.Now()))
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return "", fmt.Errorf("save certificate: %w", err)
	}
	return path, nil
}
