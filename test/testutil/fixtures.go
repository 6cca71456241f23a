// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

package testutil

import (
	"path/filepath"
	"testing"

	"github.com/anuj846k/Covenant-Logic-Compiler/internal/api"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/session"
)

// NewTempStore creates a session store backed by a file in a test temp dir
func NewTempStore(t *testing.T) *session.Store {
	t.Helper()
	return session.NewStore(filepath.Join(t.TempDir(), "session.json"))
}

// SampleAgreement returns a realistic upload artifact
func SampleAgreement() *api.AgreementUploadResponse {
	return &api.AgreementUploadResponse{
		AgreementID:          "agr_1a2b3c4d5e6f",
		Filename:             "facilities-agreement.pdf",
		PageCount:            312,
		S3Key:                "agreements/agr_1a2b3c4d5e6f/facilities-agreement.pdf",
		UploadTime:           "2026-03-31T10:00:00Z",
		DefinitionsFound:     true,
		DefinitionsPageRange: "281-295",
	}
}

// SampleExtraction returns an extraction with two covenants and an EBITDA
// definition carrying one entry per component list
func SampleExtraction() *api.ExtractionResponse {
	return &api.ExtractionResponse{
		AgreementID:    "agr_1a2b3c4d5e6f",
		ExtractionTime: "2026-03-31T10:01:00Z",
		Success:        true,
		EBITDADefinition: &api.EBITDADefinition{
			BaseMetric: "Consolidated EBIT",
			SectionRef: "Clause 24.1",
			Page:       285,
			AddBacks: []api.EBITDAAdjustment{
				{Name: "Depreciation", SectionRef: "Clause 24.1(a)", Page: 285},
			},
			Deductions: []api.EBITDAAdjustment{
				{Name: "Exceptional Items", SectionRef: "Clause 24.1(d)", Page: 286},
			},
			Caps: []api.EBITDACap{
				{Item: "Projected Synergies", CapType: "percentage", CapValue: 0.20, SectionRef: "Clause 24.1(f)"},
			},
		},
		Covenants: []api.CovenantDefinition{
			{
				Name:       "Senior Leverage Ratio",
				LimitValue: 6.75,
				LimitType:  api.LimitTypeMax,
				Formula:    "Senior Debt / EBITDA",
				SectionRef: "Clause 24.2(a)",
				Page:       290,
			},
			{
				Name:       "Debt Service Coverage Ratio",
				LimitValue: 1.00,
				LimitType:  api.LimitTypeMin,
				Formula:    "EBITDA / Debt Service",
				SectionRef: "Clause 24.2(c)",
				Page:       291,
			},
		},
	}
}

// SampleGeneratedCode returns a code generation artifact
func SampleGeneratedCode() *api.GeneratedCodeResponse {
	return &api.GeneratedCodeResponse{
		AgreementID:    "agr_1a2b3c4d5e6f",
		Code:           "def calculate_ebitda(ebit, depreciation):\n    return ebit + depreciation\n",
		Functions:      []string{"calculate_ebitda"},
		GenerationTime: "2026-03-31T10:02:00Z",
		ContractRefs:   []string{"Clause 24.1"},
	}
}

// SampleCalculation returns a compliant calculation over the default figures
func SampleCalculation() *api.CalculationResponse {
	return &api.CalculationResponse{
		AgreementID:     "agr_1a2b3c4d5e6f",
		CalculationTime: "2026-03-31T10:03:00Z",
		EBITDA:          91_000_000,
		Covenants: []api.CovenantResult{
			{
				Name:       "Senior Leverage Ratio",
				Value:      4.40,
				Limit:      6.75,
				LimitType:  api.LimitTypeMax,
				Compliant:  true,
				SectionRef: "Clause 24.2(a)",
			},
			{
				Name:       "Debt Service Coverage Ratio",
				Value:      4.14,
				Limit:      1.00,
				LimitType:  api.LimitTypeMin,
				Compliant:  true,
				SectionRef: "Clause 24.2(c)",
			},
		},
		AllCompliant: true,
	}
}

// PopulatedStore returns a store with every pipeline artifact present
func PopulatedStore(t *testing.T) *session.Store {
	t.Helper()
	store := NewTempStore(t)
	store.SetAgreement(SampleAgreement())
	store.SetExtraction(SampleExtraction())
	store.SetGeneratedCode(SampleGeneratedCode())
	store.SetCalculation(SampleCalculation())
	return store
}
