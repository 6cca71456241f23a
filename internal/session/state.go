// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session owns the wizard's accumulated pipeline state: the four
// server-confirmed artifacts, the user-editable financial inputs, and the
// gating rules that decide which steps are open. The state is explicit and
// passed by reference from the UI root; persistence goes through a single
// Load/Save boundary on one JSON file.
package session

import "github.com/anuj846k/Covenant-Logic-Compiler/internal/api"

// SchemaVersion is written into the persisted session file. Files with a
// different version are discarded on load rather than partially migrated.
const SchemaVersion = 1

// Step identifies one of the six fixed wizard steps, in pipeline order.
type Step string

const (
	StepUpload      Step = "upload"
	StepExtract     Step = "extract"
	StepGenerate    Step = "generate"
	StepCalculate   Step = "calculate"
	StepResults     Step = "results"
	StepCertificate Step = "certificate"
)

// Steps is the fixed wizard order. Gating is defined over this sequence.
var Steps = []Step{
	StepUpload,
	StepExtract,
	StepGenerate,
	StepCalculate,
	StepResults,
	StepCertificate,
}

// Labels for the step sidebar.
var stepLabels = map[Step]string{
	StepUpload:      "Upload",
	StepExtract:     "Extract",
	StepGenerate:    "Code",
	StepCalculate:   "Calculate",
	StepResults:     "Results",
	StepCertificate: "Certificate",
}

// Label returns the display label for a step.
func (s Step) Label() string {
	if l, ok := stepLabels[s]; ok {
		return l
	}
	return string(s)
}

// Index returns the step's position in the fixed order, or -1.
func (s Step) Index() int {
	for i, step := range Steps {
		if step == s {
			return i
		}
	}
	return -1
}

// Next returns the following step in wizard order.
func (s Step) Next() (Step, bool) {
	i := s.Index()
	if i < 0 || i+1 >= len(Steps) {
		return s, false
	}
	return Steps[i+1], true
}

// Prev returns the preceding step in wizard order.
func (s Step) Prev() (Step, bool) {
	i := s.Index()
	if i <= 0 {
		return s, false
	}
	return Steps[i-1], true
}

// State is the session's accumulated record. The four artifact pointers are
// nil until their pipeline step succeeds; financial data is always present.
type State struct {
	SchemaVersion int                          `json:"schema_version"`
	Agreement     *api.AgreementUploadResponse `json:"agreement_data"`
	Extraction    *api.ExtractionResponse      `json:"extraction_data"`
	GeneratedCode *api.GeneratedCodeResponse   `json:"generated_code"`
	Calculation   *api.CalculationResponse     `json:"calculation_result"`
	Financial     api.FinancialDataInput       `json:"financial_data"`
}

// DefaultFinancialData returns the fixed default scenario the form starts
// from before the user has entered anything.
func DefaultFinancialData() api.FinancialDataInput {
	return api.FinancialDataInput{
		AgreementID:       "",
		ConsolidatedEBIT:  65_000_000,
		Depreciation:      15_000_000,
		Amortisation:      3_000_000,
		ImpairmentCosts:   8_000_000,
		SeniorDebt:        400_000_000,
		TotalDebt:         450_000_000,
		InterestExpense:   12_000_000,
		PrincipalPayments: 10_000_000,
	}
}

// NewState returns an empty session with default financial inputs.
func NewState() State {
	return State{
		SchemaVersion: SchemaVersion,
		Financial:     DefaultFinancialData(),
	}
}

// Completed reports whether a step's source artifact exists. The calculate,
// results and certificate steps share one source flag: reaching calculation
// completion unlocks all three downstream views.
func (s *State) Completed(step Step) bool {
	switch step {
	case StepUpload:
		return s.Agreement != nil
	case StepExtract:
		return s.Extraction != nil
	case StepGenerate:
		return s.GeneratedCode != nil
	case StepCalculate, StepResults, StepCertificate:
		return s.Calculation != nil
	default:
		return false
	}
}

// Selectable reports whether a step may be navigated to: the first step is
// always open, and every later step opens once its immediate predecessor is
// completed.
func (s *State) Selectable(step Step) bool {
	i := step.Index()
	if i < 0 {
		return false
	}
	if i == 0 {
		return true
	}
	return s.Completed(Steps[i-1])
}
