// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import "encoding/json"

// Limit types a covenant can carry. Anything else coming off the wire is
// normalized to LimitTypeMax.
const (
	LimitTypeMax = "max"
	LimitTypeMin = "min"
)

// AgreementUploadResponse describes an uploaded loan agreement.
type AgreementUploadResponse struct {
	AgreementID          string `json:"agreement_id"`
	Filename             string `json:"filename"`
	PageCount            int    `json:"page_count"`
	S3Key                string `json:"s3_key"`
	UploadTime           string `json:"upload_time"`
	DefinitionsFound     bool   `json:"definitions_found"`
	DefinitionsPageRange string `json:"definitions_page_range,omitempty"`
}

// EBITDAAdjustment is one add-back or deduction line of an EBITDA definition.
type EBITDAAdjustment struct {
	Name       string `json:"name"`
	SectionRef string `json:"section_ref"`
	Page       int    `json:"page"`
}

// EBITDACap caps a specific adjustment item.
type EBITDACap struct {
	Item       string  `json:"item"`
	CapType    string  `json:"cap_type"`
	CapValue   float64 `json:"cap_value"`
	SectionRef string  `json:"section_ref"`
}

// EBITDADefinition is the structured EBITDA definition extracted from the
// agreement's definitions section.
type EBITDADefinition struct {
	BaseMetric    string             `json:"base_metric"`
	SectionRef    string             `json:"section_ref"`
	Page          int                `json:"page"`
	AddBacks      []EBITDAAdjustment `json:"add_backs"`
	Deductions    []EBITDAAdjustment `json:"deductions"`
	Caps          []EBITDACap        `json:"caps"`
	FullLegalText string             `json:"full_legal_text,omitempty"`
}

// CovenantDefinition is one extracted covenant. The wire format historically
// carried `limit`/`section` as alternates for `limit_value`/`section_ref`;
// UnmarshalJSON folds them into the canonical fields so nothing downstream
// has to know the legacy names.
type CovenantDefinition struct {
	Name       string  `json:"name"`
	LimitValue float64 `json:"limit_value"`
	LimitType  string  `json:"limit_type"`
	Formula    string  `json:"formula,omitempty"`
	LegalText  string  `json:"legal_text,omitempty"`
	SectionRef string  `json:"section_ref"`
	Page       int     `json:"page,omitempty"`
}

func (c *CovenantDefinition) UnmarshalJSON(data []byte) error {
	type alias CovenantDefinition
	aux := struct {
		*alias
		Limit   *float64 `json:"limit"`
		Section *string  `json:"section"`
	}{alias: (*alias)(c)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if c.LimitValue == 0 && aux.Limit != nil {
		c.LimitValue = *aux.Limit
	}
	if c.SectionRef == "" && aux.Section != nil {
		c.SectionRef = *aux.Section
	}
	c.LimitType = NormalizeLimitType(c.LimitType)
	return nil
}

// NormalizeLimitType constrains a limit type to the two-valued enumeration.
// Values outside it have undefined comparison semantics, so they collapse to
// "max" rather than flowing through the UI.
func NormalizeLimitType(s string) string {
	if s == LimitTypeMin {
		return LimitTypeMin
	}
	return LimitTypeMax
}

// ExtractionResponse is the covenant extraction result for one agreement.
type ExtractionResponse struct {
	AgreementID      string               `json:"agreement_id"`
	ExtractionTime   string               `json:"extraction_time"`
	Success          bool                 `json:"success"`
	EBITDADefinition *EBITDADefinition    `json:"ebitda_definition"`
	Covenants        []CovenantDefinition `json:"covenants"`
	RawResponse      string               `json:"raw_response,omitempty"`
}

// GeneratedCodeResponse carries the calculation code generated for an
/// agreement. Write-once: the client never edits it.
type GeneratedCodeResponse struct {
	AgreementID    string   `json:"agreement_id"`
	Code           string   `json:"code"`
	Functions      []string `json:"functions"`
	GenerationTime string   `json:"generation_time"`
	ContractRefs   []string `json:"contract_refs"`
}

// CovenantResult is the computed compliance outcome for one covenant.
type CovenantResult struct {
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	Limit      float64 `json:"limit"`
	LimitType  string  `json:"limit_type"`
	Compliant  bool    `json:"compliant"`
	SectionRef string  `json:"section_ref"`
}

// CalculationResponse is the compliance calculation for one test period.
type CalculationResponse struct {
	AgreementID      string           `json:"agreement_id"`
	CalculationTime  string           `json:"calculation_time"`
	EBITDA           float64          `json:"ebitda"`
	Covenants        []CovenantResult `json:"covenants"`
	AllCompliant     bool             `json:"all_compliant"`
	BreachedCovenants []string        `json:"breached_covenants"`
	Trace            map[string]any   `json:"trace"`
}

// FinancialDataInput holds the eight user-entered financial figures plus the
// agreement they apply to.
type FinancialDataInput struct {
	AgreementID      string  `json:"agreement_id"`
	ConsolidatedEBIT float64 `json:"consolidated_ebit"`
	Depreciation     float64 `json:"depreciation"`
	Amortisation     float64 `json:"amortisation"`
	ImpairmentCosts  float64 `json:"impairment_costs"`
	SeniorDebt       float64 `json:"senior_debt"`
	TotalDebt        float64 `json:"total_debt"`
	InterestExpense  float64 `json:"interest_expense"`
	PrincipalPayments float64 `json:"principal_payments"`
}

// CertificateRequest is the payload for the certificate endpoint. The
// signature image is an opaque data URL captured outside this client, or
// empty when the signatory skipped signing.
type CertificateRequest struct {
	AgreementID    string  `json:"agreement_id"`
	CompanyName    string  `json:"company_name"`
	AgentName      string  `json:"agent_name"`
	AgreementDate  string  `json:"agreement_date"`
	TestDate       string  `json:"test_date"`
	LeverageRatio  float64 `json:"leverage_ratio"`
	LeverageLimit  float64 `json:"leverage_limit"`
	Compliant      bool    `json:"compliant"`
	SignatureImage *string `json:"signature_image"`
}

// UpdateCovenantsRequest pushes human-reviewed covenant edits back to the
// collaborator so they survive beyond this session.
type UpdateCovenantsRequest struct {
	Covenants        []CovenantDefinition `json:"covenants"`
	EBITDADefinition *EBITDADefinition    `json:"ebitda_definition"`
}

// MessageResponse is the generic `{message}` acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}
