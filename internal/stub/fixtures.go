// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

package stub

import (
	"fmt"
	"strings"
	"time"

	"github.com/anuj846k/Covenant-Logic-Compiler/internal/api"
)

// Canned artifacts returned by the stub collaborator. They mirror the shape
// of a real extraction run over an LMA leveraged facilities agreement so the
// wizard can be exercised end to end without the production service.

func sampleEBITDADefinition() *api.EBITDADefinition {
	return &api.EBITDADefinition{
		BaseMetric: "Consolidated EBIT",
		SectionRef: "Clause 24.1",
		Page:       285,
		AddBacks: []api.EBITDAAdjustment{
			{Name: "Depreciation", SectionRef: "Clause 24.1(a)", Page: 285},
			{Name: "Amortisation", SectionRef: "Clause 24.1(b)", Page: 285},
			{Name: "Impairment Costs", SectionRef: "Clause 24.1(c)", Page: 286},
		},
		Deductions: []api.EBITDAAdjustment{
			{Name: "Exceptional Items", SectionRef: "Clause 24.1(d)", Page: 286},
		},
		Caps: []api.EBITDACap{
			{Item: "Projected Synergies", CapType: "percentage", CapValue: 0.20, SectionRef: "Clause 24.1(f)"},
		},
		FullLegalText: "\"Consolidated EBITDA\" means Consolidated EBIT for that Relevant Period after adding back depreciation, amortisation and impairment costs, subject to the caps set out in Clause 24.1(f).",
	}
}

func sampleCovenants() []api.CovenantDefinition {
	return []api.CovenantDefinition{
		{
			Name:       "Senior Leverage Ratio",
			LimitValue: 6.75,
			LimitType:  api.LimitTypeMax,
			Formula:    "Senior Debt / EBITDA",
			LegalText:  "The Senior Leverage Ratio in respect of any Relevant Period shall not exceed 6.75:1.",
			SectionRef: "Clause 24.2(a)",
			Page:       290,
		},
		{
			Name:       "Total Leverage Ratio (Super Senior)",
			LimitValue: 7.50,
			LimitType:  api.LimitTypeMax,
			Formula:    "Total Debt / EBITDA",
			LegalText:  "The Total Leverage Ratio in respect of any Relevant Period shall not exceed 7.50:1.",
			SectionRef: "Clause 24.2(b)",
			Page:       290,
		},
		{
			Name:       "Debt Service Coverage Ratio",
			LimitValue: 1.00,
			LimitType:  api.LimitTypeMin,
			Formula:    "EBITDA / (Interest Expense + Principal Payments)",
			LegalText:  "The Debt Service Coverage Ratio in respect of any Relevant Period shall not be less than 1.00:1.",
			SectionRef: "Clause 24.2(c)",
			Page:       291,
		},
	}
}

func sampleGeneratedCode(agreementID string) api.GeneratedCodeResponse {
	code := `def calculate_ebitda(ebit, depreciation, amortisation, impairment_costs):
    """Consolidated EBITDA per Clause 24.1."""
    return ebit + depreciation + amortisation + impairment_costs


def calculate_senior_leverage(senior_debt, ebitda):
    """Senior Leverage Ratio per Clause 24.2(a). Limit: 6.75x."""
    if ebitda <= 0:
        return float("inf")
    return senior_debt / ebitda


def calculate_total_leverage(total_debt, ebitda):
    """Total Leverage Ratio per Clause 24.2(b). Limit: 7.50x."""
    if ebitda <= 0:
        return float("inf")
    return total_debt / ebitda


def calculate_dscr(ebitda, interest_expense, principal_payments):
    """Debt Service Coverage Ratio per Clause 24.2(c). Floor: 1.00x."""
    debt_service = interest_expense + principal_payments
    if debt_service <= 0:
        return float("inf")
    return ebitda / debt_service
`
	return api.GeneratedCodeResponse{
		AgreementID:    agreementID,
		Code:           code,
		Functions:      []string{"calculate_ebitda", "calculate_senior_leverage", "calculate_total_leverage", "calculate_dscr"},
		GenerationTime: time.Now().UTC().Format(time.RFC3339),
		ContractRefs:   []string{"Clause 24.1", "Clause 24.2(a)", "Clause 24.2(b)", "Clause 24.2(c)"},
	}
}

// computeCalculation runs the covenant arithmetic over submitted financials.
// EBITDA of zero or below yields +Inf ratios, which breach every max limit.
func computeCalculation(data api.FinancialDataInput) api.CalculationResponse {
	ebitda := data.ConsolidatedEBIT + data.Depreciation + data.Amortisation + data.ImpairmentCosts

	ratio := func(numerator float64) float64 {
		if ebitda <= 0 {
			return infinity
		}
		return round2(numerator / ebitda)
	}

	debtService := data.InterestExpense + data.PrincipalPayments
	dscr := infinity
	if debtService > 0 {
		dscr = round2(ebitda / debtService)
	}

	covenants := []api.CovenantResult{
		{
			Name:       "Senior Leverage Ratio",
			Value:      ratio(data.SeniorDebt),
			Limit:      6.75,
			LimitType:  api.LimitTypeMax,
			Compliant:  ebitda > 0 && data.SeniorDebt/ebitda <= 6.75,
			SectionRef: "Clause 24.2(a)",
		},
		{
			Name:       "Total Leverage Ratio (Super Senior)",
			Value:      ratio(data.TotalDebt),
			Limit:      7.50,
			LimitType:  api.LimitTypeMax,
			Compliant:  ebitda > 0 && data.TotalDebt/ebitda <= 7.50,
			SectionRef: "Clause 24.2(b)",
		},
		{
			Name:       "Debt Service Coverage Ratio",
			Value:      dscr,
			Limit:      1.00,
			LimitType:  api.LimitTypeMin,
			Compliant:  dscr >= 1.00,
			SectionRef: "Clause 24.2(c)",
		},
	}

	allCompliant := true
	var breached []string
	for _, c := range covenants {
		if !c.Compliant {
			allCompliant = false
			breached = append(breached, c.Name)
		}
	}

	return api.CalculationResponse{
		AgreementID:     data.AgreementID,
		CalculationTime: time.Now().UTC().Format(time.RFC3339),
		EBITDA:          ebitda,
		Covenants:       covenants,
		AllCompliant:    allCompliant,
		BreachedCovenants: breached,
		Trace: map[string]any{
			"ebitda_components": map[string]any{
				"consolidated_ebit": map[string]any{"value": data.ConsolidatedEBIT, "ref": "Clause 24.1"},
				"depreciation":      map[string]any{"value": data.Depreciation, "ref": "Clause 24.1(a)"},
				"amortisation":      map[string]any{"value": data.Amortisation, "ref": "Clause 24.1(b)"},
				"impairment_costs":  map[string]any{"value": data.ImpairmentCosts, "ref": "Clause 24.1(c)"},
			},
			"debt_figures": map[string]any{
				"senior_debt": data.SeniorDebt,
				"total_debt":  data.TotalDebt,
			},
			"debt_service": map[string]any{
				"interest_expense":   data.InterestExpense,
				"principal_payments": data.PrincipalPayments,
			},
		},
	}
}

const infinity = 9.99e18

func round2(v float64) float64 {
	if v >= infinity {
		return v
	}
	return float64(int64(v*100+0.5)) / 100
}

// certificatePDF renders a minimal single-page PDF so downloads produce a
// file that opens in a viewer. Real typesetting belongs to the production
// collaborator.
func certificatePDF(req api.CertificateRequest) []byte {
	lines := []string{
		"COMPLIANCE CERTIFICATE",
		fmt.Sprintf("To: %s as Agent", req.AgentName),
		fmt.Sprintf("From: %s", req.CompanyName),
		fmt.Sprintf("Dated: %s", req.TestDate),
		fmt.Sprintf("Facilities agreement dated %s", req.AgreementDate),
		fmt.Sprintf("Senior Secured Net Leverage Ratio: %.2f:1 (Limit: %.2f:1)", req.LeverageRatio, req.LeverageLimit),
		complianceLine(req.Compliant),
	}

	var content strings.Builder
	content.WriteString("BT /F1 11 Tf 50 760 Td 16 TL\n")
	for _, line := range lines {
		content.WriteString(fmt.Sprintf("(%s) Tj T*\n", escapePDFText(line)))
	}
	content.WriteString("ET")

	stream := content.String()
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream),
	}

	var buf strings.Builder
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects)+1)
	for i, obj := range objects {
		offsets[i+1] = buf.Len()
		buf.WriteString(fmt.Sprintf("%d 0 obj\n%s\nendobj\n", i+1, obj))
	}
	xref := buf.Len()
	buf.WriteString(fmt.Sprintf("xref\n0 %d\n0000000000 65535 f \n", len(objects)+1))
	for i := 1; i <= len(objects); i++ {
		buf.WriteString(fmt.Sprintf("%010d 00000 n \n", offsets[i]))
	}
	buf.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref))
	return []byte(buf.String())
}

func complianceLine(compliant bool) string {
	if compliant {
		return "The Financial Covenant HAS been complied with."
	}
	return "The Financial Covenant HAS NOT been complied with."
}

func escapePDFText(s string) string {
	r := strings.NewReplacer("\\", "\\\\", "(", "\\(", ")", "\\)")
	return r.Replace(s)
}
