// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

package stub

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anuj846k/Covenant-Logic-Compiler/internal/api"
)

func newStubServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(Router())
	t.Cleanup(srv.Close)
	return srv
}

func postMultipart(t *testing.T, url, filename string, payload []byte) *http.Response {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	resp, err := http.Post(url+"/api/v1/agreements/upload", writer.FormDataContentType(), &body)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func postJSON(t *testing.T, url string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestUploadEndpoint(t *testing.T) {
	srv := newStubServer(t)

	t.Run("accepts a PDF", func(t *testing.T) {
		resp := postMultipart(t, srv.URL, "facilities_agreement.pdf", []byte("%PDF-1.4 dummy"))
		require.Equal(t, http.StatusOK, resp.StatusCode)

		agreement := decodeBody[api.AgreementUploadResponse](t, resp)
		assert.True(t, strings.HasPrefix(agreement.AgreementID, "agr_"))
		assert.Len(t, agreement.AgreementID, len("agr_")+12)
		assert.Equal(t, "facilities_agreement.pdf", agreement.Filename)
		assert.Equal(t, 312, agreement.PageCount)
		assert.True(t, agreement.DefinitionsFound)
		assert.Equal(t, "281-295", agreement.DefinitionsPageRange)
	})

	t.Run("rejects anything that is not a PDF", func(t *testing.T) {
		resp := postMultipart(t, srv.URL, "notes.docx", []byte("not a pdf"))
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		detail := decodeBody[map[string]string](t, resp)
		assert.Equal(t, "Only PDF files are accepted.", detail["detail"])
	})

	t.Run("rejects a missing file field", func(t *testing.T) {
		var body bytes.Buffer
		writer := multipart.NewWriter(&body)
		require.NoError(t, writer.WriteField("name", "no file here"))
		require.NoError(t, writer.Close())

		resp, err := http.Post(srv.URL+"/api/v1/agreements/upload", writer.FormDataContentType(), &body)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestExtractEndpoint(t *testing.T) {
	srv := newStubServer(t)

	resp := postJSON(t, srv.URL+"/api/v1/agreements/extract", map[string]string{"agreement_id": "agr_abc"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	extraction := decodeBody[api.ExtractionResponse](t, resp)
	assert.Equal(t, "agr_abc", extraction.AgreementID)
	assert.True(t, extraction.Success)
	require.Len(t, extraction.Covenants, 3)
	assert.Equal(t, "Senior Leverage Ratio", extraction.Covenants[0].Name)
	assert.Equal(t, 6.75, extraction.Covenants[0].LimitValue)
	assert.Equal(t, api.LimitTypeMin, extraction.Covenants[2].LimitType)

	require.NotNil(t, extraction.EBITDADefinition)
	assert.Equal(t, "Consolidated EBIT", extraction.EBITDADefinition.BaseMetric)
	assert.Len(t, extraction.EBITDADefinition.AddBacks, 3)
	assert.Len(t, extraction.EBITDADefinition.Caps, 1)

	t.Run("requires an agreement id", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/api/v1/agreements/extract", map[string]string{})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})
}

func TestGenerateCodeEndpoint(t *testing.T) {
	srv := newStubServer(t)

	resp := postJSON(t, srv.URL+"/api/v1/agreements/generate-code", map[string]string{"agreement_id": "agr_abc"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	code := decodeBody[api.GeneratedCodeResponse](t, resp)
	assert.Equal(t, "agr_abc", code.AgreementID)
	assert.Contains(t, code.Code, "calculate_ebitda")
	assert.Equal(t, []string{"calculate_ebitda", "calculate_senior_leverage", "calculate_total_leverage", "calculate_dscr"}, code.Functions)
	assert.Contains(t, code.ContractRefs, "Clause 24.2(a)")
}

func TestComputeCalculation(t *testing.T) {
	base := api.FinancialDataInput{
		AgreementID:       "agr_abc",
		ConsolidatedEBIT:  65_000_000,
		Depreciation:      15_000_000,
		Amortisation:      3_000_000,
		ImpairmentCosts:   8_000_000,
		SeniorDebt:        400_000_000,
		TotalDebt:         450_000_000,
		InterestExpense:   12_000_000,
		PrincipalPayments: 10_000_000,
	}

	t.Run("healthy figures satisfy every covenant", func(t *testing.T) {
		result := computeCalculation(base)

		assert.Equal(t, 91_000_000.0, result.EBITDA)
		require.Len(t, result.Covenants, 3)
		assert.InDelta(t, 4.40, result.Covenants[0].Value, 0.005)
		assert.InDelta(t, 4.95, result.Covenants[1].Value, 0.005)
		assert.InDelta(t, 4.14, result.Covenants[2].Value, 0.005)
		assert.True(t, result.AllCompliant)
		assert.Empty(t, result.BreachedCovenants)
		assert.Contains(t, result.Trace, "ebitda_components")
	})

	t.Run("excess senior debt breaches the leverage covenants", func(t *testing.T) {
		data := base
		data.SeniorDebt = 700_000_000
		data.TotalDebt = 750_000_000

		result := computeCalculation(data)
		assert.False(t, result.AllCompliant)
		assert.Contains(t, result.BreachedCovenants, "Senior Leverage Ratio")
		assert.Contains(t, result.BreachedCovenants, "Total Leverage Ratio (Super Senior)")
		assert.NotContains(t, result.BreachedCovenants, "Debt Service Coverage Ratio")
	})

	t.Run("non-positive EBITDA blows up the ratios", func(t *testing.T) {
		data := base
		data.ConsolidatedEBIT = -100_000_000

		result := computeCalculation(data)
		assert.Equal(t, infinity, result.Covenants[0].Value)
		assert.False(t, result.Covenants[0].Compliant)
		assert.False(t, result.AllCompliant)
	})
}

func TestCalculateEndpoint(t *testing.T) {
	srv := newStubServer(t)

	resp := postJSON(t, srv.URL+"/api/v1/agreements/calculate", api.FinancialDataInput{
		AgreementID:       "agr_abc",
		ConsolidatedEBIT:  65_000_000,
		Depreciation:      15_000_000,
		Amortisation:      3_000_000,
		ImpairmentCosts:   8_000_000,
		SeniorDebt:        400_000_000,
		TotalDebt:         450_000_000,
		InterestExpense:   12_000_000,
		PrincipalPayments: 10_000_000,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	result := decodeBody[api.CalculationResponse](t, resp)
	assert.Equal(t, "agr_abc", result.AgreementID)
	assert.True(t, result.AllCompliant)
}

func TestUpdateCovenantsEndpoint(t *testing.T) {
	srv := newStubServer(t)

	payload := api.UpdateCovenantsRequest{Covenants: sampleCovenants()}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPut, srv.URL+"/api/v1/agreements/covenants/agr_abc", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	msg := decodeBody[api.MessageResponse](t, resp)
	assert.Equal(t, fmt.Sprintf("Updated %d covenants for agreement agr_abc", len(payload.Covenants)), msg.Message)
}

func TestCertificateEndpoint(t *testing.T) {
	srv := newStubServer(t)

	t.Run("streams a PDF", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/api/v1/agreements/certificate", api.CertificateRequest{
			AgreementID:   "agr_abc",
			CompanyName:   "Sample Corporation",
			AgentName:     "Barclays Bank PLC",
			AgreementDate: "24 December 2021",
			TestDate:      "2026-03-31",
			LeverageRatio: 4.40,
			LeverageLimit: 6.75,
			Compliant:     true,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

		pdf, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
		assert.Contains(t, string(pdf), "COMPLIANCE CERTIFICATE")
		assert.Contains(t, string(pdf), "HAS been complied with")
	})

	t.Run("requires a company name", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/api/v1/agreements/certificate", api.CertificateRequest{})
		require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		detail := decodeBody[map[string]string](t, resp)
		assert.Equal(t, "company_name is required", detail["detail"])
	})
}

func TestCertificatePDFEscapesText(t *testing.T) {
	pdf := certificatePDF(api.CertificateRequest{
		CompanyName: "Acme (Holdings) Ltd",
		AgentName:   `Back\slash Bank`,
	})
	content := string(pdf)
	assert.Contains(t, content, `Acme \(Holdings\) Ltd`)
	assert.Contains(t, content, `Back\\slash Bank`)
}
