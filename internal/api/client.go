// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api is the typed HTTP client for the covenant collaborator
// service. Every computationally hard pipeline step - parsing, extraction,
// code generation, calculation, certificate rendering - lives behind this
// boundary; the client only moves JSON.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/anuj846k/Covenant-Logic-Compiler/internal/logger"
)

// DefaultBaseURL is used when no endpoint is configured.
const DefaultBaseURL = "http://localhost:8000/api/v1/agreements"

// Client talks to the collaborator service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a collaborator client. An empty baseURL falls back to
// DefaultBaseURL; a zero timeout falls back to five minutes, which covers
// the slowest step (LLM extraction) with room to spare.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// BaseURL returns the configured endpoint, mostly for status output.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// errorBody is the collaborator's JSON error shape.
type errorBody struct {
	Detail string `json:"detail"`
}

// decodeError turns a non-2xx response into an error. The server-supplied
// detail field wins; otherwise the per-step fallback phrase is used.
func decodeError(resp *http.Response, fallback string) error {
	body, err := io.ReadAll(resp.Body)
	if err == nil {
		var eb errorBody
		if jsonErr := json.Unmarshal(body, &eb); jsonErr == nil && eb.Detail != "" {
			return fmt.Errorf("%s", eb.Detail)
		}
	}
	return fmt.Errorf("%s (status %d)", fallback, resp.StatusCode)
}

// postJSON sends a JSON body and decodes a JSON result.
func (c *Client) doJSON(ctx context.Context, method, path string, payload any, result any, fallback string) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log := logger.GetAPILogger()
	log.Debug().Str("method", method).Str("path", path).Msg("collaborator request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", fallback, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp, fallback)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("%s: decode response: %w", fallback, err)
		}
	}
	return nil
}

// Upload sends a PDF agreement as multipart form data. Only PDFs are
// accepted; the check happens here so the user gets the refusal before any
// bytes travel.
func (c *Client) Upload(ctx context.Context, filename string, file io.Reader) (*AgreementUploadResponse, error) {
	if !strings.EqualFold(filepath.Ext(filename), ".pdf") {
		return nil, fmt.Errorf("only PDF files are supported: %s", filepath.Base(filename))
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("read agreement file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", &buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("Upload failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, decodeError(resp, "Upload failed")
	}

	var out AgreementUploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("Upload failed: decode response: %w", err)
	}
	return &out, nil
}

// Extract asks the collaborator to extract covenant definitions from an
// uploaded agreement.
func (c *Client) Extract(ctx context.Context, agreementID string) (*ExtractionResponse, error) {
	payload := map[string]string{"agreement_id": agreementID}
	var out ExtractionResponse
	if err := c.doJSON(ctx, http.MethodPost, "/extract", payload, &out, "Extraction failed"); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateCode asks the collaborator to compile the extracted covenants
// into executable calculation code.
func (c *Client) GenerateCode(ctx context.Context, agreementID string) (*GeneratedCodeResponse, error) {
	payload := map[string]string{"agreement_id": agreementID}
	var out GeneratedCodeResponse
	if err := c.doJSON(ctx, http.MethodPost, "/generate-code", payload, &out, "Code generation failed"); err != nil {
		return nil, err
	}
	return &out, nil
}

// Calculate runs the compliance calculation over the given financial data.
func (c *Client) Calculate(ctx context.Context, data FinancialDataInput) (*CalculationResponse, error) {
	var out CalculationResponse
	if err := c.doJSON(ctx, http.MethodPost, "/calculate", data, &out, "Calculation failed"); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCovenants persists human-reviewed covenant edits on the
// collaborator side (human-in-the-loop review).
func (c *Client) UpdateCovenants(ctx context.Context, agreementID string, covenants []CovenantDefinition, ebitda *EBITDADefinition) (*MessageResponse, error) {
	payload := UpdateCovenantsRequest{
		Covenants:        covenants,
		EBITDADefinition: ebitda,
	}
	var out MessageResponse
	if err := c.doJSON(ctx, http.MethodPut, "/covenants/"+agreementID, payload, &out, "Failed to update covenants"); err != nil {
		return nil, err
	}
	return &out, nil
}

// Certificate renders the signed compliance certificate and returns the raw
// PDF bytes.
func (c *Client) Certificate(ctx context.Context, req CertificateRequest) ([]byte, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/certificate", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("Certificate generation failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, decodeError(resp, "Certificate generation failed")
	}

	pdf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("Certificate generation failed: read stream: %w", err)
	}
	return pdf, nil
}
