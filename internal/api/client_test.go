// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("empty base URL falls back to the default", func(t *testing.T) {
		c := NewClient("", 0)
		assert.Equal(t, DefaultBaseURL, c.BaseURL())
	})

	t.Run("trailing slash is trimmed", func(t *testing.T) {
		c := NewClient("http://example.test/api/v1/agreements/", time.Minute)
		assert.Equal(t, "http://example.test/api/v1/agreements", c.BaseURL())
	})
}

func TestDecodeError(t *testing.T) {
	t.Run("server detail wins over the fallback", func(t *testing.T) {
		resp := &http.Response{
			StatusCode: 400,
			Body:       httpBody(`{"detail": "Only PDF files are accepted."}`),
		}
		err := decodeError(resp, "Upload failed")
		assert.EqualError(t, err, "Only PDF files are accepted.")
	})

	t.Run("non-JSON body falls back to the step phrase", func(t *testing.T) {
		resp := &http.Response{StatusCode: 502, Body: httpBody("<html>bad gateway</html>")}
		err := decodeError(resp, "Extraction failed")
		assert.EqualError(t, err, "Extraction failed (status 502)")
	})

	t.Run("JSON without detail falls back too", func(t *testing.T) {
		resp := &http.Response{StatusCode: 500, Body: httpBody(`{"error": "boom"}`)}
		err := decodeError(resp, "Calculation failed")
		assert.EqualError(t, err, "Calculation failed (status 500)")
	})
}

func httpBody(s string) *bodyCloser {
	return &bodyCloser{Reader: strings.NewReader(s)}
}

type bodyCloser struct{ *strings.Reader }

func (b *bodyCloser) Close() error { return nil }

func TestClientUpload(t *testing.T) {
	t.Run("rejects non-PDF filenames before any request", func(t *testing.T) {
		c := NewClient("http://127.0.0.1:1", time.Second)
		_, err := c.Upload(context.Background(), "figures.xlsx", strings.NewReader("x"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "only PDF files")
	})

	t.Run("sends multipart form with the file field", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/upload", r.URL.Path)

			file, header, err := r.FormFile("file")
			require.NoError(t, err)
			defer file.Close()
			assert.Equal(t, "agreement.pdf", header.Filename)

			json.NewEncoder(w).Encode(AgreementUploadResponse{
				AgreementID: "agr_test",
				Filename:    header.Filename,
				PageCount:   12,
			})
		}))
		defer srv.Close()

		c := NewClient(srv.URL, time.Second)
		out, err := c.Upload(context.Background(), "/tmp/agreement.pdf", strings.NewReader("%PDF-1.4"))
		require.NoError(t, err)
		assert.Equal(t, "agr_test", out.AgreementID)
		assert.Equal(t, 12, out.PageCount)
	})
}

func TestClientJSONOperations(t *testing.T) {
	type recorded struct {
		method string
		path   string
		body   map[string]any
	}
	var last recorded

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		last = recorded{method: r.Method, path: r.URL.Path}
		json.NewDecoder(r.Body).Decode(&last.body)

		switch r.URL.Path {
		case "/extract":
			json.NewEncoder(w).Encode(ExtractionResponse{AgreementID: "agr_1", Success: true})
		case "/generate-code":
			json.NewEncoder(w).Encode(GeneratedCodeResponse{AgreementID: "agr_1", Functions: []string{"calculate_ebitda"}})
		case "/calculate":
			json.NewEncoder(w).Encode(CalculationResponse{AgreementID: "agr_1", EBITDA: 91_000_000})
		case "/covenants/agr_1":
			json.NewEncoder(w).Encode(MessageResponse{Message: "Updated 2 covenants"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	ctx := context.Background()

	t.Run("extract posts the agreement id", func(t *testing.T) {
		out, err := c.Extract(ctx, "agr_1")
		require.NoError(t, err)
		assert.True(t, out.Success)
		assert.Equal(t, "agr_1", last.body["agreement_id"])
	})

	t.Run("generate-code posts the agreement id", func(t *testing.T) {
		out, err := c.GenerateCode(ctx, "agr_1")
		require.NoError(t, err)
		assert.Equal(t, []string{"calculate_ebitda"}, out.Functions)
	})

	t.Run("calculate posts the financial payload", func(t *testing.T) {
		out, err := c.Calculate(ctx, FinancialDataInput{AgreementID: "agr_1", ConsolidatedEBIT: 65_000_000})
		require.NoError(t, err)
		assert.Equal(t, 91_000_000.0, out.EBITDA)
		assert.Equal(t, 65_000_000.0, last.body["consolidated_ebit"])
	})

	t.Run("covenant update uses PUT with the id in the path", func(t *testing.T) {
		out, err := c.UpdateCovenants(ctx, "agr_1", []CovenantDefinition{{Name: "A"}, {Name: "B"}}, nil)
		require.NoError(t, err)
		assert.Equal(t, "Updated 2 covenants", out.Message)
		assert.Equal(t, http.MethodPut, last.method)
		assert.Equal(t, "/covenants/agr_1", last.path)
	})
}

func TestClientCertificate(t *testing.T) {
	t.Run("returns the raw PDF stream", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/certificate", r.URL.Path)
			var req CertificateRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "Sample Corporation", req.CompanyName)

			w.Header().Set("Content-Type", "application/pdf")
			w.Write([]byte("%PDF-1.4 fake"))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, time.Second)
		pdf, err := c.Certificate(context.Background(), CertificateRequest{CompanyName: "Sample Corporation"})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(pdf), "%PDF"))
	})

	t.Run("surfaces the server detail on failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(map[string]string{"detail": "company_name is required"})
		}))
		defer srv.Close()

		c := NewClient(srv.URL, time.Second)
		_, err := c.Certificate(context.Background(), CertificateRequest{})
		assert.EqualError(t, err, "company_name is required")
	})
}
