// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

package stub

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/anuj846k/Covenant-Logic-Compiler/internal/api"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/logger"
)

const maxUploadBytes = 50 << 20 // matches the production collaborator's 50MB cap

// Handlers serves canned collaborator responses for local development.
type Handlers struct{}

// NewHandlers creates the handler set.
func NewHandlers() *Handlers {
	return &Handlers{}
}

// --- helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log := logger.GetStubLogger()
		log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

type agreementRequest struct {
	AgreementID string `json:"agreement_id"`
}

func decodeAgreementID(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req agreementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return "", false
	}
	if req.AgreementID == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "agreement_id is required")
		return "", false
	}
	return req.AgreementID, true
}

// --- handlers ---

// Upload handles POST /api/v1/agreements/upload.
func (h *Handlers) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "Missing file field")
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		writeDetail(w, http.StatusBadRequest, "Only PDF files are accepted.")
		return
	}

	size, err := io.Copy(io.Discard, file)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Failed to read upload")
		return
	}
	if size > maxUploadBytes {
		writeDetail(w, http.StatusBadRequest, "File too large. Maximum size is 50MB")
		return
	}

	agreementID := fmt.Sprintf("agr_%s", strings.ReplaceAll(uuid.New().String(), "-", "")[:12])
	writeJSON(w, http.StatusOK, api.AgreementUploadResponse{
		AgreementID:          agreementID,
		Filename:             header.Filename,
		PageCount:            312,
		S3Key:                fmt.Sprintf("agreements/%s/%s", agreementID, header.Filename),
		UploadTime:           time.Now().UTC().Format(time.RFC3339),
		DefinitionsFound:     true,
		DefinitionsPageRange: "281-295",
	})
}

// Extract handles POST /api/v1/agreements/extract.
func (h *Handlers) Extract(w http.ResponseWriter, r *http.Request) {
	agreementID, ok := decodeAgreementID(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, api.ExtractionResponse{
		AgreementID:      agreementID,
		ExtractionTime:   time.Now().UTC().Format(time.RFC3339),
		Success:          true,
		EBITDADefinition: sampleEBITDADefinition(),
		Covenants:        sampleCovenants(),
	})
}

// GenerateCode handles POST /api/v1/agreements/generate-code.
func (h *Handlers) GenerateCode(w http.ResponseWriter, r *http.Request) {
	agreementID, ok := decodeAgreementID(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, sampleGeneratedCode(agreementID))
}

// Calculate handles POST /api/v1/agreements/calculate.
func (h *Handlers) Calculate(w http.ResponseWriter, r *http.Request) {
	var data api.FinancialDataInput
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	writeJSON(w, http.StatusOK, computeCalculation(data))
}

// UpdateCovenants handles PUT /api/v1/agreements/covenants/{agreement_id}.
func (h *Handlers) UpdateCovenants(w http.ResponseWriter, r *http.Request) {
	agreementID := chi.URLParam(r, "agreement_id")
	var req api.UpdateCovenantsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	writeJSON(w, http.StatusOK, api.MessageResponse{
		Message: fmt.Sprintf("Updated %d covenants for agreement %s", len(req.Covenants), agreementID),
	})
}

// Certificate handles POST /api/v1/agreements/certificate and streams a PDF.
func (h *Handlers) Certificate(w http.ResponseWriter, r *http.Request) {
	var req api.CertificateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.CompanyName == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "company_name is required")
		return
	}

	pdf := certificatePDF(req)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="compliance_certificate.pdf"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		log := logger.GetStubLogger()
		log.Error().Err(err).Msg("Failed to stream certificate")
	}
}
