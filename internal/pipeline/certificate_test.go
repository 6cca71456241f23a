// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

package pipeline

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anuj846k/Covenant-Logic-Compiler/internal/api"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/protocol"
)

func TestFindLeverageCovenant(t *testing.T) {
	t.Run("matches case-insensitively and takes the first", func(t *testing.T) {
		covenants := []api.CovenantResult{
			{Name: "Debt Service Coverage Ratio", Value: 4.1},
			{Name: "Senior LEVERAGE Ratio", Value: 4.4},
			{Name: "Total Leverage Ratio", Value: 4.9},
		}
		found, ok := FindLeverageCovenant(covenants)
		require.True(t, ok)
		assert.Equal(t, 4.4, found.Value)
	})

	t.Run("reports absence", func(t *testing.T) {
		_, ok := FindLeverageCovenant([]api.CovenantResult{{Name: "Capex Limit"}})
		assert.False(t, ok)
	})
}

func TestAssembleCertificateRequest(t *testing.T) {
	sig := protocol.SignatoryDetails{
		CompanyName:   "Sample Corporation",
		AgentName:     "Barclays Bank PLC",
		AgreementDate: "24 December 2021",
		TestDate:      "2026-03-31",
	}

	t.Run("reports the leverage covenant's figures", func(t *testing.T) {
		calc := &api.CalculationResponse{
			AgreementID: "agr_1",
			Covenants: []api.CovenantResult{
				{Name: "Senior Leverage Ratio", Value: 4.4, Limit: 6.75, Compliant: true},
			},
		}
		req := AssembleCertificateRequest(calc, sig, nil)

		assert.Equal(t, "agr_1", req.AgreementID)
		assert.Equal(t, 4.4, req.LeverageRatio)
		assert.Equal(t, 6.75, req.LeverageLimit)
		assert.True(t, req.Compliant)
		assert.Equal(t, "Sample Corporation", req.CompanyName)
		assert.Nil(t, req.SignatureImage)
	})

	t.Run("breached leverage covenant marks the request non-compliant", func(t *testing.T) {
		calc := &api.CalculationResponse{
			Covenants: []api.CovenantResult{
				{Name: "Senior Leverage Ratio", Value: 8.1, Limit: 6.75, Compliant: false},
			},
		}
		req := AssembleCertificateRequest(calc, sig, nil)
		assert.False(t, req.Compliant)
	})

	t.Run("no leverage covenant falls back to zero and compliant", func(t *testing.T) {
		calc := &api.CalculationResponse{
			Covenants: []api.CovenantResult{{Name: "Capex Limit", Value: 2.0, Compliant: false}},
		}
		req := AssembleCertificateRequest(calc, sig, nil)
		assert.Zero(t, req.LeverageRatio)
		assert.Zero(t, req.LeverageLimit)
		assert.True(t, req.Compliant)
	})

	t.Run("nil calculation still yields a sendable request", func(t *testing.T) {
		req := AssembleCertificateRequest(nil, sig, nil)
		assert.Empty(t, req.AgreementID)
		assert.True(t, req.Compliant)
	})
}

func TestCertificateFilename(t *testing.T) {
	day := time.Date(2026, 3, 31, 15, 4, 5, 0, time.UTC)

	assert.Equal(t,
		"Compliance_Certificate_Sample_Corporation_2026-03-31.pdf",
		CertificateFilename("Sample Corporation", day))

	t.Run("runs of whitespace collapse to one underscore", func(t *testing.T) {
		assert.Equal(t,
			"Compliance_Certificate_Acme_Holding_Corp_2026-03-31.pdf",
			CertificateFilename("  Acme   Holding\tCorp ", day))
	})
}

func TestLoadSignature(t *testing.T) {
	t.Run("empty path means no signature", func(t *testing.T) {
		sig, err := loadSignature("")
		require.NoError(t, err)
		assert.Nil(t, sig)
	})

	t.Run("inlines the file as a PNG data URL", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sig.png")
		payload := []byte{0x89, 'P', 'N', 'G'}
		require.NoError(t, os.WriteFile(path, payload, 0o644))

		sig, err := loadSignature(path)
		require.NoError(t, err)
		require.NotNil(t, sig)
		assert.True(t, strings.HasPrefix(*sig, "data:image/png;base64,"))
		decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(*sig, "data:image/png;base64,"))
		require.NoError(t, err)
		assert.Equal(t, payload, decoded)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := loadSignature(filepath.Join(t.TempDir(), "absent.png"))
		assert.Error(t, err)
	})
}
