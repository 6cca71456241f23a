// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScenarioFile(t *testing.T) {
	path := writeScenario(t, `
name: Q1 2026 quarter end
description: Figures from the March management accounts
financials:
  consolidated_ebit: 65000000
  depreciation: 15000000
  amortisation: 3000000
  impairment_costs: 8000000
  senior_debt: 400000000
  total_debt: 450000000
  interest_expense: 12000000
  principal_payments: 10000000
`)

	scenario, err := LoadScenarioFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Q1 2026 quarter end", scenario.Name)
	assert.Equal(t, 65_000_000.0, scenario.Financials.ConsolidatedEBIT)
	assert.Equal(t, 450_000_000.0, scenario.Financials.TotalDebt)
}

func TestLoadScenarioFileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadScenarioFile(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read scenario file")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := LoadScenarioFile(writeScenario(t, "name: [unclosed"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse scenario YAML")
	})

	t.Run("validation failure surfaces", func(t *testing.T) {
		_, err := LoadScenarioFile(writeScenario(t, "description: no name given\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid scenario")
	})
}

func TestScenarioValidate(t *testing.T) {
	valid := func() ScenarioFileConfig {
		return ScenarioFileConfig{
			Name: "base case",
			Financials: ScenarioFinancials{
				SeniorDebt: 400_000_000,
				TotalDebt:  450_000_000,
			},
		}
	}

	t.Run("accepts a sane scenario", func(t *testing.T) {
		s := valid()
		assert.NoError(t, s.Validate())
	})

	t.Run("requires a name", func(t *testing.T) {
		s := valid()
		s.Name = ""
		assert.EqualError(t, s.Validate(), "scenario name is required")
	})

	t.Run("rejects negative debt", func(t *testing.T) {
		s := valid()
		s.Financials.SeniorDebt = -1
		s.Financials.TotalDebt = -1
		assert.EqualError(t, s.Validate(), "debt figures must not be negative")
	})

	t.Run("total debt must cover senior debt", func(t *testing.T) {
		s := valid()
		s.Financials.TotalDebt = 100
		s.Financials.SeniorDebt = 200
		assert.EqualError(t, s.Validate(), "total debt must be at least the senior debt")
	})
}

func TestScenarioInput(t *testing.T) {
	s := ScenarioFileConfig{
		Name: "override case",
		Financials: ScenarioFinancials{
			ConsolidatedEBIT: 1_000_000,
			SeniorDebt:       2_000_000,
			TotalDebt:        3_000_000,
		},
	}

	t.Run("uses the session agreement when the file has none", func(t *testing.T) {
		input := s.Input("agr_from_session")
		assert.Equal(t, "agr_from_session", input.AgreementID)
		assert.Equal(t, 1_000_000.0, input.ConsolidatedEBIT)
	})

	t.Run("the file's agreement id wins", func(t *testing.T) {
		withID := s
		withID.AgreementID = "agr_from_file"
		input := withID.Input("agr_from_session")
		assert.Equal(t, "agr_from_file", input.AgreementID)
	})
}
