// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/anuj846k/Covenant-Logic-Compiler/internal/api"
)

// ScenarioFileConfig represents a financial scenario YAML file used for
// headless calculations, e.g. quarter-end batch checks.
type ScenarioFileConfig struct {
	Name        string             `yaml:"name"`
	Description string             `yaml:"description"`
	AgreementID string             `yaml:"agreement_id"`
	Financials  ScenarioFinancials `yaml:"financials"`
}

// ScenarioFinancials holds the figures submitted to the calculation
type ScenarioFinancials struct {
	ConsolidatedEBIT  float64 `yaml:"consolidated_ebit"`
	Depreciation      float64 `yaml:"depreciation"`
	Amortisation      float64 `yaml:"amortisation"`
	ImpairmentCosts   float64 `yaml:"impairment_costs"`
	SeniorDebt        float64 `yaml:"senior_debt"`
	TotalDebt         float64 `yaml:"total_debt"`
	InterestExpense   float64 `yaml:"interest_expense"`
	PrincipalPayments float64 `yaml:"principal_payments"`
}

// LoadScenarioFile loads and validates a scenario YAML file
func LoadScenarioFile(path string) (*ScenarioFileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var cfg ScenarioFileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scenario YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &cfg, nil
}

// Validate checks the scenario for errors
func (s *ScenarioFileConfig) Validate() error {
	if s.Name == "" {
		return errors.New("scenario name is required")
	}
	if s.Financials.SeniorDebt < 0 || s.Financials.TotalDebt < 0 {
		return errors.New("debt figures must not be negative")
	}
	if s.Financials.TotalDebt < s.Financials.SeniorDebt {
		return errors.New("total debt must be at least the senior debt")
	}
	return nil
}

// Input converts the scenario into the calculation request payload
func (s *ScenarioFileConfig) Input(agreementID string) api.FinancialDataInput {
	if s.AgreementID != "" {
		agreementID = s.AgreementID
	}
	return api.FinancialDataInput{
		AgreementID:       agreementID,
		ConsolidatedEBIT:  s.Financials.ConsolidatedEBIT,
		Depreciation:      s.Financials.Depreciation,
		Amortisation:      s.Financials.Amortisation,
		ImpairmentCosts:   s.Financials.ImpairmentCosts,
		SeniorDebt:        s.Financials.SeniorDebt,
		TotalDebt:         s.Financials.TotalDebt,
		InterestExpense:   s.Financials.InterestExpense,
		PrincipalPayments: s.Financials.PrincipalPayments,
	}
}
