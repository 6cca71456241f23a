// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLimitType(t *testing.T) {
	assert.Equal(t, "min", NormalizeLimitType("min"))
	assert.Equal(t, "max", NormalizeLimitType("max"))
	assert.Equal(t, "max", NormalizeLimitType(""))
	assert.Equal(t, "max", NormalizeLimitType("MIN"))
	assert.Equal(t, "max", NormalizeLimitType("ceiling"))
}

func TestCovenantDefinitionUnmarshal(t *testing.T) {
	t.Run("canonical field names decode directly", func(t *testing.T) {
		var cov CovenantDefinition
		body := `{"name": "Senior Leverage Ratio", "limit_value": 6.75, "limit_type": "max", "section_ref": "Clause 24.2(a)"}`
		require.NoError(t, json.Unmarshal([]byte(body), &cov))

		assert.Equal(t, "Senior Leverage Ratio", cov.Name)
		assert.Equal(t, 6.75, cov.LimitValue)
		assert.Equal(t, "Clause 24.2(a)", cov.SectionRef)
	})

	t.Run("legacy limit and section alternates are folded in", func(t *testing.T) {
		var cov CovenantDefinition
		body := `{"name": "DSCR", "limit": 1.0, "limit_type": "min", "section": "Section 24.2(c)"}`
		require.NoError(t, json.Unmarshal([]byte(body), &cov))

		assert.Equal(t, 1.0, cov.LimitValue)
		assert.Equal(t, "Section 24.2(c)", cov.SectionRef)
		assert.Equal(t, "min", cov.LimitType)
	})

	t.Run("canonical fields win over alternates", func(t *testing.T) {
		var cov CovenantDefinition
		body := `{"name": "X", "limit_value": 5.0, "limit": 9.9, "section_ref": "Clause 1", "section": "Clause 2"}`
		require.NoError(t, json.Unmarshal([]byte(body), &cov))

		assert.Equal(t, 5.0, cov.LimitValue)
		assert.Equal(t, "Clause 1", cov.SectionRef)
	})

	t.Run("unknown limit type collapses to max", func(t *testing.T) {
		var cov CovenantDefinition
		body := `{"name": "X", "limit_type": "floor"}`
		require.NoError(t, json.Unmarshal([]byte(body), &cov))
		assert.Equal(t, "max", cov.LimitType)
	})
}
