// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

package results

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anuj846k/Covenant-Logic-Compiler/test/testutil"
)

func TestViewWithoutCalculation(t *testing.T) {
	m := NewModel(testutil.NewTempStore(t))
	m.SetSize(120, 36)

	assert.Contains(t, m.View(), "Run the calculation step first.")
	assert.Equal(t, "No calculation yet", m.GetLayoutInfo().Status)
}

func TestViewCompliantResults(t *testing.T) {
	m := NewModel(testutil.PopulatedStore(t))
	m.SetSize(120, 36)

	view := m.View()
	assert.Contains(t, view, "Senior Leverage Ratio")
	assert.Contains(t, view, "COMPLIANT")
	assert.Contains(t, view, "All financial covenants complied with")
	assert.Contains(t, view, "91000000.00")
	assert.Equal(t, "All covenants compliant", m.GetLayoutInfo().Status)
}

func TestViewBreachedResults(t *testing.T) {
	store := testutil.PopulatedStore(t)
	calc := *testutil.SampleCalculation()
	calc.AllCompliant = false
	calc.Covenants[0].Value = 8.12
	calc.Covenants[0].Compliant = false
	calc.BreachedCovenants = []string{"Senior Leverage Ratio"}
	store.SetCalculation(&calc)

	m := NewModel(store)
	m.SetSize(120, 36)

	view := m.View()
	assert.Contains(t, view, "BREACH")
	assert.Contains(t, view, "Breached: Senior Leverage Ratio")
	assert.Contains(t, view, "One or more financial covenants breached")
	assert.Equal(t, "1 covenant(s) breached", m.GetLayoutInfo().Status)
}

func TestLimitGlyph(t *testing.T) {
	assert.Equal(t, "≥", limitGlyph("min"))
	assert.Equal(t, "≤", limitGlyph("max"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactly10!", truncate("exactly10!", 10))
	assert.Equal(t, "this is a…", truncate("this is a long covenant name", 10))
}
