// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/anuj846k/Covenant-Logic-Compiler/internal/api"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/logger"
)

// Store is the single source of truth for pipeline artifacts. It is shared
// between the UI goroutine and the pipeline orchestrator, so every access
// goes through the store's own locking; callers never reach into State
// directly.
//
// Persistence is last-write-wins with no merge: each mutation rewrites the
// whole file. Write failures are logged and otherwise ignored - losing the
// last write on storage unavailability is acceptable for a convenience
// rehydration cache.
type Store struct {
	mu    sync.RWMutex
	path  string
	state State
}

// NewStore creates a store persisting to the given file path. The state
// starts at built-in defaults; call Load to rehydrate a previous session.
func NewStore(path string) *Store {
	return &Store{
		path:  path,
		state: NewState(),
	}
}

// Path returns the session file path.
func (s *Store) Path() string {
	return s.path
}

// Load rehydrates the session from disk. Any failure - missing file,
// unreadable file, malformed JSON, wrong schema version - logs and leaves
// the defaults in place. Load failure is never fatal to the UI.
func (s *Store) Load() {
	log := logger.GetSessionLogger()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", s.path).Msg("failed to read session file, using defaults")
		}
		return
	}

	var loaded State
	if err := json.Unmarshal(data, &loaded); err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("failed to parse session file, using defaults")
		return
	}
	if loaded.SchemaVersion != SchemaVersion {
		log.Warn().
			Int("got", loaded.SchemaVersion).
			Int("want", SchemaVersion).
			Msg("session file schema mismatch, using defaults")
		return
	}
	normalize(&loaded)

	s.mu.Lock()
	s.state = loaded
	s.mu.Unlock()

	log.Info().Str("path", s.path).Msg("session restored")
}

// normalize repairs fields an older client may have written loosely.
func normalize(st *State) {
	if st.Extraction == nil {
		return
	}
	for i := range st.Extraction.Covenants {
		st.Extraction.Covenants[i].LimitType = api.NormalizeLimitType(st.Extraction.Covenants[i].LimitType)
	}
}

// Save writes the current session to disk, creating the directory if
// needed. Best-effort: the caller may ignore the error.
func (s *Store) Save() error {
	s.mu.RLock()
	data, err := json.MarshalIndent(s.state, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

// persist is Save with fire-and-forget semantics: failures are logged,
// never surfaced, so a broken disk cannot block the wizard.
func (s *Store) persist() {
	if err := s.Save(); err != nil {
		log := logger.GetSessionLogger()
		log.Warn().Err(err).Msg("session save failed")
	}
}

// Snapshot returns a copy of the current state. Artifact pointers are
// shared; treat the snapshot as read-only.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SetAgreement records a successful upload and copies the new agreement id
// into the financial inputs, so the calculate step targets the right
// agreement without the user retyping it.
func (s *Store) SetAgreement(a *api.AgreementUploadResponse) {
	s.mu.Lock()
	s.state.Agreement = a
	if a != nil {
		s.state.Financial.AgreementID = a.AgreementID
	}
	s.mu.Unlock()
	s.persist()
}

// SetExtraction replaces the extraction artifact wholesale.
func (s *Store) SetExtraction(e *api.ExtractionResponse) {
	s.mu.Lock()
	s.state.Extraction = e
	s.mu.Unlock()
	s.persist()
}

// SetGeneratedCode replaces the generated-code artifact wholesale.
func (s *Store) SetGeneratedCode(g *api.GeneratedCodeResponse) {
	s.mu.Lock()
	s.state.GeneratedCode = g
	s.mu.Unlock()
	s.persist()
}

// SetCalculation replaces the calculation artifact wholesale.
func (s *Store) SetCalculation(c *api.CalculationResponse) {
	s.mu.Lock()
	s.state.Calculation = c
	s.mu.Unlock()
	s.persist()
}

// SetFinancial replaces the financial inputs.
func (s *Store) SetFinancial(f api.FinancialDataInput) {
	s.mu.Lock()
	s.state.Financial = f
	s.mu.Unlock()
	s.persist()
}

// UpdateCovenant applies mutate to the covenant at index. Out-of-bounds
// indices and a missing extraction are no-ops; the return value reports
// whether anything changed. The limit type is re-normalized afterwards so
// an edit cannot smuggle in a third enumeration value.
func (s *Store) UpdateCovenant(index int, mutate func(*api.CovenantDefinition)) bool {
	s.mu.Lock()
	if s.state.Extraction == nil || index < 0 || index >= len(s.state.Extraction.Covenants) {
		s.mu.Unlock()
		return false
	}
	cov := s.state.Extraction.Covenants[index]
	mutate(&cov)
	cov.LimitType = api.NormalizeLimitType(cov.LimitType)

	// Rebuild the slice so the stored sequence is never aliased by a
	// half-applied edit.
	updated := make([]api.CovenantDefinition, len(s.state.Extraction.Covenants))
	copy(updated, s.state.Extraction.Covenants)
	updated[index] = cov
	ext := *s.state.Extraction
	ext.Covenants = updated
	s.state.Extraction = &ext
	s.mu.Unlock()

	s.persist()
	return true
}

// DeleteCovenant removes the covenant at index, preserving the order of the
// rest. Out-of-bounds is a no-op.
func (s *Store) DeleteCovenant(index int) bool {
	s.mu.Lock()
	if s.state.Extraction == nil || index < 0 || index >= len(s.state.Extraction.Covenants) {
		s.mu.Unlock()
		return false
	}
	old := s.state.Extraction.Covenants
	updated := make([]api.CovenantDefinition, 0, len(old)-1)
	updated = append(updated, old[:index]...)
	updated = append(updated, old[index+1:]...)
	ext := *s.state.Extraction
	ext.Covenants = updated
	s.state.Extraction = &ext
	s.mu.Unlock()

	s.persist()
	return true
}

// AddCovenant appends a default covenant row and returns its index, which
// the UI marks as the row in inline-edit mode. Returns -1 when no
// extraction is loaded.
func (s *Store) AddCovenant() int {
	s.mu.Lock()
	if s.state.Extraction == nil {
		s.mu.Unlock()
		return -1
	}
	old := s.state.Extraction.Covenants
	updated := make([]api.CovenantDefinition, len(old), len(old)+1)
	copy(updated, old)
	updated = append(updated, api.CovenantDefinition{
		Name:       "New Covenant",
		LimitValue: 0,
		LimitType:  api.LimitTypeMax,
		SectionRef: "Clause 24.2",
	})
	ext := *s.state.Extraction
	ext.Covenants = updated
	s.state.Extraction = &ext
	idx := len(updated) - 1
	s.mu.Unlock()

	s.persist()
	return idx
}

// EBITDAComponentKind selects one of the three EBITDA sub-sequences.
type EBITDAComponentKind string

const (
	ComponentAddBacks   EBITDAComponentKind = "add_backs"
	ComponentDeductions EBITDAComponentKind = "deductions"
	ComponentCaps       EBITDAComponentKind = "caps"
)

// UpdateEBITDAAdjustment applies mutate to one add-back or deduction line.
// No-op when no EBITDA definition is loaded or the index is out of bounds.
func (s *Store) UpdateEBITDAAdjustment(kind EBITDAComponentKind, index int, mutate func(*api.EBITDAAdjustment)) bool {
	if kind != ComponentAddBacks && kind != ComponentDeductions {
		return false
	}

	s.mu.Lock()
	ext := s.state.Extraction
	if ext == nil || ext.EBITDADefinition == nil {
		s.mu.Unlock()
		return false
	}

	def := *ext.EBITDADefinition
	var list []api.EBITDAAdjustment
	if kind == ComponentAddBacks {
		list = def.AddBacks
	} else {
		list = def.Deductions
	}
	if index < 0 || index >= len(list) {
		s.mu.Unlock()
		return false
	}

	updated := make([]api.EBITDAAdjustment, len(list))
	copy(updated, list)
	mutate(&updated[index])
	if kind == ComponentAddBacks {
		def.AddBacks = updated
	} else {
		def.Deductions = updated
	}
	next := *ext
	next.EBITDADefinition = &def
	s.state.Extraction = &next
	s.mu.Unlock()

	s.persist()
	return true
}

// UpdateEBITDACap applies mutate to one cap entry, with the same no-op
// semantics as UpdateEBITDAAdjustment.
func (s *Store) UpdateEBITDACap(index int, mutate func(*api.EBITDACap)) bool {
	s.mu.Lock()
	ext := s.state.Extraction
	if ext == nil || ext.EBITDADefinition == nil {
		s.mu.Unlock()
		return false
	}
	def := *ext.EBITDADefinition
	if index < 0 || index >= len(def.Caps) {
		s.mu.Unlock()
		return false
	}

	updated := make([]api.EBITDACap, len(def.Caps))
	copy(updated, def.Caps)
	mutate(&updated[index])
	def.Caps = updated
	next := *ext
	next.EBITDADefinition = &def
	s.state.Extraction = &next
	s.mu.Unlock()

	s.persist()
	return true
}

// ClearAll resets the four optional artifacts and erases the persisted
// file. Financial inputs intentionally survive: clearing a pipeline run
// should not throw away figures the user typed in by hand.
func (s *Store) ClearAll() {
	s.mu.Lock()
	s.state.Agreement = nil
	s.state.Extraction = nil
	s.state.GeneratedCode = nil
	s.state.Calculation = nil
	s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		log := logger.GetSessionLogger()
		log.Warn().Err(err).Str("path", s.path).Msg("failed to remove session file")
	}
}

// Completed reports step completion; see State.Completed.
func (s *Store) Completed(step Step) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Completed(step)
}

// Selectable reports step navigability; see State.Selectable.
func (s *Store) Selectable(step Step) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Selectable(step)
}
