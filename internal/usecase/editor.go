package usecase

import (
	"sync"

	"projectvoortgang/internal/domain/entities"
)

// CompletionField names one of the three editable percentage columns.
type CompletionField string

const (
	FieldPurchasing    CompletionField = "percentage_gereed_inkoop"
	FieldAssemblyLabor CompletionField = "percentage_gereed_arbeid_montage"
	FieldProjectBound  CompletionField = "percentage_gereed_arbeid_projectgebonden"
)

// EditSession is the in-memory overlay of staged completion edits for one
// user's editing session. Staged values never touch persisted state until
// the caller commits them through CommitUpdates; the overlay is local to
// the session and never shared across users.
type EditSession struct {
	mu     sync.Mutex
	order  []string
	staged map[string]entities.PartialUpdate
}

func NewEditSession() *EditSession {
	return &EditSession{staged: map[string]entities.PartialUpdate{}}
}

// Stage records a pending edit, last-write-wins per (line, field). The
// value is clamped to [0,100] before staging.
func (s *EditSession) Stage(lineKey string, field CompletionField, value float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	upd, ok := s.staged[lineKey]
	if !ok {
		upd = entities.PartialUpdate{LineKey: lineKey}
	}

	value = entities.ClampPercentage(value)
	switch field {
	case FieldPurchasing:
		upd.Purchasing = &value
	case FieldAssemblyLabor:
		upd.AssemblyLabor = &value
	case FieldProjectBound:
		upd.ProjectBound = &value
	default:
		return
	}
	// Register the line only once the field resolved, so an unknown field
	// leaves no empty entry behind.
	if !ok {
		s.order = append(s.order, lineKey)
	}
	s.staged[lineKey] = upd
}

// Updates flattens the overlay into the sparse batch the commit endpoint
// accepts, in the order lines were first touched.
func (s *EditSession) Updates() []entities.PartialUpdate {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entities.PartialUpdate, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, s.staged[key])
	}
	return out
}

// Len reports how many lines have staged edits.
func (s *EditSession) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.staged)
}

// Reset discards all staged edits, e.g. after a successful commit.
func (s *EditSession) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = nil
	s.staged = map[string]entities.PartialUpdate{}
}
