package core

import "time"

// DefaultHistoryCap bounds session run history unless a store or caller
// chooses otherwise.
const DefaultHistoryCap = 10

// HistoryEntry is one completed screening run remembered in a session.
type HistoryEntry struct {
	Timestamp      time.Time `json:"timestamp"`
	TargetID       string    `json:"target"`
	BestScore      Score     `json:"best_score"`
	TopCandidateID string    `json:"top_candidate_id"`
}

// SessionContext is the cross-run memory for one session key. It remembers
// the last screened target and library size so follow-up queries can omit
// them, plus a bounded history of completed runs.
//
// Contract:
//   - Mutated only by the orchestrator, and only after a fully successful
//     screening run (all-or-nothing commit).
//   - Knowledge queries never read or write it.
//   - History is bounded by HistoryCap; the oldest entry is evicted first.
type SessionContext struct {
	SessionID       string         `json:"session_id"`
	LastTarget      *Target        `json:"last_target,omitempty"`
	LastLibrarySize int            `json:"last_library_size,omitempty"`
	History         []HistoryEntry `json:"history,omitempty"`
	HistoryCap      int            `json:"history_cap"`
}

// NewSessionContext creates an empty context for the given session key with
// the default history cap.
func NewSessionContext(sessionID string) SessionContext {
	return SessionContext{SessionID: sessionID, HistoryCap: DefaultHistoryCap}
}

// RecordRun updates the context with the outcome of a successful screening
// run: it sets the last target and library size and appends a history entry,
// evicting the oldest entries beyond the cap.
func (s *SessionContext) RecordRun(target Target, librarySize int, entry HistoryEntry) {
	t := target
	s.LastTarget = &t
	s.LastLibrarySize = librarySize
	if s.HistoryCap <= 0 {
		s.HistoryCap = DefaultHistoryCap
	}
	s.History = append(s.History, entry)
	if over := len(s.History) - s.HistoryCap; over > 0 {
		s.History = append([]HistoryEntry(nil), s.History[over:]...)
	}
}

// Clone returns a deep copy safe for independent mutation.
func (s SessionContext) Clone() SessionContext {
	clone := s
	if s.LastTarget != nil {
		t := *s.LastTarget
		clone.LastTarget = &t
	}
	if s.History != nil {
		clone.History = make([]HistoryEntry, len(s.History))
		copy(clone.History, s.History)
	}
	return clone
}

// IsEmpty reports whether the context carries no remembered state.
func (s SessionContext) IsEmpty() bool {
	return s.LastTarget == nil && s.LastLibrarySize == 0 && len(s.History) == 0
}
