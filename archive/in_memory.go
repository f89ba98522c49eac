// Package archive retains the full Reports of completed screening runs per
// session so callers can re-fetch earlier results. The in-memory
// implementation keeps a bounded, ordered list of reports per session.
package archive

import (
	"errors"
	"sync"

	"github.com/hupe1980/screenmesh/core"
)

// ErrNotFound signals that no report exists for the requested session/run.
var ErrNotFound = errors.New("report not found")

// DefaultRetention is the per-session report cap unless overridden.
const DefaultRetention = 20

// InMemoryStore is a process-local core.ReportArchive. Reports are kept in
// completion order per session; when the retention cap is exceeded the oldest
// report is evicted first. Reports are value-copied on save and retrieval.
//
// Layout: sessionID -> ordered reports
type InMemoryStore struct {
	mu        sync.RWMutex
	retention int
	reports   map[string][]core.Report
}

var _ core.ReportArchive = (*InMemoryStore)(nil)

// NewInMemoryStore returns an empty archive with the default retention cap.
func NewInMemoryStore() *InMemoryStore {
	return NewInMemoryStoreWithRetention(DefaultRetention)
}

// NewInMemoryStoreWithRetention returns an empty archive keeping at most
// retention reports per session. A non-positive retention falls back to the
// default.
func NewInMemoryStoreWithRetention(retention int) *InMemoryStore {
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &InMemoryStore{retention: retention, reports: make(map[string][]core.Report)}
}

// Save appends the report to the session's archive, evicting the oldest
// entries beyond the retention cap.
func (a *InMemoryStore) Save(sessionID string, report core.Report) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	reports := append(a.reports[sessionID], copyReport(report))
	if over := len(reports) - a.retention; over > 0 {
		reports = append([]core.Report(nil), reports[over:]...)
	}
	a.reports[sessionID] = reports
	return nil
}

// Get returns the archived report with the given run ID or ErrNotFound.
func (a *InMemoryStore) Get(sessionID, runID string) (core.Report, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, r := range a.reports[sessionID] {
		if r.RunID == runID {
			return copyReport(r), nil
		}
	}
	return core.Report{}, ErrNotFound
}

// List returns the session's archived reports in completion order. The slice
// is a snapshot and safe for caller mutation.
func (a *InMemoryStore) List(sessionID string) ([]core.Report, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	stored := a.reports[sessionID]
	out := make([]core.Report, len(stored))
	for i, r := range stored {
		out[i] = copyReport(r)
	}
	return out, nil
}

// copyReport deep-copies the report's candidate slice so archived state never
// aliases caller-held slices.
func copyReport(r core.Report) core.Report {
	cp := r
	if r.TopCandidates != nil {
		cp.TopCandidates = make([]core.ScoredCandidate, len(r.TopCandidates))
		copy(cp.TopCandidates, r.TopCandidates)
	}
	return cp
}
