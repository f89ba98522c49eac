package core

// ReportArchive retains the full Reports of completed runs per session so
// callers can re-fetch earlier results. Implementations should be thread-safe
// and scope reports by session identifier. Short method names (Save/Get/List)
// mirror the other store interfaces for consistency.
type ReportArchive interface {
	Save(sessionID string, report Report) error
	Get(sessionID, runID string) (Report, error)
	List(sessionID string) ([]Report, error)
}
