package core

import "time"

// Report is the final artifact of a successful screening run. It is read-only
// after creation: the orchestrator archives it and returns it to the caller,
// and renderers (CSV, Markdown) consume it without mutation.
type Report struct {
	// RunID uniquely identifies the producing run (UUID).
	RunID string `json:"run_id"`
	// Target is the validated screening target.
	Target Target `json:"target"`
	// GeneratedAt is the report creation time from the injected clock, UTC.
	GeneratedAt time.Time `json:"generated_at"`
	// LibrarySize is the size of the scored library.
	LibrarySize int `json:"library_size"`
	// TopN is the effective ranking bound applied.
	TopN int `json:"top_n"`
	// TopCandidates are the ranked hits, best first.
	TopCandidates []ScoredCandidate `json:"top_candidates"`
	// BestScore, MeanScore and WorstScore summarize the top hits.
	BestScore  Score `json:"best_score"`
	MeanScore  Score `json:"mean_score"`
	WorstScore Score `json:"worst_score"`
	// Recommendation is the rule-derived assessment text.
	Recommendation string `json:"recommendation"`
}
