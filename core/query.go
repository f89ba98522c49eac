package core

import "strings"

// Intent categorizes what a Query asks the pipeline to do.
type Intent string

const (
	// IntentScreen requests a full screening run: validate the target,
	// generate a candidate library, score, rank and summarize.
	IntentScreen Intent = "screen"
	// IntentAsk requests a knowledge lookup; no screening stages run and
	// session memory is left untouched.
	IntentAsk Intent = "ask"
)

// Valid reports whether the intent is one of the recognized values.
func (i Intent) Valid() bool { return i == IntentScreen || i == IntentAsk }

// Query is the single entry payload for a pipeline run. It is treated as
// immutable after submission; the orchestrator fills absent fields from
// session memory or configured defaults but never mutates the caller's value.
//
// Zero values mean "absent": LibrarySize 0 and TopN 0 signal that the caller
// did not choose, letting session context or defaults apply.
type Query struct {
	// SessionID keys the session memory this query reads and (for screen
	// intent) updates. Empty selects the default session.
	SessionID string `json:"session_id,omitempty"`
	// Intent selects the pipeline path. Defaults to IntentScreen when empty.
	Intent Intent `json:"intent"`
	// Target is a protein name ("EGFR") or a 4-character structure ID
	// ("1A4G"). Matched case-insensitively by validation.
	Target string `json:"target,omitempty"`
	// LibrarySize is the requested candidate count. 0 = absent.
	LibrarySize int `json:"library_size,omitempty"`
	// TopN bounds the ranked output. 0 = absent.
	TopN int `json:"top_n,omitempty"`
	// CustomCandidates, when non-empty, bypasses catalog sampling; entries
	// are sanitized (trim, charset check, de-dup) before use.
	CustomCandidates []string `json:"custom_candidates,omitempty"`
	// Question carries the free-text question for IntentAsk.
	Question string `json:"question,omitempty"`
}

// Normalized returns a copy with the intent defaulted and free-text fields
// trimmed. The receiver is not modified.
func (q Query) Normalized() Query {
	n := q
	if n.Intent == "" {
		n.Intent = IntentScreen
	}
	n.Target = strings.TrimSpace(n.Target)
	n.Question = strings.TrimSpace(n.Question)
	return n
}
