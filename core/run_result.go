package core

import "time"

// RunStatus is the terminal disposition of a pipeline run.
type RunStatus string

const (
	// RunStatusDone marks a run that produced its result (a Report for
	// screening, an Answer for knowledge queries).
	RunStatusDone RunStatus = "done"
	// RunStatusErrored marks a run terminated by a pipeline error.
	RunStatusErrored RunStatus = "errored"
)

// ErrorInfo is the serializable view of a pipeline failure carried inside a
// RunResult. Kind is machine-readable; Detail is for humans and logs.
type ErrorInfo struct {
	Kind   ErrorKind `json:"kind"`
	Detail string    `json:"detail"`
}

// StageResult records one state the run passed through, for diagnostics.
// Output is a short human summary of what the stage produced ("library of 10
// candidates"); on failure Err holds the stage's error text.
type StageResult struct {
	State    State         `json:"state"`
	Output   string        `json:"output,omitempty"`
	Err      string        `json:"error,omitempty"`
	Duration time.Duration `json:"duration"`
}

// RunResult is everything a finished run hands back to the caller. Pipeline
// failures live here, not in Submit's error return: a run that hit
// UnknownTarget still "completed" from the orchestrator's point of view.
//
// Invariants:
//   - Status done with screen intent → Report non-nil
//   - Status done with ask intent → Answer non-empty
//   - Status errored → Err non-nil, Report nil, Answer empty
//   - Err may also be set alongside Status done when the post-run memory
//     save failed (best-effort persistence: the result survives, the
//     degradation is reported)
type RunResult struct {
	RunID     string        `json:"run_id"`
	SessionID string        `json:"session_id"`
	Intent    Intent        `json:"intent"`
	Status    RunStatus     `json:"status"`
	Report    *Report       `json:"report,omitempty"`
	Answer    string        `json:"answer,omitempty"`
	Err       *ErrorInfo    `json:"error,omitempty"`
	Warnings  []string      `json:"warnings,omitempty"`
	Trace     []StageResult `json:"trace,omitempty"`
}

// Failed reports whether the run terminated in the Errored state.
func (r *RunResult) Failed() bool { return r.Status == RunStatusErrored }
