package core

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/screenmesh/logging"
)

// RunContext carries execution state & helpers for one pipeline run.
// It encapsulates the mutable, per-run scope the state machine hands to its
// stage handlers. It aggregates:
//   - The ambient cancellation Context
//   - Identifiers (SessionID, RunID)
//   - The submitted Query and the SessionContext snapshot loaded for it
//   - Effective parameters after session/default fill-in
//   - Each stage's output, accumulated as the run advances
//   - Warnings and the per-state Trace for diagnostics
//
// Handlers read the previous stage's output from the context and write their
// own; nothing outside the run observes it until the orchestrator assembles
// the RunResult.
type RunContext struct {
	Context   context.Context
	SessionID string
	RunID     string
	Query     Query
	Memory    SessionContext

	// Effective parameters, resolved from the query, the session context and
	// configured defaults before the first stage runs.
	EffectiveTarget string
	EffectiveSize   int
	EffectiveTopN   int

	// Stage outputs in pipeline order.
	Target  Target
	Library Library
	Scored  []ScoredCandidate
	Ranked  RankedResult
	Report  *Report
	Answer  string

	Warnings []string
	Trace    []StageResult

	*loggerAdapter
}

// NewRunContext constructs a RunContext with empty stage outputs.
func NewRunContext(ctx context.Context, sessionID, runID string, query Query, memory SessionContext, logger logging.Logger) *RunContext {
	return &RunContext{
		Context:       ctx,
		SessionID:     sessionID,
		RunID:         runID,
		Query:         query,
		Memory:        memory,
		loggerAdapter: newLoggerAdapter(logger),
	}
}

// Done returns a channel closed when the underlying context is cancelled.
func (rc *RunContext) Done() <-chan struct{} { return rc.Context.Done() }

// Err returns the cancellation error (if any) from the underlying context.
func (rc *RunContext) Err() error { return rc.Context.Err() }

// AddWarning appends a formatted warning to the run.
func (rc *RunContext) AddWarning(format string, args ...any) {
	rc.Warnings = append(rc.Warnings, fmt.Sprintf(format, args...))
}

// RecordStage appends a trace entry for a completed (or failed) state.
func (rc *RunContext) RecordStage(state State, output string, err error, dur time.Duration) {
	sr := StageResult{State: state, Output: output, Duration: dur}
	if err != nil {
		sr.Err = err.Error()
	}
	rc.Trace = append(rc.Trace, sr)
}

// LastOutput returns the most recent successful stage output summary, used to
// enrich error diagnostics when a later stage fails.
func (rc *RunContext) LastOutput() string {
	for i := len(rc.Trace) - 1; i >= 0; i-- {
		if rc.Trace[i].Err == "" && rc.Trace[i].Output != "" {
			return rc.Trace[i].Output
		}
	}
	return ""
}
