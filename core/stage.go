package core

import "context"

// Stage is the common surface of pipeline stage agents.
//
// Stages are the processing units the orchestrator sequences. Each capability
// interface below embeds Stage and adds the single operation the state
// machine invokes for the corresponding state. Implementations must:
//   - Be deterministic for identical inputs (the whole pipeline is replayable)
//   - Return PipelineErrors for domain failures so the orchestrator can
//     classify them
//   - Not retain or mutate their inputs after returning
type Stage interface {
	Name() string
	Description() string
}

// TargetValidator resolves a raw target string into a canonical Target.
// Failure means the input matched neither the protein table nor the
// structure-ID pattern; the returned error carries ErrorKindUnknownTarget.
type TargetValidator interface {
	Stage
	ValidateTarget(ctx context.Context, raw string) (Target, error)
}

// LibraryGenerator builds the candidate library. With custom notations it
// sanitizes and adopts them (warnings describe each dropped entry); otherwise
// it samples the fixed catalog deterministically, seeded by the target ID.
type LibraryGenerator interface {
	Stage
	GenerateLibrary(ctx context.Context, target Target, size int, custom []string) (Library, []string, error)
}

// Scorer assigns a deterministic mock docking score to every candidate,
// preserving library order. It never fails for a non-empty library.
type Scorer interface {
	Stage
	ScoreLibrary(ctx context.Context, target Target, library Library) ([]ScoredCandidate, error)
}

// Ranker sorts scored candidates ascending by (Score, Candidate.ID) and
// truncates to the top-N. A non-positive N yields ErrorKindInvalidTopN.
type Ranker interface {
	Stage
	Rank(ctx context.Context, target Target, scored []ScoredCandidate, topN int) (RankedResult, error)
}

// Summarizer turns a ranked result into the final Report. It is a pure
// function of its inputs and the clock injected at construction.
type Summarizer interface {
	Stage
	Summarize(ctx context.Context, runID string, ranked RankedResult, topN int) (*Report, error)
}

// Answerer serves knowledge questions from the fixed topic base. It never
// fails: unmatched questions get the fallback answer.
type Answerer interface {
	Stage
	Answer(ctx context.Context, question string) (string, error)
}
