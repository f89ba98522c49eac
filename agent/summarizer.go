package agent

import (
	"context"

	"github.com/hupe1980/screenmesh/core"
)

// Recommendation thresholds in centi-score units. The -7.00 boundary comes
// from the screening convention that compounds scoring below it warrant
// experimental follow-up.
const (
	strongBinderThreshold core.Score = -850
	promisingThreshold    core.Score = -700
)

// SummarizerOptions holds configuration overrides passed to NewReportSummarizer.
type SummarizerOptions struct {
	// Now supplies report timestamps. Tests pin it to a fixed instant to get
	// byte-identical reports.
	Now core.NowFunc
}

// ReportSummarizer turns a ranked result into the final Report. It is a pure
// function of its inputs and the injected clock; nothing else is read from
// the environment.
type ReportSummarizer struct {
	BaseStage
	now core.NowFunc
}

var _ core.Summarizer = (*ReportSummarizer)(nil)

// NewReportSummarizer constructs the summary stage with optional overrides.
func NewReportSummarizer(optFns ...func(o *SummarizerOptions)) *ReportSummarizer {
	opts := SummarizerOptions{Now: core.UTCNow}
	for _, fn := range optFns {
		fn(&opts)
	}
	s := &ReportSummarizer{BaseStage: NewBaseStage("ReportSummarizer"), now: opts.Now}
	s.SetDescription("Generates structured summary reports of screening results")
	return s
}

// Summarize builds the Report for a completed screening run. The ranked
// result must be non-empty; scoring guarantees that upstream.
func (s *ReportSummarizer) Summarize(_ context.Context, runID string, ranked core.RankedResult, topN int) (*core.Report, error) {
	best, ok := ranked.Best()
	if !ok {
		return nil, core.NewPipelineError(core.ErrorKindEmptyLibrary, "cannot summarize an empty ranked result")
	}

	scores := make([]core.Score, len(ranked.Candidates))
	for i, c := range ranked.Candidates {
		scores[i] = c.Score
	}
	worst := ranked.Candidates[len(ranked.Candidates)-1].Score

	report := &core.Report{
		RunID:          runID,
		Target:         ranked.Target,
		GeneratedAt:    s.now(),
		LibrarySize:    ranked.LibrarySize,
		TopN:           topN,
		TopCandidates:  ranked.Candidates,
		BestScore:      best.Score,
		MeanScore:      core.MeanScore(scores),
		WorstScore:     worst,
		Recommendation: recommendation(best),
	}

	s.Logger().Debug("report generated", "run_id", runID, "best_score", best.Score.String())
	return report, nil
}

// recommendation picks the assessment text from the fixed rule set based on
// the best score.
func recommendation(best core.ScoredCandidate) string {
	switch {
	case best.Score <= strongBinderThreshold:
		return "Lead compound " + best.ID + " shows strong predicted binding affinity. Proceed with ADMET profiling and in-vitro validation."
	case best.Score <= promisingThreshold:
		return "Lead compound " + best.ID + " shows promising binding affinity. Consider structure optimization before experimental validation."
	default:
		return "No candidate reached the experimental follow-up threshold. Expand or diversify the screening library."
	}
}
