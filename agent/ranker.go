package agent

import (
	"context"
	"sort"

	"github.com/hupe1980/screenmesh/core"
)

// HitRanker orders scored candidates ascending by (Score, Candidate.ID) and
// truncates to the requested top-N. Candidate IDs are zero-padded positional
// strings, so the lexicographic ID tie-break is a total, deterministic order.
type HitRanker struct {
	BaseStage
}

var _ core.Ranker = (*HitRanker)(nil)

// NewHitRanker constructs the ranking stage.
func NewHitRanker() *HitRanker {
	r := &HitRanker{BaseStage: NewBaseStage("HitRanker")}
	r.SetDescription("Ranks scored candidates by ascending docking score")
	return r
}

// Rank sorts and truncates. topN is bounded above by the candidate count;
// a non-positive topN is an InvalidTopN failure. The input slice is not
// mutated.
func (r *HitRanker) Rank(_ context.Context, target core.Target, scored []core.ScoredCandidate, topN int) (core.RankedResult, error) {
	if topN <= 0 {
		return core.RankedResult{}, core.NewPipelineError(core.ErrorKindInvalidTopN,
			"top-N must be positive, got %d", topN)
	}

	ordered := make([]core.ScoredCandidate, len(scored))
	copy(ordered, scored)
	sort.SliceStable(ordered, func(a, b int) bool {
		if ordered[a].Score != ordered[b].Score {
			return ordered[a].Score < ordered[b].Score
		}
		return ordered[a].ID < ordered[b].ID
	})

	if topN > len(ordered) {
		topN = len(ordered)
	}

	r.Logger().Debug("candidates ranked", "target", target.ID, "total", len(scored), "top_n", topN)
	return core.RankedResult{
		Target:      target,
		Candidates:  ordered[:topN],
		LibrarySize: len(scored),
	}, nil
}
