package agent

import (
	"context"

	"github.com/hupe1980/screenmesh/chem"
	"github.com/hupe1980/screenmesh/core"
)

// DockingScorer assigns each candidate a mock docking score:
//
//	score = (FNV-1a64(notation || targetID) mod ScoreRangeWidth) + ScoreBest
//
// an integer centi-score in [ScoreBest, ScoreWorst]. The computation is pure
// integer arithmetic over the UTF-8 bytes of the two identifiers, so a given
// (candidate, target) pair scores identically on every run and platform.
type DockingScorer struct {
	BaseStage
}

var _ core.Scorer = (*DockingScorer)(nil)

// NewDockingScorer constructs the scoring stage.
func NewDockingScorer() *DockingScorer {
	s := &DockingScorer{BaseStage: NewBaseStage("DockingScorer")}
	s.SetDescription("Computes deterministic mock docking scores for candidate libraries")
	return s
}

// ScoreCandidate computes the score for a single (notation, target) pair.
// Exposed so tests and callers can verify individual scores.
func ScoreCandidate(notation, targetID string) core.Score {
	h := chem.Hash64(notation, targetID)
	return core.Score(int(h%uint64(core.ScoreRangeWidth))) + core.ScoreBest
}

// ScoreLibrary lifts the library to scored candidates, preserving order. It
// never fails for a non-empty library; an empty library is rejected as
// EmptyLibrary to uphold the "ranked results are never empty unless the
// library was" invariant at its source.
func (s *DockingScorer) ScoreLibrary(_ context.Context, target core.Target, library core.Library) ([]core.ScoredCandidate, error) {
	if library.IsEmpty() {
		return nil, core.NewPipelineError(core.ErrorKindEmptyLibrary, "cannot score an empty library")
	}

	scored := make([]core.ScoredCandidate, library.Size())
	for i, candidate := range library.Candidates {
		scored[i] = core.ScoredCandidate{
			Candidate: candidate,
			Score:     ScoreCandidate(candidate.Notation, target.ID),
		}
	}

	s.Logger().Debug("library scored", "target", target.ID, "size", len(scored))
	return scored, nil
}
