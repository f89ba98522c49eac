package core

import "fmt"

// Score is a mock docking score in centi-units: -1000 represents -10.00
// kcal/mol style binding, -400 represents -4.00. Lower is better. Keeping
// scores integral makes every comparison, tie-break and serialization exact;
// floating point appears only at display time.
type Score int

const (
	// ScoreBest is the strongest (lowest) producible score, -10.00 in
	// display units.
	ScoreBest Score = -1000
	// ScoreWorst is the weakest (highest) producible score, -4.00 in
	// display units.
	ScoreWorst Score = -400
	// ScoreRangeWidth is the number of distinct producible scores:
	// ScoreWorst - ScoreBest + 1.
	ScoreRangeWidth = int(ScoreWorst-ScoreBest) + 1
)

// Float64 converts to display units (centi-units / 100).
func (s Score) Float64() float64 { return float64(s) / 100 }

// String renders the score with two decimals, e.g. "-8.73".
func (s Score) String() string { return fmt.Sprintf("%.2f", s.Float64()) }

// InRange reports whether the score lies within the producible interval.
func (s Score) InRange() bool { return s >= ScoreBest && s <= ScoreWorst }

// MeanScore returns the arithmetic mean of the given scores in centi-units,
// rounded half away from zero. Returns 0 for an empty slice.
func MeanScore(scores []Score) Score {
	if len(scores) == 0 {
		return 0
	}
	sum := 0
	for _, s := range scores {
		sum += int(s)
	}
	n := len(scores)
	if sum < 0 {
		return Score((sum - n/2) / n)
	}
	return Score((sum + n/2) / n)
}

// ScoredCandidate pairs a candidate with its score.
type ScoredCandidate struct {
	Candidate
	Score Score `json:"score"`
}

// RankedResult is the ordered outcome of scoring + ranking: candidates sorted
// ascending by (Score, Candidate.ID) and truncated to the requested top-N.
type RankedResult struct {
	Target      Target            `json:"target"`
	Candidates  []ScoredCandidate `json:"candidates"`
	LibrarySize int               `json:"library_size"`
}

// Best returns the top-ranked candidate. Callers must check ok when the
// ranked set could be empty.
func (r RankedResult) Best() (ScoredCandidate, bool) {
	if len(r.Candidates) == 0 {
		return ScoredCandidate{}, false
	}
	return r.Candidates[0], true
}
