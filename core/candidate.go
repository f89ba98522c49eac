package core

import "fmt"

// Candidate is one library member: a positional ID plus a SMILES notation.
// IDs are zero-padded ("L01", "L02", …) so lexicographic order equals
// positional order, which the ranking tie-break relies on.
type Candidate struct {
	ID       string `json:"id"`
	Notation string `json:"notation"`
}

// CandidateID formats the positional identifier for the 1-based index i.
func CandidateID(i int) string { return fmt.Sprintf("L%02d", i) }

// Library is an ordered collection of candidates with unique notations.
// Order is meaningful: it records generation order and seeds positional IDs.
type Library struct {
	Candidates []Candidate `json:"candidates"`
	// Custom marks libraries built from caller-supplied notations rather
	// than catalog sampling.
	Custom bool `json:"custom,omitempty"`
}

// Size returns the number of candidates.
func (l Library) Size() int { return len(l.Candidates) }

// IsEmpty reports whether the library has no candidates.
func (l Library) IsEmpty() bool { return len(l.Candidates) == 0 }

// Notations returns the candidate notations in library order.
func (l Library) Notations() []string {
	out := make([]string, len(l.Candidates))
	for i, c := range l.Candidates {
		out[i] = c.Notation
	}
	return out
}
