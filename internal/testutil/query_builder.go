package testutil

import (
	"github.com/hupe1980/screenmesh/core"
)

// QueryBuilder helps construct queries with fluent chaining for tests.
// Example:
//
//	q := NewQueryBuilder().Screen("EGFR").Size(20).Session("s1").Build()
type QueryBuilder struct {
	query core.Query
}

// NewQueryBuilder creates a new builder for an empty query.
// Use chainable methods then call Build.
func NewQueryBuilder() *QueryBuilder {
	return &QueryBuilder{}
}

// Screen sets the screen intent and target (chainable).
func (b *QueryBuilder) Screen(target string) *QueryBuilder {
	b.query.Intent = core.IntentScreen
	b.query.Target = target
	return b
}

// Ask sets the ask intent and question (chainable).
func (b *QueryBuilder) Ask(question string) *QueryBuilder {
	b.query.Intent = core.IntentAsk
	b.query.Question = question
	return b
}

// Size sets the requested library size (chainable).
func (b *QueryBuilder) Size(n int) *QueryBuilder {
	b.query.LibrarySize = n
	return b
}

// TopN sets the ranking bound (chainable).
func (b *QueryBuilder) TopN(n int) *QueryBuilder {
	b.query.TopN = n
	return b
}

// Session sets the session key (chainable).
func (b *QueryBuilder) Session(id string) *QueryBuilder {
	b.query.SessionID = id
	return b
}

// Candidates sets custom candidate notations (chainable).
func (b *QueryBuilder) Candidates(notations ...string) *QueryBuilder {
	b.query.CustomCandidates = notations
	return b
}

// Build returns the constructed query.
func (b *QueryBuilder) Build() core.Query {
	return b.query
}
