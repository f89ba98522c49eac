package testutil

import (
	"time"

	"github.com/hupe1980/screenmesh/core"
)

// ContextBuilder helps construct session contexts with fluent chaining for
// tests.
type ContextBuilder struct {
	sc core.SessionContext
}

// NewContextBuilder creates a new builder for the session with the given id.
func NewContextBuilder(sessionID string) *ContextBuilder {
	return &ContextBuilder{sc: core.NewSessionContext(sessionID)}
}

// LastTarget sets the remembered target (chainable).
func (b *ContextBuilder) LastTarget(id, name string) *ContextBuilder {
	b.sc.LastTarget = &core.Target{ID: id, Name: name}
	return b
}

// LastSize sets the remembered library size (chainable).
func (b *ContextBuilder) LastSize(n int) *ContextBuilder {
	b.sc.LastLibrarySize = n
	return b
}

// HistoryCap overrides the history cap (chainable).
func (b *ContextBuilder) HistoryCap(n int) *ContextBuilder {
	b.sc.HistoryCap = n
	return b
}

// Run appends a history entry through the same path the orchestrator uses,
// so cap eviction applies (chainable).
func (b *ContextBuilder) Run(targetID string, best core.Score, at time.Time) *ContextBuilder {
	target := core.Target{ID: targetID}
	if b.sc.LastTarget != nil && b.sc.LastTarget.ID == targetID {
		target = *b.sc.LastTarget
	}
	b.sc.RecordRun(target, b.sc.LastLibrarySize, core.HistoryEntry{
		Timestamp: at,
		TargetID:  targetID,
		BestScore: best,
	})
	return b
}

// Build returns the constructed session context.
func (b *ContextBuilder) Build() core.SessionContext {
	return b.sc
}
