package core

// MemoryStore persists SessionContext snapshots keyed by session ID. The
// orchestrator owns the read/modify/write cycle: Load before the first
// pipeline stage, Save only after a fully successful run. Implementations
// must be safe for concurrent use and must return defensive copies.
//
// Load returns an empty NewSessionContext for unknown session IDs, not an
// error; errors signal storage unavailability.
type MemoryStore interface {
	Load(sessionID string) (SessionContext, error)
	Save(ctx SessionContext) error
}
