// Package core provides the foundational domain types and interfaces used by
// ScreenMesh. It defines the core abstractions for:
//
//   - Queries and Intents (what a caller asks the pipeline to do)
//   - Targets, Candidates, Libraries and Scores (the screening domain model)
//   - Reports and RunResults (what a finished run hands back)
//   - SessionContext (cross-run memory keyed by session)
//   - Stage capability interfaces the orchestrator sequences
//   - Pluggable stores for session memory and report archival
//
// The package intentionally keeps implementation concerns (persistence,
// orchestration, concrete stage agents) out of scope, exposing small
// interfaces to enable custom backends and extensions. All exported
// identifiers include concise documentation to aid discoverability and
// external consumption.
package core
