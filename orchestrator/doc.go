// Package orchestrator drives the screening pipeline as an explicit workflow
// state machine. It sequences the stage agents (validate, generate, score,
// rank, summarize — or answer, for knowledge queries), threads each stage's
// output into the next, fills absent query parameters from session memory,
// and commits session context and report archive entries only after a run
// fully succeeds.
//
// Concurrency: runs for different session keys proceed in parallel; runs for
// the same key are serialized through a per-key mutex so the read-modify-write
// of session context never interleaves.
package orchestrator
