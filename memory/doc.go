// Package memory provides the in-process core.MemoryStore implementation
// used by default. Session contexts are kept in a mutex-guarded map and
// defensively copied on every load and save, so callers can never mutate
// stored state through aliasing. For durability across process restarts use
// the sqlite subpackage.
package memory
