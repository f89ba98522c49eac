// Package agent provides the concrete pipeline stage implementations the
// orchestrator sequences: target validation, library generation, docking
// scoring, ranking, report summarization and knowledge answering.
//
// Each stage embeds BaseStage for shared identity handling and implements
// exactly one capability interface from the core package. Stages are
// stateless per call and deterministic for identical inputs: repeated runs
// with the same target, size and catalog reproduce the same library, scores
// and ranking, byte for byte.
package agent
