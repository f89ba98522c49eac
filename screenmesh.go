// Package screenmesh provides a high-level façade over the orchestration
// engine and its service abstractions (stage agents, session memory, report
// archive & logging) for running mock virtual-screening pipelines. Most
// applications interact with this package by:
//  1. Creating a ScreenMesh via New() (optionally overriding default in-memory services)
//  2. Submitting screening queries (Screen) or knowledge questions (Ask)
//  3. Consuming the returned RunResult / Report as plain structured data
//
// The façade delegates execution to orchestrator.Orchestrator while keeping
// setup and usage ergonomics concise. All defaults are safe for local
// development and testing; production deployments typically supply a durable
// memory store and a structured logger.
package screenmesh

import (
	"context"

	"github.com/hupe1980/screenmesh/core"
	"github.com/hupe1980/screenmesh/logging"
	"github.com/hupe1980/screenmesh/orchestrator"
)

// Options configures the ScreenMesh instance.
type Options struct {
	// Stage agents (default to the built-in implementations if not provided)
	Validator  core.TargetValidator
	Generator  core.LibraryGenerator
	Scorer     core.Scorer
	Ranker     core.Ranker
	Summarizer core.Summarizer
	Answerer   core.Answerer

	// Stores (default to in-memory implementations if not provided)
	MemoryStore core.MemoryStore
	Archive     core.ReportArchive

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger

	// DefaultLibrarySize applies when neither query nor session memory
	// supplies a size. Zero keeps the engine default.
	DefaultLibrarySize int
	// DefaultTopN applies when the query omits the ranking bound. Zero keeps
	// the engine default.
	DefaultTopN int
}

// ScreenMesh is the high-level façade aggregating the orchestration engine
// and its services.
type ScreenMesh struct {
	opts   Options
	engine *orchestrator.Orchestrator
}

// New creates a new ScreenMesh instance with optional overrides. Any unset
// service is initialized with its default implementation.
func New(optFns ...func(o *Options)) *ScreenMesh {
	var opts Options
	for _, fn := range optFns {
		fn(&opts)
	}

	engine := orchestrator.New(func(o *orchestrator.Options) {
		if opts.Validator != nil {
			o.Validator = opts.Validator
		}
		if opts.Generator != nil {
			o.Generator = opts.Generator
		}
		if opts.Scorer != nil {
			o.Scorer = opts.Scorer
		}
		if opts.Ranker != nil {
			o.Ranker = opts.Ranker
		}
		if opts.Summarizer != nil {
			o.Summarizer = opts.Summarizer
		}
		if opts.Answerer != nil {
			o.Answerer = opts.Answerer
		}
		if opts.MemoryStore != nil {
			o.MemoryStore = opts.MemoryStore
		}
		if opts.Archive != nil {
			o.Archive = opts.Archive
		}
		if opts.Logger != nil {
			o.Logger = opts.Logger
		}
		if opts.DefaultLibrarySize > 0 {
			o.DefaultLibrarySize = opts.DefaultLibrarySize
		}
		if opts.DefaultTopN > 0 {
			o.DefaultTopN = opts.DefaultTopN
		}
	})

	return &ScreenMesh{opts: opts, engine: engine}
}

// Engine exposes the underlying orchestrator for advanced callers.
func (m *ScreenMesh) Engine() *orchestrator.Orchestrator { return m.engine }

// Submit runs an arbitrary query through the pipeline.
func (m *ScreenMesh) Submit(ctx context.Context, query core.Query) (*core.RunResult, error) {
	return m.engine.Submit(ctx, query)
}

// Screen is a convenience wrapper for screening queries: it screens target
// with the given library size (0 = session/default) on the given session.
func (m *ScreenMesh) Screen(ctx context.Context, sessionID, target string, librarySize int) (*core.RunResult, error) {
	return m.engine.Submit(ctx, core.Query{
		Intent:      core.IntentScreen,
		SessionID:   sessionID,
		Target:      target,
		LibrarySize: librarySize,
	})
}

// Ask is a convenience wrapper for knowledge questions.
func (m *ScreenMesh) Ask(ctx context.Context, question string) (string, error) {
	result, err := m.engine.Submit(ctx, core.Query{Intent: core.IntentAsk, Question: question})
	if err != nil {
		return "", err
	}
	return result.Answer, nil
}

// SessionContext returns the current session memory snapshot for a session.
func (m *ScreenMesh) SessionContext(sessionID string) (core.SessionContext, error) {
	return m.engine.MemoryStore().Load(sessionID)
}

// Reports returns the archived reports of the session in completion order.
func (m *ScreenMesh) Reports(sessionID string) ([]core.Report, error) {
	return m.engine.Archive().List(sessionID)
}
