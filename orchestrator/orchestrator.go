package orchestrator

import (
	"context"
	"time"

	"github.com/hupe1980/screenmesh/agent"
	"github.com/hupe1980/screenmesh/archive"
	"github.com/hupe1980/screenmesh/core"
	"github.com/hupe1980/screenmesh/logging"
	"github.com/hupe1980/screenmesh/memory"
	"github.com/hupe1980/screenmesh/metrics"
)

// DefaultSessionID keys session memory when the caller supplies none.
const DefaultSessionID = "default"

// Options holds dependency + configuration overrides passed to New().
type Options struct {
	// Stage agents. Each unset stage gets the built-in implementation.
	Validator  core.TargetValidator
	Generator  core.LibraryGenerator
	Scorer     core.Scorer
	Ranker     core.Ranker
	Summarizer core.Summarizer
	Answerer   core.Answerer

	// MemoryStore persists session contexts (defaults to in-memory).
	MemoryStore core.MemoryStore
	// Archive retains completed run reports per session (defaults to
	// in-memory).
	Archive core.ReportArchive
	// Logger receives pipeline logs (defaults to NoOp).
	Logger logging.Logger

	// DefaultLibrarySize applies when neither the query nor session memory
	// supplies a size.
	DefaultLibrarySize int
	// DefaultTopN applies when the query omits the ranking bound.
	DefaultTopN int
}

// Orchestrator coordinates pipeline execution: it resolves effective query
// parameters against session memory, drives the state machine, records
// per-stage diagnostics, and commits memory and archive state after success.
// Public methods are safe for concurrent use.
type Orchestrator struct {
	validator  core.TargetValidator
	generator  core.LibraryGenerator
	scorer     core.Scorer
	ranker     core.Ranker
	summarizer core.Summarizer
	answerer   core.Answerer

	memoryStore core.MemoryStore
	archive     core.ReportArchive
	logger      logging.Logger

	defaultLibrarySize int
	defaultTopN        int

	transitions map[core.State]transition
	sessions    *keyedMutex
}

// New constructs an Orchestrator with optional overrides.
func New(optFns ...func(o *Options)) *Orchestrator {
	opts := Options{
		Validator:          agent.NewTargetValidator(),
		Generator:          agent.NewLibraryGenerator(),
		Scorer:             agent.NewDockingScorer(),
		Ranker:             agent.NewHitRanker(),
		Summarizer:         agent.NewReportSummarizer(),
		Answerer:           agent.NewKnowledgeAnswerer(),
		MemoryStore:        memory.NewInMemoryStore(),
		Archive:            archive.NewInMemoryStore(),
		Logger:             logging.NoOpLogger{},
		DefaultLibrarySize: 10,
		DefaultTopN:        5,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	o := &Orchestrator{
		validator:          opts.Validator,
		generator:          opts.Generator,
		scorer:             opts.Scorer,
		ranker:             opts.Ranker,
		summarizer:         opts.Summarizer,
		answerer:           opts.Answerer,
		memoryStore:        opts.MemoryStore,
		archive:            opts.Archive,
		logger:             opts.Logger,
		defaultLibrarySize: opts.DefaultLibrarySize,
		defaultTopN:        opts.DefaultTopN,
		sessions:           newKeyedMutex(),
	}
	o.transitions = o.buildTransitions()
	return o
}

// MemoryStore returns the session store the orchestrator commits to.
func (o *Orchestrator) MemoryStore() core.MemoryStore { return o.memoryStore }

// Archive returns the report archive completed runs are saved to.
func (o *Orchestrator) Archive() core.ReportArchive { return o.archive }

// Submit runs one query through the pipeline and returns its RunResult.
//
// The returned error is non-nil only for caller cancellation; every pipeline
// failure is carried inside the RunResult with Status errored. Runs for the
// same session key are serialized; different keys proceed concurrently.
func (o *Orchestrator) Submit(ctx context.Context, query core.Query) (*core.RunResult, error) {
	query = query.Normalized()
	sessionID := query.SessionID
	if sessionID == "" {
		sessionID = DefaultSessionID
	}
	runID := core.NewID()

	if !query.Intent.Valid() {
		rc := core.NewRunContext(ctx, sessionID, runID, query, core.NewSessionContext(sessionID), o.logger)
		return o.erroredResult(rc, core.StateIdle,
			core.NewPipelineError(core.ErrorKindMissingParameters, "unsupported intent %q", query.Intent)), nil
	}

	if query.Intent == core.IntentAsk {
		// Knowledge queries never touch session memory, so they skip the
		// per-session lock and run concurrently even within one session.
		rc := core.NewRunContext(ctx, sessionID, runID, query, core.NewSessionContext(sessionID), o.logger)
		return o.runMachine(rc, core.StateAnsweringKnowledge)
	}

	unlock := o.sessions.Lock(sessionID)
	defer unlock()

	memoryCtx, loadWarning := o.loadMemory(sessionID)
	rc := core.NewRunContext(ctx, sessionID, runID, query, memoryCtx, o.logger)
	if loadWarning != "" {
		rc.AddWarning("%s", loadWarning)
	}

	if err := o.resolveParameters(rc); err != nil {
		// Fail fast before entering Validating.
		return o.erroredResult(rc, core.StateIdle, err), nil
	}

	return o.runMachine(rc, core.StateValidating)
}

// loadMemory reads the session context, degrading a storage failure to an
// empty context with a warning (screening can proceed without prior state).
func (o *Orchestrator) loadMemory(sessionID string) (core.SessionContext, string) {
	sc, err := o.memoryStore.Load(sessionID)
	if err != nil {
		o.logger.Warn("session context load failed, proceeding without prior context",
			"session_id", sessionID, "error", err.Error())
		return core.NewSessionContext(sessionID), "session context unavailable: " + err.Error()
	}
	return sc, ""
}

// resolveParameters fills the run's effective target, library size and top-N
// from the query, session memory and configured defaults, in that order. A
// missing target with no remembered one is a MissingParameters failure.
func (o *Orchestrator) resolveParameters(rc *core.RunContext) error {
	query := rc.Query

	target := query.Target
	if target == "" && rc.Memory.LastTarget != nil {
		target = rc.Memory.LastTarget.ID
		rc.LogInfo("target filled from session memory", "target", target)
	}
	if target == "" {
		return core.NewPipelineError(core.ErrorKindMissingParameters,
			"no target in query and no remembered target for session %q", rc.SessionID)
	}
	rc.EffectiveTarget = target

	size := query.LibrarySize
	if size == 0 && rc.Memory.LastLibrarySize > 0 {
		size = rc.Memory.LastLibrarySize
		rc.LogInfo("library size filled from session memory", "size", size)
	}
	if size == 0 {
		size = o.defaultLibrarySize
	}
	rc.EffectiveSize = size

	topN := query.TopN
	if topN == 0 {
		topN = o.defaultTopN
	}
	rc.EffectiveTopN = topN

	return nil
}

// runMachine drives the state machine from the given initial state until a
// terminal state, checking for caller cancellation between stages.
func (o *Orchestrator) runMachine(rc *core.RunContext, state core.State) (*core.RunResult, error) {
	runStart := time.Now()
	log := o.logger

	for !state.Terminal() {
		if err := rc.Err(); err != nil {
			// Discard the in-progress run. No memory mutation has happened:
			// the commit point is only reached after Summarizing completes.
			log.Warn("run cancelled", "run_id", rc.RunID, "state", state.String())
			return nil, err
		}

		tr, ok := o.transitions[state]
		if !ok {
			return o.erroredResult(rc, state,
				core.NewPipelineError(core.ErrorKindMissingParameters, "no transition from state %q", state)), nil
		}

		stageStart := time.Now()
		output, err := tr.run(rc)
		dur := time.Since(stageStart)
		rc.RecordStage(state, output, err, dur)

		if err != nil {
			metrics.StageFailuresTotal.WithLabelValues(state.String(), string(core.KindOf(err))).Inc()
			log.Error("stage failed", "run_id", rc.RunID, "state", state.String(), "error", err.Error())
			result := o.erroredResult(rc, state, err)
			o.observeRun(rc, result, runStart)
			return result, nil
		}

		log.Debug("stage completed", "run_id", rc.RunID, "state", state.String(),
			"output", output, "duration", dur.String())
		state = tr.next
	}

	result := o.doneResult(rc)
	if rc.Query.Intent == core.IntentScreen {
		o.commit(rc, result)
	}
	o.observeRun(rc, result, runStart)
	return result, nil
}

// commit persists the session context and archives the report after a fully
// successful screening run. Persistence is best-effort: a save failure is
// surfaced on the result but the computed report still stands.
func (o *Orchestrator) commit(rc *core.RunContext, result *core.RunResult) {
	report := rc.Report
	best, _ := rc.Ranked.Best()

	rc.Memory.RecordRun(rc.Target, rc.Library.Size(), core.HistoryEntry{
		Timestamp:      report.GeneratedAt,
		TargetID:       rc.Target.ID,
		BestScore:      report.BestScore,
		TopCandidateID: best.ID,
	})

	if err := o.memoryStore.Save(rc.Memory); err != nil {
		metrics.MemorySaveFailuresTotal.Inc()
		o.logger.Error("session context save failed", "session_id", rc.SessionID, "error", err.Error())
		result.Err = &core.ErrorInfo{
			Kind:   core.ErrorKindStorageUnavailable,
			Detail: "session context save failed: " + err.Error(),
		}
	}

	if o.archive != nil {
		if err := o.archive.Save(rc.SessionID, *report); err != nil {
			o.logger.Warn("report archive save failed", "session_id", rc.SessionID, "error", err.Error())
		}
	}
}

func (o *Orchestrator) observeRun(rc *core.RunContext, result *core.RunResult, start time.Time) {
	metrics.RunsTotal.WithLabelValues(string(rc.Query.Intent), string(result.Status)).Inc()
	metrics.RunDuration.Observe(time.Since(start).Seconds())
	o.logger.Info("run finished", "run_id", rc.RunID, "session_id", rc.SessionID,
		"intent", string(rc.Query.Intent), "status", string(result.Status),
		"stages", len(rc.Trace), "duration", time.Since(start).String())
}

// doneResult assembles the successful RunResult from the run context.
func (o *Orchestrator) doneResult(rc *core.RunContext) *core.RunResult {
	return &core.RunResult{
		RunID:     rc.RunID,
		SessionID: rc.SessionID,
		Intent:    rc.Query.Intent,
		Status:    core.RunStatusDone,
		Report:    rc.Report,
		Answer:    rc.Answer,
		Warnings:  rc.Warnings,
		Trace:     rc.Trace,
	}
}

// erroredResult assembles the failed RunResult, enriching the error detail
// with the last successful stage output for diagnostics.
func (o *Orchestrator) erroredResult(rc *core.RunContext, state core.State, err error) *core.RunResult {
	info := &core.ErrorInfo{Kind: core.ErrorKindMissingParameters, Detail: err.Error()}
	if pe, ok := core.AsPipelineError(err); ok {
		info = pe.Info()
	}
	if last := rc.LastOutput(); last != "" {
		info.Detail += " (last completed stage output: " + last + ")"
	}
	rc.LogWarn("run errored", "state", state.String(), "kind", string(info.Kind))

	return &core.RunResult{
		RunID:     rc.RunID,
		SessionID: rc.SessionID,
		Intent:    rc.Query.Intent,
		Status:    core.RunStatusErrored,
		Err:       info,
		Warnings:  rc.Warnings,
		Trace:     rc.Trace,
	}
}
