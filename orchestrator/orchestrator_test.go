package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/screenmesh/agent"
	"github.com/hupe1980/screenmesh/core"
	"github.com/hupe1980/screenmesh/memory"
)

// fixedClock pins report timestamps so full-run determinism can be asserted
// byte for byte.
var fixedClock = func() time.Time { return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC) }

func newTestOrchestrator(optFns ...func(o *Options)) *Orchestrator {
	fns := append([]func(o *Options){func(o *Options) {
		o.Summarizer = agent.NewReportSummarizer(func(so *agent.SummarizerOptions) {
			so.Now = fixedClock
		})
	}}, optFns...)
	return New(fns...)
}

func TestSubmit_ScreeningRun(t *testing.T) {
	o := newTestOrchestrator()

	result, err := o.Submit(context.Background(), core.Query{
		Intent:      core.IntentScreen,
		Target:      "EGFR",
		LibrarySize: 20,
		SessionID:   "s1",
	})
	require.NoError(t, err)
	require.Equal(t, core.RunStatusDone, result.Status)
	require.NotNil(t, result.Report)
	assert.Nil(t, result.Err)

	report := result.Report
	assert.Equal(t, "1A4G", report.Target.ID)
	assert.Equal(t, "EGFR", report.Target.Name)
	assert.Equal(t, 20, report.LibrarySize)
	assert.True(t, report.BestScore.InRange())
	assert.LessOrEqual(t, len(report.TopCandidates), 5, "default top-N bounds the hits")
	assert.NotEmpty(t, report.Recommendation)

	// Trace covers the whole screening path in order.
	var states []core.State
	for _, sr := range result.Trace {
		states = append(states, sr.State)
	}
	assert.Equal(t, []core.State{
		core.StateValidating, core.StateGenerating, core.StateScoring,
		core.StateRanking, core.StateSummarizing,
	}, states)

	// Session memory committed.
	sc, err := o.MemoryStore().Load("s1")
	require.NoError(t, err)
	require.NotNil(t, sc.LastTarget)
	assert.Equal(t, "1A4G", sc.LastTarget.ID)
	assert.Equal(t, 20, sc.LastLibrarySize)
	require.Len(t, sc.History, 1)
	assert.Equal(t, report.BestScore, sc.History[0].BestScore)

	// Report archived.
	archived, err := o.Archive().Get("s1", report.RunID)
	require.NoError(t, err)
	assert.Equal(t, report.RunID, archived.RunID)
}

func TestSubmit_UnknownTargetLeavesMemoryUntouched(t *testing.T) {
	o := newTestOrchestrator()

	result, err := o.Submit(context.Background(), core.Query{
		Intent:    core.IntentScreen,
		Target:    "ZZZZ",
		SessionID: "s1",
	})
	require.NoError(t, err)
	assert.Equal(t, core.RunStatusErrored, result.Status)
	require.NotNil(t, result.Err)
	assert.Equal(t, core.ErrorKindUnknownTarget, result.Err.Kind)
	assert.Contains(t, result.Err.Detail, "ZZZZ")
	assert.Nil(t, result.Report)

	sc, err := o.MemoryStore().Load("s1")
	require.NoError(t, err)
	assert.True(t, sc.IsEmpty(), "failed runs must not mutate session context")
}

func TestSubmit_FollowUpFillsParametersFromSession(t *testing.T) {
	o := newTestOrchestrator()
	ctx := context.Background()

	first, err := o.Submit(ctx, core.Query{
		Intent:      core.IntentScreen,
		Target:      "EGFR",
		LibrarySize: 20,
		SessionID:   "s1",
	})
	require.NoError(t, err)
	require.Equal(t, core.RunStatusDone, first.Status)

	// Same session, no target, no size: both come from memory.
	second, err := o.Submit(ctx, core.Query{Intent: core.IntentScreen, SessionID: "s1"})
	require.NoError(t, err)
	require.Equal(t, core.RunStatusDone, second.Status)
	assert.Equal(t, "1A4G", second.Report.Target.ID)
	assert.Equal(t, 20, second.Report.LibrarySize)

	// Identical parameters mean identical candidates and scores.
	assert.Equal(t, first.Report.TopCandidates, second.Report.TopCandidates)
}

func TestSubmit_MissingParametersFailsBeforeValidating(t *testing.T) {
	o := newTestOrchestrator()

	result, err := o.Submit(context.Background(), core.Query{
		Intent:    core.IntentScreen,
		SessionID: "fresh",
	})
	require.NoError(t, err)
	assert.Equal(t, core.RunStatusErrored, result.Status)
	require.NotNil(t, result.Err)
	assert.Equal(t, core.ErrorKindMissingParameters, result.Err.Kind)
	assert.Empty(t, result.Trace, "the machine must fail before entering Validating")
}

func TestSubmit_KnowledgeQuery(t *testing.T) {
	o := newTestOrchestrator()

	result, err := o.Submit(context.Background(), core.Query{
		Intent:    core.IntentAsk,
		Question:  "What is Lipinski's Rule of 5?",
		SessionID: "s1",
	})
	require.NoError(t, err)
	assert.Equal(t, core.RunStatusDone, result.Status)
	assert.Contains(t, result.Answer, "Lipinski's Rule of 5")
	assert.Nil(t, result.Report)

	// The screening pipeline and session memory stay untouched.
	require.Len(t, result.Trace, 1)
	assert.Equal(t, core.StateAnsweringKnowledge, result.Trace[0].State)
	sc, _ := o.MemoryStore().Load("s1")
	assert.True(t, sc.IsEmpty())
}

func TestSubmit_CustomCandidatesWithWarnings(t *testing.T) {
	o := newTestOrchestrator()

	result, err := o.Submit(context.Background(), core.Query{
		Intent:           core.IntentScreen,
		Target:           "EGFR",
		CustomCandidates: []string{"CCO", "bad entry!", "c1ccccc1"},
		SessionID:        "s1",
	})
	require.NoError(t, err)
	require.Equal(t, core.RunStatusDone, result.Status)
	assert.Equal(t, 2, result.Report.LibrarySize, "only the two valid entries survive")
	assert.Len(t, result.Warnings, 1)
}

func TestSubmit_AllCustomCandidatesInvalid(t *testing.T) {
	o := newTestOrchestrator()

	result, err := o.Submit(context.Background(), core.Query{
		Intent:           core.IntentScreen,
		Target:           "EGFR",
		CustomCandidates: []string{"", "!!"},
		SessionID:        "s1",
	})
	require.NoError(t, err)
	assert.Equal(t, core.RunStatusErrored, result.Status)
	assert.Equal(t, core.ErrorKindEmptyLibrary, result.Err.Kind)
}

func TestSubmit_InvalidTopN(t *testing.T) {
	o := newTestOrchestrator()

	result, err := o.Submit(context.Background(), core.Query{
		Intent:    core.IntentScreen,
		Target:    "EGFR",
		TopN:      -3,
		SessionID: "s1",
	})
	require.NoError(t, err)
	assert.Equal(t, core.RunStatusErrored, result.Status)
	assert.Equal(t, core.ErrorKindInvalidTopN, result.Err.Kind)
	// Diagnostics carry the last successful stage output.
	assert.Contains(t, result.Err.Detail, "scored")
}

func TestSubmit_DeterministicReports(t *testing.T) {
	query := core.Query{
		Intent:      core.IntentScreen,
		Target:      "BRAF",
		LibrarySize: 15,
		TopN:        5,
	}

	// Two independent orchestrators with pinned clocks: reports must be
	// byte-identical.
	r1, err := newTestOrchestrator().Submit(context.Background(), query)
	require.NoError(t, err)
	r2, err := newTestOrchestrator().Submit(context.Background(), query)
	require.NoError(t, err)

	r1.Report.RunID = ""
	r2.Report.RunID = ""
	b1, err := json.Marshal(r1.Report)
	require.NoError(t, err)
	b2, err := json.Marshal(r2.Report)
	require.NoError(t, err)
	assert.Equal(t, b1, b2)
}

func TestSubmit_RankingOrderInvariant(t *testing.T) {
	o := newTestOrchestrator()

	result, err := o.Submit(context.Background(), core.Query{
		Intent:      core.IntentScreen,
		Target:      "CDK2",
		LibrarySize: 30,
		TopN:        30,
	})
	require.NoError(t, err)
	require.Equal(t, core.RunStatusDone, result.Status)

	hits := result.Report.TopCandidates
	for i := 1; i < len(hits); i++ {
		require.LessOrEqual(t, hits[i-1].Score, hits[i].Score, "scores must be non-decreasing")
		if hits[i-1].Score == hits[i].Score {
			assert.Less(t, hits[i-1].ID, hits[i].ID, "ties break by ascending candidate ID")
		}
	}
}

func TestSubmit_HistoryCap(t *testing.T) {
	o := newTestOrchestrator()
	ctx := context.Background()

	const runs = core.DefaultHistoryCap + 3
	for i := 0; i < runs; i++ {
		result, err := o.Submit(ctx, core.Query{
			Intent:      core.IntentScreen,
			Target:      "EGFR",
			LibrarySize: 5 + i,
			SessionID:   "s1",
		})
		require.NoError(t, err)
		require.Equal(t, core.RunStatusDone, result.Status)
	}

	sc, err := o.MemoryStore().Load("s1")
	require.NoError(t, err)
	assert.Len(t, sc.History, core.DefaultHistoryCap)
	// The most recent runs survive in order: the last one screened the
	// largest library.
	assert.Equal(t, 5+runs-1, sc.LastLibrarySize)
}

// failingStore simulates storage unavailability on load and/or save.
type failingStore struct {
	inner    *memory.InMemoryStore
	failLoad bool
	failSave bool
}

func (f *failingStore) Load(sessionID string) (core.SessionContext, error) {
	if f.failLoad {
		return core.SessionContext{}, errors.New("disk on fire")
	}
	return f.inner.Load(sessionID)
}

func (f *failingStore) Save(sc core.SessionContext) error {
	if f.failSave {
		return errors.New("disk on fire")
	}
	return f.inner.Save(sc)
}

func TestSubmit_StorageUnavailableOnLoadDegrades(t *testing.T) {
	store := &failingStore{inner: memory.NewInMemoryStore(), failLoad: true}
	o := newTestOrchestrator(func(opts *Options) { opts.MemoryStore = store })

	result, err := o.Submit(context.Background(), core.Query{
		Intent:      core.IntentScreen,
		Target:      "EGFR",
		LibrarySize: 10,
		SessionID:   "s1",
	})
	require.NoError(t, err)
	assert.Equal(t, core.RunStatusDone, result.Status, "load failure degrades to empty context")
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "session context unavailable")
}

func TestSubmit_StorageUnavailableOnSaveIsBestEffort(t *testing.T) {
	store := &failingStore{inner: memory.NewInMemoryStore(), failSave: true}
	o := newTestOrchestrator(func(opts *Options) { opts.MemoryStore = store })

	result, err := o.Submit(context.Background(), core.Query{
		Intent:      core.IntentScreen,
		Target:      "EGFR",
		LibrarySize: 10,
		SessionID:   "s1",
	})
	require.NoError(t, err)
	assert.Equal(t, core.RunStatusDone, result.Status, "screening succeeded even if persistence failed")
	require.NotNil(t, result.Report)
	require.NotNil(t, result.Err)
	assert.Equal(t, core.ErrorKindStorageUnavailable, result.Err.Kind)
}

func TestSubmit_CancellationDiscardsRun(t *testing.T) {
	o := newTestOrchestrator()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := o.Submit(ctx, core.Query{
		Intent:      core.IntentScreen,
		Target:      "EGFR",
		LibrarySize: 10,
		SessionID:   "s1",
	})
	require.Error(t, err)
	assert.Nil(t, result)

	sc, loadErr := o.MemoryStore().Load("s1")
	require.NoError(t, loadErr)
	assert.True(t, sc.IsEmpty(), "cancelled runs must not mutate session context")
}

func TestSubmit_InvalidIntent(t *testing.T) {
	o := newTestOrchestrator()
	result, err := o.Submit(context.Background(), core.Query{Intent: "transmute", Target: "EGFR"})
	require.NoError(t, err)
	assert.Equal(t, core.RunStatusErrored, result.Status)
	assert.Equal(t, core.ErrorKindMissingParameters, result.Err.Kind)
}

func TestSubmit_DefaultSessionAndIntent(t *testing.T) {
	o := newTestOrchestrator()
	result, err := o.Submit(context.Background(), core.Query{Target: "EGFR"})
	require.NoError(t, err)
	assert.Equal(t, core.RunStatusDone, result.Status)
	assert.Equal(t, DefaultSessionID, result.SessionID)
	assert.Equal(t, core.IntentScreen, result.Intent)
	assert.Equal(t, 10, result.Report.LibrarySize, "default library size applies")
}

func TestSubmit_ConcurrentSessionsSerializePerKey(t *testing.T) {
	o := newTestOrchestrator()
	ctx := context.Background()

	const perSession = 6
	var wg sync.WaitGroup
	for _, sessionID := range []string{"alpha", "beta"} {
		for i := 0; i < perSession; i++ {
			wg.Add(1)
			go func(sid string, n int) {
				defer wg.Done()
				result, err := o.Submit(ctx, core.Query{
					Intent:      core.IntentScreen,
					Target:      "EGFR",
					LibrarySize: 5 + n,
					SessionID:   sid,
				})
				if err != nil || result.Status != core.RunStatusDone {
					t.Errorf("session %s run %d failed: %v / %+v", sid, n, err, result)
				}
			}(sessionID, i)
		}
	}
	wg.Wait()

	// Serialized read-modify-write means no history entry is lost.
	for _, sessionID := range []string{"alpha", "beta"} {
		sc, err := o.MemoryStore().Load(sessionID)
		require.NoError(t, err)
		assert.Len(t, sc.History, perSession, "session %s", sessionID)
	}
}

func TestSubmit_ScoreBoundsProperty(t *testing.T) {
	o := newTestOrchestrator()
	ctx := context.Background()

	for _, target := range []string{"EGFR", "ACE2", "BRAF", "ALK", "CDK2", "VEGFR", "BCL2", "HSP90", "MTOR", "PI3K"} {
		result, err := o.Submit(ctx, core.Query{
			Intent:      core.IntentScreen,
			Target:      target,
			LibrarySize: 30,
			TopN:        30,
			SessionID:   fmt.Sprintf("bounds-%s", target),
		})
		require.NoError(t, err)
		require.Equal(t, core.RunStatusDone, result.Status, "target %s", target)
		for _, hit := range result.Report.TopCandidates {
			assert.True(t, hit.Score.InRange(), "target %s candidate %s score %d", target, hit.ID, hit.Score)
		}
	}
}
