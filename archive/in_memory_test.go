package archive

import (
	"errors"
	"fmt"
	"testing"

	"github.com/hupe1980/screenmesh/core"
)

// Interface compliance (compile-time assertion)
var _ core.ReportArchive = (*InMemoryStore)(nil)

func report(runID string) core.Report {
	return core.Report{
		RunID:  runID,
		Target: core.Target{ID: "1A4G", Name: "EGFR"},
		TopCandidates: []core.ScoredCandidate{
			{Candidate: core.Candidate{ID: "L01", Notation: "CCO"}, Score: -800},
		},
	}
}

func TestInMemoryStore_SaveGetList(t *testing.T) {
	a := NewInMemoryStore()
	if err := a.Save("s1", report("r1")); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := a.Save("s1", report("r2")); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := a.Get("s1", "r1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.RunID != "r1" {
		t.Fatalf("unexpected report: %#v", got)
	}

	list, err := a.List("s1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 2 || list[0].RunID != "r1" || list[1].RunID != "r2" {
		t.Fatalf("unexpected list order: %#v", list)
	}
}

func TestInMemoryStore_NotFound(t *testing.T) {
	a := NewInMemoryStore()
	if _, err := a.Get("s1", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	list, err := a.List("unknown")
	if err != nil || len(list) != 0 {
		t.Fatalf("expected empty list, got %v, %v", list, err)
	}
}

func TestInMemoryStore_RetentionEvictsOldest(t *testing.T) {
	a := NewInMemoryStoreWithRetention(3)
	for i := 1; i <= 5; i++ {
		if err := a.Save("s1", report(fmt.Sprintf("r%d", i))); err != nil {
			t.Fatalf("save failed: %v", err)
		}
	}
	list, _ := a.List("s1")
	if len(list) != 3 {
		t.Fatalf("expected 3 retained reports, got %d", len(list))
	}
	for i, want := range []string{"r3", "r4", "r5"} {
		if list[i].RunID != want {
			t.Fatalf("expected %s at position %d, got %s", want, i, list[i].RunID)
		}
	}
}

func TestInMemoryStore_CopyIsolation(t *testing.T) {
	a := NewInMemoryStore()
	r := report("r1")
	_ = a.Save("s1", r)
	r.TopCandidates[0].ID = "MUTATED"

	got, _ := a.Get("s1", "r1")
	if got.TopCandidates[0].ID != "L01" {
		t.Fatalf("expected copy isolation on save, got %#v", got.TopCandidates[0])
	}
	got.TopCandidates[0].ID = "MUTATED"
	again, _ := a.Get("s1", "r1")
	if again.TopCandidates[0].ID != "L01" {
		t.Fatalf("expected copy isolation on get, got %#v", again.TopCandidates[0])
	}
}
