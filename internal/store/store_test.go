package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAppendLLMRequest(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-sonnet-4-5",
		Purpose:      "outline-gen",
		InputTokens:  1200,
		OutputTokens: 800,
		LatencyMs:    2300,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	ev, err := s.Client().LLMRequestEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if ev.Provider != "anthropic" || ev.Purpose != "outline-gen" {
		t.Errorf("event = %+v", ev)
	}
	if ev.Sequence != 1 {
		t.Errorf("sequence = %d, want 1", ev.Sequence)
	}
}

func TestAppendUnitEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendUnitEvent(ctx, UnitEventData{
		Topic:      "The Water Cycle",
		Band:       "elementary",
		Tier:       "short",
		Status:     "accepted",
		Attempts:   1,
		BlockCount: 6,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	ev, err := s.Client().UnitEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if ev.Topic != "The Water Cycle" || ev.Status != "accepted" || ev.BlockCount != 6 {
		t.Errorf("event = %+v", ev)
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "openai", Model: "gpt-5.2", Purpose: "step-gen", Success: true,
	}); err != nil {
		t.Fatalf("append llm: %v", err)
	}
	if err := repo.AppendUnitEvent(ctx, UnitEventData{
		Topic: "x", Band: "middle", Tier: "medium", Status: "failed",
	}); err != nil {
		t.Fatalf("append unit: %v", err)
	}

	llmEv, err := s.Client().LLMRequestEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query llm: %v", err)
	}
	unitEv, err := s.Client().UnitEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query unit: %v", err)
	}
	if llmEv.Sequence != 1 || unitEv.Sequence != 2 {
		t.Errorf("sequences = %d, %d; want 1, 2", llmEv.Sequence, unitEv.Sequence)
	}
}

func TestQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	purposes := []string{"outline-gen", "step-gen", "step-gen", "content-audit"}
	for _, p := range purposes {
		if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "anthropic", Model: "m", Purpose: p, Success: true,
		}); err != nil {
			t.Fatalf("append %s: %v", p, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query all: %v", err)
	}
	if len(events) != 4 {
		t.Fatalf("events = %d, want 4", len(events))
	}
	// Newest first.
	if events[0].Purpose != "content-audit" {
		t.Errorf("first event = %q, want newest", events[0].Purpose)
	}

	events, err = repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "step-gen", Limit: 1})
	if err != nil {
		t.Fatalf("query filtered: %v", err)
	}
	if len(events) != 1 || events[0].Purpose != "step-gen" {
		t.Errorf("filtered events = %+v", events)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"llm_request_events", "unit_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}
