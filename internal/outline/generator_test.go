package outline

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/EyalShefer/ai-lms-system-sub002/internal/llm"
)

func validOutlineJSON() json.RawMessage {
	return json.RawMessage(`{
		"unit_title": "The Water Cycle",
		"steps": [
			{
				"step_number": 1,
				"title": "Evaporation",
				"narrative_focus": "how water evaporates",
				"forbidden_topics": ["condensation", "precipitation"],
				"bloom_level": "Remember",
				"suggested_interaction_type": "multiple-choice"
			},
			{
				"step_number": 2,
				"title": "Condensation",
				"narrative_focus": "condensation",
				"forbidden_topics": [],
				"bloom_level": "Analyze",
				"suggested_interaction_type": "ordering"
			},
			{
				"step_number": 3,
				"title": "Precipitation",
				"narrative_focus": "precipitation",
				"forbidden_topics": ["how water evaporates", "condensation"],
				"bloom_level": "Create",
				"suggested_interaction_type": "open-question"
			}
		]
	}`)
}

func TestGenerate_Short(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validOutlineJSON()})
	gen := New(mock, DefaultConfig())

	skel, err := gen.Generate(context.Background(), Input{
		Topic: "The Water Cycle",
		Band:  BandElementary,
		Tier:  TierShort,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if skel.Title != "The Water Cycle" {
		t.Errorf("title = %q", skel.Title)
	}
	if len(skel.Steps) != 3 {
		t.Fatalf("steps = %d, want 3", len(skel.Steps))
	}
	if skel.Steps[0].Index != 1 || skel.Steps[2].Index != 3 {
		t.Errorf("steps not re-indexed by position: %+v", skel.Steps)
	}
	if skel.Steps[1].BloomLevel != "Analyze" {
		t.Errorf("bloom level = %q", skel.Steps[1].BloomLevel)
	}
}

func TestGenerate_RebuildsSparseForbiddenTopics(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validOutlineJSON()})
	gen := New(mock, DefaultConfig())

	skel, err := gen.Generate(context.Background(), Input{Topic: "x", Tier: TierShort})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Step 2 came back with an empty forbidden list; it should be rebuilt
	// from the other steps' focuses.
	got := skel.Steps[1].ForbiddenTopics
	if len(got) != 2 {
		t.Fatalf("forbidden topics = %v, want the other 2 focuses", got)
	}
}

func TestGenerate_TransportFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	gen := New(mock, DefaultConfig())

	skel, err := gen.Generate(context.Background(), Input{Topic: "x", Tier: TierShort})
	if err == nil {
		t.Fatal("expected error")
	}
	if skel != nil {
		t.Errorf("expected nil skeleton on failure, got %+v", skel)
	}
}

func TestGenerate_MissingStepsField(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"unit_title":"x","steps":[]}`)})
	gen := New(mock, DefaultConfig())

	if _, err := gen.Generate(context.Background(), Input{Topic: "x"}); err == nil {
		t.Fatal("expected error for empty steps array")
	}
}

func TestGenerate_PromptCarriesStepCountAndBlooms(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validOutlineJSON()})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), Input{Topic: "Volcanoes", Tier: TierLong})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mock.Calls) != 1 {
		t.Fatalf("calls = %d", len(mock.Calls))
	}
	msg := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"exactly 7", "Remember", "Create", "Volcanoes"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q:\n%s", want, msg)
		}
	}
}

func TestStepCount(t *testing.T) {
	tests := []struct {
		tier LengthTier
		want int
	}{
		{TierShort, 3},
		{TierMedium, 5},
		{TierLong, 7},
		{LengthTier("bogus"), 5},
	}
	for _, tt := range tests {
		if got := tt.tier.StepCount(); got != tt.want {
			t.Errorf("StepCount(%s) = %d, want %d", tt.tier, got, tt.want)
		}
	}
}

func TestBloomLevels_Table(t *testing.T) {
	if got := BloomLevels(3); got[0] != "Remember" || got[1] != "Analyze" || got[2] != "Create" {
		t.Errorf("BloomLevels(3) = %v", got)
	}
	if got := BloomLevels(5); len(got) != 5 || got[4] != "Create" {
		t.Errorf("BloomLevels(5) = %v", got)
	}
	if got := BloomLevels(7); len(got) != 7 {
		t.Errorf("BloomLevels(7) = %v", got)
	}
	// Off-table counts still ramp from recall to creation.
	if got := BloomLevels(4); len(got) != 4 || got[0] != "Remember" || got[3] != "Create" {
		t.Errorf("BloomLevels(4) = %v", got)
	}
}
