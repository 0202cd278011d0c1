package stepgen

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/EyalShefer/ai-lms-system-sub002/internal/llm"
	"github.com/EyalShefer/ai-lms-system-sub002/internal/outline"
)

func sampleStep() outline.SkeletonStep {
	return outline.SkeletonStep{
		Index:                2,
		Title:                "Condensation",
		NarrativeFocus:       "how vapor becomes droplets",
		ForbiddenTopics:      []string{"evaporation", "precipitation"},
		BloomLevel:           "Understand",
		SuggestedInteraction: "ordering",
	}
}

func validDetailJSON() json.RawMessage {
	return json.RawMessage(`{
		"step_number": 2,
		"bloom_level": "Understand",
		"teach_content": "Warm vapor rises. Cold air makes it form droplets.",
		"selected_interaction": "ordering",
		"data": {
			"instruction": "Put the stages in order.",
			"items": ["Vapor rises", "Air cools", "Droplets form"]
		}
	}`)
}

func TestGenerate_TagsItemWithSelectedInteraction(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validDetailJSON()})
	gen := New(mock, DefaultConfig())

	detail, err := gen.Generate(context.Background(), Input{
		Topic: "The Water Cycle",
		Band:  outline.BandElementary,
		Step:  sampleStep(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.TeachContent == "" {
		t.Error("teach content empty")
	}
	if detail.Interaction != "ordering" {
		t.Errorf("interaction = %q", detail.Interaction)
	}
	if got := detail.Item["type"]; got != "ordering" {
		t.Errorf("item type tag = %v, want ordering", got)
	}
	if detail.StepNumber != 2 {
		t.Errorf("step number = %d, want the skeleton index", detail.StepNumber)
	}
}

func TestGenerate_KeepsExplicitItemTag(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"step_number": 2,
		"bloom_level": "Understand",
		"teach_content": "Some passage.",
		"selected_interaction": "ordering",
		"data": {"type": "fill-in-blanks", "text": "Vapor ___ into droplets.", "answers": ["condenses"]}
	}`)})
	gen := New(mock, DefaultConfig())

	detail, err := gen.Generate(context.Background(), Input{Step: sampleStep()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := detail.Item["type"]; got != "fill-in-blanks" {
		t.Errorf("item type tag = %v, want the payload's own tag kept", got)
	}
}

func TestGenerate_PromptCarriesConstraints(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validDetailJSON()})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), Input{
		Topic: "The Water Cycle",
		Band:  outline.BandElementary,
		Step:  sampleStep(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	msg := mock.Calls[0].Messages[0].Content
	for _, want := range []string{
		"how vapor becomes droplets",
		"evaporation, precipitation",
		"At most 12 words",
		"categorization, fill-in-blanks",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q:\n%s", want, msg)
		}
	}
}

func TestGenerate_MissingTeachContent(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"step_number":2,"data":{}}`)})
	gen := New(mock, DefaultConfig())

	if _, err := gen.Generate(context.Background(), Input{Step: sampleStep()}); err == nil {
		t.Fatal("expected error for empty teaching content")
	}
}

func TestGenerate_TransportFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	gen := New(mock, DefaultConfig())

	detail, err := gen.Generate(context.Background(), Input{Step: sampleStep()})
	if err == nil {
		t.Fatal("expected error")
	}
	if detail != nil {
		t.Errorf("expected nil detail on failure, got %+v", detail)
	}
}

func TestFallbacks(t *testing.T) {
	tests := []struct {
		interaction string
		want        []string
	}{
		{"ordering", []string{"categorization", "fill-in-blanks"}},
		{"categorization", []string{"fill-in-blanks"}},
		{"memory-game", []string{"multiple-choice"}},
		{"multiple-choice", nil},
		{"open-question", nil},
	}
	for _, tt := range tests {
		got := Fallbacks(tt.interaction)
		if len(got) != len(tt.want) {
			t.Errorf("Fallbacks(%s) = %v, want %v", tt.interaction, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Fallbacks(%s) = %v, want %v", tt.interaction, got, tt.want)
				break
			}
		}
	}
}

func TestBandRules(t *testing.T) {
	if !strings.Contains(BandRules(outline.BandElementary), "12 words") {
		t.Error("elementary rules missing the sentence cap")
	}
	if !strings.Contains(BandRules(outline.BandHighSchool), "Formal register") {
		t.Error("high-school rules missing the register requirement")
	}
	if got := BandRules(outline.AudienceBand("bogus")); got != BandRules(outline.BandMiddle) {
		t.Error("unknown band should fall back to middle rules")
	}
}
