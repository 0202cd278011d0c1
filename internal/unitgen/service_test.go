package unitgen

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/EyalShefer/ai-lms-system-sub002/internal/blocks"
	"github.com/EyalShefer/ai-lms-system-sub002/internal/llm"
	"github.com/EyalShefer/ai-lms-system-sub002/internal/outline"
	"github.com/EyalShefer/ai-lms-system-sub002/internal/review"
	"github.com/EyalShefer/ai-lms-system-sub002/internal/stepgen"
	"github.com/EyalShefer/ai-lms-system-sub002/internal/store"
)

func outlineJSON() json.RawMessage {
	return json.RawMessage(`{
		"unit_title": "Photosynthesis",
		"steps": [
			{"step_number": 1, "title": "Light", "narrative_focus": "capturing light", "forbidden_topics": ["sugar production"], "bloom_level": "Remember", "suggested_interaction_type": "multiple-choice"},
			{"step_number": 2, "title": "Water", "narrative_focus": "water transport", "forbidden_topics": ["capturing light"], "bloom_level": "Analyze", "suggested_interaction_type": "multiple-choice"},
			{"step_number": 3, "title": "Sugar", "narrative_focus": "sugar production", "forbidden_topics": ["water transport"], "bloom_level": "Create", "suggested_interaction_type": "multiple-choice"}
		]
	}`)
}

func stepJSON(n int) json.RawMessage {
	teach := []string{
		"Leaves catch energy from the sun.",
		"Roots pull up what the plant drinks.",
		"The plant builds its own food.",
	}[n-1]
	data, _ := json.Marshal(map[string]any{
		"step_number":          n,
		"bloom_level":          "Remember",
		"teach_content":        teach,
		"selected_interaction": "multiple-choice",
		"data": map[string]any{
			"question":           "Which part does this?",
			"options":            []string{"The leaf", "The root"},
			"correct_answer":     "The leaf",
			"incorrect_feedback": "Read the passage again to find the right part.",
		},
	})
	return data
}

func passAuditJSON() json.RawMessage {
	return json.RawMessage(`{"status":"PASS","metrics":{"readability":90,"cognitive_load":85,"register":92},"issues":[]}`)
}

func rejectAuditJSON() json.RawMessage {
	return json.RawMessage(`{"status":"REJECT","metrics":{"readability":40,"cognitive_load":30,"register":70},"issues":[{"location":"step 1, block 1","type":"complexity","description":"too dense"}]}`)
}

type fakeRecorder struct {
	events []store.UnitEventData
}

func (f *fakeRecorder) AppendUnitEvent(_ context.Context, data store.UnitEventData) error {
	f.events = append(f.events, data)
	return nil
}

func newService(mock *llm.MockProvider, events Recorder, maxRetries int) *Service {
	workflow := review.NewWorkflow(
		review.NewValidator(mock, review.DefaultValidatorConfig()),
		review.NewFixer(mock, review.DefaultFixerConfig()),
		maxRetries,
	)
	return New(
		outline.New(mock, outline.DefaultConfig()),
		stepgen.New(mock, stepgen.DefaultConfig()),
		workflow,
		events,
	)
}

func shortRequest() Request {
	return Request{Topic: "Photosynthesis", Band: outline.BandElementary, Tier: outline.TierShort}
}

func TestGenerateUnit_RoundTrip(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: outlineJSON()},
		llm.MockResponse{Content: stepJSON(1)},
		llm.MockResponse{Content: stepJSON(2)},
		llm.MockResponse{Content: stepJSON(3)},
		llm.MockResponse{Content: passAuditJSON()},
	)
	recorder := &fakeRecorder{}
	svc := newService(mock, recorder, review.DefaultMaxRetries)

	doc, err := svc.GenerateUnit(context.Background(), shortRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Title != "Photosynthesis" {
		t.Errorf("title = %q", doc.Title)
	}
	if len(doc.Steps) != 3 {
		t.Fatalf("steps = %d, want 3", len(doc.Steps))
	}

	interactive := 0
	for i, step := range doc.Steps {
		if step.Index != i+1 {
			t.Errorf("step %d has index %d", i, step.Index)
		}
		if len(step.Blocks) != 2 {
			t.Fatalf("step %d blocks = %d, want teach + interactive", step.Index, len(step.Blocks))
		}
		if step.Blocks[0].Type != blocks.TypeText {
			t.Errorf("step %d first block = %s, want text", step.Index, step.Blocks[0].Type)
		}
		if step.Blocks[1].Type.Interactive() {
			interactive++
		}
		if step.Blocks[0].Type == blocks.TypeText && step.Blocks[1].Type == blocks.TypeText {
			t.Errorf("step %d has two adjacent text blocks", step.Index)
		}
	}
	if interactive != 3 {
		t.Errorf("interactive blocks = %d, want 3", interactive)
	}

	if len(recorder.events) != 1 {
		t.Fatalf("events = %d, want 1", len(recorder.events))
	}
	ev := recorder.events[0]
	if ev.Status != "accepted" || ev.BlockCount != 6 {
		t.Errorf("event = %+v", ev)
	}
}

func TestGenerateUnit_FailedStepSkippedNotFatal(t *testing.T) {
	// One of the three step calls fails; its step ends up empty and the
	// unit still goes through review.
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: outlineJSON()},
		llm.MockResponse{Content: stepJSON(1)},
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
		llm.MockResponse{Content: stepJSON(3)},
		llm.MockResponse{Content: passAuditJSON()},
	)
	svc := newService(mock, nil, review.DefaultMaxRetries)

	doc, err := svc.GenerateUnit(context.Background(), shortRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Steps) != 3 {
		t.Fatalf("steps = %d, want all 3 kept", len(doc.Steps))
	}
	if doc.BlockCount() != 4 {
		t.Errorf("blocks = %d, want 4 (one step empty)", doc.BlockCount())
	}
}

func TestGenerateUnit_CancelledContextAborts(t *testing.T) {
	// The outline resolves, then the caller walks away. Step failures under
	// a dead context abort the unit instead of yielding an empty document.
	mock := llm.NewMockProvider(llm.MockResponse{Content: outlineJSON()})
	recorder := &fakeRecorder{}
	svc := newService(mock, recorder, review.DefaultMaxRetries)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.GenerateUnit(ctx, shortRequest())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(recorder.events) != 1 || recorder.events[0].Status != "failed" {
		t.Errorf("events = %+v", recorder.events)
	}
}

func TestGenerateUnit_OutlineFailureIsFatal(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	recorder := &fakeRecorder{}
	svc := newService(mock, recorder, review.DefaultMaxRetries)

	if _, err := svc.GenerateUnit(context.Background(), shortRequest()); err == nil {
		t.Fatal("expected error when the outline cannot be planned")
	}
	if len(recorder.events) != 1 || recorder.events[0].Status != "failed" {
		t.Errorf("events = %+v", recorder.events)
	}
}

func TestGenerateUnit_ExhaustionRecorded(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: outlineJSON()},
		llm.MockResponse{Content: stepJSON(1)},
		llm.MockResponse{Content: stepJSON(2)},
		llm.MockResponse{Content: stepJSON(3)},
		llm.MockResponse{Content: rejectAuditJSON()},
	)
	recorder := &fakeRecorder{}
	svc := newService(mock, recorder, 0)

	_, err := svc.GenerateUnit(context.Background(), shortRequest())
	if err == nil {
		t.Fatal("expected exhaustion error")
	}
	if len(recorder.events) != 1 {
		t.Fatalf("events = %d, want 1", len(recorder.events))
	}
	ev := recorder.events[0]
	if ev.Status != "exhausted" || ev.Attempts != 0 {
		t.Errorf("event = %+v", ev)
	}
}
