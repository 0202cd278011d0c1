package review

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/EyalShefer/ai-lms-system-sub002/internal/blocks"
	"github.com/EyalShefer/ai-lms-system-sub002/internal/llm"
	"github.com/EyalShefer/ai-lms-system-sub002/internal/outline"
)

func rejectAudit() json.RawMessage {
	return json.RawMessage(`{
		"status": "REJECT",
		"metrics": {"readability": 40, "cognitive_load": 30, "register": 70},
		"issues": [{"location": "step 1, block 1", "type": "complexity", "description": "sentence too long", "suggested_fix": "Split into two sentences"}]
	}`)
}

func newWorkflow(mock *llm.MockProvider, maxRetries int) *Workflow {
	return NewWorkflow(
		NewValidator(mock, DefaultValidatorConfig()),
		NewFixer(mock, DefaultFixerConfig()),
		maxRetries,
	)
}

func generateValid(doc *blocks.Document) func(context.Context) (*blocks.Document, error) {
	return func(context.Context) (*blocks.Document, error) { return doc, nil }
}

func TestWorkflow_FirstPassAccepted(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: passAudit()})
	w := newWorkflow(mock, DefaultMaxRetries)

	doc, err := w.Run(context.Background(), outline.BandElementary, generateValid(validDoc()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc == nil {
		t.Fatal("expected a document")
	}
	// One audit call, no fix calls.
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1", mock.CallCount())
	}
}

func TestWorkflow_ExactlyTwoFixesThenExhausted(t *testing.T) {
	doc := validDoc()
	// Interleaved: audit, fix, audit, fix, audit.
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: rejectAudit()},
		llm.MockResponse{Content: marshalDoc(t, doc)},
		llm.MockResponse{Content: rejectAudit()},
		llm.MockResponse{Content: marshalDoc(t, doc)},
		llm.MockResponse{Content: rejectAudit()},
	)
	w := newWorkflow(mock, DefaultMaxRetries)

	got, err := w.Run(context.Background(), outline.BandElementary, generateValid(doc))
	if got != nil {
		t.Error("expected no document after exhaustion")
	}

	var exhausted *ErrExhausted
	if !errors.As(err, &exhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
	if exhausted.Attempts != 2 {
		t.Errorf("fix attempts = %d, want exactly 2", exhausted.Attempts)
	}
	if exhausted.Result.Status != StatusReject {
		t.Errorf("final verdict = %s", exhausted.Result.Status)
	}
	if mock.CallCount() != 5 {
		t.Errorf("calls = %d, want 5 (3 audits, 2 fixes)", mock.CallCount())
	}
}

func TestWorkflow_FixThenAccept(t *testing.T) {
	doc := validDoc()
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: rejectAudit()},
		llm.MockResponse{Content: marshalDoc(t, doc)},
		llm.MockResponse{Content: passAudit()},
	)
	w := newWorkflow(mock, DefaultMaxRetries)

	got, err := w.Run(context.Background(), outline.BandElementary, generateValid(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil {
		t.Fatal("expected the repaired document")
	}
	if mock.CallCount() != 3 {
		t.Errorf("calls = %d, want 3", mock.CallCount())
	}
}

func TestWorkflow_GenerateErrorPassesThrough(t *testing.T) {
	mock := llm.NewMockProvider()
	w := newWorkflow(mock, DefaultMaxRetries)

	boom := errors.New("outline failed")
	_, err := w.Run(context.Background(), outline.BandElementary, func(context.Context) (*blocks.Document, error) {
		return nil, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected the generate error back, got %v", err)
	}
	if mock.CallCount() != 0 {
		t.Error("no review calls should happen when generation fails")
	}
}

func TestWorkflow_ZeroRetriesRejectsImmediately(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: rejectAudit()})
	w := newWorkflow(mock, 0)

	_, err := w.Run(context.Background(), outline.BandElementary, generateValid(validDoc()))
	var exhausted *ErrExhausted
	if !errors.As(err, &exhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
	if exhausted.Attempts != 0 {
		t.Errorf("fix attempts = %d, want 0", exhausted.Attempts)
	}
}
