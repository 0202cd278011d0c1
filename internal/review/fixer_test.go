package review

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/EyalShefer/ai-lms-system-sub002/internal/blocks"
	"github.com/EyalShefer/ai-lms-system-sub002/internal/llm"
)

func rejection() Result {
	return Result{
		Status: StatusReject,
		Issues: []Issue{{
			Location:     "step 1, block 1",
			Type:         "complexity",
			Description:  "sentence too long",
			SuggestedFix: "Split into two sentences",
		}},
	}
}

func marshalDoc(t *testing.T, doc *blocks.Document) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestFix_AppliesRepair(t *testing.T) {
	orig := validDoc()

	repaired := validDoc()
	repaired.Steps[0].Blocks[0].Content.Text.Text = "Cold air cools vapor. The vapor turns into droplets."

	mock := llm.NewMockProvider(llm.MockResponse{Content: marshalDoc(t, repaired)})
	f := NewFixer(mock, DefaultFixerConfig())

	got := f.Fix(context.Background(), orig, rejection())
	if got.Steps[0].Blocks[0].Content.Text.Text != repaired.Steps[0].Blocks[0].Content.Text.Text {
		t.Errorf("repair not applied: %q", got.Steps[0].Blocks[0].Content.Text.Text)
	}
}

func TestFix_TransportFailureReturnsOriginal(t *testing.T) {
	orig := validDoc()
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("connection reset")})
	f := NewFixer(mock, DefaultFixerConfig())

	if got := f.Fix(context.Background(), orig, rejection()); got != orig {
		t.Error("expected the original document back on transport failure")
	}
}

func TestFix_RejectsDroppedBlock(t *testing.T) {
	orig := validDoc()

	mangled := validDoc()
	mangled.Steps[0].Blocks = mangled.Steps[0].Blocks[:1]

	mock := llm.NewMockProvider(llm.MockResponse{Content: marshalDoc(t, mangled)})
	f := NewFixer(mock, DefaultFixerConfig())

	if got := f.Fix(context.Background(), orig, rejection()); got != orig {
		t.Error("expected the original back when the fix drops a block")
	}
}

func TestFix_RejectsChangedBlockType(t *testing.T) {
	orig := validDoc()

	mangled := validDoc()
	mangled.Steps[0].Blocks[1] = textBlock("b2", "now just text")

	mock := llm.NewMockProvider(llm.MockResponse{Content: marshalDoc(t, mangled)})
	f := NewFixer(mock, DefaultFixerConfig())

	if got := f.Fix(context.Background(), orig, rejection()); got != orig {
		t.Error("expected the original back when the fix changes a block type")
	}
}
