package cmd

import (
	"strings"
	"testing"

	"github.com/EyalShefer/ai-lms-system-sub002/internal/blocks"
)

func TestRenderBlock_MismatchedContentDoesNotPanic(t *testing.T) {
	// A hand-edited document can carry a type tag that disagrees with the
	// populated content. Every case must fall through, never dereference.
	types := []blocks.Type{
		blocks.TypeText,
		blocks.TypeMultipleChoice,
		blocks.TypeOpenQuestion,
		blocks.TypeOrdering,
		blocks.TypeCategorization,
		blocks.TypeFillInBlanks,
		blocks.TypeMemoryGame,
		blocks.TypeAudioResponse,
		blocks.TypeInteractiveChat,
	}

	for _, typ := range types {
		b := blocks.Block{ID: "b1", Type: typ, Content: blocks.Content{}}
		out := renderBlock(b)
		if !strings.Contains(out, "unrenderable") {
			t.Errorf("type %s: expected fallback rendering, got %q", typ, out)
		}
	}
}

func TestRenderBlock_UnknownType(t *testing.T) {
	b := blocks.Block{ID: "b1", Type: blocks.Type("hologram")}
	out := renderBlock(b)
	if !strings.Contains(out, "hologram") {
		t.Errorf("expected the unknown type in the fallback, got %q", out)
	}
}
