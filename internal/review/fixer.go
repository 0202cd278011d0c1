package review

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/EyalShefer/ai-lms-system-sub002/internal/blocks"
	"github.com/EyalShefer/ai-lms-system-sub002/internal/llm"
)

const fixSystemPrompt = `You repair a generated lesson based on a reviewer's issue list. You receive the full lesson as JSON and the issues.

Rules:
- Rewrite ONLY the locations named in the issues. Copy everything else through byte for byte, including block ids.
- Never add, remove, or reorder blocks. Never change a block's type.
- Apply each suggested fix where one is given. Where none is given, resolve the described problem by splitting or rephrasing, never by deleting material.
- Return the complete corrected lesson in the same JSON shape you received.`

// fixSchema defines the JSON contract for repaired documents.
var fixSchema = &llm.Schema{
	Name:        "document-fix",
	Description: "A corrected lesson document in the pipeline's document shape",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{"type": "string"},
			"steps": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"index":  map[string]any{"type": "integer"},
						"title":  map[string]any{"type": "string"},
						"blocks": map[string]any{"type": "array"},
					},
					"required": []any{"index", "blocks"},
				},
			},
		},
		"required": []any{"title", "steps"},
	},
}

// Fixer rewrites flagged locations in a rejected document.
type Fixer struct {
	provider llm.Provider
	cfg      FixerConfig
}

// FixerConfig controls the repair call.
type FixerConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultFixerConfig returns the recommended repair settings.
func DefaultFixerConfig() FixerConfig {
	return FixerConfig{
		MaxTokens:   8192,
		Temperature: 0.3,
	}
}

// NewFixer creates a Fixer.
func NewFixer(provider llm.Provider, cfg FixerConfig) *Fixer {
	return &Fixer{provider: provider, cfg: cfg}
}

// Fix attempts to repair the issues in doc. On any failure, or if the
// repaired document does not preserve the original's block count, types,
// and order, it returns the original document unchanged: a failed fix must
// never make things worse, and re-validation will catch what it could not
// repair.
func (f *Fixer) Fix(ctx context.Context, doc *blocks.Document, result Result) *blocks.Document {
	ctx = llm.WithPurpose(ctx, "auto-fix")

	docJSON, err := json.Marshal(doc)
	if err != nil {
		return doc
	}
	issuesJSON, err := json.Marshal(result.Issues)
	if err != nil {
		return doc
	}

	req := llm.Request{
		System: fixSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: fmt.Sprintf("Lesson:\n%s\n\nIssues:\n%s", docJSON, issuesJSON)},
		},
		Schema:      fixSchema,
		MaxTokens:   f.cfg.MaxTokens,
		Temperature: f.cfg.Temperature,
	}

	resp, err := f.provider.Generate(ctx, req)
	if err != nil {
		return doc
	}

	var fixed blocks.Document
	if err := json.Unmarshal(resp.Content, &fixed); err != nil {
		return doc
	}
	if !sameStructure(doc, &fixed) {
		return doc
	}

	return &fixed
}

// sameStructure reports whether the fixed document preserves the original's
// step layout and every block's position and type.
func sameStructure(orig, fixed *blocks.Document) bool {
	if len(orig.Steps) != len(fixed.Steps) {
		return false
	}
	for i, step := range orig.Steps {
		if len(step.Blocks) != len(fixed.Steps[i].Blocks) {
			return false
		}
		for j, b := range step.Blocks {
			if fixed.Steps[i].Blocks[j].Type != b.Type {
				return false
			}
		}
	}
	return true
}
