package review

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/EyalShefer/ai-lms-system-sub002/internal/blocks"
	"github.com/EyalShefer/ai-lms-system-sub002/internal/llm"
	"github.com/EyalShefer/ai-lms-system-sub002/internal/outline"
)

const auditSystemPrompt = `You are a pedagogical editor auditing a generated lesson for language quality. You receive the full lesson as JSON plus the audience band.

Audit for:
- Register: does every passage and question match the audience's language rules?
- Sentence complexity: flag sentences over the audience's length cap and passive constructions where the rules forbid them.
- Cognitive load: flag dense passages that stack more than one new idea per sentence.

Scoring: 0-100 per metric. Status is REJECT if any flagged issue would confuse a learner in this audience, otherwise PASS.

Fix policy: every suggested fix must SPLIT or REPHRASE the existing material. Never suggest removing content, shortening by deletion, or teaching at a lower cognitive level. A long sentence becomes two sentences with the same facts.

Report each issue with its location ("step N, block M"), a type tag, a one-sentence description, and a suggested fix.`

// auditSchema defines the JSON contract for the linguistic audit.
var auditSchema = &llm.Schema{
	Name:        "content-audit",
	Description: "Language-quality verdict for a generated lesson",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"status": map[string]any{
				"type": "string",
				"enum": []any{"PASS", "REJECT"},
			},
			"metrics": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"readability":    map[string]any{"type": "integer"},
					"cognitive_load": map[string]any{"type": "integer"},
					"register":       map[string]any{"type": "integer"},
				},
				"required": []any{"readability", "cognitive_load", "register"},
			},
			"issues": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"location":      map[string]any{"type": "string"},
						"type":          map[string]any{"type": "string"},
						"description":   map[string]any{"type": "string"},
						"suggested_fix": map[string]any{"type": "string"},
					},
					"required": []any{"location", "type", "description"},
				},
			},
		},
		"required": []any{"status", "metrics", "issues"},
	},
}

// Validator combines the deterministic structural checks with the LLM
// linguistic audit.
type Validator struct {
	provider llm.Provider
	cfg      ValidatorConfig
}

// ValidatorConfig controls the audit call.
type ValidatorConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultValidatorConfig returns the recommended audit settings. The
// temperature is low: a verdict should not vary between runs.
func DefaultValidatorConfig() ValidatorConfig {
	return ValidatorConfig{
		MaxTokens:   4096,
		Temperature: 0.1,
	}
}

// NewValidator creates a Validator.
func NewValidator(provider llm.Provider, cfg ValidatorConfig) *Validator {
	return &Validator{provider: provider, cfg: cfg}
}

// Validate reviews a document and always returns a verdict. A remote
// failure during the linguistic audit becomes a REJECT with a system-error
// issue rather than an error: the workflow treats "could not verify" the
// same as "failed verification".
func (v *Validator) Validate(ctx context.Context, doc *blocks.Document, band outline.AudienceBand) Result {
	structural := checkStructural(doc)

	audit := v.audit(ctx, doc, band)

	result := Result{
		Status:  audit.Status,
		Metrics: audit.Metrics,
		Issues:  append(structural, audit.Issues...),
	}
	if len(structural) > 0 {
		result.Status = StatusReject
	}
	return result
}

func (v *Validator) audit(ctx context.Context, doc *blocks.Document, band outline.AudienceBand) Result {
	ctx = llm.WithPurpose(ctx, "content-audit")

	docJSON, err := json.Marshal(doc)
	if err != nil {
		return systemErrorReject(fmt.Sprintf("encode document for audit: %v", err))
	}

	req := llm.Request{
		System: auditSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: fmt.Sprintf("Audience: %s\n\nLesson:\n%s", band, docJSON)},
		},
		Schema:      auditSchema,
		MaxTokens:   v.cfg.MaxTokens,
		Temperature: v.cfg.Temperature,
	}

	resp, err := v.provider.Generate(ctx, req)
	if err != nil {
		return systemErrorReject(fmt.Sprintf("audit call failed: %v", err))
	}

	var out Result
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return systemErrorReject(fmt.Sprintf("parse audit response: %v", err))
	}
	if out.Status != StatusPass && out.Status != StatusReject {
		return systemErrorReject(fmt.Sprintf("audit returned unknown status %q", out.Status))
	}

	for i := range out.Issues {
		out.Issues[i].SuggestedFix = scrubSuggestion(out.Issues[i].SuggestedFix)
	}
	return out
}

func systemErrorReject(desc string) Result {
	return Result{
		Status: StatusReject,
		Issues: []Issue{{
			Location:    "document",
			Type:        IssueSystemError,
			Description: desc,
		}},
	}
}

// destructiveHints mark suggestions that shed content instead of
// restructuring it. The audit prompt forbids these, but the model does not
// always listen.
var destructiveHints = []string{
	"remove", "delete", "drop", "omit", "cut ", "leave out", "lower the",
}

// scrubSuggestion blanks fixes that would remove material or lower the
// cognitive level. The issue itself stays; only the bad suggestion goes.
func scrubSuggestion(fix string) string {
	lower := strings.ToLower(fix)
	for _, hint := range destructiveHints {
		if strings.Contains(lower, hint) {
			return ""
		}
	}
	return fix
}
