package outline

import "github.com/EyalShefer/ai-lms-system-sub002/internal/llm"

// OutlineSchema defines the JSON schema for unit outline responses.
var OutlineSchema = &llm.Schema{
	Name:        "unit-outline",
	Description: "A segmented lesson plan: unit title plus ordered, non-overlapping steps",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"unit_title": map[string]any{
				"type":        "string",
				"description": "Short title for the whole unit",
			},
			"steps": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"step_number": map[string]any{
							"type":        "integer",
							"description": "1-based position of the step",
						},
						"title": map[string]any{
							"type":        "string",
							"description": "Short title for this step",
						},
						"narrative_focus": map[string]any{
							"type":        "string",
							"description": "The single topic this step is allowed to cover",
						},
						"forbidden_topics": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Topics this step must not touch (the other steps' focuses)",
						},
						"bloom_level": map[string]any{
							"type":        "string",
							"description": "Cognitive level tag assigned to this step",
						},
						"suggested_interaction_type": map[string]any{
							"type":        "string",
							"description": "Interactive block type suggested for this step",
						},
					},
					"required": []any{"step_number", "title", "narrative_focus", "forbidden_topics", "bloom_level", "suggested_interaction_type"},
				},
				"description": "Exactly the requested number of steps, in order",
			},
		},
		"required":             []any{"unit_title", "steps"},
		"additionalProperties": false,
	},
}
