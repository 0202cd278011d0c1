package stepgen

import "github.com/EyalShefer/ai-lms-system-sub002/internal/llm"

// StepDetailSchema defines the JSON schema for step detail responses.
// The "data" payload is deliberately loose: its shape varies by interaction
// type and the normalizer owns mapping it onto a strict block.
var StepDetailSchema = &llm.Schema{
	Name:        "step-detail",
	Description: "Full content for one lesson step: teaching passage plus one interactive item",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"step_number": map[string]any{
				"type":        "integer",
				"description": "1-based step position, echoed from the request",
			},
			"bloom_level": map[string]any{
				"type":        "string",
				"description": "Cognitive level tag, echoed from the request",
			},
			"teach_content": map[string]any{
				"type":        "string",
				"description": "The teaching passage for this step, following the language rules",
			},
			"selected_interaction": map[string]any{
				"type":        "string",
				"description": "The interaction type actually built (the requested one, or its fallback)",
			},
			"data": map[string]any{
				"type":        "object",
				"description": "Type-specific fields for the interactive item (question, options, items, pairs, feedback, ...)",
			},
		},
		"required": []any{"step_number", "bloom_level", "teach_content", "selected_interaction", "data"},
	},
}
