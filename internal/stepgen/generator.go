package stepgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/EyalShefer/ai-lms-system-sub002/internal/blocks"
	"github.com/EyalShefer/ai-lms-system-sub002/internal/llm"
	"github.com/EyalShefer/ai-lms-system-sub002/internal/outline"
)

// Input holds the context for generating one step's content.
type Input struct {
	Topic      string
	SourceText string
	Band       outline.AudienceBand
	Mode       outline.Mode
	Step       outline.SkeletonStep
}

// Detail is the generated content for one step: a teaching passage plus
// one raw interactive item destined for the block normalizer.
type Detail struct {
	StepNumber   int
	BloomLevel   string
	TeachContent string
	Interaction  string
	Item         blocks.Raw
}

// Config controls the step detail generator.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the recommended step generation settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.7,
	}
}

// Generator produces step details using an LLM provider.
type Generator struct {
	provider llm.Provider
	cfg      Config
}

// New creates a step detail Generator.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, cfg: cfg}
}

// stepDetailOutput is the raw LLM response shape.
type stepDetailOutput struct {
	StepNumber          int            `json:"step_number"`
	BloomLevel          string         `json:"bloom_level"`
	TeachContent        string         `json:"teach_content"`
	SelectedInteraction string         `json:"selected_interaction"`
	Data                map[string]any `json:"data"`
}

// Generate produces the content for one step. Any remote or parse failure
// comes back as a plain error; the caller skips the step rather than
// aborting the unit.
func (g *Generator) Generate(ctx context.Context, input Input) (*Detail, error) {
	ctx = llm.WithPurpose(ctx, "step-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		Schema:      StepDetailSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("step %d generation: %w", input.Step.Index, err)
	}

	var out stepDetailOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse step %d response: %w", input.Step.Index, err)
	}
	if out.TeachContent == "" {
		return nil, fmt.Errorf("step %d response has no teaching content", input.Step.Index)
	}

	detail := &Detail{
		StepNumber:   input.Step.Index,
		BloomLevel:   out.BloomLevel,
		TeachContent: out.TeachContent,
		Interaction:  out.SelectedInteraction,
		Item:         blocks.Raw(out.Data),
	}

	// The item's type lives one level up in the response. Copy it down so
	// the normalizer sees a tagged payload.
	if detail.Item != nil && out.SelectedInteraction != "" {
		if _, tagged := detail.Item["type"]; !tagged {
			detail.Item["type"] = out.SelectedInteraction
		}
	}

	return detail, nil
}
