package outline

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/EyalShefer/ai-lms-system-sub002/internal/llm"
)

// Input holds all context needed to plan a unit.
type Input struct {
	Topic      string
	SourceText string
	Band       AudienceBand
	Tier       LengthTier
	Mode       Mode
}

// Config controls the outline generator.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the recommended outline generation settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.4,
	}
}

// Generator plans unit skeletons using an LLM provider.
type Generator struct {
	provider llm.Provider
	cfg      Config
}

// New creates an outline Generator.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, cfg: cfg}
}

// outlineOutput is the raw LLM response shape.
type outlineOutput struct {
	UnitTitle string              `json:"unit_title"`
	Steps     []outlineStepOutput `json:"steps"`
}

type outlineStepOutput struct {
	StepNumber           int      `json:"step_number"`
	Title                string   `json:"title"`
	NarrativeFocus       string   `json:"narrative_focus"`
	ForbiddenTopics      []string `json:"forbidden_topics"`
	BloomLevel           string   `json:"bloom_level"`
	SuggestedInteraction string   `json:"suggested_interaction_type"`
}

// Generate plans a unit skeleton. Remote and parse failures come back as a
// plain error, never a panic; the caller's policy is to regenerate or
// abort, and a returned skeleton always has at least one step.
func (g *Generator) Generate(ctx context.Context, input Input) (*UnitSkeleton, error) {
	ctx = llm.WithPurpose(ctx, "outline-gen")

	n := input.Tier.StepCount()
	blooms := BloomLevels(n)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, n, blooms)},
		},
		Schema:      OutlineSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("outline generation: %w", err)
	}

	var out outlineOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse outline response: %w", err)
	}
	if len(out.Steps) == 0 {
		return nil, fmt.Errorf("outline response has no steps")
	}

	return assembleSkeleton(out), nil
}

// assembleSkeleton converts the raw output, re-indexes steps by position,
// and rebuilds each step's forbidden list as the union of the other steps'
// focuses when the model left it sparse.
func assembleSkeleton(out outlineOutput) *UnitSkeleton {
	skel := &UnitSkeleton{Title: out.UnitTitle}

	for i, s := range out.Steps {
		step := SkeletonStep{
			Index:                i + 1,
			Title:                s.Title,
			NarrativeFocus:       s.NarrativeFocus,
			ForbiddenTopics:      s.ForbiddenTopics,
			BloomLevel:           s.BloomLevel,
			SuggestedInteraction: s.SuggestedInteraction,
		}
		if len(step.ForbiddenTopics) == 0 {
			for j, other := range out.Steps {
				if j != i && other.NarrativeFocus != "" {
					step.ForbiddenTopics = append(step.ForbiddenTopics, other.NarrativeFocus)
				}
			}
		}
		skel.Steps = append(skel.Steps, step)
	}

	return skel
}
