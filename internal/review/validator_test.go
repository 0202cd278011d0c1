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

func textBlock(id, text string) blocks.Block {
	return blocks.Block{
		ID:      id,
		Type:    blocks.TypeText,
		Content: blocks.Content{Text: &blocks.TextContent{Text: text}},
	}
}

func mcBlock(id string) blocks.Block {
	return blocks.Block{
		ID:   id,
		Type: blocks.TypeMultipleChoice,
		Content: blocks.Content{MultipleChoice: &blocks.MultipleChoiceContent{
			Question:      "Where do droplets form?",
			Options:       []string{"In cold air", "In warm air"},
			CorrectAnswer: "In cold air",
		}},
		Metadata: blocks.Metadata{
			Weight:            blocks.Weight(blocks.TypeMultipleChoice),
			IncorrectFeedback: "Look again at the passage: cold air makes vapor condense.",
		},
	}
}

func validDoc() *blocks.Document {
	return &blocks.Document{
		Title: "The Water Cycle",
		Steps: []blocks.StepContent{
			{
				Index:           1,
				Title:           "Condensation",
				ForbiddenTopics: []string{"precipitation"},
				Blocks:          []blocks.Block{textBlock("b1", "Cold air turns vapor into droplets."), mcBlock("b2")},
			},
		},
	}
}

func passAudit() json.RawMessage {
	return json.RawMessage(`{
		"status": "PASS",
		"metrics": {"readability": 90, "cognitive_load": 85, "register": 92},
		"issues": []
	}`)
}

func TestValidate_Pass(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: passAudit()})
	v := NewValidator(mock, DefaultValidatorConfig())

	result := v.Validate(context.Background(), validDoc(), outline.BandElementary)
	if !result.Passed() {
		t.Fatalf("expected pass, got %+v", result)
	}
	if result.Metrics.Readability != 90 {
		t.Errorf("readability = %d", result.Metrics.Readability)
	}
}

func TestValidate_AdjacentTextBlocks(t *testing.T) {
	doc := validDoc()
	doc.Steps[0].Blocks = []blocks.Block{
		textBlock("b1", "First passage."),
		textBlock("b2", "Second passage with no check between."),
	}

	mock := llm.NewMockProvider(llm.MockResponse{Content: passAudit()})
	v := NewValidator(mock, DefaultValidatorConfig())

	result := v.Validate(context.Background(), doc, outline.BandElementary)
	if result.Passed() {
		t.Fatal("expected structural reject")
	}
	if !hasIssueType(result, IssueSequence) {
		t.Errorf("missing sequence issue: %+v", result.Issues)
	}
}

func TestValidate_TextWallAcrossSteps(t *testing.T) {
	doc := validDoc()
	doc.Steps = []blocks.StepContent{
		{
			Index:  1,
			Title:  "Evaporation",
			Blocks: []blocks.Block{textBlock("b1", "The sun warms the water.")},
		},
		{
			Index:  2,
			Title:  "Condensation",
			Blocks: []blocks.Block{textBlock("b2", "Cold air turns vapor into droplets."), mcBlock("b3")},
		},
	}

	mock := llm.NewMockProvider(llm.MockResponse{Content: passAudit()})
	v := NewValidator(mock, DefaultValidatorConfig())

	result := v.Validate(context.Background(), doc, outline.BandElementary)
	if result.Passed() {
		t.Fatal("expected structural reject")
	}
	if !hasIssueType(result, IssueSequence) {
		t.Errorf("missing sequence issue: %+v", result.Issues)
	}
}

func TestValidate_StepWithoutInteraction(t *testing.T) {
	doc := validDoc()
	doc.Steps[0].Blocks = []blocks.Block{textBlock("b1", "Cold air turns vapor into droplets.")}

	mock := llm.NewMockProvider(llm.MockResponse{Content: passAudit()})
	v := NewValidator(mock, DefaultValidatorConfig())

	result := v.Validate(context.Background(), doc, outline.BandElementary)
	if result.Passed() {
		t.Fatal("expected structural reject")
	}
	if !hasIssueType(result, IssueSequence) {
		t.Errorf("missing sequence issue: %+v", result.Issues)
	}
}

func TestValidate_ForbiddenTopicMention(t *testing.T) {
	doc := validDoc()
	doc.Steps[0].Blocks[0] = textBlock("b1", "Precipitation happens when droplets fall.")

	mock := llm.NewMockProvider(llm.MockResponse{Content: passAudit()})
	v := NewValidator(mock, DefaultValidatorConfig())

	result := v.Validate(context.Background(), doc, outline.BandElementary)
	if !hasIssueType(result, IssueForbiddenTopic) {
		t.Errorf("missing forbidden-topic issue: %+v", result.Issues)
	}
}

func TestValidate_DuplicateStepContent(t *testing.T) {
	doc := validDoc()
	doc.Steps = append(doc.Steps, blocks.StepContent{
		Index:  2,
		Title:  "Also Condensation",
		Blocks: []blocks.Block{textBlock("b3", "Cold air turns vapor into droplets."), mcBlock("b4")},
	})

	mock := llm.NewMockProvider(llm.MockResponse{Content: passAudit()})
	v := NewValidator(mock, DefaultValidatorConfig())

	result := v.Validate(context.Background(), doc, outline.BandElementary)
	if !hasIssueType(result, IssueDuplication) {
		t.Errorf("missing duplication issue: %+v", result.Issues)
	}
}

func TestValidate_FeedbackMustCiteSource(t *testing.T) {
	doc := validDoc()
	doc.Steps[0].Blocks[1].Metadata.IncorrectFeedback = ""
	doc.Steps[0].Blocks[1].Metadata.Citation = ""

	mock := llm.NewMockProvider(llm.MockResponse{Content: passAudit()})
	v := NewValidator(mock, DefaultValidatorConfig())

	result := v.Validate(context.Background(), doc, outline.BandElementary)
	if !hasIssueType(result, IssueFeedback) {
		t.Errorf("missing feedback issue: %+v", result.Issues)
	}
}

func TestValidate_BrokenShape(t *testing.T) {
	doc := validDoc()
	doc.Steps[0].Blocks[1].Content.MultipleChoice.CorrectAnswer = "Not an option"

	mock := llm.NewMockProvider(llm.MockResponse{Content: passAudit()})
	v := NewValidator(mock, DefaultValidatorConfig())

	result := v.Validate(context.Background(), doc, outline.BandElementary)
	if !hasIssueType(result, IssueStructure) {
		t.Errorf("missing structure issue: %+v", result.Issues)
	}
}

func TestValidate_AuditFailureSynthesizesReject(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("connection reset")})
	v := NewValidator(mock, DefaultValidatorConfig())

	result := v.Validate(context.Background(), validDoc(), outline.BandElementary)
	if result.Passed() {
		t.Fatal("expected synthesized reject")
	}
	if !hasIssueType(result, IssueSystemError) {
		t.Errorf("missing system-error issue: %+v", result.Issues)
	}
}

func TestValidate_ScrubsDestructiveSuggestions(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"status": "REJECT",
		"metrics": {"readability": 40, "cognitive_load": 30, "register": 70},
		"issues": [
			{"location": "step 1, block 1", "type": "complexity", "description": "sentence too long", "suggested_fix": "Remove the second clause entirely"},
			{"location": "step 1, block 1", "type": "complexity", "description": "sentence too long", "suggested_fix": "Split into two sentences"}
		]
	}`)})
	v := NewValidator(mock, DefaultValidatorConfig())

	result := v.Validate(context.Background(), validDoc(), outline.BandElementary)
	if result.Issues[0].SuggestedFix != "" {
		t.Errorf("destructive suggestion survived: %q", result.Issues[0].SuggestedFix)
	}
	if result.Issues[1].SuggestedFix != "Split into two sentences" {
		t.Errorf("constructive suggestion altered: %q", result.Issues[1].SuggestedFix)
	}
}

func hasIssueType(r Result, issueType string) bool {
	for _, issue := range r.Issues {
		if issue.Type == issueType {
			return true
		}
	}
	return false
}
