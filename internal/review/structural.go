package review

import (
	"fmt"
	"strings"

	"github.com/EyalShefer/ai-lms-system-sub002/internal/blocks"
)

// Deterministic issue types.
const (
	IssueStructure      = "structure"
	IssueSequence       = "sequence"
	IssueDuplication    = "duplication"
	IssueForbiddenTopic = "forbidden-topic"
	IssueFeedback       = "feedback"
	IssueSystemError    = "system-error"
)

// checkStructural runs the deterministic validation family over a document.
// These checks never call out anywhere and always produce the same issues
// for the same document.
func checkStructural(doc *blocks.Document) []Issue {
	var issues []Issue

	// Text adjacency carries across step boundaries: the learner sees one
	// ordered block list, so a step ending on a passage followed by a step
	// opening with one is still a text wall.
	prevText := false
	for _, step := range doc.Steps {
		stepIssues, endsOnText := checkStep(step, prevText)
		issues = append(issues, stepIssues...)
		if len(step.Blocks) > 0 {
			prevText = endsOnText
		}
	}
	issues = append(issues, checkDuplicateSteps(doc)...)

	return issues
}

func checkStep(step blocks.StepContent, prevText bool) ([]Issue, bool) {
	var issues []Issue

	interactive := false
	for i, b := range step.Blocks {
		loc := fmt.Sprintf("step %d, block %d", step.Index, i+1)

		if problem := shapeProblem(b); problem != "" {
			issues = append(issues, Issue{
				Location:     loc,
				Type:         IssueStructure,
				Description:  problem,
				SuggestedFix: "rebuild the block with all required fields",
			})
		}

		if b.Type == blocks.TypeText {
			if prevText {
				issues = append(issues, Issue{
					Location:     loc,
					Type:         IssueSequence,
					Description:  "two explanation blocks in a row with no learner action between them",
					SuggestedFix: "insert an interactive check between the passages",
				})
			}
			prevText = true
		} else {
			prevText = false
			interactive = true

			if b.Metadata.IncorrectFeedback == "" && b.Metadata.Citation == "" {
				issues = append(issues, Issue{
					Location:     loc,
					Type:         IssueFeedback,
					Description:  "incorrect-answer feedback does not point back at the source passage",
					SuggestedFix: "add feedback that quotes or cites the teaching text",
				})
			}
		}

		for _, topic := range step.ForbiddenTopics {
			if topic != "" && mentionsTopic(b, topic) {
				issues = append(issues, Issue{
					Location:     loc,
					Type:         IssueForbiddenTopic,
					Description:  fmt.Sprintf("references %q, which belongs to another step", topic),
					SuggestedFix: "rephrase to stay on this step's focus",
				})
			}
		}
	}

	// A step that only teaches, with no learner action at all, is a text
	// wall even when nothing sits adjacent to it.
	if len(step.Blocks) > 0 && !interactive {
		issues = append(issues, Issue{
			Location:     fmt.Sprintf("step %d", step.Index),
			Type:         IssueSequence,
			Description:  "step has no interactive block to pair with its explanation",
			SuggestedFix: "add an interactive check after the passage",
		})
	}

	return issues, prevText
}

// shapeProblem re-checks the variant minimum shape. The normalizer enforces
// these on its own output, but fixed documents re-enter review from the LLM
// and get no such guarantee.
func shapeProblem(b blocks.Block) string {
	c := b.Content
	switch b.Type {
	case blocks.TypeText:
		if c.Text == nil || c.Text.Text == "" {
			return "text block with no text"
		}
	case blocks.TypeMultipleChoice:
		if c.MultipleChoice == nil || c.MultipleChoice.Question == "" {
			return "multiple-choice block with no question"
		}
		mc := c.MultipleChoice
		if len(mc.Options) < 2 {
			return "multiple-choice block with fewer than 2 options"
		}
		for _, o := range mc.Options {
			if o == mc.CorrectAnswer {
				return ""
			}
		}
		return "correct answer is not one of the options"
	case blocks.TypeOpenQuestion:
		if c.OpenQuestion == nil || c.OpenQuestion.Question == "" {
			return "open question with no question text"
		}
	case blocks.TypeOrdering:
		if c.Ordering == nil || len(c.Ordering.Items) < 2 {
			return "ordering block with fewer than 2 items"
		}
	case blocks.TypeCategorization:
		if c.Categorization == nil || len(c.Categorization.Categories) < 2 || len(c.Categorization.Items) < 2 {
			return "categorization block with fewer than 2 categories or items"
		}
	case blocks.TypeFillInBlanks:
		if c.FillInBlanks == nil || c.FillInBlanks.Text == "" || len(c.FillInBlanks.Answers) == 0 {
			return "fill-in-blanks block with no passage or no answers"
		}
	case blocks.TypeMemoryGame:
		if c.MemoryGame == nil || len(c.MemoryGame.Pairs) < 2 {
			return "memory game with fewer than 2 pairs"
		}
	case blocks.TypeAudioResponse:
		if c.AudioResponse == nil || c.AudioResponse.Prompt == "" {
			return "audio-response block with no prompt"
		}
	case blocks.TypeInteractiveChat:
		if c.InteractiveChat == nil || c.InteractiveChat.Prompt == "" {
			return "interactive-chat block with no prompt"
		}
	default:
		return fmt.Sprintf("unknown block type %q", b.Type)
	}
	return ""
}

func mentionsTopic(b blocks.Block, topic string) bool {
	return strings.Contains(strings.ToLower(blockText(b)), strings.ToLower(topic))
}

// blockText flattens a block's learner-visible text for scanning.
func blockText(b blocks.Block) string {
	var parts []string
	c := b.Content
	switch {
	case c.Text != nil:
		parts = append(parts, c.Text.Text)
	case c.MultipleChoice != nil:
		parts = append(parts, c.MultipleChoice.Question)
		parts = append(parts, c.MultipleChoice.Options...)
	case c.OpenQuestion != nil:
		parts = append(parts, c.OpenQuestion.Question)
	case c.Ordering != nil:
		parts = append(parts, c.Ordering.Instruction)
		parts = append(parts, c.Ordering.Items...)
	case c.Categorization != nil:
		parts = append(parts, c.Categorization.Instruction)
		for _, it := range c.Categorization.Items {
			parts = append(parts, it.Text)
		}
	case c.FillInBlanks != nil:
		parts = append(parts, c.FillInBlanks.Text)
	case c.MemoryGame != nil:
		parts = append(parts, c.MemoryGame.Instruction)
		for _, p := range c.MemoryGame.Pairs {
			parts = append(parts, p.First, p.Second)
		}
	case c.AudioResponse != nil:
		parts = append(parts, c.AudioResponse.Prompt)
	case c.InteractiveChat != nil:
		parts = append(parts, c.InteractiveChat.Prompt)
	}
	return strings.Join(parts, "\n")
}

// checkDuplicateSteps flags steps whose teaching passages are identical,
// which happens when the model loses track of step boundaries.
func checkDuplicateSteps(doc *blocks.Document) []Issue {
	seen := make(map[string]int)
	var issues []Issue

	for _, step := range doc.Steps {
		text := strings.TrimSpace(strings.ToLower(stepTeachText(step)))
		if text == "" {
			continue
		}
		if first, ok := seen[text]; ok {
			issues = append(issues, Issue{
				Location:     fmt.Sprintf("step %d", step.Index),
				Type:         IssueDuplication,
				Description:  fmt.Sprintf("teaching content repeats step %d", first),
				SuggestedFix: "rewrite to cover this step's own focus",
			})
			continue
		}
		seen[text] = step.Index
	}

	return issues
}

func stepTeachText(step blocks.StepContent) string {
	var parts []string
	for _, b := range step.Blocks {
		if b.Type == blocks.TypeText && b.Content.Text != nil {
			parts = append(parts, b.Content.Text.Text)
		}
	}
	return strings.Join(parts, "\n")
}
