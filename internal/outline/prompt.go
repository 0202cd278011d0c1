package outline

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an instructional designer planning a lesson unit. You segment a topic into a fixed number of discrete teaching steps with clear topic boundaries.

Rules:
- Read any supplied source text holistically before segmenting.
- Produce EXACTLY the requested number of steps. Never merge natural chunks to fit: if the narrative has more chunks than steps, fold the extras into short interactive checkpoints inside the surrounding steps instead of building longer explanations.
- Each step covers exactly one narrative focus. Focuses must not overlap. For every step, list the other steps' focuses as its forbidden topics.
- Assign each step the cognitive level given in the distribution. Do not reorder the distribution.
- Suggest one interaction type per step from: multiple-choice, open-question, ordering, categorization, fill-in-blanks, memory-game, audio-response, interactive-chat. Match the interaction to the step's cognitive level (recall levels get recognition tasks, creation levels get open production tasks).
- Explanatory content must never run long without a learner action: plan a check after every chunk of explanation.`

// buildUserMessage constructs the outline request from the input.
func buildUserMessage(input Input, n int, blooms []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	fmt.Fprintf(&b, "Audience: %s\n", input.Band)
	fmt.Fprintf(&b, "Steps: exactly %d\n", n)
	fmt.Fprintf(&b, "Cognitive level distribution, in step order: %s\n", strings.Join(blooms, ", "))

	if input.Mode == ModeCreative {
		b.WriteString("Mode: creative — you may add examples and framing beyond the source text.\n")
	} else {
		b.WriteString("Mode: standard — stay close to the source text.\n")
	}

	if input.SourceText != "" {
		b.WriteString("\nSource text:\n")
		b.WriteString(input.SourceText)
		b.WriteString("\n")
	}

	return b.String()
}
