package stepgen

import (
	"fmt"
	"strings"

	"github.com/EyalShefer/ai-lms-system-sub002/internal/outline"
)

const systemPrompt = `You are writing one step of a lesson unit: a short teaching passage plus exactly one interactive exercise for that passage.

Rules:
- Teach ONLY the step's narrative focus. Never mention any forbidden topic, not even in passing or as a distractor.
- Follow the language rules for the audience exactly.
- Build the requested interaction type from the material you actually have. If the material cannot support it, fall back along the allowed chain below and build the simpler type properly instead of forcing a broken structure. Never invent facts to pad an exercise.
- Fallback chains: ordering → categorization → fill-in-blanks; categorization → fill-in-blanks; memory-game → multiple-choice. All other types have no fallback: build them or use fill-in-blanks.
- Multiple-choice needs at least 2 options and exactly one correct answer. Ordering needs at least 2 items. Categorization needs at least 2 categories and 2 items. Memory-game needs at least 2 pairs.
- The incorrect-answer feedback must quote or reference the teaching passage so the learner can find the idea again.`

// bandRules is the grade-band linguistic rule table. Keyed by audience
// band; the text goes verbatim into the prompt.
var bandRules = map[outline.AudienceBand]string{
	outline.BandElementary: `Language rules (elementary):
- Simple subject-verb-object sentences only.
- At most 12 words per sentence.
- No passive voice.
- Concrete, everyday vocabulary.`,

	outline.BandMiddle: `Language rules (middle):
- Compound sentences are fine, but connect clauses with explicit logical connectors (because, therefore, however).
- At most 20 words per sentence.
- A mild, friendly tone is allowed.`,

	outline.BandHighSchool: `Language rules (high-school):
- Formal register. Prefer nominalized constructions where natural.
- Precise domain vocabulary, defined on first use.`,
}

// BandRules returns the linguistic rule text for a band. Unknown bands get
// the middle rules.
func BandRules(band outline.AudienceBand) string {
	if rules, ok := bandRules[band]; ok {
		return rules
	}
	return bandRules[outline.BandMiddle]
}

// Fallbacks returns the pedagogical safety-valve chain for an interaction
// type: the simpler types to try, in order, when the source material cannot
// support the requested one. Empty for types with no chain.
func Fallbacks(interaction string) []string {
	switch interaction {
	case "ordering":
		return []string{"categorization", "fill-in-blanks"}
	case "categorization":
		return []string{"fill-in-blanks"}
	case "memory-game":
		return []string{"multiple-choice"}
	}
	return nil
}

// buildUserMessage constructs the step detail request.
func buildUserMessage(input Input) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Unit topic: %s\n", input.Topic)
	fmt.Fprintf(&b, "Step %d: %s\n", input.Step.Index, input.Step.Title)
	fmt.Fprintf(&b, "Narrative focus: %s\n", input.Step.NarrativeFocus)
	fmt.Fprintf(&b, "Forbidden topics: %s\n", strings.Join(input.Step.ForbiddenTopics, ", "))
	fmt.Fprintf(&b, "Cognitive level: %s\n", input.Step.BloomLevel)
	fmt.Fprintf(&b, "Requested interaction: %s\n", input.Step.SuggestedInteraction)

	if fallbacks := Fallbacks(input.Step.SuggestedInteraction); len(fallbacks) > 0 {
		fmt.Fprintf(&b, "Allowed fallbacks, in order: %s\n", strings.Join(fallbacks, ", "))
	}

	b.WriteString("\n")
	b.WriteString(BandRules(input.Band))
	b.WriteString("\n")

	if input.Mode == outline.ModeCreative {
		b.WriteString("\nMode: creative — examples beyond the source are allowed if they fit the focus.\n")
	}

	if input.SourceText != "" {
		b.WriteString("\nSource text:\n")
		b.WriteString(input.SourceText)
		b.WriteString("\n")
	}

	return b.String()
}
