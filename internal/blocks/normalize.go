package blocks

import "strings"

// Normalize maps one raw externally produced item onto a strict Block.
// It never panics and never returns a partially populated block: on any
// irreconcilable input it returns nil, and the caller's policy is to skip
// the item, not to substitute a placeholder. Pure and deterministic given
// a deterministic NewID.
func Normalize(raw Raw) *Block {
	if raw == nil {
		return nil
	}

	item := unwrap(raw)
	blockType, tag := resolveType(item)

	var content *Content
	switch blockType {
	case TypeText:
		content = extractText(item)
	case TypeMultipleChoice:
		content = extractMultipleChoice(item, tag)
	case TypeOpenQuestion:
		content = extractOpenQuestion(item)
	case TypeOrdering:
		content = extractOrdering(item)
	case TypeCategorization:
		content = extractCategorization(item)
	case TypeFillInBlanks:
		content = extractFillInBlanks(item)
	case TypeMemoryGame:
		content = extractMemoryGame(item)
	case TypeAudioResponse:
		content = extractPrompted(item, blockType)
	case TypeInteractiveChat:
		content = extractPrompted(item, blockType)
	}
	if content == nil {
		return nil
	}

	return &Block{
		ID:       NewID(),
		Type:     blockType,
		Content:  *content,
		Metadata: extractMetadata(item, blockType),
	}
}

// wrapperKeys are the field names legacy producers use to nest their real
// payload. unwrap follows them at most two levels (data.data).
var wrapperKeys = []string{"data", "payload", "item", "block", "result"}

func unwrap(raw Raw) Raw {
	cur := raw
	for range 2 {
		inner := innerPayload(cur)
		if inner == nil {
			break
		}
		cur = inner
	}
	return cur
}

func innerPayload(m Raw) Raw {
	for _, key := range wrapperKeys {
		inner, ok := mapAt(m, key)
		if !ok {
			continue
		}
		// Descend either into a payload or into another wrapper level.
		if looksLikePayload(inner) || innerPayload(inner) != nil {
			return inner
		}
	}
	return nil
}

// looksLikePayload reports whether the object carries any field an
// extraction routine could work with.
func looksLikePayload(m Raw) bool {
	for _, k := range []string{
		"type", "question", "question_text", "instruction", "prompt",
		"options", "choices", "items", "pairs", "text", "sentence",
	} {
		if _, ok := m[k]; ok {
			return true
		}
	}
	return false
}

// typeTagKeys are the field names a type tag may hide under, in priority
// order.
var typeTagKeys = []string{
	"type", "block_type", "blockType",
	"interaction_type", "interactionType",
	"selected_interaction", "question_type", "questionType",
}

// typeTags is the total mapping from external type strings to internal
// variants. Tags are compared after lowercasing and unifying separators.
var typeTags = map[string]Type{
	"text":        TypeText,
	"paragraph":   TypeText,
	"teach":       TypeText,
	"explanation": TypeText,
	"reading":     TypeText,

	"multiple-choice": TypeMultipleChoice,
	"multiplechoice":  TypeMultipleChoice,
	"mc":              TypeMultipleChoice,
	"quiz":            TypeMultipleChoice,
	"single-choice":   TypeMultipleChoice,
	"true-false":      TypeMultipleChoice,
	"truefalse":       TypeMultipleChoice,
	"boolean":         TypeMultipleChoice,

	"open-question": TypeOpenQuestion,
	"open":          TypeOpenQuestion,
	"open-ended":    TypeOpenQuestion,
	"free-text":     TypeOpenQuestion,
	"short-answer":  TypeOpenQuestion,
	"essay":         TypeOpenQuestion,

	"ordering":   TypeOrdering,
	"order":      TypeOrdering,
	"sequence":   TypeOrdering,
	"sequencing": TypeOrdering,
	"arrange":    TypeOrdering,

	"categorization": TypeCategorization,
	"categorisation": TypeCategorization,
	"categorize":     TypeCategorization,
	"classification": TypeCategorization,
	"sorting":        TypeCategorization,
	"grouping":       TypeCategorization,

	"fill-in-blanks":    TypeFillInBlanks,
	"fill-in-the-blank": TypeFillInBlanks,
	"fill-blanks":       TypeFillInBlanks,
	"cloze":             TypeFillInBlanks,

	"memory-game": TypeMemoryGame,
	"memory":      TypeMemoryGame,
	"matching":    TypeMemoryGame,
	"match-pairs": TypeMemoryGame,
	"pairs":       TypeMemoryGame,

	"audio-response": TypeAudioResponse,
	"audio":          TypeAudioResponse,
	"speaking":       TypeAudioResponse,
	"voice":          TypeAudioResponse,

	"interactive-chat": TypeInteractiveChat,
	"chat":             TypeInteractiveChat,
	"dialogue":         TypeInteractiveChat,
	"conversation":     TypeInteractiveChat,
}

// resolveType finds the type tag and maps it to an internal variant.
// A missing tag defaults to multiple-choice: the majority of legacy
// producers omit the tag for that type. An unknown tag falls back the same
// way rather than dropping the item before extraction gets a chance.
func resolveType(m Raw) (Type, string) {
	tag := stringAt(m, typeTagKeys...)
	if tag == "" {
		return TypeMultipleChoice, ""
	}

	canon := strings.ToLower(strings.TrimSpace(tag))
	canon = strings.NewReplacer("_", "-", " ", "-").Replace(canon)
	if t, ok := typeTags[canon]; ok {
		return t, canon
	}
	return TypeMultipleChoice, canon
}

// questionKeys are the aliases a question/instruction text hides under.
var questionKeys = []string{"question_text", "questionText", "instruction", "prompt", "title"}

// questionText resolves the question text, including the nested
// question.text shape.
func questionText(m Raw) string {
	if q := nestedStringAt(m, "question", "text", "question_text", "content"); q != "" {
		return q
	}
	return stringAt(m, questionKeys...)
}

func extractText(m Raw) *Content {
	text := stringAt(m, "text", "content", "teach_content", "teachContent", "paragraph", "body")
	if text == "" {
		return nil
	}
	return &Content{Text: &TextContent{Text: text}}
}

// option is an intermediate shape: an answer option with an optional
// explicit correctness flag.
type option struct {
	text    string
	correct bool
	flagged bool
}

func extractMultipleChoice(m Raw, tag string) *Content {
	question := questionText(m)
	if question == "" {
		return nil
	}

	opts := gatherOptions(m)

	// True/false with no options: the canonical two-option set is implied
	// by the type, so synthesizing it fabricates nothing.
	if len(opts) == 0 && isTrueFalseTag(tag) {
		opts = []option{{text: "True"}, {text: "False"}}
		if b, ok := boolAt(m, "correct_answer", "correctAnswer", "answer", "is_true", "isTrue"); ok {
			idx := 1
			if b {
				idx = 0
			}
			opts[idx].correct = true
			opts[idx].flagged = true
		}
	}

	// Fewer than two options fails closed: fabricated distractors would
	// mislead a learner.
	if len(opts) < 2 {
		return nil
	}

	answer := resolveCorrectAnswer(m, opts)
	if answer == "" {
		// No signal distinguishes "the model omitted the answer" from
		// "the model intended the first option". Treat it as a
		// normalization failure rather than silently promoting option 0.
		return nil
	}

	texts := make([]string, len(opts))
	for i, o := range opts {
		texts[i] = o.text
	}

	return &Content{MultipleChoice: &MultipleChoiceContent{
		Question:      question,
		Options:       texts,
		CorrectAnswer: answer,
	}}
}

// optionKeys are the aliases an option list hides under.
var optionKeys = []string{"options", "choices", "answers", "distractors"}

func gatherOptions(m Raw) []option {
	arr := sliceAt(m, optionKeys...)
	var out []option
	for _, v := range arr {
		text := entryText(v)
		if text == "" {
			continue
		}
		o := option{text: text}
		if r, ok := toRaw(v); ok {
			if correct, ok := boolAt(r, "is_correct", "isCorrect", "correct"); ok {
				o.correct = correct
				o.flagged = true
			}
		}
		out = append(out, o)
	}
	return out
}

// resolveCorrectAnswer applies the priority chain: explicit is-correct flag
// on an option → explicit correct-answer string → explicit correct index.
// Returns "" when no signal is present.
func resolveCorrectAnswer(m Raw, opts []option) string {
	for _, o := range opts {
		if o.flagged && o.correct {
			return o.text
		}
	}

	if s := stringAt(m, "correct_answer", "correctAnswer", "answer", "correct"); s != "" {
		for _, o := range opts {
			if strings.EqualFold(strings.TrimSpace(s), o.text) {
				return o.text
			}
		}
	}

	if idx, ok := intAt(m, "correct_index", "correctIndex", "answer_index", "correct_option"); ok {
		if idx >= 0 && idx < len(opts) {
			return opts[idx].text
		}
	}

	return ""
}

func isTrueFalseTag(tag string) bool {
	return tag == "true-false" || tag == "truefalse" || tag == "boolean"
}

func extractOpenQuestion(m Raw) *Content {
	question := questionText(m)
	if question == "" {
		return nil
	}
	return &Content{OpenQuestion: &OpenQuestionContent{
		Question:       question,
		ExpectedAnswer: stringAt(m, "expected_answer", "expectedAnswer", "sample_answer", "model_answer", "answer"),
	}}
}

func extractOrdering(m Raw) *Content {
	items := stringsAt(m, "items", "sequence", "steps", "elements", "order")

	if len(items) < 2 {
		// Re-derive the sequence from prose: lines first, sentences second.
		if recovered := splitSequence(questionText(m)); len(recovered) >= 2 {
			items = recovered
		}
	}
	// A one-item sequence orders nothing.
	if len(items) < 2 {
		return nil
	}

	instruction := questionText(m)
	if instruction == "" {
		instruction = "Arrange the items in the correct order."
	}

	return &Content{Ordering: &OrderingContent{
		Instruction: instruction,
		Items:       items,
	}}
}

func extractCategorization(m Raw) *Content {
	categories := stringsAt(m, "categories", "groups", "buckets")

	var items []CategorizedItem
	for _, r := range mapsAt(m, "items", "pairs", "entries") {
		text := stringAt(r, "text", "item", "name", "value")
		category := stringAt(r, "category", "group", "bucket")
		if text != "" {
			items = append(items, CategorizedItem{Text: text, Category: category})
		}
	}

	if len(items) == 0 {
		// Items sometimes arrive baked into the question as bullet lines.
		items = parseBullets(questionText(m))
	}
	if len(items) < 2 {
		return nil
	}

	if len(categories) == 0 {
		categories = distinctCategories(items)
	}
	if len(categories) < 2 {
		return nil
	}

	instruction := questionText(m)
	if instruction == "" {
		instruction = "Sort each item into its category."
	}

	return &Content{Categorization: &CategorizationContent{
		Instruction: instruction,
		Categories:  categories,
		Items:       items,
	}}
}

func distinctCategories(items []CategorizedItem) []string {
	seen := make(map[string]bool)
	var out []string
	for _, it := range items {
		if it.Category != "" && !seen[it.Category] {
			seen[it.Category] = true
			out = append(out, it.Category)
		}
	}
	return out
}

func extractFillInBlanks(m Raw) *Content {
	text := stringAt(m, "text", "sentence", "passage", "template", "question_text")
	if text == "" {
		text = questionText(m)
	}
	answers := stringsAt(m, "answers", "blanks", "correct_answers", "words")

	if len(answers) == 0 && text != "" {
		// Bracketed words in the passage are the blanks.
		if repaired, recovered := extractBracketed(text); len(recovered) > 0 {
			text, answers = repaired, recovered
		}
	}
	if text == "" || len(answers) == 0 {
		return nil
	}

	return &Content{FillInBlanks: &FillInBlanksContent{
		Text:    text,
		Answers: answers,
	}}
}

func extractMemoryGame(m Raw) *Content {
	var pairs []MemoryPair
	for _, r := range mapsAt(m, "pairs", "cards", "matches", "items") {
		first := stringAt(r, "first", "left", "term", "a", "question")
		second := stringAt(r, "second", "right", "definition", "b", "answer")
		if first != "" && second != "" {
			pairs = append(pairs, MemoryPair{First: first, Second: second})
		}
	}
	if len(pairs) < 2 {
		return nil
	}

	instruction := questionText(m)
	if instruction == "" {
		instruction = "Match the pairs."
	}

	return &Content{MemoryGame: &MemoryGameContent{
		Instruction: instruction,
		Pairs:       pairs,
	}}
}

// extractPrompted covers the two prompt-only variants (audio-response,
// interactive-chat), which share their extraction shape.
func extractPrompted(m Raw, t Type) *Content {
	prompt := questionText(m)
	if prompt == "" {
		prompt = stringAt(m, "text")
	}
	if prompt == "" {
		return nil
	}

	if t == TypeAudioResponse {
		return &Content{AudioResponse: &AudioResponseContent{Prompt: prompt}}
	}
	return &Content{InteractiveChat: &InteractiveChatContent{
		Prompt:         prompt,
		OpeningMessage: stringAt(m, "opening_message", "openingMessage", "first_message", "greeting"),
	}}
}

func extractMetadata(m Raw, t Type) Metadata {
	md := Metadata{
		Weight:            Weight(t),
		CorrectFeedback:   stringAt(m, "correct_feedback", "correctFeedback", "feedback_correct", "positive_feedback"),
		IncorrectFeedback: stringAt(m, "incorrect_feedback", "incorrectFeedback", "feedback_incorrect", "corrective_feedback"),
		Hint:              stringAt(m, "hint", "tip"),
		Citation:          stringAt(m, "citation", "source", "source_reference", "sourceReference", "source_quote"),
	}

	// Feedback may arrive as a nested object.
	if fb, ok := mapAt(m, "feedback"); ok {
		if md.CorrectFeedback == "" {
			md.CorrectFeedback = stringAt(fb, "correct", "positive")
		}
		if md.IncorrectFeedback == "" {
			md.IncorrectFeedback = stringAt(fb, "incorrect", "negative")
		}
	}

	if md.Hint == "" {
		if hints := stringsAt(m, "hints"); len(hints) > 0 {
			md.Hint = hints[0]
		}
	}

	return md
}
