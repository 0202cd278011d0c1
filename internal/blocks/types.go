package blocks

// Type identifies a content block variant. This is the only set of shapes
// downstream consumers (rendering, persistence) ever see.
type Type string

const (
	TypeText            Type = "text"
	TypeMultipleChoice  Type = "multiple-choice"
	TypeOpenQuestion    Type = "open-question"
	TypeOrdering        Type = "ordering"
	TypeCategorization  Type = "categorization"
	TypeFillInBlanks    Type = "fill-in-blanks"
	TypeMemoryGame      Type = "memory-game"
	TypeAudioResponse   Type = "audio-response"
	TypeInteractiveChat Type = "interactive-chat"
)

// Interactive reports whether blocks of this type collect a learner response.
func (t Type) Interactive() bool {
	return t != TypeText
}

// Block is one unit of renderable or interactive content. Every emitted
// block's Content carries exactly one populated variant matching Type, and
// that variant satisfies its minimum shape. A block that cannot satisfy its
// variant's minimum shape is never emitted (Normalize returns nil instead).
type Block struct {
	// ID is a stable unique identifier, safe to use as a persistence key.
	ID       string   `json:"id"`
	Type     Type     `json:"type"`
	Content  Content  `json:"content"`
	Metadata Metadata `json:"metadata"`
}

// Content holds the variant payload. Exactly one field is non-nil,
// matching the owning Block's Type.
type Content struct {
	Text            *TextContent            `json:"text,omitempty"`
	MultipleChoice  *MultipleChoiceContent  `json:"multipleChoice,omitempty"`
	OpenQuestion    *OpenQuestionContent    `json:"openQuestion,omitempty"`
	Ordering        *OrderingContent        `json:"ordering,omitempty"`
	Categorization  *CategorizationContent  `json:"categorization,omitempty"`
	FillInBlanks    *FillInBlanksContent    `json:"fillInBlanks,omitempty"`
	MemoryGame      *MemoryGameContent      `json:"memoryGame,omitempty"`
	AudioResponse   *AudioResponseContent   `json:"audioResponse,omitempty"`
	InteractiveChat *InteractiveChatContent `json:"interactiveChat,omitempty"`
}

// TextContent is an explanatory passage.
type TextContent struct {
	Text string `json:"text"`
}

// MultipleChoiceContent is a single-answer question over ≥2 options.
// CorrectAnswer is always the text of one of Options.
type MultipleChoiceContent struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// OpenQuestionContent is a free-text question. ExpectedAnswer is guidance
// for review, not an exact-match key.
type OpenQuestionContent struct {
	Question       string `json:"question"`
	ExpectedAnswer string `json:"expectedAnswer,omitempty"`
}

// OrderingContent asks the learner to arrange Items into the stored order.
// Items are kept in the correct order; shuffling is a rendering concern.
type OrderingContent struct {
	Instruction string   `json:"instruction"`
	Items       []string `json:"items"`
}

// CategorizationContent asks the learner to sort Items into Categories.
type CategorizationContent struct {
	Instruction string            `json:"instruction"`
	Categories  []string          `json:"categories"`
	Items       []CategorizedItem `json:"items"`
}

// CategorizedItem pairs an item with its correct category.
type CategorizedItem struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

// FillInBlanksContent is a passage with blank markers and their answers,
// in order of appearance.
type FillInBlanksContent struct {
	Text    string   `json:"text"`
	Answers []string `json:"answers"`
}

// MemoryGameContent is a pair-matching exercise.
type MemoryGameContent struct {
	Instruction string       `json:"instruction"`
	Pairs       []MemoryPair `json:"pairs"`
}

// MemoryPair is one matching pair (term/definition, question/answer, ...).
type MemoryPair struct {
	First  string `json:"first"`
	Second string `json:"second"`
}

// AudioResponseContent prompts the learner for a spoken answer.
type AudioResponseContent struct {
	Prompt string `json:"prompt"`
}

// InteractiveChatContent opens a guided chat on a prompt.
type InteractiveChatContent struct {
	Prompt         string `json:"prompt"`
	OpeningMessage string `json:"openingMessage,omitempty"`
}

// Metadata carries the per-block pedagogical envelope shared by all variants.
type Metadata struct {
	// Weight is the fixed scoring weight for this block's type.
	Weight int `json:"weight"`

	// CorrectFeedback and IncorrectFeedback are shown after the learner
	// answers. IncorrectFeedback should cite the source passage.
	CorrectFeedback   string `json:"correctFeedback,omitempty"`
	IncorrectFeedback string `json:"incorrectFeedback,omitempty"`

	// Hint is optional scaffolding the learner can request.
	Hint string `json:"hint,omitempty"`

	// Citation points at the source passage this block was derived from.
	Citation string `json:"citation,omitempty"`
}

// typeWeights is the fixed per-type scoring weight assigned at
// normalization time.
var typeWeights = map[Type]int{
	TypeText:            0,
	TypeMultipleChoice:  10,
	TypeOpenQuestion:    15,
	TypeOrdering:        12,
	TypeCategorization:  12,
	TypeFillInBlanks:    10,
	TypeMemoryGame:      8,
	TypeAudioResponse:   15,
	TypeInteractiveChat: 15,
}

// Weight returns the fixed scoring weight for a block type.
func Weight(t Type) int {
	return typeWeights[t]
}
