package blocks

import (
	"encoding/json"
	"reflect"
	"testing"
)

func fixedID(t *testing.T) {
	t.Helper()
	orig := NewID
	NewID = func() string { return "block-0001" }
	t.Cleanup(func() { NewID = orig })
}

func rawFromJSON(t *testing.T, s string) Raw {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		t.Fatalf("bad test JSON: %v", err)
	}
	return Raw(m)
}

func TestNormalize_NilInput(t *testing.T) {
	if got := Normalize(nil); got != nil {
		t.Fatalf("Normalize(nil) = %+v, want nil", got)
	}
}

func TestNormalize_MultipleChoice_IsCorrectFlag(t *testing.T) {
	fixedID(t)
	raw := rawFromJSON(t, `{
		"type": "multiple_choice",
		"question": "Which planet is largest?",
		"options": [
			{"text": "Mars", "is_correct": false},
			{"text": "Jupiter", "is_correct": true},
			{"text": "Venus", "is_correct": false}
		]
	}`)

	b := Normalize(raw)
	if b == nil {
		t.Fatal("expected a block")
	}
	if b.Type != TypeMultipleChoice {
		t.Fatalf("expected multiple-choice, got %s", b.Type)
	}
	mc := b.Content.MultipleChoice
	if mc == nil {
		t.Fatal("multiple-choice content missing")
	}
	if mc.CorrectAnswer != "Jupiter" {
		t.Errorf("correctAnswer = %q, want Jupiter", mc.CorrectAnswer)
	}
	want := []string{"Mars", "Jupiter", "Venus"}
	if !reflect.DeepEqual(mc.Options, want) {
		t.Errorf("options = %v, want input order %v", mc.Options, want)
	}
}

func TestNormalize_MultipleChoice_AnswerString(t *testing.T) {
	fixedID(t)
	raw := rawFromJSON(t, `{
		"question_text": "2 + 2?",
		"choices": ["3", "4", "5"],
		"correct_answer": "4"
	}`)

	b := Normalize(raw)
	if b == nil {
		t.Fatal("expected a block")
	}
	if b.Content.MultipleChoice.CorrectAnswer != "4" {
		t.Errorf("correctAnswer = %q, want 4", b.Content.MultipleChoice.CorrectAnswer)
	}
}

func TestNormalize_MultipleChoice_CorrectIndex(t *testing.T) {
	fixedID(t)
	raw := rawFromJSON(t, `{
		"question": "Pick the even number.",
		"options": ["1", "3", "8"],
		"correct_index": 2
	}`)

	b := Normalize(raw)
	if b == nil {
		t.Fatal("expected a block")
	}
	if b.Content.MultipleChoice.CorrectAnswer != "8" {
		t.Errorf("correctAnswer = %q, want 8", b.Content.MultipleChoice.CorrectAnswer)
	}
}

func TestNormalize_MultipleChoice_NoAnswerSignal_FailsClosed(t *testing.T) {
	raw := rawFromJSON(t, `{
		"question": "Pick one.",
		"options": ["a", "b", "c"]
	}`)
	if got := Normalize(raw); got != nil {
		t.Fatalf("expected nil for missing answer signal, got %+v", got)
	}
}

func TestNormalize_MultipleChoice_TooFewOptions_FailsClosed(t *testing.T) {
	raw := rawFromJSON(t, `{
		"question": "Pick one.",
		"options": ["only"],
		"correct_answer": "only"
	}`)
	if got := Normalize(raw); got != nil {
		t.Fatalf("expected nil for <2 options, got %+v", got)
	}
}

func TestNormalize_MissingTypeDefaultsToMultipleChoice(t *testing.T) {
	fixedID(t)
	raw := rawFromJSON(t, `{
		"question": "Default type?",
		"options": ["yes", "no"],
		"correct_answer": "yes"
	}`)

	b := Normalize(raw)
	if b == nil {
		t.Fatal("expected a block")
	}
	if b.Type != TypeMultipleChoice {
		t.Errorf("type = %s, want multiple-choice default", b.Type)
	}
}

func TestNormalize_UnknownTagFallsBack(t *testing.T) {
	fixedID(t)
	raw := rawFromJSON(t, `{
		"type": "super_quiz_deluxe",
		"question": "Fallback?",
		"options": ["a", "b"],
		"correct_answer": "b"
	}`)

	b := Normalize(raw)
	if b == nil {
		t.Fatal("expected a block: unknown tags fall back instead of dropping data")
	}
	if b.Type != TypeMultipleChoice {
		t.Errorf("type = %s, want multiple-choice fallback", b.Type)
	}
}

func TestNormalize_TrueFalse_SynthesizesOptions(t *testing.T) {
	fixedID(t)
	raw := rawFromJSON(t, `{
		"type": "true_false",
		"question": "The sun is a star.",
		"correct_answer": true
	}`)

	b := Normalize(raw)
	if b == nil {
		t.Fatal("expected a block")
	}
	mc := b.Content.MultipleChoice
	if !reflect.DeepEqual(mc.Options, []string{"True", "False"}) {
		t.Errorf("options = %v, want canonical True/False", mc.Options)
	}
	if mc.CorrectAnswer != "True" {
		t.Errorf("correctAnswer = %q, want True", mc.CorrectAnswer)
	}
}

func TestNormalize_UnwrapsNestedPayload(t *testing.T) {
	fixedID(t)
	raw := rawFromJSON(t, `{
		"data": {
			"data": {
				"type": "open_question",
				"question": "Why do leaves change color?"
			}
		}
	}`)

	b := Normalize(raw)
	if b == nil {
		t.Fatal("expected a block from data.data payload")
	}
	if b.Type != TypeOpenQuestion {
		t.Fatalf("type = %s, want open-question", b.Type)
	}
	if b.Content.OpenQuestion.Question != "Why do leaves change color?" {
		t.Errorf("question = %q", b.Content.OpenQuestion.Question)
	}
}

func TestNormalize_QuestionUnderNestedTextField(t *testing.T) {
	fixedID(t)
	raw := rawFromJSON(t, `{
		"type": "open",
		"question": {"text": "Describe the water cycle."}
	}`)

	b := Normalize(raw)
	if b == nil {
		t.Fatal("expected a block")
	}
	if b.Content.OpenQuestion.Question != "Describe the water cycle." {
		t.Errorf("question = %q", b.Content.OpenQuestion.Question)
	}
}

func TestNormalize_Ordering_RecoversFromProse(t *testing.T) {
	fixedID(t)
	raw := rawFromJSON(t, `{
		"type": "ordering",
		"instruction": "Seed sprouts first.\nThen the stem grows.\nFinally flowers bloom."
	}`)

	b := Normalize(raw)
	if b == nil {
		t.Fatal("expected a recovered ordering block")
	}
	ord := b.Content.Ordering
	if len(ord.Items) < 2 {
		t.Fatalf("recovered %d items, want >= 2", len(ord.Items))
	}
	if ord.Items[0] != "Seed sprouts first." {
		t.Errorf("first item = %q", ord.Items[0])
	}
}

func TestNormalize_Ordering_SingleItem_FailsClosed(t *testing.T) {
	raw := rawFromJSON(t, `{
		"type": "ordering",
		"items": ["only one thing"],
		"instruction": "no sentences here"
	}`)
	if got := Normalize(raw); got != nil {
		t.Fatalf("expected nil for a 1-item sequence, got %+v", got)
	}
}

func TestNormalize_Categorization_BulletRepair(t *testing.T) {
	fixedID(t)
	raw := rawFromJSON(t, `{
		"type": "categorization",
		"question": "Sort the animals:\n- Dog: Mammal\n- Eagle: Bird\n- Cat: Mammal"
	}`)

	b := Normalize(raw)
	if b == nil {
		t.Fatal("expected a repaired categorization block")
	}
	cat := b.Content.Categorization
	if len(cat.Items) != 3 {
		t.Fatalf("items = %d, want 3", len(cat.Items))
	}
	if cat.Items[0].Text != "Dog" || cat.Items[0].Category != "Mammal" {
		t.Errorf("first item = %+v", cat.Items[0])
	}
	if !reflect.DeepEqual(cat.Categories, []string{"Mammal", "Bird"}) {
		t.Errorf("categories = %v", cat.Categories)
	}
}

func TestNormalize_Categorization_NoItems_FailsClosed(t *testing.T) {
	raw := rawFromJSON(t, `{
		"type": "categorization",
		"question": "Sort the items into groups.",
		"categories": ["A", "B"]
	}`)
	if got := Normalize(raw); got != nil {
		t.Fatalf("expected nil for zero items with no bullet text, got %+v", got)
	}
}

func TestNormalize_FillInBlanks_BracketRepair(t *testing.T) {
	fixedID(t)
	raw := rawFromJSON(t, `{
		"type": "fill_in_blanks",
		"text": "Water boils at [100] degrees and freezes at [0]."
	}`)

	b := Normalize(raw)
	if b == nil {
		t.Fatal("expected a block")
	}
	fib := b.Content.FillInBlanks
	if !reflect.DeepEqual(fib.Answers, []string{"100", "0"}) {
		t.Errorf("answers = %v", fib.Answers)
	}
	if fib.Text != "Water boils at ___ degrees and freezes at ___." {
		t.Errorf("text = %q", fib.Text)
	}
}

func TestNormalize_MemoryGame_TooFewPairs_FailsClosed(t *testing.T) {
	raw := rawFromJSON(t, `{
		"type": "memory_game",
		"pairs": [{"first": "sun", "second": "star"}]
	}`)
	if got := Normalize(raw); got != nil {
		t.Fatalf("expected nil for <2 pairs, got %+v", got)
	}
}

func TestNormalize_Metadata(t *testing.T) {
	fixedID(t)
	raw := rawFromJSON(t, `{
		"type": "multiple_choice",
		"question": "Largest ocean?",
		"options": ["Atlantic", "Pacific"],
		"correct_answer": "Pacific",
		"feedback": {"correct": "Well done!", "incorrect": "See paragraph 2."},
		"hint": "It borders Asia.",
		"source": "paragraph 2"
	}`)

	b := Normalize(raw)
	if b == nil {
		t.Fatal("expected a block")
	}
	md := b.Metadata
	if md.CorrectFeedback != "Well done!" {
		t.Errorf("correct feedback = %q", md.CorrectFeedback)
	}
	if md.IncorrectFeedback != "See paragraph 2." {
		t.Errorf("incorrect feedback = %q", md.IncorrectFeedback)
	}
	if md.Hint != "It borders Asia." {
		t.Errorf("hint = %q", md.Hint)
	}
	if md.Citation != "paragraph 2" {
		t.Errorf("citation = %q", md.Citation)
	}
	if md.Weight != Weight(TypeMultipleChoice) {
		t.Errorf("weight = %d", md.Weight)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	fixedID(t)
	raw := rawFromJSON(t, `{
		"type": "multiple_choice",
		"question": "Stable?",
		"options": [
			{"text": "yes", "is_correct": true},
			{"text": "no"}
		]
	}`)

	first := Normalize(raw)
	second := Normalize(raw)
	if first == nil || second == nil {
		t.Fatal("expected blocks")
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("normalization not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
