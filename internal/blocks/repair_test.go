package blocks

import (
	"reflect"
	"testing"
)

func TestSplitSequence_Newlines(t *testing.T) {
	got := splitSequence("first step\nsecond step\nthird step")
	want := []string{"first step", "second step", "third step"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSplitSequence_Sentences(t *testing.T) {
	got := splitSequence("Mix the flour. Add the eggs. Bake for an hour.")
	if len(got) != 3 {
		t.Fatalf("got %d fragments, want 3: %v", len(got), got)
	}
	if got[0] != "Mix the flour." {
		t.Errorf("first fragment = %q", got[0])
	}
}

func TestSplitSequence_TooLittle(t *testing.T) {
	if got := splitSequence("just one fragment"); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestSplitSequence_NumberedLines(t *testing.T) {
	got := splitSequence("1. boil water\n2. add pasta\n3. drain")
	want := []string{"boil water", "add pasta", "drain"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseBullets(t *testing.T) {
	text := "Sort these:\n- Apple: Fruit\n* Carrot: Vegetable\n• Plain item"
	got := parseBullets(text)
	if len(got) != 3 {
		t.Fatalf("got %d items, want 3: %v", len(got), got)
	}
	if got[0] != (CategorizedItem{Text: "Apple", Category: "Fruit"}) {
		t.Errorf("first = %+v", got[0])
	}
	if got[2] != (CategorizedItem{Text: "Plain item"}) {
		t.Errorf("third = %+v", got[2])
	}
}

func TestParseBullets_NoBullets(t *testing.T) {
	if got := parseBullets("No list markers in here at all."); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestExtractBracketed(t *testing.T) {
	text, answers := extractBracketed("The [sun] rises in the [east].")
	if text != "The ___ rises in the ___." {
		t.Errorf("text = %q", text)
	}
	if !reflect.DeepEqual(answers, []string{"sun", "east"}) {
		t.Errorf("answers = %v", answers)
	}
}

func TestExtractBracketed_NoBrackets(t *testing.T) {
	text, answers := extractBracketed("Nothing to recover.")
	if text != "Nothing to recover." || answers != nil {
		t.Errorf("got %q / %v", text, answers)
	}
}
