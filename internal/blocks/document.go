package blocks

// Document is an assembled lesson unit: an ordered sequence of steps, each
// holding its normalized blocks. Pipeline stages hand off fresh Document
// values; nothing mutates a document another stage still holds.
type Document struct {
	Title string        `json:"title"`
	Steps []StepContent `json:"steps"`
}

// StepContent is one step of a document. ForbiddenTopics carries the
// planning-stage boundary forward so reviewers can check it without the
// original plan in hand.
type StepContent struct {
	Index           int      `json:"index"`
	Title           string   `json:"title"`
	ForbiddenTopics []string `json:"forbiddenTopics,omitempty"`
	Blocks          []Block  `json:"blocks"`
}

// BlockCount returns the total number of blocks across all steps.
func (d *Document) BlockCount() int {
	n := 0
	for _, s := range d.Steps {
		n += len(s.Blocks)
	}
	return n
}
