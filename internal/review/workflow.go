package review

import (
	"context"
	"fmt"

	"github.com/EyalShefer/ai-lms-system-sub002/internal/blocks"
	"github.com/EyalShefer/ai-lms-system-sub002/internal/outline"
)

// state is the workflow's position in the validate/fix loop.
type state int

const (
	stateGenerated state = iota
	stateValidating
	stateAccepted
	stateFixing
	stateExhausted
)

// DefaultMaxRetries is the number of fix attempts before the workflow
// gives up on a document.
const DefaultMaxRetries = 2

// Workflow runs a generate function and gates its output behind review:
// a rejected document is auto-fixed and re-validated until it passes or
// the fix budget runs out.
type Workflow struct {
	validator  *Validator
	fixer      *Fixer
	maxRetries int
}

// NewWorkflow creates a Workflow. maxRetries < 0 selects the default.
func NewWorkflow(validator *Validator, fixer *Fixer, maxRetries int) *Workflow {
	if maxRetries < 0 {
		maxRetries = DefaultMaxRetries
	}
	return &Workflow{
		validator:  validator,
		fixer:      fixer,
		maxRetries: maxRetries,
	}
}

// Run executes generate once, then loops validate → fix until the document
// passes or maxRetries fix attempts are spent. A still-rejected document
// raises *ErrExhausted carrying the final verdict; generate's own error is
// passed through untouched.
func (w *Workflow) Run(ctx context.Context, band outline.AudienceBand, generate func(context.Context) (*blocks.Document, error)) (*blocks.Document, error) {
	doc, err := generate(ctx)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("generate returned no document")
	}

	var (
		st     = stateGenerated
		fixes  int
		result Result
	)

	for {
		switch st {
		case stateGenerated:
			st = stateValidating

		case stateValidating:
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			result = w.validator.Validate(ctx, doc, band)
			if result.Passed() {
				st = stateAccepted
			} else if fixes < w.maxRetries {
				st = stateFixing
			} else {
				st = stateExhausted
			}

		case stateFixing:
			fixes++
			doc = w.fixer.Fix(ctx, doc, result)
			st = stateValidating

		case stateAccepted:
			return doc, nil

		case stateExhausted:
			return nil, &ErrExhausted{Attempts: fixes, Result: result}
		}
	}
}
