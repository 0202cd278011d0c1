// Package unitgen orchestrates the full generation pipeline: plan an
// outline, generate step details concurrently, normalize the results into
// strict blocks, and gate the assembled document behind review.
package unitgen

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/EyalShefer/ai-lms-system-sub002/internal/blocks"
	"github.com/EyalShefer/ai-lms-system-sub002/internal/outline"
	"github.com/EyalShefer/ai-lms-system-sub002/internal/review"
	"github.com/EyalShefer/ai-lms-system-sub002/internal/stepgen"
	"github.com/EyalShefer/ai-lms-system-sub002/internal/store"
)

// Request describes one unit to generate.
type Request struct {
	Topic      string
	SourceText string
	Band       outline.AudienceBand
	Tier       outline.LengthTier
	Mode       outline.Mode
}

// Recorder persists unit generation outcomes. A nil Recorder disables
// recording.
type Recorder interface {
	AppendUnitEvent(ctx context.Context, data store.UnitEventData) error
}

// Service runs the generation pipeline.
type Service struct {
	outlines *outline.Generator
	steps    *stepgen.Generator
	workflow *review.Workflow
	events   Recorder
}

// New creates a Service. events may be nil.
func New(outlines *outline.Generator, steps *stepgen.Generator, workflow *review.Workflow, events Recorder) *Service {
	return &Service{
		outlines: outlines,
		steps:    steps,
		workflow: workflow,
		events:   events,
	}
}

// GenerateUnit runs the full pipeline for one request and returns the
// reviewed document. The only fatal errors are outline failure, context
// cancellation, and review exhaustion; a failed step is skipped, not fatal.
func (s *Service) GenerateUnit(ctx context.Context, req Request) (*blocks.Document, error) {
	doc, err := s.workflow.Run(ctx, req.Band, func(ctx context.Context) (*blocks.Document, error) {
		return s.generate(ctx, req)
	})

	s.recordOutcome(ctx, req, doc, err)
	return doc, err
}

func (s *Service) generate(ctx context.Context, req Request) (*blocks.Document, error) {
	skel, err := s.outlines.Generate(ctx, outline.Input{
		Topic:      req.Topic,
		SourceText: req.SourceText,
		Band:       req.Band,
		Tier:       req.Tier,
		Mode:       req.Mode,
	})
	if err != nil {
		return nil, fmt.Errorf("plan unit: %w", err)
	}

	details, err := s.generateSteps(ctx, req, skel)
	if err != nil {
		return nil, err
	}

	return assemble(skel, details), nil
}

// stepConcurrency bounds the step detail fan-out so a long unit does not
// open seven provider calls at once.
const stepConcurrency = 4

// generateSteps fans the step detail calls out concurrently. Results land
// in a slice indexed by step position, so assembly order never depends on
// completion order. A failed step leaves a nil slot; each failed call is
// still visible in the request event log. Only cancellation aborts the
// fan-out, which also cancels the remaining in-flight calls.
func (s *Service) generateSteps(ctx context.Context, req Request, skel *outline.UnitSkeleton) ([]*stepgen.Detail, error) {
	details := make([]*stepgen.Detail, len(skel.Steps))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(stepConcurrency)
	for i, step := range skel.Steps {
		g.Go(func() error {
			detail, err := s.steps.Generate(ctx, stepgen.Input{
				Topic:      req.Topic,
				SourceText: req.SourceText,
				Band:       req.Band,
				Mode:       req.Mode,
				Step:       step,
			})
			if err != nil {
				return ctx.Err()
			}
			details[i] = detail
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return details, nil
}

// assemble builds the document: per step, a text block from the teaching
// passage plus the normalized interactive block. Items the normalizer
// rejects are dropped; the structural validator decides whether what
// remains is acceptable.
func assemble(skel *outline.UnitSkeleton, details []*stepgen.Detail) *blocks.Document {
	doc := &blocks.Document{Title: skel.Title}

	for i, step := range skel.Steps {
		content := blocks.StepContent{
			Index:           step.Index,
			Title:           step.Title,
			ForbiddenTopics: step.ForbiddenTopics,
		}

		if detail := details[i]; detail != nil {
			if teach := blocks.Normalize(blocks.Raw{"type": "text", "text": detail.TeachContent}); teach != nil {
				content.Blocks = append(content.Blocks, *teach)
			}
			if item := blocks.Normalize(detail.Item); item != nil {
				content.Blocks = append(content.Blocks, *item)
			}
		}

		doc.Steps = append(doc.Steps, content)
	}

	return doc
}

func (s *Service) recordOutcome(ctx context.Context, req Request, doc *blocks.Document, err error) {
	if s.events == nil {
		return
	}

	data := store.UnitEventData{
		Topic: req.Topic,
		Band:  string(req.Band),
		Tier:  string(req.Tier),
	}
	switch {
	case err == nil:
		data.Status = "accepted"
		data.BlockCount = doc.BlockCount()
	default:
		var exhausted *review.ErrExhausted
		if errors.As(err, &exhausted) {
			data.Status = "exhausted"
			data.Attempts = exhausted.Attempts
		} else {
			data.Status = "failed"
		}
	}

	// Outcome recording is best-effort; a write failure never fails the unit.
	_ = s.events.AppendUnitEvent(ctx, data)
}
