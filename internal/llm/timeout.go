package llm

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// TimeoutProvider is a decorator that bounds each request with a deadline.
// Small calls (outline, step detail, audit) get the standard timeout;
// auto-fix rewrites the whole document in one request and gets the
// extended ceiling.
type TimeoutProvider struct {
	inner      Provider
	timeout    time.Duration
	generation time.Duration
}

// WithTimeout wraps a Provider with per-request deadlines. A non-positive
// duration disables the corresponding limit.
func WithTimeout(p Provider, timeout, generation time.Duration) Provider {
	return &TimeoutProvider{inner: p, timeout: timeout, generation: generation}
}

func (t *TimeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	limit := t.timeout
	if PurposeFrom(ctx) == "auto-fix" {
		limit = t.generation
	}
	if limit <= 0 {
		return t.inner.Generate(ctx, req)
	}

	tctx, cancel := context.WithTimeout(ctx, limit)
	defer cancel()

	resp, err := t.inner.Generate(tctx, req)
	if err != nil && errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
		// The per-request deadline fired, not the caller's context. Surface
		// it as a transient provider failure so the retry layer may try
		// again instead of treating it as a caller cancellation.
		return nil, &ErrProviderUnavailable{Err: fmt.Errorf("no response within %s", limit)}
	}
	return resp, err
}

func (t *TimeoutProvider) ModelID() string {
	return t.inner.ModelID()
}
