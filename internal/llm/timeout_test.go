package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

// slowProvider waits before answering, or returns the context error if the
// deadline fires first.
type slowProvider struct {
	delay time.Duration
}

func (s *slowProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	select {
	case <-time.After(s.delay):
		return &Response{Content: json.RawMessage(`{}`), Model: "slow", StopReason: "end"}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *slowProvider) ModelID() string { return "slow" }

func TestTimeout_CutsOffSlowCall(t *testing.T) {
	p := WithTimeout(&slowProvider{delay: 200 * time.Millisecond}, 10*time.Millisecond, time.Second)

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected timeout error")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Errorf("expected ErrProviderUnavailable, got %T: %v", err, err)
	}
}

func TestTimeout_AutoFixGetsExtendedCeiling(t *testing.T) {
	p := WithTimeout(&slowProvider{delay: 50 * time.Millisecond}, 10*time.Millisecond, time.Second)

	ctx := WithPurpose(context.Background(), "auto-fix")
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("auto-fix call should use the extended ceiling: %v", err)
	}
}

func TestTimeout_FastCallUnaffected(t *testing.T) {
	p := WithTimeout(&slowProvider{}, time.Second, time.Second)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{}` {
		t.Errorf("unexpected content: %s", resp.Content)
	}
}

func TestTimeout_CallerCancellationNotMasked(t *testing.T) {
	p := WithTimeout(&slowProvider{delay: time.Second}, 10*time.Millisecond, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	var unavail *ErrProviderUnavailable
	if errors.As(err, &unavail) {
		t.Error("caller cancellation should not be rewritten as a provider failure")
	}
}

func TestTimeout_DisabledWhenZero(t *testing.T) {
	p := WithTimeout(&slowProvider{delay: 20 * time.Millisecond}, 0, 0)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error with limits disabled: %v", err)
	}
}
