package ai

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

// scriptedProvider returns queued results in order.
type scriptedProvider struct {
	results []error
	calls   int
}

func (s *scriptedProvider) Complete(_ context.Context, _ string, _ float32) (string, error) {
	i := s.calls
	s.calls++
	if i >= len(s.results) || s.results[i] == nil {
		return "ok", nil
	}
	return "", s.results[i]
}

func TestRetryRecoversFromRateLimit(t *testing.T) {
	p := &scriptedProvider{results: []error{
		fmt.Errorf("backend: %w", ErrRateLimited),
		nil,
	}}
	got, err := Retry(p, 3, time.Millisecond).Complete(context.Background(), "hi", 0.7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ok" {
		t.Errorf("got %q, want ok", got)
	}
	if p.calls != 2 {
		t.Errorf("calls = %d, want 2", p.calls)
	}
}

func TestRetryEscalatesToServiceError(t *testing.T) {
	limited := fmt.Errorf("backend: %w", ErrRateLimited)
	p := &scriptedProvider{results: []error{limited, limited, limited}}
	_, err := Retry(p, 3, time.Millisecond).Complete(context.Background(), "hi", 0.7)
	if !errors.Is(err, ErrService) {
		t.Fatalf("expected ErrService after exhausted retries, got %v", err)
	}
	if p.calls != 3 {
		t.Errorf("calls = %d, want 3", p.calls)
	}
}

func TestRetryPassesThroughNonRetryable(t *testing.T) {
	boom := fmt.Errorf("backend: %w", ErrService)
	p := &scriptedProvider{results: []error{boom}}
	_, err := Retry(p, 3, time.Millisecond).Complete(context.Background(), "hi", 0.7)
	if !errors.Is(err, ErrService) {
		t.Fatalf("expected ErrService, got %v", err)
	}
	if p.calls != 1 {
		t.Errorf("calls = %d, want 1 (no retry on non-retryable errors)", p.calls)
	}
}

func TestRetryHonoursContext(t *testing.T) {
	limited := fmt.Errorf("backend: %w", ErrRateLimited)
	p := &scriptedProvider{results: []error{limited, limited}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Retry(p, 3, time.Hour).Complete(ctx, "hi", 0.7)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
