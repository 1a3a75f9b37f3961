package ai

import "context"

// Provider defines the contract for text-completion backends.
// Implementations are synchronous request/response; no streaming.
type Provider interface {
	// Complete sends promptText to the model at the given sampling temperature
	// and returns the raw response text. Rate limiting surfaces as
	// ErrRateLimited (retryable); other transport failures wrap ErrService.
	Complete(ctx context.Context, promptText string, temperature float32) (string, error)
}
