package ai

import (
	"errors"
	"fmt"
)

var (
	// ErrRateLimited marks a throttled generation call; safe to retry.
	ErrRateLimited = errors.New("generation rate limited")

	// ErrService marks a non-retryable provider failure (auth, network,
	// or a rate limit that persisted past the retry bound).
	ErrService = errors.New("generation service error")
)

// maxRawSnippet bounds how much of a malformed response a ParseError carries.
const maxRawSnippet = 200

// ParseError reports a structured response that did not decode after
// fence stripping. Raw holds a truncated snippet of the offending text.
type ParseError struct {
	Reason string
	Raw    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed structured response: %s (raw: %s)", e.Reason, e.Raw)
}

func newParseError(reason error, raw string) *ParseError {
	if len(raw) > maxRawSnippet {
		raw = raw[:maxRawSnippet]
	}
	return &ParseError{Reason: reason.Error(), Raw: raw}
}
