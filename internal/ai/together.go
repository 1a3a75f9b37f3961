package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	togetherEndpoint = "https://api.together.xyz/v1/chat/completions"
	togetherModel    = "mistralai/Mixtral-8x7B-Instruct-v0.1"
)

// togetherHTTPClient is shared across requests; the 30s timeout guards against
// stalled connections while context cancellation is still honoured via
// NewRequestWithContext.
var togetherHTTPClient = &http.Client{Timeout: 30 * time.Second}

type togetherChatRequest struct {
	Model       string                `json:"model"`
	Messages    []togetherChatMessage `json:"messages"`
	Temperature float32               `json:"temperature"`
	MaxTokens   int                   `json:"max_tokens"`
}

type togetherChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type togetherChatResponse struct {
	Choices []struct {
		Message togetherChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// TogetherProvider implements Provider against Together's OpenAI-compatible
// chat completions endpoint.
type TogetherProvider struct {
	apiKey string
}

func NewTogetherProvider(apiKey string) (*TogetherProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("together: missing api key")
	}
	return &TogetherProvider{apiKey: apiKey}, nil
}

// Complete sends the prompt to Together and returns the reply text.
func (p *TogetherProvider) Complete(ctx context.Context, promptText string, temperature float32) (string, error) {
	reqBody, err := json.Marshal(togetherChatRequest{
		Model:       togetherModel,
		Messages:    []togetherChatMessage{{Role: "user", Content: promptText}},
		Temperature: temperature,
		MaxTokens:   1024,
	})
	if err != nil {
		return "", fmt.Errorf("together: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, togetherEndpoint, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("together: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := togetherHTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("together: %w: do request: %v", ErrService, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("together: %w: read response: %v", ErrService, err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", fmt.Errorf("together: %w", ErrRateLimited)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("together: %w: status %d (raw: %s)", ErrService, resp.StatusCode, body)
	}

	var cr togetherChatResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return "", fmt.Errorf("together: %w: unmarshal response: %v", ErrService, err)
	}
	if cr.Error != nil {
		return "", fmt.Errorf("together: %w: api error: %s", ErrService, cr.Error.Message)
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("together: %w: API returned empty choices array", ErrService)
	}
	return cr.Choices[0].Message.Content, nil
}
