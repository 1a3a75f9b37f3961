// README: Research paper workflows; analysis, follow-up questions, social copy.
package research

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"voyage/internal/ai"
)

// PaperSummary is the full output of the summarize workflow.
type PaperSummary struct {
	Analysis   string `json:"analysis"`
	Questions  string `json:"questions"`
	Simplified string `json:"simplified_explanation"`
}

type Service struct {
	gen     ai.Provider
	fetcher Fetcher
}

func NewService(gen ai.Provider, fetcher Fetcher) *Service {
	return &Service{gen: gen, fetcher: fetcher}
}

// Summarize fetches the paper at url and produces an analysis, follow-up
// questions, and a simplified explanation. Unlike the vacation pipeline these
// steps build on each other, so the first failure aborts.
func (s *Service) Summarize(ctx context.Context, url string) (*PaperSummary, error) {
	text, err := s.fetcher.FetchText(ctx, url)
	if err != nil {
		return nil, err
	}
	log.Info().Str("url", url).Int("chars", len(text)).Msg("paper fetched")

	analysis, err := s.analyze(ctx, text)
	if err != nil {
		return nil, err
	}

	questions, err := s.gen.Complete(ctx, fmt.Sprintf(`Based on this research analysis, generate 3-5 insightful follow-up questions
that would help deepen understanding or explore related areas:

Analysis: %s

Format your response as a numbered list of questions.`, analysis), 0.7)
	if err != nil {
		return nil, fmt.Errorf("research: questions: %w", err)
	}

	simplified, err := s.gen.Complete(ctx, fmt.Sprintf(`Create a simplified explanation of this research for a general audience.
Avoid technical jargon and use analogies where helpful:

Analysis: %s

Make it engaging and easy to understand while maintaining accuracy.`, analysis), 0.7)
	if err != nil {
		return nil, fmt.Errorf("research: simplify: %w", err)
	}

	return &PaperSummary{
		Analysis:   analysis,
		Questions:  questions,
		Simplified: simplified,
	}, nil
}

// LinkedInPost fetches the paper at url and drafts an engaging post about it.
func (s *Service) LinkedInPost(ctx context.Context, url string) (string, error) {
	text, err := s.fetcher.FetchText(ctx, url)
	if err != nil {
		return "", err
	}

	analysis, err := s.analyze(ctx, text)
	if err != nil {
		return "", err
	}

	post, err := s.gen.Complete(ctx, fmt.Sprintf(`Create an engaging LinkedIn post about this research paper. The post should:
1. Start with a compelling hook about the innovation or impact
2. Highlight ONE groundbreaking finding or contribution
3. Explain its practical implications
4. Use simple analogies to explain complex concepts
5. Include 3-4 relevant hashtags
6. Keep it under 1300 characters
7. End with an engaging question or call-to-action

Research Analysis: %s

Make it accessible to a technical audience while maintaining scientific accuracy.`, analysis), 0.7)
	if err != nil {
		return "", fmt.Errorf("research: post: %w", err)
	}
	return strings.TrimSpace(post), nil
}

func (s *Service) analyze(ctx context.Context, text string) (string, error) {
	analysis, err := s.gen.Complete(ctx, fmt.Sprintf(`Please analyze this research text and extract the following components:
- Main objective/hypothesis
- Methodology
- Key findings
- Limitations
- Future work suggestions

Text: %s

Format your response as a structured analysis with clear headings.`, text), 0.3)
	if err != nil {
		return "", fmt.Errorf("research: analyze: %w", err)
	}
	return analysis, nil
}
