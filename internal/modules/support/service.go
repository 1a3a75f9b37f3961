// README: Support responder; classify -> knowledge -> respond -> quality check.
package support

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"voyage/internal/ai"
)

// Store persists handled tickets. Satisfied by the pgx-backed Store; nil-able
// for library use without a database.
type TicketStore interface {
	Save(ctx context.Context, t Ticket) error
}

type Service struct {
	gen   ai.Provider
	store TicketStore
}

// NewService creates the responder. store may be nil, in which case tickets
// are not persisted.
func NewService(gen ai.Provider, store TicketStore) *Service {
	return &Service{gen: gen, store: store}
}

// Respond runs the full responder chain over one customer message. A
// classification parse failure fails the call; a quality-check parse failure
// degrades to an unapproved ticket instead.
func (s *Service) Respond(ctx context.Context, message string) (*Ticket, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("support: empty message")
	}

	cls, err := s.classify(ctx, message)
	if err != nil {
		return nil, err
	}

	knowledge, err := s.lookupKnowledge(ctx, cls)
	if err != nil {
		// Missing reference material is survivable; the reply is just less
		// specific.
		log.Warn().Err(err).Str("category", cls.Category).Msg("knowledge lookup failed")
		knowledge = ""
	}

	response, err := s.draftResponse(ctx, message, cls, knowledge)
	if err != nil {
		return nil, err
	}

	approved, feedback := s.checkQuality(ctx, message, response, cls)

	ticket := Ticket{
		ID:             uuid.NewString(),
		Message:        message,
		Classification: cls,
		Response:       response,
		Approved:       approved,
		Feedback:       feedback,
		CreatedAt:      time.Now().UTC(),
	}

	if s.store != nil {
		if err := s.store.Save(ctx, ticket); err != nil {
			// Persistence trouble must not lose the drafted response.
			log.Error().Err(err).Str("ticket_id", ticket.ID).Msg("ticket save failed")
		}
	}
	return &ticket, nil
}

func (s *Service) classify(ctx context.Context, message string) (Classification, error) {
	prompt := fmt.Sprintf(`Analyze this customer message and classify it into:
1. Primary Intent (question, complaint, feature request, bug report, billing)
2. Category (technical, account, billing, product, other)
3. Priority (high, medium, low)
4. Sentiment (positive, neutral, negative)

Message: %s

RESPOND WITH ONLY A JSON OBJECT:
{"intent": string, "category": string, "priority": string, "sentiment": string}`, message)

	raw, err := s.gen.Complete(ctx, prompt, 0.3)
	if err != nil {
		return Classification{}, fmt.Errorf("support: classify: %w", err)
	}
	var cls Classification
	if err := ai.DecodeStructured(raw, &cls); err != nil {
		return Classification{}, fmt.Errorf("support: classify: %w", err)
	}
	return cls, nil
}

// lookupKnowledge frames the category's reference material through the model
// so the drafted reply can cite it naturally.
func (s *Service) lookupKnowledge(ctx context.Context, cls Classification) (string, error) {
	topics := knowledgeBase[strings.ToLower(cls.Category)]
	if len(topics) == 0 {
		return "", nil
	}
	keys := make([]string, 0, len(topics))
	for k := range topics {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var base strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&base, "- %s: %s\n", k, topics[k])
	}

	prompt := fmt.Sprintf(`Based on this knowledge base information, provide
relevant details that could help address a customer inquiry:

Category: %s
Intent: %s
Base Information:
%s
Format the response in a clear, helpful manner.`, cls.Category, cls.Intent, base.String())

	return s.gen.Complete(ctx, prompt, 0.5)
}

func (s *Service) draftResponse(ctx context.Context, message string, cls Classification, knowledge string) (string, error) {
	clsJSON, _ := json.Marshal(cls)
	prompt := fmt.Sprintf(`Create a customer service response with these components:
1. Empathetic greeting based on sentiment
2. Clear acknowledgment of the issue
3. Specific solution or next steps
4. Additional helpful resources
5. Professional closing

Original Message: %s
Classification: %s
Knowledge Base Info: %s

Make the response personal, professional, and solution-focused.`, message, clsJSON, knowledge)

	response, err := s.gen.Complete(ctx, prompt, 0.7)
	if err != nil {
		return "", fmt.Errorf("support: draft response: %w", err)
	}
	return response, nil
}

// checkQuality reviews the drafted reply. Any failure here degrades to
// unapproved with the reason as feedback rather than failing the call.
func (s *Service) checkQuality(ctx context.Context, message, response string, cls Classification) (bool, string) {
	clsJSON, _ := json.Marshal(cls)
	prompt := fmt.Sprintf(`Evaluate this customer service response for:
1. Accuracy of solution
2. Tone appropriateness
3. Completeness
4. Grammar and clarity

Original Message: %s
Response: %s
Classification: %s

RESPOND WITH ONLY A JSON OBJECT:
{"approved": boolean, "feedback": string}`, message, response, clsJSON)

	raw, err := s.gen.Complete(ctx, prompt, 0.3)
	if err != nil {
		return false, fmt.Sprintf("quality check unavailable: %v", err)
	}
	var verdict struct {
		Approved bool   `json:"approved"`
		Feedback string `json:"feedback"`
	}
	if err := ai.DecodeStructured(raw, &verdict); err != nil {
		return false, fmt.Sprintf("quality check unreadable: %v", err)
	}
	return verdict.Approved, verdict.Feedback
}
