package support

import (
	"context"
	"errors"
	"strings"
	"testing"

	"voyage/internal/ai"
)

// fakeGen answers by matching prompt fragments.
type fakeGen struct {
	classify string
	quality  string
	calls    int
}

func (f *fakeGen) Complete(_ context.Context, prompt string, _ float32) (string, error) {
	f.calls++
	switch {
	case strings.Contains(prompt, "classify it into"):
		return f.classify, nil
	case strings.Contains(prompt, "Evaluate this customer service response"):
		return f.quality, nil
	case strings.Contains(prompt, "knowledge base information"):
		return "Reference: reset the password from the account page.", nil
	default:
		return "Hi! Sorry about the trouble — here's how to fix it.", nil
	}
}

type memStore struct {
	saved []Ticket
}

func (m *memStore) Save(_ context.Context, t Ticket) error {
	m.saved = append(m.saved, t)
	return nil
}

func TestRespondFullChain(t *testing.T) {
	gen := &fakeGen{
		classify: `{"intent":"bug report","category":"technical","priority":"high","sentiment":"negative"}`,
		quality:  `{"approved":true,"feedback":"Good tone."}`,
	}
	store := &memStore{}

	ticket, err := NewService(gen, store).Respond(context.Background(), "I can't log in!")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ticket.Classification.Category != "technical" {
		t.Errorf("category = %q, want technical", ticket.Classification.Category)
	}
	if !ticket.Approved {
		t.Error("expected an approved ticket")
	}
	if ticket.ID == "" {
		t.Error("ticket should get an id")
	}
	if ticket.Response == "" {
		t.Error("ticket should carry the drafted response")
	}
	if len(store.saved) != 1 {
		t.Errorf("expected 1 persisted ticket, got %d", len(store.saved))
	}
	// classify + knowledge + respond + quality check
	if gen.calls != 4 {
		t.Errorf("calls = %d, want 4", gen.calls)
	}
}

func TestRespondClassificationParseFailure(t *testing.T) {
	gen := &fakeGen{classify: "it's probably a billing thing?"}
	_, err := NewService(gen, nil).Respond(context.Background(), "Where's my refund?")
	if err == nil {
		t.Fatal("expected an error for unreadable classification")
	}
	var perr *ai.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ai.ParseError, got %v", err)
	}
}

func TestRespondQualityCheckDegrades(t *testing.T) {
	gen := &fakeGen{
		classify: `{"intent":"question","category":"billing","priority":"low","sentiment":"neutral"}`,
		quality:  "looks fine to me",
	}
	ticket, err := NewService(gen, nil).Respond(context.Background(), "How do refunds work?")
	if err != nil {
		t.Fatalf("quality-check parse failure must not fail the call: %v", err)
	}
	if ticket.Approved {
		t.Error("unreadable verdict should leave the ticket unapproved")
	}
	if ticket.Feedback == "" {
		t.Error("feedback should record the degradation")
	}
}

func TestRespondUnknownCategorySkipsKnowledge(t *testing.T) {
	gen := &fakeGen{
		classify: `{"intent":"question","category":"other","priority":"low","sentiment":"neutral"}`,
		quality:  `{"approved":true,"feedback":""}`,
	}
	_, err := NewService(gen, nil).Respond(context.Background(), "Do you like pineapple pizza?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// classify + respond + quality check; no knowledge call for an unknown
	// category.
	if gen.calls != 3 {
		t.Errorf("calls = %d, want 3", gen.calls)
	}
}

func TestRespondEmptyMessage(t *testing.T) {
	if _, err := NewService(&fakeGen{}, nil).Respond(context.Background(), "   "); err == nil {
		t.Fatal("expected an error for an empty message")
	}
}
