package ai

import (
	"errors"
	"testing"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare json", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"fence with padding", "  ```json\n{\"a\":1}\n```  \n", `{"a":1}`},
		{"leading fence only", "```json\n{\"a\":1}", `{"a":1}`},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripFences(tt.in); got != tt.want {
				t.Errorf("StripFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecodeStructured(t *testing.T) {
	var out struct {
		Location string `json:"location"`
	}
	if err := DecodeStructured("```json\n{\"location\":\"Bali\"}\n```", &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Location != "Bali" {
		t.Errorf("location = %q, want Bali", out.Location)
	}
}

func TestDecodeStructuredMalformed(t *testing.T) {
	var out map[string]any
	err := DecodeStructured("I cannot answer that in JSON.", &out)
	if err == nil {
		t.Fatal("expected error for malformed response")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if perr.Raw == "" {
		t.Error("ParseError should carry a raw snippet")
	}
}

func TestParseErrorSnippetBounded(t *testing.T) {
	long := make([]byte, 4096)
	for i := range long {
		long[i] = 'x'
	}
	var out map[string]any
	err := DecodeStructured(string(long), &out)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if len(perr.Raw) > maxRawSnippet {
		t.Errorf("snippet length %d exceeds bound %d", len(perr.Raw), maxRawSnippet)
	}
}
