// README: PRFAQ document generator; six fixed sections, additive errors.
package prfaq

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"voyage/internal/ai"
)

// Section is one titled block of the generated document.
type Section struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Document is the assembled PRFAQ. Export to any particular file format is
// left to callers; this is content, not formatting.
type Document struct {
	Title       string    `json:"title"`
	GeneratedAt time.Time `json:"generated_at"`
	Sections    []Section `json:"sections"`
	Errors      []string  `json:"errors"`
}

// sectionSpecs fixes the order and the per-section instructions.
var sectionSpecs = []struct {
	title  string
	prompt string
}{
	{"Press Release", `Write a press release for this product following Amazon's press release format.
Include a compelling headline, location/date, opening paragraph, problem statement,
solution description, customer quote, and company quote.`},
	{"FAQ", `Generate a comprehensive FAQ section for this product. Include at least 8 questions
covering technical aspects, user benefits, implementation details, and potential concerns.`},
	{"Working Backwards", `Create a Working Backwards section that explains the customer-centric approach taken
in developing this product. Include customer personas, key use cases, and success criteria.`},
	{"Technical Architecture", `Describe the technical architecture for this product. Include system components,
data flow, security considerations, and scalability aspects.`},
	{"Success Metrics", `Define key success metrics for this product. Include both business and technical KPIs,
target values, and measurement methods.`},
	{"Go-to-Market Strategy", `Create a go-to-market strategy section. Include target market analysis,
marketing channels, launch timeline, and competitive positioning.`},
}

type Service struct {
	gen ai.Provider
}

func NewService(gen ai.Provider) *Service {
	return &Service{gen: gen}
}

// Generate produces all six sections for the given product description.
// A failed section leaves an empty body and an error entry; the remaining
// sections are still generated.
func (s *Service) Generate(ctx context.Context, productDesc string) Document {
	doc := Document{
		Title:       "PRFAQ Document",
		GeneratedAt: time.Now().UTC(),
		Errors:      []string{},
	}

	for _, spec := range sectionSpecs {
		prompt := fmt.Sprintf("You are an expert at writing Amazon-style PRFAQ documents. Provide detailed, professional content.\n\n%s\n\nProduct Description:\n%s", spec.prompt, productDesc)
		body, err := s.gen.Complete(ctx, prompt, 0.7)
		if err != nil {
			log.Warn().Err(err).Str("section", spec.title).Msg("section generation failed")
			doc.Errors = append(doc.Errors, fmt.Sprintf("section %q: %v", spec.title, err))
			body = ""
		}
		doc.Sections = append(doc.Sections, Section{Title: spec.title, Body: body})
	}
	return doc
}
