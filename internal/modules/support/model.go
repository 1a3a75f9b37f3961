// README: Support responder data model and static knowledge base.
package support

import "time"

// Classification is the structured read of an inbound customer message.
type Classification struct {
	Intent    string `json:"intent"`
	Category  string `json:"category"`
	Priority  string `json:"priority"`
	Sentiment string `json:"sentiment"`
}

// Ticket is one handled support exchange.
type Ticket struct {
	ID             string         `json:"id"`
	Message        string         `json:"message"`
	Classification Classification `json:"classification"`
	Response       string         `json:"response"`
	Approved       bool           `json:"approved"`
	Feedback       string         `json:"feedback,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}

// knowledgeBase maps category -> topic -> canned reference material handed to
// the model when drafting a reply. Static for now; a real deployment would
// back this with search.
var knowledgeBase = map[string]map[string]string{
	"technical": {
		"login":       "Common login issues and solutions: password resets, SSO session expiry, 2FA recovery codes.",
		"performance": "Performance troubleshooting steps: cache warm-up, query limits, regional latency.",
		"integration": "API integration guidelines: auth headers, rate limits, webhook retries.",
	},
	"billing": {
		"subscription": "Subscription management details: plan changes take effect next cycle, proration rules.",
		"payment":      "Payment processing information: accepted methods, retry schedule for failed charges.",
		"refund":       "Refund policy and procedures: 30-day window, processed to the original method.",
	},
}
