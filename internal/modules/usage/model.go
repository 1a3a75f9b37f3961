package usage

import "errors"

// ErrQuotaExhausted is returned when a user has no generation credits
// remaining for the current month.
var ErrQuotaExhausted = errors.New("generation quota exhausted")

// DefaultCredits is the number of generation credits granted per feature
// per month.
const DefaultCredits = 100

// Feature names tracked by the quota.
const (
	FeaturePlanner  = "planner"
	FeatureSupport  = "support"
	FeatureResearch = "research"
	FeaturePRFAQ    = "prfaq"
)
