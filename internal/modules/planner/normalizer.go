package planner

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"voyage/internal/ai"
)

// normalize runs the first stage: one generation call extracting structured
// trip parameters from the free-text request. On any failure the stage is
// marked failed/error and params stay nil, which halts the pipeline — the
// controller never expands an itinerary from absent parameters.
func (s *Service) normalize(ctx context.Context, st *state, request string) {
	raw, err := s.gen.Complete(ctx, normalizePrompt(request), tempExtract)
	if err != nil {
		st.status[StageNormalize] = StatusError
		st.addError("vacation details request failed: %v", err)
		return
	}

	var params TripParameters
	if err := ai.DecodeStructured(raw, &params); err != nil {
		var perr *ai.ParseError
		if errors.As(err, &perr) {
			log.Debug().Str("raw", perr.Raw).Msg("vacation details did not parse")
		}
		st.status[StageNormalize] = StatusFailed
		st.addError("failed to parse vacation details: %v", err)
		return
	}

	if err := params.validate(); err != nil {
		st.status[StageNormalize] = StatusFailed
		st.addError("invalid vacation details: %v", err)
		return
	}

	st.params = &params
	st.status[StageNormalize] = StatusCompleted
	log.Info().
		Str("location", params.Location).
		Int("duration", params.Duration).
		Str("budget", params.BudgetAmount.String()).
		Msg("trip request normalized")
}
