package planner

import (
	"context"
	"math"

	"github.com/rs/zerolog/log"

	"voyage/internal/ai"
)

// expand runs the second stage: exactly duration generation calls, one per
// day in order 1..duration. Per-day failures are recorded and the day is
// skipped; the stage only counts as failed when every day fails. Partial
// success stays "completed" so meal slotting still runs — callers needing
// strict completeness compare len(Days) against Duration.
func (s *Service) expand(ctx context.Context, st *state) {
	params := st.params
	st.itinerary = Itinerary{
		Location: params.Location,
		Mood:     params.Mood,
		Duration: params.Duration,
	}

	// Whole-dollar daily budget, rounded half away from zero. Deterministic:
	// $3000 over 3 days is $1000/day, $1000 over 3 days is $333/day.
	dailyBudget := int64(math.Round(float64(params.BudgetAmount.Amount) / float64(params.Duration)))

	for day := 1; day <= params.Duration; day++ {
		raw, err := s.gen.Complete(ctx, dayPrompt(params, day, dailyBudget), tempGenerate)
		if err != nil {
			st.addError("day %d request failed: %v", day, err)
			continue
		}

		var plan DayPlan
		if err := ai.DecodeStructured(raw, &plan); err != nil {
			st.addError("failed to parse day %d plan: %v", day, err)
			continue
		}

		// The model occasionally echoes the wrong index; the requested day
		// wins so day numbers stay unique and within [1, duration].
		plan.Day = day
		st.itinerary.Days = append(st.itinerary.Days, plan)
	}

	if len(st.itinerary.Days) == 0 {
		st.status[StageExpand] = StatusFailed
		return
	}
	st.status[StageExpand] = StatusCompleted
	log.Info().
		Int("days_planned", len(st.itinerary.Days)).
		Int("days_requested", params.Duration).
		Msg("itinerary expanded")
}
