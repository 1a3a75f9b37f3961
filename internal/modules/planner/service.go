// README: Pipeline controller; sequences normalize -> expand -> slot -> finalize.
package planner

import (
	"context"

	"github.com/rs/zerolog/log"

	"voyage/internal/ai"
)

// Service runs the staged vacation-planning pipeline. Stages execute strictly
// in sequence over a single shared state object owned by the controller; each
// generation request is awaited before the next is built.
type Service struct {
	gen ai.Provider
}

func NewService(gen ai.Provider) *Service {
	return &Service{gen: gen}
}

// Plan processes a free-text vacation request. It always reaches the terminal
// state and never panics out: failures accumulate in Result.Errors alongside
// whatever partial output was produced.
//
// A normalizer failure halts the chain — expansion and slotting are marked
// skipped rather than run against absent parameters.
func (s *Service) Plan(ctx context.Context, request string) Result {
	st := newState()

	s.runStage(ctx, st, StageNormalize, func() { s.normalize(ctx, st, request) })
	if st.status[StageNormalize] != StatusCompleted {
		st.status[StageExpand] = StatusSkipped
		st.status[StageSlot] = StatusSkipped
		return st.result()
	}

	s.runStage(ctx, st, StageExpand, func() { s.expand(ctx, st) })
	s.runStage(ctx, st, StageSlot, func() { s.slot(ctx, st) })
	return st.result()
}

// runStage guards a stage against panics so the pipeline always terminates
// with a result; a recovered panic records the "error" status.
func (s *Service) runStage(_ context.Context, st *state, name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("stage", name).Any("panic", r).Msg("pipeline stage panicked")
			st.status[name] = StatusError
			st.addError("stage %s: internal error: %v", name, r)
		}
	}()
	fn()
}
