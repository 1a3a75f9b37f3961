package planner

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"voyage/internal/ai"
)

// mealWindow is a fixed local-clock time range used for slot matching and
// sorting. The three windows do not overlap; no timezone modeling.
type mealWindow struct {
	name  string
	start string
	end   string
}

var mealWindows = []mealWindow{
	{"breakfast", "07:00", "10:30"},
	{"lunch", "11:30", "14:30"},
	{"dinner", "18:00", "21:30"},
}

// windowStart maps an activity time label to its sort key: the start of the
// matching meal window, or "00:00" for any label naming no known meal.
func windowStart(label string) string {
	lower := strings.ToLower(label)
	for _, w := range mealWindows {
		if strings.Contains(lower, w.name) {
			return w.start
		}
	}
	return "00:00"
}

// slot runs the third stage: requests dining suggestions and merges them into
// free meal slots. A suggestion fetch or parse failure leaves the itinerary
// untouched and appends exactly one error; the stage is non-fatal either way.
func (s *Service) slot(ctx context.Context, st *state) {
	raw, err := s.gen.Complete(ctx, restaurantsPrompt(st.itinerary.Location, st.itinerary.Mood), tempGenerate)
	if err != nil {
		st.status[StageSlot] = StatusError
		st.addError("restaurant suggestions request failed: %v", err)
		return
	}

	var suggested struct {
		Restaurants []RestaurantSuggestion `json:"restaurants"`
	}
	if err := ai.DecodeStructured(raw, &suggested); err != nil {
		st.status[StageSlot] = StatusFailed
		st.addError("failed to parse restaurant suggestions: %v", err)
		return
	}

	pool := suggested.Restaurants
	assigned := 0

	for i := range st.itinerary.Days {
		day := &st.itinerary.Days[i]
		scheduled := scheduledMeals(day.Activities)

		for _, w := range mealWindows {
			if scheduled[w.name] {
				continue
			}
			idx := firstMatch(pool, w.name)
			if idx < 0 {
				continue
			}
			r := pool[idx]
			// Removal is global: a suggestion is proposed for at most one
			// meal across the entire itinerary.
			pool = append(pool[:idx], pool[idx+1:]...)
			weekday := tripWeekday(st.params.Dates, day.Day)
			day.Activities = append(day.Activities, mealActivity(r, w.name, weekday))
			assigned++
		}

		// Stable: ties (and all non-meal labels, keyed "00:00") keep their
		// relative insertion order.
		sort.SliceStable(day.Activities, func(a, b int) bool {
			return windowStart(day.Activities[a].TimeSlot) < windowStart(day.Activities[b].TimeSlot)
		})
	}

	st.bookings = BookingSummary{
		Assigned:  assigned,
		Suggested: pool,
		Notes:     "Restaurants have been integrated into your daily itinerary. Additional suggestions are available if needed.",
	}
	st.status[StageSlot] = StatusCompleted
	log.Info().Int("assigned", assigned).Int("remaining", len(pool)).Msg("meal slots filled")
}

// scheduledMeals scans existing time labels case-insensitively for meal names.
func scheduledMeals(activities []Activity) map[string]bool {
	present := make(map[string]bool, len(mealWindows))
	for _, a := range activities {
		lower := strings.ToLower(a.TimeSlot)
		for _, w := range mealWindows {
			if strings.Contains(lower, w.name) {
				present[w.name] = true
			}
		}
	}
	return present
}

// firstMatch returns the index of the first pooled suggestion preferring the
// given meal, or -1.
func firstMatch(pool []RestaurantSuggestion, meal string) int {
	for i, r := range pool {
		if strings.Contains(strings.ToLower(r.BestTime), meal) {
			return i
		}
	}
	return -1
}

// mealActivity synthesizes the itinerary entry for an assigned suggestion.
// Cost comes from the restaurant's price tier.
func mealActivity(r RestaurantSuggestion, meal, weekday string) Activity {
	dishes := r.SignatureDishes
	if len(dishes) > 2 {
		dishes = dishes[:2]
	}
	title := strings.ToUpper(meal[:1]) + meal[1:]
	notes := []string{
		fmt.Sprintf("📞 %s | 👔 %s", r.Phone, r.DressCode),
		fmt.Sprintf("📍 %s", r.Address),
	}
	if hours := r.Hours[weekday]; hours != "" {
		notes = append(notes, fmt.Sprintf("⏰ %s", hours))
	}
	if r.ReservationNotes != "" {
		notes = append(notes, fmt.Sprintf("💡 %s", r.ReservationNotes))
	}
	return Activity{
		TimeSlot:      title,
		Title:         fmt.Sprintf("%s (%s)", r.Name, r.Cuisine),
		Description:   fmt.Sprintf("Signature dishes: %s", strings.Join(dishes, ", ")),
		Notes:         strings.Join(notes, "\n"),
		EstimatedCost: r.PriceRange,
	}
}

// dateLayouts are tried in order against the leading piece of the loosely
// formatted date range (e.g. "12-20-2024 to 12-27-2024").
var dateLayouts = []string{
	"01-02-2006",
	"2006-01-02",
	"01/02/2006",
	"January 2, 2006",
	"Jan 2, 2006",
}

// tripWeekday resolves which weekday's opening hours apply for the given trip
// day: the parsed start date advanced by day-1. When no start date parses,
// Monday is used, keeping the output deterministic.
func tripWeekday(dates string, day int) string {
	start := dates
	for _, sep := range []string{" to ", " - ", "–"} {
		if i := strings.Index(start, sep); i >= 0 {
			start = start[:i]
			break
		}
	}
	start = strings.TrimSpace(start)

	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, start)
		if err != nil {
			continue
		}
		return strings.ToLower(t.AddDate(0, 0, day-1).Weekday().String())
	}
	return "monday"
}
