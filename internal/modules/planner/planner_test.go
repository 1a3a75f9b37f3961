package planner

import (
	"context"
	"fmt"
	"strings"
)

// fakeGen routes prompts to canned responses and records every prompt it saw.
type fakeGen struct {
	fn      func(prompt string, temperature float32) (string, error)
	prompts []string
}

func (f *fakeGen) Complete(_ context.Context, prompt string, temperature float32) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.fn(prompt, temperature)
}

const detailsJSON = `{
	"location": "Caribbean",
	"dates": "12-20-2024 to 12-22-2024",
	"duration": 3,
	"type": "Beach resort",
	"mood": "romantic",
	"budget": "$3000",
	"preferences": ["luxury", "romantic"]
}`

// dayJSON builds a plan for one day with the given activity time labels.
func dayJSON(day int, slots ...string) string {
	if len(slots) == 0 {
		slots = []string{"morning"}
	}
	var acts []string
	for i, slot := range slots {
		acts = append(acts, fmt.Sprintf(`{
			"time_slot": %q,
			"activity": "Activity %d-%d",
			"description": "Something relaxing",
			"estimated_cost": "$100"
		}`, slot, day, i+1))
	}
	return fmt.Sprintf(`{"day": %d, "activities": [%s]}`, day, strings.Join(acts, ","))
}

// restaurantJSON builds a single suggestion preferring the given meal.
func restaurantJSON(name, meal string) string {
	return fmt.Sprintf(`{
		"name": %q,
		"cuisine": "French",
		"price_range": "$$$$",
		"address": "1 Ocean Drive",
		"phone": "+1234567890",
		"hours": {
			"monday": "11:30 AM - 10:00 PM",
			"tuesday": "11:30 AM - 10:00 PM",
			"wednesday": "11:30 AM - 10:00 PM",
			"thursday": "11:30 AM - 10:00 PM",
			"friday": "11:30 AM - 10:00 PM",
			"saturday": "9:00 AM - 11:00 PM",
			"sunday": "9:00 AM - 11:00 PM"
		},
		"dress_code": "Smart Casual",
		"signature_dishes": ["Dish A", "Dish B", "Dish C"],
		"best_time": %q,
		"reservation_notes": "Reservations required"
	}`, name, meal)
}

func restaurantsJSON(entries ...string) string {
	return fmt.Sprintf(`{"restaurants": [%s]}`, strings.Join(entries, ","))
}

// routeByPrompt builds the default deterministic fake: structured details,
// one plan per day, and the given restaurant payload.
func routeByPrompt(restaurants string, daySlots map[int][]string) func(string, float32) (string, error) {
	return func(prompt string, _ float32) (string, error) {
		switch {
		case strings.Contains(prompt, "extract the key details"):
			return detailsJSON, nil
		case strings.Contains(prompt, "restaurants"):
			return restaurants, nil
		default:
			for day := 1; day <= 31; day++ {
				if strings.Contains(prompt, fmt.Sprintf("DAY %d ", day)) {
					return dayJSON(day, daySlots[day]...), nil
				}
			}
			return "", fmt.Errorf("unexpected prompt: %s", prompt)
		}
	}
}

// countMealActivities counts activities whose label names a meal.
func countMealActivities(day DayPlan) int {
	n := 0
	for _, a := range day.Activities {
		if windowStart(a.TimeSlot) != "00:00" {
			n++
		}
	}
	return n
}
