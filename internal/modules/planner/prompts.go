package planner

import (
	"fmt"
	"strings"
)

// Sampling temperatures: low for extraction, higher for creative day plans.
const (
	tempExtract  = 0.3
	tempGenerate = 0.7
)

func normalizePrompt(request string) string {
	return fmt.Sprintf(`Analyze this vacation request and extract the key details.
Request: %s

RESPOND WITH ONLY A JSON OBJECT. NO OTHER TEXT OR MARKDOWN.
Required structure:
{
    "location": string,
    "dates": string,
    "duration": number,
    "type": string,
    "mood": string,
    "budget": string,
    "preferences": [string]
}`, request)
}

// dayPrompt requests the plan for a single day. It carries only the day
// index, preferences, and the per-day budget; prior days' content is not
// echoed back.
func dayPrompt(params *TripParameters, day int, dailyBudget int64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a detailed itinerary for DAY %d ONLY of a %s vacation in %s.\n\n", day, params.Mood, params.Location)
	b.WriteString(`RESPOND WITH ONLY A JSON OBJECT. NO OTHER TEXT OR MARKDOWN.
ALL PROPERTY NAMES AND STRING VALUES MUST USE DOUBLE QUOTES.

Required structure:
{
    "day": `)
	fmt.Fprintf(&b, "%d", day)
	b.WriteString(`,
    "activities": [
        {
            "time_slot": "morning",
            "activity": "Sunrise Yoga Session",
            "description": "Private beachfront yoga class",
            "vendor": {
                "name": "Resort Spa",
                "phone": "+1 234 567 890",
                "address": "Resort address",
                "website": "example.com",
                "email": "spa@example.com"
            },
            "booking_details": {
                "duration": "90 minutes",
                "advance_booking_required": true,
                "what_to_bring": ["Comfortable clothing"],
                "dress_code": "Athletic wear",
                "fitness_level": "All levels"
            },
            "estimated_cost": "$150"
        }
    ]
}

`)
	if day > 1 {
		b.WriteString("Include different activities than previous days.\n")
	}
	fmt.Fprintf(&b, "Include activities that match these preferences: %s.\n", strings.Join(params.Preferences, ", "))
	fmt.Fprintf(&b, "Stay within a daily budget of %d USD.\n", dailyBudget)
	return b.String()
}

func restaurantsPrompt(location, mood string) string {
	return fmt.Sprintf(`Suggest exactly 3 high-end restaurants for this vacation in %s.
Mood: %s

Provide ONLY a JSON response in this EXACT format, with NO additional text:
{
    "restaurants": [
        {
            "name": "Restaurant Name",
            "cuisine": "Cuisine Type",
            "price_range": "$$$$",
            "address": "Full Address",
            "phone": "+1234567890",
            "hours": {
                "monday": "11:30 AM - 10:00 PM",
                "tuesday": "11:30 AM - 10:00 PM",
                "wednesday": "11:30 AM - 10:00 PM",
                "thursday": "11:30 AM - 10:00 PM",
                "friday": "11:30 AM - 10:00 PM",
                "saturday": "11:30 AM - 10:00 PM",
                "sunday": "11:30 AM - 10:00 PM"
            },
            "dress_code": "Smart Casual/Formal",
            "signature_dishes": ["Dish 1", "Dish 2"],
            "best_time": "dinner",
            "reservation_notes": "Reservations required"
        }
    ]
}`, location, mood)
}
