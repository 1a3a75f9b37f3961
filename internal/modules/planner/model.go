// README: Data model for the staged vacation-planning pipeline.
package planner

import (
	"fmt"

	"voyage/internal/types"
)

// Stage names recorded in the pipeline status map.
const (
	StageNormalize = "normalize"
	StageExpand    = "expand"
	StageSlot      = "slot"
)

// Stage statuses.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusSkipped   = "skipped"
	StatusError     = "error"
)

// TripParameters is the structured record extracted from the free-text
// request. Produced once by the normalizer and read-only afterwards.
type TripParameters struct {
	Location    string   `json:"location"`
	Dates       string   `json:"dates"`
	Duration    int      `json:"duration"`
	Type        string   `json:"type"`
	Mood        string   `json:"mood"`
	Budget      string   `json:"budget"`
	Preferences []string `json:"preferences"`

	// BudgetAmount is the parsed form of Budget, validated positive.
	BudgetAmount types.Money `json:"-"`
}

func (p *TripParameters) validate() error {
	if p.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %d", p.Duration)
	}
	amount, err := types.ParseAmount(p.Budget)
	if err != nil {
		return fmt.Errorf("budget %q: %w", p.Budget, err)
	}
	if amount.Amount <= 0 {
		return fmt.Errorf("budget must be positive, got %s", amount)
	}
	p.BudgetAmount = amount
	return nil
}

// Vendor is the optional contact block attached to an activity.
type Vendor struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Website string `json:"website,omitempty"`
	Email   string `json:"email,omitempty"`
}

// BookingDetails holds optional booking constraints for an activity.
type BookingDetails struct {
	Duration               string   `json:"duration,omitempty"`
	AdvanceBookingRequired bool     `json:"advance_booking_required,omitempty"`
	WhatToBring            []string `json:"what_to_bring,omitempty"`
	DressCode              string   `json:"dress_code,omitempty"`
	FitnessLevel           string   `json:"fitness_level,omitempty"`
}

// Activity is one entry in a day plan. TimeSlot is a free label such as
// "morning" or "Breakfast"; meal labels drive slot matching and sorting.
type Activity struct {
	TimeSlot      string          `json:"time_slot"`
	Title         string          `json:"activity"`
	Description   string          `json:"description"`
	Vendor        *Vendor         `json:"vendor,omitempty"`
	Booking       *BookingDetails `json:"booking_details,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	EstimatedCost string          `json:"estimated_cost"`
}

// DayPlan is the ordered activity sequence for one day, 1-based.
type DayPlan struct {
	Day        int        `json:"day"`
	Activities []Activity `json:"activities"`
}

// Itinerary is the day-indexed plan. Days holds one entry per successfully
// expanded day in day order; it may be shorter than Duration on partial
// failure.
type Itinerary struct {
	Location string    `json:"location"`
	Mood     string    `json:"mood"`
	Duration int       `json:"num_days"`
	Days     []DayPlan `json:"daily_activities"`
}

// RestaurantSuggestion is one pooled dining option. Each suggestion is
// assigned to at most one meal slot across the whole itinerary.
type RestaurantSuggestion struct {
	Name             string            `json:"name"`
	Cuisine          string            `json:"cuisine"`
	PriceRange       string            `json:"price_range"`
	Address          string            `json:"address"`
	Phone            string            `json:"phone"`
	Hours            map[string]string `json:"hours"`
	DressCode        string            `json:"dress_code"`
	SignatureDishes  []string          `json:"signature_dishes"`
	BestTime         string            `json:"best_time"`
	ReservationNotes string            `json:"reservation_notes"`
}

// BookingSummary reports the outcome of meal slotting: how many suggestions
// were placed and which remain as further options.
type BookingSummary struct {
	Assigned  int                    `json:"assigned"`
	Suggested []RestaurantSuggestion `json:"suggested_restaurants"`
	Notes     string                 `json:"notes,omitempty"`
}

// state is the pipeline's shared mutable object. It is created by Plan,
// handed to each stage for in-place mutation, and owned exclusively by the
// controller; stages never roll back another stage's writes.
type state struct {
	params    *TripParameters
	itinerary Itinerary
	bookings  BookingSummary
	status    map[string]string
	errors    []string
}

func newState() *state {
	return &state{status: make(map[string]string)}
}

func (st *state) addError(format string, args ...any) {
	st.errors = append(st.errors, fmt.Sprintf(format, args...))
}

// Result is what Plan returns to callers. Errors is the ordered list of
// stage-local failures; it is non-empty whenever anything went wrong, even
// when partial output was produced.
type Result struct {
	Parameters *TripParameters   `json:"vacation_details"`
	Itinerary  Itinerary         `json:"itinerary"`
	Bookings   BookingSummary    `json:"restaurant_bookings"`
	Status     map[string]string `json:"step_status"`
	Errors     []string          `json:"errors"`
}

func (st *state) result() Result {
	errs := st.errors
	if errs == nil {
		errs = []string{}
	}
	return Result{
		Parameters: st.params,
		Itinerary:  st.itinerary,
		Bookings:   st.bookings,
		Status:     st.status,
		Errors:     errs,
	}
}
