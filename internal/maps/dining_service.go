package maps

import (
	"context"
	"fmt"
	"strings"

	"googlemaps.github.io/maps"
)

// Restaurant represents a simplified dining result.
type Restaurant struct {
	Name             string
	Address          string
	Rating           float32
	PlaceID          string
	UserRatingsTotal int
	PriceLevel       int
}

// DiningService handles restaurant lookups through the Google Places API.
type DiningService struct {
	client *maps.Client
}

// NewDiningService creates a DiningService with the given API key.
func NewDiningService(apiKey string) (*DiningService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &DiningService{client: client}, nil
}

// SearchNearby finds restaurants near the destination, optionally refined by a
// cuisine keyword. Results are filtered for quality and capped at limit.
func (s *DiningService) SearchNearby(ctx context.Context, location, cuisine string, limit int) ([]Restaurant, error) {
	query := "restaurants"
	if cuisine != "" {
		query = cuisine + " " + query
	}
	if location != "" {
		query = fmt.Sprintf("%s near %s", query, location)
	}

	r := &maps.TextSearchRequest{
		Query: query,
		Type:  "restaurant",
	}

	resp, err := s.client.TextSearch(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}

	results := make([]Restaurant, 0, limit)
	for _, res := range resp.Results {
		results = append(results, Restaurant{
			Name:             res.Name,
			Address:          res.FormattedAddress,
			Rating:           res.Rating,
			PlaceID:          res.PlaceID,
			UserRatingsTotal: res.UserRatingsTotal,
			PriceLevel:       res.PriceLevel,
		})
	}

	return filterRestaurants(results, limit), nil
}

// Base exclusion list: never suggest fast food or takeaway counters for a
// planned sit-down booking.
var excludedNames = []string{"Fast Food", "Takeaway", "Take Away", "Food Court", "Buffet"}

// filterRestaurants keeps highly rated sit-down spots, capped at limit.
func filterRestaurants(in []Restaurant, limit int) []Restaurant {
	if limit <= 0 {
		limit = 3
	}

	var out []Restaurant
	for _, r := range in {
		if r.Rating < 4.0 { // Filter for high quality
			continue
		}

		skip := false
		for _, kw := range excludedNames {
			if containsIgnoreCase(r.Name, kw) {
				skip = true
				break
			}
		}
		if skip {
			continue
		}

		out = append(out, r)
		if len(out) >= limit {
			break
		}
	}
	return out
}

func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
