package services

import (
	"strings"

	"tripsmith/internal/models/response_models"
)

// MatchSpot finds the spot an itinerary item refers to. Location equality is
// tried first, then hotel equality, then the spot name appearing anywhere in
// the activity text. Comparisons ignore case and the first hit wins.
func MatchSpot(item response_models.TripItineraryItem, candidates []response_models.TouristSpot) (response_models.TouristSpot, bool) {
	location := strings.TrimSpace(item.Location)
	hotel := strings.TrimSpace(item.Hotel)
	activity := strings.ToLower(item.Activity)

	if location != "" {
		for _, spot := range candidates {
			if name := strings.TrimSpace(spot.Name); name != "" && strings.EqualFold(location, name) {
				return spot, true
			}
		}
	}

	if hotel != "" {
		for _, spot := range candidates {
			if name := strings.TrimSpace(spot.Name); name != "" && strings.EqualFold(hotel, name) {
				return spot, true
			}
		}
	}

	if activity != "" {
		for _, spot := range candidates {
			name := strings.ToLower(strings.TrimSpace(spot.Name))
			if name != "" && strings.Contains(activity, name) {
				return spot, true
			}
		}
	}

	return response_models.TouristSpot{}, false
}
