package response_models

type TripItineraryItem struct {
	Day      int    `json:"day"`
	Location string `json:"location"`
	Hotel    string `json:"hotel"`
	Activity string `json:"activity"`
	ImageURL string `json:"image_url,omitempty"`
}

type TravelPlan struct {
	Summary               string              `json:"summary"`
	EstimatedCost         string              `json:"estimatedCost"`
	VehicleRecommendation string              `json:"vehicleRecommendation"`
	Itinerary             []TripItineraryItem `json:"itinerary"`
}

// Clone returns a copy whose itinerary can be modified without touching p.
func (p TravelPlan) Clone() TravelPlan {
	out := p
	if p.Itinerary != nil {
		out.Itinerary = make([]TripItineraryItem, len(p.Itinerary))
		copy(out.Itinerary, p.Itinerary)
	}
	return out
}

type TripPlanResult struct {
	ResolvedDestinations []string   `json:"resolved_destinations"`
	SpotsFound           int        `json:"spots_found"`
	Plan                 TravelPlan `json:"plan"`
}
