package services

import (
	"math/rand/v2"

	"tripsmith/internal/models/response_models"
)

// ImagePicker returns an index in [0, n).
type ImagePicker func(n int) int

type ImageEnricherInterface interface {
	Enrich(plan response_models.TravelPlan, spots []response_models.TouristSpot) response_models.TravelPlan
}

type ImageEnricher struct {
	pick ImagePicker
}

// NewImageEnricher uses a uniform random picker when pick is nil, so the same
// plan enriched twice may show different images.
func NewImageEnricher(pick ImagePicker) ImageEnricherInterface {
	if pick == nil {
		pick = rand.IntN
	}
	return &ImageEnricher{pick: pick}
}

func (e *ImageEnricher) Enrich(plan response_models.TravelPlan, spots []response_models.TouristSpot) response_models.TravelPlan {
	out := plan.Clone()

	for i := range out.Itinerary {
		spot, ok := MatchSpot(out.Itinerary[i], spots)
		if !ok || len(spot.ImageURLs) == 0 {
			continue
		}
		out.Itinerary[i].ImageURL = spot.ImageURLs[e.pick(len(spot.ImageURLs))]
	}

	return out
}
