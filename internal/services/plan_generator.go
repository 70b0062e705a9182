package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"tripsmith/internal/models/response_models"
	"tripsmith/pkg/utils"
)

type PlanGeneratorInterface interface {
	Synthesize(ctx context.Context, budget, days string, destinations []string, spots []response_models.TouristSpot) (response_models.TravelPlan, error)
}

type PlanGenerator struct {
	llm    utils.GenerativeClientInterface
	logger *zap.Logger
}

func NewPlanGenerator(llm utils.GenerativeClientInterface, logger *zap.Logger) PlanGeneratorInterface {
	return &PlanGenerator{
		llm:    llm,
		logger: logger.Named("plan_generator"),
	}
}

func (g *PlanGenerator) Synthesize(ctx context.Context, budget, days string, destinations []string, spots []response_models.TouristSpot) (response_models.TravelPlan, error) {
	prompt, err := BuildPlanPrompt(budget, days, destinations, spots)
	if err != nil {
		return response_models.TravelPlan{}, fmt.Errorf("%w: build prompt: %v", utils.ErrPlanGenerationFailed, err)
	}

	raw, err := g.llm.Generate(ctx, utils.GenerationRequest{
		Prompt:     prompt,
		JSONOutput: true,
	})
	if err != nil {
		g.logger.Error("plan generation call failed", zap.String("provider", g.llm.Provider()), zap.Error(err))
		return response_models.TravelPlan{}, fmt.Errorf("%w: %w", utils.ErrPlanGenerationFailed, err)
	}

	plan, err := ParseTravelPlan(raw)
	if err != nil {
		g.logger.Warn("model returned an invalid plan", zap.Error(err), zap.Int("response_len", len(raw)))
		return response_models.TravelPlan{}, err
	}

	return plan, nil
}

// BuildPlanPrompt renders the same prompt for the same inputs. Only the
// Name, Type, Grade and District of each spot are embedded.
func BuildPlanPrompt(budget, days string, destinations []string, spots []response_models.TouristSpot) (string, error) {
	entries := make([]response_models.SpotPromptEntry, 0, len(spots))
	for _, s := range spots {
		entries = append(entries, s.PromptEntry())
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("Act as a Sri Lankan Travel Planner.\n")
	fmt.Fprintf(&b, "Duration: %s Days.\n", days)
	fmt.Fprintf(&b, "Destinations: %s.\n", strings.Join(destinations, ", "))
	fmt.Fprintf(&b, "Budget: %s.\n\n", budget)
	b.WriteString("AVAILABLE DATA (Strictly use this):\n")
	b.Write(data)
	b.WriteString("\n\nTASK:\n")
	b.WriteString("Create a detailed itinerary JSON.\n")
	b.WriteString("Format:\n")
	b.WriteString(`{
  "summary": "String",
  "estimatedCost": "String",
  "vehicleRecommendation": "String",
  "itinerary": [
    { "day": 1, "location": "String", "hotel": "String", "activity": "String" }
  ]
}`)
	b.WriteString("\n")
	return b.String(), nil
}

// ParseTravelPlan strips code fences from a model response and checks it
// against the plan schema. Every failure wraps ErrPlanGenerationFailed.
func ParseTravelPlan(raw string) (response_models.TravelPlan, error) {
	clean := utils.StripCodeFences(raw)

	var top map[string]json.RawMessage
	if err := json.Unmarshal([]byte(clean), &top); err != nil {
		return response_models.TravelPlan{}, planErr("response is not a JSON object: %v", err)
	}

	var plan response_models.TravelPlan
	var err error
	if plan.Summary, err = stringField(top, "summary"); err != nil {
		return response_models.TravelPlan{}, err
	}
	if plan.EstimatedCost, err = stringField(top, "estimatedCost"); err != nil {
		return response_models.TravelPlan{}, err
	}
	if plan.VehicleRecommendation, err = stringField(top, "vehicleRecommendation"); err != nil {
		return response_models.TravelPlan{}, err
	}

	rawItems, ok := top["itinerary"]
	if !ok {
		return response_models.TravelPlan{}, planErr("missing field %q", "itinerary")
	}
	var items []map[string]json.RawMessage
	if err := json.Unmarshal(rawItems, &items); err != nil || items == nil {
		return response_models.TravelPlan{}, planErr("field %q must be an array of objects", "itinerary")
	}

	plan.Itinerary = make([]response_models.TripItineraryItem, 0, len(items))
	for i, fields := range items {
		item, err := parseItineraryItem(fields)
		if err != nil {
			return response_models.TravelPlan{}, fmt.Errorf("itinerary[%d]: %w", i, err)
		}
		plan.Itinerary = append(plan.Itinerary, item)
	}

	return plan, nil
}

func parseItineraryItem(fields map[string]json.RawMessage) (response_models.TripItineraryItem, error) {
	var item response_models.TripItineraryItem

	rawDay, ok := fields["day"]
	if !ok {
		return item, planErr("missing field %q", "day")
	}
	var day float64
	if err := json.Unmarshal(rawDay, &day); err != nil {
		return item, planErr("field %q must be a number", "day")
	}
	if day < 1 || day != math.Trunc(day) || day > math.MaxInt32 {
		return item, planErr("field %q must be a positive integer, got %v", "day", day)
	}
	item.Day = int(day)

	var err error
	if item.Location, err = stringField(fields, "location"); err != nil {
		return item, err
	}
	if item.Hotel, err = stringField(fields, "hotel"); err != nil {
		return item, err
	}
	if item.Activity, err = stringField(fields, "activity"); err != nil {
		return item, err
	}
	return item, nil
}

func stringField(fields map[string]json.RawMessage, key string) (string, error) {
	raw, ok := fields[key]
	if !ok {
		return "", planErr("missing field %q", key)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil || string(raw) == "null" {
		return "", planErr("field %q must be a string", key)
	}
	return s, nil
}

func planErr(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{utils.ErrPlanGenerationFailed}, args...)...)
}
