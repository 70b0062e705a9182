package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"tripsmith/internal/models/response_models"
	"tripsmith/internal/repositories"
	"tripsmith/pkg/metrics"
	"tripsmith/pkg/utils"
)

// MaxDestinations bounds the district filter's operand count.
const MaxDestinations = 10

type PlanTripInput struct {
	Budget       string
	Destinations string
	Days         string
}

type TripPlannerServiceInterface interface {
	PlanTrip(ctx context.Context, input PlanTripInput) (*response_models.TripPlanResult, error)
}

type TripPlannerService struct {
	resolver        NameResolverInterface
	spotRepo        repositories.SpotRepository
	generator       PlanGeneratorInterface
	enricher        ImageEnricherInterface
	maxDestinations int
	logger          *zap.Logger
}

func NewTripPlannerService(
	resolver NameResolverInterface,
	spotRepo repositories.SpotRepository,
	generator PlanGeneratorInterface,
	enricher ImageEnricherInterface,
	maxDestinations int,
	logger *zap.Logger,
) TripPlannerServiceInterface {
	if maxDestinations <= 0 || maxDestinations > MaxDestinations {
		maxDestinations = MaxDestinations
	}
	return &TripPlannerService{
		resolver:        resolver,
		spotRepo:        spotRepo,
		generator:       generator,
		enricher:        enricher,
		maxDestinations: maxDestinations,
		logger:          logger.Named("trip_planner"),
	}
}

func (s *TripPlannerService) PlanTrip(ctx context.Context, input PlanTripInput) (*response_models.TripPlanResult, error) {
	result, err := s.planTrip(ctx, input)
	metrics.ObservePlan(planOutcome(err))
	return result, err
}

func (s *TripPlannerService) planTrip(ctx context.Context, input PlanTripInput) (*response_models.TripPlanResult, error) {
	budget := strings.TrimSpace(input.Budget)
	days := strings.TrimSpace(input.Days)
	if budget == "" || days == "" || strings.TrimSpace(input.Destinations) == "" {
		return nil, fmt.Errorf("%w: budget, destinations and days are required", utils.ErrInvalidInput)
	}

	rawNames := SplitDestinations(input.Destinations)
	resolved := NormalizeDestinations(s.resolver.Resolve(ctx, rawNames), s.maxDestinations)
	if len(resolved) == 0 {
		return nil, fmt.Errorf("%w: no usable destination names", utils.ErrInvalidInput)
	}

	spots, err := s.spotRepo.FindByDistricts(ctx, resolved)
	if err != nil {
		s.logger.Error("spot lookup failed", zap.Strings("districts", resolved), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if len(spots) == 0 {
		s.logger.Info("no spots for destinations", zap.Strings("districts", resolved))
		return nil, utils.ErrNoSpotsFound
	}

	plan, err := s.generator.Synthesize(ctx, budget, days, resolved, spots)
	if err != nil {
		if !errors.Is(err, utils.ErrPlanGenerationFailed) {
			err = fmt.Errorf("%w: %w", utils.ErrPlanGenerationFailed, err)
		}
		return nil, err
	}

	enriched := s.enricher.Enrich(plan, spots)

	s.logger.Info("trip planned",
		zap.Strings("districts", resolved),
		zap.Int("spots", len(spots)),
		zap.Int("itinerary_items", len(enriched.Itinerary)),
	)

	return &response_models.TripPlanResult{
		ResolvedDestinations: resolved,
		SpotsFound:           len(spots),
		Plan:                 enriched,
	}, nil
}

// SplitDestinations splits comma separated input and trims each part.
// Empty parts are kept so the resolver sees the input as typed.
func SplitDestinations(input string) []string {
	parts := strings.Split(input, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// NormalizeDestinations title-cases each name (first rune upper, rest lower),
// drops blanks and keeps at most limit names.
func NormalizeDestinations(names []string, limit int) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(name)
		out = append(out, string(unicode.ToUpper(r))+strings.ToLower(name[size:]))
		if len(out) == limit {
			break
		}
	}
	return out
}

func planOutcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, utils.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, utils.ErrNoSpotsFound):
		return "no_data"
	case errors.Is(err, utils.ErrPlanGenerationFailed):
		return "generation_failed"
	default:
		return "error"
	}
}
