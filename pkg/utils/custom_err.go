package utils

import "errors"

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrNoSpotsFound         = errors.New("no tourist spots found for destinations")
	ErrPlanGenerationFailed = errors.New("could not generate a travel plan")
	ErrDatabaseError        = errors.New("database error")
	ErrSpotNotFound         = errors.New("tourist spot not found")
	ErrRequestInFlight      = errors.New("a plan request is already in progress")

	ErrMissingAPIKey      = errors.New("generative model API key is not configured")
	ErrEmptyModelResponse = errors.New("generative model returned no content")
)
