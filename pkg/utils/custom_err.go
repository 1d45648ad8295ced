package utils

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrAIDisabled          = errors.New("generative backend not configured")
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")
	ErrItineraryNotFound   = errors.New("itinerary not found")
	ErrDatabaseError       = errors.New("database error")
)
