package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"tripweaver/internal/models/request_models"
	"tripweaver/internal/models/response_models"
	"tripweaver/pkg/utils"
)

type PlannerServiceInterface interface {
	PlanTrip(ctx context.Context, req request_models.PlanTripRequest, signals response_models.TripSignals) (response_models.Itinerary, error)
	CustomizeTrip(ctx context.Context, req request_models.CustomizeTripRequest, signals response_models.TripSignals) (response_models.Itinerary, error)
}

type plannerService struct {
	client utils.GenerativeClientInterface
}

func NewPlannerService(client utils.GenerativeClientInterface) PlannerServiceInterface {
	return &plannerService{client: client}
}

// PlanTrip builds an itinerary for the requested trip. With a configured
// generative client it asks the model for a structured plan and repairs any
// gaps from the request; otherwise, or when the model output cannot be
// parsed, it falls back to the deterministic synthesizer.
func (s *plannerService) PlanTrip(ctx context.Context, req request_models.PlanTripRequest, signals response_models.TripSignals) (response_models.Itinerary, error) {
	if req.Destination == "" {
		return response_models.Itinerary{}, utils.ErrInvalidInput
	}

	if !s.client.Enabled() {
		return synthesizeItinerary(req.Destination, req.StartDate, req.EndDate, req.Persona, signals), nil
	}

	userPayload, err := json.Marshal(map[string]any{
		"trip_preferences": req,
		"weather":          signals.Weather,
		"events":           signals.Events,
	})
	if err != nil {
		return response_models.Itinerary{}, fmt.Errorf("failed to encode planning payload: %w", err)
	}

	systemPrompt := utils.BuildItineraryPrompt(req.Persona, req.Destination, req.StartDate, req.EndDate)
	raw, err := s.client.GenerateItinerary(ctx, systemPrompt, string(userPayload))
	if err != nil {
		log.Printf("Itinerary generation failed, using offline synthesis: %v", err)
		return synthesizeItinerary(req.Destination, req.StartDate, req.EndDate, req.Persona, signals), nil
	}

	itinerary, ok := parseItinerary(raw)
	if !ok {
		log.Printf("Could not parse generated itinerary, using offline synthesis")
		return synthesizeItinerary(req.Destination, req.StartDate, req.EndDate, req.Persona, signals), nil
	}

	if itinerary.Destination == "" {
		itinerary.Destination = req.Destination
	}
	if itinerary.Persona == "" {
		itinerary.Persona = req.Persona
	}
	if itinerary.StartDate == "" {
		itinerary.StartDate = req.StartDate
	}
	if itinerary.EndDate == "" {
		itinerary.EndDate = req.EndDate
	}
	if len(signals.Events) > 0 {
		itinerary.Summary = appendSentence(itinerary.Summary, fmt.Sprintf("Includes %d highlighted events.", len(signals.Events)))
	}
	return itinerary, nil
}

// CustomizeTrip reworks an existing itinerary around traveler feedback. The
// input itinerary is never mutated; offline adjustment operates on a clone.
func (s *plannerService) CustomizeTrip(ctx context.Context, req request_models.CustomizeTripRequest, signals response_models.TripSignals) (response_models.Itinerary, error) {
	base := req.Itinerary
	if base.Destination == "" {
		base.Destination = req.Destination
	}
	if base.StartDate == "" {
		base.StartDate = req.StartDate
	}
	if base.EndDate == "" {
		base.EndDate = req.EndDate
	}

	if !s.client.Enabled() {
		return adjustOffline(base, req.Feedback, ""), nil
	}

	userPayload, err := json.Marshal(map[string]any{
		"current_itinerary": base,
		"feedback":          req.Feedback,
		"weather":           signals.Weather,
		"events":            signals.Events,
	})
	if err != nil {
		return response_models.Itinerary{}, fmt.Errorf("failed to encode customization payload: %w", err)
	}

	systemPrompt := utils.AdjustmentPrompt(
		utils.BuildItineraryPrompt(base.Persona, base.Destination, base.StartDate, base.EndDate),
		req.Feedback,
	)
	raw, err := s.client.GenerateItinerary(ctx, systemPrompt, string(userPayload))
	if err != nil {
		log.Printf("Itinerary customization failed, using offline adjustment: %v", err)
		return adjustOffline(base, req.Feedback, ""), nil
	}

	adjusted, ok := parseItinerary(raw)
	if !ok {
		log.Printf("Could not parse customized itinerary, using offline adjustment")
		return adjustOffline(base, req.Feedback, ""), nil
	}

	if adjusted.Destination == "" {
		adjusted.Destination = base.Destination
	}
	if adjusted.Persona == "" {
		adjusted.Persona = base.Persona
	}
	if adjusted.StartDate == "" {
		adjusted.StartDate = base.StartDate
	}
	if adjusted.EndDate == "" {
		adjusted.EndDate = base.EndDate
	}
	if adjusted.Summary == "" {
		adjusted.Summary = base.Summary
	}
	adjusted.Summary = appendSentence(adjusted.Summary, fmt.Sprintf("Feedback applied: %s.", req.Feedback))
	return adjusted, nil
}

// parseItinerary decodes model output into an itinerary. A plan without any
// daily entries is treated as unusable so callers can fall back.
func parseItinerary(raw string) (response_models.Itinerary, bool) {
	var itinerary response_models.Itinerary
	if err := json.Unmarshal([]byte(utils.CleanJSONResponse(raw)), &itinerary); err != nil {
		return response_models.Itinerary{}, false
	}
	if len(itinerary.DailyPlans) == 0 {
		return response_models.Itinerary{}, false
	}
	return itinerary, true
}
