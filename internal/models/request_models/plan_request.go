package request_models

import "tripweaver/internal/models/response_models"

type PlanTripRequest struct {
	Destination string `json:"destination"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Persona     string `json:"persona"`
}

// CustomizeTripRequest carries the itinerary to adjust plus free-text
// feedback. The top-level trip fields mirror the itinerary's and act as
// fallbacks when the embedded itinerary omits them.
type CustomizeTripRequest struct {
	Feedback    string                    `json:"feedback"`
	Itinerary   response_models.Itinerary `json:"itinerary"`
	Destination string                    `json:"destination"`
	StartDate   string                    `json:"start_date"`
	EndDate     string                    `json:"end_date"`
}

type ChatContext struct {
	Itinerary *response_models.Itinerary `json:"itinerary,omitempty"`
	Persona   string                     `json:"persona,omitempty"`
}

type ChatRequest struct {
	Message string       `json:"message"`
	Context *ChatContext `json:"context"`
}

type SaveTripRequest struct {
	UserID    string                    `json:"user_id"`
	Itinerary response_models.Itinerary `json:"itinerary"`
}
