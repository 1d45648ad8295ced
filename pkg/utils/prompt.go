package utils

import (
	"fmt"

	"github.com/sashabaranov/go-openai/jsonschema"
)

// ItineraryFunctionName is the forced function-call name the generative backend
// must respond with when producing a structured itinerary.
const ItineraryFunctionName = "create_itinerary"

// BuildItineraryPrompt creates the base system prompt for itinerary generation.
// Pure and deterministic; persona defaults to "Adventurer" when empty.
func BuildItineraryPrompt(persona, destination, startDate, endDate string) string {
	if persona == "" {
		persona = "Adventurer"
	}
	return fmt.Sprintf(
		"You are an expert travel planner. Create a JSON itinerary that matches the user's "+
			"persona of %s for a trip to %s between %s and %s. "+
			"Balance activities across Eat, Explore, and Stay categories, and provide short summaries.",
		persona, destination, startDate, endDate,
	)
}

// AdjustmentPrompt extends a base itinerary prompt with traveler feedback.
func AdjustmentPrompt(basePrompt, feedback string) string {
	return basePrompt + fmt.Sprintf(" Update the plan with this traveler feedback: %s.", feedback)
}

// ItinerarySchema describes the structured output the backend is constrained to.
func ItinerarySchema() jsonschema.Definition {
	activity := jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"name":           {Type: jsonschema.String},
			"description":    {Type: jsonschema.String},
			"category":       {Type: jsonschema.String},
			"location":       {Type: jsonschema.String},
			"start_time":     {Type: jsonschema.String},
			"end_time":       {Type: jsonschema.String},
			"weather_advice": {Type: jsonschema.String},
		},
		Required: []string{"name", "description", "category"},
	}

	dayPlan := jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"date":       {Type: jsonschema.String},
			"theme":      {Type: jsonschema.String},
			"activities": {Type: jsonschema.Array, Items: &activity},
		},
		Required: []string{"date", "activities"},
	}

	return jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"destination": {Type: jsonschema.String},
			"summary":     {Type: jsonschema.String},
			"daily_plans": {Type: jsonschema.Array, Items: &dayPlan},
		},
		Required: []string{"destination", "summary", "daily_plans"},
	}
}
