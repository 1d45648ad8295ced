package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildItineraryPrompt(t *testing.T) {
	prompt := BuildItineraryPrompt("Foodie", "Paris", "2024-06-01", "2024-06-02")
	assert.Equal(t,
		"You are an expert travel planner. Create a JSON itinerary that matches the user's "+
			"persona of Foodie for a trip to Paris between 2024-06-01 and 2024-06-02. "+
			"Balance activities across Eat, Explore, and Stay categories, and provide short summaries.",
		prompt)
}

func TestBuildItineraryPromptDefaultsPersona(t *testing.T) {
	prompt := BuildItineraryPrompt("", "Paris", "2024-06-01", "2024-06-02")
	assert.Contains(t, prompt, "persona of Adventurer")
}

func TestAdjustmentPrompt(t *testing.T) {
	prompt := AdjustmentPrompt("Base prompt.", "more food")
	assert.Equal(t, "Base prompt. Update the plan with this traveler feedback: more food.", prompt)
}

func TestItinerarySchemaShape(t *testing.T) {
	schema := ItinerarySchema()
	assert.ElementsMatch(t, []string{"destination", "summary", "daily_plans"}, schema.Required)

	days := schema.Properties["daily_plans"].Items
	assert.ElementsMatch(t, []string{"date", "activities"}, days.Required)

	activities := days.Properties["activities"].Items
	assert.ElementsMatch(t, []string{"name", "description", "category"}, activities.Required)
}
