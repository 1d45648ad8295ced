package services

import (
	"fmt"
	"strings"
	"time"

	"tripweaver/internal/models/response_models"
	"tripweaver/pkg/utils"
)

// The offline synthesizer. Produces a deterministic itinerary from the trip
// request plus whatever weather and event signals were gathered, so the API
// stays fully usable without generative credentials.

func synthesizeItinerary(destination, startDate, endDate, persona string, signals response_models.TripSignals) response_models.Itinerary {
	if destination == "" {
		destination = "Destination"
	}
	if persona == "" {
		persona = "Adventurer"
	}

	start := utils.CoerceDate(startDate, time.Time{})
	end := utils.CoerceDate(endDate, start.AddDate(0, 0, 2))
	if end.Before(start) {
		end = start
	}

	weatherByDate := make(map[string]response_models.WeatherDay, len(signals.Weather))
	for _, day := range signals.Weather {
		weatherByDate[day.Date] = day
	}

	eventsByDate := make(map[string][]response_models.Event)
	for _, event := range signals.Events {
		if event.StartTime == "" {
			continue
		}
		key := event.StartTime
		if len(key) > 10 {
			key = key[:10]
		}
		eventsByDate[key] = append(eventsByDate[key], event)
	}

	var dailyPlans []response_models.DayPlan
	for index, current := range utils.DateRange(start, end) {
		dateStr := utils.FormatISODate(current)
		weatherEntry, hasWeather := weatherByDate[dateStr]

		var activities []response_models.Activity
		for _, event := range eventsByDate[dateStr] {
			activities = append(activities, eventActivity(event))
		}

		activities = append(activities, defaultActivities(destination, persona, dateStr, weatherEntry, hasWeather)...)

		if hasWeather && strings.HasPrefix(strings.ToLower(weatherEntry.Condition), "rain") {
			activities = append(activities, response_models.Activity{
				Name:          "Cozy cultural afternoon",
				Description:   "Shift outdoor plans indoors with museums, markets, or cafes.",
				Category:      "Explore",
				Location:      strPtr(destination),
				StartTime:     strPtr(dateStr + "T15:00:00"),
				EndTime:       strPtr(dateStr + "T17:00:00"),
				WeatherAdvice: weatherTip(weatherEntry.Condition),
			})
		}

		dailyPlans = append(dailyPlans, response_models.DayPlan{
			Date:       dateStr,
			Theme:      strPtr(personaTheme(persona, index)),
			Activities: activities,
		})
	}

	summaryParts := []string{
		fmt.Sprintf("%s itinerary for %s spanning %s to %s.", persona, destination, utils.FormatISODate(start), utils.FormatISODate(end)),
	}
	if len(signals.Events) > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("Includes %d featured event(s) found for your travel window.", len(signals.Events)))
	}
	if len(signals.Weather) > 0 {
		summaryParts = append(summaryParts, "Weather insights are woven into daily suggestions.")
	}

	return response_models.Itinerary{
		Destination: destination,
		StartDate:   utils.FormatISODate(start),
		EndDate:     utils.FormatISODate(end),
		Persona:     persona,
		Summary:     strings.Join(summaryParts, " "),
		DailyPlans:  dailyPlans,
	}
}

// adjustOffline applies keyword-driven tweaks to a copy of the itinerary. The
// input itinerary is never mutated.
func adjustOffline(itinerary response_models.Itinerary, feedback, contextPersona string) response_models.Itinerary {
	updated := itinerary.Clone()

	persona := updated.Persona
	if persona == "" {
		persona = contextPersona
	}
	if persona == "" {
		persona = "Traveler"
	}

	feedbackLower := strings.ToLower(feedback)
	for dayIdx := range updated.DailyPlans {
		day := &updated.DailyPlans[dayIdx]
		if strings.Contains(feedbackLower, "rest") && len(day.Activities) > 0 {
			day.Activities = insertActivity(day.Activities, 1, response_models.Activity{
				Name:        "Intentional downtime",
				Description: "Set aside time to recharge and enjoy the accommodation amenities.",
				Category:    "Stay",
				Location:    strPtr(updated.Destination),
				StartTime:   strPtr(day.Date + "T14:00:00"),
				EndTime:     strPtr(day.Date + "T16:00:00"),
			})
		}
		if strings.Contains(feedbackLower, "food") {
			day.Activities = append(day.Activities, response_models.Activity{
				Name:        "Local food crawl",
				Description: "Discover neighborhood eateries curated for food lovers.",
				Category:    "Eat",
				Location:    strPtr(updated.Destination),
				StartTime:   strPtr(day.Date + "T17:30:00"),
				EndTime:     strPtr(day.Date + "T19:00:00"),
			})
		}
		if strings.Contains(feedbackLower, "adventure") {
			day.Activities = insertActivity(day.Activities, 0, response_models.Activity{
				Name:        "Thrill-seeking highlight",
				Description: "Add an outdoor adventure tailored to adrenaline seekers.",
				Category:    "Explore",
				Location:    strPtr(updated.Destination),
				StartTime:   strPtr(day.Date + "T08:00:00"),
				EndTime:     strPtr(day.Date + "T10:00:00"),
			})
		}
	}

	modifier := fmt.Sprintf("Persona focus remains %s.", persona)
	if feedback != "" {
		modifier = fmt.Sprintf("Feedback applied: %s. Persona focus remains %s.", feedback, persona)
	}
	updated.Summary = appendSentence(updated.Summary, modifier)
	return *updated
}

// weatherTip maps a forecast condition onto a short piece of advice, or nil
// when the condition is unrecognized.
func weatherTip(condition string) *string {
	lowered := strings.ToLower(condition)
	switch {
	case strings.Contains(lowered, "rain"):
		return strPtr("Expect showers—plan indoor highlights or carry a light jacket.")
	case strings.Contains(lowered, "snow"):
		return strPtr("Snow is possible, leave extra transit time and wear warm layers.")
	case strings.Contains(lowered, "cloud"):
		return strPtr("Cloud cover is expected; perfect for museums or relaxed walks.")
	case strings.Contains(lowered, "clear"):
		return strPtr("Clear skies make it ideal for outdoor adventures.")
	default:
		return nil
	}
}

func eventActivity(event response_models.Event) response_models.Activity {
	name := event.Title
	if name == "" {
		name = "Featured Event"
	}
	description := "Highlighted experience during your trip."
	if event.Description != nil && *event.Description != "" {
		description = *event.Description
	}
	return response_models.Activity{
		Name:        name,
		Description: description,
		Category:    "Experience",
		Location:    event.Venue,
		StartTime:   strPtr(event.StartTime),
	}
}

func personaTheme(persona string, dayIndex int) string {
	adjective := "Adventurous"
	if fields := strings.Fields(persona); len(fields) > 0 {
		adjective = fields[0]
	}
	return fmt.Sprintf("%s day %d", adjective, dayIndex+1)
}

func defaultActivities(destination, persona, dateStr string, weatherEntry response_models.WeatherDay, hasWeather bool) []response_models.Activity {
	var tip *string
	if hasWeather {
		tip = weatherTip(weatherEntry.Condition)
	}

	return []response_models.Activity{
		{
			Name:          fmt.Sprintf("Morning discovery walk in %s", destination),
			Description:   fmt.Sprintf("Guided exploration of %s's must-see highlights tailored for %s travelers.", destination, strings.ToLower(persona)),
			Category:      "Explore",
			Location:      strPtr(destination),
			StartTime:     strPtr(dateStr + "T09:00:00"),
			EndTime:       strPtr(dateStr + "T12:00:00"),
			WeatherAdvice: tip,
		},
		{
			Name:          "Culinary immersion",
			Description:   fmt.Sprintf("Sample beloved local flavors across %s.", destination),
			Category:      "Eat",
			Location:      strPtr(destination + " food district"),
			StartTime:     strPtr(dateStr + "T13:00:00"),
			EndTime:       strPtr(dateStr + "T15:00:00"),
			WeatherAdvice: tip,
		},
		{
			Name:          "Evening wind-down",
			Description:   fmt.Sprintf("Unwind with a handpicked evening suggestion in %s.", destination),
			Category:      "Stay",
			Location:      strPtr(destination + " boutique stay"),
			StartTime:     strPtr(dateStr + "T19:00:00"),
			EndTime:       strPtr(dateStr + "T21:00:00"),
			WeatherAdvice: tip,
		},
	}
}

func insertActivity(activities []response_models.Activity, index int, activity response_models.Activity) []response_models.Activity {
	if index > len(activities) {
		index = len(activities)
	}
	activities = append(activities, response_models.Activity{})
	copy(activities[index+1:], activities[index:])
	activities[index] = activity
	return activities
}

func appendSentence(existing, sentence string) string {
	if existing == "" {
		return sentence
	}
	return existing + " " + sentence
}

func strPtr(s string) *string {
	return &s
}
