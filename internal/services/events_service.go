package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tripweaver/internal/models/response_models"
	"tripweaver/pkg/utils"
)

type EventsServiceInterface interface {
	FetchEvents(ctx context.Context, destination, startDate, endDate string) ([]response_models.Event, error)
}

type eventsService struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
}

func NewEventsService(apiKey string, httpClient *http.Client) EventsServiceInterface {
	return &eventsService{
		apiKey:     apiKey,
		httpClient: httpClient,
		baseURL:    "https://app.ticketmaster.com/discovery/v2/events.json",
	}
}

type ticketmasterResponse struct {
	Embedded struct {
		Events []struct {
			Name  string  `json:"name"`
			Info  *string `json:"info"`
			Note  *string `json:"pleaseNote"`
			URL   *string `json:"url"`
			Dates struct {
				Start struct {
					DateTime  string `json:"dateTime"`
					LocalDate string `json:"localDate"`
				} `json:"start"`
			} `json:"dates"`
			Embedded struct {
				Venues []struct {
					Name    *string `json:"name"`
					Address struct {
						Line1 *string `json:"line1"`
					} `json:"address"`
				} `json:"venues"`
			} `json:"_embedded"`
		} `json:"events"`
	} `json:"_embedded"`
}

// FetchEvents queries the Ticketmaster Discovery API for events inside the
// travel window and normalizes them. Without an API key it returns an empty
// slice so planning proceeds on defaults.
func (s *eventsService) FetchEvents(ctx context.Context, destination, startDate, endDate string) ([]response_models.Event, error) {
	if s.apiKey == "" {
		return []response_models.Event{}, nil
	}

	city := destination
	if destination != "" {
		city = strings.TrimSpace(strings.Split(destination, ",")[0])
	}

	query := url.Values{}
	query.Set("apikey", s.apiKey)
	query.Set("locale", "*")
	query.Set("sort", "date,asc")
	query.Set("size", "25")
	query.Set("city", city)
	if start := formatEventWindow(startDate, false); start != "" {
		query.Set("startDateTime", start)
	}
	if end := formatEventWindow(endDate, true); end != "" {
		query.Set("endDateTime", end)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.Printf("Event lookup request failed: %v", err)
		return nil, utils.ErrUpstreamUnavailable
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("Event lookup returned status %d", resp.StatusCode)
		return nil, utils.ErrUpstreamUnavailable
	}

	var payload ticketmasterResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("Failed to decode event payload: %v", err)
		return nil, utils.ErrUpstreamUnavailable
	}

	events := []response_models.Event{}
	for _, item := range payload.Embedded.Events {
		startTime := item.Dates.Start.DateTime
		if startTime == "" {
			startTime = item.Dates.Start.LocalDate
		}
		description := item.Info
		if description == nil || *description == "" {
			description = item.Note
		}
		event := response_models.Event{
			Title:       item.Name,
			Description: description,
			StartTime:   startTime,
			URL:         item.URL,
		}
		if len(item.Embedded.Venues) > 0 {
			venue := item.Embedded.Venues[0]
			event.Venue = venue.Name
			event.Address = venue.Address.Line1
		}
		events = append(events, event)
	}
	return events, nil
}

// formatEventWindow turns a plain ISO date into the zulu timestamp format the
// Discovery API expects. Values that already carry a time pass through.
func formatEventWindow(value string, end bool) string {
	if value == "" {
		return ""
	}
	parsed, err := time.Parse(utils.ISODateLayout, value)
	if err != nil {
		return value
	}
	timePart := "00:00:00"
	if end {
		timePart = "23:59:59"
	}
	return fmt.Sprintf("%sT%sZ", parsed.Format(utils.ISODateLayout), timePart)
}
