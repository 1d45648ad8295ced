package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"net/url"
	"time"

	"tripweaver/internal/models/response_models"
	"tripweaver/pkg/utils"
)

type WeatherServiceInterface interface {
	FetchForecast(ctx context.Context, destination, startDate, endDate string) ([]response_models.WeatherDay, error)
}

type weatherService struct {
	apiKey      string
	httpClient  *http.Client
	geoURL      string
	forecastURL string
}

func NewWeatherService(apiKey string, httpClient *http.Client) WeatherServiceInterface {
	return &weatherService{
		apiKey:      apiKey,
		httpClient:  httpClient,
		geoURL:      "https://api.openweathermap.org/geo/1.0/direct",
		forecastURL: "https://api.openweathermap.org/data/2.5/forecast",
	}
}

type forecastResponse struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp *float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Main string `json:"main"`
		} `json:"weather"`
	} `json:"list"`
}

type geocodeEntry struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// FetchForecast geocodes the destination, pulls the five day forecast and
// collapses the three-hourly entries into one normalized record per trip day.
// Days outside the forecast horizon are simply absent from the result.
func (s *weatherService) FetchForecast(ctx context.Context, destination, startDate, endDate string) ([]response_models.WeatherDay, error) {
	if s.apiKey == "" || destination == "" {
		return []response_models.WeatherDay{}, nil
	}

	start := utils.CoerceDate(startDate, time.Time{})
	end := utils.CoerceDate(endDate, start.AddDate(0, 0, 4))
	if end.Before(start) {
		end = start
	}

	lat, lon, found, err := s.geocode(ctx, destination)
	if err != nil {
		log.Printf("Failed to geocode destination %s: %v", destination, err)
		return nil, utils.ErrUpstreamUnavailable
	}
	if !found {
		return []response_models.WeatherDay{}, nil
	}

	query := url.Values{}
	query.Set("lat", fmt.Sprintf("%f", lat))
	query.Set("lon", fmt.Sprintf("%f", lon))
	query.Set("appid", s.apiKey)
	query.Set("units", "metric")

	var forecast forecastResponse
	if err := s.getJSON(ctx, s.forecastURL+"?"+query.Encode(), &forecast); err != nil {
		log.Printf("Failed to fetch weather forecast: %v", err)
		return nil, utils.ErrUpstreamUnavailable
	}

	type bucket struct {
		temps      []float64
		conditions []string
	}
	grouped := make(map[string]*bucket)
	for _, entry := range forecast.List {
		day := time.Unix(entry.Dt, 0).UTC().Format(utils.ISODateLayout)
		b := grouped[day]
		if b == nil {
			b = &bucket{}
			grouped[day] = b
		}
		if entry.Main.Temp != nil {
			b.temps = append(b.temps, *entry.Main.Temp)
		}
		if len(entry.Weather) > 0 && entry.Weather[0].Main != "" {
			b.conditions = append(b.conditions, entry.Weather[0].Main)
		}
	}

	results := []response_models.WeatherDay{}
	for _, current := range utils.DateRange(start, end) {
		day := utils.FormatISODate(current)
		b := grouped[day]
		if b == nil || len(b.temps) == 0 {
			continue
		}
		high, low := b.temps[0], b.temps[0]
		for _, temp := range b.temps[1:] {
			if temp > high {
				high = temp
			}
			if temp < low {
				low = temp
			}
		}
		results = append(results, response_models.WeatherDay{
			Date:            day,
			Condition:       dominantCondition(b.conditions),
			TemperatureHigh: int(math.Round(high)),
			TemperatureLow:  int(math.Round(low)),
		})
	}
	return results, nil
}

func (s *weatherService) geocode(ctx context.Context, destination string) (lat, lon float64, found bool, err error) {
	query := url.Values{}
	query.Set("q", destination)
	query.Set("limit", "1")
	query.Set("appid", s.apiKey)

	var entries []geocodeEntry
	if err := s.getJSON(ctx, s.geoURL+"?"+query.Encode(), &entries); err != nil {
		return 0, 0, false, err
	}
	if len(entries) == 0 {
		return 0, 0, false, nil
	}
	return entries[0].Lat, entries[0].Lon, true, nil
}

func (s *weatherService) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// dominantCondition picks the most frequent condition, preferring the one
// seen first on ties. An empty slice reads as clear weather.
func dominantCondition(conditions []string) string {
	if len(conditions) == 0 {
		return "Clear"
	}
	counts := make(map[string]int, len(conditions))
	for _, condition := range conditions {
		counts[condition]++
	}
	best := conditions[0]
	for _, condition := range conditions {
		if counts[condition] > counts[best] {
			best = condition
		}
	}
	return best
}
