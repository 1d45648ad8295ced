package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripweaver/pkg/utils"
)

func newTestWeatherService(t *testing.T, geoHandler, forecastHandler http.HandlerFunc) *weatherService {
	t.Helper()
	geoServer := httptest.NewServer(geoHandler)
	forecastServer := httptest.NewServer(forecastHandler)
	t.Cleanup(geoServer.Close)
	t.Cleanup(forecastServer.Close)

	return &weatherService{
		apiKey:      "test-key",
		httpClient:  geoServer.Client(),
		geoURL:      geoServer.URL,
		forecastURL: forecastServer.URL,
	}
}

func forecastEntry(day string, hour int, temp float64, condition string) map[string]any {
	parsed, _ := time.Parse(utils.ISODateLayout, day)
	return map[string]any{
		"dt":      parsed.Add(time.Duration(hour) * time.Hour).Unix(),
		"main":    map[string]any{"temp": temp},
		"weather": []map[string]any{{"main": condition}},
	}
}

func TestFetchForecastGroupsEntriesByDay(t *testing.T) {
	geo := func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Berlin", r.URL.Query().Get("q"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		json.NewEncoder(w).Encode([]map[string]any{{"lat": 52.52, "lon": 13.405}})
	}
	forecast := func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		json.NewEncoder(w).Encode(map[string]any{
			"list": []map[string]any{
				forecastEntry("2024-06-01", 9, 18.4, "Clouds"),
				forecastEntry("2024-06-01", 12, 22.6, "Rain"),
				forecastEntry("2024-06-01", 15, 20.1, "Rain"),
				forecastEntry("2024-06-02", 9, 15.0, "Clear"),
				// Outside the requested window, must not appear.
				forecastEntry("2024-06-05", 9, 30.0, "Clear"),
			},
		})
	}

	service := newTestWeatherService(t, geo, forecast)
	days, err := service.FetchForecast(context.Background(), "Berlin", "2024-06-01", "2024-06-02")
	require.NoError(t, err)

	require.Len(t, days, 2)
	assert.Equal(t, "2024-06-01", days[0].Date)
	assert.Equal(t, "Rain", days[0].Condition)
	assert.Equal(t, 23, days[0].TemperatureHigh)
	assert.Equal(t, 18, days[0].TemperatureLow)
	assert.Equal(t, "2024-06-02", days[1].Date)
	assert.Equal(t, "Clear", days[1].Condition)
	assert.Equal(t, 15, days[1].TemperatureHigh)
	assert.Equal(t, 15, days[1].TemperatureLow)
}

func TestFetchForecastWithoutKeyOrDestination(t *testing.T) {
	service := &weatherService{apiKey: "", httpClient: http.DefaultClient}

	days, err := service.FetchForecast(context.Background(), "Berlin", "2024-06-01", "2024-06-02")
	require.NoError(t, err)
	assert.Empty(t, days)

	service.apiKey = "test-key"
	days, err = service.FetchForecast(context.Background(), "", "2024-06-01", "2024-06-02")
	require.NoError(t, err)
	assert.Empty(t, days)
}

func TestFetchForecastUnknownDestination(t *testing.T) {
	geo := func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{})
	}
	forecast := func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("forecast must not be called when geocoding finds nothing")
	}

	service := newTestWeatherService(t, geo, forecast)
	days, err := service.FetchForecast(context.Background(), "Nowhereville", "2024-06-01", "2024-06-02")
	require.NoError(t, err)
	assert.Empty(t, days)
}

func TestFetchForecastUpstreamFailure(t *testing.T) {
	geo := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}
	forecast := func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "{}")
	}

	service := newTestWeatherService(t, geo, forecast)
	_, err := service.FetchForecast(context.Background(), "Berlin", "2024-06-01", "2024-06-02")
	assert.ErrorIs(t, err, utils.ErrUpstreamUnavailable)
}

func TestDominantCondition(t *testing.T) {
	assert.Equal(t, "Clear", dominantCondition(nil))
	assert.Equal(t, "Rain", dominantCondition([]string{"Clouds", "Rain", "Rain"}))
	// Ties resolve to the condition seen first.
	assert.Equal(t, "Clouds", dominantCondition([]string{"Clouds", "Rain"}))
}
