package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripweaver/internal/services"
	"tripweaver/pkg/middleware"
	"tripweaver/pkg/utils"
)

func newOfflineRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	client, err := utils.NewGenerativeClient("openai", "", "")
	require.NoError(t, err)

	httpClient := http.DefaultClient
	plannerService := services.NewPlannerService(client)
	weatherService := services.NewWeatherService("", httpClient)
	eventsService := services.NewEventsService("", httpClient)

	plannerController := NewPlannerController(plannerService, weatherService, eventsService)
	chatController := NewChatController(services.NewChatService(client))

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	api := r.Group("/api")
	api.POST("/plan-trip", plannerController.PlanTrip)
	api.POST("/customize-trip", plannerController.CustomizeTrip)
	api.POST("/chat", chatController.Chat)
	return r
}

func performJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	encoded, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(encoded))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)
	return recorder
}

func TestPlanTripEndpoint(t *testing.T) {
	r := newOfflineRouter(t)

	recorder := performJSON(t, r, http.MethodPost, "/api/plan-trip", map[string]any{
		"destination": "Paris",
		"start_date":  "2024-06-01",
		"end_date":    "2024-06-02",
		"persona":     "Foodie",
	})

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.NotEmpty(t, recorder.Header().Get("X-Trace-ID"))

	var response utils.APIResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "success", response.Status)
	assert.NotEmpty(t, response.TraceID)

	data, ok := response.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Paris", data["destination"])
	plans, ok := data["daily_plans"].([]any)
	require.True(t, ok)
	assert.Len(t, plans, 2)
}

func TestPlanTripEndpointRequiresDestination(t *testing.T) {
	r := newOfflineRouter(t)

	recorder := performJSON(t, r, http.MethodPost, "/api/plan-trip", map[string]any{
		"start_date": "2024-06-01",
	})

	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var response utils.APIResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "error", response.Status)
	assert.Equal(t, "Destination is required", response.Message)
}

func TestCustomizeTripEndpoint(t *testing.T) {
	r := newOfflineRouter(t)

	recorder := performJSON(t, r, http.MethodPost, "/api/customize-trip", map[string]any{
		"feedback": "food",
		"itinerary": map[string]any{
			"destination": "Tokyo",
			"start_date":  "2024-10-01",
			"end_date":    "2024-10-01",
			"persona":     "Foodie",
			"summary":     "Base plan.",
			"daily_plans": []map[string]any{
				{"date": "2024-10-01", "activities": []map[string]any{
					{"name": "Temple walk", "description": "Morning stroll.", "category": "Explore"},
				}},
			},
		},
	})

	require.Equal(t, http.StatusOK, recorder.Code)

	var response utils.APIResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "success", response.Status)

	data, ok := response.Data.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, data["summary"], "Feedback applied: food.")
}

func TestChatEndpointRequiresMessage(t *testing.T) {
	r := newOfflineRouter(t)

	recorder := performJSON(t, r, http.MethodPost, "/api/chat", map[string]any{})
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestChatEndpointOffline(t *testing.T) {
	r := newOfflineRouter(t)

	recorder := performJSON(t, r, http.MethodPost, "/api/chat", map[string]any{
		"message": "Any tips?",
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var response utils.APIResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	data, ok := response.Data.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, data["message"], "This offline assistant is summarizing from your saved trip.")
}
