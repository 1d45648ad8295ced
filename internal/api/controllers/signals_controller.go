package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tripweaver/internal/models/response_models"
	"tripweaver/internal/services"
	"tripweaver/pkg/utils"
)

type SignalsController struct {
	weatherService services.WeatherServiceInterface
	eventsService  services.EventsServiceInterface
	mapsService    services.MapsServiceInterface
}

func NewSignalsController(
	weatherService services.WeatherServiceInterface,
	eventsService services.EventsServiceInterface,
	mapsService services.MapsServiceInterface,
) *SignalsController {
	return &SignalsController{
		weatherService: weatherService,
		eventsService:  eventsService,
		mapsService:    mapsService,
	}
}

// GetWeather godoc
// @Summary Fetch the forecast for a destination
// @Tags Signals
// @Produce json
// @Param destination query string true "Destination name"
// @Param start_date query string false "Trip start date"
// @Param end_date query string false "Trip end date"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /weather [get]
func (s *SignalsController) GetWeather(c *gin.Context) {
	destination := c.Query("destination")
	if destination == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination is required")
		return
	}

	weather, err := s.weatherService.FetchForecast(c.Request.Context(), destination, c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		log.Printf("Weather lookup failed: %v", err)
		weather = []response_models.WeatherDay{}
	}
	if weather == nil {
		weather = []response_models.WeatherDay{}
	}

	utils.RespondSuccess(c, weather, "Forecast fetched successfully")
}

// GetEvents godoc
// @Summary Fetch live events for a destination
// @Tags Signals
// @Produce json
// @Param destination query string true "Destination name"
// @Param start_date query string false "Trip start date"
// @Param end_date query string false "Trip end date"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /events [get]
func (s *SignalsController) GetEvents(c *gin.Context) {
	destination := c.Query("destination")
	if destination == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination is required")
		return
	}

	events, err := s.eventsService.FetchEvents(c.Request.Context(), destination, c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		log.Printf("Event lookup failed: %v", err)
		events = []response_models.Event{}
	}
	if events == nil {
		events = []response_models.Event{}
	}

	utils.RespondSuccess(c, events, "Events fetched successfully")
}

// GetMap godoc
// @Summary Fetch map pins for a destination
// @Tags Signals
// @Produce json
// @Param destination query string true "Destination name"
// @Param categories query string false "Comma separated categories"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /map [get]
func (s *SignalsController) GetMap(c *gin.Context) {
	destination := c.Query("destination")
	if destination == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination is required")
		return
	}

	var categories []string
	if raw := c.Query("categories"); raw != "" {
		for _, category := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(category); trimmed != "" {
				categories = append(categories, trimmed)
			}
		}
	}

	pins, err := s.mapsService.FetchMapPins(c.Request.Context(), destination, categories)
	if err != nil {
		log.Printf("Map lookup failed: %v", err)
		pins = []response_models.MapPin{}
	}
	if pins == nil {
		pins = []response_models.MapPin{}
	}

	utils.RespondSuccess(c, pins, "Map pins fetched successfully")
}
