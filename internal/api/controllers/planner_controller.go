package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripweaver/internal/models/request_models"
	"tripweaver/internal/models/response_models"
	"tripweaver/internal/services"
	"tripweaver/pkg/utils"
)

type PlannerController struct {
	plannerService services.PlannerServiceInterface
	weatherService services.WeatherServiceInterface
	eventsService  services.EventsServiceInterface
}

func NewPlannerController(
	plannerService services.PlannerServiceInterface,
	weatherService services.WeatherServiceInterface,
	eventsService services.EventsServiceInterface,
) *PlannerController {
	return &PlannerController{
		plannerService: plannerService,
		weatherService: weatherService,
		eventsService:  eventsService,
	}
}

// PlanTrip godoc
// @Summary Generate a trip itinerary
// @Description Build a day-by-day itinerary enriched with weather and event data
// @Tags Planner
// @Accept json
// @Produce json
// @Param request body request_models.PlanTripRequest true "Trip preferences"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /plan-trip [post]
func (p *PlannerController) PlanTrip(c *gin.Context) {
	var req request_models.PlanTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if req.Destination == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination is required")
		return
	}

	signals := p.gatherSignals(c, req.Destination, req.StartDate, req.EndDate)

	itinerary, err := p.plannerService.PlanTrip(c.Request.Context(), req, signals)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary generated successfully")
}

// CustomizeTrip godoc
// @Summary Customize an existing itinerary
// @Description Rework an itinerary around traveler feedback
// @Tags Planner
// @Accept json
// @Produce json
// @Param request body request_models.CustomizeTripRequest true "Itinerary and feedback"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /customize-trip [post]
func (p *PlannerController) CustomizeTrip(c *gin.Context) {
	var req request_models.CustomizeTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	destination := req.Itinerary.Destination
	if destination == "" {
		destination = req.Destination
	}
	startDate := req.Itinerary.StartDate
	if startDate == "" {
		startDate = req.StartDate
	}
	endDate := req.Itinerary.EndDate
	if endDate == "" {
		endDate = req.EndDate
	}

	signals := p.gatherSignals(c, destination, startDate, endDate)

	itinerary, err := p.plannerService.CustomizeTrip(c.Request.Context(), req, signals)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary customized successfully")
}

// gatherSignals collects weather and event context for the trip window.
// Provider failures are logged and leave the corresponding slice empty;
// planning never fails because an upstream was down.
func (p *PlannerController) gatherSignals(c *gin.Context, destination, startDate, endDate string) response_models.TripSignals {
	signals := response_models.TripSignals{
		Weather: []response_models.WeatherDay{},
		Events:  []response_models.Event{},
	}
	if destination == "" {
		return signals
	}

	weather, err := p.weatherService.FetchForecast(c.Request.Context(), destination, startDate, endDate)
	if err != nil {
		log.Printf("Weather lookup failed: %v", err)
	} else if weather != nil {
		signals.Weather = weather
	}

	events, err := p.eventsService.FetchEvents(c.Request.Context(), destination, startDate, endDate)
	if err != nil {
		log.Printf("Event lookup failed: %v", err)
	} else if events != nil {
		signals.Events = events
	}

	return signals
}
