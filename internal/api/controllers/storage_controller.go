package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripweaver/internal/models/request_models"
	"tripweaver/internal/services"
	"tripweaver/pkg/utils"
)

type StorageController struct {
	storageService services.StorageServiceInterface
}

func NewStorageController(storageService services.StorageServiceInterface) *StorageController {
	return &StorageController{storageService: storageService}
}

// SaveTrip godoc
// @Summary Save an itinerary
// @Description Persist an itinerary for later retrieval
// @Tags Storage
// @Accept json
// @Produce json
// @Param request body request_models.SaveTripRequest true "Itinerary to save"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /save [post]
func (s *StorageController) SaveTrip(c *gin.Context) {
	var req request_models.SaveTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userID := c.GetString("user_id")
	if userID == "" {
		userID = req.UserID
	}

	id, err := s.storageService.SaveItinerary(c.Request.Context(), userID, req.Itinerary)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": id}, "Itinerary saved successfully")
}

// ListTrips godoc
// @Summary List saved itineraries for a user
// @Tags Storage
// @Produce json
// @Param userId path string true "User identifier"
// @Success 200 {object} utils.APIResponse
// @Router /trips/{userId} [get]
func (s *StorageController) ListTrips(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		utils.RespondError(c, http.StatusBadRequest, "User id is required")
		return
	}

	trips, err := s.storageService.ListItineraries(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Itineraries fetched successfully")
}
