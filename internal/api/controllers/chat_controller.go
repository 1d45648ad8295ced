package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripweaver/internal/models/request_models"
	"tripweaver/internal/models/response_models"
	"tripweaver/internal/services"
	"tripweaver/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{chatService: chatService}
}

// Chat godoc
// @Summary Chat with the trip assistant
// @Description Answer a traveler question grounded in their itinerary
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body request_models.ChatRequest true "Message and optional itinerary context"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /chat [post]
func (ch *ChatController) Chat(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if req.Message == "" {
		utils.RespondError(c, http.StatusBadRequest, "Message is required")
		return
	}

	reply, err := ch.chatService.Reply(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.ChatReply{Message: reply}, "Reply generated successfully")
}
