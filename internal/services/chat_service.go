package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"tripweaver/internal/models/request_models"
	"tripweaver/pkg/utils"
)

type ChatServiceInterface interface {
	Reply(ctx context.Context, req request_models.ChatRequest) (string, error)
}

type chatService struct {
	client utils.GenerativeClientInterface
}

func NewChatService(client utils.GenerativeClientInterface) ChatServiceInterface {
	return &chatService{client: client}
}

// Reply answers a traveler message, grounding the response in the itinerary
// carried in the request context when one is present.
func (s *chatService) Reply(ctx context.Context, req request_models.ChatRequest) (string, error) {
	if req.Message == "" {
		return "", utils.ErrInvalidInput
	}

	chatContext := req.Context
	if chatContext == nil {
		chatContext = &request_models.ChatContext{}
	}

	if !s.client.Enabled() {
		return offlineReply(req.Message, chatContext), nil
	}

	systemPrompt := "You are an enthusiastic travel companion. Reference the itinerary details when responding, offer actionable suggestions, and keep answers concise."
	if chatContext.Itinerary != nil && chatContext.Itinerary.Persona != "" {
		systemPrompt += fmt.Sprintf(" Adopt the tone of a %s guide.", chatContext.Itinerary.Persona)
	}

	userPayload, err := json.Marshal(map[string]any{
		"message": req.Message,
		"context": chatContext,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode chat payload: %w", err)
	}

	reply, err := s.client.GenerateReply(ctx, systemPrompt, string(userPayload))
	if err != nil {
		log.Printf("Chat reply generation failed, using offline reply: %v", err)
		return offlineReply(req.Message, chatContext), nil
	}
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return offlineReply(req.Message, chatContext), nil
	}
	return reply, nil
}

func offlineReply(message string, chatContext *request_models.ChatContext) string {
	persona := "Travel Companion"
	if chatContext.Itinerary != nil && chatContext.Itinerary.Persona != "" {
		persona = chatContext.Itinerary.Persona
	} else if chatContext.Persona != "" {
		persona = chatContext.Persona
	}

	scheduleNote := "Let me know if you'd like suggestions for your upcoming plans."
	if chatContext.Itinerary != nil {
		for _, day := range chatContext.Itinerary.DailyPlans {
			if len(day.Activities) > 0 {
				scheduleNote = fmt.Sprintf("Next on your itinerary for %s is %s.", day.Date, day.Activities[0].Name)
				break
			}
		}
	}

	return fmt.Sprintf("(%s) %s You asked: '%s'. This offline assistant is summarizing from your saved trip.", persona, scheduleNote, message)
}
