package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripweaver/internal/models/request_models"
	"tripweaver/pkg/utils"
)

func TestChatReplyRequiresMessage(t *testing.T) {
	service := NewChatService(&stubGenerativeClient{})

	_, err := service.Reply(context.Background(), request_models.ChatRequest{})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestChatReplyOfflineWithItinerary(t *testing.T) {
	service := NewChatService(&stubGenerativeClient{enabled: false})

	itinerary := baseItinerary()
	reply, err := service.Reply(context.Background(), request_models.ChatRequest{
		Message: "What should I do first?",
		Context: &request_models.ChatContext{Itinerary: &itinerary},
	})
	require.NoError(t, err)

	assert.Equal(t,
		"(Foodie) Next on your itinerary for 2024-10-01 is Tsukiji breakfast. "+
			"You asked: 'What should I do first?'. This offline assistant is summarizing from your saved trip.",
		reply)
}

func TestChatReplyOfflineWithoutItinerary(t *testing.T) {
	service := NewChatService(&stubGenerativeClient{enabled: false})

	reply, err := service.Reply(context.Background(), request_models.ChatRequest{
		Message: "Any tips?",
	})
	require.NoError(t, err)

	assert.Equal(t,
		"(Travel Companion) Let me know if you'd like suggestions for your upcoming plans. "+
			"You asked: 'Any tips?'. This offline assistant is summarizing from your saved trip.",
		reply)
}

func TestChatReplyOfflinePersonaFromContext(t *testing.T) {
	service := NewChatService(&stubGenerativeClient{enabled: false})

	reply, err := service.Reply(context.Background(), request_models.ChatRequest{
		Message: "Hello",
		Context: &request_models.ChatContext{Persona: "Backpacker"},
	})
	require.NoError(t, err)
	assert.Contains(t, reply, "(Backpacker)")
}

func TestChatReplyOfflineSkipsEmptyDays(t *testing.T) {
	service := NewChatService(&stubGenerativeClient{enabled: false})

	itinerary := baseItinerary()
	itinerary.DailyPlans[0].Activities = nil

	reply, err := service.Reply(context.Background(), request_models.ChatRequest{
		Message: "Next up?",
		Context: &request_models.ChatContext{Itinerary: &itinerary},
	})
	require.NoError(t, err)
	assert.Contains(t, reply, "Let me know if you'd like suggestions for your upcoming plans.")
}

func TestChatReplyGenerative(t *testing.T) {
	service := NewChatService(&stubGenerativeClient{enabled: true, reply: "  Try the night market!  "})

	reply, err := service.Reply(context.Background(), request_models.ChatRequest{Message: "Dinner ideas?"})
	require.NoError(t, err)
	assert.Equal(t, "Try the night market!", reply)
}

func TestChatReplyGenerativeFallsBackOnError(t *testing.T) {
	service := NewChatService(&stubGenerativeClient{enabled: true, replyErr: errors.New("unavailable")})

	reply, err := service.Reply(context.Background(), request_models.ChatRequest{Message: "Dinner ideas?"})
	require.NoError(t, err)
	assert.Contains(t, reply, "This offline assistant is summarizing from your saved trip.")
}
