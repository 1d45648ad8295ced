package utils

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const (
	openAIDefaultModel = "gpt-4o-mini"
	generationTimeout  = 30 * time.Second
)

// GenerativeClientInterface is the single seam between the planning engines and
// the generative backend. Enabled reports credential presence: a disabled client
// never performs I/O and callers must branch to deterministic behavior.
type GenerativeClientInterface interface {
	Enabled() bool
	GenerateItinerary(ctx context.Context, systemPrompt string, userPayload string) (string, error)
	GenerateReply(ctx context.Context, systemPrompt string, userPayload string) (string, error)
}

// OpenAIGenerativeClient calls the chat completions API with function calling
// to force structured itinerary output.
type OpenAIGenerativeClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIGenerativeClient(apiKey, model string) GenerativeClientInterface {
	if model == "" {
		model = openAIDefaultModel
	}
	return &OpenAIGenerativeClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIGenerativeClient) Enabled() bool { return true }

func (c *OpenAIGenerativeClient) GenerateItinerary(ctx context.Context, systemPrompt string, userPayload string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, generationTimeout)
	defer cancel()

	schema := ItinerarySchema()
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.7,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPayload},
		},
		Functions: []openai.FunctionDefinition{{
			Name:        ItineraryFunctionName,
			Description: "Return a structured itinerary for the user",
			Parameters:  schema,
		}},
		FunctionCall: openai.FunctionCall{Name: ItineraryFunctionName},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}
	call := resp.Choices[0].Message.FunctionCall
	if call == nil || call.Arguments == "" {
		return "", fmt.Errorf("openai response missing function call arguments")
	}
	return call.Arguments, nil
}

func (c *OpenAIGenerativeClient) GenerateReply(ctx context.Context, systemPrompt string, userPayload string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, generationTimeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.6,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPayload},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("openai response missing content")
	}
	return content, nil
}

// disabledGenerativeClient stands in when no credential is configured. This is
// a configuration branch, not an error state.
type disabledGenerativeClient struct{}

func (disabledGenerativeClient) Enabled() bool { return false }

func (disabledGenerativeClient) GenerateItinerary(context.Context, string, string) (string, error) {
	return "", ErrAIDisabled
}

func (disabledGenerativeClient) GenerateReply(context.Context, string, string) (string, error) {
	return "", ErrAIDisabled
}

// NewGenerativeClient Factory function to create either an OpenAI or Gemini
// client based on config. An empty API key yields a disabled client.
func NewGenerativeClient(provider, apiKey, model string) (GenerativeClientInterface, error) {
	if apiKey == "" {
		return disabledGenerativeClient{}, nil
	}
	switch strings.ToLower(provider) {
	case "openai", "":
		return NewOpenAIGenerativeClient(apiKey, model), nil
	case "gemini":
		return NewGeminiGenerativeClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s. Use 'openai' or 'gemini'", provider)
	}
}
