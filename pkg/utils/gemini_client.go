package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiGenerativeClient implements GenerativeClientInterface using Google's
// Gemini models as an alternate generative backend.
type GeminiGenerativeClient struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerativeClient(apiKey, model string) (GenerativeClientInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGenerativeClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiGenerativeClient) Enabled() bool { return true }

func (c *GeminiGenerativeClient) GenerateItinerary(ctx context.Context, systemPrompt string, userPayload string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	// Force JSON-only output so downstream parsing never sees prose.
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.2)
	m.SetTopP(0.5)
	m.SetTopK(20)

	prompt := systemPrompt + `

Return JSON matching this shape exactly (keys and nesting):
{"destination":"string","summary":"string","daily_plans":[{"date":"YYYY-MM-DD","theme":"string","activities":[{"name":"string","description":"string","category":"Explore|Eat|Stay|Experience","location":null,"start_time":null,"end_time":null,"weather_advice":null}]}]}

Input:
` + userPayload

	ctx, cancel := context.WithTimeout(ctx, generationTimeout)
	defer cancel()

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated by Gemini")
	}

	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	content = CleanJSONResponse(content)
	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("gemini returned invalid JSON")
	}
	return content, nil
}

func (c *GeminiGenerativeClient) GenerateReply(ctx context.Context, systemPrompt string, userPayload string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.6)

	ctx, cancel := context.WithTimeout(ctx, generationTimeout)
	defer cancel()

	resp, err := m.GenerateContent(ctx, genai.Text(systemPrompt+"\n\n"+userPayload))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated by Gemini")
	}

	content := strings.TrimSpace(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]))
	if content == "" {
		return "", fmt.Errorf("gemini response missing content")
	}
	return content, nil
}

// Close closes the Gemini client
func (c *GeminiGenerativeClient) Close() error {
	return c.client.Close()
}

// CleanJSONResponse removes markdown formatting and extra text around a JSON
// document, keeping only the outermost object or array.
func CleanJSONResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")

	prefixes := []string{
		"Here's the itinerary:",
		"Here is the itinerary:",
		"The itinerary is:",
		"Itinerary:",
	}
	for _, prefix := range prefixes {
		if strings.HasPrefix(strings.TrimSpace(response), prefix) {
			response = strings.TrimPrefix(strings.TrimSpace(response), prefix)
			break
		}
	}

	response = strings.TrimSpace(response)

	objStart := strings.Index(response, "{")
	arrStart := strings.Index(response, "[")

	if objStart != -1 && (arrStart == -1 || objStart < arrStart) {
		if objEnd := findMatchingDelimiter(response, objStart, '{', '}'); objEnd != -1 {
			response = response[objStart : objEnd+1]
		}
	} else if arrStart != -1 {
		if arrEnd := findMatchingDelimiter(response, arrStart, '[', ']'); arrEnd != -1 {
			response = response[arrStart : arrEnd+1]
		}
	}

	return strings.TrimSpace(response)
}

// findMatchingDelimiter scans for the closing delimiter matching the opener at
// start, ignoring delimiters inside JSON strings.
func findMatchingDelimiter(s string, start int, open, close byte) int {
	if start >= len(s) || s[start] != open {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}
		if char == '\\' && inString {
			escaped = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch char {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}
