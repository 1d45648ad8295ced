package plannerfx

import (
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"tripweaver/internal/api/controllers"
	"tripweaver/internal/services"
	"tripweaver/pkg/utils"
)

var Module = fx.Provide(
	ProvideGenerativeClient,
	ProvidePlannerService,
	ProvidePlannerController)

// GenerativeConfig holds configuration for generative clients
type GenerativeConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideGenerativeClient creates a generative client based on environment
// variables. A missing API key is not fatal: the planner then runs on its
// deterministic offline synthesizer.
func ProvideGenerativeClient() (utils.GenerativeClientInterface, error) {
	config := getGenerativeConfig()

	if config.APIKey == "" {
		log.Printf("No %s API key configured, itinerary generation runs offline", config.Provider)
	} else {
		log.Printf("Initializing %s generative client with model: %s", config.Provider, config.Model)
	}

	return utils.NewGenerativeClient(config.Provider, config.APIKey, config.Model)
}

func ProvidePlannerService(client utils.GenerativeClientInterface) services.PlannerServiceInterface {
	return services.NewPlannerService(client)
}

func ProvidePlannerController(
	plannerService services.PlannerServiceInterface,
	weatherService services.WeatherServiceInterface,
	eventsService services.EventsServiceInterface,
) *controllers.PlannerController {
	return controllers.NewPlannerController(plannerService, weatherService, eventsService)
}

// getGenerativeConfig reads configuration from environment variables
func getGenerativeConfig() GenerativeConfig {
	provider := getEnvWithDefault("AI_PROVIDER", "openai")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
	}

	return GenerativeConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
