package signalsfx

import (
	"net/http"
	"os"
	"time"

	"go.uber.org/fx"

	"tripweaver/internal/api/controllers"
	"tripweaver/internal/services"
)

var Module = fx.Provide(
	provideHTTPClient,
	provideWeatherService,
	provideEventsService,
	provideMapsService,
	provideSignalsController)

func provideHTTPClient() *http.Client {
	return &http.Client{Timeout: 20 * time.Second}
}

func provideWeatherService(client *http.Client) services.WeatherServiceInterface {
	return services.NewWeatherService(os.Getenv("WEATHER_API_KEY"), client)
}

func provideEventsService(client *http.Client) services.EventsServiceInterface {
	return services.NewEventsService(os.Getenv("EVENTS_API_KEY"), client)
}

func provideMapsService(client *http.Client) services.MapsServiceInterface {
	return services.NewMapsService(os.Getenv("MAPS_API_KEY"), client)
}

func provideSignalsController(
	weatherService services.WeatherServiceInterface,
	eventsService services.EventsServiceInterface,
	mapsService services.MapsServiceInterface,
) *controllers.SignalsController {
	return controllers.NewSignalsController(weatherService, eventsService, mapsService)
}
