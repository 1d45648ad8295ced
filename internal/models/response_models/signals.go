package response_models

// WeatherDay is one normalized forecast day, keyed by ISO date.
type WeatherDay struct {
	Date            string `json:"date"`
	Condition       string `json:"condition"`
	TemperatureHigh int    `json:"temperature_high"`
	TemperatureLow  int    `json:"temperature_low"`
}

// Event is a normalized live-event record. The first ten characters of
// StartTime are usable as a date key.
type Event struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Venue       *string `json:"venue"`
	Address     *string `json:"address"`
	StartTime   string  `json:"start_time"`
	URL         *string `json:"url"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// MapPin is a place suggestion rendered on the trip map.
type MapPin struct {
	Name        string      `json:"name"`
	Category    string      `json:"category"`
	Coordinates Coordinates `json:"coordinates"`
	Description string      `json:"description"`
	Rating      *float64    `json:"rating,omitempty"`
}

// TripSignals bundles the normalized external context handed to the synthesis
// engines. Either slice may be empty when a provider had no data or failed.
type TripSignals struct {
	Weather []WeatherDay `json:"weather"`
	Events  []Event      `json:"events"`
}
