package db_models

import (
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// ItineraryRecord is the persisted form of a generated itinerary. Daily plans
// are stored as a JSON document; per-day themes are denormalized into a text
// array so listings can render without unmarshalling the full plan.
type ItineraryRecord struct {
	BaseModel
	OwnerID     string `gorm:"index;size:64"`
	Destination string
	Persona     string
	StartDate   string         `gorm:"size:10"`
	EndDate     string         `gorm:"size:10"`
	Summary     string         `gorm:"type:text"`
	DayThemes   pq.StringArray `gorm:"type:text[]"`
	DailyPlans  datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
}
