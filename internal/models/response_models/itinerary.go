package response_models

// Activity is an individual itinerary entry. Name, description and category are
// always present; the remaining fields may be null on the wire.
type Activity struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	Location      *string `json:"location"`
	StartTime     *string `json:"start_time"`
	EndTime       *string `json:"end_time"`
	WeatherAdvice *string `json:"weather_advice"`
}

// DayPlan holds the ordered activities for one calendar day. Order is
// meaningful: events come before the default slots, contingency entries last.
type DayPlan struct {
	Date       string     `json:"date"`
	Theme      *string    `json:"theme,omitempty"`
	Activities []Activity `json:"activities"`
}

// Itinerary is the full plan produced by the synthesis engines and stored for
// a user. DailyPlans covers every date in [StartDate, EndDate] inclusive,
// ascending, with no gaps.
type Itinerary struct {
	Destination string    `json:"destination"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	Persona     string    `json:"persona"`
	Summary     string    `json:"summary"`
	DailyPlans  []DayPlan `json:"daily_plans"`
}

// Clone builds a fully independent copy of the itinerary graph. The adjustment
// engine mutates clones only; callers keep their input untouched.
func (i Itinerary) Clone() *Itinerary {
	cloned := i
	cloned.DailyPlans = make([]DayPlan, len(i.DailyPlans))
	for dayIdx, day := range i.DailyPlans {
		copiedDay := day
		copiedDay.Theme = cloneStringPtr(day.Theme)
		copiedDay.Activities = make([]Activity, len(day.Activities))
		for actIdx, activity := range day.Activities {
			copiedActivity := activity
			copiedActivity.Location = cloneStringPtr(activity.Location)
			copiedActivity.StartTime = cloneStringPtr(activity.StartTime)
			copiedActivity.EndTime = cloneStringPtr(activity.EndTime)
			copiedActivity.WeatherAdvice = cloneStringPtr(activity.WeatherAdvice)
			copiedDay.Activities[actIdx] = copiedActivity
		}
		cloned.DailyPlans[dayIdx] = copiedDay
	}
	return &cloned
}

func cloneStringPtr(s *string) *string {
	if s == nil {
		return nil
	}
	copied := *s
	return &copied
}

// SavedItinerary is an itinerary as returned from storage, with its document
// id and owning user attached.
type SavedItinerary struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Itinerary
}

type ChatReply struct {
	Message string `json:"message"`
}
