package event

import "time"

// EventTypes is the closed set of allowed event types. It is enforced at
// request time and again by a CHECK constraint on the events table.
var EventTypes = map[string]bool{
	"academic":        true,
	"extracurricular": true,
	"meeting":         true,
	"holiday":         true,
	"other":           true,
}

// DefaultLocale is used when a request does not carry a locale tag.
const DefaultLocale = "en"

// Event represents a calendar event
type Event struct {
	ID          int64     `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Date        string    `db:"date" json:"date"` // ISO YYYY-MM-DD, compared lexicographically
	StartTime   string    `db:"start_time" json:"startTime"`
	EndTime     string    `db:"end_time" json:"endTime"`
	Type        string    `db:"type" json:"type"`
	Location    string    `db:"location" json:"location"`
	Locale      string    `db:"locale" json:"locale"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// EventRequest is the payload for create and update. Locale is only
// honored on create; update cannot change an event's locale.
type EventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Type        string `json:"type"`
	Location    string `json:"location"`
	Locale      string `json:"locale"`
}

// EventResponse is the envelope for single-event responses
type EventResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Event   *Event `json:"event,omitempty"`
}

// EventsResponse is the envelope for list responses
type EventsResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message,omitempty"`
	Events  []Event `json:"events"`
}

// Validate checks the required fields and the type enumeration. It returns
// an empty string when the request is valid, otherwise a message describing
// the first failure. Runs before any write touches storage.
func (r *EventRequest) Validate() string {
	required := []struct {
		name, value string
	}{
		{"title", r.Title},
		{"date", r.Date},
		{"startTime", r.StartTime},
		{"endTime", r.EndTime},
		{"type", r.Type},
	}
	for _, f := range required {
		if f.value == "" {
			return "Missing required field: " + f.name
		}
	}
	if !EventTypes[r.Type] {
		return "Invalid event type: " + r.Type + ". Must be one of: academic, extracurricular, meeting, holiday, other"
	}
	return ""
}
