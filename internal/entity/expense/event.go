package expense

import "time"

type EventType string

const (
	EventRecorded        EventType = "recorded"
	EventDeletedAll      EventType = "deleted_all"
	EventDeletedMatching EventType = "deleted_matching"
)

// Event describes a change to a user's expenses.
type Event struct {
	Type        EventType `json:"type"`
	UserID      string    `json:"user_id"`
	Category    string    `json:"category,omitempty"`
	Amount      int64     `json:"amount,omitempty"`
	Description string    `json:"description,omitempty"`
	Keyword     string    `json:"keyword,omitempty"`
	Deleted     int64     `json:"deleted,omitempty"`
	At          time.Time `json:"at"`
}
