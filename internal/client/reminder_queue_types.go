package client

import "time"

// ReminderTask is the payload delivered back to the reminder webhook when an
// audit reminder fires.
type ReminderTask struct {
	EventID      string    `json:"event_id"`
	OrgID        string    `json:"org_id"`
	EventName    string    `json:"event_name"`
	Framework    string    `json:"framework,omitempty"`
	ScheduledFor time.Time `json:"scheduled_for"`
	RemindAt     time.Time `json:"remind_at"`
}

type TaskResponse struct {
	Name         string
	ScheduleTime time.Time
	CreateTime   time.Time
}
