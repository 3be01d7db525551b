package domain

import "time"

// AuditEvent is one entry in an organization's audit calendar.
type AuditEvent struct {
	ID              string    `json:"id"`
	OrgID           string    `json:"org_id"`
	Name            string    `json:"name"`
	Framework       string    `json:"framework,omitempty"`
	ScheduledFor    time.Time `json:"scheduled_for"`
	ReminderLeadDay int       `json:"reminder_lead_days"`
	CreatedAt       time.Time `json:"created_at"`
}

// ReminderTime returns when the reminder for this audit should fire.
func (e *AuditEvent) ReminderTime() time.Time {
	return e.ScheduledFor.AddDate(0, 0, -e.ReminderLeadDay)
}
