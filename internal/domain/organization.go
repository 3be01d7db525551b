package domain

import "time"

// Organization is one tenant of the readiness product, as reported by the
// scoring backend.
type Organization struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Industry  string    `json:"industry,omitempty"`
	Framework string    `json:"framework,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}
