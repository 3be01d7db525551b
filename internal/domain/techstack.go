package domain

import "time"

// TechStackEntry is one tool or platform an organization has registered in
// its tech-stack inventory.
type TechStackEntry struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Vendor   string `json:"vendor,omitempty"`
	Managed  bool   `json:"managed"`
}

// TechStack is the full registry document for one organization.
type TechStack struct {
	OrgID     string           `json:"org_id"`
	Entries   []TechStackEntry `json:"entries"`
	UpdatedAt time.Time        `json:"updated_at"`
}
