package scoring

import (
	"time"

	"github.com/aegisready/readiness-roadmap/internal/domain"
)

// RoadmapResponse is the backend's raw roadmap payload for one organization.
// Items arrive unclassified; the prioritization engine adds the derived
// fields.
type RoadmapResponse struct {
	OrgID string               `json:"org_id"`
	Items []domain.RoadmapItem `json:"items"`
	Count int                  `json:"count"`
}

// OrganizationsResponse wraps the backend's organization list.
type OrganizationsResponse struct {
	Organizations []domain.Organization `json:"organizations"`
	Count         int                   `json:"count"`
}

// RubricQuestion is one questionnaire prompt in the assessment rubric.
type RubricQuestion struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Category string `json:"category,omitempty"`
	Weight   int    `json:"weight,omitempty"`
}

// RubricSection groups questions under one assessment area.
type RubricSection struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Weight    int              `json:"weight,omitempty"`
	Questions []RubricQuestion `json:"questions"`
}

// Rubric is the full questionnaire definition served by the backend.
type Rubric struct {
	Version  string          `json:"version,omitempty"`
	Sections []RubricSection `json:"sections"`
}

// CategoryScore is one per-category result inside a computed score.
type CategoryScore struct {
	Category string  `json:"category"`
	Score    float64 `json:"score"`
}

// ScoreResult is the backend's computed readiness score for an organization.
type ScoreResult struct {
	OrgID      string          `json:"org_id"`
	Overall    float64         `json:"overall"`
	Maturity   string          `json:"maturity,omitempty"`
	Categories []CategoryScore `json:"categories,omitempty"`
	ComputedAt time.Time       `json:"computed_at,omitempty"`
}
