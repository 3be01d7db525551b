package domain

import (
	"time"
)

// RoadmapItem is one remediation recommendation as delivered by the scoring
// backend. Every classification-relevant field is optional free text; absent
// fields resolve through the normalizer fallback chains.
type RoadmapItem struct {
	ID             string `json:"id,omitempty"`
	FindingID      string `json:"finding_id,omitempty"`
	Title          string `json:"title,omitempty"`
	Action         string `json:"action,omitempty"`
	NISTCategory   string `json:"nist_category,omitempty"`
	Effort         string `json:"effort,omitempty"`
	EffortEstimate string `json:"effort_estimate,omitempty"`
	RiskImpact     string `json:"risk_impact,omitempty"`
	Severity       string `json:"severity,omitempty"`
	Priority       string `json:"priority,omitempty"`
	Phase          string `json:"phase,omitempty"`
	TimelineLabel  string `json:"timeline_label,omitempty"`
}

// Key returns the identity field used for display and recording, preferring
// the finding ID over the generic ID.
func (i RoadmapItem) Key() string {
	if i.FindingID != "" {
		return i.FindingID
	}
	return i.ID
}

// EnrichedItem is a RoadmapItem plus the three derived classification fields.
// Enriched items are pure projections of the input; they are rebuilt from
// scratch on every snapshot and carry no persisted identity.
type EnrichedItem struct {
	RoadmapItem
	EffortScore int  `json:"effort_num"`
	ImpactScore int  `json:"impact_num"`
	Lane        Lane `json:"derived_lane"`
}

func NewEnrichedItem(item RoadmapItem, effortScore, impactScore int, lane Lane) EnrichedItem {
	return EnrichedItem{
		RoadmapItem: item,
		EffortScore: effortScore,
		ImpactScore: impactScore,
		Lane:        lane,
	}
}

// Snapshot is the fully classified roadmap for one organization, the unit
// stored in the snapshot cache and served to the dashboard.
type Snapshot struct {
	OrgID       string         `json:"org_id"`
	Items       []EnrichedItem `json:"items"`
	GeneratedAt time.Time      `json:"generated_at"`
}

func NewSnapshot(orgID string, items []EnrichedItem) *Snapshot {
	return &Snapshot{
		OrgID:       orgID,
		Items:       items,
		GeneratedAt: time.Now().UTC(),
	}
}

func (s *Snapshot) IsEmpty() bool {
	return len(s.Items) == 0
}
