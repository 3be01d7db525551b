package roadmap

import (
	"time"

	"github.com/aegisready/readiness-roadmap/internal/domain"
)

// LaneGroup is one timeline lane with its items, in lane display order.
type LaneGroup struct {
	Lane  domain.Lane           `json:"lane"`
	Count int                   `json:"count"`
	Items []domain.EnrichedItem `json:"items"`
}

// QuadrantGroup is one cell of the 2x2 grid. Items are capped for display;
// OverflowCount carries the remainder.
type QuadrantGroup struct {
	Quadrant      domain.Quadrant       `json:"quadrant"`
	Label         string                `json:"label"`
	Description   string                `json:"description"`
	Count         int                   `json:"count"`
	Items         []domain.EnrichedItem `json:"items"`
	OverflowCount int                   `json:"overflow_count"`
}

// View is the fully aggregated roadmap served to the dashboard: the three
// summary tiles (lane counts), the lane list view and the quadrant grid.
type View struct {
	OrgID       string          `json:"org_id"`
	TotalItems  int             `json:"total_items"`
	Lanes       []LaneGroup     `json:"lanes"`
	Quadrants   []QuadrantGroup `json:"quadrants"`
	GeneratedAt time.Time       `json:"generated_at"`
	FromCache   bool            `json:"from_cache"`
}

// LaneCount returns the count for one lane, zero when absent.
func (v *View) LaneCount(lane domain.Lane) int {
	for _, g := range v.Lanes {
		if g.Lane == lane {
			return g.Count
		}
	}
	return 0
}
