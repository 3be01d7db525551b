package quadrant

import (
	"github.com/aegisready/readiness-roadmap/internal/domain"
)

// Assigner places an item into one cell of the effort x impact matrix. The
// four cells partition the full score grid: every (effort, impact) pair in
// 1..5 x 1..5 lands in exactly one quadrant.
type Assigner struct{}

func NewAssigner() *Assigner {
	return &Assigner{}
}

// Assign reads the same two threshold predicates as the lane classifier, so
// the quadrant grid and the lane view are always the same underlying split.
func (a *Assigner) Assign(effortScore, impactScore int) domain.Quadrant {
	switch {
	case domain.IsHighImpact(impactScore) && domain.IsLowEffort(effortScore):
		return domain.QuadrantQuickWins
	case domain.IsHighImpact(impactScore):
		return domain.QuadrantStrategicBets
	case domain.IsLowEffort(effortScore):
		return domain.QuadrantFillIns
	default:
		return domain.QuadrantDeprioritize
	}
}
