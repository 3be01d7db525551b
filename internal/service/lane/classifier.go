package lane

import (
	"strings"

	"github.com/aegisready/readiness-roadmap/internal/domain"
)

// Classifier assigns a timeline lane from the normalized scores, with an
// explicit timeline_label override.
type Classifier struct{}

func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify returns the lane for an item. An explicit timeline label always
// wins over the score rule; label substrings are checked in order and the
// first match applies.
func (c *Classifier) Classify(item domain.RoadmapItem, effortScore, impactScore int) domain.Lane {
	label := strings.ToLower(item.TimelineLabel)
	switch {
	case strings.Contains(label, "immediate"):
		return domain.LaneImmediate
	case strings.Contains(label, "near"):
		return domain.LaneNearTerm
	case strings.Contains(label, "strategic"):
		return domain.LaneStrategic
	}

	// With integer scores in 1..5 the two effort branches are exhaustive:
	// no value is neither <=2 nor >=3.
	if domain.IsHighImpact(impactScore) {
		if domain.IsLowEffort(effortScore) {
			return domain.LaneImmediate
		}
		return domain.LaneNearTerm
	}
	return domain.LaneStrategic
}
