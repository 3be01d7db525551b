package domain

// Normalized effort and impact scores share a 1..5 scale.
const (
	ScoreMin = 1
	ScoreMax = 5

	// HighImpactThreshold is the impact score at and above which an item
	// counts as high impact.
	HighImpactThreshold = 4

	// LowEffortThreshold is the effort score at and below which an item
	// counts as low effort.
	LowEffortThreshold = 2
)

// IsHighImpact and IsLowEffort are the two predicates behind both the lane
// rule and the quadrant split. Both call sites must read the thresholds
// through here so the lane view and the quadrant view cannot drift apart.

func IsHighImpact(impact int) bool {
	return impact >= HighImpactThreshold
}

func IsLowEffort(effort int) bool {
	return effort <= LowEffortThreshold
}
