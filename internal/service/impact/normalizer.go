package impact

import (
	"strings"

	"github.com/aegisready/readiness-roadmap/internal/domain"
)

const (
	// DefaultScore is returned when neither the risk-impact text nor the
	// severity/priority fallback resolves. Unknown impact is assumed
	// low-ish, asymmetric with the effort default on purpose.
	DefaultScore = 2
)

type keywordScore struct {
	keyword string
	score   int
}

// keywordTable maps risk-impact descriptor substrings to scores, first match
// wins in slice order. "critical risk reduction" sits before the bare
// "critical" keyword so that phrase always scores 5 regardless of what a
// reordering would do; do not alphabetize.
var keywordTable = []keywordScore{
	{"low", 1},
	{"minimal", 1},
	{"medium", 3},
	{"moderate", 3},
	{"critical risk reduction", 5},
	{"high", 4},
	{"critical", 5},
	{"significant", 4},
}

// Normalizer derives a 1..5 impact score from an item's risk-impact text,
// falling back to the coarse severity/priority category.
type Normalizer struct{}

func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize never fails; missing or unrecognized data resolves to
// DefaultScore.
func (n *Normalizer) Normalize(item domain.RoadmapItem) int {
	text := strings.ToLower(item.RiskImpact)

	for _, entry := range keywordTable {
		if strings.Contains(text, entry.keyword) {
			return entry.score
		}
	}

	category := item.Severity
	if category == "" {
		category = item.Priority
	}

	switch strings.ToLower(category) {
	case "critical":
		return 5
	case "high":
		return 4
	case "medium":
		return 3
	default:
		return DefaultScore
	}
}
