package effort

import (
	"strings"

	"github.com/aegisready/readiness-roadmap/internal/domain"
)

const (
	// DefaultScore is returned when neither the effort text nor the phase
	// tag resolves. Unknown effort is assumed worst-case.
	DefaultScore = 5
)

type keywordScore struct {
	keyword string
	score   int
}

// keywordTable maps effort descriptor substrings to scores. The slice order
// is the tie-break rule: the first matching keyword wins, so the table must
// not be reordered or turned into a map.
var keywordTable = []keywordScore{
	{"low", 1},
	{"minimal", 1},
	{"medium", 3},
	{"moderate", 3},
	{"high", 5},
	{"significant", 5},
}

// Normalizer derives a 1..5 effort score from an item's free-text effort
// fields. The scale only ever emits 1, 3 or 5.
type Normalizer struct{}

func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize reads the item's effort text (effort, then effort_estimate) and
// returns the score of the first keyword match, falling back to the phase
// tag when nothing matches. It never fails.
func (n *Normalizer) Normalize(item domain.RoadmapItem) int {
	text := item.Effort
	if text == "" {
		text = item.EffortEstimate
	}
	text = strings.ToLower(text)

	for _, entry := range keywordTable {
		if strings.Contains(text, entry.keyword) {
			return entry.score
		}
	}

	switch strings.TrimSpace(item.Phase) {
	case "30":
		return 1
	case "60":
		return 3
	default:
		return DefaultScore
	}
}
