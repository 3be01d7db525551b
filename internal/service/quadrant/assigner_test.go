package quadrant

import (
	"testing"

	"github.com/aegisready/readiness-roadmap/internal/domain"
)

func TestAssigner_Assign(t *testing.T) {
	assigner := NewAssigner()

	tests := []struct {
		name         string
		effortScore  int
		impactScore  int
		wantQuadrant domain.Quadrant
	}{
		{
			name:         "high impact low effort is quick wins",
			effortScore:  1,
			impactScore:  5,
			wantQuadrant: domain.QuadrantQuickWins,
		},
		{
			name:         "boundary effort 2 impact 4 is quick wins",
			effortScore:  2,
			impactScore:  4,
			wantQuadrant: domain.QuadrantQuickWins,
		},
		{
			name:         "high impact high effort is strategic bets",
			effortScore:  3,
			impactScore:  4,
			wantQuadrant: domain.QuadrantStrategicBets,
		},
		{
			name:         "low impact low effort is fill ins",
			effortScore:  2,
			impactScore:  3,
			wantQuadrant: domain.QuadrantFillIns,
		},
		{
			name:         "low impact high effort is deprioritize",
			effortScore:  5,
			impactScore:  1,
			wantQuadrant: domain.QuadrantDeprioritize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := assigner.Assign(tt.effortScore, tt.impactScore)
			if got != tt.wantQuadrant {
				t.Errorf("Assign() = %v, want %v", got, tt.wantQuadrant)
			}
		})
	}
}

// TestAssigner_PartitionsGrid checks mutual exclusivity and exhaustiveness
// over the full score grid: each cell maps to exactly one quadrant, and the
// per-quadrant predicates agree with the assignment.
func TestAssigner_PartitionsGrid(t *testing.T) {
	assigner := NewAssigner()

	counts := make(map[domain.Quadrant]int)

	for e := domain.ScoreMin; e <= domain.ScoreMax; e++ {
		for i := domain.ScoreMin; i <= domain.ScoreMax; i++ {
			got := assigner.Assign(e, i)

			var want domain.Quadrant
			switch {
			case domain.IsHighImpact(i) && domain.IsLowEffort(e):
				want = domain.QuadrantQuickWins
			case domain.IsHighImpact(i) && !domain.IsLowEffort(e):
				want = domain.QuadrantStrategicBets
			case !domain.IsHighImpact(i) && domain.IsLowEffort(e):
				want = domain.QuadrantFillIns
			default:
				want = domain.QuadrantDeprioritize
			}

			if got != want {
				t.Errorf("Assign(effort=%d, impact=%d) = %v, want %v", e, i, got, want)
			}
			counts[got]++
		}
	}

	total := 0
	for _, q := range domain.Quadrants {
		if counts[q] == 0 {
			t.Errorf("quadrant %v never assigned", q)
		}
		total += counts[q]
	}

	gridSize := (domain.ScoreMax - domain.ScoreMin + 1) * (domain.ScoreMax - domain.ScoreMin + 1)
	if total != gridSize {
		t.Errorf("quadrants cover %d cells, want %d", total, gridSize)
	}
}

// The quadrant view and the lane view are intentionally the same underlying
// split: quick wins matches the immediate lane predicate, strategic bets
// matches near-term.
func TestAssigner_AgreesWithLanePredicates(t *testing.T) {
	assigner := NewAssigner()

	for e := domain.ScoreMin; e <= domain.ScoreMax; e++ {
		for i := domain.ScoreMin; i <= domain.ScoreMax; i++ {
			q := assigner.Assign(e, i)

			immediate := domain.IsHighImpact(i) && domain.IsLowEffort(e)
			nearTerm := domain.IsHighImpact(i) && !domain.IsLowEffort(e)

			if immediate != (q == domain.QuadrantQuickWins) {
				t.Errorf("effort=%d impact=%d: quick-wins/immediate mismatch (quadrant=%v)", e, i, q)
			}
			if nearTerm != (q == domain.QuadrantStrategicBets) {
				t.Errorf("effort=%d impact=%d: strategic-bets/near-term mismatch (quadrant=%v)", e, i, q)
			}
		}
	}
}

func TestQuadrantLabels(t *testing.T) {
	want := map[domain.Quadrant]string{
		domain.QuadrantQuickWins:     "Quick Wins",
		domain.QuadrantStrategicBets: "Strategic Bets",
		domain.QuadrantFillIns:       "Fill Ins",
		domain.QuadrantDeprioritize:  "Deprioritize",
	}

	for q, label := range want {
		if got := q.Label(); got != label {
			t.Errorf("Label(%v) = %q, want %q", q, got, label)
		}
		if q.Description() == "" {
			t.Errorf("Description(%v) is empty", q)
		}
	}
}
