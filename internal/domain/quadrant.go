package domain

// Quadrant is one cell of the effort x impact prioritization matrix.
type Quadrant string

const (
	QuadrantQuickWins     Quadrant = "quick_wins"
	QuadrantStrategicBets Quadrant = "strategic_bets"
	QuadrantFillIns       Quadrant = "fill_ins"
	QuadrantDeprioritize  Quadrant = "deprioritize"
)

// Quadrants lists all quadrants in display order (high impact row first).
var Quadrants = []Quadrant{
	QuadrantQuickWins,
	QuadrantStrategicBets,
	QuadrantFillIns,
	QuadrantDeprioritize,
}

var quadrantLabels = map[Quadrant]string{
	QuadrantQuickWins:     "Quick Wins",
	QuadrantStrategicBets: "Strategic Bets",
	QuadrantFillIns:       "Fill Ins",
	QuadrantDeprioritize:  "Deprioritize",
}

var quadrantDescriptions = map[Quadrant]string{
	QuadrantQuickWins:     "High impact, low effort. Do these first.",
	QuadrantStrategicBets: "High impact, high effort. Plan as programs of work.",
	QuadrantFillIns:       "Low impact, low effort. Pick up when capacity allows.",
	QuadrantDeprioritize:  "Low impact, high effort. Revisit only if context changes.",
}

func (q Quadrant) String() string {
	return string(q)
}

// Label returns the display name used by the quadrant grid widget.
func (q Quadrant) Label() string {
	return quadrantLabels[q]
}

func (q Quadrant) Description() string {
	return quadrantDescriptions[q]
}
