package domain

// Lane represents the timeline bucket a remediation item is worked in.
type Lane string

const (
	LaneImmediate Lane = "immediate"
	LaneNearTerm  Lane = "near-term"
	LaneStrategic Lane = "strategic"
)

// Lanes lists all lanes in display order.
var Lanes = []Lane{LaneImmediate, LaneNearTerm, LaneStrategic}

func (l Lane) String() string {
	return string(l)
}

func (l Lane) IsImmediate() bool {
	return l == LaneImmediate
}

func (l Lane) IsNearTerm() bool {
	return l == LaneNearTerm
}

func (l Lane) IsStrategic() bool {
	return l == LaneStrategic
}
