package stub

type SeedFinding struct {
	Title         string `json:"title"`
	Category      string `json:"category,omitempty"`
	Severity      string `json:"severity,omitempty"`
	Priority      string `json:"priority,omitempty"`
	Effort        string `json:"effort,omitempty"`
	RiskImpact    string `json:"risk_impact,omitempty"`
	Phase         string `json:"phase,omitempty"`
	TimelineLabel string `json:"timeline_label,omitempty"`
	Count         int    `json:"count"`
}

type SeedRequest struct {
	OrgID    string        `json:"org_id"`
	OrgName  string        `json:"org_name,omitempty"`
	Findings []SeedFinding `json:"findings"`
}
