package domain

import (
	"context"
	"time"
)

// LaneDistributionRecord is one per-lane count emitted after a roadmap
// rebuild.
type LaneDistributionRecord struct {
	RunID       string
	OrgID       string
	Lane        string
	Count       int
	GeneratedAt time.Time
}

// QuadrantDistributionRecord is one per-quadrant count emitted after a
// roadmap rebuild.
type QuadrantDistributionRecord struct {
	RunID       string
	OrgID       string
	Quadrant    string
	Count       int
	GeneratedAt time.Time
}

// RoadmapResultRecorder persists classification distributions for offline
// analysis of how the executive roadmap shifts over time.
type RoadmapResultRecorder interface {
	RecordLaneDistribution(ctx context.Context, records []LaneDistributionRecord) error
	RecordQuadrantDistribution(ctx context.Context, records []QuadrantDistributionRecord) error
	Flush(ctx context.Context) error
	Close() error
}
