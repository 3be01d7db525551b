package roadmaprecorder

import (
	"context"

	"github.com/aegisready/readiness-roadmap/internal/domain"
)

type noopRecorder struct{}

func NewNoopRecorder() domain.RoadmapResultRecorder {
	return &noopRecorder{}
}

func (n *noopRecorder) RecordLaneDistribution(_ context.Context, _ []domain.LaneDistributionRecord) error {
	return nil
}

func (n *noopRecorder) RecordQuadrantDistribution(_ context.Context, _ []domain.QuadrantDistributionRecord) error {
	return nil
}

func (n *noopRecorder) Flush(_ context.Context) error {
	return nil
}

func (n *noopRecorder) Close() error {
	return nil
}
