package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const roadmapMeterName = "roadmap.service"

type RoadmapMetrics struct {
	itemsClassified      metric.Int64Counter
	laneDistribution     metric.Int64Counter
	quadrantDistribution metric.Int64Counter
	rebuildDuration      metric.Float64Histogram
	snapshotCacheHits    metric.Int64Counter
	snapshotCacheMisses  metric.Int64Counter
}

func NewRoadmapMetrics() (*RoadmapMetrics, error) {
	meter := otel.Meter(roadmapMeterName)

	itemsClassified, err := meter.Int64Counter(
		"roadmap_items_classified_total",
		metric.WithDescription("Total number of roadmap items run through the prioritization engine"),
		metric.WithUnit("{item}"),
	)
	if err != nil {
		return nil, err
	}

	laneDistribution, err := meter.Int64Counter(
		"roadmap_lane_distribution_total",
		metric.WithDescription("Distribution of classified items across timeline lanes"),
		metric.WithUnit("{item}"),
	)
	if err != nil {
		return nil, err
	}

	quadrantDistribution, err := meter.Int64Counter(
		"roadmap_quadrant_distribution_total",
		metric.WithDescription("Distribution of classified items across prioritization quadrants"),
		metric.WithUnit("{item}"),
	)
	if err != nil {
		return nil, err
	}

	rebuildDuration, err := meter.Float64Histogram(
		"roadmap_rebuild_duration_seconds",
		metric.WithDescription("Time spent rebuilding a roadmap snapshot, backend fetch included"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30,
		),
	)
	if err != nil {
		return nil, err
	}

	snapshotCacheHits, err := meter.Int64Counter(
		"roadmap_snapshot_cache_hits_total",
		metric.WithDescription("Roadmap requests served from the snapshot cache"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	snapshotCacheMisses, err := meter.Int64Counter(
		"roadmap_snapshot_cache_misses_total",
		metric.WithDescription("Roadmap requests that required a rebuild"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	return &RoadmapMetrics{
		itemsClassified:      itemsClassified,
		laneDistribution:     laneDistribution,
		quadrantDistribution: quadrantDistribution,
		rebuildDuration:      rebuildDuration,
		snapshotCacheHits:    snapshotCacheHits,
		snapshotCacheMisses:  snapshotCacheMisses,
	}, nil
}

func (m *RoadmapMetrics) RecordItemsClassified(ctx context.Context, count int) {
	m.itemsClassified.Add(ctx, int64(count))
}

func (m *RoadmapMetrics) RecordLaneDistribution(ctx context.Context, lane string, count int) {
	m.laneDistribution.Add(ctx, int64(count), metric.WithAttributes(
		attribute.String("lane", lane),
	))
}

func (m *RoadmapMetrics) RecordQuadrantDistribution(ctx context.Context, quadrant string, count int) {
	m.quadrantDistribution.Add(ctx, int64(count), metric.WithAttributes(
		attribute.String("quadrant", quadrant),
	))
}

func (m *RoadmapMetrics) RecordRebuildDuration(ctx context.Context, duration time.Duration) {
	m.rebuildDuration.Record(ctx, duration.Seconds())
}

func (m *RoadmapMetrics) RecordSnapshotCacheHit(ctx context.Context) {
	m.snapshotCacheHits.Add(ctx, 1)
}

func (m *RoadmapMetrics) RecordSnapshotCacheMiss(ctx context.Context) {
	m.snapshotCacheMisses.Add(ctx, 1)
}
