package roadmap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aegisready/readiness-roadmap/internal/domain"
	"github.com/aegisready/readiness-roadmap/internal/infra/scoring"
	"github.com/aegisready/readiness-roadmap/internal/observability/metrics"
	"github.com/aegisready/readiness-roadmap/internal/observability/tracing"
	"github.com/aegisready/readiness-roadmap/internal/service/effort"
	"github.com/aegisready/readiness-roadmap/internal/service/impact"
	"github.com/aegisready/readiness-roadmap/internal/service/lane"
	"github.com/aegisready/readiness-roadmap/internal/service/quadrant"
)

// Service runs the prioritization pipeline: fetch raw items from the scoring
// backend, normalize effort and impact, classify lanes, assign quadrants,
// aggregate, cache. Every rebuild recomputes the snapshot from scratch.
type Service struct {
	scoringClient        scoring.Repository
	snapshotRepo         domain.SnapshotRepository
	effortNormalizer     *effort.Normalizer
	impactNormalizer     *impact.Normalizer
	laneClassifier       *lane.Classifier
	quadrantAssigner     *quadrant.Assigner
	resultRecorder       domain.RoadmapResultRecorder
	roadmapMetrics       *metrics.RoadmapMetrics
	snapshotTTL          time.Duration
	quadrantDisplayLimit int
}

func NewService(
	scoringClient scoring.Repository,
	snapshotRepo domain.SnapshotRepository,
	effortNormalizer *effort.Normalizer,
	impactNormalizer *impact.Normalizer,
	laneClassifier *lane.Classifier,
	quadrantAssigner *quadrant.Assigner,
	resultRecorder domain.RoadmapResultRecorder,
	roadmapMetrics *metrics.RoadmapMetrics,
	snapshotTTL time.Duration,
	quadrantDisplayLimit int,
) *Service {
	return &Service{
		scoringClient:        scoringClient,
		snapshotRepo:         snapshotRepo,
		effortNormalizer:     effortNormalizer,
		impactNormalizer:     impactNormalizer,
		laneClassifier:       laneClassifier,
		quadrantAssigner:     quadrantAssigner,
		resultRecorder:       resultRecorder,
		roadmapMetrics:       roadmapMetrics,
		snapshotTTL:          snapshotTTL,
		quadrantDisplayLimit: quadrantDisplayLimit,
	}
}

// Enrich classifies every item independently. Pure: no I/O, no shared state,
// same input always yields the same output.
func (s *Service) Enrich(items []domain.RoadmapItem) []domain.EnrichedItem {
	enriched := make([]domain.EnrichedItem, 0, len(items))
	for _, item := range items {
		effortScore := s.effortNormalizer.Normalize(item)
		impactScore := s.impactNormalizer.Normalize(item)
		derivedLane := s.laneClassifier.Classify(item, effortScore, impactScore)
		enriched = append(enriched, domain.NewEnrichedItem(item, effortScore, impactScore, derivedLane))
	}
	return enriched
}

// BuildView aggregates an enriched snapshot into the lane and quadrant
// groupings the dashboard renders. An empty snapshot yields a view with all
// groups present and zero counts, never an error.
func (s *Service) BuildView(snapshot *domain.Snapshot, fromCache bool) *View {
	byLane := make(map[domain.Lane][]domain.EnrichedItem)
	byQuadrant := make(map[domain.Quadrant][]domain.EnrichedItem)

	for _, item := range snapshot.Items {
		byLane[item.Lane] = append(byLane[item.Lane], item)
		q := s.quadrantAssigner.Assign(item.EffortScore, item.ImpactScore)
		byQuadrant[q] = append(byQuadrant[q], item)
	}

	lanes := make([]LaneGroup, 0, len(domain.Lanes))
	for _, l := range domain.Lanes {
		items := byLane[l]
		lanes = append(lanes, LaneGroup{
			Lane:  l,
			Count: len(items),
			Items: items,
		})
	}

	quadrants := make([]QuadrantGroup, 0, len(domain.Quadrants))
	for _, q := range domain.Quadrants {
		items := byQuadrant[q]
		display := items
		overflow := 0
		if s.quadrantDisplayLimit > 0 && len(items) > s.quadrantDisplayLimit {
			display = items[:s.quadrantDisplayLimit]
			overflow = len(items) - s.quadrantDisplayLimit
		}
		quadrants = append(quadrants, QuadrantGroup{
			Quadrant:      q,
			Label:         q.Label(),
			Description:   q.Description(),
			Count:         len(items),
			Items:         display,
			OverflowCount: overflow,
		})
	}

	return &View{
		OrgID:       snapshot.OrgID,
		TotalItems:  len(snapshot.Items),
		Lanes:       lanes,
		Quadrants:   quadrants,
		GeneratedAt: snapshot.GeneratedAt,
		FromCache:   fromCache,
	}
}

// GetRoadmap serves the roadmap view, from the snapshot cache when a fresh
// snapshot exists, rebuilding otherwise. Cache read failures degrade to a
// rebuild.
func (s *Service) GetRoadmap(ctx context.Context, orgID string) (*View, error) {
	snapshot, err := s.snapshotRepo.GetSnapshot(ctx, orgID)
	if err == nil {
		if s.roadmapMetrics != nil {
			s.roadmapMetrics.RecordSnapshotCacheHit(ctx)
		}
		return s.BuildView(snapshot, true), nil
	}

	if !errors.Is(err, domain.ErrSnapshotNotFound) {
		slog.WarnContext(ctx, "snapshot cache read failed, rebuilding",
			slog.String("org_id", orgID),
			slog.String("error", err.Error()),
		)
		// Drop the unreadable record so it does not fail every read until
		// its TTL runs out.
		if delErr := s.snapshotRepo.DeleteSnapshot(ctx, orgID); delErr != nil {
			slog.WarnContext(ctx, "failed to evict snapshot",
				slog.String("org_id", orgID),
				slog.String("error", delErr.Error()),
			)
		}
	}
	if s.roadmapMetrics != nil {
		s.roadmapMetrics.RecordSnapshotCacheMiss(ctx)
	}

	return s.Rebuild(ctx, orgID, "")
}

// Rebuild fetches the raw roadmap, runs the full pipeline, caches the new
// snapshot and records the classification distribution. Cache writes and
// distribution recording are best-effort; only the backend fetch can fail
// the rebuild.
func (s *Service) Rebuild(ctx context.Context, orgID, runID string) (*View, error) {
	ctx, span := tracing.StartRebuildSpan(ctx, orgID, runID)
	defer span.End()

	start := time.Now()

	resp, err := s.scoringClient.GetRoadmap(ctx, orgID)
	if err != nil {
		tracing.RecordRebuildResult(span, 0, 0, 0, 0, err)
		return nil, fmt.Errorf("failed to fetch roadmap for %s: %w", orgID, err)
	}

	enriched := s.Enrich(resp.Items)
	snapshot := domain.NewSnapshot(orgID, enriched)
	view := s.BuildView(snapshot, false)

	if err := s.snapshotRepo.SaveSnapshot(ctx, snapshot, s.snapshotTTL); err != nil {
		slog.WarnContext(ctx, "failed to cache roadmap snapshot",
			slog.String("org_id", orgID),
			slog.String("error", err.Error()),
		)
	}

	s.recordDistribution(ctx, runID, snapshot, view)

	if s.roadmapMetrics != nil {
		s.roadmapMetrics.RecordItemsClassified(ctx, len(enriched))
		for _, g := range view.Lanes {
			s.roadmapMetrics.RecordLaneDistribution(ctx, g.Lane.String(), g.Count)
		}
		for _, g := range view.Quadrants {
			s.roadmapMetrics.RecordQuadrantDistribution(ctx, g.Quadrant.String(), g.Count)
		}
		s.roadmapMetrics.RecordRebuildDuration(ctx, time.Since(start))
	}

	tracing.RecordRebuildResult(span, len(enriched),
		view.LaneCount(domain.LaneImmediate),
		view.LaneCount(domain.LaneNearTerm),
		view.LaneCount(domain.LaneStrategic),
		nil,
	)

	slog.InfoContext(ctx, "roadmap rebuilt",
		slog.String("org_id", orgID),
		slog.Int("total_items", len(enriched)),
		slog.Int("immediate", view.LaneCount(domain.LaneImmediate)),
		slog.Int("near_term", view.LaneCount(domain.LaneNearTerm)),
		slog.Int("strategic", view.LaneCount(domain.LaneStrategic)),
	)

	return view, nil
}

func (s *Service) recordDistribution(ctx context.Context, runID string, snapshot *domain.Snapshot, view *View) {
	if s.resultRecorder == nil {
		return
	}

	laneRecords := make([]domain.LaneDistributionRecord, 0, len(view.Lanes))
	for _, g := range view.Lanes {
		laneRecords = append(laneRecords, domain.LaneDistributionRecord{
			RunID:       runID,
			OrgID:       snapshot.OrgID,
			Lane:        g.Lane.String(),
			Count:       g.Count,
			GeneratedAt: snapshot.GeneratedAt,
		})
	}

	quadrantRecords := make([]domain.QuadrantDistributionRecord, 0, len(view.Quadrants))
	for _, g := range view.Quadrants {
		quadrantRecords = append(quadrantRecords, domain.QuadrantDistributionRecord{
			RunID:       runID,
			OrgID:       snapshot.OrgID,
			Quadrant:    g.Quadrant.String(),
			Count:       g.Count,
			GeneratedAt: snapshot.GeneratedAt,
		})
	}

	if err := s.resultRecorder.RecordLaneDistribution(ctx, laneRecords); err != nil {
		slog.WarnContext(ctx, "failed to record lane distribution",
			slog.String("org_id", snapshot.OrgID),
			slog.String("error", err.Error()),
		)
	}
	if err := s.resultRecorder.RecordQuadrantDistribution(ctx, quadrantRecords); err != nil {
		slog.WarnContext(ctx, "failed to record quadrant distribution",
			slog.String("org_id", snapshot.OrgID),
			slog.String("error", err.Error()),
		)
	}
}
