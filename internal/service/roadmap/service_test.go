package roadmap

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/aegisready/readiness-roadmap/internal/domain"
	"github.com/aegisready/readiness-roadmap/internal/infra/scoring"
	"github.com/aegisready/readiness-roadmap/internal/service/effort"
	"github.com/aegisready/readiness-roadmap/internal/service/impact"
	"github.com/aegisready/readiness-roadmap/internal/service/lane"
	"github.com/aegisready/readiness-roadmap/internal/service/quadrant"
)

func createTestService(
	scoringClient scoring.Repository,
	snapshotRepo domain.SnapshotRepository,
	quadrantDisplayLimit int,
) *Service {
	return NewService(
		scoringClient,
		snapshotRepo,
		effort.NewNormalizer(),
		impact.NewNormalizer(),
		lane.NewClassifier(),
		quadrant.NewAssigner(),
		nil,
		nil,
		5*time.Minute,
		quadrantDisplayLimit,
	)
}

func TestEnrichScenarios(t *testing.T) {
	svc := createTestService(nil, nil, 0)

	tests := []struct {
		name       string
		item       domain.RoadmapItem
		wantEffort int
		wantImpact int
		wantLane   domain.Lane
	}{
		{
			name:       "low effort critical impact is immediate",
			item:       domain.RoadmapItem{Effort: "low", RiskImpact: "critical"},
			wantEffort: 1,
			wantImpact: 5,
			wantLane:   domain.LaneImmediate,
		},
		{
			name:       "label override beats computed scores",
			item:       domain.RoadmapItem{Effort: "significant", Severity: "medium", TimelineLabel: "Strategic Initiative"},
			wantEffort: 5,
			wantImpact: 3,
			wantLane:   domain.LaneStrategic,
		},
		{
			name:       "unknown fields resolve through defaults",
			item:       domain.RoadmapItem{Title: "Review logging"},
			wantEffort: 5,
			wantImpact: 2,
			wantLane:   domain.LaneStrategic,
		},
		{
			name:       "phase fallback with high severity is near-term",
			item:       domain.RoadmapItem{Phase: "60", Severity: "HIGH"},
			wantEffort: 3,
			wantImpact: 4,
			wantLane:   domain.LaneNearTerm,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enriched := svc.Enrich([]domain.RoadmapItem{tt.item})
			if len(enriched) != 1 {
				t.Fatalf("Enrich() returned %d items, want 1", len(enriched))
			}

			got := enriched[0]
			if got.EffortScore != tt.wantEffort {
				t.Errorf("effort = %d, want %d", got.EffortScore, tt.wantEffort)
			}
			if got.ImpactScore != tt.wantImpact {
				t.Errorf("impact = %d, want %d", got.ImpactScore, tt.wantImpact)
			}
			if got.Lane != tt.wantLane {
				t.Errorf("lane = %v, want %v", got.Lane, tt.wantLane)
			}
		})
	}
}

func TestBuildViewGrouping(t *testing.T) {
	svc := createTestService(nil, nil, 0)

	items := []domain.RoadmapItem{
		{FindingID: "f-1", Effort: "low", RiskImpact: "critical"},          // immediate / quick wins
		{FindingID: "f-2", Effort: "significant", RiskImpact: "critical"}, // near-term / strategic bets
		{FindingID: "f-3", Effort: "low", RiskImpact: "medium"},           // strategic / fill ins
		{FindingID: "f-4", Effort: "high", RiskImpact: "low"},             // strategic / deprioritize
	}

	snapshot := domain.NewSnapshot("org-1", svc.Enrich(items))
	view := svc.BuildView(snapshot, false)

	if view.TotalItems != 4 {
		t.Fatalf("TotalItems = %d, want 4", view.TotalItems)
	}

	wantLaneCounts := map[domain.Lane]int{
		domain.LaneImmediate: 1,
		domain.LaneNearTerm:  1,
		domain.LaneStrategic: 2,
	}
	for l, want := range wantLaneCounts {
		if got := view.LaneCount(l); got != want {
			t.Errorf("LaneCount(%v) = %d, want %d", l, got, want)
		}
	}

	wantQuadrantCounts := map[domain.Quadrant]int{
		domain.QuadrantQuickWins:     1,
		domain.QuadrantStrategicBets: 1,
		domain.QuadrantFillIns:       1,
		domain.QuadrantDeprioritize:  1,
	}
	for _, g := range view.Quadrants {
		if g.Count != wantQuadrantCounts[g.Quadrant] {
			t.Errorf("quadrant %v count = %d, want %d", g.Quadrant, g.Count, wantQuadrantCounts[g.Quadrant])
		}
		if g.Label == "" || g.Description == "" {
			t.Errorf("quadrant %v missing label or description", g.Quadrant)
		}
	}

	// The quick-wins cell holds the immediate-lane item.
	for _, g := range view.Quadrants {
		if g.Quadrant == domain.QuadrantQuickWins {
			if len(g.Items) != 1 || g.Items[0].FindingID != "f-1" {
				t.Errorf("quick wins items = %+v, want f-1", g.Items)
			}
		}
	}
}

func TestBuildViewEmptySnapshot(t *testing.T) {
	svc := createTestService(nil, nil, 5)

	view := svc.BuildView(domain.NewSnapshot("org-1", nil), false)

	if view.TotalItems != 0 {
		t.Errorf("TotalItems = %d, want 0", view.TotalItems)
	}
	if len(view.Lanes) != len(domain.Lanes) {
		t.Errorf("lanes = %d, want %d", len(view.Lanes), len(domain.Lanes))
	}
	if len(view.Quadrants) != len(domain.Quadrants) {
		t.Errorf("quadrants = %d, want %d", len(view.Quadrants), len(domain.Quadrants))
	}
	for _, g := range view.Lanes {
		if g.Count != 0 {
			t.Errorf("lane %v count = %d, want 0", g.Lane, g.Count)
		}
	}
}

func TestBuildViewQuadrantDisplayLimit(t *testing.T) {
	svc := createTestService(nil, nil, 2)

	items := make([]domain.RoadmapItem, 0, 5)
	for range 5 {
		items = append(items, domain.RoadmapItem{Effort: "low", RiskImpact: "critical"})
	}

	snapshot := domain.NewSnapshot("org-1", svc.Enrich(items))
	view := svc.BuildView(snapshot, false)

	for _, g := range view.Quadrants {
		if g.Quadrant != domain.QuadrantQuickWins {
			continue
		}
		if g.Count != 5 {
			t.Errorf("count = %d, want 5", g.Count)
		}
		if len(g.Items) != 2 {
			t.Errorf("displayed items = %d, want 2", len(g.Items))
		}
		if g.OverflowCount != 3 {
			t.Errorf("overflow = %d, want 3", g.OverflowCount)
		}
	}
}

func TestGetRoadmapCacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockScoring := scoring.NewMockRepository(ctrl)
	mockRepo := domain.NewMockSnapshotRepository(ctrl)

	cached := domain.NewSnapshot("org-1", []domain.EnrichedItem{
		domain.NewEnrichedItem(domain.RoadmapItem{FindingID: "f-1"}, 1, 5, domain.LaneImmediate),
	})

	mockRepo.EXPECT().
		GetSnapshot(gomock.Any(), "org-1").
		Return(cached, nil)

	svc := createTestService(mockScoring, mockRepo, 0)

	view, err := svc.GetRoadmap(context.Background(), "org-1")
	if err != nil {
		t.Fatalf("GetRoadmap() error = %v", err)
	}
	if !view.FromCache {
		t.Error("FromCache = false, want true")
	}
	if view.TotalItems != 1 {
		t.Errorf("TotalItems = %d, want 1", view.TotalItems)
	}
}

func TestGetRoadmapCacheMissRebuilds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockScoring := scoring.NewMockRepository(ctrl)
	mockRepo := domain.NewMockSnapshotRepository(ctrl)

	mockRepo.EXPECT().
		GetSnapshot(gomock.Any(), "org-1").
		Return(nil, domain.ErrSnapshotNotFound)
	mockScoring.EXPECT().
		GetRoadmap(gomock.Any(), "org-1").
		Return(&scoring.RoadmapResponse{
			OrgID: "org-1",
			Items: []domain.RoadmapItem{{FindingID: "f-1", Effort: "low", RiskImpact: "critical"}},
			Count: 1,
		}, nil)
	mockRepo.EXPECT().
		SaveSnapshot(gomock.Any(), gomock.Any(), 5*time.Minute).
		Return(nil)

	svc := createTestService(mockScoring, mockRepo, 0)

	view, err := svc.GetRoadmap(context.Background(), "org-1")
	if err != nil {
		t.Fatalf("GetRoadmap() error = %v", err)
	}
	if view.FromCache {
		t.Error("FromCache = true, want false")
	}
	if got := view.LaneCount(domain.LaneImmediate); got != 1 {
		t.Errorf("immediate count = %d, want 1", got)
	}
}

func TestGetRoadmapCorruptCacheEvictsAndRebuilds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockScoring := scoring.NewMockRepository(ctrl)
	mockRepo := domain.NewMockSnapshotRepository(ctrl)

	mockRepo.EXPECT().
		GetSnapshot(gomock.Any(), "org-1").
		Return(nil, errors.New("failed to unmarshal snapshot data"))
	mockRepo.EXPECT().
		DeleteSnapshot(gomock.Any(), "org-1").
		Return(nil)
	mockScoring.EXPECT().
		GetRoadmap(gomock.Any(), "org-1").
		Return(&scoring.RoadmapResponse{
			OrgID: "org-1",
			Items: []domain.RoadmapItem{{FindingID: "f-1", Effort: "low", RiskImpact: "critical"}},
			Count: 1,
		}, nil)
	mockRepo.EXPECT().
		SaveSnapshot(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	svc := createTestService(mockScoring, mockRepo, 0)

	view, err := svc.GetRoadmap(context.Background(), "org-1")
	if err != nil {
		t.Fatalf("GetRoadmap() error = %v", err)
	}
	if view.FromCache {
		t.Error("FromCache = true, want false")
	}
	if view.TotalItems != 1 {
		t.Errorf("TotalItems = %d, want 1", view.TotalItems)
	}
}

func TestRebuildBackendFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockScoring := scoring.NewMockRepository(ctrl)
	mockRepo := domain.NewMockSnapshotRepository(ctrl)

	mockScoring.EXPECT().
		GetRoadmap(gomock.Any(), "org-1").
		Return(nil, errors.New("backend unavailable"))

	svc := createTestService(mockScoring, mockRepo, 0)

	if _, err := svc.Rebuild(context.Background(), "org-1", "run-1"); err == nil {
		t.Fatal("Rebuild() expected error when backend fetch fails")
	}
}

func TestRebuildCacheWriteFailureIsNonFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockScoring := scoring.NewMockRepository(ctrl)
	mockRepo := domain.NewMockSnapshotRepository(ctrl)

	mockScoring.EXPECT().
		GetRoadmap(gomock.Any(), "org-1").
		Return(&scoring.RoadmapResponse{OrgID: "org-1", Items: nil, Count: 0}, nil)
	mockRepo.EXPECT().
		SaveSnapshot(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("redis down"))

	svc := createTestService(mockScoring, mockRepo, 0)

	view, err := svc.Rebuild(context.Background(), "org-1", "")
	if err != nil {
		t.Fatalf("Rebuild() error = %v, want nil on cache write failure", err)
	}
	if view.TotalItems != 0 {
		t.Errorf("TotalItems = %d, want 0", view.TotalItems)
	}
}
