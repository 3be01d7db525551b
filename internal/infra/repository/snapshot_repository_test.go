package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aegisready/readiness-roadmap/internal/domain"
	"github.com/aegisready/readiness-roadmap/internal/testutil"
)

func TestSnapshotRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	repo := NewSnapshotRepository(client)

	snapshot := domain.NewSnapshot("org-1", []domain.EnrichedItem{
		domain.NewEnrichedItem(domain.RoadmapItem{
			FindingID:  "f-1",
			Title:      "Enable MFA for admin accounts",
			Effort:     "low",
			RiskImpact: "critical",
		}, 1, 5, domain.LaneImmediate),
		domain.NewEnrichedItem(domain.RoadmapItem{
			FindingID: "f-2",
			Title:     "Migrate legacy VPN",
			Effort:    "significant",
			Severity:  "medium",
		}, 5, 3, domain.LaneStrategic),
	})

	if err := repo.SaveSnapshot(ctx, snapshot, time.Minute); err != nil {
		t.Fatalf("SaveSnapshot() error = %v", err)
	}

	got, err := repo.GetSnapshot(ctx, "org-1")
	if err != nil {
		t.Fatalf("GetSnapshot() error = %v", err)
	}

	if got.OrgID != "org-1" {
		t.Errorf("OrgID = %q, want org-1", got.OrgID)
	}
	if len(got.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(got.Items))
	}
	if got.Items[0].FindingID != "f-1" || got.Items[0].Lane != domain.LaneImmediate {
		t.Errorf("first item = %+v, want f-1 in immediate lane", got.Items[0])
	}
	if got.Items[1].EffortScore != 5 || got.Items[1].ImpactScore != 3 {
		t.Errorf("second item scores = %d/%d, want 5/3", got.Items[1].EffortScore, got.Items[1].ImpactScore)
	}
	if !got.GeneratedAt.Equal(snapshot.GeneratedAt) {
		t.Errorf("GeneratedAt = %v, want %v", got.GeneratedAt, snapshot.GeneratedAt)
	}
}

func TestGetSnapshotMissing(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	repo := NewSnapshotRepository(client)

	_, err := repo.GetSnapshot(ctx, "org-unknown")
	if !errors.Is(err, domain.ErrSnapshotNotFound) {
		t.Fatalf("GetSnapshot() error = %v, want ErrSnapshotNotFound", err)
	}
}

func TestDeleteSnapshot(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	repo := NewSnapshotRepository(client)

	snapshot := domain.NewSnapshot("org-1", nil)
	if err := repo.SaveSnapshot(ctx, snapshot, time.Minute); err != nil {
		t.Fatalf("SaveSnapshot() error = %v", err)
	}

	if err := repo.DeleteSnapshot(ctx, "org-1"); err != nil {
		t.Fatalf("DeleteSnapshot() error = %v", err)
	}

	if _, err := repo.GetSnapshot(ctx, "org-1"); !errors.Is(err, domain.ErrSnapshotNotFound) {
		t.Fatalf("GetSnapshot() after delete error = %v, want ErrSnapshotNotFound", err)
	}
}

func TestOrganizationListRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	repo := NewSnapshotRepository(client)

	_, err := repo.GetOrganizations(ctx)
	if !errors.Is(err, domain.ErrOrganizationsNotFound) {
		t.Fatalf("GetOrganizations() error = %v, want ErrOrganizationsNotFound", err)
	}

	orgs := []domain.Organization{
		{ID: "org-1", Name: "Acme", Framework: "soc2"},
		{ID: "org-2", Name: "Globex", Framework: "iso27001"},
	}
	if err := repo.SaveOrganizations(ctx, orgs, time.Minute); err != nil {
		t.Fatalf("SaveOrganizations() error = %v", err)
	}

	got, err := repo.GetOrganizations(ctx)
	if err != nil {
		t.Fatalf("GetOrganizations() error = %v", err)
	}
	if len(got) != 2 || got[0].ID != "org-1" || got[1].Framework != "iso27001" {
		t.Errorf("organizations = %+v, want saved list", got)
	}
}
