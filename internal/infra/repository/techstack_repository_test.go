package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aegisready/readiness-roadmap/internal/domain"
	"github.com/aegisready/readiness-roadmap/internal/testutil"
)

func TestTechStackRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	repo := NewTechStackRepository(client)

	_, err := repo.GetTechStack(ctx, "org-1")
	if !errors.Is(err, domain.ErrTechStackNotFound) {
		t.Fatalf("GetTechStack() error = %v, want ErrTechStackNotFound", err)
	}

	stack := &domain.TechStack{
		OrgID: "org-1",
		Entries: []domain.TechStackEntry{
			{Name: "AWS", Category: "cloud", Vendor: "Amazon", Managed: true},
			{Name: "Okta", Category: "identity", Vendor: "Okta"},
		},
		UpdatedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}

	if err := repo.SaveTechStack(ctx, stack); err != nil {
		t.Fatalf("SaveTechStack() error = %v", err)
	}

	got, err := repo.GetTechStack(ctx, "org-1")
	if err != nil {
		t.Fatalf("GetTechStack() error = %v", err)
	}
	if len(got.Entries) != 2 || got.Entries[0].Name != "AWS" {
		t.Errorf("entries = %+v, want saved entries", got.Entries)
	}
	if !got.UpdatedAt.Equal(stack.UpdatedAt) {
		t.Errorf("UpdatedAt = %v, want %v", got.UpdatedAt, stack.UpdatedAt)
	}
}

func TestSaveTechStackReplaces(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	repo := NewTechStackRepository(client)

	first := &domain.TechStack{
		OrgID:   "org-1",
		Entries: []domain.TechStackEntry{{Name: "GCP", Category: "cloud"}},
	}
	if err := repo.SaveTechStack(ctx, first); err != nil {
		t.Fatalf("SaveTechStack() error = %v", err)
	}

	second := &domain.TechStack{
		OrgID: "org-1",
		Entries: []domain.TechStackEntry{
			{Name: "Datadog", Category: "monitoring"},
			{Name: "GitHub", Category: "scm"},
		},
	}
	if err := repo.SaveTechStack(ctx, second); err != nil {
		t.Fatalf("SaveTechStack() error = %v", err)
	}

	got, err := repo.GetTechStack(ctx, "org-1")
	if err != nil {
		t.Fatalf("GetTechStack() error = %v", err)
	}
	if len(got.Entries) != 2 || got.Entries[0].Name != "Datadog" {
		t.Errorf("entries = %+v, want replacement document", got.Entries)
	}
}
