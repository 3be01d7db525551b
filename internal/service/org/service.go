package org

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aegisready/readiness-roadmap/internal/domain"
	"github.com/aegisready/readiness-roadmap/internal/infra/scoring"
)

// Service proxies the scoring backend's organization, rubric and score
// endpoints, caching the organization list so dashboard navigation does not
// hammer the backend.
type Service struct {
	scoringClient scoring.Repository
	snapshotRepo  domain.SnapshotRepository
	orgListTTL    time.Duration
}

func NewService(
	scoringClient scoring.Repository,
	snapshotRepo domain.SnapshotRepository,
	orgListTTL time.Duration,
) *Service {
	return &Service{
		scoringClient: scoringClient,
		snapshotRepo:  snapshotRepo,
		orgListTTL:    orgListTTL,
	}
}

// ListOrganizations returns the organization list, served from cache when a
// fresh copy exists.
func (s *Service) ListOrganizations(ctx context.Context) ([]domain.Organization, error) {
	orgs, err := s.snapshotRepo.GetOrganizations(ctx)
	if err == nil {
		return orgs, nil
	}

	if !errors.Is(err, domain.ErrOrganizationsNotFound) {
		slog.WarnContext(ctx, "organization cache read failed, fetching from backend",
			slog.String("error", err.Error()),
		)
	}

	orgs, err = s.scoringClient.GetOrganizations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch organizations: %w", err)
	}

	if err := s.snapshotRepo.SaveOrganizations(ctx, orgs, s.orgListTTL); err != nil {
		slog.WarnContext(ctx, "failed to cache organization list",
			slog.String("error", err.Error()),
		)
	}

	return orgs, nil
}

// GetRubric passes the questionnaire definition through unchanged.
func (s *Service) GetRubric(ctx context.Context) (*scoring.Rubric, error) {
	rubric, err := s.scoringClient.GetRubric(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rubric: %w", err)
	}
	return rubric, nil
}

// GetScore passes the computed readiness score through unchanged.
func (s *Service) GetScore(ctx context.Context, orgID string) (*scoring.ScoreResult, error) {
	result, err := s.scoringClient.ComputeScore(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute score for %s: %w", orgID, err)
	}
	return result, nil
}
