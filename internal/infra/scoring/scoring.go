package scoring

import (
	"context"

	"github.com/aegisready/readiness-roadmap/internal/domain"
)

//go:generate mockgen -source=scoring.go -destination=scoring_mock.go -package=scoring

// Repository is the surface of the external scoring backend consumed by the
// dashboard: organization listing, questionnaire rubric, score computation
// and the raw remediation roadmap payload.
type Repository interface {
	GetOrganizations(ctx context.Context) ([]domain.Organization, error)
	GetRubric(ctx context.Context) (*Rubric, error)
	ComputeScore(ctx context.Context, orgID string) (*ScoreResult, error)
	GetRoadmap(ctx context.Context, orgID string) (*RoadmapResponse, error)
}
