package techstack

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aegisready/readiness-roadmap/internal/domain"
)

// Service manages the per-organization tech-stack registry.
type Service struct {
	techStackRepo domain.TechStackRepository
	now           func() time.Time
}

func NewService(techStackRepo domain.TechStackRepository) *Service {
	return &Service{
		techStackRepo: techStackRepo,
		now:           time.Now,
	}
}

// GetStack returns the registry document. An organization with no registered
// stack gets an empty document, not an error.
func (s *Service) GetStack(ctx context.Context, orgID string) (*domain.TechStack, error) {
	stack, err := s.techStackRepo.GetTechStack(ctx, orgID)
	if err != nil {
		if errors.Is(err, domain.ErrTechStackNotFound) {
			return &domain.TechStack{OrgID: orgID, Entries: []domain.TechStackEntry{}}, nil
		}
		return nil, fmt.Errorf("failed to load tech stack for %s: %w", orgID, err)
	}
	return stack, nil
}

// ReplaceStack overwrites the registry document with the given entries.
func (s *Service) ReplaceStack(ctx context.Context, orgID string, entries []domain.TechStackEntry) (*domain.TechStack, error) {
	if entries == nil {
		entries = []domain.TechStackEntry{}
	}

	stack := &domain.TechStack{
		OrgID:     orgID,
		Entries:   entries,
		UpdatedAt: s.now().UTC(),
	}

	if err := s.techStackRepo.SaveTechStack(ctx, stack); err != nil {
		return nil, fmt.Errorf("failed to save tech stack for %s: %w", orgID, err)
	}

	return stack, nil
}
