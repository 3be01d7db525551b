package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aegisready/readiness-roadmap/internal/domain"
)

const techStackKeyPrefix = "techstack:"

type techStackRecord struct {
	OrgID     string                  `json:"org_id"`
	Entries   []domain.TechStackEntry `json:"entries"`
	UpdatedAt time.Time               `json:"updated_at"`
}

type techStackRepository struct {
	client *redis.Client
}

func NewTechStackRepository(client *redis.Client) domain.TechStackRepository {
	return &techStackRepository{
		client: client,
	}
}

func (r *techStackRepository) SaveTechStack(ctx context.Context, stack *domain.TechStack) error {
	if stack == nil {
		return ErrInvalidTechStackData
	}

	key := techStackKeyPrefix + stack.OrgID

	record := techStackRecord{
		OrgID:     stack.OrgID,
		Entries:   stack.Entries,
		UpdatedAt: stack.UpdatedAt,
	}

	data, err := json.Marshal(record)
	if err != nil {
		return ErrInvalidTechStackData
	}

	// Registry documents persist until the next replacement.
	return r.client.Set(ctx, key, data, 0).Err()
}

func (r *techStackRepository) GetTechStack(ctx context.Context, orgID string) (*domain.TechStack, error) {
	key := techStackKeyPrefix + orgID

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrTechStackNotFound
		}
		return nil, err
	}

	var record techStackRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, ErrInvalidTechStackData
	}

	return &domain.TechStack{
		OrgID:     record.OrgID,
		Entries:   record.Entries,
		UpdatedAt: record.UpdatedAt,
	}, nil
}
