package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aegisready/readiness-roadmap/internal/domain"
)

const (
	snapshotKeyPrefix   = "roadmap:snapshot:"
	organizationListKey = "roadmap:organizations"
)

type snapshotRecord struct {
	OrgID       string                `json:"org_id"`
	Items       []domain.EnrichedItem `json:"items"`
	GeneratedAt time.Time             `json:"generated_at"`
}

type organizationListRecord struct {
	Organizations []domain.Organization `json:"organizations"`
	CachedAt      time.Time             `json:"cached_at"`
}

type snapshotRepository struct {
	client *redis.Client
}

func NewSnapshotRepository(client *redis.Client) domain.SnapshotRepository {
	return &snapshotRepository{
		client: client,
	}
}

func (r *snapshotRepository) SaveSnapshot(ctx context.Context, snapshot *domain.Snapshot, ttl time.Duration) error {
	if snapshot == nil {
		return ErrInvalidSnapshotData
	}

	key := snapshotKeyPrefix + snapshot.OrgID

	record := snapshotRecord{
		OrgID:       snapshot.OrgID,
		Items:       snapshot.Items,
		GeneratedAt: snapshot.GeneratedAt,
	}

	data, err := json.Marshal(record)
	if err != nil {
		return ErrInvalidSnapshotData
	}

	return r.client.Set(ctx, key, data, ttl).Err()
}

func (r *snapshotRepository) GetSnapshot(ctx context.Context, orgID string) (*domain.Snapshot, error) {
	key := snapshotKeyPrefix + orgID

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSnapshotNotFound
		}
		return nil, err
	}

	var record snapshotRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, ErrInvalidSnapshotData
	}

	return &domain.Snapshot{
		OrgID:       record.OrgID,
		Items:       record.Items,
		GeneratedAt: record.GeneratedAt,
	}, nil
}

func (r *snapshotRepository) DeleteSnapshot(ctx context.Context, orgID string) error {
	key := snapshotKeyPrefix + orgID
	return r.client.Del(ctx, key).Err()
}

func (r *snapshotRepository) SaveOrganizations(ctx context.Context, orgs []domain.Organization, ttl time.Duration) error {
	record := organizationListRecord{
		Organizations: orgs,
		CachedAt:      time.Now().UTC(),
	}

	data, err := json.Marshal(record)
	if err != nil {
		return ErrInvalidOrganizationData
	}

	return r.client.Set(ctx, organizationListKey, data, ttl).Err()
}

func (r *snapshotRepository) GetOrganizations(ctx context.Context) ([]domain.Organization, error) {
	data, err := r.client.Get(ctx, organizationListKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrOrganizationsNotFound
		}
		return nil, err
	}

	var record organizationListRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, ErrInvalidOrganizationData
	}

	return record.Organizations, nil
}
