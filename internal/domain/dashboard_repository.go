package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=dashboard_repository.go -destination=dashboard_repository_mock.go -package=domain

// SnapshotRepository caches classified roadmap snapshots and proxied
// organization lists with a TTL.
type SnapshotRepository interface {
	SaveSnapshot(ctx context.Context, snapshot *Snapshot, ttl time.Duration) error
	GetSnapshot(ctx context.Context, orgID string) (*Snapshot, error)
	DeleteSnapshot(ctx context.Context, orgID string) error
	SaveOrganizations(ctx context.Context, orgs []Organization, ttl time.Duration) error
	GetOrganizations(ctx context.Context) ([]Organization, error)
}

// AuditRepository stores audit-calendar entries per organization.
type AuditRepository interface {
	SaveAuditEvent(ctx context.Context, event *AuditEvent) error
	GetAuditEvent(ctx context.Context, orgID, eventID string) (*AuditEvent, error)
	ListAuditEvents(ctx context.Context, orgID string) ([]AuditEvent, error)
	DeleteAuditEvent(ctx context.Context, orgID, eventID string) error
}

// TechStackRepository stores the tech-stack registry document per
// organization.
type TechStackRepository interface {
	SaveTechStack(ctx context.Context, stack *TechStack) error
	GetTechStack(ctx context.Context, orgID string) (*TechStack, error)
}
