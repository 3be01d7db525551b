package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aegisready/readiness-roadmap/internal/domain"
)

const auditEventsKeyPrefix = "audit:events:"

type auditEventRecord struct {
	ID              string    `json:"id"`
	OrgID           string    `json:"org_id"`
	Name            string    `json:"name"`
	Framework       string    `json:"framework,omitempty"`
	ScheduledFor    time.Time `json:"scheduled_for"`
	ReminderLeadDay int       `json:"reminder_lead_days"`
	CreatedAt       time.Time `json:"created_at"`
}

type auditRepository struct {
	client *redis.Client
}

func NewAuditRepository(client *redis.Client) domain.AuditRepository {
	return &auditRepository{
		client: client,
	}
}

// Events live in one hash per organization, keyed by event ID. Calendar
// entries have no TTL; they are removed explicitly.
func (r *auditRepository) SaveAuditEvent(ctx context.Context, event *domain.AuditEvent) error {
	if event == nil {
		return ErrInvalidAuditEventData
	}

	key := auditEventsKeyPrefix + event.OrgID

	record := auditEventRecord{
		ID:              event.ID,
		OrgID:           event.OrgID,
		Name:            event.Name,
		Framework:       event.Framework,
		ScheduledFor:    event.ScheduledFor,
		ReminderLeadDay: event.ReminderLeadDay,
		CreatedAt:       event.CreatedAt,
	}

	data, err := json.Marshal(record)
	if err != nil {
		return ErrInvalidAuditEventData
	}

	return r.client.HSet(ctx, key, event.ID, data).Err()
}

func (r *auditRepository) GetAuditEvent(ctx context.Context, orgID, eventID string) (*domain.AuditEvent, error) {
	key := auditEventsKeyPrefix + orgID

	data, err := r.client.HGet(ctx, key, eventID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrAuditEventNotFound
		}
		return nil, err
	}

	var record auditEventRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, ErrInvalidAuditEventData
	}

	return recordToEvent(record), nil
}

func (r *auditRepository) ListAuditEvents(ctx context.Context, orgID string) ([]domain.AuditEvent, error) {
	key := auditEventsKeyPrefix + orgID

	entries, err := r.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, err
	}

	events := make([]domain.AuditEvent, 0, len(entries))
	for _, raw := range entries {
		var record auditEventRecord
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			return nil, ErrInvalidAuditEventData
		}
		events = append(events, *recordToEvent(record))
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].ScheduledFor.Before(events[j].ScheduledFor)
	})

	return events, nil
}

func (r *auditRepository) DeleteAuditEvent(ctx context.Context, orgID, eventID string) error {
	key := auditEventsKeyPrefix + orgID

	removed, err := r.client.HDel(ctx, key, eventID).Result()
	if err != nil {
		return err
	}
	if removed == 0 {
		return domain.ErrAuditEventNotFound
	}

	return nil
}

func recordToEvent(record auditEventRecord) *domain.AuditEvent {
	return &domain.AuditEvent{
		ID:              record.ID,
		OrgID:           record.OrgID,
		Name:            record.Name,
		Framework:       record.Framework,
		ScheduledFor:    record.ScheduledFor,
		ReminderLeadDay: record.ReminderLeadDay,
		CreatedAt:       record.CreatedAt,
	}
}
