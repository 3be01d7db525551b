package audit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aegisready/readiness-roadmap/internal/client"
	"github.com/aegisready/readiness-roadmap/internal/domain"
)

// Service manages the audit calendar: persisted events plus a scheduled
// reminder per event on the task queue.
type Service struct {
	auditRepo     domain.AuditRepository
	reminderQueue client.ReminderQueue
	now           func() time.Time
}

func NewService(auditRepo domain.AuditRepository, reminderQueue client.ReminderQueue) *Service {
	return &Service{
		auditRepo:     auditRepo,
		reminderQueue: reminderQueue,
		now:           time.Now,
	}
}

type CreateEventInput struct {
	Name            string
	Framework       string
	ScheduledFor    time.Time
	ReminderLeadDay int
}

// CreateEvent persists a new calendar entry and schedules its reminder. A
// reminder whose fire time is already past is skipped rather than queued.
func (s *Service) CreateEvent(ctx context.Context, orgID string, input CreateEventInput) (*domain.AuditEvent, error) {
	event := &domain.AuditEvent{
		ID:              uuid.NewString(),
		OrgID:           orgID,
		Name:            input.Name,
		Framework:       input.Framework,
		ScheduledFor:    input.ScheduledFor,
		ReminderLeadDay: input.ReminderLeadDay,
		CreatedAt:       s.now().UTC(),
	}

	if err := s.auditRepo.SaveAuditEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to save audit event: %w", err)
	}

	s.scheduleReminder(ctx, event)

	return event, nil
}

// ListEvents returns all calendar entries for the organization.
func (s *Service) ListEvents(ctx context.Context, orgID string) ([]domain.AuditEvent, error) {
	events, err := s.auditRepo.ListAuditEvents(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit events for %s: %w", orgID, err)
	}
	return events, nil
}

func (s *Service) GetEvent(ctx context.Context, orgID, eventID string) (*domain.AuditEvent, error) {
	return s.auditRepo.GetAuditEvent(ctx, orgID, eventID)
}

// DeleteEvent removes the calendar entry and cancels any pending reminder.
func (s *Service) DeleteEvent(ctx context.Context, orgID, eventID string) error {
	if err := s.auditRepo.DeleteAuditEvent(ctx, orgID, eventID); err != nil {
		return err
	}

	if s.reminderQueue != nil {
		if err := s.reminderQueue.CancelReminder(ctx, eventID); err != nil {
			slog.WarnContext(ctx, "failed to cancel audit reminder",
				slog.String("org_id", orgID),
				slog.String("event_id", eventID),
				slog.String("error", err.Error()),
			)
		}
	}

	return nil
}

func (s *Service) scheduleReminder(ctx context.Context, event *domain.AuditEvent) {
	if s.reminderQueue == nil {
		return
	}

	remindAt := event.ReminderTime()
	if !remindAt.After(s.now()) {
		slog.InfoContext(ctx, "audit reminder time already past, skipping",
			slog.String("org_id", event.OrgID),
			slog.String("event_id", event.ID),
			slog.Time("remind_at", remindAt),
		)
		return
	}

	task := &client.ReminderTask{
		EventID:      event.ID,
		OrgID:        event.OrgID,
		EventName:    event.Name,
		Framework:    event.Framework,
		ScheduledFor: event.ScheduledFor,
		RemindAt:     remindAt,
	}

	if _, err := s.reminderQueue.ScheduleReminder(ctx, task); err != nil {
		// The calendar entry stands even when the queue is unreachable.
		slog.ErrorContext(ctx, "failed to schedule audit reminder",
			slog.String("org_id", event.OrgID),
			slog.String("event_id", event.ID),
			slog.String("error", err.Error()),
		)
	}
}
