package client

import "context"

//go:generate mockgen -source=reminder_queue.go -destination=reminder_queue_mock.go -package=client

type ReminderQueue interface {
	ScheduleReminder(ctx context.Context, task *ReminderTask) (*TaskResponse, error)
	CancelReminder(ctx context.Context, taskID string) error
}
