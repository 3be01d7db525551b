//go:build !gcloud

package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aegisready/readiness-roadmap/internal/client"
	"github.com/aegisready/readiness-roadmap/internal/config"
	"github.com/aegisready/readiness-roadmap/internal/observability"
	"github.com/aegisready/readiness-roadmap/internal/observability/logging"
)

func initReminderQueue(_ context.Context, cfg *config.Config) (client.ReminderQueue, func() error, error) {
	if cfg.ReminderQueue.WebhookTasksURL == "" {
		slog.Warn("REMINDER_TASKS_URL not set, audit reminder scheduling disabled")

		return nil, nil, nil
	}

	rq := client.NewWebhookTasksClient(
		cfg.ReminderQueue.WebhookTasksURL,
		cfg.ReminderQueue.QueueName,
		cfg.ReminderQueue.MaxRetries,
	)

	slog.Info("reminder queue initialized",
		slog.String("type", "webhook_tasks"),
		slog.String("url", cfg.ReminderQueue.WebhookTasksURL),
		slog.String("queue", cfg.ReminderQueue.QueueName),
	)

	return rq, nil, nil
}

func initObservability(ctx context.Context) (*observability.Resources, error) {
	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "readiness-roadmap"
	}

	env := logging.EnvDev
	if e := os.Getenv("ENV"); e != "" {
		env = logging.Environment(e)
	}

	obs, err := observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:     serviceName,
			Version:  Version,
			Revision: "",
		},
		Environment:   env,
		GCPProjectID:  "",
		SamplingRate:  1.0,
		DefaultModule: logging.Module("readiness-roadmap"),
	})
	if err != nil {
		return nil, err
	}

	return obs, nil
}
