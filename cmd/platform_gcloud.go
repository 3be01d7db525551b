//go:build gcloud

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

func initReminderQueue(ctx context.Context, cfg *config.Config) (client.ReminderQueue, func() error, error) {
	if err := cfg.ReminderQueue.Validate(); err != nil {
		return nil, nil, err
	}

	cloudTasksClient, err := client.NewCloudTasksClient(ctx, client.CloudTasksConfig{
		ProjectID:  cfg.ReminderQueue.GCloudProjectID,
		LocationID: cfg.ReminderQueue.GCloudLocationID,
		QueueID:    cfg.ReminderQueue.GCloudQueueID,
		TargetURL:  cfg.ReminderQueue.GCloudTargetURL,
		MaxRetries: cfg.ReminderQueue.MaxRetries,
	})
	if err != nil {
		return nil, nil, err
	}

	slog.Info("reminder queue initialized",
		slog.String("type", "cloud_tasks"),
		slog.String("project", cfg.ReminderQueue.GCloudProjectID),
		slog.String("location", cfg.ReminderQueue.GCloudLocationID),
		slog.String("queue", cfg.ReminderQueue.GCloudQueueID),
	)

	cleanup := func() error {
		if err := cloudTasksClient.Close(); err != nil {
			slog.Warn("failed to close cloud tasks client", slog.String("error", err.Error()))

			return err
		}

		return nil
	}

	return cloudTasksClient, cleanup, nil
}

func initObservability(ctx context.Context) (*observability.Resources, error) {
	serviceName := os.Getenv("K_SERVICE")
	if serviceName == "" {
		serviceName = "readiness-roadmap"
	}

	env := logging.EnvProd
	if e := os.Getenv("ENV"); e != "" {
		env = logging.Environment(e)
	}

	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
	if projectID == "" {
		projectID = os.Getenv("GCLOUD_PROJECT_ID")
	}

	obs, err := observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:     serviceName,
			Version:  Version,
			Revision: os.Getenv("K_REVISION"),
		},
		Environment:   env,
		GCPProjectID:  projectID,
		SamplingRate:  1.0,
		DefaultModule: logging.Module("readiness-roadmap"),
	})
	if err != nil {
		return nil, err
	}

	return obs, nil
}
