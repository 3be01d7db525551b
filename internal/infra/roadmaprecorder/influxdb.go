//go:build !gcloud

package roadmaprecorder

import (
	"context"
	"log/slog"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"

	"github.com/aegisready/readiness-roadmap/internal/domain"
)

type influxDBRecorder struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	bucket   string
	org      string
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.RoadmapResultRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "roadmap result recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.InfluxDBToken == "" || cfg.InfluxDBOrg == "" {
		slog.WarnContext(ctx, "InfluxDB token or org not configured, roadmap result recording disabled",
			slog.String("url", cfg.InfluxDBURL),
		)
		return NewNoopRecorder(), nil
	}

	client := influxdb2.NewClient(cfg.InfluxDBURL, cfg.InfluxDBToken)
	writeAPI := client.WriteAPIBlocking(cfg.InfluxDBOrg, cfg.InfluxDBBucket)

	slog.InfoContext(ctx, "roadmap result recorder initialized",
		slog.String("type", "influxdb"),
		slog.String("url", cfg.InfluxDBURL),
		slog.String("bucket", cfg.InfluxDBBucket),
	)

	return &influxDBRecorder{
		client:   client,
		writeAPI: writeAPI,
		bucket:   cfg.InfluxDBBucket,
		org:      cfg.InfluxDBOrg,
	}, nil
}

func (r *influxDBRecorder) RecordLaneDistribution(ctx context.Context, records []domain.LaneDistributionRecord) error {
	if len(records) == 0 {
		return nil
	}

	for _, record := range records {
		runID := record.RunID
		if runID == "" {
			runID = "default"
		}

		point := influxdb2.NewPoint(
			"lane_distribution",
			map[string]string{
				"run_id": runID,
				"org_id": record.OrgID,
				"lane":   record.Lane,
			},
			map[string]any{
				"count":          record.Count,
				"generated_unix": record.GeneratedAt.Unix(),
			},
			time.Now(),
		)

		if err := r.writeAPI.WritePoint(ctx, point); err != nil {
			slog.WarnContext(ctx, "failed to write lane distribution to InfluxDB",
				slog.String("error", err.Error()),
				slog.String("org_id", record.OrgID),
				slog.String("lane", record.Lane),
			)
		}
	}

	return nil
}

func (r *influxDBRecorder) RecordQuadrantDistribution(ctx context.Context, records []domain.QuadrantDistributionRecord) error {
	if len(records) == 0 {
		return nil
	}

	for _, record := range records {
		runID := record.RunID
		if runID == "" {
			runID = "default"
		}

		point := influxdb2.NewPoint(
			"quadrant_distribution",
			map[string]string{
				"run_id":   runID,
				"org_id":   record.OrgID,
				"quadrant": record.Quadrant,
			},
			map[string]any{
				"count":          record.Count,
				"generated_unix": record.GeneratedAt.Unix(),
			},
			time.Now(),
		)

		if err := r.writeAPI.WritePoint(ctx, point); err != nil {
			slog.WarnContext(ctx, "failed to write quadrant distribution to InfluxDB",
				slog.String("error", err.Error()),
				slog.String("org_id", record.OrgID),
				slog.String("quadrant", record.Quadrant),
			)
		}
	}

	return nil
}

func (r *influxDBRecorder) Flush(ctx context.Context) error {
	return nil
}

func (r *influxDBRecorder) Close() error {
	if r.client != nil {
		r.client.Close()
	}
	return nil
}
