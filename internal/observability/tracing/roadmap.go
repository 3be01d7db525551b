package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const roadmapTracerName = "github.com/aegisready/readiness-roadmap/internal/service/roadmap"

func RoadmapTracer() trace.Tracer {
	return otel.Tracer(roadmapTracerName)
}

func StartRebuildSpan(ctx context.Context, orgID, runID string) (context.Context, trace.Span) {
	return RoadmapTracer().Start(ctx, "roadmap.rebuild",
		trace.WithAttributes(
			attribute.String("org_id", orgID),
			attribute.String("run_id", runID),
		),
	)
}

func StartBackendFetchSpan(ctx context.Context, operation, orgID string) (context.Context, trace.Span) {
	return RoadmapTracer().Start(ctx, "roadmap.backend."+operation,
		trace.WithAttributes(
			attribute.String("org_id", orgID),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func StartSnapshotCacheSpan(ctx context.Context, operation, orgID string) (context.Context, trace.Span) {
	return RoadmapTracer().Start(ctx, "roadmap.cache."+operation,
		trace.WithAttributes(
			attribute.String("db.system", "redis"),
			attribute.String("db.operation", operation),
			attribute.String("org_id", orgID),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func RecordRebuildResult(span trace.Span, totalItems, immediateCount, nearTermCount, strategicCount int, err error) {
	span.SetAttributes(
		attribute.Int("rebuild.total_items", totalItems),
		attribute.Int("rebuild.immediate_count", immediateCount),
		attribute.Int("rebuild.near_term_count", nearTermCount),
		attribute.Int("rebuild.strategic_count", strategicCount),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}
