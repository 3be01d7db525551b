package logging

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// Environment selects log output shape: text for local development, JSON
// elsewhere.
type Environment string

const (
	EnvDev  Environment = "dev"
	EnvProd Environment = "prod"
)

// Module tags every log line with the subsystem that emitted it.
type Module string

// ServiceInfo identifies the running service in logs and telemetry.
type ServiceInfo struct {
	Name     string
	Version  string
	Revision string
}

type contextKey string

const requestIDKey contextKey = "request_id"

// WithRequestID returns a context carrying the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext returns the request ID stored in the context, or
// empty.
func RequestIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

// ValidateAndExtractRequestID returns the given ID when it is a well-formed
// UUID, otherwise a freshly generated one. Inbound IDs are propagated but
// never trusted blindly.
func ValidateAndExtractRequestID(requestID string) string {
	if _, err := uuid.Parse(requestID); err == nil {
		return requestID
	}
	return uuid.NewString()
}

// Config controls handler construction.
type Config struct {
	Environment  Environment
	Level        slog.Level
	Service      ServiceInfo
	GCPProjectID string
	Module       Module
}

// NewLogger builds the service-wide slog logger: a JSON (or, in dev, text)
// handler wrapped so every record is enriched with the request ID and platform
// trace attributes from the context.
func NewLogger(cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Level}

	var base slog.Handler
	if cfg.Environment == EnvDev {
		base = slog.NewTextHandler(os.Stdout, opts)
	} else {
		base = slog.NewJSONHandler(os.Stdout, opts)
	}

	base = base.WithAttrs([]slog.Attr{
		slog.String("service", cfg.Service.Name),
		slog.String("version", cfg.Service.Version),
		slog.String("module", string(cfg.Module)),
	})

	return slog.New(&contextHandler{inner: base, projectID: cfg.GCPProjectID})
}

// contextHandler decorates records with per-request attributes pulled from
// the context.
type contextHandler struct {
	inner     slog.Handler
	projectID string
}

func (h *contextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *contextHandler) Handle(ctx context.Context, record slog.Record) error {
	if requestID := RequestIDFromContext(ctx); requestID != "" {
		record.AddAttrs(slog.String("request_id", requestID))
	}
	if attrs := gcpTraceAttrs(ctx, h.projectID); len(attrs) > 0 {
		record.AddAttrs(attrs...)
	}
	return h.inner.Handle(ctx, record)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{inner: h.inner.WithAttrs(attrs), projectID: h.projectID}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{inner: h.inner.WithGroup(name), projectID: h.projectID}
}
