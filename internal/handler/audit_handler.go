package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aegisready/readiness-roadmap/internal/domain"
	"github.com/aegisready/readiness-roadmap/internal/service/audit"
)

type AuditHandler struct {
	auditService *audit.Service
}

func NewAuditHandler(auditService *audit.Service) *AuditHandler {
	return &AuditHandler{
		auditService: auditService,
	}
}

type createAuditEventRequest struct {
	Name            string    `json:"name" binding:"required"`
	Framework       string    `json:"framework"`
	ScheduledFor    time.Time `json:"scheduled_for" binding:"required"`
	ReminderLeadDay int       `json:"reminder_lead_days" binding:"gte=0"`
}

func (h *AuditHandler) HandleListAuditEvents(c *gin.Context) {
	ctx := c.Request.Context()
	orgID := c.Param("org_id")

	events, err := h.auditService.ListEvents(ctx, orgID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list audit events",
			slog.String("org_id", orgID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "failed to list audit events")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"events": events,
		"count":  len(events),
	})
}

func (h *AuditHandler) HandleGetAuditEvent(c *gin.Context) {
	ctx := c.Request.Context()
	orgID := c.Param("org_id")
	eventID := c.Param("event_id")

	event, err := h.auditService.GetEvent(ctx, orgID, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrAuditEventNotFound) {
			respondError(c, http.StatusNotFound, "audit event not found")
			return
		}
		slog.ErrorContext(ctx, "failed to get audit event",
			slog.String("org_id", orgID),
			slog.String("event_id", eventID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "failed to get audit event")
		return
	}

	c.JSON(http.StatusOK, event)
}

func (h *AuditHandler) HandleCreateAuditEvent(c *gin.Context) {
	ctx := c.Request.Context()
	orgID := c.Param("org_id")

	var req createAuditEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid audit event payload")
		return
	}

	event, err := h.auditService.CreateEvent(ctx, orgID, audit.CreateEventInput{
		Name:            req.Name,
		Framework:       req.Framework,
		ScheduledFor:    req.ScheduledFor,
		ReminderLeadDay: req.ReminderLeadDay,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to create audit event",
			slog.String("org_id", orgID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "failed to create audit event")
		return
	}

	c.JSON(http.StatusCreated, event)
}

func (h *AuditHandler) HandleDeleteAuditEvent(c *gin.Context) {
	ctx := c.Request.Context()
	orgID := c.Param("org_id")
	eventID := c.Param("event_id")

	if err := h.auditService.DeleteEvent(ctx, orgID, eventID); err != nil {
		if errors.Is(err, domain.ErrAuditEventNotFound) {
			respondError(c, http.StatusNotFound, "audit event not found")
			return
		}
		slog.ErrorContext(ctx, "failed to delete audit event",
			slog.String("org_id", orgID),
			slog.String("event_id", eventID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "failed to delete audit event")
		return
	}

	c.Status(http.StatusNoContent)
}
