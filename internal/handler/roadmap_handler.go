package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aegisready/readiness-roadmap/internal/service/roadmap"
)

type RoadmapHandler struct {
	roadmapService *roadmap.Service
}

func NewRoadmapHandler(roadmapService *roadmap.Service) *RoadmapHandler {
	return &RoadmapHandler{
		roadmapService: roadmapService,
	}
}

// HandleGetRoadmap serves the enriched roadmap view, from the snapshot cache
// when a fresh copy exists.
func (h *RoadmapHandler) HandleGetRoadmap(c *gin.Context) {
	ctx := c.Request.Context()
	orgID := c.Param("org_id")

	view, err := h.roadmapService.GetRoadmap(ctx, orgID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to build roadmap view",
			slog.String("org_id", orgID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusBadGateway, "failed to build roadmap")
		return
	}

	c.JSON(http.StatusOK, view)
}

// HandleRefreshRoadmap forces a rebuild from the scoring backend, bypassing
// the snapshot cache. An X-Run-ID header tags the recorded distributions.
func (h *RoadmapHandler) HandleRefreshRoadmap(c *gin.Context) {
	ctx := c.Request.Context()
	orgID := c.Param("org_id")
	runID := c.GetHeader("X-Run-ID")

	view, err := h.roadmapService.Rebuild(ctx, orgID, runID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to rebuild roadmap",
			slog.String("org_id", orgID),
			slog.String("run_id", runID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusBadGateway, "failed to rebuild roadmap")
		return
	}

	c.JSON(http.StatusOK, view)
}
