package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aegisready/readiness-roadmap/internal/domain"
	"github.com/aegisready/readiness-roadmap/internal/service/techstack"
)

type TechStackHandler struct {
	techStackService *techstack.Service
}

func NewTechStackHandler(techStackService *techstack.Service) *TechStackHandler {
	return &TechStackHandler{
		techStackService: techStackService,
	}
}

type replaceTechStackRequest struct {
	Entries []domain.TechStackEntry `json:"entries" binding:"required"`
}

func (h *TechStackHandler) HandleGetTechStack(c *gin.Context) {
	ctx := c.Request.Context()
	orgID := c.Param("org_id")

	stack, err := h.techStackService.GetStack(ctx, orgID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load tech stack",
			slog.String("org_id", orgID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "failed to load tech stack")
		return
	}

	c.JSON(http.StatusOK, stack)
}

func (h *TechStackHandler) HandleReplaceTechStack(c *gin.Context) {
	ctx := c.Request.Context()
	orgID := c.Param("org_id")

	var req replaceTechStackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid tech stack payload")
		return
	}

	stack, err := h.techStackService.ReplaceStack(ctx, orgID, req.Entries)
	if err != nil {
		slog.ErrorContext(ctx, "failed to save tech stack",
			slog.String("org_id", orgID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "failed to save tech stack")
		return
	}

	c.JSON(http.StatusOK, stack)
}
