package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aegisready/readiness-roadmap/internal/service/org"
)

type OrganizationHandler struct {
	orgService *org.Service
}

func NewOrganizationHandler(orgService *org.Service) *OrganizationHandler {
	return &OrganizationHandler{
		orgService: orgService,
	}
}

func (h *OrganizationHandler) HandleListOrganizations(c *gin.Context) {
	ctx := c.Request.Context()

	orgs, err := h.orgService.ListOrganizations(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list organizations",
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusBadGateway, "failed to list organizations")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"organizations": orgs,
		"count":         len(orgs),
	})
}

func (h *OrganizationHandler) HandleGetScore(c *gin.Context) {
	ctx := c.Request.Context()
	orgID := c.Param("org_id")

	result, err := h.orgService.GetScore(ctx, orgID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to compute score",
			slog.String("org_id", orgID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusBadGateway, "failed to compute score")
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *OrganizationHandler) HandleGetRubric(c *gin.Context) {
	ctx := c.Request.Context()

	rubric, err := h.orgService.GetRubric(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch rubric",
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusBadGateway, "failed to fetch rubric")
		return
	}

	c.JSON(http.StatusOK, rubric)
}
