package stub

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aegisready/readiness-roadmap/internal/infra/scoring"
)

// Handler serves a fake scoring backend so the dashboard service can be
// exercised locally without the real upstream.
type Handler struct {
	storage *FindingStorage
}

func NewHandler(storage *FindingStorage) *Handler {
	return &Handler{storage: storage}
}

func (h *Handler) HandleReset(c *gin.Context) {
	runID := c.DefaultQuery("run_id", "default")

	h.storage.Reset(runID)

	slog.Info("reset data", slog.String("run_id", runID))

	c.JSON(http.StatusOK, gin.H{
		"status": "reset complete",
		"run_id": runID,
	})
}

func (h *Handler) HandleSeed(c *gin.Context) {
	runID := c.DefaultQuery("run_id", "default")

	var req SeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.OrgID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "org_id is required"})
		return
	}

	h.storage.Seed(runID, req)

	totalCount := 0
	for _, f := range req.Findings {
		count := f.Count
		if count <= 0 {
			count = 1
		}
		totalCount += count
	}

	slog.Info("seeded data",
		slog.String("run_id", runID),
		slog.String("org_id", req.OrgID),
		slog.Int("finding_templates", len(req.Findings)),
		slog.Int("total_item_count", totalCount),
	)

	c.JSON(http.StatusOK, gin.H{
		"status":      "seeded",
		"run_id":      runID,
		"org_id":      req.OrgID,
		"total_count": totalCount,
	})
}

// GET /api/v1/organizations?run_id=...
func (h *Handler) HandleGetOrganizations(c *gin.Context) {
	runID := c.DefaultQuery("run_id", "default")

	orgs := h.storage.GetOrganizations(runID)

	c.JSON(http.StatusOK, scoring.OrganizationsResponse{
		Organizations: orgs,
		Count:         len(orgs),
	})
}

// GET /api/v1/organizations/:org_id/roadmap?run_id=...
func (h *Handler) HandleGetRoadmap(c *gin.Context) {
	runID := c.DefaultQuery("run_id", "default")
	orgID := c.Param("org_id")

	items := h.storage.GetFindings(runID, orgID)

	slog.Debug("get roadmap",
		slog.String("run_id", runID),
		slog.String("org_id", orgID),
		slog.Int("count", len(items)),
	)

	c.JSON(http.StatusOK, scoring.RoadmapResponse{
		OrgID: orgID,
		Items: items,
		Count: len(items),
	})
}

// GET /api/v1/organizations/:org_id/score
func (h *Handler) HandleComputeScore(c *gin.Context) {
	orgID := c.Param("org_id")

	c.JSON(http.StatusOK, scoring.ScoreResult{
		OrgID:    orgID,
		Overall:  62.5,
		Maturity: "developing",
		Categories: []scoring.CategoryScore{
			{Category: "identify", Score: 70},
			{Category: "protect", Score: 55},
			{Category: "detect", Score: 60},
			{Category: "respond", Score: 65},
			{Category: "recover", Score: 62.5},
		},
	})
}

// GET /api/v1/rubric
func (h *Handler) HandleGetRubric(c *gin.Context) {
	c.JSON(http.StatusOK, scoring.Rubric{
		Version: "stub-1",
		Sections: []scoring.RubricSection{
			{
				ID:    "access-control",
				Title: "Access Control",
				Questions: []scoring.RubricQuestion{
					{ID: "ac-1", Text: "Is MFA enforced for all privileged accounts?", Category: "protect"},
					{ID: "ac-2", Text: "Are access reviews performed quarterly?", Category: "protect"},
				},
			},
			{
				ID:    "incident-response",
				Title: "Incident Response",
				Questions: []scoring.RubricQuestion{
					{ID: "ir-1", Text: "Is there a documented incident response plan?", Category: "respond"},
				},
			},
		},
	})
}
