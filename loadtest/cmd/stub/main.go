package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/aegisready/readiness-roadmap/loadtest/internal/stub"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "9090"
	}

	storage := stub.NewFindingStorage()
	h := stub.NewHandler(storage)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/seed", h.HandleSeed)
	r.POST("/reset", h.HandleReset)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/organizations", h.HandleGetOrganizations)
		v1.GET("/rubric", h.HandleGetRubric)
		v1.GET("/organizations/:org_id/score", h.HandleComputeScore)
		v1.GET("/organizations/:org_id/roadmap", h.HandleGetRoadmap)
	}

	slog.Info("starting stub scoring backend", slog.String("port", port))
	if err := r.Run(":" + port); err != nil {
		slog.Error("stub backend exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
