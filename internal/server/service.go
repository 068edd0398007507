// Package server exposes the extraction core, the grade engine and the
// evaluation store over a JSON HTTP API. It is a thin collaborator surface:
// all logic lives in the internal packages it calls.
package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DriesFaems/thesis--evaluation/internal/common"
	"github.com/DriesFaems/thesis--evaluation/internal/export"
	"github.com/DriesFaems/thesis--evaluation/internal/repository"
)

// Service bundles the API dependencies.
type Service struct {
	logger *slog.Logger
	repo   repository.EvaluationRepository
	export *export.Service
}

func NewService(logger *slog.Logger, repo repository.EvaluationRepository, exp *export.Service) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger, repo: repo, export: exp}
}

// Routes builds the gin engine with all API routes registered.
func (s *Service) Routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/v1")
	{
		v1.POST("/titlepage/extract", s.extractTitlePage)
		v1.POST("/grades/weighted", s.weightedGrade)
		v1.GET("/grades/convert", s.convertGrade)

		v1.POST("/evaluations", s.createEvaluation)
		v1.GET("/evaluations", s.listEvaluations)
		v1.GET("/evaluations/:id", s.getEvaluation)
		v1.PUT("/evaluations/:id", s.updateEvaluation)
		v1.DELETE("/evaluations/:id", s.deleteEvaluation)

		v1.GET("/evaluations/:id/export", s.exportEvaluation)
		v1.GET("/evaluations/:id/session", s.exportSession)
		v1.POST("/evaluations/import", s.importSession)
	}
	return r
}

// writeError maps repository and validation errors onto HTTP statuses.
func (s *Service) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "evaluation not found"})
	case errors.Is(err, common.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		s.logger.Error("request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
