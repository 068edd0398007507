package server

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/DriesFaems/thesis--evaluation/internal/common"
	"github.com/DriesFaems/thesis--evaluation/internal/entity"
	"github.com/DriesFaems/thesis--evaluation/internal/session"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// maxSessionBytes bounds uploaded session files.
const maxSessionBytes = 1 << 20

func (s *Service) createEvaluation(c *gin.Context) {
	ev := session.Defaults()
	if err := c.ShouldBindJSON(ev); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := validatePoints(ev); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.repo.Create(c.Request.Context(), ev); err != nil {
		s.writeError(c, err)
		return
	}
	s.logger.Info("evaluation.created", "id", ev.ID, "student_name", ev.StudentName)
	c.JSON(http.StatusCreated, gin.H{"id": ev.ID})
}

func (s *Service) listEvaluations(c *gin.Context) {
	summaries, err := s.repo.List(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"evaluations": summaries})
}

func (s *Service) getEvaluation(c *gin.Context) {
	id, ok := s.evaluationID(c)
	if !ok {
		return
	}
	ev, err := s.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ev)
}

func (s *Service) updateEvaluation(c *gin.Context) {
	id, ok := s.evaluationID(c)
	if !ok {
		return
	}
	ev, err := s.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		s.writeError(c, err)
		return
	}
	if err := c.ShouldBindJSON(ev); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := validatePoints(ev); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ev.ID = id
	if err := s.repo.Update(c.Request.Context(), ev); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ev)
}

func (s *Service) deleteEvaluation(c *gin.Context) {
	id, ok := s.evaluationID(c)
	if !ok {
		return
	}
	if err := s.repo.Delete(c.Request.Context(), id); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// exportEvaluation streams the Part 1 or Part 2 workbook for an evaluation.
func (s *Service) exportEvaluation(c *gin.Context) {
	id, ok := s.evaluationID(c)
	if !ok {
		return
	}
	ev, err := s.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		s.writeError(c, err)
		return
	}

	part := c.DefaultQuery("part", "1")
	var data []byte
	switch part {
	case "1":
		data, err = s.export.BuildPart1Workbook(ev)
	case "2":
		data, err = s.export.BuildPart2Workbook(ev)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "part must be 1 or 2"})
		return
	}
	if err != nil {
		s.writeError(c, err)
		return
	}

	filename := fmt.Sprintf("evaluation-part%s-%s.xlsx", part, id)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}

// exportSession returns the saved-session JSON for an evaluation, the same
// format importSession accepts.
func (s *Service) exportSession(c *gin.Context) {
	id, ok := s.evaluationID(c)
	if !ok {
		return
	}
	ev, err := s.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		s.writeError(c, err)
		return
	}
	data, err := session.Export(ev)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "evaluation-"+id.String()+".json"))
	c.Data(http.StatusOK, "application/json", data)
}

// importSession creates a new evaluation from an uploaded session file.
func (s *Service) importSession(c *gin.Context) {
	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxSessionBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read request body"})
		return
	}
	ev, err := session.Load(data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.repo.Create(c.Request.Context(), ev); err != nil {
		s.writeError(c, err)
		return
	}
	s.logger.Info("evaluation.imported", "id", ev.ID, "student_name", ev.StudentName)
	c.JSON(http.StatusCreated, gin.H{"id": ev.ID})
}

// validatePoints enforces the score domain at the API edge. The grade
// engine itself is deliberately lenient, but stored sessions must stay
// within the saved-session schema.
func validatePoints(ev *entity.Evaluation) error {
	if ev.ThesisPoints < 0 || ev.ThesisPoints > 100 {
		return fmt.Errorf("thesis_points must be within [0, 100]: %w", common.ErrInvalidInput)
	}
	if ev.DefensePoints < 0 || ev.DefensePoints > 100 {
		return fmt.Errorf("defense_points must be within [0, 100]: %w", common.ErrInvalidInput)
	}
	return nil
}

func (s *Service) evaluationID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return uuid.Nil, false
	}
	return id, true
}
