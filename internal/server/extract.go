package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DriesFaems/thesis--evaluation/internal/titlepage"
)

type extractRequest struct {
	// Text is the raw text layer of the title page, one page only.
	Text string `json:"text"`
}

type extractResponse struct {
	Record titlepage.Record `json:"record"`
	// Empty is true when nothing could be recovered at all.
	Empty bool `json:"empty"`
	// Confidence is a heuristic 0-1 score over the recovered fields.
	Confidence float32 `json:"confidence"`
}

// extractTitlePage runs both extraction passes over submitted page text.
// Extraction never fails; an unparseable page yields an all-empty record.
func (s *Service) extractTitlePage(c *gin.Context) {
	var req extractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	rec := titlepage.Parse(req.Text)
	confidence := titlepage.Confidence(rec)
	s.logger.Info("titlepage.extract",
		"text_bytes", len(req.Text),
		"title_found", rec.ThesisTitle != "",
		"student_id_found", rec.StudentID != "",
		"confidence", confidence,
	)
	c.JSON(http.StatusOK, extractResponse{
		Record:     rec,
		Empty:      rec.IsEmpty(),
		Confidence: confidence,
	})
}
