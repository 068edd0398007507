package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DriesFaems/thesis--evaluation/internal/grading"
)

type weightedGradeRequest struct {
	ThesisPoints  float64 `json:"thesis_points"`
	DefensePoints float64 `json:"defense_points"`
}

// weightedGrade computes the 75/25 weighted result for two scores. Range
// validation is deliberately left to the caller: out-of-range scores resolve
// mechanically (negative fails, above 100 takes the best grade).
func (s *Service) weightedGrade(c *gin.Context) {
	var req weightedGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	c.JSON(http.StatusOK, grading.WeightedGrade(req.ThesisPoints, req.DefensePoints))
}

// convertGrade maps a single percentage score to its decimal grade.
func (s *Service) convertGrade(c *gin.Context) {
	points, err := strconv.ParseFloat(c.Query("points"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "points must be a number"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"points": points,
		"grade":  grading.ScoreToGrade(points),
		"passed": grading.Passed(points),
	})
}
