package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aipsms/ai-engine/matcher"
	"github.com/aipsms/ai-engine/models"
)

// MatchHandler handles job matching requests
type MatchHandler struct {
	pipeline *matcher.Pipeline
	logger   *zap.Logger
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(pipeline *matcher.Pipeline, logger *zap.Logger) *MatchHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MatchHandler{
		pipeline: pipeline,
		logger:   logger,
	}
}

// MatchJobs ranks jobs against a resume
// @Summary Match jobs
// @Description Rank a batch of jobs by placement probability using text similarity, skill overlap, CGPA and internships
// @Tags Matching
// @Accept json
// @Produce json
// @Param request body models.MatchRequest true "Resume and jobs"
// @Success 200 {object} models.MatchResponse "Ranked matches"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 500 {object} models.ErrorResponse "Matching failed"
// @Router /match-jobs [post]
func (h *MatchHandler) MatchJobs(c *gin.Context) {
	var req models.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	matches, err := h.pipeline.Run(c.Request.Context(), matcher.InputFromRequest(req))
	if err != nil {
		status := statusFor(err)
		if status == http.StatusBadRequest {
			respondError(c, status, "Invalid match input", err)
			return
		}
		h.logger.Error("matching failed", zap.Int("jobs", len(req.Jobs)), zap.Error(err))
		respondError(c, status, "Matching failed", err)
		return
	}

	h.logger.Info("jobs matched", zap.Int("jobs", len(matches)))
	c.JSON(http.StatusOK, models.MatchResponse{Matches: matches})
}
