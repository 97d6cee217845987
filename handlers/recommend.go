package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aipsms/ai-engine/models"
	"github.com/aipsms/ai-engine/recommend"
)

// RecommendHandler handles learning recommendation requests
type RecommendHandler struct {
	recommender *recommend.Recommender
}

// NewRecommendHandler creates a new recommendation handler
func NewRecommendHandler(recommender *recommend.Recommender) *RecommendHandler {
	return &RecommendHandler{
		recommender: recommender,
	}
}

// RecommendLearning suggests courses for skills
// @Summary Recommend learning
// @Description Suggest courses for a list of skills, typically the missing skills of a match
// @Tags Learning
// @Accept json
// @Produce json
// @Param skills body []string true "Skills to find courses for"
// @Success 200 {object} models.RecommendResponse "Recommendations"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Router /recommend-learning [post]
func (h *RecommendHandler) RecommendLearning(c *gin.Context) {
	var skills []string
	if err := c.ShouldBindJSON(&skills); err != nil {
		respondError(c, http.StatusBadRequest, "Request body must be a JSON array of skills", err)
		return
	}

	c.JSON(http.StatusOK, models.RecommendResponse{
		Recommendations: h.recommender.Recommend(skills),
	})
}
