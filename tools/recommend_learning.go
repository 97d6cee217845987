package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aipsms/ai-engine/models"
	"github.com/aipsms/ai-engine/recommend"
)

// RecommendLearningTool suggests courses for skills
type RecommendLearningTool struct {
	recommender *recommend.Recommender
}

// NewRecommendLearningTool creates a new learning recommendation tool
func NewRecommendLearningTool(recommender *recommend.Recommender) *RecommendLearningTool {
	return &RecommendLearningTool{
		recommender: recommender,
	}
}

func (t *RecommendLearningTool) Name() string {
	return "recommend_learning"
}

func (t *RecommendLearningTool) Description() string {
	return `Suggest courses for skills, typically the missing skills of a job match.
A course is suggested when its keyword appears in the skill name.`
}

func (t *RecommendLearningTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"skills": map[string]interface{}{
				"type":        "array",
				"items":       map[string]interface{}{"type": "string"},
				"description": "Skills to find courses for",
			},
		},
		"required": []string{"skills"},
	}
}

// RecommendLearningInput represents the input for learning recommendations
type RecommendLearningInput struct {
	Skills []string `json:"skills"`
}

func (t *RecommendLearningTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var in RecommendLearningInput
	if err := json.Unmarshal(input, &in); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	return NewSuccessResult(models.RecommendResponse{Recommendations: t.recommender.Recommend(in.Skills)})
}
