package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aipsms/ai-engine/matcher"
	"github.com/aipsms/ai-engine/models"
)

// MatchJobsTool ranks a batch of jobs against a resume
type MatchJobsTool struct {
	pipeline *matcher.Pipeline
}

// NewMatchJobsTool creates a new job matching tool
func NewMatchJobsTool(pipeline *matcher.Pipeline) *MatchJobsTool {
	return &MatchJobsTool{
		pipeline: pipeline,
	}
}

func (t *MatchJobsTool) Name() string {
	return "match_jobs"
}

func (t *MatchJobsTool) Description() string {
	return `Rank job postings against a resume.
Input is the resume text, the candidate's skills, CGPA, internship count and the jobs.
Returns every job with similarity score, placement probability and matching/missing skills,
sorted by placement probability, highest first.`
}

func (t *MatchJobsTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"resume_text": map[string]interface{}{
				"type":        "string",
				"description": "Full resume text",
			},
			"resume_skills": map[string]interface{}{
				"type":        "array",
				"items":       map[string]interface{}{"type": "string"},
				"description": "Skills the candidate has",
			},
			"cgpa": map[string]interface{}{
				"type":        "number",
				"description": "CGPA on a 10-point scale, or a percentage above 10",
			},
			"internships": map[string]interface{}{
				"type":        "integer",
				"description": "Number of internships completed",
			},
			"jobs": map[string]interface{}{
				"type": "array",
				"items": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"job_id":          map[string]interface{}{"type": "string"},
						"title":           map[string]interface{}{"type": "string"},
						"description":     map[string]interface{}{"type": "string"},
						"required_skills": map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "string"}},
					},
				},
				"description": "Jobs to rank",
			},
		},
		"required": []string{"resume_text", "jobs"},
	}
}

func (t *MatchJobsTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var req models.MatchRequest
	if err := json.Unmarshal(input, &req); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	matches, err := t.pipeline.Run(ctx, matcher.InputFromRequest(req))
	if errors.Is(err, matcher.ErrInvalidInput) {
		return NewErrorResult(err.Error())
	}
	if err != nil {
		return nil, fmt.Errorf("matching failed: %w", err)
	}

	return NewSuccessResult(models.MatchResponse{Matches: matches})
}
