package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aipsms/ai-engine/matcher"
)

// AnalyzeSkillGapTool compares a candidate's skills with a job's requirements
type AnalyzeSkillGapTool struct{}

// NewAnalyzeSkillGapTool creates a new skill gap tool
func NewAnalyzeSkillGapTool() *AnalyzeSkillGapTool {
	return &AnalyzeSkillGapTool{}
}

func (t *AnalyzeSkillGapTool) Name() string {
	return "analyze_skill_gap"
}

func (t *AnalyzeSkillGapTool) Description() string {
	return `Compare the skills a candidate has with the skills a job requires.
Comparison is case-insensitive. Returns matching and missing skills (lower-cased)
and the percentage of required skills covered.`
}

func (t *AnalyzeSkillGapTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"resume_skills": map[string]interface{}{
				"type":        "array",
				"items":       map[string]interface{}{"type": "string"},
				"description": "Skills the candidate has",
			},
			"required_skills": map[string]interface{}{
				"type":        "array",
				"items":       map[string]interface{}{"type": "string"},
				"description": "Skills the job requires",
			},
		},
		"required": []string{"resume_skills", "required_skills"},
	}
}

// AnalyzeSkillGapInput represents the input for skill gap analysis
type AnalyzeSkillGapInput struct {
	ResumeSkills   []string `json:"resume_skills"`
	RequiredSkills []string `json:"required_skills"`
}

func (t *AnalyzeSkillGapTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var in AnalyzeSkillGapInput
	if err := json.Unmarshal(input, &in); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	return NewSuccessResult(matcher.AnalyzeGap(in.ResumeSkills, in.RequiredSkills))
}
