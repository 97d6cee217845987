package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aipsms/ai-engine/matcher"
)

// ExtractSkillsTool finds known skills mentioned in free text
type ExtractSkillsTool struct {
	extractor *matcher.SkillExtractor
}

// NewExtractSkillsTool creates a new skill extraction tool
func NewExtractSkillsTool(extractor *matcher.SkillExtractor) *ExtractSkillsTool {
	return &ExtractSkillsTool{
		extractor: extractor,
	}
}

func (t *ExtractSkillsTool) Name() string {
	return "extract_skills"
}

func (t *ExtractSkillsTool) Description() string {
	return `Extract known skills from resume or job description text.
Returns the matched skills in canonical casing, sorted.`
}

func (t *ExtractSkillsTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"text": map[string]interface{}{
				"type":        "string",
				"description": "Text to scan for skills",
			},
		},
		"required": []string{"text"},
	}
}

// ExtractSkillsInput represents the input for skill extraction
type ExtractSkillsInput struct {
	Text string `json:"text"`
}

// ExtractSkillsOutput represents the output of skill extraction
type ExtractSkillsOutput struct {
	Skills []string `json:"skills"`
}

func (t *ExtractSkillsTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var in ExtractSkillsInput
	if err := json.Unmarshal(input, &in); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	return NewSuccessResult(ExtractSkillsOutput{Skills: t.extractor.Extract(ctx, in.Text)})
}
