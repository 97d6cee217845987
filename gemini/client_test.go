package gemini

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"cloud.google.com/go/vertexai/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aipsms/ai-engine/config"
	"github.com/aipsms/ai-engine/matcher"
)

type fakeModel struct {
	reply  string
	err    error
	prompt string
}

func (f *fakeModel) GenerateContent(_ context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(parts) > 0 {
		if text, ok := parts[0].(genai.Text); ok {
			f.prompt = string(text)
		}
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{genai.Text(f.reply)}},
		}},
	}, nil
}

func TestExtractEntities(t *testing.T) {
	model := &fakeModel{reply: "```json\n" +
		`[{"text":"Python","label":"language"},{"text":"  ","label":"ORG"},{"text":"Google","label":"ORG"}]` +
		"\n```"}
	c := &Client{model: model, logger: zap.NewNop()}

	entities, err := c.ExtractEntities(context.Background(), "Worked at Google writing Python")
	require.NoError(t, err)
	assert.Equal(t, []matcher.Entity{
		{Text: "Python", Label: matcher.EntityLanguage},
		{Text: "Google", Label: matcher.EntityOrg},
	}, entities)
	assert.Contains(t, model.prompt, "Worked at Google writing Python")
}

func TestExtractEntitiesTruncatesPrompt(t *testing.T) {
	model := &fakeModel{reply: "[]"}
	c := &Client{model: model, logger: zap.NewNop()}

	_, err := c.ExtractEntities(context.Background(), strings.Repeat("a", maxPromptChars+500))
	require.NoError(t, err)
	assert.NotContains(t, model.prompt, strings.Repeat("a", maxPromptChars+1))

	// "é" straddles the byte limit and must be dropped whole.
	_, err = c.ExtractEntities(context.Background(), strings.Repeat("a", maxPromptChars-1)+"é tail")
	require.NoError(t, err)
	assert.True(t, utf8.ValidString(model.prompt))
	assert.Contains(t, model.prompt, strings.Repeat("a", maxPromptChars-1))
	assert.NotContains(t, model.prompt, "tail")
}

func TestTruncateUTF8(t *testing.T) {
	assert.Equal(t, "abc", truncateUTF8("abc", 10))
	assert.Equal(t, "ab", truncateUTF8("abé", 3))
	assert.Equal(t, "abé", truncateUTF8("abéd", 4))
	assert.Equal(t, "", truncateUTF8("日本", 2))
}

func TestNewClientWithoutProject(t *testing.T) {
	c, err := NewClient(context.Background(), &config.Config{EntityRecognition: true}, zap.NewNop())
	assert.ErrorIs(t, err, ErrMissingProject)
	assert.Nil(t, c)
}

func TestExtractEntitiesErrors(t *testing.T) {
	var nilClient *Client
	_, err := nilClient.ExtractEntities(context.Background(), "x")
	assert.ErrorIs(t, err, matcher.ErrRecognizerUnavailable)

	_, err = (&Client{}).ExtractEntities(context.Background(), "x")
	assert.ErrorIs(t, err, matcher.ErrRecognizerUnavailable)

	quota := errors.New("quota exceeded")
	_, err = (&Client{model: &fakeModel{err: quota}, logger: zap.NewNop()}).ExtractEntities(context.Background(), "x")
	assert.ErrorIs(t, err, quota)

	_, err = (&Client{model: &fakeModel{reply: ""}, logger: zap.NewNop()}).ExtractEntities(context.Background(), "x")
	assert.Error(t, err)

	_, err = (&Client{model: &fakeModel{reply: "not json"}, logger: zap.NewNop()}).ExtractEntities(context.Background(), "x")
	assert.Error(t, err)
}

func TestRecognizerFeedsSkillExtractor(t *testing.T) {
	c := &Client{model: &fakeModel{reply: `[{"text":"Docker","label":"PRODUCT"}]`}, logger: zap.NewNop()}
	vocab := matcher.NewVocabulary([]string{"Docker", "Python"})

	// "Docker" only appears glued to other letters, so vocabulary matching misses it.
	got := matcher.NewSkillExtractor(vocab, c, nil).Extract(context.Background(), "Dockerized services")
	assert.Equal(t, []string{"Docker"}, got)
}

func TestCleanJSON(t *testing.T) {
	assert.Equal(t, `[1]`, cleanJSON("```json\n[1]\n```"))
	assert.Equal(t, `[1]`, cleanJSON("```\n[1]```"))
	assert.Equal(t, `{}`, cleanJSON("  {}  "))
}

func TestExtractText(t *testing.T) {
	assert.Equal(t, "", extractText(nil))
	assert.Equal(t, "", extractText(&genai.GenerateContentResponse{}))
	assert.Equal(t, "", extractText(&genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}))
}
