package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"cloud.google.com/go/vertexai/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/aipsms/ai-engine/config"
	"github.com/aipsms/ai-engine/logger"
	"github.com/aipsms/ai-engine/matcher"
)

// maxPromptChars bounds how much resume text is sent per request.
const maxPromptChars = 20000

// ErrMissingProject is returned by NewClient when no PROJECT_ID is configured.
var ErrMissingProject = errors.New("PROJECT_ID is required for entity recognition")

// generator is the part of *genai.GenerativeModel the client uses.
type generator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// Client wraps the Vertex AI Gemini client and recognizes named entities in
// resume text.
type Client struct {
	client *genai.Client
	model  generator
	logger *zap.Logger
}

// NewClient creates a new Gemini client
func NewClient(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Client, error) {
	if cfg.ProjectID == "" {
		return nil, ErrMissingProject
	}

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := genai.NewClient(ctx, cfg.ProjectID, cfg.Location, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.GeminiModel)
	model.SetTemperature(0)
	model.SetTopP(0.8)
	model.SetMaxOutputTokens(2048)
	model.ResponseMIMEType = "application/json"

	return &Client{
		client: client,
		model:  model,
		logger: logger.Component(log, "gemini").With(logger.CommonFields("vertexai", cfg.GeminiModel)...),
	}, nil
}

// Close closes the Gemini client
func (c *Client) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

// ExtractEntities labels organisations, products and languages mentioned in text.
// A client with no model reports matcher.ErrRecognizerUnavailable.
func (c *Client) ExtractEntities(ctx context.Context, text string) ([]matcher.Entity, error) {
	if c == nil || c.model == nil {
		return nil, matcher.ErrRecognizerUnavailable
	}

	text = truncateUTF8(text, maxPromptChars)

	prompt := fmt.Sprintf(`Find the named entities in the following resume text.
Return a JSON array of objects with the fields:

[
  {"text": "exact surface text as it appears", "label": "ORG|PRODUCT|LANGUAGE|PERSON|GPE|DATE|OTHER"}
]

Use ORG for companies and organisations, PRODUCT for software, tools and platforms,
and LANGUAGE for programming or natural languages. Copy "text" exactly as written,
keeping its original casing.

RESUME TEXT:
%s

Return ONLY the JSON array, no markdown formatting, no explanation.`, text)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	raw := extractText(resp)
	if raw == "" {
		return nil, fmt.Errorf("no response from Gemini")
	}

	entities, err := parseEntities(raw)
	if err != nil {
		c.logger.Warn("unparseable entity response",
			zap.String("response", logger.TruncateForLog(raw, 200)),
			zap.Error(err),
		)
		return nil, err
	}

	c.logger.Debug("entities recognized", zap.Int("count", len(entities)))
	return entities, nil
}

// parseEntities decodes the model's JSON array, dropping blank entries and
// normalising labels to upper case.
func parseEntities(raw string) ([]matcher.Entity, error) {
	var decoded []matcher.Entity
	if err := json.Unmarshal([]byte(cleanJSON(raw)), &decoded); err != nil {
		return nil, fmt.Errorf("failed to parse entities JSON: %w", err)
	}

	entities := make([]matcher.Entity, 0, len(decoded))
	for _, e := range decoded {
		if strings.TrimSpace(e.Text) == "" {
			continue
		}
		e.Label = strings.ToUpper(strings.TrimSpace(e.Label))
		entities = append(entities, e)
	}
	return entities, nil
}

// Helper functions

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String()
}

func cleanJSON(text string) string {
	// Remove markdown code blocks if present
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)
	return text
}

// truncateUTF8 cuts text to at most n bytes without splitting a rune.
func truncateUTF8(text string, n int) string {
	if len(text) <= n {
		return text
	}
	for n > 0 && !utf8.RuneStart(text[n]) {
		n--
	}
	return text[:n]
}
