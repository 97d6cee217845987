package resume

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/aipsms/ai-engine/matcher"
	"github.com/aipsms/ai-engine/models"
)

var (
	emailPattern = regexp.MustCompile(`[\p{L}\p{N}_.-]+@[\p{L}\p{N}_.-]+\.[\p{L}\p{N}_]+`)
	phonePattern = regexp.MustCompile(`\d{3}[-.\s]??\d{3}[-.\s]??\d{4}|\(\d{3}\)\s*\d{3}[-.\s]??\d{4}|\d{3}[-.\s]??\d{4}`)
)

// maxEducationLines caps how many education lines a profile keeps.
const maxEducationLines = 2

var educationKeywords = []string{"bachelor", "master", "b.tech", "m.tech", "phd", "degree", "university", "college"}

// TextExtractor turns an uploaded file into plain text.
type TextExtractor interface {
	ExtractText(filename string, content []byte) (string, error)
}

// Parser builds resume profiles from uploaded documents.
type Parser struct {
	extractor TextExtractor
	skills    *matcher.SkillExtractor
	pool      *Pool
	logger    *zap.Logger
}

// NewParser creates a parser. Document decoding runs on pool.
func NewParser(extractor TextExtractor, skills *matcher.SkillExtractor, pool *Pool, logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{
		extractor: extractor,
		skills:    skills,
		pool:      pool,
		logger:    logger,
	}
}

// Parse decodes the document and extracts a profile from its text.
func (p *Parser) Parse(ctx context.Context, filename string, content []byte) (*models.ResumeProfile, error) {
	var text string
	err := p.pool.Do(ctx, func() error {
		var err error
		text, err = p.extractor.ExtractText(filename, content)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", filename, err)
	}

	profile := p.ParseText(ctx, text)
	p.logger.Debug("resume parsed",
		zap.String("filename", filename),
		zap.Int("chars", len(text)),
		zap.Int("skills", len(profile.Skills)),
		zap.Bool("email", profile.Email != nil),
		zap.Bool("phone", profile.Phone != nil),
	)
	return profile, nil
}

// ParseText extracts contact details, skills and education from plain text.
// Fields that cannot be found are left nil or empty.
func (p *Parser) ParseText(ctx context.Context, text string) *models.ResumeProfile {
	return &models.ResumeProfile{
		Email:     ExtractEmail(text),
		Phone:     ExtractPhone(text),
		Skills:    p.skills.Extract(ctx, text),
		Education: ExtractEducation(text),
		RawText:   text,
	}
}

// ExtractEmail returns the first email-like token, or nil.
func ExtractEmail(text string) *string {
	return firstMatch(emailPattern, text)
}

// ExtractPhone returns the first phone-number-like token, or nil.
func ExtractPhone(text string) *string {
	return firstMatch(phonePattern, text)
}

func firstMatch(re *regexp.Regexp, text string) *string {
	m := re.FindString(text)
	if m == "" {
		return nil
	}
	return &m
}

// ExtractEducation returns up to two trimmed lines that mention a degree or
// institution, in document order.
func ExtractEducation(text string) []string {
	found := []string{}
	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)
		for _, kw := range educationKeywords {
			if strings.Contains(lower, kw) {
				found = append(found, strings.TrimSpace(line))
				break
			}
		}
		if len(found) == maxEducationLines {
			break
		}
	}
	return found
}
