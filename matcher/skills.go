package matcher

import (
	"context"
	"errors"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"
)

// SkillExtractor finds vocabulary skills mentioned in a document.
type SkillExtractor struct {
	vocab      *Vocabulary
	recognizer EntityRecognizer
	logger     *zap.Logger
}

// NewSkillExtractor creates an extractor. recognizer may be nil, in which case
// only vocabulary matching is performed.
func NewSkillExtractor(vocab *Vocabulary, recognizer EntityRecognizer, logger *zap.Logger) *SkillExtractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SkillExtractor{
		vocab:      vocab,
		recognizer: recognizer,
		logger:     logger,
	}
}

// Extract returns the sorted set of vocabulary labels found in text, using the
// vocabulary's casing.
func (e *SkillExtractor) Extract(ctx context.Context, text string) []string {
	found := make(map[string]struct{})

	lower := strings.ToLower(text)
	for _, label := range e.vocab.labels {
		if containsWord(lower, strings.ToLower(label)) {
			found[label] = struct{}{}
		}
	}

	// Entities only count when their surface text is exactly a vocabulary label.
	if e.recognizer != nil && strings.TrimSpace(text) != "" {
		entities, err := e.recognizer.ExtractEntities(ctx, text)
		switch {
		case errors.Is(err, ErrRecognizerUnavailable):
			e.logger.Debug("entity recognizer unavailable, using vocabulary only")
		case err != nil:
			e.logger.Warn("entity recognition failed, using vocabulary only", zap.Error(err))
		default:
			for _, ent := range entities {
				if isSkillEntity(ent.Label) && e.vocab.Contains(ent.Text) {
					found[ent.Text] = struct{}{}
				}
			}
		}
	}

	skills := make([]string, 0, len(found))
	for skill := range found {
		skills = append(skills, skill)
	}
	sort.Strings(skills)
	return skills
}

// containsWord reports whether word occurs in text with no word character
// directly before or after it. Both arguments must already be lower-cased.
func containsWord(text, word string) bool {
	if word == "" {
		return false
	}
	for start := 0; start < len(text); {
		i := strings.Index(text[start:], word)
		if i < 0 {
			return false
		}
		i += start
		end := i + len(word)

		ok := true
		if i > 0 {
			r, _ := utf8.DecodeLastRuneInString(text[:i])
			ok = !isWordRune(r)
		}
		if ok && end < len(text) {
			r, _ := utf8.DecodeRuneInString(text[end:])
			ok = !isWordRune(r)
		}
		if ok {
			return true
		}

		_, size := utf8.DecodeRuneInString(text[i:])
		start = i + size
	}
	return false
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
