package matcher

import (
	"context"
	"errors"
)

// ErrRecognizerUnavailable is returned by an EntityRecognizer that is
// installed but cannot serve requests (missing credentials, disabled model).
var ErrRecognizerUnavailable = errors.New("entity recognizer unavailable")

// Entity labels accepted as skill candidates.
const (
	EntityOrg      = "ORG"
	EntityProduct  = "PRODUCT"
	EntityLanguage = "LANGUAGE"
)

// Entity is a named entity found in a document.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// EntityRecognizer extracts named entities from free text.
type EntityRecognizer interface {
	ExtractEntities(ctx context.Context, text string) ([]Entity, error)
}

func isSkillEntity(label string) bool {
	switch label {
	case EntityOrg, EntityProduct, EntityLanguage:
		return true
	}
	return false
}
