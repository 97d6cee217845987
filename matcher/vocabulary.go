package matcher

import (
	"sort"
	"strings"
)

// Vocabulary is the fixed set of skill labels the extractor recognizes.
// It is built once at startup and never mutated afterwards.
type Vocabulary struct {
	labels  []string
	byLower map[string]string
}

// NewVocabulary builds a vocabulary from canonical labels. Labels that differ
// only by case collapse to the first spelling seen; blank labels are skipped.
func NewVocabulary(labels []string) *Vocabulary {
	v := &Vocabulary{byLower: make(map[string]string, len(labels))}
	for _, label := range labels {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		key := strings.ToLower(label)
		if _, ok := v.byLower[key]; ok {
			continue
		}
		v.byLower[key] = label
		v.labels = append(v.labels, label)
	}
	sort.Strings(v.labels)
	return v
}

// Len returns the number of labels.
func (v *Vocabulary) Len() int {
	return len(v.labels)
}

// Contains reports whether s is exactly one of the canonical labels.
func (v *Vocabulary) Contains(s string) bool {
	canonical, ok := v.byLower[strings.ToLower(s)]
	return ok && canonical == s
}
