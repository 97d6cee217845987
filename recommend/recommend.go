// Package recommend suggests courses for skills a candidate is missing.
package recommend

import (
	"strings"

	"github.com/aipsms/ai-engine/config"
	"github.com/aipsms/ai-engine/models"
)

type entry struct {
	key    string
	course string
}

// Recommender matches skills against a fixed course catalog.
type Recommender struct {
	entries []entry
}

// NewRecommender builds a recommender over courses, keeping catalog order.
func NewRecommender(courses []config.Course) *Recommender {
	entries := make([]entry, 0, len(courses))
	for _, c := range courses {
		entries = append(entries, entry{
			key:    strings.ToLower(strings.TrimSpace(c.Key)),
			course: c.Course,
		})
	}
	return &Recommender{entries: entries}
}

// Recommend returns one recommendation per (skill, course) pair where the
// course key occurs in the skill, case-insensitively. Skills are visited in
// input order and courses in catalog order.
func (r *Recommender) Recommend(skills []string) []models.Recommendation {
	recs := []models.Recommendation{}
	for _, skill := range skills {
		lower := strings.ToLower(skill)
		for _, e := range r.entries {
			if e.key != "" && strings.Contains(lower, e.key) {
				recs = append(recs, models.Recommendation{Skill: skill, Course: e.course})
			}
		}
	}
	return recs
}
