package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aipsms/ai-engine/config"
	"github.com/aipsms/ai-engine/models"
)

func defaultRecommender(t *testing.T) *Recommender {
	t.Helper()
	catalog, err := config.LoadCatalog("")
	require.NoError(t, err)
	return NewRecommender(catalog.Courses)
}

func TestRecommend(t *testing.T) {
	r := defaultRecommender(t)

	tests := []struct {
		name   string
		skills []string
		want   []models.Recommendation
	}{
		{
			name:   "exact key",
			skills: []string{"aws"},
			want:   []models.Recommendation{{Skill: "aws", Course: "AWS Certified Solutions Architect"}},
		},
		{
			name:   "key inside a longer skill keeps the caller's casing",
			skills: []string{"AWS Lambda", "PostgreSQL"},
			want: []models.Recommendation{
				{Skill: "AWS Lambda", Course: "AWS Certified Solutions Architect"},
				{Skill: "PostgreSQL", Course: "SQLZoo Interactive Tutorials"},
			},
		},
		{
			name:   "one skill can match several keys",
			skills: []string{"JavaScript"},
			want:   []models.Recommendation{{Skill: "JavaScript", Course: "Effective Java Series"}},
		},
		{
			name:   "catalog order within a skill",
			skills: []string{"python-sql"},
			want: []models.Recommendation{
				{Skill: "python-sql", Course: "Advanced Python by RealPython"},
				{Skill: "python-sql", Course: "SQLZoo Interactive Tutorials"},
			},
		},
		{
			name:   "no match",
			skills: []string{"Kubernetes"},
			want:   []models.Recommendation{},
		},
		{
			name:   "no skills",
			skills: nil,
			want:   []models.Recommendation{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Recommend(tt.skills))
		})
	}
}

func TestRecommendCustomCatalog(t *testing.T) {
	r := NewRecommender([]config.Course{
		{Key: " Go ", Course: "Tour of Go"},
		{Key: "", Course: "never"},
	})

	assert.Equal(t,
		[]models.Recommendation{{Skill: "Golang", Course: "Tour of Go"}},
		r.Recommend([]string{"Golang", "Rust"}),
	)
}
