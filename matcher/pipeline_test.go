package matcher

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aipsms/ai-engine/models"
)

type fixedScorer struct {
	scores   []float64
	gotTexts []string
	calls    int
}

func (f *fixedScorer) Score(_ string, jobTexts []string) []float64 {
	f.calls++
	f.gotTexts = jobTexts
	return f.scores
}

func TestPipelineRunScenario(t *testing.T) {
	p := NewPipeline(NewSimilarityScorer(), nil)

	results, err := p.Run(context.Background(), MatchInput{
		ResumeText:   "Python developer with SQL experience",
		ResumeSkills: []string{"Python", "SQL"},
		Jobs: []models.JobPosting{{
			JobID:          "j1",
			Title:          "Backend Engineer",
			Description:    "Backend services",
			RequiredSkills: []string{"Python", "SQL", "AWS"},
		}},
		CGPA:        8,
		Internships: 2,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, "j1", r.JobID)
	assert.Equal(t, "Backend Engineer", r.Title)
	assert.Equal(t, []string{"python", "sql"}, r.MatchingSkills)
	assert.Equal(t, []string{"aws"}, r.MissingSkills)
	assert.Equal(t, 66.0, r.PlacementProbability)
	assert.Greater(t, r.SimilarityScore, 0.0)
	assert.LessOrEqual(t, r.SimilarityScore, 100.0)
}

func TestPipelineRunEmptyJobs(t *testing.T) {
	p := NewPipeline(NewSimilarityScorer(), nil)

	results, err := p.Run(context.Background(), MatchInput{ResumeText: "anything"})
	require.NoError(t, err)
	require.NotNil(t, results)
	assert.Empty(t, results)
}

func TestPipelineRunBatchesAndSortsStably(t *testing.T) {
	scorer := &fixedScorer{scores: []float64{0.1, 0.123456, 0.9, 0.5}}
	p := NewPipeline(scorer, nil)

	jobs := []models.JobPosting{
		{JobID: "a", Description: "first", RequiredSkills: []string{"Go"}},
		{JobID: "b", Description: "second", RequiredSkills: []string{"Rust", "Go"}},
		{JobID: "c", Description: "third", RequiredSkills: []string{"Go"}},
		{JobID: "d", Description: "fourth"},
	}

	results, err := p.Run(context.Background(), MatchInput{
		ResumeSkills: []string{"go"},
		Jobs:         jobs,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, scorer.calls, "similarity is computed once per batch")
	assert.Equal(t, []string{"first Go", "second Rust Go", "third Go", "fourth "}, scorer.gotTexts)

	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.JobID
	}
	// a and c tie at 60 and keep input order; b scores 30, d scores 0.
	assert.Equal(t, []string{"a", "c", "b", "d"}, ids)
	assert.Equal(t, 12.35, results[2].SimilarityScore)
	assert.Equal(t, 50.0, results[3].SimilarityScore)
}

func TestPipelineRunRejectsInvalidInput(t *testing.T) {
	p := NewPipeline(&fixedScorer{}, nil)

	tests := []struct {
		name string
		in   MatchInput
	}{
		{name: "negative cgpa", in: MatchInput{CGPA: -1}},
		{name: "cgpa above percentage scale", in: MatchInput{CGPA: 120}},
		{name: "negative internships", in: MatchInput{Internships: -2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Run(context.Background(), tt.in)
			assert.True(t, errors.Is(err, ErrInvalidInput), "got %v", err)
		})
	}
}

func TestPipelineRunScorerMismatch(t *testing.T) {
	p := NewPipeline(&fixedScorer{scores: []float64{0.5}}, nil)

	_, err := p.Run(context.Background(), MatchInput{
		Jobs: []models.JobPosting{{JobID: "a"}, {JobID: "b"}},
	})
	assert.Error(t, err)
}

func TestPipelineRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewPipeline(&fixedScorer{}, nil).Run(ctx, MatchInput{})
	assert.ErrorIs(t, err, context.Canceled)
}
