package matcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	got := tokenize("The Python developer, with 5 years of SQL & a AWS cert!")
	assert.Equal(t, []string{"python", "developer", "years", "sql", "aws", "cert"}, got)
}

func TestTFIDFVectorizer(t *testing.T) {
	v := NewTFIDFVectorizer()
	v.Fit([]string{"python sql", "python aws", "java"})

	require.Equal(t, 4, v.VocabularySize())

	vec := v.Transform("python python sql")
	var norm float64
	for _, term := range vec {
		norm += term.weight * term.weight
	}
	assert.InDelta(t, 1.0, norm, 1e-9)

	// python occurs in 2 of 3 docs, sql in 1: sql gets the larger idf.
	idfPython := math.Log(4.0/3.0) + 1
	idfSQL := math.Log(4.0/2.0) + 1
	assert.InDelta(t, idfPython, v.idf[v.vocabulary["python"]], 1e-12)
	assert.InDelta(t, idfSQL, v.idf[v.vocabulary["sql"]], 1e-12)

	assert.Empty(t, v.Transform("rust golang"))
}

func TestSimilarityScorerScore(t *testing.T) {
	scorer := NewSimilarityScorer()

	t.Run("empty jobs", func(t *testing.T) {
		got := scorer.Score("python developer", nil)
		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("identical and disjoint", func(t *testing.T) {
		got := scorer.Score("python developer", []string{"python developer", "pastry chef"})
		require.Len(t, got, 2)
		assert.InDelta(t, 1.0, got[0], 1e-9)
		assert.Equal(t, 0.0, got[1])
	})

	t.Run("stopword only documents", func(t *testing.T) {
		got := scorer.Score("the and of", []string{"a an the", "python"})
		assert.Equal(t, []float64{0, 0}, got)
	})

	t.Run("bounds and determinism", func(t *testing.T) {
		resume := "Backend engineer building Python services with SQL databases on AWS"
		jobs := []string{
			"Python backend engineer Python SQL AWS",
			"Frontend developer React JavaScript CSS",
			"Data analyst SQL dashboards SQL",
			"",
		}
		first := scorer.Score(resume, jobs)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, scorer.Score(resume, jobs))
		}
		for _, s := range first {
			assert.GreaterOrEqual(t, s, 0.0)
			assert.LessOrEqual(t, s, 1.0)
		}
		assert.Greater(t, first[0], first[2])
		assert.Greater(t, first[2], first[1])
		assert.Equal(t, 0.0, first[3])
	})
}

func TestVectorDot(t *testing.T) {
	a := Vector{{index: 0, weight: 1}, {index: 2, weight: 2}}
	b := Vector{{index: 1, weight: 5}, {index: 2, weight: 3}}
	assert.Equal(t, 6.0, a.Dot(b))
	assert.Equal(t, 0.0, a.Dot(nil))
}
