package matcher

import (
	"math"
	"sort"
	"strings"
)

// Vectorizer turns a corpus into comparable term-weighted vectors.
type Vectorizer interface {
	Fit(docs []string)
	Transform(text string) Vector
}

// Vector is a sparse term vector ordered by term index.
type Vector []term

type term struct {
	index  int
	weight float64
}

// Dot returns the inner product of two vectors.
func (v Vector) Dot(other Vector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(v) && j < len(other) {
		switch {
		case v[i].index == other[j].index:
			sum += v[i].weight * other[j].weight
			i++
			j++
		case v[i].index < other[j].index:
			i++
		default:
			j++
		}
	}
	return sum
}

// TFIDFVectorizer weights raw term counts by smoothed inverse document
// frequency and L2-normalises each vector. Tokens are runs of two or more
// word characters after lower-casing; English stopwords are dropped.
//
// A TFIDFVectorizer holds corpus state between Fit and Transform and must not
// be shared between goroutines. SimilarityScorer builds a new one per call.
type TFIDFVectorizer struct {
	vocabulary map[string]int
	idf        []float64
}

// NewTFIDFVectorizer creates an empty vectorizer.
func NewTFIDFVectorizer() *TFIDFVectorizer {
	return &TFIDFVectorizer{vocabulary: make(map[string]int)}
}

// Fit builds the vocabulary and IDF weights from docs, replacing any
// previous state.
func (v *TFIDFVectorizer) Fit(docs []string) {
	docFreq := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]bool)
		for _, tok := range tokenize(doc) {
			if !seen[tok] {
				seen[tok] = true
				docFreq[tok]++
			}
		}
	}

	terms := make([]string, 0, len(docFreq))
	for t := range docFreq {
		terms = append(terms, t)
	}
	sort.Strings(terms)

	n := float64(len(docs))
	v.vocabulary = make(map[string]int, len(terms))
	v.idf = make([]float64, len(terms))
	for i, t := range terms {
		v.vocabulary[t] = i
		v.idf[i] = math.Log((1+n)/(1+float64(docFreq[t]))) + 1
	}
}

// Transform converts text into a unit-length vector over the fitted
// vocabulary. Unknown terms are ignored; text with no known terms yields an
// empty vector.
func (v *TFIDFVectorizer) Transform(text string) Vector {
	counts := make(map[int]float64)
	for _, tok := range tokenize(text) {
		if idx, ok := v.vocabulary[tok]; ok {
			counts[idx]++
		}
	}

	vec := make(Vector, 0, len(counts))
	for idx, tf := range counts {
		vec = append(vec, term{index: idx, weight: tf * v.idf[idx]})
	}
	sort.Slice(vec, func(i, j int) bool { return vec[i].index < vec[j].index })

	var norm float64
	for _, t := range vec {
		norm += t.weight * t.weight
	}
	if norm == 0 {
		return vec
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i].weight /= norm
	}
	return vec
}

// VocabularySize returns the number of fitted terms.
func (v *TFIDFVectorizer) VocabularySize() int {
	return len(v.vocabulary)
}

// SimilarityScorer computes resume-to-job cosine similarity inside a vector
// space fitted on the resume and the whole job batch.
type SimilarityScorer struct {
	newVectorizer func() Vectorizer
}

// NewSimilarityScorer returns a scorer backed by TF-IDF vectors.
func NewSimilarityScorer() *SimilarityScorer {
	return &SimilarityScorer{
		newVectorizer: func() Vectorizer { return NewTFIDFVectorizer() },
	}
}

// Score returns the cosine similarity in [0,1] between resumeText and each of
// jobTexts, index-aligned. Scores are relative to the batch: the same job may
// score differently when batched with other jobs.
func (s *SimilarityScorer) Score(resumeText string, jobTexts []string) []float64 {
	if len(jobTexts) == 0 {
		return []float64{}
	}

	docs := make([]string, 0, len(jobTexts)+1)
	docs = append(docs, resumeText)
	docs = append(docs, jobTexts...)

	vec := s.newVectorizer()
	vec.Fit(docs)

	resume := vec.Transform(resumeText)
	scores := make([]float64, len(jobTexts))
	for i, text := range jobTexts {
		sim := resume.Dot(vec.Transform(text))
		scores[i] = math.Min(math.Max(sim, 0), 1)
	}
	return scores
}

func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !isWordRune(r)
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len([]rune(f)) < 2 {
			continue
		}
		if _, stop := englishStopWords[f]; stop {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}
