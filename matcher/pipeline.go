package matcher

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/aipsms/ai-engine/models"
)

// ErrInvalidInput marks caller input that cannot be scored.
var ErrInvalidInput = errors.New("invalid match input")

// Upper bound for a CGPA given on a percentage scale.
const maxCGPA = 100

// Scorer computes batch-relative similarity between a resume and job texts.
type Scorer interface {
	Score(resumeText string, jobTexts []string) []float64
}

// MatchInput is everything needed to rank one batch of jobs.
type MatchInput struct {
	ResumeText   string
	ResumeSkills []string
	Jobs         []models.JobPosting
	CGPA         float64
	Internships  int
}

// Validate rejects academic and experience values outside the supported scale.
func (in MatchInput) Validate() error {
	if math.IsNaN(in.CGPA) || in.CGPA < 0 || in.CGPA > maxCGPA {
		return fmt.Errorf("%w: cgpa must be between 0 and %d, got %v", ErrInvalidInput, maxCGPA, in.CGPA)
	}
	if in.Internships < 0 {
		return fmt.Errorf("%w: internships must not be negative, got %d", ErrInvalidInput, in.Internships)
	}
	return nil
}

// Pipeline ranks jobs for a resume.
type Pipeline struct {
	scorer Scorer
	logger *zap.Logger
}

// NewPipeline creates a pipeline using scorer for text similarity.
func NewPipeline(scorer Scorer, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		scorer: scorer,
		logger: logger,
	}
}

// Run scores every job and returns them ordered by placement probability,
// highest first. Jobs with equal probability keep their input order.
func (p *Pipeline) Run(ctx context.Context, in MatchInput) ([]models.MatchResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	texts := make([]string, len(in.Jobs))
	for i, job := range in.Jobs {
		texts[i] = job.MatchText()
	}

	similarities := p.scorer.Score(in.ResumeText, texts)
	if len(similarities) != len(in.Jobs) {
		return nil, fmt.Errorf("scorer returned %d scores for %d jobs", len(similarities), len(in.Jobs))
	}

	results := make([]models.MatchResult, len(in.Jobs))
	for i, job := range in.Jobs {
		gap := AnalyzeGap(in.ResumeSkills, job.RequiredSkills)
		results[i] = models.MatchResult{
			JobID:                job.JobID,
			Title:                job.Title,
			SimilarityScore:      Round2(similarities[i] * 100),
			PlacementProbability: PlacementScore(gap.MatchPercentage, in.CGPA, in.Internships),
			MissingSkills:        gap.Missing,
			MatchingSkills:       gap.Matching,
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].PlacementProbability > results[j].PlacementProbability
	})

	p.logger.Debug("jobs ranked",
		zap.Int("jobs", len(results)),
		zap.Int("resume_skills", len(in.ResumeSkills)),
	)
	return results, nil
}

// InputFromRequest converts an API match request into pipeline input.
func InputFromRequest(req models.MatchRequest) MatchInput {
	return MatchInput{
		ResumeText:   req.ResumeText,
		ResumeSkills: req.ResumeSkills,
		Jobs:         req.Jobs,
		CGPA:         req.CGPA,
		Internships:  req.Internships,
	}
}
