package matcher

import "math"

// Placement weights. They sum to 1 so the score stays on a 0-100 scale.
const (
	SkillWeight      = 0.6
	AcademicWeight   = 0.2
	ExperienceWeight = 0.2

	internshipPoints = 25
)

// AcademicScore maps a CGPA to 0-100. Values up to 10 are read as a 10-point
// scale, larger values as already being a percentage.
func AcademicScore(cgpa float64) float64 {
	score := cgpa
	if cgpa <= 10 {
		score = cgpa / 10 * 100
	}
	return clamp(score, 0, 100)
}

// ExperienceScore gives 25 points per internship, saturating at 100.
func ExperienceScore(internships int) float64 {
	return clamp(float64(internships)*internshipPoints, 0, 100)
}

// PlacementScore blends skill match, academics and experience into a
// placement probability rounded to 2 decimals.
func PlacementScore(matchPercentage, cgpa float64, internships int) float64 {
	score := SkillWeight*matchPercentage +
		AcademicWeight*AcademicScore(cgpa) +
		ExperienceWeight*ExperienceScore(internships)
	return Round2(score)
}

// Round2 rounds x to 2 decimal places.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func clamp(x, lo, hi float64) float64 {
	return math.Min(math.Max(x, lo), hi)
}
