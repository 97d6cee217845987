package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlacementScore(t *testing.T) {
	tests := []struct {
		name        string
		match       float64
		cgpa        float64
		internships int
		want        float64
	}{
		{name: "ten point cgpa", match: 66.67, cgpa: 8, internships: 2, want: 66},
		{name: "zero everything", want: 0},
		{name: "perfect", match: 100, cgpa: 10, internships: 4, want: 100},
		{name: "experience saturates", match: 0, cgpa: 0, internships: 9, want: 20},
		{name: "percentage cgpa", match: 50, cgpa: 85, internships: 1, want: 52},
		{name: "cgpa just above ten is a percentage", match: 0, cgpa: 10.5, want: 2.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlacementScore(tt.match, tt.cgpa, tt.internships))
		})
	}
}

func TestPlacementScoreMonotonic(t *testing.T) {
	prev := -1.0
	for m := 0.0; m <= 100; m += 5 {
		s := PlacementScore(m, 7, 1)
		assert.GreaterOrEqual(t, s, prev)
		prev = s
	}

	// Each cgpa scale is monotonic on its own; the scale switches above 10.
	for _, r := range [][2]float64{{0, 10}, {10.5, 100}} {
		prev = -1.0
		for c := r[0]; c <= r[1]; c += 0.5 {
			s := PlacementScore(40, c, 1)
			assert.GreaterOrEqual(t, s, prev, "cgpa %v", c)
			prev = s
		}
	}

	prev = -1.0
	for i := 0; i <= 8; i++ {
		s := PlacementScore(40, 7, i)
		assert.GreaterOrEqual(t, s, prev)
		prev = s
	}
}

func TestScoreComponentsClamp(t *testing.T) {
	assert.Equal(t, 0.0, AcademicScore(-3))
	assert.Equal(t, 100.0, AcademicScore(250))
	assert.Equal(t, 0.0, ExperienceScore(-2))
	assert.Equal(t, 100.0, ExperienceScore(4))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 66.67, Round2(200.0/3))
	assert.Equal(t, 66.0, Round2(66.002))
	assert.Equal(t, 0.0, Round2(0))
}
