package matcher

import (
	"sort"
	"strings"
)

// SkillGap compares a candidate's skills with a job's requirements.
type SkillGap struct {
	Missing         []string `json:"missing_skills"`
	Matching        []string `json:"matching_skills"`
	MatchPercentage float64  `json:"match_percentage"`
}

// AnalyzeGap lower-cases both skill lists and splits the distinct required
// skills into those the resume covers and those it lacks. MatchPercentage is
// the covered share of distinct required skills, 0 when nothing is required.
func AnalyzeGap(resumeSkills, requiredSkills []string) SkillGap {
	have := make(map[string]struct{}, len(resumeSkills))
	for _, s := range resumeSkills {
		have[strings.ToLower(s)] = struct{}{}
	}

	gap := SkillGap{Missing: []string{}, Matching: []string{}}
	seen := make(map[string]struct{}, len(requiredSkills))
	for _, s := range requiredSkills {
		s = strings.ToLower(s)
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		if _, ok := have[s]; ok {
			gap.Matching = append(gap.Matching, s)
		} else {
			gap.Missing = append(gap.Missing, s)
		}
	}
	sort.Strings(gap.Matching)
	sort.Strings(gap.Missing)

	if len(seen) > 0 {
		gap.MatchPercentage = Round2(100 * float64(len(gap.Matching)) / float64(len(seen)))
	}
	return gap
}
