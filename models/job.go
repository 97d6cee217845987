package models

import "strings"

// JobPosting is a job supplied by the caller for a single match request
// @Description Job posting to rank against a resume
type JobPosting struct {
	JobID          string   `json:"job_id" example:"job-42"`
	Title          string   `json:"title" example:"Backend Engineer"`
	Description    string   `json:"description" example:"Build REST APIs in Python and deploy them on AWS"`
	RequiredSkills []string `json:"required_skills" example:"Python,SQL,AWS"`
}

// MatchText is the text vectorized for similarity: the description followed by
// the required skills, space-joined.
func (j JobPosting) MatchText() string {
	return j.Description + " " + strings.Join(j.RequiredSkills, " ")
}

// MatchResult is the per-job outcome of a match request
// @Description Ranked job match
type MatchResult struct {
	JobID                string   `json:"job_id" example:"job-42"`
	Title                string   `json:"title" example:"Backend Engineer"`
	SimilarityScore      float64  `json:"similarity_score" example:"37.12"`
	PlacementProbability float64  `json:"placement_probability" example:"66"`
	MissingSkills        []string `json:"missing_skills" example:"aws"`
	MatchingSkills       []string `json:"matching_skills" example:"python,sql"`
}

// Recommendation pairs a skill with a course that covers it
// @Description Learning recommendation
type Recommendation struct {
	Skill  string `json:"skill" example:"AWS Lambda"`
	Course string `json:"course" example:"AWS Certified Solutions Architect"`
}
