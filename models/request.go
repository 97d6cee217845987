package models

// MatchRequest represents the API request for job matching
// @Description Resume plus a batch of jobs to rank
type MatchRequest struct {
	ResumeText   string       `json:"resume_text" example:"Jane Doe\nPython developer with SQL experience"`
	ResumeSkills []string     `json:"resume_skills" example:"Python,SQL"`
	Jobs         []JobPosting `json:"jobs"`
	CGPA         float64      `json:"cgpa" example:"8"`
	Internships  int          `json:"internships" example:"2"`
}

// MatchResponse represents the API response for job matching
// @Description Jobs sorted by placement probability, highest first
type MatchResponse struct {
	Matches []MatchResult `json:"matches"`
}

// AnalyzeResumeResponse represents the API response for resume analysis
// @Description Parsed resume
type AnalyzeResumeResponse struct {
	Filename string        `json:"filename" example:"resume.pdf"`
	Data     ResumeProfile `json:"data"`
	Stored   string        `json:"stored,omitempty" example:"uploads/2f1c.pdf"`
}

// RecommendResponse represents the API response for learning recommendations
// @Description Course recommendations for missing skills
type RecommendResponse struct {
	Recommendations []Recommendation `json:"recommendations"`
}

// ErrorResponse represents an API error response
// @Description Standard error response
type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request body"`
	Code    int    `json:"code" example:"400"`
	Details string `json:"details,omitempty" example:"cgpa must be between 0 and 100"`
}

// HealthResponse represents health check response
// @Description Server health status
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Version   string `json:"version" example:"1.0.0"`
	Timestamp string `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}

// MessageResponse is a plain message payload
type MessageResponse struct {
	Message string `json:"message" example:"AIPSMS AI Engine is Powered Up"`
}
