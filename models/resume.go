package models

// ResumeProfile is the structured result of parsing an uploaded resume.
// Email and Phone are nil when no match is found in the text.
// @Description Parsed resume fields
type ResumeProfile struct {
	Email     *string  `json:"email" example:"jane.doe@example.com"`
	Phone     *string  `json:"phone" example:"555-123-4567"`
	Skills    []string `json:"skills" example:"Python,SQL"`
	Education []string `json:"education" example:"B.Tech in Computer Science"`
	RawText   string   `json:"raw_text"`
}
