package models

// ResumeParseRequest represents the JSON form of a resume parse
// @Description Resume parse request with raw text
type ResumeParseRequest struct {
	ResumeText string `json:"resumeText" form:"resumeText" example:"Jane Doe\njane@example.com\nSkills: Python, SQL"`
}

// ResumeParseResponse represents the API response for a resume parse
// @Description Parsed resume with the stored job seeker id
type ResumeParseResponse struct {
	Message     string            `json:"message" example:"Resume parsed successfully"`
	JobSeekerID string            `json:"jobSeekerId" example:"3f2b8c1e-4a57-4d0e-9a53-6f1d2f0c7b11"`
	Data        *ResumeExtraction `json:"data"`
}

// LinkRequest links a job seeker profile to an account
// @Description Link request
type LinkRequest struct {
	UserID      string `json:"userId" binding:"required"`
	JobSeekerID string `json:"jobSeekerId" binding:"required"`
}

// ProfileDataResponse wraps a single candidate profile
// @Description Candidate profile response
type ProfileDataResponse struct {
	Message string            `json:"message,omitempty"`
	Data    *CandidateProfile `json:"data"`
}

// RecommendationsResponse lists ranked jobs for a candidate
// @Description Job recommendations
type RecommendationsResponse struct {
	Results      []RankedJob `json:"results"`
	TotalResults int         `json:"total_results" example:"3"`
}

// CandidatesResponse lists ranked candidates for a job
// @Description Ranked candidates
type CandidatesResponse struct {
	Results      []RankedCandidate `json:"results"`
	TotalResults int               `json:"total_results" example:"3"`
}

// MessageResponse is a bare confirmation
// @Description Confirmation message
type MessageResponse struct {
	Message string `json:"message" example:"Linked successfully"`
}

// HealthResponse represents the health check response
// @Description Health check response
type HealthResponse struct {
	Status  string `json:"status" example:"healthy"`
	Service string `json:"service" example:"jumptake-backend"`
	Version string `json:"version" example:"1.0.0"`
}

// ErrorResponse represents an API error response
// @Description Standard error response
type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request body"`
	Code    int    `json:"code" example:"400"`
	Type    string `json:"type,omitempty" example:"validation_error"`
	Details string `json:"details,omitempty" example:"email is required"`
}
