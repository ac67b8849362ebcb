package models

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// JobsResponse is returned by both search endpoints
// @Description Aggregated job postings
type JobsResponse struct {
	Status  string      `json:"status" example:"success"`
	Results int         `json:"results" example:"4"`
	Jobs    []JobRecord `json:"jobs"`
}

// JobsErrorResponse is the error envelope of the search endpoints
// @Description Search failure. Source location and traceback are only filled in debug mode.
type JobsErrorResponse struct {
	Status        string `json:"status" example:"error"`
	Message       string `json:"message" example:"invalid results_wanted: strconv.Atoi: parsing \"x\": invalid syntax"`
	ErrorType     string `json:"error_type,omitempty" example:"*strconv.NumError"`
	LineNumber    int    `json:"line_number,omitempty" example:"87"`
	File          string `json:"file,omitempty" example:"handlers/jobs.go"`
	FullTraceback string `json:"full_traceback,omitempty"`
}

// ErrorResponse represents an API error response
// @Description Standard error response
type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request body"`
	Code    int    `json:"code" example:"400"`
	Details string `json:"details,omitempty" example:"email is required"`
}

// HealthResponse represents health check response
// @Description Server health status
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Version   string `json:"version" example:"1.0.0"`
	Timestamp string `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}

// PreferencesResponse wraps the caller's saved preferences
// @Description Saved search preferences
type PreferencesResponse struct {
	Preferences UserPreferences `json:"preferences"`
	Message     string          `json:"message,omitempty" example:"Preferences saved"`
}

// ScoreJobRequest represents request to score a job match
type ScoreJobRequest struct {
	Preferences UserPreferences `json:"preferences"`
	Job         JobRecord       `json:"job"`
}

// ScoreJobResponse represents response from job scoring
type ScoreJobResponse struct {
	MatchScore int  `json:"match_score"`
	Degraded   bool `json:"degraded,omitempty"`
}
