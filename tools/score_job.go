package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/myjobmatch/jobfeed/models"
	"github.com/myjobmatch/jobfeed/scoring"
)

// ScoreJobTool scores one posting against a set of preferences
type ScoreJobTool struct{}

// NewScoreJobTool creates a new job scoring tool
func NewScoreJobTool() *ScoreJobTool {
	return &ScoreJobTool{}
}

func (t *ScoreJobTool) Name() string {
	return "score_job_match"
}

func (t *ScoreJobTool) Description() string {
	return `Score how well a job posting matches a candidate's preferences.
Input is the preferences object and a job posting as returned by scrape_jobs.
Returns a match score from 0 to 100. A degraded result means the posting could not be scored and carries the neutral score 50.`
}

func (t *ScoreJobTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"preferences": map[string]interface{}{
				"type":        "object",
				"description": "Candidate preferences: job_roles, location, years_of_experience, job_level, work_mode, education_level, job_type",
			},
			"job": map[string]interface{}{
				"type":        "object",
				"description": "Job posting with title, description, location, job_type and is_remote",
			},
		},
		"required": []string{"preferences", "job"},
	}
}

func (t *ScoreJobTool) Execute(_ context.Context, input json.RawMessage) (json.RawMessage, error) {
	var req models.ScoreJobRequest
	if err := json.Unmarshal(input, &req); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}
	if req.Job == nil {
		return NewErrorResult("job is required")
	}

	res := scoring.Score(req.Job, req.Preferences)
	return NewSuccessResult(models.ScoreJobResponse{
		MatchScore: res.Value(),
		Degraded:   res.Degraded,
	})
}
