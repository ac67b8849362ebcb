package gemini

import (
	"strings"
	"testing"

	"cloud.google.com/go/vertexai/genai"
	"github.com/stretchr/testify/assert"

	"github.com/myjobmatch/jobfeed/models"
)

func TestCleanJSON(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"```json\n{\"match_reason\":\"ok\"}\n```", `{"match_reason":"ok"}`},
		{"```{}```", "{}"},
		{"  {}  ", "{}"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cleanJSON(tt.in))
	}
}

func TestExtractText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{genai.Text(`{"match_reason":`), genai.Text(`"fits"}`)}},
		}},
	}
	assert.Equal(t, `{"match_reason":"fits"}`, extractText(resp))
	assert.Empty(t, extractText(&genai.GenerateContentResponse{}))
	assert.Empty(t, extractText(nil))
}

func TestBuildExplainPrompt(t *testing.T) {
	job := models.JobRecord{
		"title":       "Backend Engineer",
		"location":    "Remote",
		"description": strings.Repeat("x", maxDescriptionChars+50),
		"is_remote":   true,
	}
	prompt := buildExplainPrompt(job, models.UserPreferences{JobRoles: "Backend Engineer"}, 87)

	assert.Contains(t, prompt, "scored 87/100")
	assert.Contains(t, prompt, "Title: Backend Engineer")
	assert.Contains(t, prompt, "Remote: true")
	assert.Contains(t, prompt, `"job_roles":"Backend Engineer"`)
	assert.NotContains(t, prompt, strings.Repeat("x", maxDescriptionChars+1))
}
