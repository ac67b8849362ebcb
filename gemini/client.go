package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"cloud.google.com/go/vertexai/genai"

	"github.com/myjobmatch/jobfeed/config"
	"github.com/myjobmatch/jobfeed/logger"
	"github.com/myjobmatch/jobfeed/models"
)

// maxDescriptionChars bounds how much of a posting goes into a prompt.
const maxDescriptionChars = 2000

// Client wraps the Vertex AI Gemini client
type Client struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	modelName string
}

// NewClient creates a new Gemini client
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	client, err := genai.NewClient(ctx, cfg.ProjectID, cfg.Location)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.GeminiModel)
	model.SetTemperature(0.2)
	model.SetTopP(0.8)
	model.SetMaxOutputTokens(512)
	model.ResponseMIMEType = "application/json"

	return &Client{
		client:    client,
		model:     model,
		modelName: cfg.GeminiModel,
	}, nil
}

// Close closes the Gemini client
func (c *Client) Close() error {
	return c.client.Close()
}

type explanation struct {
	MatchReason string `json:"match_reason"`
}

// ExplainMatch writes a short, human-readable reason for an already computed
// match score. It never changes the score.
func (c *Client) ExplainMatch(ctx context.Context, job models.JobRecord, prefs models.UserPreferences, score int) (string, error) {
	prompt := buildExplainPrompt(job, prefs, score)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := cleanJSON(extractText(resp))

	var result explanation
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		logger.Component("gemini").Debug().Str("model", c.modelName).Str("response", text).Msg("Unparseable explanation")
		return "", fmt.Errorf("failed to parse explanation JSON: %w", err)
	}

	return strings.TrimSpace(result.MatchReason), nil
}

func buildExplainPrompt(job models.JobRecord, prefs models.UserPreferences, score int) string {
	prefsJSON, _ := json.Marshal(prefs)

	description := job.TextOrEmpty(models.FieldDescription)
	if r := []rune(description); len(r) > maxDescriptionChars {
		description = string(r[:maxDescriptionChars]) + "..."
	}

	return fmt.Sprintf(`A job posting was scored %d/100 against a candidate's preferences.
Explain the score in 1-2 sentences, naming what matched and what did not.

CANDIDATE PREFERENCES:
%s

JOB POSTING:
Title: %s
Location: %s
Job type: %s
Remote: %t
Description: %s

Return a JSON object: {"match_reason": "..."}
Return ONLY the JSON object.`,
		score,
		prefsJSON,
		job.TextOrEmpty(models.FieldTitle),
		job.TextOrEmpty(models.FieldLocation),
		job.TextOrEmpty(models.FieldJobType),
		job.IsRemote(),
		description,
	)
}

// Helper functions

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String()
}

func cleanJSON(text string) string {
	// Remove markdown code blocks if present
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)
	return text
}
