package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/myjobmatch/jobfeed/config"
	"github.com/myjobmatch/jobfeed/models"
	"github.com/myjobmatch/jobfeed/search"
)

const maxToolResults = 20

// Searcher runs a multi-term job search
type Searcher interface {
	Search(ctx context.Context, req search.Request) (*search.Output, error)
}

// ScrapeJobsTool searches job boards, optionally ranking results
type ScrapeJobsTool struct {
	searcher Searcher
	cfg      *config.Config
}

// NewScrapeJobsTool creates a new scrape tool
func NewScrapeJobsTool(searcher Searcher, cfg *config.Config) *ScrapeJobsTool {
	return &ScrapeJobsTool{searcher: searcher, cfg: cfg}
}

func (t *ScrapeJobsTool) Name() string {
	return "scrape_jobs"
}

func (t *ScrapeJobsTool) Description() string {
	return `Search job boards for recent postings.
search_term accepts several comma-separated roles, each searched separately.
When preferences are given every job gets a match_score and results are sorted best first.`
}

func (t *ScrapeJobsTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"search_term": map[string]interface{}{
				"type":        "string",
				"description": "Comma-separated job titles, e.g. 'Data Scientist, ML Engineer'",
			},
			"location": map[string]interface{}{
				"type":        "string",
				"description": "Location to search in",
			},
			"results_wanted": map[string]interface{}{
				"type":        "integer",
				"description": fmt.Sprintf("Results per site and term (max %d)", maxToolResults),
			},
			"hours_old": map[string]interface{}{
				"type":        "integer",
				"description": "Only postings newer than this many hours",
			},
			"preferences": map[string]interface{}{
				"type":        "object",
				"description": "Optional candidate preferences used to rank results",
			},
		},
		"required": []string{"search_term"},
	}
}

// ScrapeJobsInput is the tool's input
type ScrapeJobsInput struct {
	SearchTerm    string                  `json:"search_term"`
	Location      string                  `json:"location"`
	ResultsWanted int                     `json:"results_wanted"`
	HoursOld      int                     `json:"hours_old"`
	Preferences   *models.UserPreferences `json:"preferences,omitempty"`
}

func (t *ScrapeJobsTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var in ScrapeJobsInput
	if err := json.Unmarshal(input, &in); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	terms := search.SplitTerms(in.SearchTerm)
	if len(terms) == 0 {
		return NewErrorResult("search_term is required")
	}
	if in.ResultsWanted <= 0 || in.ResultsWanted > maxToolResults {
		in.ResultsWanted = 2
	}
	if in.HoursOld <= 0 {
		in.HoursOld = 72
	}

	req := search.Request{
		Terms:         terms,
		Location:      in.Location,
		CountryIndeed: "USA",
		ResultsWanted: in.ResultsWanted,
		HoursOld:      in.HoursOld,
		Sites:         t.cfg.PlainSites,
	}
	if in.Preferences != nil {
		base := *in.Preferences
		req.Preferences = func(term string) models.UserPreferences {
			if base.JobRoles == "" {
				return base.WithRole(term)
			}
			return base
		}
		req.SortByScore = true
	}

	out, err := t.searcher.Search(ctx, req)
	if err != nil {
		return NewErrorResult(fmt.Sprintf("search failed: %v", err))
	}

	return NewSuccessResult(models.JobsResponse{
		Status:  models.StatusSuccess,
		Results: len(out.Jobs),
		Jobs:    out.Jobs,
	})
}
