// Package scraper talks to the external multi-site job scraper.
package scraper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/myjobmatch/jobfeed/config"
	"github.com/myjobmatch/jobfeed/logger"
	"github.com/myjobmatch/jobfeed/models"
	"github.com/myjobmatch/jobfeed/utils"
)

const (
	scrapePath   = "/scrape"
	maxBodyBytes = 20 * 1024 * 1024
)

// Query is one scrape request: a single search term against a set of sites.
type Query struct {
	Sites            []string `json:"site_name"`
	SearchTerm       string   `json:"search_term"`
	GoogleSearchTerm string   `json:"google_search_term,omitempty"`
	Location         string   `json:"location"`
	CountryIndeed    string   `json:"country_indeed,omitempty"`
	ResultsWanted    int      `json:"results_wanted"`
	HoursOld         int      `json:"hours_old"`
}

// Scraper returns job postings for a query.
type Scraper interface {
	Scrape(ctx context.Context, q Query) ([]models.JobRecord, error)
}

// Error is returned when the scraper answers with a failure.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("scraper returned %d: %s", e.StatusCode, e.Message)
}

type scrapeResponse struct {
	Jobs  []models.JobRecord `json:"jobs"`
	Error string             `json:"error,omitempty"`
}

// Client calls the scraping sidecar over HTTP.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a scraper client with a process-wide rate limit.
func NewClient(cfg *config.Config) *Client {
	limiter := rate.NewLimiter(rate.Limit(cfg.ScraperRatePerSecond), 1)
	timeout := time.Duration(cfg.ScraperTimeoutSeconds) * time.Second
	return &Client{
		baseURL: strings.TrimRight(cfg.ScraperURL, "/"),
		client:  utils.NewHTTPClient(timeout, limiter),
	}
}

// Scrape runs a single scrape. There are no retries.
func (c *Client) Scrape(ctx context.Context, q Query) ([]models.JobRecord, error) {
	log := logger.Component("scraper").With().Str("term", q.SearchTerm).Logger()

	payload, err := json.Marshal(q)
	if err != nil {
		return nil, fmt.Errorf("encoding query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+scrapePath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	var out scrapeResponse
	decodeErr := json.Unmarshal(body, &out)

	if resp.StatusCode != http.StatusOK {
		msg := strings.TrimSpace(string(body))
		if decodeErr == nil && out.Error != "" {
			msg = out.Error
		}
		return nil, &Error{StatusCode: resp.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("decoding response: %w", decodeErr)
	}

	if out.Jobs == nil {
		out.Jobs = []models.JobRecord{}
	}
	log.Debug().Int("jobs", len(out.Jobs)).Dur("took", time.Since(start)).Msg("Scrape completed")
	return out.Jobs, nil
}
