package scraper

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myjobmatch/jobfeed/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.Load()
	cfg.ScraperURL = server.URL + "/"
	cfg.ScraperRatePerSecond = 1000
	return NewClient(cfg)
}

func TestClientScrape(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/scrape", r.URL.Path)

		var q Query
		require.NoError(t, json.NewDecoder(r.Body).Decode(&q))
		assert.Equal(t, "golang", q.SearchTerm)
		assert.Equal(t, []string{"indeed", "linkedin"}, q.Sites)
		assert.Equal(t, 72, q.HoursOld)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"jobs":[{"title":"Go Developer","company":"Acme","is_remote":true,"min_amount":90000}]}`))
	})

	jobs, err := client.Scrape(context.Background(), Query{
		Sites:         []string{"indeed", "linkedin"},
		SearchTerm:    "golang",
		Location:      "Remote",
		ResultsWanted: 2,
		HoursOld:      72,
	})
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	assert.Equal(t, "Go Developer", jobs[0].TextOrEmpty("title"))
	assert.Equal(t, "Acme", jobs[0]["company"])
	assert.True(t, jobs[0].IsRemote())
	assert.Equal(t, 90000.0, jobs[0]["min_amount"])
}

func TestClientScrapeEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	jobs, err := client.Scrape(context.Background(), Query{SearchTerm: "x"})
	require.NoError(t, err)
	assert.NotNil(t, jobs)
	assert.Empty(t, jobs)
}

func TestClientScrapeFailure(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"json error", http.StatusTooManyRequests, `{"error":"rate limited by linkedin"}`, "rate limited by linkedin"},
		{"plain error", http.StatusBadGateway, "upstream down", "upstream down"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			_, err := client.Scrape(context.Background(), Query{SearchTerm: "x"})
			var scrapeErr *Error
			require.True(t, errors.As(err, &scrapeErr), "want *Error, got %v", err)
			assert.Equal(t, tt.status, scrapeErr.StatusCode)
			assert.Equal(t, tt.wantMsg, scrapeErr.Message)
		})
	}
}

func TestClientScrapeMalformed(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"jobs": [`))
	})

	_, err := client.Scrape(context.Background(), Query{SearchTerm: "x"})
	assert.ErrorContains(t, err, "decoding response")
}
