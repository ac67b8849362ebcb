package search

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myjobmatch/jobfeed/config"
	"github.com/myjobmatch/jobfeed/models"
	"github.com/myjobmatch/jobfeed/scraper"
)

type fakeScraper struct {
	mu      sync.Mutex
	results map[string][]models.JobRecord
	fail    map[string]bool
	queries []scraper.Query
}

func (f *fakeScraper) Scrape(_ context.Context, q scraper.Query) ([]models.JobRecord, error) {
	f.mu.Lock()
	f.queries = append(f.queries, q)
	f.mu.Unlock()

	if f.fail[q.SearchTerm] {
		return nil, errors.New("upstream unavailable")
	}
	var out []models.JobRecord
	for _, job := range f.results[q.SearchTerm] {
		out = append(out, job.Clone())
	}
	return out, nil
}

type fakeExplainer struct {
	err error
}

func (f *fakeExplainer) ExplainMatch(_ context.Context, job models.JobRecord, _ models.UserPreferences, score int) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return job.TextOrEmpty(models.FieldTitle) + " fits", nil
}

func testConfig() *config.Config {
	return &config.Config{MaxConcurrentTerms: 2, MaxConcurrentScores: 2}
}

func job(title, description string) models.JobRecord {
	return models.JobRecord{
		models.FieldTitle:       title,
		models.FieldDescription: description,
		models.FieldLocation:    "Remote",
	}
}

func TestSplitTerms(t *testing.T) {
	assert.Equal(t, []string{"Data Scientist", "ML Engineer"}, SplitTerms(" Data Scientist, ,ML Engineer ,"))
	assert.Empty(t, SplitTerms(" , "))
}

func TestSearchPreservesTermOrder(t *testing.T) {
	fs := &fakeScraper{results: map[string][]models.JobRecord{
		"X": {job("x1", ""), job("x2", "")},
		"Y": {job("y1", "")},
		"Z": {job("z1", ""), job("z2", "")},
	}}
	svc := NewService(fs, nil, testConfig())

	out, err := svc.Search(context.Background(), Request{Terms: []string{"X", "Y", "Z"}})
	require.NoError(t, err)

	var titles []string
	for _, j := range out.Jobs {
		titles = append(titles, j.TextOrEmpty(models.FieldTitle))
		assert.NotContains(t, j, models.FieldMatchScore)
	}
	assert.Equal(t, []string{"x1", "x2", "y1", "z1", "z2"}, titles)
	assert.Equal(t, 3, out.Stats.Terms)
	assert.Len(t, fs.queries, 3)
}

func TestSearchSkipsFailedTerm(t *testing.T) {
	fs := &fakeScraper{
		results: map[string][]models.JobRecord{"Y": {job("Data Scientist", "python")}},
		fail:    map[string]bool{"X": true},
	}
	svc := NewService(fs, nil, testConfig())

	out, err := svc.Search(context.Background(), Request{
		Terms: []string{"X", "Y"},
		Preferences: func(term string) models.UserPreferences {
			return models.UserPreferences{JobRoles: term}
		},
	})
	require.NoError(t, err)

	require.Len(t, out.Jobs, 1)
	assert.Equal(t, "Data Scientist", out.Jobs[0][models.FieldTitle])
	assert.Contains(t, out.Jobs[0], models.FieldMatchScore)
	assert.Equal(t, 1, out.Stats.FailedTerms)
}

func TestSearchAllTermsFail(t *testing.T) {
	fs := &fakeScraper{fail: map[string]bool{"X": true}}
	svc := NewService(fs, nil, testConfig())

	out, err := svc.Search(context.Background(), Request{Terms: []string{"X"}})
	require.NoError(t, err)
	assert.NotNil(t, out.Jobs)
	assert.Empty(t, out.Jobs)
}

func TestSearchPassesQueryFields(t *testing.T) {
	fs := &fakeScraper{}
	svc := NewService(fs, nil, testConfig())

	_, err := svc.Search(context.Background(), Request{
		Terms:         []string{" ML Engineer "},
		Location:      "Austin, TX",
		CountryIndeed: "USA",
		ResultsWanted: 2,
		HoursOld:      120,
		Sites:         []string{"indeed"},
	})
	require.NoError(t, err)

	require.Len(t, fs.queries, 1)
	q := fs.queries[0]
	assert.Equal(t, "ML Engineer", q.SearchTerm)
	assert.Equal(t, "ML Engineer", q.GoogleSearchTerm)
	assert.Equal(t, "Austin, TX", q.Location)
	assert.Equal(t, "USA", q.CountryIndeed)
	assert.Equal(t, 2, q.ResultsWanted)
	assert.Equal(t, 120, q.HoursOld)
	assert.Equal(t, []string{"indeed"}, q.Sites)
}

func TestSearchScoresWithTermPreferences(t *testing.T) {
	fs := &fakeScraper{results: map[string][]models.JobRecord{
		"Data Scientist": {job("Data Scientist", "python machine learning")},
		"Chef":           {job("Data Scientist", "python machine learning")},
	}}
	svc := NewService(fs, nil, testConfig())

	out, err := svc.Search(context.Background(), Request{
		Terms: []string{"Data Scientist", "Chef"},
		Preferences: func(term string) models.UserPreferences {
			return models.UserPreferences{JobRoles: term}
		},
	})
	require.NoError(t, err)
	require.Len(t, out.Jobs, 2)

	matching := out.Jobs[0][models.FieldMatchScore].(int)
	other := out.Jobs[1][models.FieldMatchScore].(int)
	assert.Greater(t, matching, other)
	for _, j := range out.Jobs {
		s := j[models.FieldMatchScore].(int)
		assert.GreaterOrEqual(t, s, 0)
		assert.LessOrEqual(t, s, 100)
	}
}

func TestSearchDegradedJobGetsFallback(t *testing.T) {
	fs := &fakeScraper{results: map[string][]models.JobRecord{
		"X": {{models.FieldTitle: 42, models.FieldDescription: "python"}},
	}}
	svc := NewService(fs, nil, testConfig())

	out, err := svc.Search(context.Background(), Request{
		Terms:       []string{"X"},
		Preferences: func(string) models.UserPreferences { return models.UserPreferences{JobRoles: "X"} },
	})
	require.NoError(t, err)
	require.Len(t, out.Jobs, 1)
	assert.Equal(t, 50, out.Jobs[0][models.FieldMatchScore])
	assert.Equal(t, 1, out.Stats.Degraded)
}

func TestSearchSortByScore(t *testing.T) {
	fs := &fakeScraper{results: map[string][]models.JobRecord{
		"Data Scientist": {
			job("Pastry Chef", "bake bread"),
			job("Data Scientist", "data science python"),
		},
	}}
	svc := NewService(fs, nil, testConfig())

	out, err := svc.Search(context.Background(), Request{
		Terms:       []string{"Data Scientist"},
		SortByScore: true,
		Preferences: func(term string) models.UserPreferences {
			return models.UserPreferences{JobRoles: term}
		},
	})
	require.NoError(t, err)
	require.Len(t, out.Jobs, 2)
	assert.Equal(t, "Data Scientist", out.Jobs[0][models.FieldTitle])
}

func TestSearchExplain(t *testing.T) {
	fs := &fakeScraper{results: map[string][]models.JobRecord{"X": {job("Analyst", "sql")}}}
	prefs := func(string) models.UserPreferences { return models.UserPreferences{JobRoles: "Analyst"} }

	t.Run("attaches reason", func(t *testing.T) {
		svc := NewService(fs, &fakeExplainer{}, testConfig())
		out, err := svc.Search(context.Background(), Request{Terms: []string{"X"}, Preferences: prefs, Explain: true})
		require.NoError(t, err)
		assert.Equal(t, "Analyst fits", out.Jobs[0][models.FieldMatchReason])
		assert.Equal(t, 1, out.Stats.Explained)
	})

	t.Run("failure keeps score", func(t *testing.T) {
		svc := NewService(fs, &fakeExplainer{err: errors.New("quota")}, testConfig())
		out, err := svc.Search(context.Background(), Request{Terms: []string{"X"}, Preferences: prefs, Explain: true})
		require.NoError(t, err)
		assert.NotContains(t, out.Jobs[0], models.FieldMatchReason)
		assert.Contains(t, out.Jobs[0], models.FieldMatchScore)
	})

	t.Run("not requested", func(t *testing.T) {
		svc := NewService(fs, &fakeExplainer{}, testConfig())
		out, err := svc.Search(context.Background(), Request{Terms: []string{"X"}, Preferences: prefs})
		require.NoError(t, err)
		assert.NotContains(t, out.Jobs[0], models.FieldMatchReason)
	})
}

func TestSearchCanceledContext(t *testing.T) {
	svc := NewService(&fakeScraper{}, nil, testConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Search(ctx, Request{Terms: []string{"X"}})
	assert.ErrorIs(t, err, context.Canceled)
}
