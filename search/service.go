// Package search fans a multi-term query out to the job scraper and ranks what
// comes back against the caller's preferences.
package search

import (
	"context"
	"sort"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/myjobmatch/jobfeed/config"
	"github.com/myjobmatch/jobfeed/logger"
	"github.com/myjobmatch/jobfeed/models"
	"github.com/myjobmatch/jobfeed/scoring"
	"github.com/myjobmatch/jobfeed/scraper"
)

// Explainer produces a short reason for a computed match score.
type Explainer interface {
	ExplainMatch(ctx context.Context, job models.JobRecord, prefs models.UserPreferences, score int) (string, error)
}

// PreferencesFunc returns the preferences a term's jobs are ranked against.
type PreferencesFunc func(term string) models.UserPreferences

// Request describes one search across one or more terms.
type Request struct {
	Terms         []string
	Location      string
	CountryIndeed string
	ResultsWanted int
	HoursOld      int
	Sites         []string

	// Preferences enables ranking when set.
	Preferences PreferencesFunc
	Explain     bool
	SortByScore bool
}

// Stats summarises a search for logging.
type Stats struct {
	Terms       int `json:"terms"`
	FailedTerms int `json:"failed_terms"`
	Jobs        int `json:"jobs"`
	Degraded    int `json:"degraded"`
	Explained   int `json:"explained"`
}

// Output is the flattened result of a search, in term order.
type Output struct {
	Jobs  []models.JobRecord
	Stats Stats
}

// Service runs searches against a scraper.
type Service struct {
	scraper             scraper.Scraper
	explainer           Explainer
	maxConcurrentTerms  int
	maxConcurrentScores int
}

// NewService creates a search service. explainer may be nil.
func NewService(s scraper.Scraper, explainer Explainer, cfg *config.Config) *Service {
	return &Service{
		scraper:             s,
		explainer:           explainer,
		maxConcurrentTerms:  cfg.MaxConcurrentTerms,
		maxConcurrentScores: cfg.MaxConcurrentScores,
	}
}

// SplitTerms splits a comma-separated search string into trimmed terms.
func SplitTerms(raw string) []string {
	parts := strings.Split(raw, ",")
	terms := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			terms = append(terms, p)
		}
	}
	return terms
}

type counters struct {
	failed    atomic.Int64
	degraded  atomic.Int64
	explained atomic.Int64
}

// Search scrapes every term and flattens the results. A term whose scrape
// fails contributes no jobs; the search itself only fails when ctx is done.
func (s *Service) Search(ctx context.Context, req Request) (*Output, error) {
	log := logger.Component("search")

	terms := make([]string, 0, len(req.Terms))
	for _, t := range req.Terms {
		if t = strings.TrimSpace(t); t != "" {
			terms = append(terms, t)
		}
	}

	log.Info().Strs("terms", terms).Str("location", req.Location).
		Bool("ranked", req.Preferences != nil).Msg("Starting search")

	perTerm := make([][]models.JobRecord, len(terms))
	var c counters

	var g errgroup.Group
	g.SetLimit(s.maxConcurrentTerms)

	for i, term := range terms {
		g.Go(func() error {
			jobs, err := s.scraper.Scrape(ctx, s.query(req, term))
			if err != nil {
				log.Warn().Err(err).Str("term", term).Msg("Scrape failed, skipping term")
				c.failed.Add(1)
				return nil
			}

			if req.Preferences != nil {
				s.rank(ctx, jobs, req.Preferences(term), req.Explain, &c)
			}
			perTerm[i] = jobs
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	all := make([]models.JobRecord, 0)
	for _, jobs := range perTerm {
		all = append(all, jobs...)
	}

	if req.SortByScore && req.Preferences != nil {
		sort.SliceStable(all, func(i, j int) bool {
			return scoreOf(all[i]) > scoreOf(all[j])
		})
	}

	stats := Stats{
		Terms:       len(terms),
		FailedTerms: int(c.failed.Load()),
		Jobs:        len(all),
		Degraded:    int(c.degraded.Load()),
		Explained:   int(c.explained.Load()),
	}
	log.Info().Interface("stats", stats).Msg("Search finished")

	return &Output{Jobs: all, Stats: stats}, nil
}

func (s *Service) query(req Request, term string) scraper.Query {
	return scraper.Query{
		Sites:            req.Sites,
		SearchTerm:       term,
		GoogleSearchTerm: term,
		Location:         req.Location,
		CountryIndeed:    req.CountryIndeed,
		ResultsWanted:    req.ResultsWanted,
		HoursOld:         req.HoursOld,
	}
}

// rank attaches match_score (and match_reason when asked) to every job.
func (s *Service) rank(ctx context.Context, jobs []models.JobRecord, prefs models.UserPreferences, explain bool, c *counters) {
	log := logger.Component("search")

	var g errgroup.Group
	g.SetLimit(s.maxConcurrentScores)

	for i := range jobs {
		g.Go(func() error {
			if jobs[i] == nil {
				jobs[i] = models.JobRecord{}
			}
			job := jobs[i]

			res := scoring.Score(job, prefs)
			if res.Degraded {
				c.degraded.Add(1)
				log.Warn().Err(res.Err).Msg("Scoring degraded, using fallback score")
			}
			score := res.Value()
			job[models.FieldMatchScore] = score

			if explain && s.explainer != nil {
				reason, err := s.explainer.ExplainMatch(ctx, job, prefs, score)
				if err != nil {
					log.Warn().Err(err).Msg("Failed to explain match")
					return nil
				}
				job[models.FieldMatchReason] = reason
				c.explained.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()
}

func scoreOf(job models.JobRecord) int {
	if v, ok := job[models.FieldMatchScore].(int); ok {
		return v
	}
	return 0
}
