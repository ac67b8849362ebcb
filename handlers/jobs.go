package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/myjobmatch/jobfeed/auth"
	"github.com/myjobmatch/jobfeed/config"
	"github.com/myjobmatch/jobfeed/logger"
	"github.com/myjobmatch/jobfeed/models"
	"github.com/myjobmatch/jobfeed/search"
)

// Plain search defaults
const (
	defaultSearchTerm    = "software engineer"
	defaultLocation      = "San Francisco, CA"
	defaultCountry       = "USA"
	defaultResultsWanted = 2
	defaultHoursOld      = 72
)

// Recommendation search is fixed to these values
const (
	recommendResultsWanted = 2
	recommendHoursOld      = 120
)

const (
	archiveKind    = "recommendations"
	archiveTimeout = 30 * time.Second
)

// JobSearcher runs a multi-term job search
type JobSearcher interface {
	Search(ctx context.Context, req search.Request) (*search.Output, error)
}

// SavedPreferences loads the preferences stored on an account
type SavedPreferences interface {
	GetPreferences(ctx context.Context, userID string) (models.UserPreferences, error)
}

// Archiver stores a copy of a response
type Archiver interface {
	Archive(ctx context.Context, kind string, payload interface{}) (string, error)
}

// JobsHandler serves the plain and recommendation search endpoints
type JobsHandler struct {
	searcher JobSearcher
	saved    SavedPreferences
	archiver Archiver
	cfg      *config.Config
}

// NewJobsHandler creates a new jobs handler. saved and archiver may be nil.
func NewJobsHandler(searcher JobSearcher, saved SavedPreferences, archiver Archiver, cfg *config.Config) *JobsHandler {
	return &JobsHandler{
		searcher: searcher,
		saved:    saved,
		archiver: archiver,
		cfg:      cfg,
	}
}

// ScrapeJobs handles the plain job search
// @Summary Search jobs
// @Description Scrape job boards for every comma-separated search term and return the concatenated postings.
// @Tags Jobs
// @Produce json
// @Param search_term query string false "Comma-separated search terms" default(software engineer)
// @Param location query string false "Location" default(San Francisco, CA)
// @Param results_wanted query int false "Results per site and term" default(2)
// @Param hours_old query int false "Maximum posting age in hours" default(72)
// @Param country_indeed query string false "Indeed country" default(USA)
// @Success 200 {object} models.JobsResponse "Job postings"
// @Failure 400 {object} models.JobsErrorResponse "Invalid parameter"
// @Failure 500 {object} models.JobsErrorResponse "Search failed"
// @Router /scrape_jobs [get]
// @Router /api/jobs/search [get]
func (h *JobsHandler) ScrapeJobs(c *gin.Context) {
	resultsWanted, err := intQuery(c, "results_wanted", defaultResultsWanted)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorEnvelope(err, false, false, 0))
		return
	}
	hoursOld, err := intQuery(c, "hours_old", defaultHoursOld)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorEnvelope(err, false, false, 0))
		return
	}

	terms := search.SplitTerms(c.DefaultQuery("search_term", defaultSearchTerm))
	if len(terms) == 0 {
		terms = []string{defaultSearchTerm}
	}

	out, err := h.searcher.Search(c.Request.Context(), search.Request{
		Terms:         terms,
		Location:      c.DefaultQuery("location", defaultLocation),
		CountryIndeed: c.DefaultQuery("country_indeed", defaultCountry),
		ResultsWanted: resultsWanted,
		HoursOld:      hoursOld,
		Sites:         h.cfg.PlainSites,
	})
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, errorEnvelope(err, false, h.cfg.Debug, 0))
		return
	}

	c.JSON(http.StatusOK, models.JobsResponse{
		Status:  models.StatusSuccess,
		Results: len(out.Jobs),
		Jobs:    out.Jobs,
	})
}

// RecommendJobs handles the preference-ranked job search
// @Summary Recommend jobs
// @Description Search every comma-separated job role and attach a 0-100 match_score to each posting. Signed-in users' saved preferences fill any parameter left blank.
// @Tags Jobs
// @Produce json
// @Security BearerAuth
// @Param job_roles query string false "Comma-separated job roles"
// @Param search_term query string false "Used when job_roles is empty"
// @Param location query string false "Preferred location"
// @Param years_of_experience query string false "Years of experience"
// @Param job_level query string false "Job level"
// @Param work_mode query string false "Work mode, e.g. remote"
// @Param education_level query string false "Education level"
// @Param company_size query string false "Company size"
// @Param industries_of_interest query string false "Industries of interest"
// @Param personality_traits query string false "Personality traits"
// @Param job_type query string false "Job type, e.g. full-time"
// @Param explain query bool false "Attach an AI-written match_reason"
// @Param sort query string false "match_score to order best first"
// @Success 200 {object} models.JobsResponse "Ranked job postings"
// @Failure 500 {object} models.JobsErrorResponse "Search failed"
// @Router /recommend_jobs [get]
// @Router /api/jobs/recommend [get]
func (h *JobsHandler) RecommendJobs(c *gin.Context) {
	ctx := c.Request.Context()
	log := logger.Component("jobs")

	var prefs models.UserPreferences
	if err := c.ShouldBindQuery(&prefs); err != nil {
		h.recommendFailed(c, err)
		return
	}

	if claims := auth.GetAuthClaims(c); claims != nil && h.saved != nil {
		saved, err := h.saved.GetPreferences(ctx, claims.UserID)
		if err != nil {
			log.Warn().Err(err).Str("user", claims.UserID).Msg("Could not load saved preferences")
		} else {
			prefs.MergeMissing(saved)
		}
	}

	roles := prefs.JobRoles
	if strings.TrimSpace(roles) == "" {
		roles = c.Query("search_term")
	}
	terms := search.SplitTerms(roles)
	if len(terms) == 0 {
		terms = []string{defaultSearchTerm}
	}

	location := prefs.Location
	if strings.TrimSpace(location) == "" {
		location = defaultLocation
	}

	explain, _ := strconv.ParseBool(c.Query("explain"))

	out, err := h.searcher.Search(ctx, search.Request{
		Terms:         terms,
		Location:      location,
		CountryIndeed: defaultCountry,
		ResultsWanted: recommendResultsWanted,
		HoursOld:      recommendHoursOld,
		Sites:         h.cfg.RecommendSites,
		Preferences:   prefs.WithRole,
		Explain:       explain,
		SortByScore:   c.Query("sort") == models.FieldMatchScore,
	})
	if err != nil {
		h.recommendFailed(c, err)
		return
	}

	resp := models.JobsResponse{
		Status:  models.StatusSuccess,
		Results: len(out.Jobs),
		Jobs:    out.Jobs,
	}
	h.archive(ctx, resp)

	c.JSON(http.StatusOK, resp)
}

func (h *JobsHandler) recommendFailed(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, errorEnvelope(err, true, h.cfg.Debug, 1))
}

// archive stores resp in the background. Failures are only logged.
func (h *JobsHandler) archive(ctx context.Context, resp models.JobsResponse) {
	if h.archiver == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), archiveTimeout)
	go func() {
		defer cancel()
		log := logger.Component("archive")

		uri, err := h.archiver.Archive(ctx, archiveKind, resp)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to archive recommendations")
			return
		}
		log.Debug().Str("uri", uri).Int("jobs", resp.Results).Msg("Archived recommendations")
	}()
}

// intQuery reads a non-negative integer parameter.
func intQuery(c *gin.Context, key string, def int) (int, error) {
	raw, ok := c.GetQuery(key)
	if !ok {
		return def, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if v < 0 {
		return 0, errors.New("invalid " + key + ": must not be negative")
	}
	return v, nil
}
