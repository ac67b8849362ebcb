// Package scoring ranks a scraped job posting against a user's preferences.
package scoring

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/myjobmatch/jobfeed/models"
)

const (
	// FallbackScore is reported for postings that could not be scored.
	FallbackScore = 50
	// MaxScore caps every match score.
	MaxScore = 100

	similarityWeight = 500.0

	roleBonus      = 20
	educationBonus = 20
	jobTypeBonus   = 15
	locationBonus  = 20
	remoteBonus    = 15

	remoteWorkMode = "remote"
)

// ErrNilJob is reported when there is no posting to score.
var ErrNilJob = errors.New("job record is nil")

// Result is the outcome of scoring one posting. A degraded result carries the
// reason in Err and resolves to FallbackScore.
type Result struct {
	Score    int
	Degraded bool
	Err      error
}

// Value is the score to report to clients.
func (r Result) Value() int {
	if r.Degraded {
		return FallbackScore
	}
	return r.Score
}

func degraded(err error) Result {
	return Result{Score: FallbackScore, Degraded: true, Err: err}
}

// jobText holds the lower-cased text fields of a posting.
type jobText struct {
	title       string
	description string
	location    string
	jobType     string
}

func (t jobText) docs() []string {
	return []string{t.title, t.description, t.location, t.jobType}
}

func (t jobText) empty() bool {
	return t.title == "" && t.description == "" && t.location == "" && t.jobType == ""
}

// MatchScore scores job against prefs, resolving degraded results.
func MatchScore(job models.JobRecord, prefs models.UserPreferences) int {
	return Score(job, prefs).Value()
}

// Score computes how well job fits prefs on a 0-100 scale.
//
// Text similarity between the preference text and each job field makes up the
// bulk of the score; fuzzy matches on role, education, job type and location
// and a remote bonus are added on top before clamping.
func Score(job models.JobRecord, prefs models.UserPreferences) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = degraded(fmt.Errorf("scoring panicked: %v", r))
		}
	}()

	if job == nil {
		return degraded(ErrNilJob)
	}

	text, err := extractText(job)
	if err != nil {
		return degraded(err)
	}

	score := 0.0

	userText := strings.ToLower(prefs.UserText())
	if strings.TrimSpace(userText) != "" && !text.empty() {
		sim := meanSimilarity(text, userText)
		if math.IsNaN(sim) || math.IsInf(sim, 0) {
			return degraded(fmt.Errorf("text similarity is not finite: %v", sim))
		}
		score += sim * similarityWeight
	}

	if FuzzyMatch(text.title, prefs.JobRoles, FuzzyThreshold) {
		score += roleBonus
	}
	if FuzzyMatch(text.description, prefs.EducationLevel, FuzzyThreshold) {
		score += educationBonus
	}
	if FuzzyMatch(text.jobType, prefs.JobLevel, FuzzyThreshold) ||
		FuzzyMatch(text.description, prefs.JobType, FuzzyThreshold) {
		score += jobTypeBonus
	}
	if FuzzyMatch(text.location, prefs.Location, FuzzyThreshold) {
		score += locationBonus
	}

	if job.IsRemote() && strings.EqualFold(strings.TrimSpace(prefs.WorkMode), remoteWorkMode) {
		score += remoteBonus
	}

	return Result{Score: clamp(int(math.RoundToEven(score)))}
}

func extractText(job models.JobRecord) (jobText, error) {
	get := func(field string) (string, error) {
		v, ok := job.Text(field)
		if !ok {
			return "", fmt.Errorf("field %q holds %T, want text", field, job[field])
		}
		return strings.ToLower(v), nil
	}

	var (
		t   jobText
		err error
	)
	if t.title, err = get(models.FieldTitle); err != nil {
		return t, err
	}
	if t.description, err = get(models.FieldDescription); err != nil {
		return t, err
	}
	if t.location, err = get(models.FieldLocation); err != nil {
		return t, err
	}
	if t.jobType, err = get(models.FieldJobType); err != nil {
		return t, err
	}
	return t, nil
}

// meanSimilarity averages the cosine similarity between the user text and
// each of the four job fields, vectorised together as one corpus.
func meanSimilarity(text jobText, userText string) float64 {
	docs := append(text.docs(), userText)
	vectors := Vectorize(docs)
	user := vectors[len(vectors)-1]

	var sum float64
	fields := vectors[:len(vectors)-1]
	for _, v := range fields {
		sum += Cosine(user, v)
	}
	return sum / float64(len(fields))
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}
