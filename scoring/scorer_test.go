package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myjobmatch/jobfeed/models"
)

func TestScoreRemoteEngineer(t *testing.T) {
	job := models.JobRecord{
		"title":       "Software Engineer",
		"description": "Build backend systems",
		"location":    "Remote",
		"job_type":    "Full-time",
		"is_remote":   true,
	}
	prefs := models.UserPreferences{
		JobRoles: "Software Engineer",
		Location: "Remote",
		WorkMode: "remote",
	}

	res := Score(job, prefs)
	require.False(t, res.Degraded, "unexpected degrade: %v", res.Err)
	assert.GreaterOrEqual(t, res.Score, 55)
	assert.LessOrEqual(t, res.Score, MaxScore)
}

func TestScoreAllEmpty(t *testing.T) {
	job := models.JobRecord{
		"title":       "",
		"description": "",
		"location":    "",
		"job_type":    "",
	}
	res := Score(job, models.UserPreferences{})
	assert.False(t, res.Degraded)
	assert.Equal(t, 0, res.Score)
}

func TestScoreMissingTitle(t *testing.T) {
	job := models.JobRecord{
		"description": "Build backend systems in Go",
		"location":    "Berlin",
		"job_type":    "fulltime",
		"is_remote":   false,
	}
	prefs := models.UserPreferences{JobRoles: "Backend Engineer", Location: "Berlin"}

	var res Result
	require.NotPanics(t, func() { res = Score(job, prefs) })
	assert.False(t, res.Degraded)
	assert.GreaterOrEqual(t, res.Value(), 0)
	assert.LessOrEqual(t, res.Value(), MaxScore)
}

func TestScoreDegradedInputs(t *testing.T) {
	tests := []struct {
		name string
		job  models.JobRecord
	}{
		{"nil record", nil},
		{"numeric title", models.JobRecord{"title": 42.0}},
		{"list description", models.JobRecord{"description": []interface{}{"a", "b"}}},
		{"bool job type", models.JobRecord{"job_type": true}},
	}
	prefs := models.UserPreferences{JobRoles: "Engineer", WorkMode: "remote"}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Score(tt.job, prefs)
			assert.True(t, res.Degraded)
			assert.Error(t, res.Err)
			assert.Equal(t, FallbackScore, res.Value())
			assert.Equal(t, FallbackScore, MatchScore(tt.job, prefs))
		})
	}
}

func TestScoreNullAndNaNReadAsEmpty(t *testing.T) {
	job := models.JobRecord{
		"title":       nil,
		"description": math.NaN(),
		"location":    "",
		"job_type":    nil,
		"is_remote":   math.NaN(),
	}
	res := Score(job, models.UserPreferences{JobRoles: "Engineer"})
	assert.False(t, res.Degraded)
	assert.Equal(t, 0, res.Score)
}

func TestScoreBonuses(t *testing.T) {
	tests := []struct {
		name  string
		job   models.JobRecord
		prefs models.UserPreferences
		want  int
	}{
		{
			name:  "job type via description",
			job:   models.JobRecord{"description": "This is a full-time role"},
			prefs: models.UserPreferences{JobType: "full-time"},
			want:  jobTypeBonus,
		},
		{
			name:  "education and job type",
			job:   models.JobRecord{"description": "Full-time role requiring a bachelor degree"},
			prefs: models.UserPreferences{JobType: "full-time", EducationLevel: "Bachelor"},
			want:  jobTypeBonus + educationBonus,
		},
		{
			name:  "remote flag only",
			job:   models.JobRecord{"is_remote": true},
			prefs: models.UserPreferences{WorkMode: "Remote"},
			want:  remoteBonus,
		},
		{
			name:  "remote flag as string",
			job:   models.JobRecord{"is_remote": "True"},
			prefs: models.UserPreferences{WorkMode: "REMOTE"},
			want:  remoteBonus,
		},
		{
			name:  "hybrid is not remote",
			job:   models.JobRecord{"is_remote": true},
			prefs: models.UserPreferences{WorkMode: "hybrid"},
			want:  0,
		},
		{
			name:  "location similarity saturates",
			job:   models.JobRecord{"location": "Remote"},
			prefs: models.UserPreferences{Location: "Remote"},
			want:  MaxScore,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Score(tt.job, tt.prefs)
			require.False(t, res.Degraded, "unexpected degrade: %v", res.Err)
			assert.Equal(t, tt.want, res.Score)
		})
	}
}

func TestScoreRemoteMonotonic(t *testing.T) {
	prefs := models.UserPreferences{JobRoles: "Data Analyst", WorkMode: "remote", Location: "Austin, TX"}
	base := models.JobRecord{
		"title":       "Junior Data Analyst",
		"description": "SQL dashboards and reporting for the sales org",
		"location":    "Austin, TX",
		"job_type":    "contract",
	}

	remote := base.Clone()
	remote["is_remote"] = true
	onsite := base.Clone()
	onsite["is_remote"] = false

	assert.GreaterOrEqual(t, MatchScore(remote, prefs), MatchScore(onsite, prefs))
}

func TestScoreIsPure(t *testing.T) {
	job := models.JobRecord{
		"title":       "Staff Platform Engineer",
		"description": "Kubernetes, Terraform, on-call",
		"location":    "New York, NY",
		"job_type":    "fulltime",
		"is_remote":   false,
		"company":     "Acme",
	}
	prefs := models.UserPreferences{JobRoles: "Platform Engineer", JobLevel: "Staff", Location: "New York"}
	snapshot := job.Clone()

	first := Score(job, prefs)
	second := Score(job, prefs)

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, job)
}

func TestScoreAlwaysInRange(t *testing.T) {
	jobs := []models.JobRecord{
		{},
		{"title": "Software Engineer"},
		{"title": "Software Engineer", "description": "software engineer software engineer", "location": "Remote", "job_type": "Senior", "is_remote": true},
		{"title": "Nurse", "description": "Night shifts", "location": "Ohio", "job_type": "parttime"},
		{"title": "x", "description": "y", "location": "z", "job_type": "w"},
	}
	prefsList := []models.UserPreferences{
		{},
		{JobRoles: "Software Engineer", Location: "Remote", WorkMode: "remote", JobLevel: "Senior", EducationLevel: "software", JobType: "engineer"},
		{YearsOfExperience: "10", PersonalityTraits: "curious", CompanySize: "large"},
		{JobRoles: "a", Location: "b"},
	}

	for _, job := range jobs {
		for _, prefs := range prefsList {
			v := MatchScore(job, prefs)
			assert.GreaterOrEqual(t, v, 0)
			assert.LessOrEqual(t, v, MaxScore)
		}
	}
}
