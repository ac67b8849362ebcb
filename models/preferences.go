package models

import "strings"

// UserPreferences holds what a user told us about the job they want.
// Every field is optional free text.
type UserPreferences struct {
	JobRoles             string `json:"job_roles" firestore:"jobRoles" form:"job_roles" example:"Software Engineer"`
	Location             string `json:"location" firestore:"location" form:"location" example:"Remote"`
	YearsOfExperience    string `json:"years_of_experience" firestore:"yearsOfExperience" form:"years_of_experience" example:"5"`
	JobLevel             string `json:"job_level" firestore:"jobLevel" form:"job_level" example:"Senior"`
	WorkMode             string `json:"work_mode" firestore:"workMode" form:"work_mode" example:"remote"`
	EducationLevel       string `json:"education_level" firestore:"educationLevel" form:"education_level" example:"Bachelor"`
	CompanySize          string `json:"company_size" firestore:"companySize" form:"company_size" example:"startup"`
	IndustriesOfInterest string `json:"industries_of_interest" firestore:"industriesOfInterest" form:"industries_of_interest" example:"fintech"`
	PersonalityTraits    string `json:"personality_traits" firestore:"personalityTraits" form:"personality_traits" example:"curious"`
	JobType              string `json:"job_type" firestore:"jobType" form:"job_type" example:"full-time"`
}

// UserText is the single document the scorer compares against job fields.
func (p UserPreferences) UserText() string {
	return strings.Join([]string{
		p.JobRoles,
		p.Location,
		p.YearsOfExperience,
		p.JobLevel,
		p.WorkMode,
	}, " ")
}

// WithRole returns a copy with JobRoles replaced by a single search term.
func (p UserPreferences) WithRole(role string) UserPreferences {
	p.JobRoles = role
	return p
}

// MergeMissing fills blank fields from saved. Values already set win.
func (p *UserPreferences) MergeMissing(saved UserPreferences) {
	fill := func(dst *string, src string) {
		if strings.TrimSpace(*dst) == "" {
			*dst = src
		}
	}
	fill(&p.JobRoles, saved.JobRoles)
	fill(&p.Location, saved.Location)
	fill(&p.YearsOfExperience, saved.YearsOfExperience)
	fill(&p.JobLevel, saved.JobLevel)
	fill(&p.WorkMode, saved.WorkMode)
	fill(&p.EducationLevel, saved.EducationLevel)
	fill(&p.CompanySize, saved.CompanySize)
	fill(&p.IndustriesOfInterest, saved.IndustriesOfInterest)
	fill(&p.PersonalityTraits, saved.PersonalityTraits)
	fill(&p.JobType, saved.JobType)
}

// IsEmpty reports whether no preference was given.
func (p UserPreferences) IsEmpty() bool {
	return p == UserPreferences{}
}
