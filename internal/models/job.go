// internal/models/job.go
package models

// ExperienceLevel is the seniority bucket a job is advertised for.
type ExperienceLevel string

const (
	ExperienceJunior    ExperienceLevel = "JUNIOR"
	ExperienceMid       ExperienceLevel = "MID"
	ExperienceSenior    ExperienceLevel = "SENIOR"
	ExperienceLead      ExperienceLevel = "LEAD"
	ExperiencePrincipal ExperienceLevel = "PRINCIPAL"
)

type JobType string

const (
	JobTypeFullTime   JobType = "FULL_TIME"
	JobTypePartTime   JobType = "PART_TIME"
	JobTypeContract   JobType = "CONTRACT"
	JobTypeInternship JobType = "INTERNSHIP"
	JobTypeRemote     JobType = "REMOTE"
	JobTypeOnSite     JobType = "ON_SITE"
)

type WorkEnvironment string

const (
	WorkRemote WorkEnvironment = "REMOTE"
	WorkHybrid WorkEnvironment = "HYBRID"
	WorkOnSite WorkEnvironment = "ON_SITE"
)

type CompanySize string

const (
	CompanyStartup    CompanySize = "STARTUP"
	CompanySmall      CompanySize = "SMALL"
	CompanyMedium     CompanySize = "MEDIUM"
	CompanyLarge      CompanySize = "LARGE"
	CompanyEnterprise CompanySize = "ENTERPRISE"
)

// Job is an immutable job record. Instances are created by parsing a remote
// search response or by a cache read and are never mutated afterwards.
type Job struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Company         string          `json:"company"`
	Location        string          `json:"location"`
	Description     string          `json:"description"`
	Skills          []string        `json:"skills"`
	ExperienceLevel ExperienceLevel `json:"experienceLevel"`
	JobType         JobType         `json:"jobType"`
	WorkEnvironment WorkEnvironment `json:"workEnvironment"`
	CompanySize     CompanySize     `json:"companySize"`
	Industry        string          `json:"industry"`
	CompanyRating   float64         `json:"companyRating"` // 1.0-5.0 company reputation
	SalaryRange     string          `json:"salaryRange,omitempty"` // "<min>-<max>", empty when unknown
	ApplicantCount  int             `json:"applicantCount"`
	PostedDate      string          `json:"postedDate,omitempty"`
}
