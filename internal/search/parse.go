// internal/search/parse.go
package search

import (
	"fmt"
	"strings"

	"quickq/internal/gateway"
	"quickq/internal/models"

	"github.com/google/uuid"
)

// parseRemoteJob turns one remote job record into a domain Job. The remote
// payload has no stable id, so every parse mints a fresh one. job_level and
// job_type are free text and map through fixed keyword tables, defaulting
// to MID / FULL_TIME / HYBRID when unrecognized.
func parseRemoteJob(dto gateway.JobDTO) (models.Job, error) {
	if strings.TrimSpace(dto.Title) == "" || strings.TrimSpace(dto.Company) == "" {
		return models.Job{}, fmt.Errorf("job record missing title or company")
	}

	return models.Job{
		ID:              uuid.NewString(),
		Title:           dto.Title,
		Company:         dto.Company,
		Location:        dto.Location,
		Description:     dto.Description,
		Skills:          dto.Skills,
		ExperienceLevel: parseExperienceLevel(dto.JobLevel),
		JobType:         parseJobType(dto.JobType),
		WorkEnvironment: parseWorkEnvironment(dto.JobType),
		CompanySize:     models.CompanyMedium,
		Industry:        "Technology",
		CompanyRating:   companyRating(dto.Company),
		ApplicantCount:  0,
		PostedDate:      dto.FirstSeen,
	}, nil
}

func parseExperienceLevel(jobLevel string) models.ExperienceLevel {
	switch strings.ToLower(jobLevel) {
	case "entry", "junior":
		return models.ExperienceJunior
	case "mid":
		return models.ExperienceMid
	case "senior":
		return models.ExperienceSenior
	case "lead":
		return models.ExperienceLead
	case "principal":
		return models.ExperiencePrincipal
	default:
		return models.ExperienceMid
	}
}

func parseJobType(jobType string) models.JobType {
	switch strings.ToLower(jobType) {
	case "remote":
		return models.JobTypeRemote
	case "full-time":
		return models.JobTypeFullTime
	case "part-time":
		return models.JobTypePartTime
	case "contract":
		return models.JobTypeContract
	case "internship":
		return models.JobTypeInternship
	case "onsite":
		return models.JobTypeOnSite
	default:
		return models.JobTypeFullTime
	}
}

// parseWorkEnvironment infers the environment from the job_type field; the
// remote API has no dedicated field for it.
func parseWorkEnvironment(jobType string) models.WorkEnvironment {
	switch strings.ToLower(jobType) {
	case "remote":
		return models.WorkRemote
	case "onsite":
		return models.WorkOnSite
	default:
		return models.WorkHybrid
	}
}
