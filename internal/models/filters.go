// internal/models/filters.go
package models

import (
	"strconv"
	"strings"
)

// SalaryBand is one selectable salary filter. MaxSalary <= 0 means the band
// is open-ended upwards.
type SalaryBand struct {
	MinSalary int `json:"minSalary"`
	MaxSalary int `json:"maxSalary"`
}

// Unbounded reports whether the band has no upper limit.
func (b SalaryBand) Unbounded() bool {
	return b.MaxSalary <= 0
}

// JobFilters narrows a job search. Every field is a set; an empty set means
// "no constraint" for that category.
type JobFilters struct {
	ExperienceLevels []ExperienceLevel `json:"experienceLevels,omitempty"`
	JobTypes         []JobType         `json:"jobTypes,omitempty"`
	WorkEnvironments []WorkEnvironment `json:"workEnvironments,omitempty"`
	CompanySizes     []CompanySize     `json:"companySizes,omitempty"`
	Locations        []string          `json:"locations,omitempty"`
	SalaryBands      []SalaryBand      `json:"salaryBands,omitempty"`
	Industries       []string          `json:"industries,omitempty"`
	Skills           []string          `json:"skills,omitempty"`
}

// IsEmpty reports whether no category constrains the search.
func (f JobFilters) IsEmpty() bool {
	return len(f.ExperienceLevels) == 0 &&
		len(f.JobTypes) == 0 &&
		len(f.WorkEnvironments) == 0 &&
		len(f.CompanySizes) == 0 &&
		len(f.Locations) == 0 &&
		len(f.SalaryBands) == 0 &&
		len(f.Industries) == 0 &&
		len(f.Skills) == 0
}

// Matches applies the filter set to one job: AND across categories, OR
// within a category. Enum categories match by exact membership; locations,
// industries and skills by case-insensitive substring; salary by band
// containment.
func (f JobFilters) Matches(job Job) bool {
	if len(f.ExperienceLevels) > 0 && !containsLevel(f.ExperienceLevels, job.ExperienceLevel) {
		return false
	}
	if len(f.JobTypes) > 0 && !containsJobType(f.JobTypes, job.JobType) {
		return false
	}
	if len(f.WorkEnvironments) > 0 && !containsEnvironment(f.WorkEnvironments, job.WorkEnvironment) {
		return false
	}
	if len(f.CompanySizes) > 0 && !containsSize(f.CompanySizes, job.CompanySize) {
		return false
	}
	if len(f.Locations) > 0 && !anySubstring(f.Locations, job.Location) {
		return false
	}
	if len(f.Industries) > 0 && !anySubstring(f.Industries, job.Industry) {
		return false
	}
	if len(f.Skills) > 0 && !matchesSkills(f.Skills, job.Skills) {
		return false
	}
	if len(f.SalaryBands) > 0 && !matchesSalary(f.SalaryBands, job.SalaryRange) {
		return false
	}
	return true
}

func containsLevel(set []ExperienceLevel, v ExperienceLevel) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsJobType(set []JobType, v JobType) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsEnvironment(set []WorkEnvironment, v WorkEnvironment) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsSize(set []CompanySize, v CompanySize) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func anySubstring(candidates []string, value string) bool {
	lower := strings.ToLower(value)
	for _, c := range candidates {
		if strings.Contains(lower, strings.ToLower(c)) {
			return true
		}
	}
	return false
}

// matchesSkills passes when any job skill contains any filter skill,
// case-insensitively.
func matchesSkills(filterSkills, jobSkills []string) bool {
	for _, fs := range filterSkills {
		fsLower := strings.ToLower(fs)
		for _, js := range jobSkills {
			if strings.Contains(strings.ToLower(js), fsLower) {
				return true
			}
		}
	}
	return false
}

// matchesSalary passes when the job's "min-max" salary string fits inside
// any selected band. Jobs without a salary string never match a salary
// filter.
func matchesSalary(bands []SalaryBand, salaryRange string) bool {
	if salaryRange == "" {
		return false
	}
	jobMin, jobMax, ok := ParseSalaryRange(salaryRange)
	if !ok {
		return false
	}
	for _, band := range bands {
		if jobMin >= band.MinSalary && (band.Unbounded() || jobMax <= band.MaxSalary) {
			return true
		}
	}
	return false
}

// ParseSalaryRange extracts the numeric bounds from a "<min>-<max>" salary
// string, ignoring currency symbols and separators. Missing or non-numeric
// parts parse as 0.
func ParseSalaryRange(s string) (min, max int, ok bool) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	min = digitsToInt(parts[0])
	max = digitsToInt(parts[1])
	return min, max, true
}

func digitsToInt(s string) int {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	n, _ := strconv.Atoi(b.String())
	return n
}
