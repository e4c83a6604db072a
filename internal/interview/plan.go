// internal/interview/plan.go
package interview

import "quickq/internal/models"

const (
	baseQuestionCount = 5
	minQuestionCount  = 5
	maxQuestionCount  = 12
)

// Plan sizes an interview for a job. TechnicalQuestionRatio is carried for
// interface completeness; nothing downstream consumes it yet.
type Plan struct {
	Difficulty             models.InterviewDifficulty
	QuestionCount          int
	TechnicalQuestionRatio float64
}

// PlanFor derives the interview plan from the company's reputation rating
// and the job's experience level. Count = (base + difficulty bonus) ×
// experience multiplier, truncated and clamped to [5, 12].
func PlanFor(companyRating float64, level models.ExperienceLevel) Plan {
	var difficulty models.InterviewDifficulty
	switch {
	case companyRating >= 4.8:
		difficulty = models.DifficultyExtreme
	case companyRating >= 4.5:
		difficulty = models.DifficultyVeryHard
	case companyRating >= 4.2:
		difficulty = models.DifficultyChallenging
	case companyRating >= 3.8:
		difficulty = models.DifficultyModerate
	default:
		difficulty = models.DifficultyEasy
	}

	var count int
	var technicalRatio float64
	switch difficulty {
	case models.DifficultyExtreme:
		count, technicalRatio = baseQuestionCount+5, 0.8
	case models.DifficultyVeryHard:
		count, technicalRatio = baseQuestionCount+4, 0.7
	case models.DifficultyChallenging:
		count, technicalRatio = baseQuestionCount+3, 0.6
	case models.DifficultyModerate:
		count, technicalRatio = baseQuestionCount+2, 0.5
	default:
		count, technicalRatio = baseQuestionCount+1, 0.4
	}

	multiplier := 1.0
	switch level {
	case models.ExperiencePrincipal, models.ExperienceLead:
		multiplier = 1.3
	case models.ExperienceSenior:
		multiplier = 1.2
	case models.ExperienceJunior:
		multiplier = 0.8
	}

	scaled := int(float64(count) * multiplier)
	if scaled < minQuestionCount {
		scaled = minQuestionCount
	}
	if scaled > maxQuestionCount {
		scaled = maxQuestionCount
	}

	return Plan{
		Difficulty:             difficulty,
		QuestionCount:          scaled,
		TechnicalQuestionRatio: technicalRatio,
	}
}
