// internal/interview/plan_test.go
package interview

import (
	"testing"

	"quickq/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestPlanFor(t *testing.T) {
	tests := []struct {
		name           string
		rating         float64
		level          models.ExperienceLevel
		wantDifficulty models.InterviewDifficulty
		wantCount      int
	}{
		{
			// 4.9 -> EXTREME, base 10, senior x1.2 = 12
			name:           "top company senior hits the cap",
			rating:         4.9,
			level:          models.ExperienceSenior,
			wantDifficulty: models.DifficultyExtreme,
			wantCount:      12,
		},
		{
			// 5.0 -> EXTREME, base 10, principal x1.3 = 13 -> clamp 12
			name:           "principal at extreme clamps to 12",
			rating:         5.0,
			level:          models.ExperiencePrincipal,
			wantDifficulty: models.DifficultyExtreme,
			wantCount:      12,
		},
		{
			// 3.5 -> EASY, base 6, junior x0.8 = 4.8 -> 4 -> clamp 5
			name:           "junior at easy clamps up to 5",
			rating:         3.5,
			level:          models.ExperienceJunior,
			wantDifficulty: models.DifficultyEasy,
			wantCount:      5,
		},
		{
			// 4.0 -> MODERATE, base 7, mid x1.0 = 7
			name:           "mid at moderate",
			rating:         4.0,
			level:          models.ExperienceMid,
			wantDifficulty: models.DifficultyModerate,
			wantCount:      7,
		},
		{
			// 4.5 -> VERY_HARD, base 9, lead x1.3 = 11.7 -> 11
			name:           "lead at very hard truncates",
			rating:         4.5,
			level:          models.ExperienceLead,
			wantDifficulty: models.DifficultyVeryHard,
			wantCount:      11,
		},
		{
			// 4.2 -> CHALLENGING, base 8, senior x1.2 = 9.6 -> 9
			name:           "senior at challenging",
			rating:         4.2,
			level:          models.ExperienceSenior,
			wantDifficulty: models.DifficultyChallenging,
			wantCount:      9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := PlanFor(tt.rating, tt.level)
			assert.Equal(t, tt.wantDifficulty, plan.Difficulty)
			assert.Equal(t, tt.wantCount, plan.QuestionCount)
			assert.GreaterOrEqual(t, plan.QuestionCount, minQuestionCount)
			assert.LessOrEqual(t, plan.QuestionCount, maxQuestionCount)
			assert.Greater(t, plan.TechnicalQuestionRatio, 0.0)
		})
	}
}
