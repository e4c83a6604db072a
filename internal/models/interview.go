// internal/models/interview.go
package models

import "time"

// FeedbackMode controls when interview feedback is fetched.
type FeedbackMode string

const (
	FeedbackAfterEachQuestion FeedbackMode = "AFTER_EACH_QUESTION"
	FeedbackEndOfInterview    FeedbackMode = "END_OF_INTERVIEW"
)

// InterviewDifficulty is derived from the company's reputation rating.
type InterviewDifficulty string

const (
	DifficultyEasy        InterviewDifficulty = "EASY"
	DifficultyModerate    InterviewDifficulty = "MODERATE"
	DifficultyChallenging InterviewDifficulty = "CHALLENGING"
	DifficultyVeryHard    InterviewDifficulty = "VERY_HARD"
	DifficultyExtreme     InterviewDifficulty = "EXTREME"
)

// InterviewQuestion is one generated question. UserAnswer is nil until the
// candidate submits an answer; Feedback is only populated in
// AFTER_EACH_QUESTION mode.
type InterviewQuestion struct {
	ID         string             `json:"id"`
	Question   string             `json:"question"`
	UserAnswer *string            `json:"userAnswer,omitempty"`
	Feedback   *InterviewFeedback `json:"feedback,omitempty"`
	Timestamp  int64              `json:"timestamp"` // unix millis at creation
}

// Answered reports whether the candidate has answered this question.
func (q InterviewQuestion) Answered() bool {
	return q.UserAnswer != nil
}

// InterviewFeedback carries the remote API's feedback for one or more
// answers. The backend returns unstructured prose only, so OverallComment
// is the single populated field: Score stays 0 and the lists stay empty.
// Callers must not expect the documented endpoint to ever fill them.
type InterviewFeedback struct {
	Score               int      `json:"score"`
	Strengths           []string `json:"strengths"`
	AreasForImprovement []string `json:"areasForImprovement"`
	Suggestions         []string `json:"suggestions"`
	OverallComment      string   `json:"overallComment"`
}

// Interview is the session aggregate, from creation to completion.
// Invariant: 0 <= CurrentQuestionIndex <= len(Questions); the session is
// eligible for completion once the index reaches the question count.
type Interview struct {
	ID                   string              `json:"id"`
	JobID                string              `json:"jobId"`
	InterviewerName      string              `json:"interviewerName"`
	Questions            []InterviewQuestion `json:"questions"`
	CurrentQuestionIndex int                 `json:"currentQuestionIndex"`
	IsCompleted          bool                `json:"isCompleted"`
	FeedbackMode         FeedbackMode        `json:"feedbackMode"`
	Job                  Job                 `json:"job"`
}

// AnsweredQuestions returns the questions that have an answer, in order.
func (i Interview) AnsweredQuestions() []InterviewQuestion {
	answered := make([]InterviewQuestion, 0, len(i.Questions))
	for _, q := range i.Questions {
		if q.Answered() {
			answered = append(answered, q)
		}
	}
	return answered
}

// Exhausted reports whether every question has been presented.
func (i Interview) Exhausted() bool {
	return i.CurrentQuestionIndex >= len(i.Questions)
}

// InterviewSummary is the record appended to history when an interview
// completes. AverageScore is always 0.0: the backend supplies no score.
type InterviewSummary struct {
	TotalQuestions  int               `json:"totalQuestions"`
	AverageScore    float64           `json:"averageScore"`
	TotalDuration   int64             `json:"totalDuration"` // millis from first question to completion
	OverallFeedback InterviewFeedback `json:"overallFeedback"`
	CompletionDate  int64             `json:"completionDate"` // unix millis
}

// NowMillis is the timestamp convention used across interview records.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}
