// internal/interview/manager.go

// Package interview drives a mock-interview session from creation to
// completion: question sequencing, answer submission, feedback acquisition
// and crash-recoverable persistence of the single in-flight session.
package interview

import (
	"context"
	"strings"
	"sync"
	"time"

	apperrors "quickq/internal/common/errors"
	"quickq/internal/common/logger"
	"quickq/internal/common/metrics"
	"quickq/internal/gateway"
	"quickq/internal/models"

	"github.com/google/uuid"
)

// failedOverallFeedback is the sentinel used when every aggregate-feedback
// attempt is exhausted. Completion still succeeds with this placeholder.
const failedOverallFeedback = "Failed to retrieve overall feedback."

// Gateway is the remote surface the manager consumes.
type Gateway interface {
	GenerateQuestions(ctx context.Context, req gateway.QuestionRequest) (*gateway.QuestionResponse, error)
	GetFeedback(ctx context.Context, req gateway.FeedbackRequest) (*gateway.FeedbackResponse, error)
}

// JobResolver resolves the job an interview targets.
type JobResolver interface {
	JobDetail(ctx context.Context, jobID string) (models.Job, bool, error)
}

// Store is the durable session storage the manager consumes.
type Store interface {
	SaveActive(ctx context.Context, interview models.Interview) error
	LoadActive(ctx context.Context) (*models.Interview, error)
	ClearActive(ctx context.Context) error
	AppendHistory(ctx context.Context, summary models.InterviewSummary) error
	History(ctx context.Context) ([]models.InterviewSummary, error)
}

// Manager is the interview session state machine. Sessions are held in an
// owned in-memory registry keyed by id with per-id serialized mutation;
// the durable store keeps exactly one slot regardless of id.
type Manager struct {
	gateway    Gateway
	jobs       JobResolver
	store      Store
	log        logger.Logger
	maxRetries int
	retryDelay time.Duration

	mu       sync.Mutex
	sessions map[string]models.Interview
	locks    map[string]*sync.Mutex
}

// NewManager creates a Manager. maxRetries and retryDelay govern the
// feedback endpoints only; zero values fall back to 3 attempts at 1 second.
func NewManager(gw Gateway, jobs JobResolver, store Store, maxRetries int, retryDelay time.Duration, log logger.Logger) *Manager {
	if maxRetries <= 0 {
		maxRetries = 3
	}
	if retryDelay <= 0 {
		retryDelay = time.Second
	}
	return &Manager{
		gateway:    gw,
		jobs:       jobs,
		store:      store,
		log:        log.WithFields(map[string]interface{}{"component": "interview"}),
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		sessions:   make(map[string]models.Interview),
		locks:      make(map[string]*sync.Mutex),
	}
}

// Start creates a new interview for jobID. Question generation is a single
// attempt: a failed or empty response fails the start. The new session
// silently overwrites whatever occupied the persisted active slot.
func (m *Manager) Start(ctx context.Context, jobID string, mode models.FeedbackMode) (models.Interview, error) {
	job, found, err := m.jobs.JobDetail(ctx, jobID)
	if err != nil {
		return models.Interview{}, apperrors.Wrap(apperrors.ErrCodeJobNotFound,
			"Failed to start interview: "+err.Error(), err)
	}
	if !found {
		return models.Interview{}, apperrors.NewJobNotFound(jobID)
	}

	plan := PlanFor(job.CompanyRating, job.ExperienceLevel)

	resp, err := m.gateway.GenerateQuestions(ctx, gateway.QuestionRequest{
		Job: gateway.JobDetails{
			Title:       job.Title,
			Description: job.Description,
			Skills:      job.Skills,
		},
	})
	if err != nil {
		return models.Interview{}, apperrors.Wrap(apperrors.ErrCodeRemoteFailure,
			"Failed to generate questions: "+err.Error(), err)
	}
	if len(resp.Questions) == 0 {
		return models.Interview{}, apperrors.New(apperrors.ErrCodeEmptyResponse,
			"No questions generated from API response")
	}

	raw := resp.Questions
	if len(raw) > plan.QuestionCount {
		raw = raw[:plan.QuestionCount]
	}

	now := models.NowMillis()
	questions := make([]models.InterviewQuestion, 0, len(raw))
	for _, q := range raw {
		questions = append(questions, models.InterviewQuestion{
			ID:        uuid.NewString(),
			Question:  strings.TrimSpace(q),
			Timestamp: now,
		})
	}

	interview := models.Interview{
		ID:              uuid.NewString(),
		JobID:           jobID,
		InterviewerName: pickInterviewer(),
		Questions:       questions,
		FeedbackMode:    mode,
		Job:             job,
	}

	m.mu.Lock()
	m.sessions[interview.ID] = interview
	m.mu.Unlock()

	m.persist(ctx, interview)
	return interview, nil
}

// NextQuestion returns the question at the session's cursor, failing once
// every question has been presented.
func (m *Manager) NextQuestion(interview models.Interview) (string, error) {
	if interview.Exhausted() {
		return "", apperrors.New(apperrors.ErrCodeValidationFailed, "No more questions available")
	}
	return interview.Questions[interview.CurrentQuestionIndex].Question, nil
}

// SubmitAnswer records answer on the matching question and advances the
// cursor. The session must already be in memory; there is deliberately no
// fallback to the durable store here. Submitting against an exhausted
// session is rejected so the cursor never leaves [0, len(questions)].
func (m *Manager) SubmitAnswer(ctx context.Context, interviewID, questionID, answer string) error {
	unlock := m.lockSession(interviewID)
	defer unlock()

	interview, ok := m.lookup(interviewID)
	if !ok {
		return apperrors.New(apperrors.ErrCodeInterviewNotFound, "Interview not found")
	}
	if interview.Exhausted() {
		return apperrors.New(apperrors.ErrCodeValidationFailed, "No more questions available")
	}

	updated := make([]models.InterviewQuestion, len(interview.Questions))
	for i, q := range interview.Questions {
		if q.ID == questionID {
			a := answer
			q.UserAnswer = &a
		}
		updated[i] = q
	}

	interview.Questions = updated
	interview.CurrentQuestionIndex++

	m.replace(interview)
	m.persist(ctx, interview)
	return nil
}

// GetFeedback fetches per-question feedback for an already answered
// question, retrying per the manager's retry policy. Exhaustion surfaces a
// failure naming the attempt count.
func (m *Manager) GetFeedback(ctx context.Context, interviewID, questionID string) (models.InterviewFeedback, error) {
	unlock := m.lockSession(interviewID)
	defer unlock()

	interview, ok := m.lookup(interviewID)
	if !ok {
		return models.InterviewFeedback{}, apperrors.New(apperrors.ErrCodeInterviewNotFound, "Interview not found")
	}

	var question *models.InterviewQuestion
	for i := range interview.Questions {
		if interview.Questions[i].ID == questionID {
			question = &interview.Questions[i]
			break
		}
	}
	if question == nil {
		return models.InterviewFeedback{}, apperrors.New(apperrors.ErrCodeQuestionNotFound, "Question not found")
	}
	if !question.Answered() {
		return models.InterviewFeedback{}, apperrors.New(apperrors.ErrCodeNoAnswer, "No answer provided")
	}

	req := gateway.FeedbackRequest{
		Job: gateway.JobDetails{
			Title:       interview.Job.Title,
			Description: interview.Job.Description,
			Skills:      interview.Job.Skills,
		},
		Questions: []gateway.FeedbackQA{
			{Question: question.Question, Answer: *question.UserAnswer},
		},
	}

	prose, ok := m.fetchFeedback(ctx, req)
	if !ok {
		return models.InterviewFeedback{}, apperrors.Newf(apperrors.ErrCodeRemoteFailure,
			"Failed to generate individual feedback after %d attempts.", m.maxRetries)
	}

	feedback := proseFeedback(prose)

	// In per-question mode the feedback sticks to the question.
	if interview.FeedbackMode == models.FeedbackAfterEachQuestion {
		updated := make([]models.InterviewQuestion, len(interview.Questions))
		for i, q := range interview.Questions {
			if q.ID == questionID {
				fb := feedback
				q.Feedback = &fb
			}
			updated[i] = q
		}
		interview.Questions = updated
		m.replace(interview)
		m.persist(ctx, interview)
	}

	return feedback, nil
}

// CompleteInterview aggregates all answered questions into one feedback
// request and closes the session. Unlike GetFeedback, exhausting the
// retries does not fail the call: the summary degrades to a placeholder
// feedback text and completion still succeeds.
func (m *Manager) CompleteInterview(ctx context.Context, interviewID string) (models.InterviewSummary, error) {
	unlock := m.lockSession(interviewID)
	defer unlock()

	interview, ok := m.lookup(interviewID)
	if !ok {
		return models.InterviewSummary{}, apperrors.New(apperrors.ErrCodeInterviewNotFound, "Interview not found")
	}

	answered := interview.AnsweredQuestions()

	qas := make([]gateway.FeedbackQA, 0, len(answered))
	for _, q := range answered {
		qas = append(qas, gateway.FeedbackQA{Question: q.Question, Answer: *q.UserAnswer})
	}

	overall := proseFeedback(failedOverallFeedback)
	req := gateway.FeedbackRequest{
		Job: gateway.JobDetails{
			Title:       interview.Job.Title,
			Description: interview.Job.Description,
			Skills:      interview.Job.Skills,
		},
		Questions: qas,
	}
	if prose, ok := m.fetchFeedback(ctx, req); ok {
		overall = proseFeedback(prose)
	}

	var duration int64
	if len(interview.Questions) > 0 {
		duration = models.NowMillis() - interview.Questions[0].Timestamp
	}

	summary := models.InterviewSummary{
		TotalQuestions:  len(answered),
		AverageScore:    0.0,
		TotalDuration:   duration,
		OverallFeedback: overall,
		CompletionDate:  models.NowMillis(),
	}

	if err := m.store.AppendHistory(ctx, summary); err != nil {
		m.log.WithError(err).Error("failed to save interview history", map[string]interface{}{
			"interviewId": interviewID,
		})
	}

	m.mu.Lock()
	delete(m.sessions, interviewID)
	m.mu.Unlock()

	if err := m.store.ClearActive(ctx); err != nil {
		m.log.WithError(err).Warn("failed to clear active interview slot", map[string]interface{}{
			"interviewId": interviewID,
		})
	}

	return summary, nil
}

// UpdateFeedbackMode switches the feedback mode on an active session.
func (m *Manager) UpdateFeedbackMode(ctx context.Context, interviewID string, mode models.FeedbackMode) error {
	unlock := m.lockSession(interviewID)
	defer unlock()

	interview, ok := m.lookup(interviewID)
	if !ok {
		return apperrors.New(apperrors.ErrCodeInterviewNotFound, "Interview not found")
	}

	interview.FeedbackMode = mode
	m.replace(interview)
	m.persist(ctx, interview)
	return nil
}

// GetActiveInterview returns the session for interviewID, recovering it
// from the durable slot after a restart. A persisted session with a
// different id is stale: the slot is cleared and nothing is returned.
// Corrupt data self-heals the same way; the caller never sees an error.
func (m *Manager) GetActiveInterview(ctx context.Context, interviewID string) (models.Interview, bool) {
	unlock := m.lockSession(interviewID)
	defer unlock()

	if interview, ok := m.lookup(interviewID); ok {
		return interview, true
	}

	stored, err := m.store.LoadActive(ctx)
	if err != nil {
		if apperrors.IsCorruption(err) {
			m.log.WithError(err).Warn("clearing corrupted active interview", nil)
			if clearErr := m.store.ClearActive(ctx); clearErr != nil {
				m.log.WithError(clearErr).Warn("failed to clear corrupted slot", nil)
			}
		} else {
			m.log.WithError(err).Warn("failed to load active interview", nil)
		}
		return models.Interview{}, false
	}
	if stored == nil {
		return models.Interview{}, false
	}

	if stored.ID != interviewID {
		m.log.Warn("active interview id mismatch, clearing stale slot", map[string]interface{}{
			"requested": interviewID,
			"stored":    stored.ID,
		})
		if err := m.store.ClearActive(ctx); err != nil {
			m.log.WithError(err).Warn("failed to clear stale slot", nil)
		}
		return models.Interview{}, false
	}

	m.replace(*stored)
	return *stored, true
}

// History returns the append-only list of completed interview summaries.
func (m *Manager) History(ctx context.Context) ([]models.InterviewSummary, error) {
	return m.store.History(ctx)
}

// fetchFeedback runs the shared retry policy: up to maxRetries attempts
// with a fixed delay between them, retrying on transport failure and on a
// successful-but-blank body. ok is false once attempts are exhausted.
func (m *Manager) fetchFeedback(ctx context.Context, req gateway.FeedbackRequest) (string, bool) {
	for attempt := 1; attempt <= m.maxRetries; attempt++ {
		if attempt > 1 {
			metrics.FeedbackRetries.Inc()
		}

		resp, err := m.gateway.GetFeedback(ctx, req)
		if err == nil {
			prose := strings.TrimSpace(resp.Feedback)
			if prose != "" {
				return prose, true
			}
			m.log.Warn("blank feedback received, retrying", map[string]interface{}{
				"attempt": attempt,
			})
		} else {
			m.log.WithError(err).Warn("feedback request failed", map[string]interface{}{
				"attempt": attempt,
			})
		}

		if attempt < m.maxRetries {
			select {
			case <-time.After(m.retryDelay):
			case <-ctx.Done():
				return "", false
			}
		}
	}
	return "", false
}

// proseFeedback wraps raw feedback prose into the structured shape. The
// backend supplies no score or structured lists, so only OverallComment is
// populated.
func proseFeedback(text string) models.InterviewFeedback {
	return models.InterviewFeedback{
		Score:               0,
		Strengths:           []string{},
		AreasForImprovement: []string{},
		Suggestions:         []string{},
		OverallComment:      strings.TrimSpace(text),
	}
}

// lockSession serializes mutations per interview id.
func (m *Manager) lockSession(interviewID string) func() {
	m.mu.Lock()
	lock, ok := m.locks[interviewID]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[interviewID] = lock
	}
	m.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

func (m *Manager) lookup(interviewID string) (models.Interview, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	interview, ok := m.sessions[interviewID]
	return interview, ok
}

func (m *Manager) replace(interview models.Interview) {
	m.mu.Lock()
	m.sessions[interview.ID] = interview
	m.mu.Unlock()
}

// persist is fire-and-hope: a failed write is logged and counted, never
// surfaced to the caller.
func (m *Manager) persist(ctx context.Context, interview models.Interview) {
	if err := m.store.SaveActive(ctx, interview); err != nil {
		metrics.PersistenceWriteFailures.Inc()
		m.log.WithError(err).Error("failed to persist active interview", map[string]interface{}{
			"interviewId": interview.ID,
		})
	}
}
