// test/e2e/e2e_test.go

// Package e2e runs the whole job-search-to-interview flow against real
// wiring: the gateway talks to a scripted HTTP backend, the job cache to a
// real Postgres (QUICKQ_E2E_POSTGRES_DSN, skipped when unset) and the
// session store to an embedded Redis.
package e2e

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpclient "quickq/internal/common/http"
	"quickq/internal/common/logger"
	"quickq/internal/gateway"
	"quickq/internal/interview"
	"quickq/internal/jobcache"
	"quickq/internal/models"
	"quickq/internal/search"
	"quickq/internal/sessionstore"
)

// fakeBackend is a scripted stand-in for the remote AI API.
type fakeBackend struct {
	jobs      []gateway.JobDTO
	questions []string
	feedback  string
}

func (f *fakeBackend) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/jobs":
			json.NewEncoder(w).Encode(gateway.JobSearchResponse{
				Success: true, Jobs: f.jobs, Total: len(f.jobs),
			})
		case "/questions":
			json.NewEncoder(w).Encode(gateway.QuestionResponse{
				Success: true, Questions: f.questions, Total: len(f.questions),
			})
		case "/feedback":
			json.NewEncoder(w).Encode(gateway.FeedbackResponse{
				Success: true, Feedback: f.feedback,
			})
		default:
			http.NotFound(w, r)
		}
	}
}

type stack struct {
	search  *search.Orchestrator
	manager *interview.Manager
	store   *sessionstore.Store
}

func newStack(t *testing.T, backend *fakeBackend) *stack {
	t.Helper()

	dsn := os.Getenv("QUICKQ_E2E_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("QUICKQ_E2E_POSTGRES_DSN not set")
	}
	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	log := logger.NewTestLogger(t)

	cache := jobcache.NewStore(db, log)
	require.NoError(t, cache.EnsureSchema(context.Background()))
	require.NoError(t, cache.Clear(context.Background()))

	gw := gateway.NewClient(srv.URL, httpclient.NewClient(10*time.Second))
	store := sessionstore.NewStore(rdb, log)
	orchestrator := search.NewOrchestrator(gw, cache, 30*time.Second, log)
	manager := interview.NewManager(gw, orchestrator, store, 3, 50*time.Millisecond, log)

	return &stack{search: orchestrator, manager: manager, store: store}
}

func TestFullFlow(t *testing.T) {
	backend := &fakeBackend{
		jobs: []gateway.JobDTO{
			{
				Title: "Senior Backend Engineer", Company: "Stripe", Location: "Remote",
				Description: "Payments infrastructure", Skills: []string{"Go", "Postgres"},
				JobType: "remote", JobLevel: "senior",
			},
			{
				Title: "iOS Engineer", Company: "Spotify", Location: "Stockholm",
				Description: "Mobile client work", Skills: []string{"Swift"},
				JobType: "full-time", JobLevel: "mid",
			},
		},
		questions: []string{
			"Tell me about a system you designed.",
			"How do you approach debugging under pressure?",
		},
		feedback: "Clear reasoning throughout; quantify your impact more.",
	}
	s := newStack(t, backend)
	ctx := context.Background()

	// First search misses the cache and hits the backend.
	jobs, err := s.search.Search(ctx, "backend", models.JobFilters{})
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	// The same search now serves from the Postgres cache; filtering is
	// local, so a senior-only filter narrows the cached set.
	filtered, err := s.search.Search(ctx, "Engineer", models.JobFilters{
		ExperienceLevels: []models.ExperienceLevel{models.ExperienceSenior},
	})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Stripe", filtered[0].Company)

	// Detail lookup resolves through the cache.
	job, found, err := s.search.JobDetail(ctx, filtered[0].ID)
	require.NoError(t, err)
	require.True(t, found)

	// A full interview against that job.
	iv, err := s.manager.Start(ctx, job.ID, models.FeedbackEndOfInterview)
	require.NoError(t, err)
	require.Len(t, iv.Questions, 2)

	for _, q := range iv.Questions {
		next, err := s.manager.NextQuestion(mustActive(t, s, iv.ID))
		require.NoError(t, err)
		assert.Equal(t, q.Question, next)
		require.NoError(t, s.manager.SubmitAnswer(ctx, iv.ID, q.ID, "I would start from the requirements."))
	}

	// Per-question feedback on the first answer.
	fb, err := s.manager.GetFeedback(ctx, iv.ID, iv.Questions[0].ID)
	require.NoError(t, err)
	assert.Equal(t, backend.feedback, fb.OverallComment)

	// Completion closes the session and records history.
	summary, err := s.manager.CompleteInterview(ctx, iv.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalQuestions)
	assert.Equal(t, backend.feedback, summary.OverallFeedback.OverallComment)

	_, ok := s.manager.GetActiveInterview(ctx, iv.ID)
	assert.False(t, ok)

	history, err := s.manager.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)

	active, err := s.store.LoadActive(ctx)
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestInterviewSurvivesRestart(t *testing.T) {
	backend := &fakeBackend{
		jobs: []gateway.JobDTO{{
			Title: "Platform Engineer", Company: "Google", Description: "Infra",
			Skills: []string{"Go"}, JobType: "onsite", JobLevel: "senior",
		}},
		questions: []string{"Walk me through a production incident."},
		feedback:  "Good incident narrative.",
	}
	s := newStack(t, backend)
	ctx := context.Background()

	jobs, err := s.search.Search(ctx, "platform", models.JobFilters{})
	require.NoError(t, err)

	iv, err := s.manager.Start(ctx, jobs[0].ID, models.FeedbackAfterEachQuestion)
	require.NoError(t, err)

	// A second manager over the same store plays the restarted process.
	restarted := interview.NewManager(nil, s.search, s.store, 3, 50*time.Millisecond,
		logger.NewTestLogger(t))
	recovered, ok := restarted.GetActiveInterview(ctx, iv.ID)
	require.True(t, ok)
	assert.Equal(t, iv.ID, recovered.ID)
	assert.Equal(t, iv.Questions[0].Question, recovered.Questions[0].Question)
}

func mustActive(t *testing.T, s *stack, id string) models.Interview {
	t.Helper()
	iv, ok := s.manager.GetActiveInterview(context.Background(), id)
	require.True(t, ok)
	return iv
}
