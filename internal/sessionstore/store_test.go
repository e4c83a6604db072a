// internal/sessionstore/store_test.go
package sessionstore

import (
	"context"
	"errors"
	"testing"

	apperrors "quickq/internal/common/errors"
	"quickq/internal/common/logger"
	"quickq/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewStore(rdb, logger.NewTestLogger(t)), mr
}

func sampleInterview(id string) models.Interview {
	return models.Interview{
		ID:              id,
		JobID:           "job-1",
		InterviewerName: "Sarah Johnson",
		Questions: []models.InterviewQuestion{
			{ID: "q1", Question: "Tell me about yourself", Timestamp: 1700000000000},
			{ID: "q2", Question: "Why here?", Timestamp: 1700000000000},
		},
		FeedbackMode: models.FeedbackEndOfInterview,
		Job:          models.Job{ID: "job-1", Title: "Engineer", Company: "Stripe"},
	}
}

func TestStore_ActiveInterviewRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	saved := sampleInterview("int-1")
	require.NoError(t, store.SaveActive(ctx, saved))

	loaded, err := store.LoadActive(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, saved, *loaded)
}

func TestStore_LoadActive_EmptySlot(t *testing.T) {
	store, _ := newTestStore(t)

	loaded, err := store.LoadActive(context.Background())
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestStore_LoadActive_Corrupt(t *testing.T) {
	store, mr := newTestStore(t)
	mr.Set(activeInterviewKey, "{definitely not json")

	_, err := store.LoadActive(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsCorruption(err))
}

func TestStore_SaveActive_OverwritesSlot(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveActive(ctx, sampleInterview("int-1")))
	require.NoError(t, store.SaveActive(ctx, sampleInterview("int-2")))

	loaded, err := store.LoadActive(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "int-2", loaded.ID)
}

func TestStore_ClearActive(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveActive(ctx, sampleInterview("int-1")))
	require.NoError(t, store.ClearActive(ctx))

	loaded, err := store.LoadActive(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestStore_HistoryAppendOrder(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	first := models.InterviewSummary{TotalQuestions: 5, CompletionDate: 1}
	second := models.InterviewSummary{TotalQuestions: 8, CompletionDate: 2}

	require.NoError(t, store.AppendHistory(ctx, first))
	require.NoError(t, store.AppendHistory(ctx, second))

	history, err := store.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, 5, history[0].TotalQuestions)
	assert.Equal(t, 8, history[1].TotalQuestions)
}

func TestStore_History_Empty(t *testing.T) {
	store, _ := newTestStore(t)

	history, err := store.History(context.Background())
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestStore_AppendHistory_DropsCorruptHistory(t *testing.T) {
	store, mr := newTestStore(t)
	mr.Set(interviewHistoryKey, "[{broken")

	summary := models.InterviewSummary{TotalQuestions: 3}
	require.NoError(t, store.AppendHistory(context.Background(), summary))

	history, err := store.History(context.Background())
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 3, history[0].TotalQuestions)
}

func TestStore_SaveActive_WriteFailure(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	store := NewStore(rdb, logger.NewNoOpLogger())

	mock.Regexp().ExpectSet(activeInterviewKey, `.*`, 0).
		SetErr(errors.New("connection refused"))

	err := store.SaveActive(context.Background(), sampleInterview("int-1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save active interview")
}
