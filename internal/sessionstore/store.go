// internal/sessionstore/store.go

// Package sessionstore persists the single in-flight interview and the
// append-only history of completed interviews. The active interview lives
// in one key regardless of interview id; starting a new interview
// overwrites whatever was there.
package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	apperrors "quickq/internal/common/errors"
	"quickq/internal/common/logger"
	"quickq/internal/models"

	"github.com/redis/go-redis/v9"
)

const (
	activeInterviewKey  = "quickq:active_interview"
	interviewHistoryKey = "quickq:interview_history"
)

// Store is the Redis-backed session store.
type Store struct {
	rdb *redis.Client
	log logger.Logger
}

// NewStore creates a Store on top of a connected Redis client.
func NewStore(rdb *redis.Client, log logger.Logger) *Store {
	return &Store{
		rdb: rdb,
		log: log.WithFields(map[string]interface{}{"component": "sessionstore"}),
	}
}

// SaveActive overwrites the active-interview slot with interview.
func (s *Store) SaveActive(ctx context.Context, interview models.Interview) error {
	payload, err := json.Marshal(interview)
	if err != nil {
		return fmt.Errorf("marshal active interview: %w", err)
	}
	if err := s.rdb.Set(ctx, activeInterviewKey, payload, 0).Err(); err != nil {
		return fmt.Errorf("save active interview: %w", err)
	}
	return nil
}

// LoadActive reads the active-interview slot. A (nil, nil) return means the
// slot is empty. Malformed stored JSON returns a PERSISTENCE_CORRUPT error
// so the caller can self-heal by clearing the slot.
func (s *Store) LoadActive(ctx context.Context) (*models.Interview, error) {
	payload, err := s.rdb.Get(ctx, activeInterviewKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("load active interview: %w", err)
	}

	var interview models.Interview
	if err := json.Unmarshal([]byte(payload), &interview); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodePersistenceCorrupt,
			"Stored interview data is corrupted", err)
	}
	return &interview, nil
}

// ClearActive empties the active-interview slot.
func (s *Store) ClearActive(ctx context.Context) error {
	if err := s.rdb.Del(ctx, activeInterviewKey).Err(); err != nil {
		return fmt.Errorf("clear active interview: %w", err)
	}
	return nil
}

// AppendHistory adds a summary to the interview history. The history is a
// single JSON array read, extended and written back whole; it grows without
// bound.
func (s *Store) AppendHistory(ctx context.Context, summary models.InterviewSummary) error {
	history, err := s.History(ctx)
	if err != nil {
		if !apperrors.IsCorruption(err) {
			return err
		}
		// Corrupt history is dropped rather than blocking new entries.
		s.log.Warn("interview history corrupted, starting fresh", nil)
		history = nil
	}

	history = append(history, summary)
	payload, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("marshal interview history: %w", err)
	}
	if err := s.rdb.Set(ctx, interviewHistoryKey, payload, 0).Err(); err != nil {
		return fmt.Errorf("append interview history: %w", err)
	}
	return nil
}

// History returns every completed-interview summary, oldest first.
func (s *Store) History(ctx context.Context) ([]models.InterviewSummary, error) {
	payload, err := s.rdb.Get(ctx, interviewHistoryKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("load interview history: %w", err)
	}

	var history []models.InterviewSummary
	if err := json.Unmarshal([]byte(payload), &history); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodePersistenceCorrupt,
			"Stored interview history is corrupted", err)
	}
	return history, nil
}
