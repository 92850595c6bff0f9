package progression

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"tti-backend/internal/models"
)

type progressKey struct {
	userID       uuid.UUID
	courseID     uuid.UUID
	moduleNumber int
}

// MemStore is a mutex-guarded in-memory Store. It backs tests and local
// development without Postgres; the durable implementation lives in the
// repository package.
type MemStore struct {
	mu   sync.Mutex
	rows map[progressKey]*models.ModuleProgress
}

func NewMemStore() *MemStore {
	return &MemStore{rows: make(map[progressKey]*models.ModuleProgress)}
}

func (s *MemStore) GetOrCreate(ctx context.Context, userID, courseID uuid.UUID, moduleNumber int) (*models.ModuleProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := s.getOrCreateLocked(userID, courseID, moduleNumber)
	cp := *row
	return &cp, nil
}

func (s *MemStore) RecordAttempt(ctx context.Context, userID, courseID uuid.UUID, moduleNumber int, result *models.QuizResult, hasNext bool) (*models.ModuleProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := s.getOrCreateLocked(userID, courseID, moduleNumber)
	if !row.IsUnlocked {
		return nil, &LockedError{Message: "module is locked"}
	}

	now := time.Now().UTC()
	row.Attempts++
	row.LastScore = result.Score
	if result.Score > row.BestScore {
		row.BestScore = result.Score
	}
	row.LastAttemptAt = &now

	if result.Passed {
		row.IsCompleted = true
		if hasNext {
			next := s.getOrCreateLocked(userID, courseID, moduleNumber+1)
			if !next.IsUnlocked {
				next.IsUnlocked = true
				next.FirstUnlockedAt = &now
			}
		}
	}

	cp := *row
	return &cp, nil
}

// getOrCreateLocked synthesizes the row on first access. A module starts
// unlocked only if it is module 1 or its predecessor is already completed.
func (s *MemStore) getOrCreateLocked(userID, courseID uuid.UUID, moduleNumber int) *models.ModuleProgress {
	key := progressKey{userID, courseID, moduleNumber}
	if row, ok := s.rows[key]; ok {
		return row
	}

	row := &models.ModuleProgress{
		UserID:       userID,
		CourseID:     courseID,
		ModuleNumber: moduleNumber,
	}
	if moduleNumber == 1 {
		row.IsUnlocked = true
	} else if prev, ok := s.rows[progressKey{userID, courseID, moduleNumber - 1}]; ok && prev.IsCompleted {
		row.IsUnlocked = true
	}
	if row.IsUnlocked {
		now := time.Now().UTC()
		row.FirstUnlockedAt = &now
	}

	s.rows[key] = row
	return row
}
