package progression

import (
	"context"

	"github.com/google/uuid"

	"tti-backend/internal/models"
)

// Store is the durable set of per-(user, course, module) progress records.
//
// Implementations must uphold the monotonic invariants: is_unlocked and
// is_completed never revert to false, attempts and best_score never decrease.
// RecordAttempt and the unlock of the next module are one atomic transaction;
// a module must never be observable as completed with its successor still
// locked. Write conflicts between concurrent callers are resolved inside the
// implementation, never surfaced.
type Store interface {
	// GetOrCreate returns the progress record, synthesizing it on first
	// access: attempts=0, best_score=0, unlocked iff module 1 or the
	// previous module is completed. Concurrent creation of the same record
	// must converge on a single row.
	GetOrCreate(ctx context.Context, userID, courseID uuid.UUID, moduleNumber int) (*models.ModuleProgress, error)

	// RecordAttempt applies a graded result: increments attempts, raises
	// best_score, sets last_score, marks completion on a pass, and, when
	// hasNext, unlocks module moduleNumber+1 in the same transaction.
	// Returns LockedError if the module is not unlocked for the user.
	RecordAttempt(ctx context.Context, userID, courseID uuid.UUID, moduleNumber int, result *models.QuizResult, hasNext bool) (*models.ModuleProgress, error)
}
