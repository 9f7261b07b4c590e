package ports

import (
	"context"

	"github.com/cogniboost/progress-system/internal/core/domain"
)

// UserRepository defines persistence operations for the user aggregate.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// RecordScore applies the per-game progress update as a single atomic
	// document operation: played is always incremented by one, score is set
	// to max(stored, score). It returns the progress record as it was
	// immediately before the update so callers can decide whether a new
	// high score was set.
	RecordScore(ctx context.Context, userID string, kind domain.GameKind, score int) (domain.Progress, error)

	// SetQuestionnaire unconditionally overwrites the questionnaire answers
	// and age, and returns the updated user. Repeated calls are
	// last-write-wins.
	SetQuestionnaire(ctx context.Context, userID string, age *int, q domain.Questionnaire) (*domain.User, error)
}
