package ports

import (
	"context"

	"github.com/cogniboost/progress-system/internal/core/domain"
)

// IntakeInput carries the onboarding questionnaire answers for one user.
type IntakeInput struct {
	UserID   string
	Age      *int
	Goal     string
	Concerns []string
	PlayTime string
}

// UserSummary is the lightweight identity view returned after intake.
type UserSummary struct {
	ID    string
	Name  string
	Email string
}

// ProfileService records onboarding answers and serves the dashboard view.
type ProfileService interface {
	// SubmitIntake overwrites the questionnaire answers. Idempotent:
	// repeated calls leave only the last payload stored.
	SubmitIntake(ctx context.Context, in IntakeInput) (*UserSummary, error)
	// Get returns the full user aggregate, including game progress.
	Get(ctx context.Context, userID string) (*domain.User, error)
}
