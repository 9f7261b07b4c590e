package ports

import (
	"context"

	"github.com/cogniboost/progress-system/internal/core/domain"
)

// SubmitScoreInput carries one game-completion report. UserID is the verified
// identity extracted at the request boundary; it is always passed explicitly.
type SubmitScoreInput struct {
	UserID string
	Game   string
	Score  int
	// SubmissionID is an optional client-chosen id used to drop duplicate
	// deliveries of the same game-end report. Empty disables the check.
	SubmissionID string
}

// SubmitScoreResult reports the outcome of a submission.
type SubmitScoreResult struct {
	NewHighScore bool
	// Progress is the stored record after the update.
	Progress domain.Progress
	// Duplicate is true when the submission id was already seen; no write
	// happened and NewHighScore is false.
	Duplicate bool
}

// ScoreService accepts game-completion reports and updates progress under the
// monotonic high-score rule.
type ScoreService interface {
	Submit(ctx context.Context, in SubmitScoreInput) (*SubmitScoreResult, error)
}
