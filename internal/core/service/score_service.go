package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/cogniboost/progress-system/internal/api/metrics"
	"github.com/cogniboost/progress-system/internal/core/domain"
	"github.com/cogniboost/progress-system/internal/core/ports"
)

// DedupChecker abstracts the duplicate-submission store (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, userID string, kind domain.GameKind, submissionID string) (bool, error)
	Mark(ctx context.Context, userID string, kind domain.GameKind, submissionID string) error
}

// ScoreService applies the monotonic high-score rule: played always
// increments by one, score only ever moves up.
type ScoreService struct {
	repo   ports.UserRepository
	dedup  DedupChecker
	logger zerolog.Logger
}

// NewScoreService returns a ScoreService. dedup may be nil, which disables
// the duplicate-submission guard entirely.
func NewScoreService(repo ports.UserRepository, dedup DedupChecker, logger zerolog.Logger) *ScoreService {
	return &ScoreService{repo: repo, dedup: dedup, logger: logger}
}

// Submit validates the game kind and persists the report. The stored update
// is one atomic document operation; NewHighScore is strict: a submission
// equal to the stored score keeps the stored value and reports false.
//
// The score itself is client-computed and accepted as-is; there is no
// server-side plausibility bound. See DESIGN.md.
func (s *ScoreService) Submit(ctx context.Context, in ports.SubmitScoreInput) (*ports.SubmitScoreResult, error) {
	kind, err := domain.ParseGameKind(in.Game)
	if err != nil {
		metrics.ScoreErrorsTotal.WithLabelValues("unknown_game").Inc()
		return nil, err
	}

	start := time.Now()
	defer func() {
		metrics.ScoreSubmissionDuration.WithLabelValues(string(kind)).Observe(time.Since(start).Seconds())
	}()

	// Duplicate delivery of the same game-end report: acknowledge, skip the write.
	if s.dedup != nil && in.SubmissionID != "" {
		isDup, dedupErr := s.dedup.IsDuplicate(ctx, in.UserID, kind, in.SubmissionID)
		if dedupErr != nil {
			s.logger.Warn().Err(dedupErr).Str("user_id", in.UserID).Msg("dedup check failed, processing anyway")
		} else if isDup {
			metrics.SubmissionsDedupTotal.WithLabelValues("hit").Inc()
			s.logger.Debug().Str("user_id", in.UserID).Str("game", string(kind)).Str("submission_id", in.SubmissionID).Msg("duplicate submission skipped")
			return &ports.SubmitScoreResult{Duplicate: true}, nil
		} else {
			metrics.SubmissionsDedupTotal.WithLabelValues("miss").Inc()
		}
	}

	before, err := s.repo.RecordScore(ctx, in.UserID, kind, in.Score)
	if err != nil {
		switch err {
		case domain.ErrUserNotFound:
			metrics.ScoreErrorsTotal.WithLabelValues("user_not_found").Inc()
		default:
			metrics.ScoreErrorsTotal.WithLabelValues("storage").Inc()
		}
		return nil, fmt.Errorf("submit score: %w", err)
	}

	if s.dedup != nil && in.SubmissionID != "" {
		if markErr := s.dedup.Mark(ctx, in.UserID, kind, in.SubmissionID); markErr != nil {
			s.logger.Warn().Err(markErr).Str("user_id", in.UserID).Msg("failed to set dedup key")
		}
	}

	newHigh := in.Score > before.Score
	stored := domain.Progress{Score: before.Score, Played: before.Played + 1}
	result := "kept"
	if newHigh {
		stored.Score = in.Score
		result = "high_score"
	}
	metrics.ScoresSubmittedTotal.WithLabelValues(string(kind), result).Inc()

	s.logger.Info().
		Str("user_id", in.UserID).
		Str("game", string(kind)).
		Int("score", in.Score).
		Bool("new_high_score", newHigh).
		Msg("score recorded")

	return &ports.SubmitScoreResult{NewHighScore: newHigh, Progress: stored}, nil
}
