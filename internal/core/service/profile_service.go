package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cogniboost/progress-system/internal/api/metrics"
	"github.com/cogniboost/progress-system/internal/core/domain"
	"github.com/cogniboost/progress-system/internal/core/ports"
)

// ProfileService records onboarding answers and serves the dashboard view.
type ProfileService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewProfileService(repo ports.UserRepository, logger zerolog.Logger) *ProfileService {
	return &ProfileService{repo: repo, logger: logger}
}

// SubmitIntake overwrites the questionnaire answers and age unconditionally.
// Repeated calls are last-write-wins; no merging.
func (s *ProfileService) SubmitIntake(ctx context.Context, in ports.IntakeInput) (*ports.UserSummary, error) {
	q := domain.Questionnaire{
		Goal:     in.Goal,
		Concerns: in.Concerns,
		PlayTime: in.PlayTime,
	}

	user, err := s.repo.SetQuestionnaire(ctx, in.UserID, in.Age, q)
	if err != nil {
		return nil, fmt.Errorf("submit intake: %w", err)
	}

	metrics.IntakesSubmittedTotal.Inc()
	s.logger.Info().Str("user_id", user.ID).Msg("questionnaire recorded")

	return &ports.UserSummary{ID: user.ID, Name: user.Name, Email: user.Email}, nil
}

// Get returns the full user aggregate for the authenticated identity.
func (s *ProfileService) Get(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return user, nil
}
