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

type contactService struct {
	repo   ports.ContactRepository
	logger zerolog.Logger
}

// NewContactService returns a ContactService backed by the given repository.
func NewContactService(repo ports.ContactRepository, logger zerolog.Logger) ports.ContactService {
	return &contactService{repo: repo, logger: logger}
}

// Process persists one contact-form submission. Called from the dispatcher
// workers, off the request path.
func (s *contactService) Process(ctx context.Context, in ports.ContactInput) error {
	msg := &domain.ContactMessage{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Mobile:    in.Mobile,
		Message:   in.Message,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, msg); err != nil {
		metrics.ContactMessagesTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("process contact message: %w", err)
	}

	metrics.ContactMessagesTotal.WithLabelValues("stored").Inc()
	s.logger.Info().Str("email", msg.Email).Msg("contact message stored")
	return nil
}
