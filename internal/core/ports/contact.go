package ports

import (
	"context"

	"github.com/cogniboost/progress-system/internal/core/domain"
)

// ContactRepository persists contact-form submissions.
type ContactRepository interface {
	Insert(ctx context.Context, msg *domain.ContactMessage) error
}

// ContactInput is the DTO passed from the transport layer to ContactService.
type ContactInput struct {
	FirstName string
	LastName  string
	Email     string
	Mobile    string
	Message   string
}

// ContactService processes contact-form submissions delivered by the
// dispatcher workers.
type ContactService interface {
	Process(ctx context.Context, in ContactInput) error
}
