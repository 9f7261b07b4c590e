package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cogniboost/progress-system/internal/core/domain"
)

const contactsCollection = "contacts"

// ContactRepository implements ports.ContactRepository on MongoDB.
type ContactRepository struct {
	coll *mongo.Collection
}

func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{coll: db.Collection(contactsCollection)}
}

type contactDoc struct {
	FirstName string    `bson:"firstName"`
	LastName  string    `bson:"lastName"`
	Email     string    `bson:"email"`
	Mobile    string    `bson:"mobile"`
	Message   string    `bson:"message"`
	CreatedAt time.Time `bson:"createdAt"`
}

// Insert stores a contact-form submission.
func (r *ContactRepository) Insert(ctx context.Context, msg *domain.ContactMessage) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := contactDoc{
		FirstName: msg.FirstName,
		LastName:  msg.LastName,
		Email:     msg.Email,
		Mobile:    msg.Mobile,
		Message:   msg.Message,
		CreatedAt: msg.CreatedAt,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	return nil
}
