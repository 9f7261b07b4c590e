package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cogniboost/progress-system/internal/core/domain"
)

const usersCollection = "users"

// UserRepository implements ports.UserRepository on MongoDB.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

// userDoc is the persisted document shape. Field names are camelCase to stay
// compatible with the collection the previous application wrote.
type userDoc struct {
	ID            primitive.ObjectID    `bson:"_id,omitempty"`
	Name          string                `bson:"name"`
	Email         string                `bson:"email"`
	Password      string                `bson:"password"`
	Age           *int                  `bson:"age,omitempty"`
	Questionnaire *domain.Questionnaire `bson:"questionnaire,omitempty"`
	GameProgress  domain.GameProgress   `bson:"gameProgress"`
	CreatedAt     time.Time             `bson:"createdAt"`
}

func (d *userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:            d.ID.Hex(),
		Name:          d.Name,
		Email:         d.Email,
		PasswordHash:  d.Password,
		Age:           d.Age,
		Questionnaire: d.Questionnaire,
		GameProgress:  d.GameProgress,
		CreatedAt:     d.CreatedAt,
	}
}

// Create inserts a new user document. All four gameProgress records are
// written zero-valued so they are never partially absent.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := userDoc{
		Name:         user.Name,
		Email:        user.Email,
		Password:     user.PasswordHash,
		GameProgress: user.GameProgress,
		CreatedAt:    user.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id cannot reference any stored user.
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return doc.toDomain(), nil
}

// RecordScore applies the submission as one atomic document update:
// played is incremented and score is raised to the submitted value only when
// it is greater ($max). Returning the pre-image lets the service decide
// whether a new high score was set without a second round-trip, and two
// concurrent submissions can never lose a played increment or lower the score.
func (r *UserRepository) RecordScore(ctx context.Context, userID string, kind domain.GameKind, score int) (domain.Progress, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return domain.Progress{}, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	playedField := fmt.Sprintf("gameProgress.%s.played", kind)
	scoreField := fmt.Sprintf("gameProgress.%s.score", kind)

	update := bson.M{
		"$inc": bson.M{playedField: 1},
		"$max": bson.M{scoreField: score},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.Before)

	var doc userDoc
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Progress{}, domain.ErrUserNotFound
		}
		return domain.Progress{}, fmt.Errorf("record score: %w", err)
	}

	return doc.GameProgress.ForKind(kind), nil
}

// SetQuestionnaire overwrites the questionnaire (and age when supplied) and
// returns the updated user. Last write wins.
func (r *UserRepository) SetQuestionnaire(ctx context.Context, userID string, age *int, q domain.Questionnaire) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"questionnaire": q}
	if age != nil {
		set["age"] = *age
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc userDoc
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("set questionnaire: %w", err)
	}
	return doc.toDomain(), nil
}

// EnsureIndexes creates the unique email index backing the registration
// uniqueness invariant.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
