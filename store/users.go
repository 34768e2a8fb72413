package store

import (
	"context"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sakshisharma25/meetyfi-b/auth"
)

const usersCollection = "users"

// UsersStore persists credential records in a users collection keyed by a
// unique email index.
type UsersStore struct {
	col *mongo.Collection
}

var _ auth.Users = (*UsersStore)(nil)

func NewUsers(db *mongo.Database) *UsersStore {
	return &UsersStore{col: db.Collection(usersCollection)}
}

// EnsureIndexes creates the unique email index. Signup checks before
// inserting; the index closes the race between concurrent signups for the
// same address.
func (s *UsersStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to create email index")
	}
	return nil
}

func (s *UsersStore) FindByEmail(ctx context.Context, email string) (*auth.User, error) {
	var user auth.User
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if goerrors.Is(err, mongo.ErrNoDocuments) {
			return nil, newRecordNotFound("user", email)
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to query user")
	}
	return &user, nil
}

func (s *UsersStore) Insert(ctx context.Context, user *auth.User) (*auth.User, error) {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.CreatedAt == nil {
		now := time.Now().UTC()
		user.CreatedAt = &now
	}

	if _, err := s.col.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, goerrors.Wrap(err, goerrors.CategoryConflict, "email already registered").
				WithCode(goerrors.CodeBadRequest)
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to insert user")
	}
	return user, nil
}

// UpdateFields applies a partial update by email. Clearing the
// verification code writes an explicit null, matching the original
// document shape.
func (s *UsersStore) UpdateFields(ctx context.Context, email string, update auth.UserUpdate) (*auth.User, error) {
	set := bson.M{}
	if update.IsVerified != nil {
		set["is_verified"] = *update.IsVerified
	}
	switch {
	case update.ClearVerificationCode:
		set["verification_code"] = nil
	case update.VerificationCode != nil:
		set["verification_code"] = *update.VerificationCode
	}

	if len(set) == 0 {
		return s.FindByEmail(ctx, email)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user auth.User
	err := s.col.FindOneAndUpdate(ctx, bson.M{"email": email}, bson.M{"$set": set}, opts).Decode(&user)
	if err != nil {
		if goerrors.Is(err, mongo.ErrNoDocuments) {
			return nil, newRecordNotFound("user", email)
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to update user")
	}
	return &user, nil
}

func newRecordNotFound(kind, identifier string) *goerrors.Error {
	return goerrors.New(kind+" not found", goerrors.CategoryNotFound).
		WithCode(goerrors.CodeNotFound).
		WithMetadata(map[string]any{
			"identifier": identifier,
		})
}
