package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"planner/config"
	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/repository"
	"planner/internal/errors"
	"planner/internal/infra/persistence/model"
)

// userRepository implements repository.UserRepository on a MongoDB collection.
type userRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *mongo.Database, cfg *config.Config) repository.UserRepository {
	return &userRepository{
		coll:    db.Collection(collUsers),
		timeout: cfg.Mongo.OperationTimeout,
	}
}

// opCtx bounds a single persistence call. The handler's request context still
// applies; this only caps how long one database round trip may take.
func (repo *userRepository) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, repo.timeout)
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrUserNotFound
	}

	ctx, cancel := repo.opCtx(ctx)
	defer cancel()

	var userM model.UserModel
	if err := repo.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&userM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by id")
	}

	return userM.ToDomain(), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	ctx, cancel := repo.opCtx(ctx)
	defer cancel()

	var userM model.UserModel
	if err := repo.coll.FindOne(ctx, bson.M{"email": email}).Decode(&userM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by email")
	}

	return userM.ToDomain(), nil
}

// Create persists a new user. The unique email index turns a concurrent
// duplicate registration into a clean conflict.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	ctx, cancel := repo.opCtx(ctx)
	defer cancel()

	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	userM := model.FromUserDomain(user)
	if userM.ID.IsZero() {
		userM.ID = primitive.NewObjectID()
	}

	if _, err := repo.coll.InsertOne(ctx, userM); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateEmail
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID.Hex()

	return nil
}
