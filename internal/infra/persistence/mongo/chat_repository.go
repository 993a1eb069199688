package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"planner/config"
	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/repository"
	"planner/internal/infra/persistence/model"
)

// chatRepository implements repository.ChatRepository on a MongoDB collection.
type chatRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewChatRepository is the constructor for chatRepository.
func NewChatRepository(db *mongo.Database, cfg *config.Config) repository.ChatRepository {
	return &chatRepository{
		coll:    db.Collection(collChat),
		timeout: cfg.Mongo.OperationTimeout,
	}
}

func (repo *chatRepository) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, repo.timeout)
}

func (repo *chatRepository) Append(ctx context.Context, message *entity.ChatMessage) error {
	ctx, cancel := repo.opCtx(ctx)
	defer cancel()

	message.CreatedAt = time.Now().UTC()

	messageM := model.FromChatMessageDomain(message)
	if messageM.ID.IsZero() {
		messageM.ID = primitive.NewObjectID()
	}

	if _, err := repo.coll.InsertOne(ctx, messageM); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append chat message")
	}

	message.ID = messageM.ID.Hex()

	return nil
}

// ListByUser returns the newest messages in chronological order. The query
// sorts descending with a limit and the result is reversed, so the cap trims
// the oldest messages first.
func (repo *chatRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.ChatMessage, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return []*entity.ChatMessage{}, nil
	}

	ctx, cancel := repo.opCtx(ctx)
	defer cancel()

	findOpts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		findOpts = findOpts.SetLimit(int64(limit))
	}

	cursor, err := repo.coll.Find(ctx, bson.M{"user_id": uid}, findOpts)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list chat messages")
	}
	defer cursor.Close(ctx)

	messages := make([]*entity.ChatMessage, 0)
	for cursor.Next(ctx) {
		var messageM model.ChatMessageModel
		if err := cursor.Decode(&messageM); err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode chat message")
		}
		messages = append(messages, messageM.ToDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to iterate chat messages")
	}

	// Reverse into chronological order.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, nil
}
