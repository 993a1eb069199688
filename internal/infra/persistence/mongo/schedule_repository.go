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
	"planner/internal/errors"
	"planner/internal/infra/persistence/model"
)

// scheduleRepository implements repository.ScheduleRepository on a MongoDB collection.
type scheduleRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewScheduleRepository is the constructor for scheduleRepository.
func NewScheduleRepository(db *mongo.Database, cfg *config.Config) repository.ScheduleRepository {
	return &scheduleRepository{
		coll:    db.Collection(collSchedules),
		timeout: cfg.Mongo.OperationTimeout,
	}
}

func (repo *scheduleRepository) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, repo.timeout)
}

func (repo *scheduleRepository) Create(ctx context.Context, entry *entity.ScheduleEntry) error {
	ctx, cancel := repo.opCtx(ctx)
	defer cancel()

	now := time.Now().UTC()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	entryM := model.FromScheduleDomain(entry)
	if entryM.ID.IsZero() {
		entryM.ID = primitive.NewObjectID()
	}

	if _, err := repo.coll.InsertOne(ctx, entryM); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create schedule entry")
	}

	entry.ID = entryM.ID.Hex()

	return nil
}

func (repo *scheduleRepository) FindByID(ctx context.Context, userID, id string) (*entity.ScheduleEntry, error) {
	filter, err := ownerFilter(userID, id)
	if err != nil {
		return nil, repository.ErrScheduleNotFound
	}

	ctx, cancel := repo.opCtx(ctx)
	defer cancel()

	var entryM model.ScheduleModel
	if err := repo.coll.FindOne(ctx, filter).Decode(&entryM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrScheduleNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find schedule entry")
	}

	return entryM.ToDomain(), nil
}

func (repo *scheduleRepository) ListByUser(ctx context.Context, userID string) ([]*entity.ScheduleEntry, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, repository.ErrScheduleNotFound
	}

	ctx, cancel := repo.opCtx(ctx)
	defer cancel()

	sort := options.Find().SetSort(bson.D{{Key: "day_of_week", Value: 1}, {Key: "start_time", Value: 1}})
	cursor, err := repo.coll.Find(ctx, bson.M{"user_id": uid}, sort)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list schedule entries")
	}
	defer cursor.Close(ctx)

	entries := make([]*entity.ScheduleEntry, 0)
	for cursor.Next(ctx) {
		var entryM model.ScheduleModel
		if err := cursor.Decode(&entryM); err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode schedule entry")
		}
		entries = append(entries, entryM.ToDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to iterate schedule entries")
	}

	return entries, nil
}

func (repo *scheduleRepository) Update(ctx context.Context, entry *entity.ScheduleEntry) error {
	filter, err := ownerFilter(entry.UserID, entry.ID)
	if err != nil {
		return repository.ErrScheduleNotFound
	}

	ctx, cancel := repo.opCtx(ctx)
	defer cancel()

	entry.UpdatedAt = time.Now().UTC()

	update := bson.M{"$set": bson.M{
		"course_id":   entry.CourseID,
		"title":       entry.Title,
		"day_of_week": int(entry.DayOfWeek),
		"start_time":  entry.StartTime,
		"end_time":    entry.EndTime,
		"location":    entry.Location,
		"updated_at":  entry.UpdatedAt,
	}}

	result, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update schedule entry")
	}
	if result.MatchedCount == 0 {
		return repository.ErrScheduleNotFound
	}

	return nil
}

func (repo *scheduleRepository) Delete(ctx context.Context, userID, id string) error {
	filter, err := ownerFilter(userID, id)
	if err != nil {
		return repository.ErrScheduleNotFound
	}

	ctx, cancel := repo.opCtx(ctx)
	defer cancel()

	result, err := repo.coll.DeleteOne(ctx, filter)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete schedule entry")
	}
	if result.DeletedCount == 0 {
		return repository.ErrScheduleNotFound
	}

	return nil
}
