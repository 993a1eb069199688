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

// assignmentRepository implements repository.AssignmentRepository on a MongoDB collection.
type assignmentRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewAssignmentRepository is the constructor for assignmentRepository.
func NewAssignmentRepository(db *mongo.Database, cfg *config.Config) repository.AssignmentRepository {
	return &assignmentRepository{
		coll:    db.Collection(collAssignments),
		timeout: cfg.Mongo.OperationTimeout,
	}
}

func (repo *assignmentRepository) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, repo.timeout)
}

func (repo *assignmentRepository) Create(ctx context.Context, assignment *entity.Assignment) error {
	ctx, cancel := repo.opCtx(ctx)
	defer cancel()

	now := time.Now().UTC()
	assignment.CreatedAt = now
	assignment.UpdatedAt = now

	assignmentM := model.FromAssignmentDomain(assignment)
	if assignmentM.ID.IsZero() {
		assignmentM.ID = primitive.NewObjectID()
	}

	if _, err := repo.coll.InsertOne(ctx, assignmentM); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create assignment")
	}

	assignment.ID = assignmentM.ID.Hex()

	return nil
}

func (repo *assignmentRepository) FindByID(ctx context.Context, userID, id string) (*entity.Assignment, error) {
	filter, err := ownerFilter(userID, id)
	if err != nil {
		return nil, repository.ErrAssignmentNotFound
	}

	ctx, cancel := repo.opCtx(ctx)
	defer cancel()

	var assignmentM model.AssignmentModel
	if err := repo.coll.FindOne(ctx, filter).Decode(&assignmentM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrAssignmentNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find assignment")
	}

	return assignmentM.ToDomain(), nil
}

func (repo *assignmentRepository) ListByUser(ctx context.Context, userID string, status entity.AssignmentStatus) ([]*entity.Assignment, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, repository.ErrAssignmentNotFound
	}

	filter := bson.M{"user_id": uid}
	if status != "" {
		filter["status"] = string(status)
	}

	ctx, cancel := repo.opCtx(ctx)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "due_date", Value: 1}}))
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list assignments")
	}
	defer cursor.Close(ctx)

	return decodeAssignments(ctx, cursor)
}

func (repo *assignmentRepository) Update(ctx context.Context, assignment *entity.Assignment) error {
	filter, err := ownerFilter(assignment.UserID, assignment.ID)
	if err != nil {
		return repository.ErrAssignmentNotFound
	}

	ctx, cancel := repo.opCtx(ctx)
	defer cancel()

	assignment.UpdatedAt = time.Now().UTC()

	update := bson.M{"$set": bson.M{
		"course_id":   assignment.CourseID,
		"title":       assignment.Title,
		"description": assignment.Description,
		"due_date":    assignment.DueDate,
		"status":      string(assignment.Status),
		"updated_at":  assignment.UpdatedAt,
	}}

	result, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update assignment")
	}
	if result.MatchedCount == 0 {
		return repository.ErrAssignmentNotFound
	}

	return nil
}

func (repo *assignmentRepository) Delete(ctx context.Context, userID, id string) error {
	filter, err := ownerFilter(userID, id)
	if err != nil {
		return repository.ErrAssignmentNotFound
	}

	ctx, cancel := repo.opCtx(ctx)
	defer cancel()

	result, err := repo.coll.DeleteOne(ctx, filter)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete assignment")
	}
	if result.DeletedCount == 0 {
		return repository.ErrAssignmentNotFound
	}

	return nil
}

// ListDueBetween feeds the reminder worker: pending work across all users
// with a due date inside the window.
func (repo *assignmentRepository) ListDueBetween(ctx context.Context, from, to time.Time) ([]*entity.Assignment, error) {
	ctx, cancel := repo.opCtx(ctx)
	defer cancel()

	filter := bson.M{
		"status":   string(entity.AssignmentPending),
		"due_date": bson.M{"$gte": from, "$lt": to},
	}

	cursor, err := repo.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "due_date", Value: 1}}))
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list due assignments")
	}
	defer cursor.Close(ctx)

	return decodeAssignments(ctx, cursor)
}

func decodeAssignments(ctx context.Context, cursor *mongo.Cursor) ([]*entity.Assignment, error) {
	assignments := make([]*entity.Assignment, 0)
	for cursor.Next(ctx) {
		var assignmentM model.AssignmentModel
		if err := cursor.Decode(&assignmentM); err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode assignment")
		}
		assignments = append(assignments, assignmentM.ToDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to iterate assignments")
	}

	return assignments, nil
}
