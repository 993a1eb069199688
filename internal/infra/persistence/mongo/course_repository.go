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

// courseRepository implements repository.CourseRepository on a MongoDB collection.
type courseRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewCourseRepository is the constructor for courseRepository.
func NewCourseRepository(db *mongo.Database, cfg *config.Config) repository.CourseRepository {
	return &courseRepository{
		coll:    db.Collection(collCourses),
		timeout: cfg.Mongo.OperationTimeout,
	}
}

func (repo *courseRepository) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, repo.timeout)
}

// ownerFilter builds the owner-scoped document filter. Lookups never cross
// user boundaries.
func ownerFilter(userID, id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, err
	}

	return bson.M{"_id": oid, "user_id": uid}, nil
}

func (repo *courseRepository) Create(ctx context.Context, course *entity.Course) error {
	ctx, cancel := repo.opCtx(ctx)
	defer cancel()

	now := time.Now().UTC()
	course.CreatedAt = now
	course.UpdatedAt = now

	courseM := model.FromCourseDomain(course)
	if courseM.ID.IsZero() {
		courseM.ID = primitive.NewObjectID()
	}

	if _, err := repo.coll.InsertOne(ctx, courseM); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create course")
	}

	course.ID = courseM.ID.Hex()

	return nil
}

func (repo *courseRepository) FindByID(ctx context.Context, userID, id string) (*entity.Course, error) {
	filter, err := ownerFilter(userID, id)
	if err != nil {
		return nil, repository.ErrCourseNotFound
	}

	ctx, cancel := repo.opCtx(ctx)
	defer cancel()

	var courseM model.CourseModel
	if err := repo.coll.FindOne(ctx, filter).Decode(&courseM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrCourseNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find course")
	}

	return courseM.ToDomain(), nil
}

func (repo *courseRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Course, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, repository.ErrCourseNotFound
	}

	ctx, cancel := repo.opCtx(ctx)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{"user_id": uid}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list courses")
	}
	defer cursor.Close(ctx)

	courses := make([]*entity.Course, 0)
	for cursor.Next(ctx) {
		var courseM model.CourseModel
		if err := cursor.Decode(&courseM); err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode course")
		}
		courses = append(courses, courseM.ToDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to iterate courses")
	}

	return courses, nil
}

func (repo *courseRepository) Update(ctx context.Context, course *entity.Course) error {
	filter, err := ownerFilter(course.UserID, course.ID)
	if err != nil {
		return repository.ErrCourseNotFound
	}

	ctx, cancel := repo.opCtx(ctx)
	defer cancel()

	course.UpdatedAt = time.Now().UTC()

	update := bson.M{"$set": bson.M{
		"name":       course.Name,
		"code":       course.Code,
		"instructor": course.Instructor,
		"location":   course.Location,
		"credits":    course.Credits,
		"updated_at": course.UpdatedAt,
	}}

	result, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update course")
	}
	if result.MatchedCount == 0 {
		return repository.ErrCourseNotFound
	}

	return nil
}

func (repo *courseRepository) Delete(ctx context.Context, userID, id string) error {
	filter, err := ownerFilter(userID, id)
	if err != nil {
		return repository.ErrCourseNotFound
	}

	ctx, cancel := repo.opCtx(ctx)
	defer cancel()

	result, err := repo.coll.DeleteOne(ctx, filter)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete course")
	}
	if result.DeletedCount == 0 {
		return repository.ErrCourseNotFound
	}

	return nil
}
