package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"planner/internal/domain/entity"
)

// CourseModel is the stored form of entity.Course.
type CourseModel struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	UserID     primitive.ObjectID `bson:"user_id"`
	Name       string             `bson:"name"`
	Code       string             `bson:"code"`
	Instructor string             `bson:"instructor"`
	Location   string             `bson:"location"`
	Credits    int                `bson:"credits"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

func (m *CourseModel) ToDomain() *entity.Course {
	return &entity.Course{
		ID:         m.ID.Hex(),
		UserID:     m.UserID.Hex(),
		Name:       m.Name,
		Code:       m.Code,
		Instructor: m.Instructor,
		Location:   m.Location,
		Credits:    m.Credits,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func FromCourseDomain(course *entity.Course) *CourseModel {
	return &CourseModel{
		ID:         objectIDOrZero(course.ID),
		UserID:     objectIDOrZero(course.UserID),
		Name:       course.Name,
		Code:       course.Code,
		Instructor: course.Instructor,
		Location:   course.Location,
		Credits:    course.Credits,
		CreatedAt:  course.CreatedAt,
		UpdatedAt:  course.UpdatedAt,
	}
}
