// Package model defines the persistence documents and their mapping to
// domain entities. Entities stay free of driver tags; these structs carry
// the bson mapping.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"planner/internal/domain/entity"
)

// UserModel is the stored form of entity.User.
type UserModel struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	FullName     string             `bson:"full_name"`
	PasswordHash string             `bson:"hashed_password"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

// ToDomain maps the stored document back to a pure domain entity.
func (m *UserModel) ToDomain() *entity.User {
	return &entity.User{
		ID:           m.ID.Hex(),
		Email:        m.Email,
		FullName:     m.FullName,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromUserDomain maps a domain entity to its stored form. A zero or invalid
// entity ID yields a zero ObjectID, letting inserts allocate a fresh one.
func FromUserDomain(user *entity.User) *UserModel {
	return &UserModel{
		ID:           objectIDOrZero(user.ID),
		Email:        user.Email,
		FullName:     user.FullName,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

func objectIDOrZero(hex string) primitive.ObjectID {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID
	}

	return id
}
