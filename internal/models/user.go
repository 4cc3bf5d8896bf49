package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an account document in the users collection.
// Email is the unique lookup key; the store assigns the id.
type User struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Email        string             `json:"email" bson:"email"`
	FirstName    string             `json:"firstName" bson:"firstName"`
	LastName     string             `json:"lastName" bson:"lastName"`
	PasswordHash string             `json:"-" bson:"password"` // Hidden from JSON responses
	CreatedAt    time.Time          `json:"created_at" bson:"createdAt"`
	UpdatedAt    *time.Time         `json:"updated_at,omitempty" bson:"updatedAt,omitempty"`
}
