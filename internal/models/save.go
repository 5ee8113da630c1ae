package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Save represents a per-user favorite marker on a post.
// Uniqueness per (user_id, post_id) is enforced by the toggle
// operation, not by an index.
type Save struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"user_id" bson:"user_id"`
	PostID    primitive.ObjectID `json:"post_id" bson:"post_id"`
	User      *User              `json:"user,omitempty" bson:"user,omitempty"` // expanded, list endpoint only
	Post      *Post              `json:"post,omitempty" bson:"post,omitempty"` // expanded, list endpoint only
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

// ToggleSaveRequest defines the request body for the favorite toggle
type ToggleSaveRequest struct {
	UserID string `json:"user_id"`
	PostID string `json:"post_id"`
}
