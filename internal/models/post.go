package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post visibility, toggled by the owner
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Post moderation state, set by administrators
const (
	ApprovePending    = "pending"
	ApproveApproved   = "approved"
	ApproveUnapproved = "unapproved"
)

// Post represents a user-submitted image entry stored in MongoDB
type Post struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID      primitive.ObjectID `json:"user_id" bson:"user_id"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Image       string             `json:"image" bson:"image"`
	Status      string             `json:"status" bson:"status"`
	Approve     string             `json:"approve" bson:"approve"`
	User        *User              `json:"user,omitempty" bson:"user,omitempty"` // expanded owner, list endpoints only
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	UserID      string `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Status      string `json:"status"`
	Approve     string `json:"approve"`
}

// UpdatePostRequest defines the request body for a partial post update.
// Nil fields are left untouched.
type UpdatePostRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	Status      *string `json:"status"`
	Approve     *string `json:"approve"`
}
