package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// DefaultProfileImage is assigned when a user signs up without one.
const DefaultProfileImage = "https://images.vexels.com/content/147101/preview/instagram-profile-button-68a534.png"

// User represents an account stored in MongoDB
type User struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Email        string             `json:"email" bson:"email"`
	Role         string             `json:"role" bson:"role"`
	ProfileImage string             `json:"profile_image" bson:"profile_image"`
	Password     string             `json:"-" bson:"password"` // Store hashed password, ignore for JSON serialization
	Token        string             `json:"token,omitempty" bson:"token,omitempty"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at"`
}

// SignupRequest defines the request body for account creation
type SignupRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	ProfileImage string `json:"profile_image"`
	Password     string `json:"password"`
}

// SigninRequest defines the request body for issuing a session token
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest defines the request body for a partial user update.
// Nil fields are left untouched.
type UpdateUserRequest struct {
	Name         *string `json:"name"`
	Email        *string `json:"email"`
	ProfileImage *string `json:"profile_image"`
	Password     *string `json:"password"`
}

// TokenClaims are the session token claims, keyed by the user's identifier
type TokenClaims struct {
	ID string `json:"id"`
	jwt.RegisteredClaims
}
