package handlers

import (
	"net/http"

	"github.com/anonto42/picture-pink/backend/internal/models"
	"github.com/anonto42/picture-pink/backend/internal/realtime"
	"github.com/anonto42/picture-pink/backend/internal/repositories"
	"github.com/anonto42/picture-pink/backend/internal/response"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

// UserHandler handles HTTP requests related to users
type UserHandler struct {
	userRepository repositories.UserRepository
	notifier       realtime.Notifier
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository, notifier realtime.Notifier) *UserHandler {
	return &UserHandler{
		userRepository: userRepo,
		notifier:       notifier,
	}
}

// RegisterUserRoutes registers user-related routes
func (h *UserHandler) RegisterUserRoutes(g *echo.Group, auth, admin echo.MiddlewareFunc) {
	g.GET("", h.GetUsers)
	g.GET("/:id", h.GetUser)
	g.PUT("/:id", h.UpdateUser, auth)
	g.DELETE("/:id", h.DeleteUser, auth, admin)
}

// GetUsers retrieves all users
func (h *UserHandler) GetUsers(c echo.Context) error {
	users, err := h.userRepository.GetUsers(c.Request().Context())
	if err != nil {
		return err
	}
	if len(users) == 0 {
		return response.Error(c, http.StatusNotFound, "No records found!")
	}
	return response.Success(c, http.StatusOK, "Users found", users)
}

// GetUser retrieves a user by ID
func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.userRepository.GetUserByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		switch err {
		case repositories.ErrInvalidID:
			return response.Error(c, http.StatusNotFound, "User ID is invalid")
		case repositories.ErrNotFound:
			return response.Error(c, http.StatusNotFound, "User not found")
		}
		return err
	}
	return response.Success(c, http.StatusOK, "Users found", user)
}

// UpdateUser applies a partial update to a user
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id := c.Param("id")

	var req models.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "Invalid request payload")
	}

	user, err := h.userRepository.GetUserByID(c.Request().Context(), id)
	if err != nil {
		switch err {
		case repositories.ErrInvalidID:
			return response.Error(c, http.StatusNotFound, "User ID is invalid")
		case repositories.ErrNotFound:
			return response.Error(c, http.StatusNotFound, "User not found")
		}
		return err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}

	if req.Email != nil && *req.Email != "" {
		// Uniqueness check excludes the user being updated
		_, err := h.userRepository.GetUserByEmailInsensitive(c.Request().Context(), *req.Email, &user.ID)
		if err == nil {
			return response.Error(c, http.StatusConflict, "Email already exists")
		}
		if err != repositories.ErrNotFound {
			return err
		}
		user.Email = *req.Email
	}

	if req.ProfileImage != nil {
		user.ProfileImage = *req.ProfileImage
	}

	if req.Password != nil {
		switch {
		case len(*req.Password) == 0:
			// empty password keeps the current hash
		case len(*req.Password) < 6:
			return response.Error(c, http.StatusUnprocessableEntity, "Password should be at least 6 characters long.")
		default:
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			user.Password = string(hashedPassword)
		}
	}

	if err := h.userRepository.UpdateUser(c.Request().Context(), user); err != nil {
		return err
	}

	h.notifier.Emit(realtime.EventUserUpdated, user)
	return response.Success(c, http.StatusOK, "User updated successfully", user)
}

// DeleteUser removes a user account
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id := c.Param("id")

	_, err := h.userRepository.DeleteUser(c.Request().Context(), id)
	if err != nil {
		if err == repositories.ErrInvalidID || err == repositories.ErrNotFound {
			return response.Error(c, http.StatusNotFound, "User not found")
		}
		return err
	}

	h.notifier.Emit(realtime.EventUserDeleted, id)
	return response.Success(c, http.StatusOK, "User deleted successfully", nil)
}
