package handlers

import (
	"net/http"

	"github.com/anonto42/picture-pink/backend/internal/models"
	"github.com/anonto42/picture-pink/backend/internal/realtime"
	"github.com/anonto42/picture-pink/backend/internal/repositories"
	"github.com/anonto42/picture-pink/backend/internal/response"
	"github.com/labstack/echo/v4"
)

// SaveHandler handles favorite-marker HTTP requests
type SaveHandler struct {
	saveRepository repositories.SaveRepository
	userRepository repositories.UserRepository
	postRepository repositories.PostRepository
	notifier       realtime.Notifier
}

// NewSaveHandler creates a new SaveHandler
func NewSaveHandler(saveRepo repositories.SaveRepository, userRepo repositories.UserRepository, postRepo repositories.PostRepository, notifier realtime.Notifier) *SaveHandler {
	return &SaveHandler{
		saveRepository: saveRepo,
		userRepository: userRepo,
		postRepository: postRepo,
		notifier:       notifier,
	}
}

// RegisterSaveRoutes registers save-related routes
func (h *SaveHandler) RegisterSaveRoutes(g *echo.Group, auth echo.MiddlewareFunc) {
	g.GET("/user/:user_id", h.GetSavesByUser, auth)
	g.POST("", h.ToggleSave, auth)
}

// GetSavesByUser retrieves one user's saves with user and post expanded
func (h *SaveHandler) GetSavesByUser(c echo.Context) error {
	userID := c.Param("user_id")

	user, err := h.userRepository.GetUserByID(c.Request().Context(), userID)
	if err != nil {
		switch err {
		case repositories.ErrInvalidID:
			return response.Error(c, http.StatusBadRequest, "User ID is invalid")
		case repositories.ErrNotFound:
			return response.Error(c, http.StatusNotFound, "User not found!")
		}
		return err
	}

	saves, err := h.saveRepository.GetSavesByUserID(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	if len(saves) == 0 {
		// an empty list responds with a failure envelope but HTTP 200
		return response.Error(c, http.StatusOK, "No records found!")
	}
	return response.Success(c, http.StatusOK, "Saves found", saves)
}

// ToggleSave flips the favorite marker for a (user, post) pair: an
// existing save is deleted, otherwise a new one is created. The
// delete-then-insert sequence is not atomic; concurrent toggles for the
// same pair can race.
func (h *SaveHandler) ToggleSave(c echo.Context) error {
	var req models.ToggleSaveRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "Invalid request payload")
	}

	if req.UserID == "" {
		return response.Error(c, http.StatusBadRequest, "User ID is required")
	}
	user, err := h.userRepository.GetUserByID(c.Request().Context(), req.UserID)
	if err != nil {
		switch err {
		case repositories.ErrInvalidID:
			return response.Error(c, http.StatusBadRequest, "User ID is invalid")
		case repositories.ErrNotFound:
			return response.Error(c, http.StatusNotFound, "User not found!")
		}
		return err
	}

	if req.PostID == "" {
		return response.Error(c, http.StatusBadRequest, "Post ID is required")
	}
	post, err := h.postRepository.GetPostByID(c.Request().Context(), req.PostID)
	if err != nil {
		switch err {
		case repositories.ErrInvalidID:
			return response.Error(c, http.StatusBadRequest, "Post ID is invalid")
		case repositories.ErrNotFound:
			return response.Error(c, http.StatusNotFound, "Post not found!")
		}
		return err
	}

	deleted, err := h.saveRepository.DeleteSaveByUserAndPost(c.Request().Context(), user.ID, post.ID)
	if err == nil {
		h.notifier.Emit(realtime.EventSaveDeleted, deleted)
		return response.Success(c, http.StatusOK, "Save deleted successfully", deleted)
	}
	if err != repositories.ErrNotFound {
		return err
	}

	save := &models.Save{
		UserID: user.ID,
		PostID: post.ID,
	}
	if err := h.saveRepository.CreateSave(c.Request().Context(), save); err != nil {
		return err
	}

	h.notifier.Emit(realtime.EventSaveCreated, save)
	return response.Success(c, http.StatusCreated, "Save created successfully", save)
}
