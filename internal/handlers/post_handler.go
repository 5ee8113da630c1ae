package handlers

import (
	"net/http"

	"github.com/anonto42/picture-pink/backend/internal/models"
	"github.com/anonto42/picture-pink/backend/internal/realtime"
	"github.com/anonto42/picture-pink/backend/internal/repositories"
	"github.com/anonto42/picture-pink/backend/internal/response"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postRepository repositories.PostRepository
	userRepository repositories.UserRepository
	notifier       realtime.Notifier
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository, userRepo repositories.UserRepository, notifier realtime.Notifier) *PostHandler {
	return &PostHandler{
		postRepository: postRepo,
		userRepository: userRepo,
		notifier:       notifier,
	}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group, auth echo.MiddlewareFunc) {
	g.GET("", h.GetPosts)
	g.GET("/user/:user_id", h.GetPostsByUser, auth)
	g.POST("", h.CreatePost, auth)
	g.PUT("/:id", h.UpdatePost, auth)
	g.DELETE("/:id", h.DeletePost, auth)
}

// GetPosts retrieves all posts with owners expanded
func (h *PostHandler) GetPosts(c echo.Context) error {
	posts, err := h.postRepository.GetPosts(c.Request().Context())
	if err != nil {
		return err
	}
	if len(posts) == 0 {
		return response.Error(c, http.StatusNotFound, "No records found!")
	}
	return response.Success(c, http.StatusOK, "Posts found", posts)
}

// GetPostsByUser retrieves one owner's posts
func (h *PostHandler) GetPostsByUser(c echo.Context) error {
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

	posts, err := h.postRepository.GetPostsByUserID(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	if len(posts) == 0 {
		return response.Error(c, http.StatusNotFound, "No records found!")
	}
	return response.Success(c, http.StatusOK, "Posts found", posts)
}

// CreatePost creates a new post owned by an existing user
func (h *PostHandler) CreatePost(c echo.Context) error {
	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "Invalid request payload")
	}

	if req.UserID == "" {
		return response.Error(c, http.StatusBadRequest, "User ID is required")
	}
	ownerID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "User ID is invalid")
	}
	if req.Title == "" {
		return response.Error(c, http.StatusBadRequest, "Title is required.")
	}
	if req.Description == "" {
		return response.Error(c, http.StatusBadRequest, "Description is required.")
	}
	if req.Image == "" {
		return response.Error(c, http.StatusBadRequest, "Image is required.")
	}

	if _, err := h.userRepository.GetUserByID(c.Request().Context(), req.UserID); err != nil {
		if err == repositories.ErrNotFound {
			return response.Error(c, http.StatusNotFound, "User not found!")
		}
		return err
	}

	post := &models.Post{
		UserID:      ownerID,
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Status:      req.Status,
		Approve:     req.Approve,
	}

	if err := h.postRepository.CreatePost(c.Request().Context(), post); err != nil {
		return err
	}

	h.notifier.Emit(realtime.EventPostCreated, post)
	return response.Success(c, http.StatusCreated, "Post created successfully", post)
}

// UpdatePost applies a partial update to a post. Fields absent from the
// payload are left untouched. Any authenticated caller reaching this
// handler can update any post, including its approve flag.
func (h *PostHandler) UpdatePost(c echo.Context) error {
	id := c.Param("id")

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "Invalid request payload")
	}

	post, err := h.postRepository.GetPostByID(c.Request().Context(), id)
	if err != nil {
		switch err {
		case repositories.ErrInvalidID:
			return response.Error(c, http.StatusBadRequest, "Post ID is invalid")
		case repositories.ErrNotFound:
			return response.Error(c, http.StatusNotFound, "Post not found!")
		}
		return err
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Description != nil {
		post.Description = *req.Description
	}
	if req.Image != nil {
		post.Image = *req.Image
	}
	if req.Status != nil {
		post.Status = *req.Status
	}
	if req.Approve != nil {
		post.Approve = *req.Approve
	}

	if err := h.postRepository.UpdatePost(c.Request().Context(), post); err != nil {
		return err
	}

	h.notifier.Emit(realtime.EventPostUpdated, post)
	return response.Success(c, http.StatusOK, "Post updated successfully", post)
}

// DeletePost deletes a post by ID
func (h *PostHandler) DeletePost(c echo.Context) error {
	id := c.Param("id")

	if err := h.postRepository.DeletePost(c.Request().Context(), id); err != nil {
		switch err {
		case repositories.ErrInvalidID:
			return response.Error(c, http.StatusNotFound, "Post is invalid")
		case repositories.ErrNotFound:
			return response.Error(c, http.StatusNotFound, "Post not found")
		}
		return err
	}

	h.notifier.Emit(realtime.EventPostDeleted, id)
	return response.Success(c, http.StatusOK, "Post deleted successfully", nil)
}
