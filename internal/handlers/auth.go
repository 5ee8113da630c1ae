package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/anonto42/picture-pink/backend/internal/models"
	"github.com/anonto42/picture-pink/backend/internal/realtime"
	"github.com/anonto42/picture-pink/backend/internal/repositories"
	"github.com/anonto42/picture-pink/backend/internal/response"
	"github.com/anonto42/picture-pink/backend/validators"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	userRepository repositories.UserRepository
	notifier       realtime.Notifier
	jwtSecret      string
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userRepo repositories.UserRepository, notifier realtime.Notifier, jwtSecret string) *AuthHandler {
	return &AuthHandler{
		userRepository: userRepo,
		notifier:       notifier,
		jwtSecret:      jwtSecret,
	}
}

// RegisterAuthRoutes registers authentication-related routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/signup", h.Signup)
	g.POST("/signin", h.SignIn)
}

// Signup handles account creation with email and password
func (h *AuthHandler) Signup(c echo.Context) error {
	var req models.SignupRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "Invalid request payload")
	}

	if h.jwtSecret == "" {
		return response.Error(c, http.StatusInternalServerError, "JWT secret not configured")
	}

	if !validators.IsValidEmail(req.Email) {
		return response.Error(c, http.StatusUnprocessableEntity, "Invalid email address.")
	}

	if len(req.Password) < 6 {
		return response.Error(c, http.StatusUnprocessableEntity, "Password should be at least 6 characters long.")
	}

	// Email uniqueness is case-insensitive
	_, err := h.userRepository.GetUserByEmailInsensitive(c.Request().Context(), req.Email, nil)
	if err == nil {
		return response.Error(c, http.StatusConflict, "Email is already in use.")
	}
	if err != repositories.ErrNotFound {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		Role:         models.RoleUser,
		ProfileImage: req.ProfileImage,
		Password:     string(hashedPassword),
	}
	if user.ProfileImage == "" {
		user.ProfileImage = models.DefaultProfileImage
	}

	if err := h.userRepository.CreateUser(c.Request().Context(), user); err != nil {
		return err
	}

	token, err := h.generateToken(user)
	if err != nil {
		return err
	}
	user.Token = token
	if err := h.userRepository.UpdateUser(c.Request().Context(), user); err != nil {
		return err
	}

	h.notifier.Emit(realtime.EventUserCreated, user)
	return response.Success(c, http.StatusOK, "User registered successfully", user)
}

// SignIn issues a fresh session token for valid credentials
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req models.SigninRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "Invalid request payload")
	}

	if h.jwtSecret == "" {
		return response.Error(c, http.StatusInternalServerError, "JWT secret not configured")
	}

	user, err := h.userRepository.GetUserByEmail(c.Request().Context(), strings.ToLower(req.Email))
	if err != nil {
		if err == repositories.ErrNotFound {
			return response.Error(c, http.StatusUnauthorized, "User with this Email does not exist.")
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return response.Error(c, http.StatusUnauthorized, "Incorrect password.")
	}

	token, err := h.generateToken(user)
	if err != nil {
		return err
	}
	user.Token = token
	if err := h.userRepository.UpdateUser(c.Request().Context(), user); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, "User signed in successfully", user)
}

// generateToken mints a session token keyed by the user's identifier.
// Tokens carry no expiry: validity is store-backed, ending when the user
// record disappears.
func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := &models.TokenClaims{
		ID: user.ID.Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.jwtSecret))
}
