package middleware

import (
	"net/http"
	"strings"

	"github.com/anonto42/picture-pink/backend/internal/models"
	"github.com/anonto42/picture-pink/backend/internal/repositories"
	"github.com/anonto42/picture-pink/backend/internal/response"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const userContextKey = "user"

// Auth verifies the bearer token and resolves its embedded identifier
// against the user store on every request. A user that no longer exists
// fails the request even when the signature still verifies; deleting the
// user record is the only revocation mechanism.
func Auth(users repositories.UserRepository, jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				return response.Error(c, http.StatusUnauthorized, "Unauthorized, no token provided")
			}
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")

			claims := &models.TokenClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !token.Valid {
				return response.Error(c, http.StatusUnauthorized, "Unauthorized, invalid token")
			}

			user, err := users.GetUserByID(c.Request().Context(), claims.ID)
			if err != nil {
				return response.Error(c, http.StatusUnauthorized, "Unauthorized, invalid token")
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// AdminOnly requires the authenticated user to carry the admin role.
// It is always composed after Auth, never standalone.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil || user.Role != models.RoleAdmin {
				return response.Error(c, http.StatusForbidden, "Access denied. Insufficient permissions.")
			}
			return next(c)
		}
	}
}

// CurrentUser returns the user attached by Auth, or nil
func CurrentUser(c echo.Context) *models.User {
	user, _ := c.Get(userContextKey).(*models.User)
	return user
}
