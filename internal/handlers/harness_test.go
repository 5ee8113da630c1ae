package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/anonto42/picture-pink/backend/internal/middleware"
	"github.com/anonto42/picture-pink/backend/internal/models"
	"github.com/anonto42/picture-pink/backend/internal/response"
	"github.com/anonto42/picture-pink/backend/validators"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

// testEnv wires the real handlers and middleware against in-memory fakes
type testEnv struct {
	e        *echo.Echo
	users    *memUserRepo
	posts    *memPostRepo
	saves    *memSaveRepo
	contacts *memContactRepo
	notifier *fakeNotifier
}

func newTestEnv() *testEnv {
	env := &testEnv{
		e:        echo.New(),
		users:    newMemUserRepo(),
		posts:    newMemPostRepo(),
		saves:    newMemSaveRepo(),
		contacts: newMemContactRepo(),
		notifier: &fakeNotifier{},
	}
	env.e.Validator = validators.NewValidator()
	env.e.HTTPErrorHandler = response.HTTPErrorHandler

	auth := middleware.Auth(env.users, testSecret)
	admin := middleware.AdminOnly()
	api := env.e.Group("/api")

	NewAuthHandler(env.users, env.notifier, testSecret).RegisterAuthRoutes(api.Group("/auth"))
	NewUserHandler(env.users, env.notifier).RegisterUserRoutes(api.Group("/users"), auth, admin)
	NewPostHandler(env.posts, env.users, env.notifier).RegisterPostRoutes(api.Group("/posts"), auth)
	NewSaveHandler(env.saves, env.users, env.posts, env.notifier).RegisterSaveRoutes(api.Group("/saves"), auth)
	NewContactHandler(env.contacts, env.notifier).RegisterContactRoutes(api.Group("/contacts"), auth)
	return env
}

// testEnvelope mirrors the response body with raw data for re-decoding
type testEnvelope struct {
	Success    bool            `json:"success"`
	StatusCode int             `json:"statusCode"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Error      string          `json:"error"`
}

func (env *testEnv) request(t *testing.T, method, path string, body interface{}, token string) (*httptest.ResponseRecorder, testEnvelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)

	var out testEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return rec, out
}

// seedUser stores a user directly in the fake repository
func (env *testEnv) seedUser(t *testing.T, name, email, role, password string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &models.User{
		Name:         name,
		Email:        email,
		Role:         role,
		ProfileImage: models.DefaultProfileImage,
		Password:     string(hash),
	}
	require.NoError(t, env.users.CreateUser(context.Background(), user))
	return user
}

// tokenFor mints a session token the auth middleware accepts
func (env *testEnv) tokenFor(t *testing.T, user *models.User) string {
	t.Helper()

	claims := &models.TokenClaims{ID: user.ID.Hex()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func decodeData[T any](t *testing.T, env testEnvelope) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}
