package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/poiioq/5315-project/internal/config"
	"github.com/poiioq/5315-project/internal/logger"
	"github.com/poiioq/5315-project/internal/service"
	"github.com/poiioq/5315-project/internal/store"
	"github.com/poiioq/5315-project/models"
)

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn    func(ctx context.Context, creds models.Credentials) (models.User, error)
	loginFn       func(ctx context.Context, creds models.Credentials) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, creds models.Credentials) (models.User, error) {
	return m.registerFn(ctx, creds)
}

func (m *mockAuthService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	return m.loginFn(ctx, creds)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// newHandlerWithAuth builds a Handler wired to the given AuthService mock.
func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	svcs := &service.Services{AuthService: auth}
	return NewHandler(svcs, config.App{}, logger.Nop())
}

// injectNopLogger puts a nop logger into the request context so that
// handlers called outside the middleware chain stay quiet.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

func credsBody(t *testing.T, creds models.Credentials) string {
	t.Helper()
	b, err := json.Marshal(creds)
	require.NoError(t, err)
	return string(b)
}

var validCreds = models.Credentials{Username: "alice", Password: "secret123"}

func TestRegisterHandler_Success(t *testing.T) {
	userID := primitive.NewObjectID()
	auth := &mockAuthService{
		registerFn: func(_ context.Context, creds models.Credentials) (models.User, error) {
			return models.User{ID: userID, Username: creds.Username}, nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(credsBody(t, validCreds))))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, userID, got.ID)
	assert.Equal(t, "alice", got.Username)
	// the password hash must never appear in the response
	assert.NotContains(t, rec.Body.String(), "password_hash")
}

func TestRegisterHandler_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/register", strings.NewReader("{not json")))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterHandler_MissingFieldsEnumerated(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{}`)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got models.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Errors, 2)

	fields := []string{got.Errors[0].Field, got.Errors[1].Field}
	assert.Contains(t, fields, "username")
	assert.Contains(t, fields, "password")
}

func TestRegisterHandler_Conflict(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, _ models.Credentials) (models.User, error) {
			return models.User{}, store.ErrUsernameTaken
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(credsBody(t, validCreds))))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "username already exists")
}

func TestRegisterHandler_UnexpectedError(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, _ models.Credentials) (models.User, error) {
			return models.User{}, store.ErrExecutingStatement
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(credsBody(t, validCreds))))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	// production verbosity: no raw error detail leaks to the client
	assert.JSONEq(t, `{"message":"Internal server error"}`, rec.Body.String())
}

func TestRegisterHandler_DevelopmentExposesDetail(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, _ models.Credentials) (models.User, error) {
			return models.User{}, store.ErrExecutingStatement
		},
	}

	svcs := &service.Services{AuthService: auth}
	h := NewHandler(svcs, config.App{Environment: "development"}, logger.Nop())

	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(credsBody(t, validCreds))))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var got models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Internal server error", got.Message)
	assert.Contains(t, got.Detail, "error executing statement")
}

func TestLoginHandler_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		loginFn: func(_ context.Context, creds models.Credentials) (models.User, error) {
			return models.User{ID: primitive.NewObjectID(), Username: creds.Username}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{SignedString: signedToken}, nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(credsBody(t, validCreds))))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"token":"signed.jwt.token"}`, rec.Body.String())
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.Credentials) (models.User, error) {
			return models.User{}, service.ErrInvalidCredentials
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(credsBody(t, validCreds))))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid username/password")
}

func TestLoginHandler_EmptyCredentialsAlsoUnauthorized(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.Credentials) (models.User, error) {
			return models.User{}, service.ErrInvalidDataProvided
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{}`)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
