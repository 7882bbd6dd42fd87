package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intered/portal/internal/app/models"
	"github.com/intered/portal/internal/app/models/dto"
	"github.com/intered/portal/internal/app/repositories"
	"github.com/intered/portal/internal/pkg/apperrors"
	"github.com/intered/portal/internal/pkg/reference"
	"github.com/intered/portal/internal/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
	validation.Register()
}

type fakeResolver struct {
	tokens   bool
	sessions map[string]*models.User
	bearer   map[string]*models.User
	err      error
}

func (f *fakeResolver) TokensEnabled() bool { return f.tokens }

func (f *fakeResolver) ResolveSession(_ context.Context, token string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.sessions[token], nil
}

func (f *fakeResolver) ResolveAccessToken(_ context.Context, token string) (*models.User, error) {
	user, ok := f.bearer[token]
	if !ok {
		return nil, apperrors.ErrTokenInvalid
	}
	return user, nil
}

type errorBody struct {
	Success bool             `json:"success"`
	Error   *dto.ErrorDetail `json:"error"`
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	return body
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   dto.ErrorCode
		field  string
	}{
		{"not found", apperrors.NewResourceNotFoundError("Student not found"), http.StatusNotFound, dto.ErrorCodeResourceNotFound, ""},
		{"username taken", apperrors.NewCustomError(apperrors.ErrUsernameExists, "Username already exists").WithField("username"), http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "username"},
		{"storage duplicate", fmt.Errorf("create user: %w", repositories.ErrDuplicate), http.StatusConflict, dto.ErrorCodeConflict, ""},
		{"generic conflict", apperrors.ErrConflict, http.StatusConflict, dto.ErrorCodeConflict, ""},
		{"bad credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, ""},
		{"unauthenticated", apperrors.ErrUnauthenticated, http.StatusUnauthorized, dto.ErrorCodeUnauthorized, ""},
		{"permission denied", apperrors.NewCustomError(apperrors.ErrPermissionDenied, "Access denied"), http.StatusForbidden, dto.ErrorCodeForbidden, ""},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, ""},
		{"role escalation", apperrors.NewCustomError(apperrors.ErrRoleNotAssignable, "nope"), http.StatusForbidden, dto.ErrorCodeForbidden, ""},
		{"self delete", apperrors.ErrCannotDeleteSelf, http.StatusForbidden, dto.ErrorCodeForbidden, ""},
		{"validation", apperrors.NewValidationError("agentId", "Agent does not exist"), http.StatusBadRequest, dto.ErrorCodeValidationFailed, "agentId"},
		{"missing reference", fmt.Errorf("insert: %w", repositories.ErrReferenceMissing), http.StatusBadRequest, dto.ErrorCodeValidationFailed, ""},
		{"unknown", errors.New("connection refused"), http.StatusInternalServerError, dto.ErrorCodeInternalServer, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			body := decodeError(t, w)
			assert.False(t, body.Success)
			assert.Equal(t, tt.code, body.Error.Code)
			assert.Equal(t, tt.field, body.Error.Field)
		})
	}
}

func TestHandleAPIErrorHidesInternalMessage(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, errors.New("pq: password authentication failed"))

	assert.NotContains(t, w.Body.String(), "password authentication")
}

func TestHandleValidationError(t *testing.T) {
	type payload struct {
		StudentID reference.Ref `json:"studentId" binding:"required"`
		Email     string        `json:"email" binding:"required,email"`
	}

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"validator issues", `{"studentId":"none","email":"x"}`, ""},
		{"single issue", `{"studentId":5,"email":"x"}`, "email"},
		{"bad reference", `{"studentId":"abc","email":"a@b.co"}`, ""},
		{"wrong type", `{"studentId":5,"email":7}`, "email"},
		{"malformed", `{"studentId":`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			var req payload
			err := c.ShouldBindJSON(&req)
			require.Error(t, err)
			HandleValidationError(c, err)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			body := decodeError(t, w)
			assert.Equal(t, dto.ErrorCodeValidationFailed, body.Error.Code)
			assert.Equal(t, tt.field, body.Error.Field)
		})
	}
}

func newAuthRouter(resolver *fakeResolver) *gin.Engine {
	m := NewAuthMiddleware(resolver, "sid")
	r := gin.New()
	ok := func(c *gin.Context) {
		name := ""
		if user := CurrentUser(c); user != nil {
			name = user.Username
		}
		c.String(http.StatusOK, name)
	}
	r.GET("/optional", m.LoadPrincipal(), ok)
	r.GET("/private", m.RequireAuthenticated(), ok)
	r.GET("/admin", m.RequireRole(models.RoleAdmin), ok)
	return r
}

func TestAuthMiddleware(t *testing.T) {
	admin := &models.User{ID: 1, Username: "root", Role: models.RoleAdmin}
	staff := &models.User{ID: 2, Username: "jdoe", Role: models.RoleStaff}
	resolver := &fakeResolver{
		tokens:   true,
		sessions: map[string]*models.User{"admin-sid": admin, "staff-sid": staff},
		bearer:   map[string]*models.User{"good": staff},
	}
	router := newAuthRouter(resolver)

	tests := []struct {
		name   string
		path   string
		cookie string
		header string
		status int
		body   string
	}{
		{name: "optional anonymous", path: "/optional", status: http.StatusOK, body: ""},
		{name: "optional with session", path: "/optional", cookie: "staff-sid", status: http.StatusOK, body: "jdoe"},
		{name: "private anonymous", path: "/private", status: http.StatusUnauthorized},
		{name: "private stale session", path: "/private", cookie: "gone", status: http.StatusUnauthorized},
		{name: "private with session", path: "/private", cookie: "staff-sid", status: http.StatusOK, body: "jdoe"},
		{name: "private with bearer", path: "/private", header: "Bearer good", status: http.StatusOK, body: "jdoe"},
		{name: "private with bad bearer", path: "/private", header: "Bearer forged", status: http.StatusUnauthorized},
		{name: "private with malformed header", path: "/private", header: "Token good", status: http.StatusUnauthorized},
		{name: "admin as staff", path: "/admin", cookie: "staff-sid", status: http.StatusForbidden},
		{name: "admin anonymous", path: "/admin", status: http.StatusUnauthorized},
		{name: "admin as admin", path: "/admin", cookie: "admin-sid", status: http.StatusOK, body: "root"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "sid", Value: tt.cookie})
			}
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, tt.body, w.Body.String())
			}
		})
	}
}

func TestAuthMiddlewareIgnoresBearerWhenTokensDisabled(t *testing.T) {
	router := newAuthRouter(&fakeResolver{bearer: map[string]*models.User{"good": {ID: 2}}})

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer good")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareStoreFailure(t *testing.T) {
	router := newAuthRouter(&fakeResolver{err: errors.New("redis down")})

	req := httptest.NewRequest(http.MethodGet, "/optional", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "any"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRequestLogger(t *testing.T) {
	var buf strings.Builder
	r := gin.New()
	r.Use(RequestLogger(zerolog.New(&buf)))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	generated := w.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, generated)
	assert.Contains(t, buf.String(), generated)
	assert.Contains(t, buf.String(), `"status":200`)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "7c9e6679-7425-40de-944b-e07fc1f90ae7")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "7c9e6679-7425-40de-944b-e07fc1f90ae7", w.Header().Get(RequestIDHeader))
}

func TestAuthGatesUseErrorCodes(t *testing.T) {
	router := newAuthRouter(&fakeResolver{
		sessions: map[string]*models.User{"staff-sid": {ID: 1, Username: "jdoe", Role: models.RoleStaff}},
	})

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, dto.ErrorCodeUnauthorized, decodeError(t, w).Error.Code)

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "staff-sid"})
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusForbidden, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, dto.ErrorCodeForbidden, body.Error.Code)
	assert.Equal(t, "Access denied", body.Error.Message)
}

func TestUsernameExistsIsAConflict(t *testing.T) {
	assert.ErrorIs(t, apperrors.ErrUsernameExists, apperrors.ErrConflict)
}
