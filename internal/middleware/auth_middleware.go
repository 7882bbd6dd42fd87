package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/intered/portal/internal/app/models"
	"github.com/intered/portal/internal/app/models/dto"
	"github.com/intered/portal/internal/pkg/apperrors"
	"github.com/intered/portal/internal/pkg/auth"
	"github.com/intered/portal/internal/pkg/logger"
)

const (
	principalKey    = "principal"
	sessionTokenKey = "sessionToken"
	principalLoaded = "principalLoaded"
)

// PrincipalResolver turns request credentials into a user.
type PrincipalResolver interface {
	TokensEnabled() bool
	ResolveSession(ctx context.Context, token string) (*models.User, error)
	ResolveAccessToken(ctx context.Context, token string) (*models.User, error)
}

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	resolver   PrincipalResolver
	cookieName string
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(resolver PrincipalResolver, cookieName string) *AuthMiddleware {
	return &AuthMiddleware{
		resolver:   resolver,
		cookieName: cookieName,
	}
}

// CookieName returns the name of the session cookie.
func (m *AuthMiddleware) CookieName() string {
	return m.cookieName
}

// LoadPrincipal resolves the caller, if any, without requiring one.
func (m *AuthMiddleware) LoadPrincipal() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.load(c) {
			return
		}
		c.Next()
	}
}

// RequireAuthenticated rejects requests without a principal with 401.
func (m *AuthMiddleware) RequireAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.load(c) {
			return
		}
		if CurrentUser(c) == nil {
			abortUnauthenticated(c)
			return
		}
		c.Next()
	}
}

// RequireRole rejects unauthenticated requests with 401 and principals
// holding another role with 403.
func (m *AuthMiddleware) RequireRole(role models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.load(c) {
			return
		}
		user := CurrentUser(c)
		if user == nil {
			abortUnauthenticated(c)
			return
		}
		if user.Role != role {
			HandleAPIError(c, apperrors.NewCustomError(apperrors.ErrPermissionDenied, "Access denied"))
			return
		}
		c.Next()
	}
}

// load resolves the principal once per request. It reports false when the
// request was aborted.
func (m *AuthMiddleware) load(c *gin.Context) bool {
	if c.GetBool(principalLoaded) {
		return true
	}
	c.Set(principalLoaded, true)
	ctx := c.Request.Context()

	if token, err := c.Cookie(m.cookieName); err == nil && token != "" {
		c.Set(sessionTokenKey, token)
		user, err := m.resolver.ResolveSession(ctx, token)
		if err != nil {
			HandleAPIError(c, err)
			return false
		}
		if user != nil {
			m.setPrincipal(c, user)
			return true
		}
	}

	if !m.resolver.TokensEnabled() {
		return true
	}
	header := c.GetHeader("Authorization")
	if header == "" {
		return true
	}
	bearer, err := auth.ExtractBearerToken(header)
	if err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Authentication failed").
			WithDetails("Invalid token format")
		RespondError(c, http.StatusUnauthorized, detail)
		return false
	}
	user, err := m.resolver.ResolveAccessToken(ctx, bearer)
	if err != nil {
		HandleAPIError(c, err)
		return false
	}
	if user != nil {
		m.setPrincipal(c, user)
	}
	return true
}

func (m *AuthMiddleware) setPrincipal(c *gin.Context, user *models.User) {
	c.Set(principalKey, user)
	l := logger.Ctx(c.Request.Context()).With().Int64("userID", user.ID).Logger()
	c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context(), l))
}

func abortUnauthenticated(c *gin.Context) {
	HandleAPIError(c, apperrors.ErrUnauthenticated)
}

// CurrentUser returns the authenticated user, or nil.
func CurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(principalKey)
	if !exists {
		return nil
	}
	user, _ := value.(*models.User)
	return user
}

// SessionToken returns the session cookie value presented by the caller.
func SessionToken(c *gin.Context) string {
	return c.GetString(sessionTokenKey)
}
