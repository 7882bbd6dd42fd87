package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	appAuth "github.com/intered/portal/internal/app/auth"
	"github.com/intered/portal/internal/app/models"
	"github.com/intered/portal/internal/app/models/dto"
	"github.com/intered/portal/internal/app/repositories"
	"github.com/intered/portal/internal/pkg/apperrors"
	"github.com/intered/portal/internal/pkg/auth"
)

// AuthService handles authentication operations
type AuthService struct {
	userRepo   repositories.UserStore
	hasher     *auth.PasswordHasher
	sessions   *appAuth.SessionManager
	authz      *appAuth.AuthorizationService
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService. jwtService may be nil when API
// tokens are disabled.
func NewAuthService(
	userRepo repositories.UserStore,
	hasher *auth.PasswordHasher,
	sessions *appAuth.SessionManager,
	authz *appAuth.AuthorizationService,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		hasher:     hasher,
		sessions:   sessions,
		authz:      authz,
		jwtService: jwtService,
		logger:     logger,
	}
}

// TokensEnabled reports whether bearer tokens are accepted.
func (s *AuthService) TokensEnabled() bool {
	return s.jwtService != nil
}

// VerifyCredentials returns the user when username and password match. Unknown
// users and wrong passwords both yield ErrInvalidCredentials.
func (s *AuthService) VerifyCredentials(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("error finding user: %w", err)
	}
	if user == nil {
		// Spend the same bcrypt work as a real comparison
		s.hasher.CompareDummy(password)
		return nil, apperrors.ErrInvalidCredentials
	}

	ok, err := s.hasher.Compare(user.Password, password)
	if err != nil {
		s.logger.Error().Err(err).Int64("userID", user.ID).Msg("Stored password hash is unreadable")
		return nil, apperrors.ErrInvalidCredentials
	}
	if !ok {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

// Register creates a user account. actor is the authenticated caller, or nil
// for anonymous registration.
func (s *AuthService) Register(ctx context.Context, actor *models.User, req *dto.RegisterRequest) (*models.User, error) {
	// Resolve the role the caller may grant
	role, err := s.authz.AssignableRole(actor, req.Role)
	if err != nil {
		return nil, err
	}

	// Check if username already exists
	existing, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("error checking username: %w", err)
	}
	if existing != nil {
		return nil, usernameTaken()
	}

	// Hash password
	hashedPassword, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error hashing password")
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := s.userRepo.CreateUser(ctx, &models.User{
		Username: req.Username,
		Password: hashedPassword,
		FullName: req.FullName,
		Email:    req.Email,
		Role:     role,
	})
	// Lost a race with a concurrent registration
	if errors.Is(err, repositories.ErrDuplicate) {
		return nil, usernameTaken()
	}
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info().Int64("userID", user.ID).Str("role", string(user.Role)).Msg("User registered")
	return user, nil
}

func usernameTaken() error {
	return apperrors.NewCustomError(apperrors.ErrUsernameExists, "Username already exists").WithField("username")
}

// Login verifies credentials and opens a session. It returns the user and the
// session token.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, string, error) {
	user, err := s.VerifyCredentials(ctx, req.Username, req.Password)
	if err != nil {
		return nil, "", err
	}

	// Create session
	token, err := s.sessions.Establish(ctx, user)
	if err != nil {
		s.logger.Error().Err(err).Int64("userID", user.ID).Msg("Error establishing session")
		return nil, "", err
	}

	s.logger.Info().Int64("userID", user.ID).Msg("User logged in")
	return user, token, nil
}

// Logout ends the session identified by token.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Destroy(ctx, token)
}

// IssueToken verifies credentials and returns a signed access token.
func (s *AuthService) IssueToken(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	if s.jwtService == nil {
		return nil, apperrors.NewResourceNotFoundError("API tokens are disabled")
	}

	user, err := s.VerifyCredentials(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	// Generate access token
	token, expiresIn, err := s.jwtService.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("error generating access token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(expiresIn),
	}, nil
}

// ResolveSession returns the principal of a session token, or nil.
func (s *AuthService) ResolveSession(ctx context.Context, token string) (*models.User, error) {
	return s.sessions.Resolve(ctx, token)
}

// ResolveAccessToken returns the principal of a bearer token, or nil when the
// user no longer exists.
func (s *AuthService) ResolveAccessToken(ctx context.Context, token string) (*models.User, error) {
	if s.jwtService == nil {
		return nil, apperrors.ErrTokenInvalid
	}
	userID, err := s.jwtService.ValidateToken(token)
	if err != nil {
		if errors.Is(err, auth.ErrExpiredToken) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrTokenInvalid
	}
	return s.sessions.ResolveUser(ctx, userID, "")
}
