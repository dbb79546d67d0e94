package service

import (
	"context"
	"errors"

	"github.com/spec-kit/helpdesk/internal/auth"
	"github.com/spec-kit/helpdesk/internal/config"
	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/repository"
	apperrors "github.com/spec-kit/helpdesk/pkg/util"
)

// AuthService verifies credentials against the account store and issues
// access tokens.
type AuthService struct {
	users    repository.UserRepository
	tokenMgr *auth.TokenManager
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository) *AuthService {
	return &AuthService{
		users:    users,
		tokenMgr: auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
	}
}

// Login authenticates the credentials and returns a signed token. Unknown
// usernames and wrong passwords surface as the same error so callers learn
// nothing about which accounts exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", apperrors.NewInvalidCredentials()
		}
		return "", apperrors.ToDomainError(err)
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return "", apperrors.NewInvalidCredentials()
	}

	token, err := s.tokenMgr.Issue(user.ID, user.Role)
	if err != nil {
		return "", apperrors.ToDomainError(err)
	}
	return token, nil
}

// Verify exposes token verification for callers outside the HTTP middleware.
func (s *AuthService) Verify(token string) (domain.Identity, error) {
	return s.tokenMgr.Verify(token)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
