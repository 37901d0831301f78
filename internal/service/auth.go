package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/utafrali/storefront/internal/auth"
	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/repository"
	"github.com/utafrali/storefront/pkg/errors"
)

// AuthService handles registration, login, and the refresh token lifecycle.
type AuthService struct {
	users  repository.UserRepository
	tokens repository.RefreshTokenRepository
	jwt    *auth.JWTManager
	logger *slog.Logger
}

func NewAuthService(users repository.UserRepository, tokens repository.RefreshTokenRepository, jwt *auth.JWTManager, logger *slog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, jwt: jwt, logger: logger}
}

// Register creates a new customer account and signs it in.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, *domain.TokenPair, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, errors.Internal(err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleCustomer,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	pair, err := s.issue(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	s.logger.InfoContext(ctx, "user registered", slog.String("user_id", user.ID))
	return user, pair, nil
}

// Login verifies the credentials and issues a token pair. Unknown emails and
// wrong passwords produce the same error so accounts cannot be enumerated.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, *domain.TokenPair, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, nil, errors.Unauthorized("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, errors.Unauthorized("invalid email or password")
	}

	pair, err := s.issue(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	s.logger.InfoContext(ctx, "user logged in", slog.String("user_id", user.ID))
	return user, pair, nil
}

// Refresh exchanges a valid refresh token for a new pair, rotating the old
// refresh token out.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	claims, err := s.jwt.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	ok, err := s.tokens.Validate(ctx, claims.UserID, refreshToken)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.Unauthorized("refresh token revoked")
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, errors.Unauthorized("account no longer exists")
	}

	return s.issue(ctx, user)
}

// Logout revokes the user's refresh token. Access tokens simply expire.
func (s *AuthService) Logout(ctx context.Context, userID string) error {
	return s.tokens.Revoke(ctx, userID)
}

// Me returns the account for the authenticated user ID.
func (s *AuthService) Me(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}

// ValidateAccessToken adapts the JWT manager for the auth middleware.
func (s *AuthService) ValidateAccessToken(token string) (*auth.Claims, error) {
	return s.jwt.ValidateAccessToken(token)
}

func (s *AuthService) issue(ctx context.Context, user *domain.User) (*domain.TokenPair, error) {
	pair, err := s.jwt.GenerateTokenPair(user)
	if err != nil {
		return nil, err
	}
	if err := s.tokens.Store(ctx, user.ID, pair.RefreshToken); err != nil {
		return nil, err
	}
	return pair, nil
}
