// Package service holds the request-scoped business logic. Services take
// their collaborators through constructors so tests can substitute the
// store and uploader.
package service

import (
	"context"
	"fmt"
	"time"

	"bookvault/internal/apperr"
	"bookvault/internal/models"
	"bookvault/internal/store"
	"bookvault/internal/util"
)

// AuthService orchestrates registration, login and identity resolution.
type AuthService struct {
	users      store.UserStore
	jwtSecret  string
	tokenTTL   time.Duration
	bcryptCost int
}

func NewAuthService(users store.UserStore, jwtSecret string, ttlHours, bcryptCost int) *AuthService {
	if ttlHours <= 0 {
		ttlHours = 24
	}
	return &AuthService{
		users:      users,
		jwtSecret:  jwtSecret,
		tokenTTL:   time.Duration(ttlHours) * time.Hour,
		bcryptCost: bcryptCost,
	}
}

// Register creates a new account. The email must not be taken; the
// password hash never appears in the returned user.
func (s *AuthService) Register(ctx context.Context, email, password string) (*models.User, error) {
	existing, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrPersistence, err)
	}
	if existing != nil {
		return nil, apperr.ErrDuplicateEmail
	}

	hash, err := util.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrPersistence, err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.InsertUser(ctx, user); err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrPersistence, err)
	}

	return user, nil
}

// Login verifies the credentials and issues a session token. A missing
// account and a wrong password are deliberately indistinguishable.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", apperr.ErrPersistence, err)
	}
	if user == nil {
		return "", nil, apperr.ErrInvalidCredentials
	}

	if !util.CheckPassword(password, user.PasswordHash) {
		return "", nil, apperr.ErrInvalidCredentials
	}

	token, err := util.GenerateToken(s.jwtSecret, user.ID, user.Email, s.tokenTTL)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", apperr.ErrPersistence, err)
	}

	return token, user, nil
}

// ResolveIdentity loads the user behind a validated token subject. The
// account may have disappeared between issuance and use.
func (s *AuthService) ResolveIdentity(ctx context.Context, id string) (*models.User, error) {
	user, err := s.users.FindUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrPersistence, err)
	}
	if user == nil {
		return nil, apperr.ErrUnknownIdentity
	}
	return user, nil
}

// JWTSecret exposes the signing secret for the auth middleware.
func (s *AuthService) JWTSecret() string {
	return s.jwtSecret
}
