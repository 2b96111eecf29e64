package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"sport-predict/internal/models"
	"sport-predict/internal/repository"
)

// ErrInvalidCredentials is returned for an unknown user or a wrong password
var ErrInvalidCredentials = errors.New("invalid username or password")

// UserStore is the lookup surface the auth service needs
type UserStore interface {
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
}

// Hasher verifies a password against its stored hash
type Hasher interface {
	Compare(password, hash string) bool
}

// TokenIssuer signs session tokens
type TokenIssuer interface {
	GenerateToken(userID uint, username string) (string, error)
}

// AuthService handles authentication business logic
type AuthService struct {
	users  UserStore
	hasher Hasher
	tokens TokenIssuer
}

// NewAuthService creates a new AuthService
func NewAuthService(users UserStore, hasher Hasher, tokens TokenIssuer) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens}
}

// Login verifies credentials and issues a token for the user
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", fmt.Errorf("database error: %w", err)
	}

	if !s.hasher.Compare(password, user.PasswordHash) {
		log.Printf("[Auth] Failed login for user %d", user.ID)
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, "", err
	}

	log.Printf("[Auth] User logged in: %s (ID: %d)", user.Username, user.ID)
	return user, token, nil
}

// GetUserByID retrieves a user by their ID
func (s *AuthService) GetUserByID(ctx context.Context, userID uint) (*models.User, error) {
	return s.users.GetUserByID(ctx, userID)
}
