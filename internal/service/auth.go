package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/viddeck/viddeck/internal/domain"
)

// AuthService orchestrates the user store, password hasher, and token
// service to implement the register, login, and profile flows.
type AuthService struct {
	users  domain.UserRepository
	hasher *PasswordHasher
	tokens *TokenService
}

// NewAuthService creates a new AuthService.
func NewAuthService(users domain.UserRepository, hasher *PasswordHasher, tokens *TokenService) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens}
}

// RegisterInput carries the register request fields. Name and ID are
// optional; the store fills in defaults.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	ID       string
}

// Register hashes the password, creates the record, and issues a token
// for the new user. Hashing happens before the store is touched, so the
// slow bcrypt work never runs under the store lock.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*domain.User, string, error) {
	if in.Email == "" || in.Password == "" {
		return nil, "", fmt.Errorf("%w: email and password are required", domain.ErrInvalidInput)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		ID:           in.ID,
		Email:        in.Email,
		Name:         in.Name,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login verifies credentials and issues a fresh token. Unknown email and
// wrong password both fail with the bare ErrUnauthorized so responses
// cannot be used to enumerate registered emails.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: email and password are required", domain.ErrInvalidInput)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", domain.ErrUnauthorized
		}
		return nil, "", fmt.Errorf("get user: %w", err)
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return nil, "", fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return nil, "", domain.ErrUnauthorized
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Profile returns the record for an authenticated identity's email.
// Fails with ErrNotFound when the record no longer exists, e.g. after a
// debug clear between token issuance and use.
func (s *AuthService) Profile(ctx context.Context, email string) (*domain.User, error) {
	return s.users.GetByEmail(ctx, email)
}

// CheckEmail reports whether an account with the given email exists.
func (s *AuthService) CheckEmail(ctx context.Context, email string) (bool, error) {
	return s.users.Exists(ctx, email)
}

// Tokens exposes the token service for middleware verification.
func (s *AuthService) Tokens() *TokenService {
	return s.tokens
}
