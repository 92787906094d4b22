package auth

import (
	"context"
	"strings"
	"time"
)

// UseCase describes authentication/registration behavior.
type UseCase interface {
	Register(ctx context.Context, email, username, password string) (User, error)
	Login(ctx context.Context, email, password string) (TokenResult, error)
}

// TokenResult is the outcome of a successful login.
type TokenResult struct {
	AccessToken string
	TokenType   string
}

type service struct {
	repo   UserRepository
	hasher PasswordHasher
	tokens TokenIssuer
}

// NewService returns the default implementation of UseCase.
func NewService(repo UserRepository, hasher PasswordHasher, tokens TokenIssuer) UseCase {
	return &service{repo: repo, hasher: hasher, tokens: tokens}
}

// Register creates an account. The pre-check on email is a fast path only;
// the users table unique constraint is what actually guarantees no duplicate
// row when two registrations race.
func (s *service) Register(ctx context.Context, email, username, password string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return User{}, ErrInvalidCredentials
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return User{}, ErrEmailTaken
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return User{}, err
	}

	user := User{
		Email:        email,
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// Login verifies credentials and issues an access token. An unknown email and
// a wrong password collapse into the same ErrInvalidCredentials so callers
// cannot enumerate accounts.
func (s *service) Login(ctx context.Context, email, password string) (TokenResult, error) {
	user, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return TokenResult{}, ErrInvalidCredentials
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return TokenResult{}, ErrInvalidCredentials
	}
	token, err := s.tokens.Issue(ctx, user)
	if err != nil {
		return TokenResult{}, err
	}
	return TokenResult{AccessToken: token, TokenType: "bearer"}, nil
}
