package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockUserRepository struct {
	createFunc     func(ctx context.Context, user *User) error
	getByEmailFunc func(ctx context.Context, email string) (User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, user *User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	user.ID = 1
	return nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (User, error) {
	if m.getByEmailFunc != nil {
		return m.getByEmailFunc(ctx, email)
	}
	return User{}, ErrNotFound
}

type staticIssuer struct {
	token string
	err   error
}

func (s staticIssuer) Issue(_ context.Context, _ User) (string, error) {
	return s.token, s.err
}

func TestRegister_HashesPassword(t *testing.T) {
	repo := &mockUserRepository{}
	svc := NewService(repo, NewBcryptHasher(), staticIssuer{token: "t"})

	user, err := svc.Register(context.Background(), "A@X.com", "a", "secret123")
	require.NoError(t, err)

	assert.Equal(t, "a@x.com", user.Email, "email must be normalized")
	assert.Equal(t, int64(1), user.ID)
	assert.NotEqual(t, "secret123", user.PasswordHash, "plaintext must never be stored")
	assert.True(t, NewBcryptHasher().Verify("secret123", user.PasswordHash))
}

func TestRegister_DuplicateEmailPreCheck(t *testing.T) {
	repo := &mockUserRepository{
		getByEmailFunc: func(_ context.Context, _ string) (User, error) {
			return User{ID: 7, Email: "a@x.com"}, nil
		},
		createFunc: func(_ context.Context, _ *User) error {
			t.Fatal("Create must not be called when the email is taken")
			return nil
		},
	}
	svc := NewService(repo, NewBcryptHasher(), staticIssuer{token: "t"})

	_, err := svc.Register(context.Background(), "a@x.com", "a", "secret123")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_DuplicateEmailConstraintFallback(t *testing.T) {
	// The pre-check passes (no row yet) but the insert loses the race and the
	// unique constraint fires.
	repo := &mockUserRepository{
		createFunc: func(_ context.Context, _ *User) error {
			return ErrEmailTaken
		},
	}
	svc := NewService(repo, NewBcryptHasher(), staticIssuer{token: "t"})

	_, err := svc.Register(context.Background(), "a@x.com", "a", "secret123")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_EmptyInput(t *testing.T) {
	svc := NewService(&mockUserRepository{}, NewBcryptHasher(), staticIssuer{token: "t"})

	_, err := svc.Register(context.Background(), "", "a", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Register(context.Background(), "a@x.com", "a", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_Success(t *testing.T) {
	hasher := NewBcryptHasher()
	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)

	repo := &mockUserRepository{
		getByEmailFunc: func(_ context.Context, email string) (User, error) {
			assert.Equal(t, "a@x.com", email)
			return User{ID: 1, Email: "a@x.com", PasswordHash: hash}, nil
		},
	}
	svc := NewService(repo, hasher, staticIssuer{token: "signed-token"})

	result, err := svc.Login(context.Background(), "A@X.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "signed-token", result.AccessToken)
	assert.Equal(t, "bearer", result.TokenType)
}

func TestLogin_UnknownEmailAndWrongPasswordAreIndistinguishable(t *testing.T) {
	hasher := NewBcryptHasher()
	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)

	unknown := &mockUserRepository{} // GetByEmail -> ErrNotFound
	existing := &mockUserRepository{
		getByEmailFunc: func(_ context.Context, _ string) (User, error) {
			return User{ID: 1, Email: "a@x.com", PasswordHash: hash}, nil
		},
	}

	_, errUnknown := NewService(unknown, hasher, staticIssuer{token: "t"}).
		Login(context.Background(), "nobody@x.com", "secret123")
	_, errWrongPass := NewService(existing, hasher, staticIssuer{token: "t"}).
		Login(context.Background(), "a@x.com", "wrongpassword")

	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
}

func TestLogin_IssuerFailure(t *testing.T) {
	hasher := NewBcryptHasher()
	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)

	repo := &mockUserRepository{
		getByEmailFunc: func(_ context.Context, _ string) (User, error) {
			return User{ID: 1, Email: "a@x.com", PasswordHash: hash}, nil
		},
	}
	svc := NewService(repo, hasher, staticIssuer{err: errors.New("signing failed")})

	_, err = svc.Login(context.Background(), "a@x.com", "secret123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}
