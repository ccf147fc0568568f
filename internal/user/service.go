package user

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrNotFound is returned by the store when no user matches.
	ErrNotFound = errors.New("user not found")

	// ErrUsernameTaken is returned when registering a username that
	// already exists (store-level unique constraint).
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidCredentials is returned on any sign-in failure. It is
	// deliberately the same for an unknown username and a wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=user
type Repository interface {
	CreateUser(ctx context.Context, u *User) error
	GetUserByUsername(ctx context.Context, username string) (*User, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type RegisterParams struct {
	Username string
	Email    string
	Password string
}

// Register hashes the password and persists a new user. Returns
// ErrUsernameTaken when the username is already in use; nothing is
// persisted in that case.
func (s *Service) Register(ctx context.Context, params RegisterParams) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	u := &User{
		Username:     params.Username,
		Email:        params.Email,
		PasswordHash: string(hash),
	}
	if err := s.repo.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

// Authenticate resolves a username/password pair to a user. Both lookup
// misses and hash mismatches yield ErrInvalidCredentials so a caller
// cannot learn whether the username exists.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*User, error) {
	u, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}

		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}
