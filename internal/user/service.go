package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/MikeMC777/caja-pos/internal/apperr"
)

// Service manages the staff accounts that sign in to the register and the
// kitchen display.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateUser
func (s *Service) CreateUser(ctx context.Context, in CreateUserRequest) (*User, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, apperr.ErrInvalidInput.With("username and password are required")
	}
	role := Role(strings.ToLower(strings.TrimSpace(in.Role)))
	if role == "" {
		role = RoleCashier
	}
	if !role.Valid() {
		return nil, apperr.ErrInvalidInput.With("invalid role %q", in.Role)
	}
	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash error: %w", err)
	}
	u := &User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        strings.TrimSpace(in.Email),
		Role:         role,
		PasswordHash: hash,
		Active:       true,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, ErrAlreadyExist) {
			return nil, apperr.ErrConflict.With("username %q already exists", username)
		}
		return nil, fmt.Errorf("create error: %w", err)
	}
	return u, nil
}

// Authenticate returns the active user matching the credentials, or
// ok=false when they do not match.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*User, bool, error) {
	if username == "" || password == "" {
		return nil, false, nil
	}
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("auth error: %w", err)
	}
	if !u.Active || !CheckPassword(u.PasswordHash, password) {
		return nil, false, nil
	}
	return u, true, nil
}

// EnsureAdmin creates the seed administrator if the username is free.
// It reports whether a user was created.
func (s *Service) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	if username == "" || password == "" {
		return false, nil
	}
	if _, err := s.repo.GetByUsername(ctx, username); err == nil {
		return false, nil
	} else if !errors.Is(err, ErrNotFound) {
		return false, err
	}
	if _, err := s.CreateUser(ctx, CreateUserRequest{Username: username, Password: password, Role: string(RoleAdmin)}); err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
