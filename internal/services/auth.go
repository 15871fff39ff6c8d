// Package services contains the business logic behind the user-facing
// actions: authentication against the credential store and CRUD over the
// topic store.
package services

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"cybermem/internal/common"
	"cybermem/internal/models"
	"cybermem/internal/repositories/users"
)

// AuthService handles registration and login. There is no lockout, no
// rate limiting, and no salting; the credential file contract is a plain
// unsalted SHA-256 hex digest per user.
type AuthService interface {
	Register(ctx context.Context, username string, password []byte) error
	Authenticate(ctx context.Context, username string, password []byte) error
}

type authService struct {
	repo users.Repository
}

func NewAuthService(repo users.Repository) AuthService {
	return &authService{repo: repo}
}

// HashPassword returns the lowercase hex SHA-256 digest used by the
// credential file.
func HashPassword(password []byte) string {
	sum := sha256.Sum256(password)
	return hex.EncodeToString(sum[:])
}

func (s *authService) Register(ctx context.Context, username string, password []byte) error {
	if strings.TrimSpace(username) == "" {
		return common.ErrorInvalidLoginFormat
	}
	user := &models.User{Name: username, PasswordHash: HashPassword(password)}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, common.ErrorUserExists) {
			return err
		}
		return fmt.Errorf("creating user: %w", err)
	}
	return nil
}

func (s *authService) Authenticate(ctx context.Context, username string, password []byte) error {
	user, err := s.repo.GetByName(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorUnauthorized
		}
		return fmt.Errorf("loading user: %w", err)
	}
	candidate := HashPassword(password)
	if subtle.ConstantTimeCompare([]byte(user.PasswordHash), []byte(candidate)) != 1 {
		return common.ErrorUnauthorized
	}
	return nil
}
