// Package users persists registered accounts in a flat JSON credential
// file keyed by username.
package users

import (
	"context"

	"cybermem/internal/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) error
	GetByName(ctx context.Context, name string) (*models.User, error)
}
