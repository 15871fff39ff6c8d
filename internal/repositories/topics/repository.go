// Package topics persists procedure topics in a flat JSON file keyed by
// topic name, using the legacy array-of-strings encoding on disk.
package topics

import (
	"context"

	"cybermem/internal/models"
)

type Repository interface {
	GetAll(ctx context.Context) (map[string]models.Steps, error)
	Get(ctx context.Context, name string) (models.Steps, error)
	Create(ctx context.Context, name string, steps models.Steps) error
	Update(ctx context.Context, name string, steps models.Steps) error
	Delete(ctx context.Context, name string) error
}
