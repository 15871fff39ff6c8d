package users

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cybermem/internal/common"
	"cybermem/internal/models"
)

func newTestRepo(t *testing.T) (*JSONFileRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.json")
	return NewJSONFileRepository(path), path
}

func TestCreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo, path := newTestRepo(t)

	u := &models.User{Name: "alice", PasswordHash: "ab12"}
	require.NoError(t, repo.Create(ctx, u))

	got, err := repo.GetByName(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, u, got)

	// The file is a plain JSON object keyed by username.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	m := map[string]string{}
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, map[string]string{"alice": "ab12"}, m)
}

func TestGetByName_Missing(t *testing.T) {
	repo, _ := newTestRepo(t)
	_, err := repo.GetByName(context.Background(), "nobody")
	assert.True(t, errors.Is(err, common.ErrorNotFound))
}

func TestCreate_Duplicate(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	require.NoError(t, repo.Create(ctx, &models.User{Name: "bob", PasswordHash: "h1"}))
	err := repo.Create(ctx, &models.User{Name: "bob", PasswordHash: "h2"})
	require.True(t, errors.Is(err, common.ErrorUserExists))

	// Stored hash is left unchanged by the failed insert.
	got, err := repo.GetByName(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, "h1", got.PasswordHash)
}

func TestLoad_MalformedFile(t *testing.T) {
	ctx := context.Background()
	repo, path := newTestRepo(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	// Malformed content reads as an empty store; a new user can be added.
	_, err := repo.GetByName(ctx, "alice")
	assert.True(t, errors.Is(err, common.ErrorNotFound))
	require.NoError(t, repo.Create(ctx, &models.User{Name: "alice", PasswordHash: "h"}))
}
