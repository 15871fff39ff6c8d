package users

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"cybermem/internal/common"
	"cybermem/internal/models"
)

// JSONFileRepository stores the complete credential mapping
// {username: sha256-hex} in a single JSON file. The file is reread on
// every operation and rewritten wholesale on every mutation.
type JSONFileRepository struct {
	mu   sync.Mutex
	path string
}

func NewJSONFileRepository(path string) *JSONFileRepository {
	return &JSONFileRepository{path: path}
}

// load returns the credential mapping. An absent or malformed file yields
// an empty mapping, matching the legacy store contract.
func (r *JSONFileRepository) load() map[string]string {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return map[string]string{}
	}
	m := make(map[string]string)
	if err := json.Unmarshal(data, &m); err != nil {
		return map[string]string{}
	}
	return m
}

// persist rewrites the whole mapping through a temp file and rename so a
// crash mid-write cannot leave a truncated store behind.
func (r *JSONFileRepository) persist(m map[string]string) error {
	data, err := json.MarshalIndent(m, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding users: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".users-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing users: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing %s: %w", r.path, err)
	}
	return nil
}

func (r *JSONFileRepository) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m := r.load()
	if _, ok := m[user.Name]; ok {
		return common.ErrorUserExists
	}
	m[user.Name] = user.PasswordHash
	return r.persist(m)
}

func (r *JSONFileRepository) GetByName(ctx context.Context, name string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	hash, ok := r.load()[name]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &models.User{Name: name, PasswordHash: hash}, nil
}
