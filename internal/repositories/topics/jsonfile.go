package topics

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

// JSONFileRepository stores the complete topic mapping in a single JSON
// file of the legacy form {topic name: []string}. Like the credential
// store, it rereads the file on every operation and rewrites it wholesale
// on every mutation; there are no partial updates.
type JSONFileRepository struct {
	mu   sync.Mutex
	path string
}

func NewJSONFileRepository(path string) *JSONFileRepository {
	return &JSONFileRepository{path: path}
}

// load returns the raw legacy mapping. An absent or malformed file yields
// an empty mapping.
func (r *JSONFileRepository) load() map[string][]string {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return map[string][]string{}
	}
	m := make(map[string][]string)
	if err := json.Unmarshal(data, &m); err != nil {
		return map[string][]string{}
	}
	return m
}

func (r *JSONFileRepository) persist(m map[string][]string) error {
	data, err := json.MarshalIndent(m, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding topics: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".topics-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing topics: %w", err)
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

func (r *JSONFileRepository) GetAll(ctx context.Context) (map[string]models.Steps, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw := r.load()
	out := make(map[string]models.Steps, len(raw))
	for name, steps := range raw {
		out[name] = models.StepsFromLegacy(steps)
	}
	return out, nil
}

func (r *JSONFileRepository) Get(ctx context.Context, name string) (models.Steps, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, ok := r.load()[name]
	if !ok {
		return models.Steps{}, common.ErrorNotFound
	}
	return models.StepsFromLegacy(raw), nil
}

func (r *JSONFileRepository) Create(ctx context.Context, name string, steps models.Steps) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m := r.load()
	if _, ok := m[name]; ok {
		return common.ErrorTopicExists
	}
	m[name] = steps.Legacy()
	return r.persist(m)
}

func (r *JSONFileRepository) Update(ctx context.Context, name string, steps models.Steps) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m := r.load()
	if _, ok := m[name]; !ok {
		return common.ErrorNotFound
	}
	m[name] = steps.Legacy()
	return r.persist(m)
}

func (r *JSONFileRepository) Delete(ctx context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m := r.load()
	if _, ok := m[name]; !ok {
		return common.ErrorNotFound
	}
	delete(m, name)
	return r.persist(m)
}
