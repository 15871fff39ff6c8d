// Package imagestore manages the flat directory of topic images. Each
// image topic owns exactly one PNG named after the sanitized topic name.
package imagestore

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	_ "image/jpeg" // uploads may be JPEG; they are re-encoded as PNG
)

var unsafeChars = regexp.MustCompile(`[\\/:*?"<>|]`)

// SanitizeName replaces filesystem-unsafe characters in a topic name with
// underscores. An empty result falls back to the literal "unnamed".
func SanitizeName(name string) string {
	safe := unsafeChars.ReplaceAllString(name, "_")
	if safe == "" {
		return "unnamed"
	}
	return safe
}

// Store owns a flat directory of PNG files, one per image topic.
type Store struct {
	dir string
}

// New ensures the image directory exists and returns a store over it.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Save decodes an uploaded image (PNG or JPEG) and writes it as
// <sanitized topic name>.png inside the store directory, overwriting any
// previous file of that name. It returns the stored path for embedding
// into the topic's image reference.
func (s *Store) Save(topic string, upload io.Reader) (string, error) {
	img, _, err := image.Decode(upload)
	if err != nil {
		return "", fmt.Errorf("decoding image: %w", err)
	}

	path := filepath.Join(s.dir, SanitizeName(topic)+".png")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return "", fmt.Errorf("encoding png: %w", err)
	}
	return path, nil
}

// Remove deletes a stored image file. A file that is already absent is
// not an error.
func (s *Store) Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing %s: %w", path, err)
	}
	return nil
}

// Exists reports whether the file behind an image reference is present.
func (s *Store) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
