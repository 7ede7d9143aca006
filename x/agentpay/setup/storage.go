package setup

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrKeyNotFound is returned when a key file does not exist.
var ErrKeyNotFound = errors.New("key not found")

// KeyStorage interface abstracts key persistence.
type KeyStorage interface {
	Store(ctx context.Context, keyID string, data []byte) error
	Load(ctx context.Context, keyID string) ([]byte, error)
	Delete(ctx context.Context, keyID string) error
	List(ctx context.Context) ([]string, error)
}

// FileKeyStorage keeps one file per key id inside a directory.
type FileKeyStorage struct {
	dir string
}

var _ KeyStorage = (*FileKeyStorage)(nil)

// NewFileKeyStorage creates dir if needed.
func NewFileKeyStorage(dir string) (*FileKeyStorage, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create key directory: %w", err)
	}
	return &FileKeyStorage{dir: dir}, nil
}

func (s *FileKeyStorage) path(keyID string) (string, error) {
	if keyID == "" || strings.ContainsAny(keyID, `/\`) || keyID == "." || keyID == ".." {
		return "", fmt.Errorf("invalid key id %q", keyID)
	}
	return filepath.Join(s.dir, keyID), nil
}

// Store writes a key atomically by renaming a temp file into place.
func (s *FileKeyStorage) Store(ctx context.Context, keyID string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := s.path(keyID)
	if err != nil {
		return err
	}
	tmp := p + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, p)
}

func (s *FileKeyStorage) Load(ctx context.Context, keyID string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := s.path(keyID)
	if err != nil {
		return nil, err
	}
	bz, err := os.ReadFile(p) // #nosec G304 - path confined to the key directory
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, keyID)
	}
	return bz, err
}

func (s *FileKeyStorage) Delete(ctx context.Context, keyID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := s.path(keyID)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *FileKeyStorage) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || strings.HasSuffix(e.Name(), ".tmp") {
			continue
		}
		ids = append(ids, e.Name())
	}
	sort.Strings(ids)
	return ids, nil
}
