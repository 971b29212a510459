package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// CartSlot keeps a saved cart in one file per storage key.
type CartSlot struct {
	path string
}

// NewCartSlot creates a slot for key under dir, creating dir if needed.
func NewCartSlot(dir, key string) (*CartSlot, error) {
	if strings.TrimSpace(key) == "" {
		return nil, fmt.Errorf("cart storage key is required")
	}
	if strings.ContainsAny(key, `/\`) {
		return nil, fmt.Errorf("invalid cart storage key: %q", key)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cart directory: %w", err)
	}
	return &CartSlot{path: filepath.Join(dir, key+".json")}, nil
}

// Path returns the file backing the slot.
func (s *CartSlot) Path() string {
	return s.path
}

func (s *CartSlot) Load() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cart file: %w", err)
	}
	return data, nil
}

// Save replaces the file atomically, so a crash mid-write leaves the previous
// cart in place.
func (s *CartSlot) Save(payload []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".cart-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp cart file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write cart file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync cart file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close cart file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace cart file: %w", err)
	}
	return nil
}
