// Package cache provides the durable store that remembers previously
// supplied inputs across runs, keyed by category name.
package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Category names one of the fixed input slots the store recognizes.
type Category string

// The fixed set of categories.
const (
	CategoryResume         Category = "Resume"
	CategoryCoverLetter    Category = "Cover Letter"
	CategoryJobDescription Category = "Job description"
	CategoryRemarks        Category = "Additional prompt"
	CategoryAPIKey         Category = "API key"
)

// Categories returns all known categories in display order.
func Categories() []Category {
	return []Category{
		CategoryResume,
		CategoryCoverLetter,
		CategoryJobDescription,
		CategoryRemarks,
		CategoryAPIKey,
	}
}

// Store persists one record per category under a directory. The record key is
// the category name with whitespace normalized to underscores; the record
// value is the file content verbatim, so the format stays portable across
// runtimes.
type Store struct {
	dir string
}

// DefaultDir returns the default backing location for the store.
func DefaultDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user cache directory: %w", err)
	}
	return filepath.Join(base, "coverletter-agent"), nil
}

// Open prepares a store rooted at dir, creating the directory if needed.
func Open(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("cache directory is empty")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create cache directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the backing directory of the store.
func (s *Store) Dir() string {
	return s.dir
}

// Get looks up the stored value for a category. A missing record is not an
// error: it returns ok=false. An existing-but-empty record returns ok=true
// with an empty value.
func (s *Store) Get(category Category) (string, bool, error) {
	data, err := os.ReadFile(s.path(category))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read cached %s: %w", category, err)
	}
	return string(data), true, nil
}

// Put persists value under category, replacing any prior value. Records may
// hold the API key, so files are not group/world readable.
func (s *Store) Put(category Category, value string) error {
	if err := os.WriteFile(s.path(category), []byte(value), 0o600); err != nil {
		return fmt.Errorf("failed to write cached %s: %w", category, err)
	}
	return nil
}

// Clear removes the record for a category. Clearing an absent record is a
// no-op.
func (s *Store) Clear(category Category) error {
	if err := os.Remove(s.path(category)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear cached %s: %w", category, err)
	}
	return nil
}

// Keys reports which categories currently have a stored record.
func (s *Store) Keys() ([]Category, error) {
	var keys []Category
	for _, category := range Categories() {
		if _, err := os.Stat(s.path(category)); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to stat cached %s: %w", category, err)
		}
		keys = append(keys, category)
	}
	return keys, nil
}

// path maps a category to its record file.
func (s *Store) path(category Category) string {
	key := strings.Join(strings.Fields(string(category)), "_")
	return filepath.Join(s.dir, key+".txt")
}
