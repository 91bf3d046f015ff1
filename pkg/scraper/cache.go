package scraper

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// PageCache persists the last character listing as JSON.
type PageCache struct {
	path string
	mu   sync.Mutex
}

// NewPageCache creates a cache stored at path.
func NewPageCache(path string) *PageCache {
	return &PageCache{path: path}
}

// Path returns the cache file location.
func (c *PageCache) Path() string {
	return c.path
}

// Load reads the cached listing. A missing file is an empty cache.
func (c *PageCache) Load() ([]CharacterLink, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := os.ReadFile(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading page cache: %w", err)
	}
	var links []CharacterLink
	if err := json.Unmarshal(data, &links); err != nil {
		return nil, fmt.Errorf("decoding page cache %s: %w", c.path, err)
	}
	return links, nil
}

// Save replaces the cached listing.
func (c *PageCache) Save(links []CharacterLink) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if links == nil {
		links = []CharacterLink{}
	}
	data, err := json.MarshalIndent(links, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding page cache: %w", err)
	}
	if dir := filepath.Dir(c.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating cache directory: %w", err)
		}
	}
	if err := os.WriteFile(c.path, data, 0644); err != nil {
		return fmt.Errorf("writing page cache: %w", err)
	}
	return nil
}
