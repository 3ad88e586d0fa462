package tle

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ErrNoEntry is returned by Load when no cache file exists for a group.
var ErrNoEntry = errors.New("no cache entry")

// Cache stores raw TLE text on disk, one JSON envelope file per group.
type Cache struct {
	dir string
}

// envelope is the on-disk cache format: the raw fetched text plus the
// fetch timestamp, so freshness survives file copies and mtime changes.
type envelope struct {
	Group     string    `json:"group"`
	FetchedAt time.Time `json:"fetched_at"`
	Raw       string    `json:"raw"`
}

// NewCache creates a Cache that stores files in dir.
func NewCache(dir string) *Cache {
	return &Cache{dir: dir}
}

// Path returns the cache file path for a group.
func (c *Cache) Path(group string) string {
	return filepath.Join(c.dir, group+".json")
}

// Write saves raw TLE data for a group, overwriting any existing entry.
func (c *Cache) Write(group string, data []byte, ts time.Time) error {
	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return fmt.Errorf("creating cache dir: %w", err)
	}

	env := envelope{
		Group:     group,
		FetchedAt: ts.UTC(),
		Raw:       string(data),
	}
	buf, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding cache entry: %w", err)
	}

	if err := os.WriteFile(c.Path(group), buf, 0644); err != nil {
		return fmt.Errorf("writing cache file: %w", err)
	}
	return nil
}

// Load reads the cached raw TLE data and its fetch timestamp for a group.
// Returns ErrNoEntry when the file does not exist.
func (c *Cache) Load(group string) ([]byte, time.Time, error) {
	buf, err := os.ReadFile(c.Path(group))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, time.Time{}, ErrNoEntry
		}
		return nil, time.Time{}, fmt.Errorf("reading cache file: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(buf, &env); err != nil {
		return nil, time.Time{}, fmt.Errorf("decoding cache file %s: %w", c.Path(group), err)
	}

	return []byte(env.Raw), env.FetchedAt, nil
}
