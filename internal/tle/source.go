package tle

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/muojp/dtcorbit/internal/metrics"
)

// Source combines the Fetcher and the Cache into the fetch-or-cache
// contract: a cache entry younger than maxAge is served without touching
// the network; otherwise one fetch attempt is made, and on failure an
// existing stale entry is served as a degraded fallback.
type Source struct {
	fetcher *Fetcher
	cache   *Cache
	maxAge  time.Duration
	logger  *slog.Logger

	now func() time.Time // injectable for tests
}

// NewSource creates a Source with the given freshness window.
func NewSource(fetcher *Fetcher, cache *Cache, maxAge time.Duration, logger *slog.Logger) *Source {
	if maxAge <= 0 {
		maxAge = 24 * time.Hour
	}
	return &Source{
		fetcher: fetcher,
		cache:   cache,
		maxAge:  maxAge,
		logger:  logger,
		now:     time.Now,
	}
}

// Load returns the parsed dataset for a constellation group.
func (s *Source) Load(ctx context.Context, group string) (*Dataset, error) {
	cached, cachedAt, cacheErr := s.cache.Load(group)
	if cacheErr == nil {
		age := s.now().Sub(cachedAt)
		if age < s.maxAge {
			s.logger.Info("using cached TLE data",
				"group", group, "age_hours", age.Hours(), "cached_at", cachedAt.Format(time.RFC3339))
			metrics.RecordFetch(group, "cache-hit")
			return s.build(group, OriginCache, cachedAt, cached)
		}
	} else if !errors.Is(cacheErr, ErrNoEntry) {
		// An unreadable cache file is worth a warning but never blocks a fetch.
		s.logger.Warn("ignoring unreadable TLE cache", "group", group, "error", cacheErr)
	}

	s.logger.Info("fetching TLE data", "group", group, "url", s.fetcher.GroupURL(group))
	data, fetchErr := s.fetcher.Fetch(ctx, group)
	if fetchErr == nil {
		ts := s.now()
		if err := s.cache.Write(group, data, ts); err != nil {
			s.logger.Warn("failed to write TLE cache", "group", group, "error", err)
		}
		metrics.RecordFetch(group, "network")
		return s.build(group, OriginNetwork, ts, data)
	}

	// Fetch failed. A stale-but-present entry beats no data at all.
	if cacheErr == nil {
		s.logger.Warn("fetch failed, falling back to stale cache",
			"group", group, "cached_at", cachedAt.Format(time.RFC3339), "error", fetchErr)
		metrics.RecordFetch(group, "stale-fallback")
		return s.build(group, OriginStaleCache, cachedAt, cached)
	}

	metrics.RecordFetch(group, "error")
	return nil, fmt.Errorf("fetching TLE data for %s: %w", group, fetchErr)
}

func (s *Source) build(group string, origin Origin, fetchedAt time.Time, raw []byte) (*Dataset, error) {
	sats, err := Parse(bytes.NewReader(raw), s.logger)
	if err != nil {
		return nil, fmt.Errorf("parsing TLE data for %s: %w", group, err)
	}
	metrics.SetSatellitesParsed(group, len(sats))

	return &Dataset{
		Group:      group,
		Origin:     origin,
		FetchedAt:  fetchedAt,
		Satellites: sats,
	}, nil
}
