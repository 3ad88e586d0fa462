package tle

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://celestrak.org/NORAD/elements/gp.php"

// maxBodyBytes caps the response size; a full constellation group is a few
// hundred KB, so anything near this is a misbehaving server.
const maxBodyBytes = 50 * 1024 * 1024

// Fetcher retrieves raw TLE data for a constellation group from CelesTrak.
type Fetcher struct {
	baseURL    string
	httpClient *http.Client
}

// NewFetcher creates a Fetcher against the given catalog base URL.
func NewFetcher(baseURL string, timeout time.Duration) *Fetcher {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Fetcher{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// GroupURL returns the full query URL for a constellation group.
func (f *Fetcher) GroupURL(group string) string {
	return fmt.Sprintf("%s?GROUP=%s&FORMAT=tle", f.baseURL, url.QueryEscape(group))
}

// Fetch performs a single HTTP GET for the group's TLE data. No retries;
// the caller decides whether a cache fallback applies.
func (f *Fetcher) Fetch(ctx context.Context, group string) ([]byte, error) {
	reqURL := f.GroupURL(group)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching TLE data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d from %s", resp.StatusCode, reqURL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	if len(body) > maxBodyBytes {
		return nil, fmt.Errorf("response from %s exceeds %d byte limit", reqURL, maxBodyBytes)
	}

	return body, nil
}
