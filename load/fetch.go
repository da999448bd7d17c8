/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package load downloads token exports from a GitHub storage repository.
package load

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"bennypowers.dev/colgen/internal/version"
)

const (
	// DefaultTimeout is the maximum time to wait for a network fetch.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxSize is the maximum allowed response size (10 MB).
	DefaultMaxSize int64 = 10 * 1024 * 1024

	// RawBaseURL serves raw file contents from GitHub repositories.
	RawBaseURL = "https://raw.githubusercontent.com"

	// TokensFile is the export file name inside a project folder.
	TokensFile = "tokens.json"
)

// ErrInvalidResponse indicates a download that returned no token data.
var ErrInvalidResponse = errors.New("invalid JSON response")

// Source locates a project's token export in a storage repository.
type Source struct {
	// Repo is the "owner/name" of the storage repository.
	Repo string

	// Branch is the branch holding the export.
	Branch string

	// Folder is the directory holding tokens.json.
	Folder string
}

// URL returns the raw download URL for the export under baseURL.
func (s Source) URL(baseURL string) string {
	return strings.Join([]string{strings.TrimSuffix(baseURL, "/"), s.Repo, s.Branch, s.Folder, TokensFile}, "/")
}

// Fetcher fetches content from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// HTTPFetcher fetches content over HTTP with size limiting and GitHub
// token authentication.
type HTTPFetcher struct {
	maxSize int64
	token   string
	client  *http.Client
}

// NewHTTPFetcher creates an HTTPFetcher with the given maximum response size.
// An empty token sends no Authorization header.
func NewHTTPFetcher(maxSize int64, token string) *HTTPFetcher {
	return &HTTPFetcher{
		maxSize: maxSize,
		token:   token,
		client:  &http.Client{},
	}
}

// Fetch fetches content from the given URL.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request for %s: %w", url, err)
	}

	req.Header.Set("User-Agent", "colgen/"+version.Get())
	req.Header.Set("Accept", "application/vnd.github.v3.raw")
	if f.token != "" {
		req.Header.Set("Authorization", "token "+f.token)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("timeout fetching %s: %w", url, err)
		}
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: %s", url, resp.Status)
	}

	limitedReader := io.LimitReader(resp.Body, f.maxSize+1)
	content, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %w", url, err)
	}

	if int64(len(content)) > f.maxSize {
		return nil, fmt.Errorf("response from %s exceeds maximum size of %d bytes", url, f.maxSize)
	}

	return content, nil
}

// FetchTokens downloads a token export and rejects empty bodies and
// "404: Not Found" pages served with a success status.
func FetchTokens(ctx context.Context, f Fetcher, url string) ([]byte, error) {
	content, err := f.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 || bytes.HasPrefix(trimmed, []byte("404")) {
		return nil, fmt.Errorf("%w from %s: %q", ErrInvalidResponse, url, truncate(string(trimmed), 40))
	}
	return content, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
