// Copyright 2025 Shradaya
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package source

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/Shradaya/chat-with-youtube-video/core"
)

// allowedHosts are the video page hosts a remote reference may use.
var allowedHosts = map[string]bool{
	"youtube.com":              true,
	"www.youtube.com":          true,
	"m.youtube.com":            true,
	"youtu.be":                 true,
	"www.youtu.be":             true,
	"m.youtu.be":               true,
	"youtube-nocookie.com":     true,
	"www.youtube-nocookie.com": true,
	"m.youtube-nocookie.com":   true,
}

// idPathPrefixes are path forms that carry the video id as the following
// segment on full youtube hosts.
var idPathPrefixes = []string{"embed", "shorts", "live", "v", "e"}

// Resolver validates and normalizes source references into canonical
// core.Source identities.
type Resolver struct {
	client *http.Client
	logger *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithHTTPClient sets the client used for the title page fetch.
func WithHTTPClient(client *http.Client) Option {
	return func(r *Resolver) {
		if client != nil {
			r.client = client
		}
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewResolver creates a resolver with a short default HTTP timeout.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		client: &http.Client{Timeout: 10 * time.Second},
		logger: slog.Default().With("component", "resolver"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ResolveURL validates a video URL and resolves it into a source identity.
// The title is read from the video page; when the page cannot be fetched or
// carries no title the video id stands in, never failing the resolution.
func (r *Resolver) ResolveURL(ctx context.Context, rawURL string) (core.Source, error) {
	id, err := ExtractVideoID(rawURL)
	if err != nil {
		return core.Source{}, err
	}

	title := r.fetchTitle(ctx, rawURL)
	if title == "" {
		r.logger.Warn("could not extract page title, using video id", "id", id)
		title = id
	}

	return core.Source{ID: id, Title: title}, nil
}

// ResolveFile resolves an uploaded audio file into a local source identity.
// The id is derived from the file contents, so uploading the same file twice
// yields the same source.
func (r *Resolver) ResolveFile(path string) (core.Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return core.Source{}, fmt.Errorf("%w: %w", core.ErrInvalidSource, err)
	}

	return core.Source{
		ID:        core.IDFromContent(data),
		Title:     filepath.Base(path),
		Local:     true,
		AudioPath: path,
	}, nil
}

// ExtractVideoID extracts the video identifier from a URL on one of the
// allowed hosts. Returns core.ErrInvalidSource for other hosts or when no
// identifier can be found.
func ExtractVideoID(rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", fmt.Errorf("%w: %w", core.ErrInvalidSource, err)
	}

	host := strings.ToLower(u.Hostname())
	if !allowedHosts[host] {
		return "", fmt.Errorf("%w: unsupported host %q", core.ErrInvalidSource, host)
	}

	segments := splitPath(u.Path)

	// Short links carry the id as the only path segment.
	if strings.HasSuffix(host, "youtu.be") {
		if len(segments) > 0 && segments[0] != "" {
			return segments[0], nil
		}
		return "", fmt.Errorf("%w: no video id in %q", core.ErrInvalidSource, rawURL)
	}

	if v := u.Query().Get("v"); v != "" {
		return v, nil
	}

	if len(segments) >= 2 {
		for _, prefix := range idPathPrefixes {
			if segments[0] == prefix && segments[1] != "" {
				return segments[1], nil
			}
		}
	}

	return "", fmt.Errorf("%w: no video id in %q", core.ErrInvalidSource, rawURL)
}

// ExtractURL finds the first token in free text that parses as an allowed
// video URL. Used by the chat loop to pick URLs out of user messages.
func ExtractURL(text string) (string, bool) {
	for _, field := range strings.Fields(text) {
		candidate := strings.Trim(field, "<>()[],;")
		if !strings.Contains(candidate, "://") {
			if strings.Contains(candidate, "youtu") {
				candidate = "https://" + candidate
			} else {
				continue
			}
		}
		if _, err := ExtractVideoID(candidate); err == nil {
			return candidate, true
		}
	}
	return "", false
}

// fetchTitle retrieves the video page and extracts the <title> element.
// Returns "" on any failure; the caller substitutes a default.
func (r *Resolver) fetchTitle(ctx context.Context, pageURL string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return ""
	}

	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Debug("title page fetch failed", "url", pageURL, "err", err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		r.logger.Debug("title page fetch returned non-200", "url", pageURL, "status", resp.StatusCode)
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		r.logger.Debug("title page parse failed", "url", pageURL, "err", err)
		return ""
	}

	return strings.TrimSpace(doc.Find("title").First().Text())
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
