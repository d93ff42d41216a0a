// Package metadata implements the external movie metadata provider client.
package metadata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/rankio/rankio-api/internal/api/metrics"
	"github.com/rankio/rankio-api/internal/core/domain"
	"github.com/rankio/rankio-api/internal/core/translate"
)

const defaultTimeout = 5 * time.Second

// Config captures the settings for the metadata provider.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client fetches movie metadata over HTTP and normalizes the payload
// through the translator. It never passes a partially populated movie on:
// malformed provider responses fail closed.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     zerolog.Logger
}

func NewClient(cfg Config, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// FetchMovie retrieves and normalizes the metadata for one movie id.
func (c *Client) FetchMovie(ctx context.Context, id string) (*domain.Movie, error) {
	start := time.Now()
	movie, outcome, err := c.fetch(ctx, id)
	metrics.MetadataFetchDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
	return movie, err
}

func (c *Client) fetch(ctx context.Context, id string) (*domain.Movie, string, error) {
	u := fmt.Sprintf("%s/movie/%s?api_key=%s", c.baseURL, url.PathEscape(id), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, "error", fmt.Errorf("build metadata request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "error", fmt.Errorf("fetch movie %s: %w", id, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, "not_found", domain.ErrMovieNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, "error", fmt.Errorf("fetch movie %s: provider returned %d", id, resp.StatusCode)
	}

	var payload translate.MovieMetadata
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, "malformed", fmt.Errorf("decode movie %s: %s: %w", id, err, translate.ErrMalformedPayload)
	}

	movie, err := translate.MovieFromMetadata(payload)
	if err != nil {
		if errors.Is(err, translate.ErrMalformedPayload) {
			c.log.Warn().Str("movie_id", id).Err(err).Msg("provider payload missing required fields")
			return nil, "malformed", err
		}
		return nil, "error", err
	}

	return movie, "ok", nil
}
