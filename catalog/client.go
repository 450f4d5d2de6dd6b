// Package catalog implements the WooCommerce-style REST client the bot
// publishes to. Product operations authenticate with the consumer key pair;
// media uploads use a separate username/password pair against the WordPress
// media endpoint.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	coreconfig "shopbot/core/config"
	"shopbot/core/logger"
	"log/slog"
)

const (
	apiBase   = "/wp-json/wc/v3"
	mediaBase = "/wp-json/wp/v2/media"

	defaultTimeout = 30 * time.Second
)

// Client talks to the remote catalog. All methods are safe for concurrent use.
type Client struct {
	baseURL string

	consumerKey    string
	consumerSecret string
	mediaUser      string
	mediaPassword  string

	httpc *http.Client
}

// NewClient builds a catalog client from configuration.
func NewClient(cfg coreconfig.CatalogConfig) *Client {
	return &Client{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		consumerKey:    cfg.ConsumerKey,
		consumerSecret: cfg.ConsumerSecret,
		mediaUser:      cfg.MediaUser,
		mediaPassword:  cfg.MediaPassword,
		httpc: &http.Client{
			Timeout: defaultTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        16,
				MaxIdleConnsPerHost: 8,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// doJSON performs an authenticated JSON request against the products API and
// decodes the response body into out (when out is non-nil). The raw status
// code is always returned so callers can apply their own policy.
func (c *Client) doJSON(ctx context.Context, op, method, path string, query url.Values, in, out any) (int, error) {
	start := time.Now()

	u := c.baseURL + apiBase + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return 0, fmt.Errorf("catalog: %s: encode request: %w", op, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return 0, fmt.Errorf("catalog: %s: build request: %w", op, err)
	}
	req.SetBasicAuth(c.consumerKey, c.consumerSecret)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		logger.Error(ctx, "catalog", op,
			slog.String("op", op),
			slog.String("err", err.Error()),
			slog.Duration("duration", logger.Took(start)),
		)
		return 0, fmt.Errorf("catalog: %s: %w", op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return resp.StatusCode, fmt.Errorf("catalog: %s: read response: %w", op, err)
	}

	logger.Debug(ctx, "catalog", op,
		slog.String("op", op),
		slog.Int("http_code", resp.StatusCode),
		slog.Duration("duration", logger.Took(start)),
	)

	if out != nil && len(raw) > 0 && resp.StatusCode < 300 {
		if err := json.Unmarshal(raw, out); err != nil {
			return resp.StatusCode, fmt.Errorf("catalog: %s: decode response: %w", op, err)
		}
	}

	if resp.StatusCode >= 300 {
		return resp.StatusCode, newRequestError(op, resp.StatusCode, raw)
	}
	return resp.StatusCode, nil
}
