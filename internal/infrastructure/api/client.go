// Package api is the typed gateway to the remote scheduling service. It is
// the single point of contact with the network: it builds requests, attaches
// the stored bearer token, decodes JSON responses, and normalizes non-2xx
// statuses into StatusError values. No retries and no caching happen here.
package api

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

	"github.com/rs/zerolog"

	"github.com/medagenda/console/internal/api/metrics"
	"github.com/medagenda/console/internal/core/ports"
)

// DefaultBaseURL matches the development fallback of the original deployment.
const DefaultBaseURL = "http://localhost:3100/api"

type Client struct {
	baseURL string
	http    *http.Client
	tokens  ports.TokenStore
	log     zerolog.Logger
}

// Option customises a Client at construction time.
type Option func(*Client)

// WithHTTPClient replaces the underlying transport. A zero-timeout client is
// the default: this layer enforces no timeout of its own.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets a whole-request timeout on the underlying client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

func NewClient(baseURL string, tokens ports.TokenStore, log zerolog.Logger, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		tokens:  tokens,
		log:     log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Ping issues a bare GET against the base URL. Any HTTP response, whatever
// its status, proves the upstream is reachable; only transport failures
// count as down. Used by the readiness probe.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("scheduling api unreachable: %w", err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.Body.Close()
}

// do performs one request/response cycle. A non-nil body is serialized as
// JSON; a non-nil out receives the decoded response. The stored bearer token
// is attached whenever present, regardless of whether the endpoint needs it.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, payload)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token, ok := c.tokens.Get(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.UpstreamRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(op, "transport_error").Inc()
		c.log.Error().Err(err).Str("operation", op).Str("method", method).Str("path", path).
			Msg("scheduling api request failed")
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.UpstreamRequestsTotal.WithLabelValues(op, "rejected").Inc()
		return c.decodeError(op, resp)
	}
	metrics.UpstreamRequestsTotal.WithLabelValues(op, "ok").Inc()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

// decodeError turns a non-2xx response into a StatusError, preferring the
// server's own "error" message over the generic status text.
func (c *Client) decodeError(op string, resp *http.Response) error {
	se := &StatusError{Status: resp.StatusCode, Message: genericMessage(resp.StatusCode)}

	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Error != "" {
		se.Message = envelope.Error
	}

	c.log.Debug().Str("operation", op).Int("status", se.Status).Str("message", se.Message).
		Msg("scheduling api rejected request")
	return se
}
