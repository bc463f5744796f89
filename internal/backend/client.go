// Package backend talks to the hosted backend: GoTrue for accounts and
// PostgREST for table reads.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/yuhakway/tracker/internal/metrics"
)

// Client is an HTTP client for the hosted backend.
type Client struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a Client. A zero timeout leaves the http.Client without one.
func NewClient(baseURL, anonKey string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		anonKey:    strings.TrimSpace(anonKey),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type request struct {
	op          string
	method      string
	path        string
	query       url.Values
	body        any
	accessToken string
	single      bool
}

// do sends r and decodes a 2xx body into out when out is non-nil. Non-2xx
// responses are mapped to the sentinel errors by mapError.
func (c *Client) do(ctx context.Context, r request, out any) error {
	start := time.Now()
	err := c.send(ctx, r, out)

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	metrics.BackendRequestDuration.WithLabelValues(r.op, outcome).Observe(time.Since(start).Seconds())

	if err != nil {
		c.logger.Debug("backend request failed", "operation", r.op, "error", err)
	}
	return err
}

func (c *Client) send(ctx context.Context, r request, out any) error {
	endpoint := c.baseURL + r.path
	if len(r.query) > 0 {
		endpoint += "?" + r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		payload, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", r.op, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, endpoint, body)
	if err != nil {
		return fmt.Errorf("create %s request: %w", r.op, err)
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Accept", "application/json")
	if r.single {
		req.Header.Set("Accept", "application/vnd.pgrst.object+json")
	}
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	token := r.accessToken
	if token == "" {
		token = c.anonKey
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send %s request: %w", r.op, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s response: %w", r.op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return mapError(r.op, resp.StatusCode, payload)
	}

	if out == nil || len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode %s response: %w", r.op, err)
	}
	return nil
}
