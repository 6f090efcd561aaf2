// Package rest implements typed HTTP call wrappers over the remote
// rentmanager API. It owns URL composition, bearer token injection, response
// unwrapping, and the mapping of HTTP failures onto domain errors; it holds
// no state of its own.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/KarinaRedondo/rentmanager-frontend-sub001/internal/config"
	"github.com/KarinaRedondo/rentmanager-frontend-sub001/internal/domain"
)

const apiPrefix = "/api/v1"

// Client is the shared HTTP transport for all resource services.
//
// Two underlying clients are used: one for JSON calls with a short timeout
// (a hung API call is a misconfiguration signal, not something to wait on)
// and one for binary PDF exports, which legitimately take longer.
type Client struct {
	baseURL string
	http    *http.Client
	export  *http.Client
	log     *slog.Logger
}

// New builds a Client from configuration.
func New(cfg *config.Config, log *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		http:    &http.Client{Timeout: cfg.APITimeout},
		export:  &http.Client{Timeout: cfg.ExportTimeout},
		log:     log,
	}
}

type tokenKey struct{}

// ContextWithToken stores the remote API bearer token on the context. The
// session middleware sets it once per request.
func ContextWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext extracts the bearer token, or "" when unauthenticated.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// getJSON performs a GET and decodes the JSON response into out. Unavailable
// errors are retried a bounded number of times; GETs are idempotent so this
// is safe.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	return retry.Do(
		func() error { return c.roundTrip(ctx, http.MethodGet, path, nil, out) },
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(200*time.Millisecond),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			var unavailable *domain.UnavailableError
			return errors.As(err, &unavailable)
		}),
	)
}

// sendJSON performs a mutating call (POST/PUT/DELETE) with an optional JSON
// body and optional decoded response. No retries: mutations are not assumed
// idempotent.
func (c *Client) sendJSON(ctx context.Context, method, path string, body, out any) error {
	return c.roundTrip(ctx, method, path, body, out)
}

func (c *Client) roundTrip(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+apiPrefix+path, reader)
	if err != nil {
		return fmt.Errorf("create request %s %s: %w", method, path, err)
	}
	c.setHeaders(ctx, req, body != nil)

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.ErrUnavailable("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if err := c.checkStatus(resp, method, path); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

// postBinary POSTs a JSON body and returns the raw response bytes. Used for
// the PDF export endpoint; runs on the long-timeout client.
func (c *Client) postBinary(ctx context.Context, path string, body any) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode POST %s: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+apiPrefix+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request POST %s: %w", path, err)
	}
	c.setHeaders(ctx, req, true)

	resp, err := c.export.Do(req)
	if err != nil {
		return nil, domain.ErrUnavailable("POST %s: %v", path, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if err := c.checkStatus(resp, http.MethodPost, path); err != nil {
		return nil, err
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read POST %s: %w", path, err)
	}
	return data, nil
}

func (c *Client) setHeaders(ctx context.Context, req *http.Request, hasBody bool) {
	req.Header.Set("Accept", "application/json")
	if hasBody {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := TokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// apiError is the error envelope the remote API returns. Some endpoints use
// "mensaje", some "error"; take whichever is present.
type apiError struct {
	Mensaje string `json:"mensaje"`
	Error   string `json:"error"`
}

func (c *Client) checkStatus(resp *http.Response, method, path string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	message := serverMessage(raw)
	if message == "" {
		message = fmt.Sprintf("%s %s: status %d", method, path, resp.StatusCode)
	}
	c.log.Debug("api call failed", "method", method, "path", path, "status", resp.StatusCode)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound("%s", message)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return domain.ErrAccessDenied("%s", message)
	case resp.StatusCode == http.StatusConflict:
		return domain.ErrConflict("%s", message)
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		return domain.ErrValidation("%s", message)
	case resp.StatusCode >= 500:
		return domain.ErrUnavailable("%s", message)
	default:
		return fmt.Errorf("%s", message)
	}
}

func serverMessage(raw []byte) string {
	var envelope apiError
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if envelope.Mensaje != "" {
			return envelope.Mensaje
		}
		if envelope.Error != "" {
			return envelope.Error
		}
	}
	return strings.TrimSpace(string(raw))
}
