package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vergerducoin/verger-clients/pkg/config"
	pkgerrors "github.com/vergerducoin/verger-clients/pkg/errors"
	"github.com/vergerducoin/verger-clients/pkg/logger"
	"github.com/vergerducoin/verger-clients/pkg/metrics"
	"github.com/vergerducoin/verger-clients/pkg/types"
)

var (
	errBaseURLRequired = errors.New("gateway base URL is required")
	errSessionRequired = errors.New("gateway token source is required")
	errLoggerRequired  = errors.New("gateway logger is required")
)

// TokenSource supplies the bearer credential for outgoing requests and
// absorbs remote authorization failures. The auth session implements it.
type TokenSource interface {
	Token() string
	Invalidate(ctx context.Context)
}

// Client is the single egress point to the commerce API. Each remote
// operation is one method; there are no retries and no caching, and a 401
// from any endpoint invalidates the session before the error surfaces.
type Client struct {
	baseURL string
	http    *http.Client
	session TokenSource
	logger  *logger.Logger
	metrics *metrics.GatewayMetrics
}

// NewClient validates the configuration and builds the gateway.
func NewClient(ctx context.Context, cfg config.APIConfig, session TokenSource, logg *logger.Logger, m *metrics.GatewayMetrics) (*Client, error) {
	if logg == nil {
		return nil, errLoggerRequired
	}
	if session == nil {
		return nil, errSessionRequired
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errBaseURLRequired
	}

	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
		session: session,
		logger:  logg,
		metrics: m,
	}
	logg.Info(ctx, "commerce gateway initialized")
	return c, nil
}

// BaseURL reports the normalized remote root.
func (c *Client) BaseURL() string {
	if c == nil {
		return ""
	}
	return c.baseURL
}

// do runs one request against the remote API and decodes the 2xx body
// into out. Errors come back as *pkgerrors.Error with the code mapped
// from the HTTP status.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("%s: encode request", op))
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("%s: build request", op))
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.log(ctx, "request", op, map[string]any{"method": method, "path": path})

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.IncTransportFailure(op)
		c.log(ctx, "error", op, map[string]any{"error": err.Error()})
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, fmt.Sprintf("%s failed", op))
	}
	defer resp.Body.Close()

	c.metrics.ObserveRequest(op, resp.StatusCode, time.Since(start))

	if resp.StatusCode == http.StatusUnauthorized {
		c.session.Invalidate(ctx)
	}
	if resp.StatusCode >= 400 {
		return c.mapError(ctx, op, resp)
	}

	c.log(ctx, "response", op, map[string]any{"status": resp.StatusCode})

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, fmt.Sprintf("%s: decode response", op))
	}
	return nil
}

func (c *Client) mapError(ctx context.Context, op string, resp *http.Response) error {
	code := codeForStatus(resp.StatusCode)
	wrapped := pkgerrors.Wrap(code, fmt.Errorf("remote status %d", resp.StatusCode), fmt.Sprintf("%s failed", op))

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil && len(raw) > 0 {
		var details any
		if json.Unmarshal(raw, &details) == nil {
			wrapped = wrapped.WithDetails(details)
		}
	}

	c.log(ctx, "error", op, map[string]any{"status": resp.StatusCode, "code": string(code)})
	return wrapped
}

func codeForStatus(status int) pkgerrors.Code {
	switch status {
	case http.StatusUnauthorized:
		return pkgerrors.CodeUnauthorized
	case http.StatusForbidden:
		return pkgerrors.CodeForbidden
	case http.StatusNotFound:
		return pkgerrors.CodeNotFound
	case http.StatusConflict:
		return pkgerrors.CodeConflict
	case http.StatusTooManyRequests:
		return pkgerrors.CodeRateLimit
	default:
		if status >= 400 && status < 500 {
			return pkgerrors.CodeValidation
		}
		return pkgerrors.CodeDependency
	}
}

func (c *Client) log(ctx context.Context, phase, op string, fields map[string]any) {
	if c == nil || c.logger == nil {
		return
	}
	logFields := map[string]any{"operation": op, "phase": phase}
	for k, v := range fields {
		logFields[k] = redact(k, v)
	}
	ctx = c.logger.WithFields(ctx, logFields)
	switch phase {
	case "error":
		c.logger.Warn(ctx, fmt.Sprintf("gateway %s", op))
	default:
		c.logger.Debug(ctx, fmt.Sprintf("gateway %s", phase))
	}
}

func redact(key string, value any) any {
	lower := strings.ToLower(key)
	for _, sensitive := range []string{"password", "token", "card", "secret", "email", "phone"} {
		if strings.Contains(lower, sensitive) {
			return "[REDACTED]"
		}
	}
	return value
}

// Authenticate exchanges credentials for a bearer token. The caller is
// responsible for fetching the profile and opening the session.
func (c *Client) Authenticate(ctx context.Context, username, password string) (*types.TokenResponse, error) {
	body := map[string]string{"username": username, "password": password}
	var out types.TokenResponse
	if err := c.do(ctx, "authenticate", http.MethodPost, "/auth/token/", nil, body, &out); err != nil {
		return nil, err
	}
	if out.Access == "" {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "authenticate: empty access token")
	}
	return &out, nil
}
