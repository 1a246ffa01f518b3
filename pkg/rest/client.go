package rest

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

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/noah-isme/campus-admin-go/internal/observability"
)

// Config contains the settings required to talk to the records backend.
type Config struct {
	BaseURL           string
	SessionCookieName string
	SessionCookie     string
	Timeout           time.Duration
}

// Client is the shared request layer every domain service flows through. It
// applies the base URL, JSON content type and session credentials uniformly,
// and logs every failed request before propagating the error to the caller.
// Failures are never retried here.
type Client struct {
	httpClient *http.Client
	baseURL    string
	cookieName string
	cookie     string
	logger     zerolog.Logger
	tracer     trace.Tracer
}

// New constructs a backend client instance.
func New(cfg Config, logger zerolog.Logger) (*Client, error) {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		return nil, fmt.Errorf("base url must be provided")
	}

	cookieName := cfg.SessionCookieName
	if cookieName == "" {
		cookieName = "SESSION"
	}

	observability.RegisterMetrics()

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    base,
		cookieName: cookieName,
		cookie:     cfg.SessionCookie,
		logger:     logger.With().Str("component", "rest_client").Logger(),
		tracer:     otel.Tracer("github.com/noah-isme/campus-admin-go/pkg/rest"),
	}, nil
}

// Get issues a GET request against the given relative path.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Envelope, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Envelope, error) {
	return c.do(ctx, http.MethodPost, path, nil, body)
}

// Put issues a PUT request; body may be nil for bare state transitions.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Envelope, error) {
	return c.do(ctx, http.MethodPut, path, nil, body)
}

// Delete issues a DELETE request against the given relative path.
func (c *Client) Delete(ctx context.Context, path string) (*Envelope, error) {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}) (*Envelope, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	ctx, span := c.tracer.Start(ctx, fmt.Sprintf("backend.%s", strings.ToLower(method)))
	span.SetAttributes(
		attribute.String("http.method", method),
		attribute.String("http.path", path),
	)
	defer span.End()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	correlationID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Correlation-ID", correlationID)
	if c.cookie != "" {
		req.AddCookie(&http.Cookie{Name: c.cookieName, Value: c.cookie})
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		observability.APIRequestErrors().WithLabelValues(method, path, "transport").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport failure")
		c.logger.Error().
			Err(err).
			Str("correlation_id", correlationID).
			Str("method", method).
			Str("path", path).
			Msg("backend request failed")
		return nil, fmt.Errorf("request %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	status := fmt.Sprintf("%d", resp.StatusCode)
	observability.APIRequests().WithLabelValues(method, path, status).Inc()
	observability.APILatency().WithLabelValues(method, path).Observe(duration.Seconds())
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	envelope := &Envelope{}
	if len(raw) > 0 {
		// Non-envelope bodies are tolerated; the zero envelope carries no data.
		_ = json.Unmarshal(raw, envelope)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		observability.APIRequestErrors().WithLabelValues(method, path, status).Inc()
		message := envelope.Message
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: message}
		span.SetStatus(codes.Error, message)
		c.logger.Error().
			Str("correlation_id", correlationID).
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Str("message", message).
			Msg("backend request returned an error")
		return nil, apiErr
	}

	return envelope, nil
}
