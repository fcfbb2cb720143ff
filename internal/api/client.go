package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
)

// requestIDHeader correlates client log lines with backend logs.
const requestIDHeader = "X-Request-ID"

// Client talks to the cleaning report backend under <origin>/api.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

func NewClient(origin string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(origin, "/") + "/api",
		client:  &http.Client{},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("component", "api")
	return c
}

// BaseURL returns the URL every endpoint is resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// RequestOptions configures a single call. A nil *RequestOptions is a GET
// without a body.
type RequestOptions struct {
	Method string
	Body   any
	Header http.Header
}

// HTTPError is returned for any non-2xx response. Error() yields the
// backend's "error" message when one was sent.
type HTTPError struct {
	StatusCode int
	StatusText string
	Message    string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.StatusText)
}

// Ack is the acknowledgement body returned by delete endpoints.
type Ack struct {
	Message string `json:"message"`
}

// Request calls endpoint and decodes a successful JSON response into out.
// out may be nil to discard the body. Every failure is logged and returned.
func (c *Client) Request(ctx context.Context, endpoint string, opts *RequestOptions, out any) error {
	requestID, err := c.do(ctx, endpoint, opts, out)
	if err != nil {
		c.logger.Error("api request failed", "endpoint", endpoint, "request_id", requestID, "error", err)
		return err
	}
	return nil
}

func (c *Client) do(ctx context.Context, endpoint string, opts *RequestOptions, out any) (string, error) {
	if opts == nil {
		opts = &RequestOptions{}
	}
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if opts.Body != nil {
		payload, err := json.Marshal(opts.Body)
		if err != nil {
			return "", fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	for key, values := range opts.Header {
		req.Header.Del(key)
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	if req.Header.Get(requestIDHeader) == "" {
		req.Header.Set(requestIDHeader, uuid.NewString())
	}
	requestID := req.Header.Get(requestIDHeader)

	c.logger.Debug("api request", "method", method, "endpoint", endpoint, "request_id", requestID)

	resp, err := c.client.Do(req)
	if err != nil {
		return requestID, fmt.Errorf("failed to call backend: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Error("failed to close response body", "endpoint", endpoint, "error", err)
		}
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return requestID, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return requestID, newHTTPError(resp, data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return requestID, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return requestID, fmt.Errorf("failed to decode response: %w", err)
	}
	return requestID, nil
}

func newHTTPError(resp *http.Response, data []byte) *HTTPError {
	var errBody struct {
		Error string `json:"error"`
	}
	// An unparseable error body is treated as one without a message.
	_ = json.Unmarshal(data, &errBody)

	return &HTTPError{
		StatusCode: resp.StatusCode,
		StatusText: statusText(resp),
		Message:    errBody.Error,
	}
}

// statusText prefers the reason phrase the server sent.
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}
