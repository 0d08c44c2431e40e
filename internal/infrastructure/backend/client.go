// Package backend is the typed HTTP client over the remote REST service
// that owns all dashboard state. It implements the gateway ports in
// internal/usecase/interfaces.
//
// Contract notes:
//   - Success is HTTP 200, nothing else; any other status becomes a
//     *StatusError with the optional message field from the body.
//   - No retries: every failure surfaces to the caller immediately.
//   - Atomicity of individual writes is the backend's responsibility.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// DefaultTimeout bounds every backend call unless overridden.
const DefaultTimeout = 30 * time.Second

// StatusError is a non-200 answer from the backend: the call reached the
// service and was rejected, as opposed to a transport failure.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend %s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend %s %s: status %d", e.Method, e.Path, e.StatusCode)
}

// IsStatusError reports whether err is a backend rejection and returns it.
func IsStatusError(err error) (*StatusError, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// Client carries the base URL and transport shared by all gateways.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// do performs one JSON round trip. body and out may be nil. On a non-200
// answer it returns *StatusError carrying whatever message the body held.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("backend %s %s: encode body: %w", method, path, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("backend %s %s: build request: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("backend call failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return fmt.Errorf("backend %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("backend %s %s: read body: %w", method, path, err)
	}

	if resp.StatusCode != http.StatusOK {
		se := &StatusError{Method: method, Path: path, StatusCode: resp.StatusCode, Message: messageFrom(raw)}
		c.log.Warn("backend call rejected",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
		return se
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("backend %s %s: decode response: %w", method, path, err)
		}
	}
	return nil
}

// messageFrom pulls the optional {"message": ...} field out of an error
// body. No structure beyond that is assumed.
func messageFrom(raw []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	return body.Message
}
