// Package fetcher retrieves raw standards documents from the remote content
// host. Each call makes exactly one HTTP GET; there is no retry and no cache.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultBaseURL is the fixed root of the remote standards repository.
const DefaultBaseURL = "https://raw.githubusercontent.com/standex-dev/standards/main"

// DefaultTimeout bounds a single fetch. A stalled request surfaces as a
// NetworkError failure instead of hanging the run.
const DefaultTimeout = 20 * time.Second

// Reason classifies why a fetch failed. The distinction is informational;
// the orchestrator treats all failures the same way.
type Reason int

const (
	NotFound Reason = iota
	ServerError
	NetworkError
)

func (r Reason) String() string {
	switch r {
	case NotFound:
		return "not found"
	case ServerError:
		return "server error"
	case NetworkError:
		return "network error"
	default:
		return "unknown"
	}
}

// Error is the typed failure for a single source path.
type Error struct {
	Path   string
	Reason Reason
	Status int   // HTTP status, when one was received
	Err    error // underlying transport error, when there was one
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: %s (HTTP %d)", e.Path, e.Reason, e.Status)
	}
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("fetch %s: %s", e.Path, e.Reason)
}

func (e *Error) Unwrap() error { return e.Err }

// Fetcher retrieves one remote relative path per call.
type Fetcher interface {
	Fetch(ctx context.Context, relPath string) (string, error)
}

// Client is the HTTP implementation of Fetcher against a single fixed base.
type Client struct {
	base   string
	http   *http.Client
	logger *zap.Logger
}

// New returns a Client rooted at baseURL. A non-positive timeout falls back
// to DefaultTimeout.
func New(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		base:   strings.TrimSuffix(baseURL, "/"),
		http:   &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Fetch resolves relPath against the base and issues one GET. A 200 response
// returns the body; anything else returns a *Error. The error never escalates
// beyond the single path being fetched.
func (c *Client) Fetch(ctx context.Context, relPath string) (string, error) {
	url := c.base + "/" + strings.TrimPrefix(relPath, "/")
	c.logger.Debug("Fetching source", zap.String("path", relPath), zap.String("url", url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &Error{Path: relPath, Reason: NetworkError, Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("Fetch transport failure", zap.String("path", relPath), zap.Error(err))
		return "", &Error{Path: relPath, Reason: NetworkError, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", &Error{Path: relPath, Reason: NetworkError, Err: err}
		}
		c.logger.Debug("Fetched source",
			zap.String("path", relPath),
			zap.Int("bytes", len(body)))
		return string(body), nil
	case resp.StatusCode == http.StatusNotFound:
		return "", &Error{Path: relPath, Reason: NotFound, Status: resp.StatusCode}
	default:
		return "", &Error{Path: relPath, Reason: ServerError, Status: resp.StatusCode}
	}
}
