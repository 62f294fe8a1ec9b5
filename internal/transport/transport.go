// Package transport sends JSON requests to an agent admin API and turns every
// failed exchange into an *Error before callers see it.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"

	"acapy-client-go/internal/observability/metrics"
)

// MaxErrorBody caps how much of a failed response is kept in Error.Body.
// Longer bodies are cut and flagged with Error.Truncated.
const MaxErrorBody = 1 << 20

var errUnexpectedStatus = errors.New("unexpected status")

// Options configures a Client. Headers is the complete header set sent with
// every request.
type Options struct {
	BaseURL    string
	Headers    http.Header
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Request describes a single call. Path must already be escaped.
type Request struct {
	Operation string
	Method    string
	Path      string
	Query     url.Values
	Body      any
}

// Client performs requests against one base address.
type Client struct {
	base    string
	headers http.Header
	rc      *retryablehttp.Client
	log     *slog.Logger
}

// New validates the base address and prepares the underlying HTTP client. It
// performs no I/O.
func New(opts Options) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if base == "" {
		return nil, errors.New("base url is empty")
	}
	parsed, err := url.Parse(base)
	if err != nil {
		return nil, errors.Wrap(err, "invalid base url")
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, errors.Errorf("base url must be absolute: %q", base)
	}

	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	var hc http.Client
	if opts.HTTPClient != nil {
		hc = *opts.HTTPClient
	}
	hc.Timeout = opts.Timeout

	c := &Client{
		base:    base,
		headers: opts.Headers.Clone(),
		log:     log,
	}
	if c.headers == nil {
		c.headers = http.Header{}
	}

	rc := retryablehttp.NewClient()
	rc.HTTPClient = &hc
	rc.RetryMax = 0
	rc.Logger = log
	rc.CheckRetry = checkResponse
	rc.ErrorHandler = c.onFailure
	c.rc = rc

	return c, nil
}

// Timeout reports the timeout of the underlying http.Client.
func (c *Client) Timeout() time.Duration {
	return c.rc.HTTPClient.Timeout
}

// BaseURL returns the normalised base address.
func (c *Client) BaseURL() string {
	return c.base
}

// Do sends req and decodes a successful JSON response into out when out is
// not nil. Every failure is returned as *Error.
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		return &Error{Message: err.Error(), cause: err}
	}

	start := time.Now()
	resp, err := c.rc.Do(httpReq)
	elapsed := time.Since(start)
	if err != nil {
		var terr *Error
		if !errors.As(err, &terr) {
			terr = &Error{Message: err.Error(), cause: err}
		}
		metrics.ObserveRequest(req.Operation, req.Method, terr.StatusCode, elapsed)
		c.log.Warn("agent request failed",
			"operation", req.Operation,
			"method", req.Method,
			"path", req.Path,
			"status", terr.StatusCode,
			"duration", elapsed,
			"request_id", httpReq.Header.Get(middleware.RequestIDHeader),
			"error", terr.Message,
		)
		return terr
	}
	defer resp.Body.Close()

	metrics.ObserveRequest(req.Operation, req.Method, resp.StatusCode, elapsed)
	c.log.Debug("agent request completed",
		"operation", req.Operation,
		"method", req.Method,
		"path", req.Path,
		"status", resp.StatusCode,
		"duration", elapsed,
		"request_id", httpReq.Header.Get(middleware.RequestIDHeader),
	)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Message: "read response: " + err.Error(), cause: err}
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &Error{Message: "decode response: " + err.Error(), Body: data, cause: err}
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, req Request) (*retryablehttp.Request, error) {
	endpoint, err := url.Parse(c.base + req.Path)
	if err != nil {
		return nil, errors.Wrap(err, "build request url")
	}
	if len(req.Query) > 0 {
		endpoint.RawQuery = req.Query.Encode()
	}

	var body any
	if req.Body != nil {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return nil, errors.Wrap(err, "encode request")
		}
		body = encoded
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, endpoint.String(), body)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	for key, values := range c.headers {
		httpReq.Header[key] = append([]string(nil), values...)
	}
	if httpReq.Header.Get(middleware.RequestIDHeader) == "" {
		httpReq.Header.Set(middleware.RequestIDHeader, requestID(ctx))
	}
	return httpReq, nil
}

// requestID reuses the id of an inbound chi request when there is one.
func requestID(ctx context.Context) string {
	if id := middleware.GetReqID(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}

func checkResponse(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return false, ctxErr
	}
	if err != nil {
		return false, err
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return false, errUnexpectedStatus
	}
	return false, nil
}

// onFailure is installed as the retryablehttp error handler, so it sees every
// failed exchange: network errors, cancelled contexts and non-2xx answers.
func (c *Client) onFailure(resp *http.Response, err error, _ int) (*http.Response, error) {
	if resp == nil {
		return nil, &Error{Message: err.Error(), cause: err}
	}
	defer resp.Body.Close()

	data, readErr := io.ReadAll(io.LimitReader(resp.Body, MaxErrorBody+1))
	if readErr != nil {
		return nil, &Error{StatusCode: resp.StatusCode, Message: readErr.Error(), cause: readErr}
	}
	truncated := len(data) > MaxErrorBody
	if truncated {
		data = data[:MaxErrorBody]
	}

	message := strings.TrimSpace(string(data))
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}
	if errors.Is(err, errUnexpectedStatus) {
		err = errors.Errorf("agent responded with status %d", resp.StatusCode)
	}
	return nil, &Error{StatusCode: resp.StatusCode, Body: data, Truncated: truncated, Message: message, cause: err}
}
