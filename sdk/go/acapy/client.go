package acapy

import (
	"context"
	"errors"
	"log/slog"
	"maps"
	"net/http"
	"net/url"
	"strings"
	"time"

	"acapy-client-go/internal/config"
	"acapy-client-go/internal/observability/metrics"
	"acapy-client-go/internal/transport"
	"acapy-client-go/pkg/logger"
)

// DefaultTimeout is used when Config.Timeout is zero.
const DefaultTimeout = 30 * time.Second

// APIKeyHeader carries Config.APIKey.
const APIKeyHeader = "X-API-Key"

// Config enumerates every option of a Client.
type Config struct {
	// BaseURL is the agent's admin address, e.g. http://localhost:8031.
	BaseURL string
	// APIKey is sent as X-API-Key when not empty.
	APIKey string
	// Headers are added to every request and override the defaults.
	Headers map[string]string
	// Timeout bounds every request. Zero means DefaultTimeout.
	Timeout time.Duration
	// HTTPClient is copied and used as the underlying client when set.
	HTTPClient *http.Client
	// Logger defaults to logger.Named("acapy").
	Logger *slog.Logger
}

// Client is a typed client for an ACA-Py admin API. It is safe for
// concurrent use.
type Client struct {
	cfg Config
	tr  *transport.Client
}

// NewClient builds a client without contacting the agent.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	cfg.Headers = maps.Clone(cfg.Headers)
	if cfg.Headers == nil {
		cfg.Headers = map[string]string{}
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Named("acapy")
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	for k, v := range cfg.Headers {
		headers.Set(k, v)
	}
	if cfg.APIKey != "" {
		headers.Set(APIKeyHeader, cfg.APIKey)
	}

	tr, err := transport.New(transport.Options{
		BaseURL:    cfg.BaseURL,
		Headers:    headers,
		Timeout:    cfg.Timeout,
		HTTPClient: cfg.HTTPClient,
		Logger:     cfg.Logger,
	})
	if err != nil {
		return nil, newError(KindAgent, "invalid client configuration", err)
	}
	cfg.BaseURL = tr.BaseURL()

	return &Client{cfg: cfg, tr: tr}, nil
}

// Config returns a copy of the effective configuration.
func (c *Client) Config() Config {
	cfg := c.cfg
	cfg.Headers = maps.Clone(c.cfg.Headers)
	return cfg
}

// LoadConfig reads a YAML configuration file. Its log section is applied to
// the process-wide logger.
func LoadConfig(path string) (Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return Config{}, newError(KindAgent, "load configuration", err)
	}
	return fromFileConfig(cfg)
}

// ConfigFromEnv reads ACAPY_URL, ACAPY_API_KEY, ACAPY_HEADERS, ACAPY_TIMEOUT
// and the ACAPY_LOG_* variables, after loading the given dotenv files. The
// log settings are applied to the process-wide logger.
func ConfigFromEnv(envFiles ...string) (Config, error) {
	cfg, err := config.FromEnv(envFiles...)
	if err != nil {
		return Config{}, newError(KindAgent, "load configuration", err)
	}
	return fromFileConfig(cfg)
}

func fromFileConfig(cfg *config.Config) (Config, error) {
	if err := logger.Init(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		OutputPaths: cfg.Log.Outputs,
	}); err != nil {
		return Config{}, newError(KindAgent, "configure logging", err)
	}
	return Config{
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
		Headers: cfg.Headers,
		Timeout: cfg.Timeout,
	}, nil
}

// MetricsHandler serves request counters and latencies of every Client in
// the process in the Prometheus text format.
func MetricsHandler() http.Handler {
	return metrics.Handler()
}

// call performs one request and maps its failure into an *Error of kind.
func (c *Client) call(ctx context.Context, kind Kind, message string, req transport.Request, out any) error {
	err := c.tr.Do(ctx, req, out)
	if err == nil {
		return nil
	}
	e := newError(kind, message, err)
	var terr *transport.Error
	if errors.As(err, &terr) {
		e.StatusCode = terr.StatusCode
		e.Response = terr.Body
		e.Truncated = terr.Truncated
	}
	return e
}

func (c *Client) get(ctx context.Context, kind Kind, op, message, path string, out any) error {
	return c.call(ctx, kind, message, transport.Request{
		Operation: op,
		Method:    http.MethodGet,
		Path:      path,
	}, out)
}

func (c *Client) post(ctx context.Context, kind Kind, op, message, path string, query url.Values, body, out any) error {
	return c.call(ctx, kind, message, transport.Request{
		Operation: op,
		Method:    http.MethodPost,
		Path:      path,
		Query:     query,
		Body:      body,
	}, out)
}

func (c *Client) delete(ctx context.Context, kind Kind, op, message, path string) error {
	return c.call(ctx, kind, message, transport.Request{
		Operation: op,
		Method:    http.MethodDelete,
		Path:      path,
	}, nil)
}

// pathOf joins escaped segments into an absolute path.
func pathOf(segments ...string) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}
