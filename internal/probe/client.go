package probe

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/khanhnv2901/quickwins/internal/shared/constants"
	apperrors "github.com/khanhnv2901/quickwins/internal/shared/errors"
	"go.uber.org/zap"
)

// Config controls how the probe client talks to the target.
type Config struct {
	Timeout   time.Duration
	UserAgent string
	// VerifyCertificates is off by default: targets often run self-signed
	// or otherwise invalid certificates.
	VerifyCertificates bool
	// Transport overrides the default transport. Tests use it to point the
	// client at an httptest server.
	Transport http.RoundTripper
	Logger    *zap.SugaredLogger
}

// DefaultConfig returns the fixed probe settings.
func DefaultConfig() Config {
	return Config{
		Timeout:   constants.DefaultTimeout,
		UserAgent: constants.DefaultUserAgent,
	}
}

// Response is what a successful probe hands back to a check.
type Response struct {
	URL        string
	StatusCode int
	Header     http.Header
	Body       string
}

// Client issues GET probes. A transport failure is returned as an error
// wrapping ErrTransport and never aborts the caller.
type Client struct {
	http      *http.Client
	userAgent string
	logger    *zap.SugaredLogger
}

// NewClient builds a Client from cfg, filling zero values with defaults.
func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = constants.DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = constants.DefaultUserAgent
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	transport := cfg.Transport
	if transport == nil {
		base := http.DefaultTransport.(*http.Transport).Clone()
		base.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: !cfg.VerifyCertificates, // #nosec G402 -- reconnaissance targets commonly use invalid certificates.
		}
		transport = base
	}

	return &Client{
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
		userAgent: cfg.UserAgent,
		logger:    logger,
	}
}

// Fetch performs a GET against rawURL. Redirects are followed. Extra headers
// are applied after the User-Agent, so a colliding key in extra wins.
func (c *Client) Fetch(ctx context.Context, rawURL string, extra http.Header) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", apperrors.ErrTransport, err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	for key, values := range extra {
		req.Header.Del(key)
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debugw("probe failed", "url", rawURL, "error", err)
		return nil, fmt.Errorf("%w: %v", apperrors.ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, constants.MaxBodyBytes))
	if err != nil {
		c.logger.Debugw("probe body read failed", "url", rawURL, "error", err)
		return nil, fmt.Errorf("%w: read body: %v", apperrors.ErrTransport, err)
	}

	c.logger.Debugw("probe complete", "url", rawURL, "status", resp.StatusCode, "bytes", len(body))

	return &Response{
		URL:        rawURL,
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       string(body),
	}, nil
}
