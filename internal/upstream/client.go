// Package upstream performs the single outbound call the gateway makes per request.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// maxErrorBody caps how much of a backend error body is kept for logging.
const maxErrorBody = 64 << 10

// Client calls the recommendation backend. Retries are disabled and redirects are
// returned to the caller instead of being followed.
type Client struct {
	client  *resty.Client
	baseURL string
}

// New creates a Client for baseURL. A trailing slash on baseURL is ignored. A zero timeout
// leaves the call bounded only by the request context.
func New(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")

	c := resty.New().
		SetBaseURL(base).
		SetHeader("Accept", "application/json").
		SetTimeout(timeout).
		SetRetryCount(0).
		SetLogger(restyLogger{log: log}).
		SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}))

	return &Client{client: c, baseURL: base}
}

// BaseURL returns the normalized backend base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// TargetURL renders the URL a Get for path and query will hit.
func (c *Client) TargetURL(path string, query url.Values) string {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	return target
}

// Get issues one GET and returns the body of a 2xx response. When into is non-nil the body
// must decode into it. Failures are *Error values.
func (c *Client) Get(ctx context.Context, path string, query url.Values, into any) ([]byte, error) {
	target := c.TargetURL(path, query)
	start := time.Now()
	body, err := c.get(ctx, path, query, target, into)
	requestDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	requestsTotal.WithLabelValues(path, outcomeOf(err)).Inc()
	return body, err
}

func (c *Client) get(ctx context.Context, path string, query url.Values, target string, into any) ([]byte, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParamsFromValues(query).
		SetDoNotParseResponse(true).
		Get(path)
	if err != nil {
		return nil, &Error{Kind: ErrTransport, URL: target, Err: err}
	}
	raw := resp.RawBody()
	defer func() { _ = raw.Close() }()

	status := resp.StatusCode()
	switch {
	case status >= 300 && status < 400:
		return nil, &Error{Kind: ErrRedirect, URL: target, Status: status, Location: resp.Header().Get("Location")}
	case status < 200 || status >= 400:
		// Best effort: a failed read still reports the status.
		text, _ := io.ReadAll(io.LimitReader(raw, maxErrorBody))
		return nil, &Error{Kind: ErrHTTPStatus, URL: target, Status: status, Body: string(text)}
	}

	data, err := io.ReadAll(raw)
	if err != nil {
		return nil, &Error{Kind: ErrTransport, URL: target, Status: status, Err: fmt.Errorf("read body: %w", err)}
	}
	if into != nil {
		if err := json.Unmarshal(data, into); err != nil {
			return nil, &Error{Kind: ErrTransport, URL: target, Status: status, Err: fmt.Errorf("decode body: %w", err)}
		}
	}
	return data, nil
}

func outcomeOf(err error) string {
	e, ok := err.(*Error)
	switch {
	case err == nil:
		return outcomeOK
	case !ok:
		return outcomeTransport
	case e.Kind == ErrRedirect:
		return outcomeRedirect
	case e.Kind == ErrHTTPStatus:
		return outcomeHTTPError
	default:
		return outcomeTransport
	}
}

// restyLogger routes resty's internal warnings into zerolog.
type restyLogger struct{ log zerolog.Logger }

func (l restyLogger) Errorf(format string, v ...interface{}) { l.log.Error().Msgf(format, v...) }
func (l restyLogger) Warnf(format string, v ...interface{})  { l.log.Warn().Msgf(format, v...) }
func (l restyLogger) Debugf(format string, v ...interface{}) { l.log.Debug().Msgf(format, v...) }
