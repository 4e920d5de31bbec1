// Package client is the Go SDK for the baby-wear milestone and recommendation API.
package client

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/kj-nakamura/baby-wear-translator/client/internal/api"
	errs "github.com/kj-nakamura/baby-wear-translator/client/internal/errors"
	"github.com/kj-nakamura/baby-wear-translator/internal/model"
)

// Client talks to the backend directly or to the gateway (base ".../api").
// Calls are independent; concurrent use is safe and not serialized.
type Client struct {
	baseURL string
	http    *http.Client
}

// New constructs a Client for baseURL. Surrounding whitespace and a trailing slash are ignored.
// Additional options can be provided via functional arguments.
func New(baseURL string, opts ...Option) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		panic("baseURL cannot be empty")
	}

	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}
	return c
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// FetchMilestones performs exactly one GET {base}/milestones. An empty targetShop is omitted.
func (c *Client) FetchMilestones(ctx context.Context, birthDate strfmt.Date, targetShop model.ShopID) (*model.MilestoneResponse, error) {
	resp, err := api.GetMilestones(ctx, c.http, c.baseURL, birthDate, targetShop)
	observe(endpointMilestones, err)
	return resp, err
}

// FetchRecommendation performs exactly one GET {base}/recommend for the legacy single-point view.
func (c *Client) FetchRecommendation(ctx context.Context, birthDate strfmt.Date, currentTemp float64, targetShop model.ShopID) (*model.RecommendationResponse, error) {
	resp, err := api.GetRecommendation(ctx, c.http, c.baseURL, birthDate, currentTemp, targetShop)
	observe(endpointRecommend, err)
	return resp, err
}

func observe(endpoint string, err error) {
	requestsTotal.WithLabelValues(endpoint, outcome(err)).Inc()
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	var ce *errs.ClassifiedError
	if !errors.As(err, &ce) {
		return "error"
	}
	switch ce.Kind {
	case errs.HTTPStatus:
		return "http_error"
	case errs.Network:
		return "network"
	case errs.Decode:
		return "decode"
	default:
		return "error"
	}
}
