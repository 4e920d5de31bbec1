package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/kj-nakamura/baby-wear-translator/internal/api/respond"
	"github.com/kj-nakamura/baby-wear-translator/internal/model"
	"github.com/kj-nakamura/baby-wear-translator/internal/upstream"
	"github.com/rs/zerolog"
)

// Upstream is the outbound side of the proxy. *upstream.Client satisfies it.
type Upstream interface {
	Get(ctx context.Context, path string, query url.Values, into any) ([]byte, error)
	TargetURL(path string, query url.Values) string
}

// ProxyHandler forwards milestone and recommendation requests to the backend.
type ProxyHandler struct {
	upstream Upstream
	log      zerolog.Logger
}

// NewProxyHandler creates a new proxy handler
func NewProxyHandler(up Upstream, log zerolog.Logger) *ProxyHandler {
	return &ProxyHandler{upstream: up, log: log}
}

// route describes one forwarded endpoint.
type route struct {
	path     string
	required []string
	optional []string
	payload  func() any
}

var (
	milestonesRoute = route{
		path:     "/milestones",
		required: []string{"birth_date"},
		optional: []string{"target_shop"},
		payload:  func() any { return new(model.MilestoneResponse) },
	}
	recommendRoute = route{
		path:     "/recommend",
		required: []string{"birth_date", "current_temp"},
		optional: []string{"target_shop"},
		payload:  func() any { return new(model.RecommendationResponse) },
	}
)

// GetMilestones handles GET /api/milestones
func (h *ProxyHandler) GetMilestones(w http.ResponseWriter, r *http.Request) {
	h.forward(w, r, milestonesRoute)
}

// GetRecommendation handles GET /api/recommend
func (h *ProxyHandler) GetRecommendation(w http.ResponseWriter, r *http.Request) {
	h.forward(w, r, recommendRoute)
}

func (h *ProxyHandler) forward(w http.ResponseWriter, r *http.Request, rt route) {
	log := loggerFor(r, h.log)

	in := r.URL.Query()
	query := url.Values{}
	for _, name := range rt.required {
		v := in.Get(name)
		if v == "" {
			respond.WriteBadRequest(w, name+" is required")
			return
		}
		query.Set(name, v)
	}
	for _, name := range rt.optional {
		if v := in.Get(name); v != "" {
			query.Set(name, v)
		}
	}

	log.Info().Str("target", h.upstream.TargetURL(rt.path, query)).Msg("Proxying request to backend")

	body, err := h.upstream.Get(r.Context(), rt.path, query, rt.payload())
	if err == nil {
		respond.WriteRaw(w, http.StatusOK, body)
		return
	}

	var ue *upstream.Error
	if !errors.As(err, &ue) {
		log.Error().Stack().Err(err).Msg("Proxy failed")
		respond.WriteInternalError(w, "Internal server error during proxying", err.Error())
		return
	}

	switch {
	case errors.Is(err, upstream.ErrRedirect):
		log.Warn().Int("status", ue.Status).Str("location", ue.Location).Msg("Backend redirected")
		respond.WriteError(w, http.StatusBadGateway, fmt.Sprintf("Backend redirected to %s", ue.Location))
	case errors.Is(err, upstream.ErrHTTPStatus):
		log.Error().Int("status", ue.Status).Str("body", ue.Body).Msg("Backend returned error")
		status := ue.Status
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		respond.WriteError(w, status, fmt.Sprintf("Backend error: %d", ue.Status))
	default:
		log.Error().Stack().Err(err).Str("target", ue.URL).Msg("Proxy failed")
		respond.WriteInternalError(w, "Internal server error during proxying", ue.Cause())
	}
}
