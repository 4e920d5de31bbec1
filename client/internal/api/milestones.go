package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-openapi/strfmt"
	"github.com/kj-nakamura/baby-wear-translator/internal/model"
)

// GetMilestones fetches the timeline for an infant born on birthDate.
// An empty shop leaves target_shop unset.
func GetMilestones(ctx context.Context, httpClient *http.Client, baseURL string, birthDate strfmt.Date, shop model.ShopID) (*model.MilestoneResponse, error) {
	q := url.Values{}
	q.Set("birth_date", birthDate.String())
	if shop != "" {
		q.Set("target_shop", string(shop))
	}

	var out model.MilestoneResponse
	if err := getJSON(ctx, httpClient, withQuery(baseURL, "/milestones", q), "fetch milestones", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetRecommendation fetches the single-point recommendation for birthDate at currentTemp °C.
func GetRecommendation(ctx context.Context, httpClient *http.Client, baseURL string, birthDate strfmt.Date, currentTemp float64, shop model.ShopID) (*model.RecommendationResponse, error) {
	q := url.Values{}
	q.Set("birth_date", birthDate.String())
	q.Set("current_temp", strconv.FormatFloat(currentTemp, 'f', -1, 64))
	if shop != "" {
		q.Set("target_shop", string(shop))
	}

	var out model.RecommendationResponse
	if err := getJSON(ctx, httpClient, withQuery(baseURL, "/recommend", q), "fetch recommendation", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
