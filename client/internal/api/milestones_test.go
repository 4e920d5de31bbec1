package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-openapi/strfmt"
	errs "github.com/kj-nakamura/baby-wear-translator/client/internal/errors"
	"github.com/kj-nakamura/baby-wear-translator/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func birth() strfmt.Date { return strfmt.Date(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)) }

func TestGetMilestones_Success(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/api/milestones", r.URL.Path)
		assert.Equal(t, "2024-01-15", r.URL.Query().Get("birth_date"))
		assert.Equal(t, "uniqlo", r.URL.Query().Get("target_shop"))
		_, _ = w.Write([]byte(`{"milestones":[{"age_in_months":0,"target_date":"2024-01-15","size":"50-60cm","items":[{"universal_name":"カバーオール","shop_specific_name":"ベビーカバーオール","other_shop_names":{"nishimatsuya":"ツーウェイオール"}}]}]}`))
	}))
	defer srv.Close()

	resp, err := GetMilestones(context.Background(), srv.Client(), srv.URL+"/api", birth(), model.ShopUniqlo)
	require.NoError(t, err)
	require.Len(t, resp.Milestones, 1)
	slot := resp.Milestones[0]
	assert.Equal(t, "50-60cm", slot.Size)
	assert.Equal(t, "ツーウェイオール", slot.Items[0].OtherShopNames[model.ShopNishimatsuya])
	assert.Equal(t, int32(1), calls.Load())
}

func TestGetMilestones_OmitsEmptyShop(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present := r.URL.Query()["target_shop"]
		assert.False(t, present)
		_, _ = w.Write([]byte(`{"milestones":[]}`))
	}))
	defer srv.Close()

	resp, err := GetMilestones(context.Background(), srv.Client(), srv.URL, birth(), "")
	require.NoError(t, err)
	assert.Empty(t, resp.Milestones)
}

func TestGetMilestones_HTTPErrorIsClassified(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Internal server error during proxying","details":"connection refused"}`))
	}))
	defer srv.Close()

	_, err := GetMilestones(context.Background(), srv.Client(), srv.URL, birth(), "")
	var ce *errs.ClassifiedError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, errs.HTTPStatus, ce.Kind)
	assert.Equal(t, http.StatusInternalServerError, ce.StatusCode)
	assert.Equal(t, "Internal server error during proxying", ce.Message)
	assert.Equal(t, "connection refused", ce.Detail)
	assert.Equal(t, int32(1), calls.Load(), "no retry")
}

func TestGetMilestones_NetworkError(t *testing.T) {
	_, err := GetMilestones(context.Background(), &http.Client{Transport: &errRT{}}, "http://example.com", birth(), "")
	var ce *errs.ClassifiedError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, errs.Network, ce.Kind)
	assert.Equal(t, 0, ce.StatusCode)
}

func TestGetMilestones_DecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := GetMilestones(context.Background(), srv.Client(), srv.URL, birth(), "")
	var ce *errs.ClassifiedError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, errs.Decode, ce.Kind)
	assert.Equal(t, 0, ce.StatusCode)
}

func TestGetMilestones_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := GetMilestones(ctx, &http.Client{Transport: &errRT{}}, "http://example.com", birth(), "")
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestGetRecommendation_FormatsTemperature(t *testing.T) {
	tests := []struct {
		temp float64
		want string
	}{
		{temp: 20, want: "20"},
		{temp: 20.5, want: "20.5"},
		{temp: -3.25, want: "-3.25"},
	}
	for _, tt := range tests {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/recommend", r.URL.Path)
			assert.Equal(t, tt.want, r.URL.Query().Get("current_temp"))
			_, _ = w.Write([]byte(`{"age_in_months":3,"size":"60cm","items":[]}`))
		}))

		resp, err := GetRecommendation(context.Background(), srv.Client(), srv.URL, birth(), tt.temp, model.ShopNishimatsuya)
		require.NoError(t, err)
		assert.Equal(t, 3, resp.AgeInMonths)
		srv.Close()
	}
}
