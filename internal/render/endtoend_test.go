package render_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/kj-nakamura/baby-wear-translator/client"
	"github.com/kj-nakamura/baby-wear-translator/internal/api"
	"github.com/kj-nakamura/baby-wear-translator/internal/catalog"
	"github.com/kj-nakamura/baby-wear-translator/internal/model"
	"github.com/kj-nakamura/baby-wear-translator/internal/render"
	"github.com/kj-nakamura/baby-wear-translator/internal/timeline"
	"github.com/kj-nakamura/baby-wear-translator/internal/upstream"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

// Backend → gateway → client → timeline → render, for an infant born 2024-01-15 shopping at UNIQLO.
func TestEndToEnd_CoverallRendersAsOuterwearAtUniqlo(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/milestones", r.URL.Path)
		assert.Equal(t, "2024-01-15", r.URL.Query().Get("birth_date"))
		assert.Equal(t, "uniqlo", r.URL.Query().Get("target_shop"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"milestones":[` +
			`{"age_in_months":0,"target_date":"2024-01-15","size":"50-60cm","items":[{"universal_name":"コンビ肌着","shop_specific_name":"コンビ肌着"}]},` +
			`{"age_in_months":3,"target_date":"2024-04-15","size":"60-70cm","items":[{"universal_name":"カバーオール","shop_specific_name":"カバーオール","other_shop_names":{"nishimatsuya":"2WAYオール"}}]}` +
			`]}`))
	}))
	defer backend.Close()

	cat := catalog.MustLoadEmbedded()
	gateway := httptest.NewServer(api.NewRouter(upstream.New(backend.URL, 0, zerolog.Nop()), cat, zerolog.Nop()))
	defer gateway.Close()

	c := client.New(gateway.URL + "/api")
	birth := strfmt.Date(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	resp, err := c.FetchMilestones(context.Background(), birth, model.ShopUniqlo)
	require.NoError(t, err)

	now := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	view := timeline.NewView(now)
	view.Replace(*resp)
	visible := view.Visible(now)
	require.Len(t, visible, 1, "January slot is in the past")

	r := render.New(cat, language.Japanese, model.ShopUniqlo)
	slots := r.Slots(visible, view.Selected())
	require.Len(t, slots[0].Items, 1)
	item := slots[0].Items[0]
	assert.Equal(t, "アウター", item.Category.Label)
	assert.Equal(t, "ユニクロ", item.Shop)

	var buf bytes.Buffer
	require.NoError(t, r.WriteTimeline(&buf, slots))
	assert.Contains(t, buf.String(), "🧥 [アウター] カバーオール  (ユニクロ: カバーオール)")
	assert.Contains(t, buf.String(), "    西松屋: 2WAYオール")
}
