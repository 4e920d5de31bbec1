// Package api holds the HTTP calls behind the public client methods.
package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	errs "github.com/kj-nakamura/baby-wear-translator/client/internal/errors"
)

// maxErrorBody caps how much of an error response is read.
const maxErrorBody = 64 << 10

// getJSON issues exactly one GET and decodes a 2xx body into out.
func getJSON(ctx context.Context, httpClient *http.Client, target string, operation string, out any) error {
	if err := ctx.Err(); err != nil {
		return errs.NewNetworkError(operation, err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return errs.NewNetworkError(operation, err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return errs.NewNetworkError(operation, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return errs.NewHTTPError(resp.StatusCode, body, operation)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.NewDecodeError(operation, resp.StatusCode, err)
	}
	return nil
}

func withQuery(baseURL, path string, q url.Values) string {
	return baseURL + path + "?" + q.Encode()
}
