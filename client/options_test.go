package client

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithHTTPTimeout(t *testing.T) {
	c := New("http://example.com", WithHTTPTimeout(5*time.Second))
	assert.Equal(t, 5*time.Second, c.http.Timeout)

	assert.Panics(t, func() { New("http://example.com", WithHTTPTimeout(0)) })
}

func TestWithHTTPClient(t *testing.T) {
	hc := &http.Client{Timeout: time.Second}
	c := New("http://example.com", WithHTTPClient(hc))
	assert.NotSame(t, hc, c.http)
	assert.Equal(t, time.Second, c.http.Timeout)

	assert.Panics(t, func() { New("http://example.com", WithHTTPClient(nil)) })
}

func TestNew_AutoEnableDebugViaEnv(t *testing.T) {
	t.Setenv("BABYWEAR_DEBUG", "true")
	c := New("http://example.com")
	if _, ok := c.http.Transport.(*debugTransport); !ok {
		t.Fatalf("expected debugTransport to be installed when BABYWEAR_DEBUG=true")
	}
}

func TestWithDebugLogging_NotDoubleWrapped(t *testing.T) {
	t.Setenv("BABYWEAR_DEBUG", "true")
	c := New("http://example.com", WithDebugLogging(true))
	dt, ok := c.http.Transport.(*debugTransport)
	require.True(t, ok)
	_, nested := dt.base.(*debugTransport)
	assert.False(t, nested)
}

func TestDebugTransport_ErrorPath(t *testing.T) {
	// base transport returns error
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return nil, context.DeadlineExceeded
	})
	c := New("http://example.com", WithHTTPClient(&http.Client{Transport: rt}), WithDebugLogging(true))
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com", http.NoBody)
	if _, err := c.http.Do(req); err == nil {
		t.Fatalf("expected error from underlying transport")
	}
}

func TestWithHTTPClient_DebugLeavesCallerTransport(t *testing.T) {
	base := roundTripFunc(func(*http.Request) (*http.Response, error) { return nil, context.Canceled })
	hc := &http.Client{Transport: base}

	c := New("http://example.com", WithHTTPClient(hc), WithDebugLogging(true))
	_, wrapped := c.http.Transport.(*debugTransport)
	assert.True(t, wrapped)
	_, leaked := hc.Transport.(*debugTransport)
	assert.False(t, leaked, "caller's client must keep its own transport")

	t.Setenv("BABYWEAR_DEBUG", "true")
	shared := &http.Client{}
	_ = New("http://example.com", WithHTTPClient(shared))
	assert.Nil(t, shared.Transport)
}
