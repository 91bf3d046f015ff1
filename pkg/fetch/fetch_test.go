package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientGet(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Starpaper/test", r.Header.Get("User-Agent"))
		switch r.URL.Path {
		case "/ok":
			_, _ = w.Write([]byte("hello"))
		case "/big":
			_, _ = w.Write(make([]byte, 32))
		default:
			http.NotFound(w, r)
		}
	}))
	defer ts.Close()

	c := NewClient(NewHTTPClient("Starpaper/test", 5*time.Second), Options{MaxBodySize: 16})

	body, err := c.Get(context.Background(), ts.URL+"/ok")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(body))

	_, err = c.Get(context.Background(), ts.URL+"/missing")
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Contains(t, err.Error(), "/missing")

	_, err = c.Get(context.Background(), ts.URL+"/big")
	assert.True(t, errors.Is(err, ErrTooLarge))
}

func TestUserAgentTransport_DoesNotMutateRequest(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(r.Header.Get("User-Agent")))
	}))
	defer ts.Close()

	client := NewHTTPClient("Starpaper/1.0", 0)
	req, err := http.NewRequest(http.MethodGet, ts.URL, nil)
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Empty(t, req.Header.Get("User-Agent"))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestClientGet_CancelledContext(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("late"))
	}))
	defer ts.Close()

	c := NewClient(ts.Client(), Options{Interval: time.Hour})
	// The first request consumes the burst
	_, err := c.Get(context.Background(), ts.URL)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = c.Get(ctx, ts.URL)
	assert.Error(t, err)
}

func TestClientGet_BadURL(t *testing.T) {
	c := NewClient(nil, Options{})
	_, err := c.Get(context.Background(), "://nope")
	assert.Error(t, err)
}
