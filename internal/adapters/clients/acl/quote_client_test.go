package acl

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotes-service/internal/adapters/cache"
	"github.com/jsamuelsen/quotes-service/internal/adapters/clients"
	"github.com/jsamuelsen/quotes-service/internal/domain"
	"github.com/jsamuelsen/quotes-service/internal/platform/config"
	"github.com/jsamuelsen/quotes-service/internal/ports"
)

const todayPayload = `[{"q":"The obstacle is the way.","a":"Marcus Aurelius","h":"<blockquote>&ldquo;The obstacle is the way.&rdquo; &mdash; <footer>Marcus Aurelius</footer></blockquote>"}]`

var _ ports.QuoteFetcher = (*QuoteClient)(nil)

func newHTTPClient(t *testing.T, baseURL string) *clients.Client {
	t.Helper()

	client, err := clients.New(&clients.Config{
		ServiceName: "zenquotes",
		BaseURL:     baseURL,
		Timeout:     5 * time.Second,
		Circuit: config.CircuitBreakerConfig{
			MaxFailures:   10,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 3,
		},
		Transport: config.TransportConfig{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 2,
			IdleConnTimeout:     30 * time.Second,
		},
	})
	require.NoError(t, err)

	return client
}

// setupQuoteClient creates a QuoteClient against a test server and returns
// the cache and a counter of requests the server received.
func setupQuoteClient(t *testing.T, handler http.HandlerFunc) (*QuoteClient, *cache.MemoryCache, *int32) {
	t.Helper()

	var hits int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	c, err := cache.NewMemoryCache(4)
	require.NoError(t, err)

	qc := NewQuoteClient(QuoteClientConfig{
		Client: newHTTPClient(t, server.URL),
		Cache:  c,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return qc, c, &hits
}

func respond(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func TestNewQuoteClient_PanicsWithoutDependencies(t *testing.T) {
	c, err := cache.NewMemoryCache(1)
	require.NoError(t, err)

	assert.Panics(t, func() {
		NewQuoteClient(QuoteClientConfig{Cache: c})
	})
	assert.Panics(t, func() {
		NewQuoteClient(QuoteClientConfig{Client: newHTTPClient(t, "https://zenquotes.io")})
	})
}

func TestQuoteClient_Name(t *testing.T) {
	qc, _, _ := setupQuoteClient(t, respond(http.StatusOK, todayPayload))

	assert.Equal(t, "zenquotes", qc.Name())
	assert.NoError(t, qc.Check(context.Background()))
}

func TestFetchQuoteOfTheDay_RequestsTodayEndpoint(t *testing.T) {
	var path string

	qc, _, _ := setupQuoteClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		respond(http.StatusOK, todayPayload)(w, r)
	})

	_, err := qc.FetchQuoteOfTheDay(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/api/today", path)
}

func TestFetchQuoteOfTheDay_FetchThenCache(t *testing.T) {
	qc, c, hits := setupQuoteClient(t, respond(http.StatusOK, todayPayload))

	records, err := qc.FetchQuoteOfTheDay(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "The obstacle is the way.", records[0].Quote)
	assert.Equal(t, "Marcus Aurelius", records[0].Author)
	assert.Contains(t, records[0].BlockQuoteHTML, "<blockquote>")

	cached, ok := c.Retrieve(ports.DailyQuoteCacheKey)
	require.True(t, ok)
	assert.JSONEq(t, todayPayload, string(cached))

	again, err := qc.FetchQuoteOfTheDay(context.Background())
	require.NoError(t, err)
	assert.Equal(t, records, again)
	assert.Equal(t, int32(1), atomic.LoadInt32(hits), "second call must be served from cache")
}

func TestFetchQuoteOfTheDay_PrePopulatedCacheSkipsNetwork(t *testing.T) {
	qc, c, hits := setupQuoteClient(t, respond(http.StatusInternalServerError, ""))

	c.Save(ports.DailyQuoteCacheKey, []byte(`[{"q":"cached","a":"someone","h":""}]`))

	records, err := qc.FetchQuoteOfTheDay(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.QuoteRecord{{Quote: "cached", Author: "someone"}}, records)
	assert.Zero(t, atomic.LoadInt32(hits))
}

func TestFetchQuoteOfTheDay_CorruptCacheFallsBackToNetwork(t *testing.T) {
	qc, c, hits := setupQuoteClient(t, respond(http.StatusOK, todayPayload))

	c.Save(ports.DailyQuoteCacheKey, []byte("not json"))

	records, err := qc.FetchQuoteOfTheDay(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, int32(1), atomic.LoadInt32(hits))
}

func TestFetchQuoteOfTheDay_EmptyArray(t *testing.T) {
	qc, _, _ := setupQuoteClient(t, respond(http.StatusOK, `[]`))

	records, err := qc.FetchQuoteOfTheDay(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestFetchQuoteOfTheDay_StatusCodes(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"bad request with json body", http.StatusBadRequest, todayPayload},
		{"bad request with garbage", http.StatusBadRequest, "<html>"},
		{"no content", http.StatusNoContent, ""},
		{"rate limited", http.StatusTooManyRequests, `{"error":"slow down"}`},
		{"server error", http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qc, c, _ := setupQuoteClient(t, respond(tt.status, tt.body))

			_, err := qc.FetchQuoteOfTheDay(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.NewInvalidStatusCode(tt.status))
			assert.NotErrorIs(t, err, domain.ErrInvalidData)

			_, cached := c.Retrieve(ports.DailyQuoteCacheKey)
			assert.False(t, cached)
		})
	}
}

func TestFetchQuoteOfTheDay_MalformedBody(t *testing.T) {
	for _, body := range []string{"not json", `{"q":"object not array"}`, "", `[{"q":1}]`} {
		qc, c, _ := setupQuoteClient(t, respond(http.StatusOK, body))

		_, err := qc.FetchQuoteOfTheDay(context.Background())
		require.Error(t, err, body)
		assert.ErrorIs(t, err, domain.ErrInvalidData, body)

		_, cached := c.Retrieve(ports.DailyQuoteCacheKey)
		assert.False(t, cached, body)
	}
}

func TestFetchQuoteOfTheDay_TransportOffline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	base := server.URL
	server.Close()

	c, err := cache.NewMemoryCache(1)
	require.NoError(t, err)

	qc := NewQuoteClient(QuoteClientConfig{
		Client: newHTTPClient(t, base),
		Cache:  c,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	_, err = qc.FetchQuoteOfTheDay(context.Background())
	assert.ErrorIs(t, err, domain.ErrTransportOffline)
}

func TestFetchQuoteOfTheDay_InvalidPath(t *testing.T) {
	c, err := cache.NewMemoryCache(1)
	require.NoError(t, err)

	qc := NewQuoteClient(QuoteClientConfig{
		Client: newHTTPClient(t, "https://zenquotes.io"),
		Cache:  c,
		Path:   "/api/%zz",
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	_, err = qc.FetchQuoteOfTheDay(context.Background())
	assert.ErrorIs(t, err, domain.ErrInvalidURL)
}

func TestQuoteClient_CheckFailsWhenCircuitOpen(t *testing.T) {
	server := httptest.NewServer(respond(http.StatusServiceUnavailable, ""))
	t.Cleanup(server.Close)

	client, err := clients.New(&clients.Config{
		ServiceName: "zenquotes",
		BaseURL:     server.URL,
		Circuit:     config.CircuitBreakerConfig{MaxFailures: 1, Timeout: time.Minute, HalfOpenLimit: 1},
	})
	require.NoError(t, err)

	c, err := cache.NewMemoryCache(1)
	require.NoError(t, err)

	qc := NewQuoteClient(QuoteClientConfig{Client: client, Cache: c})

	_, err = qc.FetchQuoteOfTheDay(context.Background())
	require.ErrorIs(t, err, domain.NewInvalidStatusCode(http.StatusServiceUnavailable))

	assert.ErrorIs(t, qc.Check(context.Background()), clients.ErrCircuitOpen)

	_, err = qc.FetchQuoteOfTheDay(context.Background())
	assert.ErrorIs(t, err, domain.ErrTransportOffline)
}
