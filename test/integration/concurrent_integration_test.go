//go:build integration

package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotes-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotes-service/internal/platform/config"
)

func startStack(t *testing.T, auth config.AuthConfig) *stack {
	t.Helper()

	s, err := newStack(auth)
	require.NoError(t, err)
	t.Cleanup(s.Close)

	return s
}

// TestConcurrent_TodayFetchesOnce verifies that a burst of first requests
// shares one upstream call and every caller sees the same quote.
func TestConcurrent_TodayFetchesOnce(t *testing.T) {
	s := startStack(t, config.AuthConfig{})

	s.upstream.mu.Lock()
	s.upstream.delay = 100 * time.Millisecond
	s.upstream.mu.Unlock()

	const callers = 25

	var wg sync.WaitGroup
	authors := make(chan string, callers)

	for range callers {
		wg.Go(func() {
			resp, err := http.Get(s.URL("/api/v1/quotes/today"))
			if !assert.NoError(t, err) {
				return
			}
			defer resp.Body.Close()

			var today dto.TodayResponse
			if assert.NoError(t, json.NewDecoder(resp.Body).Decode(&today)) {
				authors <- today.Author
			}
		})
	}

	wg.Wait()
	close(authors)

	for a := range authors {
		assert.Equal(t, "Aristotle", a)
	}

	assert.Equal(t, int32(1), s.upstream.calls.Load())
}

// TestConcurrent_SavesAndDeletes drives parallel writers through the shared
// SQLite connection and checks the journal ends consistent.
func TestConcurrent_SavesAndDeletes(t *testing.T) {
	s := startStack(t, config.AuthConfig{})

	const writers = 20

	var wg sync.WaitGroup
	ids := make(chan string, writers)

	for i := range writers {
		wg.Go(func() {
			body := fmt.Sprintf(`{"content":"quote %02d","author":"author %02d","reflection":"note"}`, i, i)

			resp, err := http.Post(s.URL("/api/v1/saved"), "application/json", strings.NewReader(body))
			if !assert.NoError(t, err) {
				return
			}
			defer resp.Body.Close()

			if !assert.Equal(t, http.StatusCreated, resp.StatusCode) {
				return
			}

			var created dto.SavedQuoteResponse
			if assert.NoError(t, json.NewDecoder(resp.Body).Decode(&created)) {
				ids <- created.ID
			}
		})
	}

	wg.Wait()
	close(ids)

	var all []string
	for id := range ids {
		all = append(all, id)
	}

	require.Len(t, all, writers)

	list := savedList(t, s)
	require.Equal(t, writers, list.Count)

	for i, item := range list.Items {
		assert.Equal(t, fmt.Sprintf("author %02d", i), item.Author, "sorted by author")
	}

	// Delete half without waiting, then wait on the rest.
	for i, id := range all {
		target := s.URL("/api/v1/saved/" + id)
		if i%2 == 1 {
			target += "?wait=true"
		}

		req, err := http.NewRequest(http.MethodDelete, target, nil)
		require.NoError(t, err)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		_ = resp.Body.Close()

		assert.Contains(t, []int{http.StatusAccepted, http.StatusNoContent}, resp.StatusCode)
	}

	assert.Eventually(t, func() bool {
		resp, err := http.Get(s.URL("/api/v1/saved"))
		if err != nil {
			return false
		}
		defer resp.Body.Close()

		var list dto.SavedQuotesResponse

		return json.NewDecoder(resp.Body).Decode(&list) == nil && list.Count == 0
	}, 5*time.Second, 20*time.Millisecond)
}

// TestConcurrent_WritesRequireScope checks the auth guard on the full stack.
func TestConcurrent_WritesRequireScope(t *testing.T) {
	s := startStack(t, config.AuthConfig{
		Enabled:       true,
		SubjectHeader: "X-User-ID",
		ScopesHeader:  "X-User-Scopes",
		WriteScope:    "journal:write",
	})

	post := func(headers map[string]string) int {
		req, err := http.NewRequest(http.MethodPost, s.URL("/api/v1/saved"),
			strings.NewReader(`{"content":"c","author":"a","reflection":"r"}`))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")

		for k, v := range headers {
			req.Header.Set(k, v)
		}

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		_ = resp.Body.Close()

		return resp.StatusCode
	}

	assert.Equal(t, http.StatusUnauthorized, post(nil))
	assert.Equal(t, http.StatusForbidden, post(map[string]string{"X-User-ID": "u"}))
	assert.Equal(t, http.StatusCreated, post(map[string]string{"X-User-ID": "u", "X-User-Scopes": "journal:write"}))
	assert.Equal(t, 1, savedList(t, s).Count)
}

func savedList(t *testing.T, s *stack) dto.SavedQuotesResponse {
	t.Helper()

	resp, err := http.Get(s.URL("/api/v1/saved"))
	require.NoError(t, err)
	defer resp.Body.Close()

	var list dto.SavedQuotesResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))

	return list
}
